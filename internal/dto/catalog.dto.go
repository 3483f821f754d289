package dto

type ParlourDTO struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Image    *string `json:"image"`
	Rating   float64 `json:"rating"`
}

type ServiceDTO struct {
	ID        uint    `json:"id"`
	ParlourID uint    `json:"parlour_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     *string `json:"image"`
}
