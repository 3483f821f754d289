package dto

type AppointmentDTO struct {
	ID          uint   `json:"id"`
	UserID      uint   `json:"user_id"`
	ParlourID   uint   `json:"parlour_id"`
	ServiceName string `json:"service_name"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}
