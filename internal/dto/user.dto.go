package dto

type LoginDTO struct {
	AccessToken string `json:"access_token"`
	IsAdmin     bool   `json:"is_admin"`
}

type MeDTO struct {
	ID      uint   `json:"id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}
