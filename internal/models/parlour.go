package models

import "time"

type Parlour struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Name     string  `gorm:"size:100;not null" json:"name"`
	Location string  `gorm:"size:255;not null" json:"location"`
	Image    *string `gorm:"size:255" json:"image"`
	Rating   float64 `gorm:"not null;default:0" json:"rating"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
