package models

import "time"

// Service is offered by exactly one parlour.
type Service struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	ParlourID uint    `gorm:"index;not null" json:"parlour_id"`
	Parlour   Parlour `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name  string  `gorm:"size:100;not null" json:"name"`
	Price float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	Image *string `gorm:"size:255" json:"image"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
