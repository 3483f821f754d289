package models

import "time"

// Appointment keeps the service name as plain text, it is not a reference
// to the services table.
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"index;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ParlourID uint    `gorm:"not null" json:"parlour_id"`
	Parlour   Parlour `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ServiceName string `gorm:"size:100;not null" json:"service_name"`
	Date        string `gorm:"size:10;not null" json:"date"`
	Time        string `gorm:"size:5;not null" json:"time"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
