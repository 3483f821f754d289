package db

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/parlour-booking/internal/models"
)

type seedService struct {
	name  string
	price float64
	image string
}

type seedParlour struct {
	name     string
	location string
	image    string
	rating   float64
	services []seedService
}

var catalog = []seedParlour{
	{
		name: "Velura Luxe Salon", location: "Bangalore", image: "salon1.jpg", rating: 4.8,
		services: []seedService{
			{"Haircut", 499, "haircut.jpg"},
			{"Facial", 799, "facial.jpg"},
			{"Spa", 1299, "spa.jpg"},
		},
	},
	{
		name: "Glow & Grace", location: "Mumbai", image: "salon2.jpg", rating: 4.6,
		services: []seedService{
			{"Haircut", 399, "haircut.jpg"},
			{"Makeup", 1599, "makeup.jpg"},
		},
	},
	{
		name: "Urban Touch", location: "Delhi", image: "salon3.jpg", rating: 4.7,
		services: []seedService{
			{"Haircut", 599, "haircut.jpg"},
			{"Hair Coloring", 1999, "coloring.jpg"},
		},
	},
}

// Seed inserts the default catalog when the parlours table is empty.
func Seed(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Parlour{}).Count(&count).Error; err != nil {
			return errors.Wrap(err, "counting parlours")
		}
		if count > 0 {
			return nil
		}

		for _, sp := range catalog {
			image := sp.image
			p := models.Parlour{
				Name:     sp.name,
				Location: sp.location,
				Image:    &image,
				Rating:   sp.rating,
			}
			if err := tx.Create(&p).Error; err != nil {
				return errors.Wrapf(err, "seeding parlour %q", sp.name)
			}

			for _, ss := range sp.services {
				image := ss.image
				s := models.Service{
					ParlourID: p.ID,
					Name:      ss.name,
					Price:     ss.price,
					Image:     &image,
				}
				if err := tx.Create(&s).Error; err != nil {
					return errors.Wrapf(err, "seeding service %q", ss.name)
				}
			}
		}

		return nil
	})
}
