package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/parlour-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/parlour-booking/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Parlour
// --------------------------------------------------

func (r *AppointmentGormRepository) ParlourExists(
	ctx context.Context,
	parlourID uint,
) (bool, error) {
	return parlourExists(ctx, r.db, parlourID)
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return errors.Wrap(r.db.WithContext(ctx).Create(ap).Error, "creating appointment")
}

func (r *AppointmentGormRepository) ListAppointmentsForUser(
	ctx context.Context,
	userID uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&apps).Error; err != nil {
		return nil, errors.Wrap(err, "listing appointments")
	}

	return apps, nil
}

func (r *AppointmentGormRepository) DeleteAppointmentForUser(
	ctx context.Context,
	appointmentID uint,
	userID uint,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", appointmentID, userID).
		Delete(&models.Appointment{})
	if res.Error != nil {
		return false, errors.Wrap(res.Error, "deleting appointment")
	}

	return res.RowsAffected > 0, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
