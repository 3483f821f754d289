package appointment

import (
	"context"

	"github.com/BruksfildServices01/parlour-booking/internal/models"
)

type Repository interface {
	// -------- Parlour --------
	ParlourExists(
		ctx context.Context,
		parlourID uint,
	) (bool, error)

	// -------- Appointment --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointmentsForUser(
		ctx context.Context,
		userID uint,
	) ([]models.Appointment, error)

	// DeleteAppointmentForUser removes the appointment only when it belongs
	// to userID. It reports whether a row was removed.
	DeleteAppointmentForUser(
		ctx context.Context,
		appointmentID uint,
		userID uint,
	) (bool, error)
}
