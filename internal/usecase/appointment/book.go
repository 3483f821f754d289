package appointment

import (
	"context"

	"github.com/BruksfildServices01/parlour-booking/internal/audit"
	domain "github.com/BruksfildServices01/parlour-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/parlour-booking/internal/httperr"
	"github.com/BruksfildServices01/parlour-booking/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	UserID      uint
	ParlourID   uint
	ServiceName string
	Date        string
	Time        string
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewBookAppointment(
	repo domain.Repository,
	audit audit.Sink,
) *BookAppointment {
	return &BookAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// Shape
	// --------------------------------------------------
	ap, err := domain.New(
		in.UserID,
		in.ParlourID,
		in.ServiceName,
		in.Date,
		in.Time,
	)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Parlour must exist
	// --------------------------------------------------
	ok, err := uc.repo.ParlourExists(ctx, in.ParlourID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrParlourNotFound
	}

	// --------------------------------------------------
	// Persist
	// --------------------------------------------------
	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   audit.ActionAppointmentBooked,
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"parlour_id":   ap.ParlourID,
			"service_name": ap.ServiceName,
			"date":         ap.Date,
			"time":         ap.Time,
		},
	})

	return ap, nil
}
