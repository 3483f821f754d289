package appointment

import (
	"context"

	"github.com/BruksfildServices01/parlour-booking/internal/audit"
	domain "github.com/BruksfildServices01/parlour-booking/internal/domain/appointment"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewCancelAppointment(
	repo domain.Repository,
	audit audit.Sink,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute removes the appointment when userID owns it. Unknown or foreign
// ids succeed without effect so callers cannot probe for them.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	userID uint,
	appointmentID uint,
) error {

	deleted, err := uc.repo.DeleteAppointmentForUser(ctx, appointmentID, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return nil
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   audit.ActionAppointmentCancelled,
		Entity:   "appointment",
		EntityID: &appointmentID,
	})

	return nil
}
