package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/parlour-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/parlour-booking/internal/dto"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(
	repo domain.Repository,
) *ListAppointments {
	return &ListAppointments{
		repo: repo,
	}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	userID uint,
) ([]dto.AppointmentDTO, error) {

	appointments, err := uc.repo.ListAppointmentsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentDTO{
			ID:          ap.ID,
			UserID:      ap.UserID,
			ParlourID:   ap.ParlourID,
			ServiceName: ap.ServiceName,
			Date:        ap.Date,
			Time:        ap.Time,
		})
	}

	return out, nil
}
