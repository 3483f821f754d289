package parlour

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/parlour-booking/internal/audit"
	domain "github.com/BruksfildServices01/parlour-booking/internal/domain/parlour"
	"github.com/BruksfildServices01/parlour-booking/internal/httperr"
	"github.com/BruksfildServices01/parlour-booking/internal/models"
)

type CreateServiceInput struct {
	ActorID   uint
	ParlourID uint
	Name      string
	Price     float64
	Image     *string
}

type CreateService struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewCreateService(
	repo domain.Repository,
	audit audit.Sink,
) *CreateService {
	return &CreateService{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateService) Execute(
	ctx context.Context,
	in CreateServiceInput,
) (*models.Service, error) {

	name := strings.TrimSpace(in.Name)
	if in.ParlourID == 0 || name == "" || in.Price < 0 {
		return nil, httperr.ErrValidation
	}

	ok, err := uc.repo.ParlourExists(ctx, in.ParlourID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrParlourNotFound
	}

	s := &models.Service{
		ParlourID: in.ParlourID,
		Name:      name,
		Price:     in.Price,
		Image:     blankToNil(in.Image),
	}

	if err := uc.repo.CreateService(ctx, s); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ActorID,
		Action:   audit.ActionServiceAdded,
		Entity:   "service",
		EntityID: &s.ID,
		Metadata: map[string]any{
			"parlour_id": s.ParlourID,
			"name":       s.Name,
			"price":      s.Price,
		},
	})

	return s, nil
}
