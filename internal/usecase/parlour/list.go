package parlour

import (
	"context"

	domain "github.com/BruksfildServices01/parlour-booking/internal/domain/parlour"
	"github.com/BruksfildServices01/parlour-booking/internal/dto"
	"github.com/BruksfildServices01/parlour-booking/internal/infra/storage"
)

// ======================================================
// PARLOURS
// ======================================================

type ListParlours struct {
	repo   domain.Repository
	images storage.ImageResolver
}

func NewListParlours(
	repo domain.Repository,
	images storage.ImageResolver,
) *ListParlours {
	return &ListParlours{
		repo:   repo,
		images: images,
	}
}

func (uc *ListParlours) Execute(ctx context.Context) ([]dto.ParlourDTO, error) {
	parlours, err := uc.repo.ListParlours(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ParlourDTO, 0, len(parlours))
	for _, p := range parlours {
		out = append(out, dto.ParlourDTO{
			ID:       p.ID,
			Name:     p.Name,
			Location: p.Location,
			Image:    uc.images.Resolve(ctx, p.Image),
			Rating:   p.Rating,
		})
	}
	return out, nil
}

// ======================================================
// SERVICES
// ======================================================

type ListServices struct {
	repo   domain.Repository
	images storage.ImageResolver
}

func NewListServices(
	repo domain.Repository,
	images storage.ImageResolver,
) *ListServices {
	return &ListServices{
		repo:   repo,
		images: images,
	}
}

// Execute returns an empty list for unknown parlours.
func (uc *ListServices) Execute(
	ctx context.Context,
	parlourID uint,
) ([]dto.ServiceDTO, error) {

	services, err := uc.repo.ListServicesForParlour(ctx, parlourID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ServiceDTO, 0, len(services))
	for _, s := range services {
		out = append(out, dto.ServiceDTO{
			ID:        s.ID,
			ParlourID: s.ParlourID,
			Name:      s.Name,
			Price:     s.Price,
			Image:     uc.images.Resolve(ctx, s.Image),
		})
	}
	return out, nil
}
