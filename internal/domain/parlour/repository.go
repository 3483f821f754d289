package parlour

import (
	"context"

	"github.com/BruksfildServices01/parlour-booking/internal/models"
)

type Repository interface {
	// -------- Parlour --------
	CreateParlour(ctx context.Context, p *models.Parlour) error
	ListParlours(ctx context.Context) ([]models.Parlour, error)
	ParlourExists(ctx context.Context, id uint) (bool, error)

	// -------- Service --------
	CreateService(ctx context.Context, s *models.Service) error
	ListServicesForParlour(ctx context.Context, parlourID uint) ([]models.Service, error)
}
