package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/parlour-booking/internal/domain/parlour"
	"github.com/BruksfildServices01/parlour-booking/internal/models"
)

type ParlourGormRepository struct {
	db *gorm.DB
}

func NewParlourGormRepository(db *gorm.DB) *ParlourGormRepository {
	return &ParlourGormRepository{db: db}
}

// --------------------------------------------------
// Parlour
// --------------------------------------------------

func (r *ParlourGormRepository) CreateParlour(
	ctx context.Context,
	p *models.Parlour,
) error {
	return errors.Wrap(r.db.WithContext(ctx).Create(p).Error, "creating parlour")
}

func (r *ParlourGormRepository) ListParlours(
	ctx context.Context,
) ([]models.Parlour, error) {

	var parlours []models.Parlour
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&parlours).Error; err != nil {
		return nil, errors.Wrap(err, "listing parlours")
	}
	return parlours, nil
}

func (r *ParlourGormRepository) ParlourExists(
	ctx context.Context,
	id uint,
) (bool, error) {
	return parlourExists(ctx, r.db, id)
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *ParlourGormRepository) CreateService(
	ctx context.Context,
	s *models.Service,
) error {
	return errors.Wrap(r.db.WithContext(ctx).Create(s).Error, "creating service")
}

func (r *ParlourGormRepository) ListServicesForParlour(
	ctx context.Context,
	parlourID uint,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("parlour_id = ?", parlourID).
		Order("id ASC").
		Find(&services).Error; err != nil {
		return nil, errors.Wrap(err, "listing services")
	}
	return services, nil
}

func parlourExists(ctx context.Context, db *gorm.DB, id uint) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).
		Model(&models.Parlour{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "checking parlour")
	}
	return count > 0, nil
}

// Compile-time check
var _ domain.Repository = (*ParlourGormRepository)(nil)
