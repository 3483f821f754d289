package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/parlour-booking/internal/domain/user"
	"github.com/BruksfildServices01/parlour-booking/internal/httperr"
	"github.com/BruksfildServices01/parlour-booking/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) CreateUser(
	ctx context.Context,
	email string,
	passwordHash string,
) (*models.User, error) {

	user := models.User{
		Email:        domain.NormalizeEmail(email),
		PasswordHash: passwordHash,
	}

	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, httperr.ErrDuplicateEmail
		}
		return nil, errors.Wrap(err, "creating user")
	}

	return &user, nil
}

func (r *UserGormRepository) FindByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", domain.NormalizeEmail(email)).
		First(&user).Error; err != nil {
		return nil, notFound(err, "finding user by email")
	}
	return &user, nil
}

func (r *UserGormRepository) FindByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, notFound(err, "finding user by id")
	}
	return &user, nil
}

func (r *UserGormRepository) SetAdmin(
	ctx context.Context,
	id uint,
	admin bool,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("is_admin", admin)
	if res.Error != nil {
		return errors.Wrap(res.Error, "updating admin flag")
	}
	if res.RowsAffected == 0 {
		return httperr.ErrUserNotFound
	}
	return nil
}

func notFound(err error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrUserNotFound
	}
	return errors.Wrap(err, op)
}

// Compile-time check
var _ domain.Repository = (*UserGormRepository)(nil)
