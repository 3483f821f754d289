// Package user defines the credential store contract.
package user

import (
	"context"

	"github.com/BruksfildServices01/parlour-booking/internal/models"
)

// Repository persists user identities. Implementations return
// httperr.ErrDuplicateEmail on email collisions and httperr.ErrUserNotFound
// when a lookup misses.
type Repository interface {
	CreateUser(ctx context.Context, email, passwordHash string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uint) (*models.User, error)
	SetAdmin(ctx context.Context, id uint, admin bool) error
}
