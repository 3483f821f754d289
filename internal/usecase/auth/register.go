package auth

import (
	"context"
	"strings"

	authdomain "github.com/BruksfildServices01/parlour-booking/internal/domain/auth"
	userdomain "github.com/BruksfildServices01/parlour-booking/internal/domain/user"
	"github.com/BruksfildServices01/parlour-booking/internal/httperr"
	"github.com/BruksfildServices01/parlour-booking/internal/models"
)

type RegisterInput struct {
	Email    string
	Password string
}

type Register struct {
	users  userdomain.Repository
	hasher authdomain.PasswordHasher
}

func NewRegister(
	users userdomain.Repository,
	hasher authdomain.PasswordHasher,
) *Register {
	return &Register{
		users:  users,
		hasher: hasher,
	}
}

// Execute returns httperr.ErrDuplicateEmail when the address is taken.
func (uc *Register) Execute(
	ctx context.Context,
	in RegisterInput,
) (*models.User, error) {

	email := userdomain.NormalizeEmail(in.Email)
	if email == "" || strings.TrimSpace(in.Password) == "" {
		return nil, httperr.ErrValidation
	}

	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	return uc.users.CreateUser(ctx, email, hash)
}
