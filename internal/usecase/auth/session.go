package auth

import (
	"context"

	authdomain "github.com/BruksfildServices01/parlour-booking/internal/domain/auth"
	userdomain "github.com/BruksfildServices01/parlour-booking/internal/domain/user"
	"github.com/BruksfildServices01/parlour-booking/internal/dto"
)

// ======================================================
// LOGOUT
// ======================================================

type Logout struct {
	tokens authdomain.TokenService
}

func NewLogout(tokens authdomain.TokenService) *Logout {
	return &Logout{tokens: tokens}
}

func (uc *Logout) Execute(ctx context.Context, claims *authdomain.Claims) error {
	return uc.tokens.Revoke(ctx, claims)
}

// ======================================================
// ME
// ======================================================

type GetMe struct {
	users userdomain.Repository
}

func NewGetMe(users userdomain.Repository) *GetMe {
	return &GetMe{users: users}
}

func (uc *GetMe) Execute(ctx context.Context, userID uint) (*dto.MeDTO, error) {
	user, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.MeDTO{
		ID:      user.ID,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
	}, nil
}
