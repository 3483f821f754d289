package auth

import (
	"context"

	"github.com/pkg/errors"

	authdomain "github.com/BruksfildServices01/parlour-booking/internal/domain/auth"
	userdomain "github.com/BruksfildServices01/parlour-booking/internal/domain/user"
	"github.com/BruksfildServices01/parlour-booking/internal/dto"
	"github.com/BruksfildServices01/parlour-booking/internal/httperr"
)

type LoginInput struct {
	Email    string
	Password string
}

type Login struct {
	users  userdomain.Repository
	hasher authdomain.PasswordHasher
	tokens authdomain.TokenService

	// verified on unknown emails so both failure paths cost the same
	dummyHash string
}

func NewLogin(
	users userdomain.Repository,
	hasher authdomain.PasswordHasher,
	tokens authdomain.TokenService,
) (*Login, error) {
	dummy, err := hasher.Hash("velura-login-dummy")
	if err != nil {
		return nil, errors.Wrap(err, "preparing login")
	}

	return &Login{
		users:     users,
		hasher:    hasher,
		tokens:    tokens,
		dummyHash: dummy,
	}, nil
}

func (uc *Login) Execute(
	ctx context.Context,
	in LoginInput,
) (*dto.LoginDTO, error) {

	user, err := uc.users.FindByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, httperr.ErrUserNotFound) {
			uc.hasher.Verify(in.Password, uc.dummyHash)
			return nil, httperr.ErrInvalidCredentials
		}
		return nil, err
	}

	if !uc.hasher.Verify(in.Password, user.PasswordHash) {
		return nil, httperr.ErrInvalidCredentials
	}

	token, err := uc.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.LoginDTO{
		AccessToken: token,
		IsAdmin:     user.IsAdmin,
	}, nil
}
