package main

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	userdomain "github.com/BruksfildServices01/parlour-booking/internal/domain/user"
	"github.com/BruksfildServices01/parlour-booking/internal/httperr"
)

func setAdmin(
	ctx context.Context,
	users userdomain.Repository,
	email string,
	admin bool,
) error {

	user, err := users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, httperr.ErrUserNotFound) {
			return fmt.Errorf("no user with email %q", userdomain.NormalizeEmail(email))
		}
		return err
	}

	if err := users.SetAdmin(ctx, user.ID, admin); err != nil {
		return err
	}

	fmt.Printf("user %d (%s) admin=%t\n", user.ID, user.Email, admin)
	return nil
}
