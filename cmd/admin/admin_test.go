package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	infraRepo "github.com/BruksfildServices01/parlour-booking/internal/infra/repository"
	"github.com/BruksfildServices01/parlour-booking/internal/testutil"
)

func TestSetAdmin(t *testing.T) {
	ctx := context.Background()
	users := infraRepo.NewUserGormRepository(testutil.TestDB(t, false))

	u, err := users.CreateUser(ctx, "owner@velura.com", "h")
	require.NoError(t, err)

	require.NoError(t, setAdmin(ctx, users, " Owner@Velura.com", true))
	got, err := users.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, got.IsAdmin)

	require.NoError(t, setAdmin(ctx, users, "owner@velura.com", false))
	got, err = users.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.False(t, got.IsAdmin)
}

func TestSetAdmin_UnknownEmail(t *testing.T) {
	users := infraRepo.NewUserGormRepository(testutil.TestDB(t, false))

	err := setAdmin(context.Background(), users, "ghost@velura.com", true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ghost@velura.com")
}
