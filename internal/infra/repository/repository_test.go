package repository

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/parlour-booking/internal/httperr"
	"github.com/BruksfildServices01/parlour-booking/internal/models"
	"github.com/BruksfildServices01/parlour-booking/internal/testutil"
)

func strPtr(s string) *string { return &s }

// --------------------------------------------------
// Users
// --------------------------------------------------

func TestUserRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewUserGormRepository(testutil.TestDB(t, false))

	created, err := repo.CreateUser(ctx, "  U@X.com ", "$argon2id$hash")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "u@x.com", created.Email)
	assert.False(t, created.IsAdmin)

	byEmail, err := repo.FindByEmail(ctx, "u@x.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)
	assert.Equal(t, "$argon2id$hash", byEmail.PasswordHash)

	byID, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "u@x.com", byID.Email)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserGormRepository(testutil.TestDB(t, false))

	_, err := repo.CreateUser(ctx, "u@x.com", "h1")
	require.NoError(t, err)

	_, err = repo.CreateUser(ctx, "U@x.com", "h2")
	assert.ErrorIs(t, err, httperr.ErrDuplicateEmail)
}

func TestUserRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewUserGormRepository(testutil.TestDB(t, false))

	_, err := repo.FindByEmail(ctx, "ghost@x.com")
	assert.ErrorIs(t, err, httperr.ErrUserNotFound)

	_, err = repo.FindByID(ctx, 42)
	assert.ErrorIs(t, err, httperr.ErrUserNotFound)

	assert.ErrorIs(t, repo.SetAdmin(ctx, 42, true), httperr.ErrUserNotFound)
}

func TestUserRepository_SetAdmin(t *testing.T) {
	ctx := context.Background()
	repo := NewUserGormRepository(testutil.TestDB(t, false))

	u, err := repo.CreateUser(ctx, "admin@velura.com", "h")
	require.NoError(t, err)

	require.NoError(t, repo.SetAdmin(ctx, u.ID, true))
	got, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, got.IsAdmin)

	require.NoError(t, repo.SetAdmin(ctx, u.ID, false))
	got, err = repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.False(t, got.IsAdmin)
}

// --------------------------------------------------
// Parlours and services
// --------------------------------------------------

func TestParlourRepository_CreateAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewParlourGormRepository(testutil.TestDB(t, false))

	p := &models.Parlour{Name: "Studio", Location: "Pune"}
	require.NoError(t, repo.CreateParlour(ctx, p))
	assert.NotZero(t, p.ID)

	parlours, err := repo.ListParlours(ctx)
	require.NoError(t, err)
	require.Len(t, parlours, 1)
	assert.Equal(t, "Studio", parlours[0].Name)
	assert.Nil(t, parlours[0].Image)
	assert.Zero(t, parlours[0].Rating)

	ok, err := repo.ParlourExists(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.ParlourExists(ctx, p.ID+100)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestParlourRepository_ServicesScopedToParlour(t *testing.T) {
	ctx := context.Background()
	repo := NewParlourGormRepository(testutil.TestDB(t, true))

	services, err := repo.ListServicesForParlour(ctx, 1)
	require.NoError(t, err)
	require.Len(t, services, 3)
	assert.Equal(t, "Haircut", services[0].Name)
	assert.InDelta(t, 499, services[0].Price, 0.001)

	s := &models.Service{ParlourID: 2, Name: "Pedicure", Price: 349.5, Image: strPtr("pedi.jpg")}
	require.NoError(t, repo.CreateService(ctx, s))

	services, err = repo.ListServicesForParlour(ctx, 2)
	require.NoError(t, err)
	require.Len(t, services, 3)
	assert.Equal(t, "Pedicure", services[2].Name)
	assert.InDelta(t, 349.5, services[2].Price, 0.001)

	services, err = repo.ListServicesForParlour(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, services)
}

func TestParlourRepository_ServiceRequiresExistingParlour(t *testing.T) {
	ctx := context.Background()
	repo := NewParlourGormRepository(testutil.TestDB(t, false))

	err := repo.CreateService(ctx, &models.Service{ParlourID: 77, Name: "Spa", Price: 10})
	assert.Error(t, err, "foreign keys are enforced by the store")
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func TestAppointmentRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	gdb := testutil.TestDB(t, true)
	users := NewUserGormRepository(gdb)
	repo := NewAppointmentGormRepository(gdb)

	alice, err := users.CreateUser(ctx, "alice@x.com", "h")
	require.NoError(t, err)
	bob, err := users.CreateUser(ctx, "bob@x.com", "h")
	require.NoError(t, err)

	ap := &models.Appointment{
		UserID: alice.ID, ParlourID: 1, ServiceName: "Facial", Date: "2026-11-02", Time: "10:30",
	}
	require.NoError(t, repo.CreateAppointment(ctx, ap))
	assert.NotZero(t, ap.ID)

	list, err := repo.ListAppointmentsForUser(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Facial", list[0].ServiceName)

	list, err = repo.ListAppointmentsForUser(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, list)

	// Bob cannot remove Alice's appointment.
	deleted, err := repo.DeleteAppointmentForUser(ctx, ap.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = repo.DeleteAppointmentForUser(ctx, ap.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.DeleteAppointmentForUser(ctx, ap.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.False(t, isUniqueViolation(nil))
	assert.True(t, isUniqueViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueViolation(errors.Wrap(&pgconn.PgError{Code: "23505"}, "insert")))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.True(t, isUniqueViolation(errors.New("UNIQUE constraint failed: users.email")))
	assert.False(t, isUniqueViolation(errors.New("disk I/O error")))
}
