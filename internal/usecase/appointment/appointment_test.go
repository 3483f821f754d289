package appointment

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/parlour-booking/internal/audit"
	"github.com/BruksfildServices01/parlour-booking/internal/httperr"
	"github.com/BruksfildServices01/parlour-booking/internal/mocks"
	"github.com/BruksfildServices01/parlour-booking/internal/models"
)

func validInput() BookAppointmentInput {
	return BookAppointmentInput{
		UserID:      7,
		ParlourID:   1,
		ServiceName: "Facial",
		Date:        "2026-11-02",
		Time:        "10:30",
	}
}

func TestBookAppointment(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMockAppointmentRepository(t)
	sink := &mocks.RecordingSink{}

	repo.On("ParlourExists", ctx, uint(1)).Return(true, nil)
	repo.On("CreateAppointment", ctx, mock.MatchedBy(func(ap *models.Appointment) bool {
		return ap.UserID == 7 && ap.ParlourID == 1 && ap.ServiceName == "Facial" &&
			ap.Date == "2026-11-02" && ap.Time == "10:30"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Appointment).ID = 11
	}).Return(nil)

	ap, err := NewBookAppointment(repo, sink).Execute(ctx, validInput())
	require.NoError(t, err)
	assert.Equal(t, uint(11), ap.ID)

	require.Len(t, sink.Events, 1)
	assert.Equal(t, audit.ActionAppointmentBooked, sink.Events[0].Action)
	assert.Equal(t, uint(7), *sink.Events[0].UserID)
}

func TestBookAppointment_UnknownParlour(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMockAppointmentRepository(t)

	repo.On("ParlourExists", ctx, uint(1)).Return(false, nil)

	_, err := NewBookAppointment(repo, audit.Discard{}).Execute(ctx, validInput())
	assert.ErrorIs(t, err, httperr.ErrParlourNotFound)
}

func TestBookAppointment_BlankFields(t *testing.T) {
	uc := NewBookAppointment(mocks.NewMockAppointmentRepository(t), audit.Discard{})

	in := validInput()
	in.ServiceName = "   "
	_, err := uc.Execute(context.Background(), in)
	assert.ErrorIs(t, err, httperr.ErrValidation)
}

func TestListAppointments(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMockAppointmentRepository(t)

	repo.On("ListAppointmentsForUser", ctx, uint(7)).Return([]models.Appointment{
		{ID: 1, UserID: 7, ParlourID: 1, ServiceName: "Facial", Date: "2026-11-02", Time: "10:30"},
	}, nil)

	out, err := NewListAppointments(repo).Execute(ctx, 7)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Facial", out[0].ServiceName)
	assert.Equal(t, uint(7), out[0].UserID)
}

func TestCancelAppointment(t *testing.T) {
	ctx := context.Background()

	t.Run("owner", func(t *testing.T) {
		repo := mocks.NewMockAppointmentRepository(t)
		sink := &mocks.RecordingSink{}
		repo.On("DeleteAppointmentForUser", ctx, uint(11), uint(7)).Return(true, nil)

		require.NoError(t, NewCancelAppointment(repo, sink).Execute(ctx, 7, 11))
		assert.Equal(t, []string{audit.ActionAppointmentCancelled}, sink.Actions())
	})

	t.Run("not owner is a silent no-op", func(t *testing.T) {
		repo := mocks.NewMockAppointmentRepository(t)
		sink := &mocks.RecordingSink{}
		repo.On("DeleteAppointmentForUser", ctx, uint(11), uint(8)).Return(false, nil)

		require.NoError(t, NewCancelAppointment(repo, sink).Execute(ctx, 8, 11))
		assert.Empty(t, sink.Events)
	})

	t.Run("store failure", func(t *testing.T) {
		repo := mocks.NewMockAppointmentRepository(t)
		repo.On("DeleteAppointmentForUser", ctx, uint(11), uint(7)).Return(false, errors.New("locked"))

		assert.Error(t, NewCancelAppointment(repo, audit.Discard{}).Execute(ctx, 7, 11))
	})
}
