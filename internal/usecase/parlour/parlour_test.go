package parlour

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/parlour-booking/internal/audit"
	"github.com/BruksfildServices01/parlour-booking/internal/httperr"
	"github.com/BruksfildServices01/parlour-booking/internal/infra/storage"
	"github.com/BruksfildServices01/parlour-booking/internal/mocks"
	"github.com/BruksfildServices01/parlour-booking/internal/models"
)

func strPtr(s string) *string { return &s }

func TestCreateParlour(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMockParlourRepository(t)
	sink := &mocks.RecordingSink{}

	repo.On("CreateParlour", ctx, mock.MatchedBy(func(p *models.Parlour) bool {
		return p.Name == "Studio" && p.Location == "Pune" && p.Image == nil && p.Rating == 4.5
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Parlour).ID = 9
	}).Return(nil)

	p, err := NewCreateParlour(repo, sink).Execute(ctx, CreateParlourInput{
		ActorID: 1, Name: " Studio ", Location: "Pune", Image: strPtr("  "), Rating: 4.5,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(9), p.ID)

	require.Len(t, sink.Events, 1)
	assert.Equal(t, audit.ActionParlourAdded, sink.Events[0].Action)
	assert.Equal(t, uint(9), *sink.Events[0].EntityID)
	assert.Equal(t, uint(1), *sink.Events[0].UserID)
}

func TestCreateParlour_Validation(t *testing.T) {
	uc := NewCreateParlour(mocks.NewMockParlourRepository(t), audit.Discard{})

	for _, in := range []CreateParlourInput{
		{Name: "", Location: "x"},
		{Name: "x", Location: " "},
		{Name: "x", Location: "y", Rating: -1},
	} {
		_, err := uc.Execute(context.Background(), in)
		assert.ErrorIs(t, err, httperr.ErrValidation)
	}
}

func TestCreateService(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMockParlourRepository(t)
	sink := &mocks.RecordingSink{}

	repo.On("ParlourExists", ctx, uint(2)).Return(true, nil)
	repo.On("CreateService", ctx, mock.AnythingOfType("*models.Service")).Return(nil)

	s, err := NewCreateService(repo, sink).Execute(ctx, CreateServiceInput{
		ActorID: 1, ParlourID: 2, Name: "Pedicure", Price: 349.5, Image: strPtr("pedi.jpg"),
	})
	require.NoError(t, err)
	assert.Equal(t, uint(2), s.ParlourID)
	assert.Equal(t, "pedi.jpg", *s.Image)
	assert.Equal(t, []string{audit.ActionServiceAdded}, sink.Actions())
}

func TestCreateService_UnknownParlour(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMockParlourRepository(t)
	sink := &mocks.RecordingSink{}

	repo.On("ParlourExists", ctx, uint(99)).Return(false, nil)

	_, err := NewCreateService(repo, sink).Execute(ctx, CreateServiceInput{
		ParlourID: 99, Name: "Spa", Price: 10,
	})
	assert.ErrorIs(t, err, httperr.ErrParlourNotFound)
	assert.Empty(t, sink.Events)
	repo.AssertNotCalled(t, "CreateService", mock.Anything, mock.Anything)
}

func TestListParlours_ResolvesImages(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMockParlourRepository(t)

	repo.On("ListParlours", ctx).Return([]models.Parlour{
		{ID: 1, Name: "A", Location: "X", Image: strPtr("a.jpg"), Rating: 4.8},
		{ID: 2, Name: "B", Location: "Y"},
	}, nil)

	out, err := NewListParlours(repo, storage.NewStaticResolver("https://cdn.test")).Execute(ctx)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "https://cdn.test/a.jpg", *out[0].Image)
	assert.Nil(t, out[1].Image)
	assert.InDelta(t, 4.8, out[0].Rating, 0.001)
}

func TestListServices_EmptyIsNotNil(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMockParlourRepository(t)

	repo.On("ListServicesForParlour", ctx, uint(42)).Return(nil, nil)

	out, err := NewListServices(repo, storage.NewStaticResolver("")).Execute(ctx, 42)
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}
