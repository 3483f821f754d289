package parlour

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/parlour-booking/internal/audit"
	domain "github.com/BruksfildServices01/parlour-booking/internal/domain/parlour"
	"github.com/BruksfildServices01/parlour-booking/internal/httperr"
	"github.com/BruksfildServices01/parlour-booking/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateParlourInput struct {
	ActorID  uint
	Name     string
	Location string
	Image    *string
	Rating   float64
}

// ======================================================
// USE CASE
// ======================================================

type CreateParlour struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewCreateParlour(
	repo domain.Repository,
	audit audit.Sink,
) *CreateParlour {
	return &CreateParlour{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateParlour) Execute(
	ctx context.Context,
	in CreateParlourInput,
) (*models.Parlour, error) {

	name := strings.TrimSpace(in.Name)
	location := strings.TrimSpace(in.Location)
	if name == "" || location == "" || in.Rating < 0 {
		return nil, httperr.ErrValidation
	}

	p := &models.Parlour{
		Name:     name,
		Location: location,
		Image:    blankToNil(in.Image),
		Rating:   in.Rating,
	}

	if err := uc.repo.CreateParlour(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ActorID,
		Action:   audit.ActionParlourAdded,
		Entity:   "parlour",
		EntityID: &p.ID,
		Metadata: map[string]any{"name": p.Name},
	})

	return p, nil
}

func blankToNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
