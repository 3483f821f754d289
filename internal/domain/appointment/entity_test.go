package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/parlour-booking/internal/httperr"
)

func TestNew(t *testing.T) {
	ap, err := New(1, 2, " Facial ", "2026-11-02", " 10:30")
	require.NoError(t, err)
	assert.Equal(t, "Facial", ap.ServiceName)
	assert.Equal(t, "10:30", ap.Time)
	assert.Zero(t, ap.ID)
}

func TestNew_RejectsMissingFields(t *testing.T) {
	testCases := []struct {
		name      string
		userID    uint
		parlourID uint
		service   string
		date      string
		time      string
	}{
		{"no user", 0, 1, "Facial", "2026-11-02", "10:30"},
		{"no parlour", 1, 0, "Facial", "2026-11-02", "10:30"},
		{"blank service", 1, 1, " ", "2026-11-02", "10:30"},
		{"blank date", 1, 1, "Facial", "", "10:30"},
		{"blank time", 1, 1, "Facial", "2026-11-02", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.userID, tc.parlourID, tc.service, tc.date, tc.time)
			assert.ErrorIs(t, err, httperr.ErrValidation)
		})
	}
}
