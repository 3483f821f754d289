package appointment

import (
	"strings"

	"github.com/BruksfildServices01/parlour-booking/internal/httperr"
	"github.com/BruksfildServices01/parlour-booking/internal/models"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// ===============================
// Domain Actions
// ===============================

// New builds an appointment owned by userID. Date and time are kept as the
// caller sent them once they are known to be non-blank.
func New(
	userID uint,
	parlourID uint,
	serviceName string,
	date string,
	time string,
) (*models.Appointment, error) {
	serviceName = strings.TrimSpace(serviceName)
	date = strings.TrimSpace(date)
	time = strings.TrimSpace(time)

	if userID == 0 || parlourID == 0 || serviceName == "" || date == "" || time == "" {
		return nil, httperr.ErrValidation
	}

	return &models.Appointment{
		UserID:      userID,
		ParlourID:   parlourID,
		ServiceName: serviceName,
		Date:        date,
		Time:        time,
	}, nil
}
