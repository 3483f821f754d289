package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/parlour-booking/internal/httperr"
	"github.com/BruksfildServices01/parlour-booking/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/parlour-booking/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	book   *ucAppointment.BookAppointment
	list   *ucAppointment.ListAppointments
	cancel *ucAppointment.CancelAppointment
	log    *slog.Logger
}

func NewAppointmentHandler(
	book *ucAppointment.BookAppointment,
	list *ucAppointment.ListAppointments,
	cancel *ucAppointment.CancelAppointment,
	log *slog.Logger,
) *AppointmentHandler {
	return &AppointmentHandler{
		book:   book,
		list:   list,
		cancel: cancel,
		log:    log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	ParlourID   uint   `json:"parlour_id" binding:"required"`
	ServiceName string `json:"service_name" binding:"required,notblank,max=100"`
	Date        string `json:"date" binding:"required,datetime=2006-01-02"`
	Time        string `json:"time" binding:"required,datetime=15:04"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *AppointmentHandler) Book(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req BookAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	if _, err := h.book.Execute(c.Request.Context(), ucAppointment.BookAppointmentInput{
		UserID:      userID,
		ParlourID:   req.ParlourID,
		ServiceName: req.ServiceName,
		Date:        req.Date,
		Time:        req.Time,
	}); err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.Message(c, http.StatusOK, "Appointment booked")
}

func (h *AppointmentHandler) List(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	appointments, err := h.list.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.List(c, appointments)
}

// Cancel answers 200 even when nothing was removed.
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	appointmentID, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.cancel.Execute(c.Request.Context(), userID, appointmentID); err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.Message(c, http.StatusOK, "Appointment cancelled")
}
