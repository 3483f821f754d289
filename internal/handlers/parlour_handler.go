package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/parlour-booking/internal/httperr"
	"github.com/BruksfildServices01/parlour-booking/internal/httpresp"
	ucParlour "github.com/BruksfildServices01/parlour-booking/internal/usecase/parlour"
)

type ParlourHandler struct {
	listParlours *ucParlour.ListParlours
	listServices *ucParlour.ListServices
	log          *slog.Logger
}

func NewParlourHandler(
	listParlours *ucParlour.ListParlours,
	listServices *ucParlour.ListServices,
	log *slog.Logger,
) *ParlourHandler {
	return &ParlourHandler{
		listParlours: listParlours,
		listServices: listServices,
		log:          log,
	}
}

func (h *ParlourHandler) List(c *gin.Context) {
	parlours, err := h.listParlours.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.List(c, parlours)
}

func (h *ParlourHandler) Services(c *gin.Context) {
	parlourID, ok := idParam(c, "id")
	if !ok {
		return
	}

	services, err := h.listServices.Execute(c.Request.Context(), parlourID)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.List(c, services)
}
