package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/parlour-booking/internal/httperr"
	"github.com/BruksfildServices01/parlour-booking/internal/httpresp"
	ucParlour "github.com/BruksfildServices01/parlour-booking/internal/usecase/parlour"
)

type AdminHandler struct {
	createParlour *ucParlour.CreateParlour
	createService *ucParlour.CreateService
	log           *slog.Logger
}

func NewAdminHandler(
	createParlour *ucParlour.CreateParlour,
	createService *ucParlour.CreateService,
	log *slog.Logger,
) *AdminHandler {
	return &AdminHandler{
		createParlour: createParlour,
		createService: createService,
		log:           log,
	}
}

// --------- Requests ---------

type CreateParlourRequest struct {
	Name     string   `json:"name" binding:"required,notblank,max=100"`
	Location string   `json:"location" binding:"required,notblank,max=255"`
	Image    *string  `json:"image" binding:"omitempty,max=255"`
	Rating   *float64 `json:"rating" binding:"omitempty,gte=0,lte=5"`
}

type CreateServiceRequest struct {
	ParlourID uint     `json:"parlour_id" binding:"required"`
	Name      string   `json:"name" binding:"required,notblank,max=100"`
	Price     *float64 `json:"price" binding:"required,gte=0"`
	Image     *string  `json:"image" binding:"omitempty,max=255"`
}

// --------- Handlers ---------

func (h *AdminHandler) CreateParlour(c *gin.Context) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}

	var req CreateParlourRequest
	if !bindJSON(c, &req) {
		return
	}

	in := ucParlour.CreateParlourInput{
		ActorID:  actorID,
		Name:     req.Name,
		Location: req.Location,
		Image:    req.Image,
	}
	if req.Rating != nil {
		in.Rating = *req.Rating
	}

	if _, err := h.createParlour.Execute(c.Request.Context(), in); err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.Message(c, http.StatusCreated, "Parlour added")
}

func (h *AdminHandler) CreateService(c *gin.Context) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}

	var req CreateServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	if _, err := h.createService.Execute(c.Request.Context(), ucParlour.CreateServiceInput{
		ActorID:   actorID,
		ParlourID: req.ParlourID,
		Name:      req.Name,
		Price:     *req.Price,
		Image:     req.Image,
	}); err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.Message(c, http.StatusCreated, "Service added")
}
