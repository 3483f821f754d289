package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/parlour-booking/internal/httperr"
	"github.com/BruksfildServices01/parlour-booking/internal/httpresp"
	"github.com/BruksfildServices01/parlour-booking/internal/middleware"
	ucAuth "github.com/BruksfildServices01/parlour-booking/internal/usecase/auth"
)

// ======================================================
// HANDLER
// ======================================================

type AuthHandler struct {
	register *ucAuth.Register
	login    *ucAuth.Login
	logout   *ucAuth.Logout
	me       *ucAuth.GetMe
	log      *slog.Logger
}

func NewAuthHandler(
	register *ucAuth.Register,
	login *ucAuth.Login,
	logout *ucAuth.Logout,
	me *ucAuth.GetMe,
	log *slog.Logger,
) *AuthHandler {
	return &AuthHandler{
		register: register,
		login:    login,
		logout:   logout,
		me:       me,
		log:      log,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,notblank"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,notblank"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	if _, err := h.register.Execute(c.Request.Context(), ucAuth.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
	}); err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.Message(c, http.StatusCreated, "User registered")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.login.Execute(c.Request.Context(), ucAuth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.OK(c, out)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := middleware.Claims(c)
	if !ok {
		_, msg := httperr.Status(httperr.ErrUnauthenticated.Code)
		httperr.Unauthorized(c, httperr.ErrUnauthenticated.Code, msg)
		return
	}

	if err := h.logout.Execute(c.Request.Context(), claims); err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.Message(c, http.StatusOK, "Logged out")
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	me, err := h.me.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.OK(c, me)
}
