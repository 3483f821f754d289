package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/parlour-booking/internal/httperr"
	"github.com/BruksfildServices01/parlour-booking/internal/middleware"
	"github.com/BruksfildServices01/parlour-booking/internal/validators"
)

// bindJSON writes a 400 and returns false when the body does not bind.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.BadRequest(c, httperr.ErrValidation.Code, validators.Describe(err))
		return false
	}
	return true
}

// idParam parses a positive numeric path parameter.
func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, httperr.ErrValidation.Code, name+" must be a positive integer")
		return 0, false
	}
	return uint(id), true
}

// currentUser reads the id placed by the auth gate.
func currentUser(c *gin.Context) (uint, bool) {
	id, ok := middleware.UserID(c)
	if !ok {
		_, msg := httperr.Status(httperr.ErrUnauthenticated.Code)
		httperr.Unauthorized(c, httperr.ErrUnauthenticated.Code, msg)
	}
	return id, ok
}
