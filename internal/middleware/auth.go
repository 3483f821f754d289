package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	authdomain "github.com/BruksfildServices01/parlour-booking/internal/domain/auth"
	userdomain "github.com/BruksfildServices01/parlour-booking/internal/domain/user"
	"github.com/BruksfildServices01/parlour-booking/internal/httperr"
)

const (
	ContextUserID = "userID"
	ContextClaims = "authClaims"
)

// Gate resolves the caller from the bearer token and, for admin routes,
// checks the admin flag in the credential store.
type Gate struct {
	tokens authdomain.TokenService
	users  userdomain.Repository
	log    *slog.Logger
}

func NewGate(
	tokens authdomain.TokenService,
	users userdomain.Repository,
	log *slog.Logger,
) *Gate {
	return &Gate{
		tokens: tokens,
		users:  users,
		log:    log,
	}
}

// Authenticate resolves identity from the token alone; it never reads the store.
func (g *Gate) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthenticated(c)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			abortUnauthenticated(c)
			return
		}

		claims, err := g.tokens.Verify(c.Request.Context(), strings.TrimSpace(parts[1]))
		if err != nil {
			if httperr.IsBusiness(err, httperr.ErrUnauthenticated.Code) {
				abortUnauthenticated(c)
				return
			}
			httperr.Respond(c, g.log, err)
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextClaims, claims)

		c.Next()
	}
}

// RequireAdmin must run after Authenticate. Users that no longer exist are
// treated like non-admins.
func (g *Gate) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := UserID(c)
		if !ok {
			abortUnauthenticated(c)
			return
		}

		user, err := g.users.FindByID(c.Request.Context(), userID)
		if err != nil {
			if httperr.IsBusiness(err, httperr.ErrUserNotFound.Code) {
				abortForbidden(c)
				return
			}
			httperr.Respond(c, g.log, err)
			c.Abort()
			return
		}

		if !user.IsAdmin {
			abortForbidden(c)
			return
		}

		c.Next()
	}
}

func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok && id != 0
}

func Claims(c *gin.Context) (*authdomain.Claims, bool) {
	v, ok := c.Get(ContextClaims)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*authdomain.Claims)
	return claims, ok
}

func abortUnauthenticated(c *gin.Context) {
	_, msg := httperr.Status(httperr.ErrUnauthenticated.Code)
	httperr.Abort(c, http.StatusUnauthorized, httperr.ErrUnauthenticated.Code, msg)
}

func abortForbidden(c *gin.Context) {
	_, msg := httperr.Status(httperr.ErrForbidden.Code)
	httperr.Abort(c, http.StatusForbidden, httperr.ErrForbidden.Code, msg)
}
