package routes

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/parlour-booking/internal/audit"
	"github.com/BruksfildServices01/parlour-booking/internal/config"
	authdomain "github.com/BruksfildServices01/parlour-booking/internal/domain/auth"
	"github.com/BruksfildServices01/parlour-booking/internal/httperr"
	infraAuth "github.com/BruksfildServices01/parlour-booking/internal/infra/auth"
	"github.com/BruksfildServices01/parlour-booking/internal/infra/storage"
	"github.com/BruksfildServices01/parlour-booking/internal/validators"
)

// Server is built once at startup and owns every shared dependency the
// handlers use. Nothing here is global.
type Server struct {
	Config *config.Config
	DB     *gorm.DB
	Log    *slog.Logger

	Engine *gin.Engine

	tokens authdomain.TokenService
	hasher authdomain.PasswordHasher
	images storage.ImageResolver
	audit  *audit.Dispatcher
}

// NewServer wires the engine. denylist may be nil to disable revocation.
func NewServer(
	cfg *config.Config,
	db *gorm.DB,
	log *slog.Logger,
	denylist authdomain.Denylist,
) (*Server, error) {

	if err := validators.RegisterBindings(); err != nil {
		return nil, err
	}

	images, err := storage.NewImageResolver(cfg.Image, log)
	if err != nil {
		return nil, errors.Wrap(err, "building image resolver")
	}

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		return nil, errors.Wrap(err, "setting trusted proxies")
	}

	s := &Server{
		Config: cfg,
		DB:     db,
		Log:    log,
		Engine: engine,
		tokens: infraAuth.NewJWTService(cfg.JWT, denylist, log),
		hasher: infraAuth.NewArgon2Hasher(cfg.Hash),
		images: images,
		audit:  audit.NewDispatcher(audit.New(db), log, 0),
	}

	if err := RegisterRoutes(s); err != nil {
		s.audit.Close()
		return nil, err
	}

	return s, nil
}

func (s *Server) Handler() http.Handler {
	return s.Engine
}

// Close flushes pending audit events.
func (s *Server) Close() {
	s.audit.Close()
}

func recovery(log *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, rec any) {
		log.ErrorContext(c.Request.Context(), "panic recovered",
			slog.Any("panic", rec),
			slog.String("path", c.Request.URL.Path),
		)
		httperr.Abort(c, http.StatusInternalServerError, "internal_error", "Internal server error")
	})
}
