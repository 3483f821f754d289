package auth

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/BruksfildServices01/parlour-booking/internal/config"
	domain "github.com/BruksfildServices01/parlour-booking/internal/domain/auth"
	"github.com/BruksfildServices01/parlour-booking/internal/httperr"
)

// JWTService issues HS256 tokens carrying the user id as subject and a
// random jti used for revocation.
type JWTService struct {
	secret   []byte
	issuer   string
	expiry   time.Duration
	denylist domain.Denylist
	log      *slog.Logger
	now      func() time.Time
}

// NewJWTService accepts a nil denylist, in which case Revoke is a no-op.
func NewJWTService(
	cfg config.JWTConfig,
	denylist domain.Denylist,
	log *slog.Logger,
) *JWTService {
	return &JWTService{
		secret:   []byte(cfg.Secret),
		issuer:   cfg.Issuer,
		expiry:   cfg.Expiry,
		denylist: denylist,
		log:      log,
		now:      time.Now,
	}
}

func (s *JWTService) Issue(userID uint) (string, error) {
	now := s.now()

	claims := jwt.RegisteredClaims{
		Subject:  strconv.FormatUint(uint64(userID), 10),
		Issuer:   s.issuer,
		ID:       uuid.NewString(),
		IssuedAt: jwt.NewNumericDate(now),
	}
	if s.expiry > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.expiry))
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "signing token")
	}
	return signed, nil
}

func (s *JWTService) Verify(ctx context.Context, raw string) (*domain.Claims, error) {
	var rc jwt.RegisteredClaims

	opts := []jwt.ParserOption{
		jwt.WithIssuer(s.issuer),
		jwt.WithTimeFunc(s.now),
	}
	if s.expiry > 0 {
		opts = append(opts, jwt.WithIssuedAt(), jwt.WithExpirationRequired())
	}

	token, err := jwt.ParseWithClaims(raw, &rc,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return s.secret, nil
		},
		opts...,
	)
	if err != nil || !token.Valid {
		return nil, httperr.ErrUnauthenticated
	}

	// The configured expiry bounds tokens minted under older, longer settings.
	var deadline time.Time
	if s.expiry > 0 {
		if rc.IssuedAt == nil {
			return nil, httperr.ErrUnauthenticated
		}
		deadline = rc.IssuedAt.Add(s.expiry)
		if rc.ExpiresAt != nil && rc.ExpiresAt.Before(deadline) {
			deadline = rc.ExpiresAt.Time
		}
		if !s.now().Before(deadline) {
			return nil, httperr.ErrUnauthenticated
		}
	} else if rc.ExpiresAt != nil {
		deadline = rc.ExpiresAt.Time
	}

	id, err := strconv.ParseUint(rc.Subject, 10, 64)
	if err != nil || id == 0 {
		return nil, httperr.ErrUnauthenticated
	}

	claims := &domain.Claims{
		UserID:    uint(id),
		TokenID:   rc.ID,
		ExpiresAt: deadline,
	}

	if s.denylist != nil && rc.ID != "" {
		revoked, err := s.denylist.Contains(ctx, rc.ID)
		if err != nil {
			return nil, errors.Wrap(err, "checking token denylist")
		}
		if revoked {
			return nil, httperr.ErrUnauthenticated
		}
	}

	return claims, nil
}

func (s *JWTService) Revoke(ctx context.Context, claims *domain.Claims) error {
	if s.denylist == nil || claims == nil || claims.TokenID == "" {
		return nil
	}

	var ttl time.Duration
	if !claims.ExpiresAt.IsZero() {
		ttl = claims.ExpiresAt.Sub(s.now())
		if ttl <= 0 {
			return nil
		}
	}

	if err := s.denylist.Add(ctx, claims.TokenID, ttl); err != nil {
		return errors.Wrap(err, "revoking token")
	}

	s.log.Debug("token revoked",
		slog.Uint64("user_id", uint64(claims.UserID)),
		slog.String("jti", claims.TokenID),
	)
	return nil
}

// Compile-time check
var _ domain.TokenService = (*JWTService)(nil)
