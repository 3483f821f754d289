package auth

import (
	"fmt"

	"github.com/BruksfildServices01/parlour-booking/internal/config"
	domain "github.com/BruksfildServices01/parlour-booking/internal/domain/auth"
)

// NewDenylist builds the configured backend. It returns a nil Denylist for
// "none" and a cleanup func that is always safe to call.
func NewDenylist(cfg *config.Config) (domain.Denylist, func() error, error) {
	noop := func() error { return nil }

	switch cfg.TokenDenylist {
	case "none":
		return nil, noop, nil
	case "memory":
		return NewMemoryDenylist(), noop, nil
	case "redis":
		d, err := NewRedisDenylist(cfg.RedisURL)
		if err != nil {
			return nil, noop, err
		}
		return d, d.Close, nil
	default:
		return nil, noop, fmt.Errorf("unknown token denylist %q", cfg.TokenDenylist)
	}
}
