package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/argon2"

	"github.com/BruksfildServices01/parlour-booking/internal/config"
	domain "github.com/BruksfildServices01/parlour-booking/internal/domain/auth"
)

const (
	argon2KeyLen  = 32
	argon2SaltLen = 16
)

const maxArgon2KeyLen = 128

// Argon2Hasher encodes hashes as $argon2id$v=19$m=<kib>,t=<n>,p=<n>$salt$hash.
type Argon2Hasher struct {
	memory  uint32
	time    uint32
	threads uint8
}

func NewArgon2Hasher(cfg config.HashConfig) *Argon2Hasher {
	return &Argon2Hasher{
		memory:  cfg.MemoryKiB,
		time:    cfg.Time,
		threads: cfg.Threads,
	}
}

func (h *Argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, argon2SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "generating salt")
	}

	key := argon2.IDKey([]byte(password), salt, h.time, h.memory, h.threads, argon2KeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, h.memory, h.time, h.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify reads the cost parameters from the hash itself, so hashes made
// under older settings keep verifying.
func (h *Argon2Hasher) Verify(password, encoded string) bool {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return false
	}

	var memory, timeCost uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &timeCost, &threads); err != nil {
		return false
	}
	if memory == 0 || timeCost == 0 || threads == 0 {
		return false
	}
	if memory > config.MaxArgon2MemoryKiB || timeCost > config.MaxArgon2Time || threads > config.MaxArgon2Threads {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false
	}
	expected, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(expected) == 0 || len(expected) > maxArgon2KeyLen {
		return false
	}

	actual := argon2.IDKey([]byte(password), salt, timeCost, memory, threads, uint32(len(expected)))
	return subtle.ConstantTimeCompare(actual, expected) == 1
}

// Compile-time check
var _ domain.PasswordHasher = (*Argon2Hasher)(nil)
