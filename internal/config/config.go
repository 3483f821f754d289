package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// MinJWTSecretLength applies in production only.
const MinJWTSecretLength = 32

// Upper bounds for argon2 cost parameters, both configured and read back
// from stored hashes.
const (
	MaxArgon2MemoryKiB = 1 << 20
	MaxArgon2Time      = 10
	MaxArgon2Threads   = 16
)

const devJWTSecret = "velura-dev-secret-change-me"

type Config struct {
	Env        string `env:"APP_ENV" envDefault:"development"`
	ServerHost string `env:"SERVER_HOST"`
	ServerPort string `env:"SERVER_PORT"`

	DB    DBConfig
	JWT   JWTConfig
	Log   LogConfig
	HTTP  HTTPConfig
	Image ImageConfig
	Hash  HashConfig

	TokenDenylist string `env:"TOKEN_DENYLIST" envDefault:"memory"`
	RedisURL      string `env:"REDIS_URL"`
}

type DBConfig struct {
	Driver          string        `env:"DB_DRIVER" envDefault:"sqlite"`
	URL             string        `env:"DATABASE_URL" envDefault:"velura.db"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`
	ConnMaxIdleTime time.Duration `env:"DB_CONN_MAX_IDLE_TIME" envDefault:"10m"`
	Seed            bool          `env:"DB_SEED" envDefault:"true"`
}

type JWTConfig struct {
	Secret string `env:"JWT_SECRET"`
	// Expiry of zero issues tokens without an exp claim.
	Expiry time.Duration `env:"JWT_EXPIRY" envDefault:"24h"`
	Issuer string        `env:"JWT_ISSUER" envDefault:"velura"`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPConfig struct {
	CORSOrigins    []string `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`
	LoginRateLimit float64  `env:"LOGIN_RATE_LIMIT" envDefault:"1"`
	LoginRateBurst int      `env:"LOGIN_RATE_BURST" envDefault:"5"`
	// TrustedProxies may set X-Forwarded-For. Empty trusts none.
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`
}

type ImageConfig struct {
	BaseURL       string        `env:"IMAGE_BASE_URL"`
	S3Bucket      string        `env:"S3_BUCKET"`
	S3Region      string        `env:"S3_REGION" envDefault:"us-east-1"`
	S3Endpoint    string        `env:"S3_ENDPOINT"`
	S3AccessKeyID string        `env:"S3_ACCESS_KEY_ID"`
	S3SecretKey   string        `env:"S3_SECRET_ACCESS_KEY"`
	S3PresignTTL  time.Duration `env:"S3_PRESIGN_TTL" envDefault:"15m"`
}

type HashConfig struct {
	MemoryKiB uint32 `env:"ARGON2_MEMORY_KIB" envDefault:"19456"`
	Time      uint32 `env:"ARGON2_TIME" envDefault:"2"`
	Threads   uint8  `env:"ARGON2_THREADS" envDefault:"1"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "loading .env")
	}
	return Parse()
}

// Parse builds a Config from the current environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "parsing config")
	}

	if cfg.ServerPort == "" {
		cfg.ServerPort = getEnv("PORT", "5000")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DB.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("DB_DRIVER must be sqlite or postgres, got %q", c.DB.Driver)
	}

	switch c.TokenDenylist {
	case "memory", "none":
	case "redis":
		if c.RedisURL == "" {
			return errors.New("REDIS_URL is required when TOKEN_DENYLIST=redis")
		}
	default:
		return fmt.Errorf("TOKEN_DENYLIST must be memory, redis or none, got %q", c.TokenDenylist)
	}

	if c.JWT.Expiry < 0 {
		return errors.New("JWT_EXPIRY must not be negative")
	}

	if c.JWT.Secret == "" {
		if c.IsProduction() {
			return errors.New("JWT_SECRET is required in production")
		}
		c.JWT.Secret = devJWTSecret
	}
	if c.IsProduction() && len(c.JWT.Secret) < MinJWTSecretLength {
		return fmt.Errorf("JWT_SECRET must be at least %d bytes long, got %d",
			MinJWTSecretLength, len(c.JWT.Secret))
	}

	if c.Hash.MemoryKiB == 0 || c.Hash.Time == 0 || c.Hash.Threads == 0 {
		return errors.New("argon2 parameters must be positive")
	}
	if c.Hash.MemoryKiB > MaxArgon2MemoryKiB || c.Hash.Time > MaxArgon2Time || c.Hash.Threads > MaxArgon2Threads {
		return fmt.Errorf("argon2 parameters exceed limits (memory %d KiB, time %d, threads %d)",
			MaxArgon2MemoryKiB, MaxArgon2Time, MaxArgon2Threads)
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

func (c *Config) UseS3Images() bool {
	return c.Image.S3Bucket != ""
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.ServerHost, c.ServerPort)
}
