// Package config loads runtime configuration from environment variables and
// an optional .env file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rogerio-castellano/inventario-api/internal/auth"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

const EnvProduction = "production"

type Config struct {
	// Server
	Env  string `mapstructure:"APP_ENV"`
	Port int    `mapstructure:"PORT"`

	// Stores. An empty DatabaseURL selects the in-memory store; an empty
	// RedisURL keeps login bans in process memory.
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	DBName      string `mapstructure:"DB_NAME"`
	RedisURL    string `mapstructure:"REDIS_URL"`

	CORSOrigins string `mapstructure:"CORS_ORIGINS"`

	// Auth
	JWTSecret  string        `mapstructure:"JWT_SECRET"`
	TokenTTL   time.Duration `mapstructure:"TOKEN_TTL"`
	BcryptCost int           `mapstructure:"BCRYPT_COST"`

	// Per-endpoint auth requirements for routes that are public by default.
	AuthConfiguracion bool `mapstructure:"AUTH_CONFIGURACION"`
	AuthAlertas       bool `mapstructure:"AUTH_ALERTAS"`

	// Abuse protection
	RateLimitRPS     float64       `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst   int           `mapstructure:"RATE_LIMIT_BURST"`
	LoginMaxStrikes  int           `mapstructure:"LOGIN_MAX_STRIKES"`
	LoginBanDuration time.Duration `mapstructure:"LOGIN_BAN_DURATION"`

	// Timezone in which alert "today" is evaluated; "Local" uses the host zone.
	Timezone string `mapstructure:"TIMEZONE"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", 8080)
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_NAME", "")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("JWT_SECRET", auth.InsecureDefaultSecret)
	v.SetDefault("TOKEN_TTL", auth.DefaultTokenTTL)
	v.SetDefault("BCRYPT_COST", bcrypt.DefaultCost)
	v.SetDefault("AUTH_CONFIGURACION", false)
	v.SetDefault("AUTH_ALERTAS", false)
	v.SetDefault("RATE_LIMIT_RPS", 10)
	v.SetDefault("RATE_LIMIT_BURST", 20)
	v.SetDefault("LOGIN_MAX_STRIKES", 5)
	v.SetDefault("LOGIN_BAN_DURATION", 15*time.Minute)
	v.SetDefault("TIMEZONE", "Local")
}

// Load reads configuration from the environment and, when present, a .env
// file in the working directory.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read .env: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate rejects settings that are unsafe outside development.
func (c *Config) Validate() error {
	if c.IsProduction() && (c.JWTSecret == "" || c.JWTSecret == auth.InsecureDefaultSecret) {
		return errors.New("JWT_SECRET must be set in production")
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET must not be empty")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, EnvProduction)
}

// AllowedOrigins splits CORS_ORIGINS on commas.
func (c *Config) AllowedOrigins() []string {
	origins := []string{}
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || strings.EqualFold(c.Timezone, "Local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}
