package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	AuthModeDev   = "dev"
	AuthModeBasic = "basic"

	defaultConfigFile = "config.yaml"
)

// Config se arma en tres capas: defaults, archivo YAML opcional y env.
// Las variables de entorno siempre ganan.
type Config struct {
	AppName string `yaml:"app_name"`
	Port    string `yaml:"port"`

	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`

	Database struct {
		DSN     string `yaml:"dsn"`
		Migrate bool   `yaml:"migrate"`
	} `yaml:"database"`

	Auth struct {
		Mode       string `yaml:"mode"`
		BcryptCost int    `yaml:"bcrypt_cost"`

		// AllowDev habilita el modo dev (header X-Debug-User-ID sin verificar)
		// aun con Postgres configurado.
		AllowDev bool `yaml:"allow_dev"`
	} `yaml:"auth"`

	Redis struct {
		Addr     string        `yaml:"addr"`
		Password string        `yaml:"password"`
		DB       int           `yaml:"db"`
		TTL      time.Duration `yaml:"ttl"`
	} `yaml:"redis"`

	HTTP struct {
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"http"`

	StaticDir string `yaml:"static_dir"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`
}

func Defaults() Config {
	var c Config
	c.AppName = "breed-registry"
	c.Port = "8080"
	c.Log.Level = "info"
	c.Log.Format = "text"
	c.Database.Migrate = true
	c.Auth.Mode = AuthModeBasic
	c.Auth.BcryptCost = 12
	c.Redis.TTL = 5 * time.Minute
	c.HTTP.ReadTimeout = 5 * time.Second
	c.HTTP.WriteTimeout = 10 * time.Second
	c.HTTP.ShutdownTimeout = 10 * time.Second
	c.StaticDir = "web"
	c.CORS.AllowedOrigins = []string{"*"}
	return c
}

// Load lee .env (si existe), después CONFIG_FILE (default config.yaml, opcional)
// y por último las variables de entorno.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Defaults()

	path := os.Getenv("CONFIG_FILE")
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}
	if err := cfg.loadFile(path); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return Config{}, err
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.AppName = getEnv("APP_NAME", c.AppName)
	c.Port = getEnv("PORT", c.Port)
	c.Log.Level = getEnv("LOG_LEVEL", c.Log.Level)
	c.Log.Format = getEnv("LOG_FORMAT", c.Log.Format)

	// DATABASE_URL queda como alias.
	c.Database.DSN = getEnv("DB_DSN", getEnv("DATABASE_URL", c.Database.DSN))
	c.Database.Migrate = getEnvAsBool("DB_MIGRATE", c.Database.Migrate)

	c.Auth.Mode = strings.ToLower(getEnv("AUTH_MODE", c.Auth.Mode))
	c.Auth.BcryptCost = getEnvAsInt("BCRYPT_COST", c.Auth.BcryptCost)
	c.Auth.AllowDev = getEnvAsBool("AUTH_ALLOW_DEV", c.Auth.AllowDev)

	c.Redis.Addr = getEnv("REDIS_ADDR", c.Redis.Addr)
	c.Redis.Password = getEnv("REDIS_PASSWORD", c.Redis.Password)
	c.Redis.DB = getEnvAsInt("REDIS_DB", c.Redis.DB)
	c.Redis.TTL = getEnvAsDuration("CACHE_TTL", c.Redis.TTL)

	c.StaticDir = getEnv("STATIC_DIR", c.StaticDir)
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		c.CORS.AllowedOrigins = splitList(v)
	}
}

func (c Config) Validate() error {
	var errs []error

	if n, err := strconv.Atoi(c.Port); err != nil || n <= 0 || n > 65535 {
		errs = append(errs, fmt.Errorf("invalid port %q", c.Port))
	}
	switch c.Auth.Mode {
	case AuthModeDev, AuthModeBasic:
	default:
		errs = append(errs, fmt.Errorf("invalid auth mode %q (dev|basic)", c.Auth.Mode))
	}
	// En dev cualquiera puede actuar como admin con solo un header.
	if c.Auth.Mode == AuthModeDev && c.Database.DSN != "" && !c.Auth.AllowDev {
		errs = append(errs, errors.New("auth mode dev with a database requires AUTH_ALLOW_DEV=true"))
	}
	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		errs = append(errs, fmt.Errorf("invalid bcrypt cost %d (4-31)", c.Auth.BcryptCost))
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("invalid log format %q (text|json)", c.Log.Format))
	}
	if c.Redis.TTL <= 0 {
		errs = append(errs, fmt.Errorf("invalid cache ttl %s", c.Redis.TTL))
	}
	if c.HTTP.ReadTimeout <= 0 || c.HTTP.WriteTimeout <= 0 {
		errs = append(errs, errors.New("http timeouts must be positive"))
	}

	return errors.Join(errs...)
}

func (c Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(strings.TrimSpace(value)); err == nil {
			return d
		}
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
