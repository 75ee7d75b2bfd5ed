package config

import (
	"fmt"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"

	"github.com/pandamarket/api/pkg/database"
)

// Config is the full runtime configuration, loaded once at startup.
type Config struct {
	Env string `env:"APP_ENV,default=development"`

	HTTP struct {
		Port string `env:"PORT,default=8080"`
	}

	Log struct {
		Level string `env:"LOG_LEVEL,default=info"`
	}

	DB struct {
		Host     string `env:"DB_HOST,default=localhost"`
		Port     string `env:"DB_PORT,default=5432"`
		User     string `env:"DB_USER,default=postgres"`
		Password string `env:"DB_PASSWORD,default=postgres"`
		Name     string `env:"DB_NAME,default=pandamarket"`
		SSLMode  string `env:"DB_SSLMODE,default=disable"`
	}

	JWT struct {
		Secret string        `env:"JWT_SECRET,default=dev-secret"`
		TTL    time.Duration `env:"JWT_TTL,default=24h"`
	}

	Trace struct {
		JaegerEndpoint string `env:"JAEGER_ENDPOINT,default=http://localhost:14268/api/traces"`
	}

	Storage struct {
		Endpoint   string        `env:"STORAGE_ENDPOINT,default=localhost:9000"`
		AccessKey  string        `env:"STORAGE_ACCESS_KEY,default=minioadmin"`
		SecretKey  string        `env:"STORAGE_SECRET_KEY,default=minioadmin"`
		Bucket     string        `env:"STORAGE_BUCKET,default=pandamarket"`
		UseSSL     bool          `env:"STORAGE_USE_SSL,default=false"`
		PublicURL  string        `env:"STORAGE_PUBLIC_URL,default=http://localhost:9000/pandamarket"`
		PresignTTL time.Duration `env:"STORAGE_PRESIGN_TTL,default=15m"`
	}
}

// Load reads configuration from the environment, consulting a local .env
// file first when one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envdecode.StrictDecode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// IsDevelopment reports whether the app runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// DatabaseConfig converts the DB section into a connection config.
func (c *Config) DatabaseConfig() database.Config {
	return database.Config{
		Host:     c.DB.Host,
		Port:     c.DB.Port,
		User:     c.DB.User,
		Password: c.DB.Password,
		DBName:   c.DB.Name,
		SSLMode:  c.DB.SSLMode,
	}
}
