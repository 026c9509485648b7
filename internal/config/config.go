package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all process configuration, loaded from the environment.
// Defaults are for local development only.
type Config struct {
	Port string `envconfig:"PORT" default:"8080"`
	// DatabaseURL selects the durable message store. Empty means in-memory.
	DatabaseURL   string `envconfig:"DATABASE_URL"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD" default:"admin123"`
	SessionSecret string `envconfig:"SESSION_SECRET" default:"dev-secret-key"`
	FrontendURL   string `envconfig:"FRONTEND_URL" default:"http://localhost:5173"`
	// PublicDir is served as static files and holds the downloadable CV.
	PublicDir string `envconfig:"PUBLIC_DIR" default:"./public"`
	Env       string `envconfig:"ENV" default:"development"`
}

// Load は .env（存在する場合）と環境変数から Config を生成する
func Load() (Config, error) {
	_ = godotenv.Load()
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Production reports whether the process runs in production mode.
// Controls the Secure attribute on the session cookie.
func (c Config) Production() bool {
	return c.Env == "production"
}
