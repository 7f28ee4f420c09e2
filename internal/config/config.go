package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"PCS"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	Server struct {
		Timeout        time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
		AllowedOrigins string        `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:5173"`
	}

	Goods struct {
		// SeedFile replaces the built-in seed with a manifest CSV when set.
		SeedFile  string `envconfig:"GOODS_SEED_FILE"`
		ExportDir string `envconfig:"EXPORT_DIR" default:"./exports"`
	}

	Log struct {
		Level  string `envconfig:"LOG_LEVEL" default:"info"`
		Format string `envconfig:"LOG_FORMAT" default:"text"`
		File   string `envconfig:"LOG_FILE"`
	}
}

// Origins splits the comma-separated CORS origin list.
func (c *Config) Origins() []string {
	var origins []string

	for _, o := range strings.Split(c.Server.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return origins
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
