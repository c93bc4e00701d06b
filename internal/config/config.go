package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port         string `mapstructure:"PORT"`
	APIBaseURL   string `mapstructure:"API_BASE_URL"`
	APITimeoutMs int    `mapstructure:"API_TIMEOUT_MS"`
	TemplatesDir string `mapstructure:"TEMPLATES_DIR"`
	StaticDir    string `mapstructure:"STATIC_DIR"`
	LogFile      string `mapstructure:"LOG_FILE"`

	// Development backend (cmd/catalogapi)
	DevAPIPort string `mapstructure:"DEV_API_PORT"`
	DevAPIDSN  string `mapstructure:"DEV_API_DSN"`
}

// APITimeout is zero unless API_TIMEOUT_MS is set; zero means wait indefinitely.
func (c Config) APITimeout() time.Duration {
	return time.Duration(c.APITimeoutMs) * time.Millisecond
}

// Load reads the environment and an optional .env file in the working directory.
func Load() Config {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	v.SetDefault("PORT", "8081")
	v.SetDefault("API_BASE_URL", "http://localhost:8080/")
	v.SetDefault("API_TIMEOUT_MS", 0)
	v.SetDefault("TEMPLATES_DIR", "./web/templates")
	v.SetDefault("STATIC_DIR", "./web/static")
	v.SetDefault("LOG_FILE", "./catalogadmin.log")
	v.SetDefault("DEV_API_PORT", "8080")
	v.SetDefault("DEV_API_DSN", "catalog.db") // sqlite file in project root

	// .env is optional
	_ = v.ReadInConfig()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Printf("[warn] config: %v", err)
	}
	// resource paths are appended directly, like VITE_API_URL + "api/producto"
	if !strings.HasSuffix(cfg.APIBaseURL, "/") {
		cfg.APIBaseURL += "/"
	}

	log.Printf("[config] PORT=%s API_BASE_URL=%s API_TIMEOUT_MS=%d TEMPLATES_DIR=%s LOG_FILE=%s",
		cfg.Port, cfg.APIBaseURL, cfg.APITimeoutMs, cfg.TemplatesDir, cfg.LogFile)
	return cfg
}
