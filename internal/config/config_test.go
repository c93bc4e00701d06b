package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"catalogadmin/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg := config.Load()
	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, "http://localhost:8080/", cfg.APIBaseURL)
	assert.Equal(t, time.Duration(0), cfg.APITimeout())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://backend:9000")
	t.Setenv("API_TIMEOUT_MS", "1500")
	t.Setenv("PORT", "9090")

	cfg := config.Load()
	assert.Equal(t, "http://backend:9000/", cfg.APIBaseURL)
	assert.Equal(t, 1500*time.Millisecond, cfg.APITimeout())
	assert.Equal(t, "9090", cfg.Port)
}
