package config

import (
	"testing"
	"time"

	"github.com/andriwidianto/securewatch/util"
	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("APPENV", "test")

	cfg := LoadConfig()
	assert.NotNil(t, cfg)
	assert.Equal(t, "securewatch", cfg.AppName)
	assert.Equal(t, uint16(5000), cfg.AppPort)
	assert.Equal(t, util.DevJWTSecret, cfg.JWTSecret, "unset JWT_SECRET falls back to the dev default")
	assert.Equal(t, 5, cfg.LoginRateLimit)
	assert.Equal(t, 15*time.Minute, cfg.LoginRateWindow)
}

func TestLoadConfigSingleton(t *testing.T) {
	t.Setenv("APPENV", "test")

	first := LoadConfig()
	second := LoadConfig()
	assert.Same(t, first, second)
}
