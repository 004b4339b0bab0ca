package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.RefreshTTL)
	assert.Equal(t, 3, cfg.PasswordStrength.MinLength)
	assert.Equal(t, 256, cfg.QRCode.Size)
	assert.Equal(t, 10*time.Minute, cfg.Redis.TTL)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, "Persons List", cfg.Reports.PDFTitle)
	assert.Equal(t, 5, cfg.RateLimit.LoginBurst)
	assert.Equal(t, 8081, cfg.Worker.Port)
	assert.False(t, cfg.Migrations.AutoMigrate)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Auth:             &AuthConfig{AccessTTL: time.Minute, RefreshTTL: time.Hour},
		PasswordStrength: &PasswordStrengthConfig{MinLength: 8},
		Reports:          &ReportsConfig{PDFTitle: "Contacts", MaxColumnWidth: 40},
		Worker:           &WorkerConfig{Port: 9000},
	}

	applyDefaults(cfg)

	assert.Equal(t, time.Minute, cfg.Auth.AccessTTL)
	assert.Equal(t, time.Hour, cfg.Auth.RefreshTTL)
	assert.Equal(t, 8, cfg.PasswordStrength.MinLength)
	assert.Equal(t, "Contacts", cfg.Reports.PDFTitle)
	assert.InDelta(t, 40.0, cfg.Reports.MaxColumnWidth, 0.001)
	assert.Equal(t, 9000, cfg.Worker.Port)
}

func TestLoadWithEnv_OverridesFromEnvironment(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("REDIS_ADDR", "cache:6379")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr)
	assert.Equal(t, "contacts", cfg.Env.ServiceName)
	require.Len(t, cfg.ResponseHeaders, 2)
	assert.Equal(t, "X-Custom-Key", cfg.ResponseHeaders[0].Key)
}
