package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/dispatch")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)

	assert.InDelta(t, 0.40, cfg.Weights.Jurisdiction, 1e-9)
	assert.InDelta(t, 0.35, cfg.Weights.Proximity, 1e-9)
	assert.InDelta(t, 0.25, cfg.Weights.Severity, 1e-9)
	assert.InDelta(t, 15.0, cfg.ProximityCapKm, 1e-9)
	assert.InDelta(t, 0.5, cfg.MutualAidScore, 1e-9)

	assert.Equal(t, 3*time.Second, cfg.UnitLockTimeout)
	assert.Equal(t, 3, cfg.AssignMaxRetries)
	assert.Equal(t, 100*time.Millisecond, cfg.AssignRetryBackoff)

	// Таблица совместимости по умолчанию покрывает базовые категории
	assert.Contains(t, cfg.CategoryCompatibility, "FIRE")
	assert.Contains(t, cfg.CategoryCompatibility, "ACCIDENT")
}

func TestLoadConfig_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/dispatch")
	t.Setenv("DISPATCH_WEIGHT_JURISDICTION", "0.5")
	t.Setenv("DISPATCH_WEIGHT_PROXIMITY", "0.3")
	t.Setenv("DISPATCH_WEIGHT_SEVERITY", "0.2")
	t.Setenv("DISPATCH_PROXIMITY_CAP_KM", "25")
	t.Setenv("DISPATCH_ASSIGN_MAX_RETRIES", "5")
	t.Setenv("DISPATCH_ASSIGN_RETRY_BACKOFF", "250ms")
	t.Setenv("API_KEYS", "key-one, key-two")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.InDelta(t, 0.5, cfg.Weights.Jurisdiction, 1e-9)
	assert.InDelta(t, 0.3, cfg.Weights.Proximity, 1e-9)
	assert.InDelta(t, 0.2, cfg.Weights.Severity, 1e-9)
	assert.InDelta(t, 25.0, cfg.ProximityCapKm, 1e-9)
	assert.Equal(t, 5, cfg.AssignMaxRetries)
	assert.Equal(t, 250*time.Millisecond, cfg.AssignRetryBackoff)
	assert.Equal(t, []string{"key-one", "key-two"}, cfg.APIKeys)
}

func TestLoadConfig_CategoryCompatibilityOverride(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/dispatch")
	t.Setenv("DISPATCH_CATEGORY_COMPATIBILITY", `{"FLOOD":["FIRE","GENERAL"]}`)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, map[string][]string{"FLOOD": {"FIRE", "GENERAL"}}, cfg.CategoryCompatibility)
}

func TestLoadConfig_InvalidCategoryCompatibility(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/dispatch")
	t.Setenv("DISPATCH_CATEGORY_COMPATIBILITY", "{broken")

	_, err := LoadConfig()
	assert.Error(t, err)
}
