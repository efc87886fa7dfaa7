package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SESSION_BACKEND", "")
	t.Setenv("CATALOG_SOURCE", "")
	t.Setenv("JWT_EXPIRY_HOURS", "")

	cfg := Load()
	assert.Equal(t, SessionBackendMemory, cfg.SessionBackend)
	assert.Equal(t, CatalogSourceStatic, cfg.CatalogSource)
	assert.Equal(t, 12*time.Hour, cfg.JWTExpiry)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SESSION_BACKEND", " Redis ")
	t.Setenv("CATALOG_SOURCE", "bogus")
	t.Setenv("JWT_EXPIRY_HOURS", "2")
	t.Setenv("MAX_DB_CONNS", "not-a-number")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, ,http://b.test")

	cfg := Load()
	assert.Equal(t, SessionBackendRedis, cfg.SessionBackend)
	assert.Equal(t, CatalogSourceStatic, cfg.CatalogSource)
	assert.Equal(t, 2*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, int32(4), cfg.MaxDBConns)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
}

func TestLoadRejectsNonPositiveDurations(t *testing.T) {
	t.Setenv("JANITOR_INTERVAL_SECONDS", "0")
	t.Setenv("JWT_EXPIRY_HOURS", "-3")
	t.Setenv("MAX_DB_CONNS", "0")

	cfg := Load()
	assert.Equal(t, time.Minute, cfg.JanitorInterval)
	assert.Equal(t, 12*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, int32(4), cfg.MaxDBConns)

	t.Setenv("JANITOR_INTERVAL_SECONDS", "-10")
	assert.Equal(t, time.Minute, Load().JanitorInterval)
}

func TestSessionStateKey(t *testing.T) {
	assert.Equal(t, "portal:session:abc", CacheKey.SessionStateKey("abc"))
	assert.Equal(t, "portal:session:*", CacheKey.SessionStatePattern())
}
