package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewInternalConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg := NewInternalConfig()

	assert.Equal(t, "test-secret", cfg.JWT.Secret)
	assert.Equal(t, 24, cfg.JWT.ExpiryInHours)
	assert.Equal(t, "api", cfg.App.EndpointPrefix)
	assert.Equal(t, "v1", cfg.App.Version)
	assert.Equal(t, "appointment.events", cfg.RabbitMQ.EventExchange)
	assert.Equal(t, "appointment.notifications", cfg.RabbitMQ.NotificationQueue)
	assert.False(t, cfg.App.IsProduction())
}

func TestNewInternalConfigFromEnvironment(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_PORT", ":9090")
	t.Setenv("APP_LOGIN_MAX_ATTEMPTS", "3")
	t.Setenv("APP_CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg := NewInternalConfig()

	assert.True(t, cfg.App.IsProduction())
	assert.Equal(t, ":9090", cfg.App.Port)
	assert.Equal(t, 3, cfg.App.LoginMaxAttempts)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.App.CORSAllowedOrigins)
}

func TestNewDriverConfigFromEnvironment(t *testing.T) {
	t.Setenv("MONGODB_DB_NAME", "mamacare_test")
	t.Setenv("REDIS_DB", "2")

	cfg := NewDriverConfig()

	assert.Equal(t, "mamacare_test", cfg.MongoDB.DbName)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, "localhost", cfg.RabbitMQ.Host)
}
