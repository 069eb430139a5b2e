package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "uploads", cfg.AvatarDir)
	assert.Equal(t, "user_events", cfg.RabbitMQEventsQueue)
	assert.Equal(t, time.Hour, cfg.DBMaxConnLife)
	assert.True(t, cfg.MailSendEnabled)
	assert.Contains(t, cfg.PostgresDSN(), "postgres://")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("AVATAR_DIR", "/var/lib/avatars")
	t.Setenv("DB_MAX_CONNS", "25")
	t.Setenv("MAIL_SEND_ENABLED", "false")

	cfg := Load()
	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, "/var/lib/avatars", cfg.AvatarDir)
	assert.Equal(t, int32(25), cfg.DBMaxConns)
	assert.False(t, cfg.MailSendEnabled)
}

func TestValidate_RequiresMailgunWhenSendingEnabled(t *testing.T) {
	t.Setenv("MAIL_SEND_ENABLED", "true")
	cfg := Load()
	require.Error(t, cfg.Validate())

	t.Setenv("MAILGUN_DOMAIN", "mg.example.com")
	t.Setenv("MAILGUN_API_KEY", "key-test")
	t.Setenv("MAILGUN_SENDER", "no-reply@example.com")
	cfg = Load()
	require.NoError(t, cfg.Validate())
}

func TestValidate_MailDisabledSkipsMailgun(t *testing.T) {
	t.Setenv("MAIL_SEND_ENABLED", "false")
	cfg := Load()
	require.NoError(t, cfg.Validate())
}

func TestValidate_EmptyAvatarDir(t *testing.T) {
	t.Setenv("MAIL_SEND_ENABLED", "false")
	cfg := Load()
	cfg.AvatarDir = ""
	require.Error(t, cfg.Validate())
}
