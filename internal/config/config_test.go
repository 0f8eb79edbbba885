package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"APP_PORT", "PORT", "OTP_TTL", "OTP_STORE", "ALLOWED_ORIGINS", "FRONTEND_URL", "MAIL_PROVIDER"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	assert.Equal(t, "3000", cfg.AppPort)
	assert.Equal(t, 5*time.Minute, cfg.OTP.TTL)
	assert.Equal(t, "dynamo", cfg.OTP.Store)
	assert.Equal(t, "smtp", cfg.Mail.Provider)
	assert.Equal(t, "Logistics Net", cfg.Mail.FromName)
	assert.Equal(t, []string{"https://logistics-net.vercel.app"}, cfg.AllowedOrigins)
	assert.Equal(t, 30*time.Second, cfg.Predictor.Timeout)
}

func TestLoad_FrontendURLFallsBackForCORS(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", "")
	t.Setenv("FRONTEND_URL", "http://localhost:5173")
	assert.Equal(t, []string{"http://localhost:5173"}, Load().AllowedOrigins)
}

func TestLoad_PortAlias(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("PORT", "8080")
	assert.Equal(t, "8080", Load().AppPort)
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("X_DUR", "90s")
	assert.Equal(t, 90*time.Second, getEnvDuration("X_DUR", time.Second))

	t.Setenv("X_DUR", "300")
	assert.Equal(t, 300*time.Second, getEnvDuration("X_DUR", time.Second))

	t.Setenv("X_DUR", "soon")
	assert.Equal(t, time.Second, getEnvDuration("X_DUR", time.Second))
}

func TestLoad_GmailFallbacks(t *testing.T) {
	t.Setenv("SMTP_USERNAME", "")
	t.Setenv("SMTP_PASSWORD", "")
	t.Setenv("GMAIL_USER", "ops@logistics-net.app")
	t.Setenv("GMAIL_APP_PASS", "abcd efgh ijkl mnop")
	cfg := Load()
	assert.Equal(t, "ops@logistics-net.app", cfg.Mail.SMTPUsername)
	assert.Equal(t, "abcd efgh ijkl mnop", cfg.Mail.SMTPPassword)
}

func TestLoad_TrustProxy(t *testing.T) {
	t.Setenv("TRUST_PROXY", "")
	assert.False(t, Load().TrustProxy)
	t.Setenv("TRUST_PROXY", "true")
	assert.True(t, Load().TrustProxy)
	t.Setenv("TRUST_PROXY", "maybe")
	assert.False(t, Load().TrustProxy)
}

func TestGetEnvInt_InvalidFallsBack(t *testing.T) {
	t.Setenv("X_INT", "ten")
	assert.Equal(t, 10, getEnvInt("X_INT", 10))
}
