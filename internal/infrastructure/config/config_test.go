package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "us-east-1", cfg.AWS.Region)
	assert.Equal(t, 587, cfg.Mail.Port)
	assert.Equal(t, "devis@mtr.tn", cfg.Mail.From)
	assert.Empty(t, cfg.Mail.Host)
	assert.Equal(t, 5*time.Second, cfg.Issuance.CommitTimeout)
	assert.Equal(t, 2*time.Minute, cfg.Issuance.FinalizeTimeout)
	assert.Equal(t, int64(15728640), cfg.Issuance.AttachmentBudget)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("AWS_REGION", "eu-west-3")
	t.Setenv("DYNAMODB_ENDPOINT", "http://localhost:8000")
	t.Setenv("SMTP_HOST", "smtp.mtr.tn")
	t.Setenv("SMTP_USER", "mailer")
	t.Setenv("ADMIN_EMAIL", "admin@mtr.tn")
	t.Setenv("ISSUANCE_COMMIT_TIMEOUT", "10s")
	t.Setenv("ISSUANCE_ATTACHMENT_BUDGET", "1048576")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "eu-west-3", cfg.AWS.Region)
	assert.Equal(t, "http://localhost:8000", cfg.AWS.DynamoDBEndpoint)
	assert.Equal(t, "smtp.mtr.tn", cfg.Mail.Host)
	assert.Equal(t, "mailer", cfg.Mail.User)
	assert.Equal(t, "admin@mtr.tn", cfg.Mail.AdminEmail)
	assert.Equal(t, 10*time.Second, cfg.Issuance.CommitTimeout)
	assert.Equal(t, int64(1048576), cfg.Issuance.AttachmentBudget)
}

func TestLoadInvalidValue(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	_, err := Load()
	require.Error(t, err)
}
