// Package config reads the service configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// HTTP configures the gin server.
type HTTP struct {
	Port int `env:"PORT" envDefault:"8080"`
}

// AWS configures the DynamoDB client. Defaults are local-friendly: DynamoDB
// Local does not validate credentials but the SDK requires some.
type AWS struct {
	Region           string `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKeyID      string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	SecretAccessKey  string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	DynamoDBEndpoint string `env:"DYNAMODB_ENDPOINT"`
}

// Mail configures the SMTP notifier. An empty Host disables delivery
// (emails are logged and skipped).
type Mail struct {
	Host       string `env:"SMTP_HOST"`
	Port       int    `env:"SMTP_PORT" envDefault:"587"`
	User       string `env:"SMTP_USER"`
	Password   string `env:"SMTP_PASSWORD"`
	From       string `env:"MAIL_FROM" envDefault:"devis@mtr.tn"`
	AdminEmail string `env:"ADMIN_EMAIL"`
}

// Issuance tunes the two-phase pipeline.
type Issuance struct {
	CommitTimeout    time.Duration `env:"ISSUANCE_COMMIT_TIMEOUT" envDefault:"5s"`
	FinalizeTimeout  time.Duration `env:"ISSUANCE_FINALIZE_TIMEOUT" envDefault:"2m"`
	AttachmentBudget int64         `env:"ISSUANCE_ATTACHMENT_BUDGET" envDefault:"15728640"`
}

type Config struct {
	HTTP     HTTP
	AWS      AWS
	Mail     Mail
	Issuance Issuance
}

// Load parses the configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
