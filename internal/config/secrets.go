package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Secrets holds the values that never go into the TOML file.
// EMAIL_USER doubles as both the SMTP login and the sender/recipient
// address, the reports are mailed back to the account that sends them.
type Secrets struct {
	EmailUser string `envconfig:"EMAIL_USER" required:"true"`
	EmailPass string `envconfig:"EMAIL_PASS" required:"true"`
	SentryDSN string `envconfig:"SENTRY_DSN"`
}

func LoadSecrets() (*Secrets, error) {
	var secrets Secrets
	if err := envconfig.Process("", &secrets); err != nil {
		return nil, fmt.Errorf("process env secrets: %w", err)
	}
	return &secrets, nil
}
