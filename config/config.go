package config

import (
	"os"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func New() (*Config, error) {
	var Config Config
	err := godotenv.Load(".env")
	if err != nil {
		logrus.Error("Error can't get the environment variables by file")
	}
	if err := env.Parse(&Config); err != nil {
		logrus.Fatalf("Error initializing: %s", err.Error())
		os.Exit(1)
	}
	return &Config, nil
}

type Config struct {
	APP
	Twilio
	GhostPay
	Duckfy
	Notification
}

type APP struct {
	PORT string `env:"APP_PORT" envDefault:"8080"`
}

type Twilio struct {
	AccountSID   string `env:"TWILIO_ACCOUNT_SID"`
	APIKeySID    string `env:"TWILIO_API_KEY_SID"`
	APIKeySecret string `env:"TWILIO_API_KEY_SECRET"`
	PhoneNumber  string `env:"TWILIO_PHONE_NUMBER"`
}

type GhostPay struct {
	SecretKey string `env:"GHOSTPAY_SECRET_KEY"`
	APIURL    string `env:"GHOSTPAY_API_URL" envDefault:"https://app.ghostspaysv1.com"`
}

type Duckfy struct {
	WebhookToken string `env:"DUCKFY_WEBHOOK_TOKEN"`
}

type Notification struct {
	StoreName string `env:"STORE_NAME" envDefault:"Sua Loja"`
}

// MissingVars returns the names of the Twilio environment variables that are
// not set. SMS sending is disabled when any of them is missing.
func (t Twilio) MissingVars() []string {
	var missing []string
	if t.AccountSID == "" {
		missing = append(missing, "TWILIO_ACCOUNT_SID")
	}
	if t.APIKeySID == "" {
		missing = append(missing, "TWILIO_API_KEY_SID")
	}
	if t.APIKeySecret == "" {
		missing = append(missing, "TWILIO_API_KEY_SECRET")
	}
	if t.PhoneNumber == "" {
		missing = append(missing, "TWILIO_PHONE_NUMBER")
	}
	return missing
}
