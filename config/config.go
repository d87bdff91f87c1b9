package config

import (
	"os"
	"strconv"
	"strings"
)

// Config is the single explicitly constructed configuration object.
// Load reads it once at startup; components receive what they need
// through their constructors instead of via package-level state.
type Config struct {
	Port        string
	DatabaseURL string
	DataDir     string

	JWTSecret      string
	JWTExpiryHours int

	AllowedOrigins []string
	FrontendURL    string

	StripeSecretKey  string
	StripePriceIDPro string

	TwilioAccountSID     string
	TwilioAuthToken      string
	TwilioPhoneNumber    string
	TwilioWhatsAppNumber string
	OwnerPhone           string
}

func Load() Config {
	cfg := Config{
		Port:        getenv("PORT", "8080"),
		DatabaseURL: os.Getenv("DB_URL"),
		DataDir:     getenv("DATA_DIR", "data"),

		JWTSecret:      os.Getenv("JWT_SECRET"),
		JWTExpiryHours: 24,

		FrontendURL: getenv("FRONTEND_URL", "http://localhost:3000"),

		StripeSecretKey:  os.Getenv("STRIPE_SECRET_KEY"),
		StripePriceIDPro: os.Getenv("STRIPE_PRICE_ID_PRO"),

		TwilioAccountSID:     os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:      os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioPhoneNumber:    os.Getenv("TWILIO_PHONE_NUMBER"),
		TwilioWhatsAppNumber: os.Getenv("TWILIO_WHATSAPP_NUMBER"),
		OwnerPhone:           os.Getenv("OWNER_PHONE"),
	}

	if env := os.Getenv("JWT_EXPIRY_HOURS"); env != "" {
		if h, err := strconv.Atoi(env); err == nil {
			cfg.JWTExpiryHours = h
		}
	}

	if env := os.Getenv("ALLOWED_ORIGINS"); env != "" {
		for _, origin := range strings.Split(env, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
			}
		}
	} else {
		cfg.AllowedOrigins = []string{cfg.FrontendURL}
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
