package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Auth providers accepted in AUTH_PROVIDER.
const (
	AuthProviderFirebase = "firebase"
	AuthProviderGoogle   = "google"
	AuthProviderJWT      = "jwt"
)

// Config holds everything the API reads from the environment.
type Config struct {
	Port string `env:"PORT" envDefault:"5000"`

	MongoURI      string `env:"MONGO_URI"`
	DBUser        string `env:"DB_USER"`
	DBPass        string `env:"DB_PASS"`
	DBHost        string `env:"DB_HOST" envDefault:"cluster0.w9ewo.mongodb.net"`
	MongoDatabase string `env:"MONGO_DATABASE" envDefault:"doctors_portal"`

	AuthProvider           string `env:"AUTH_PROVIDER" envDefault:"firebase"`
	FirebaseServiceAccount string `env:"FIREBASE_SERVICE_ACCOUNT"`
	GoogleClientID         string `env:"GOOGLE_CLIENT_ID"`
	JWTSecret              string `env:"JWT_SECRET"`

	StripeSecret string `env:"STRIPE_SECRET"`

	NormalizeAppointmentDate bool `env:"NORMALIZE_APPOINTMENT_DATE" envDefault:"true"`
	AdminSilentDenial        bool `env:"ADMIN_SILENT_DENIAL" envDefault:"false"`
	PaymentRequiresAuth      bool `env:"PAYMENT_REQUIRES_AUTH" envDefault:"false"`

	AllowedOrigins  []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	GinMode         string        `env:"GIN_MODE" envDefault:"release"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load reads an optional .env file and parses the environment into a Config.
// A missing .env file is not an error; the second return value reports whether one was found.
func Load() (*Config, bool, error) {
	dotenv := godotenv.Load() == nil

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, dotenv, fmt.Errorf("parse environment: %w", err)
	}

	return &cfg, dotenv, nil
}

// MongoConnectionURI returns MONGO_URI when set, otherwise builds an Atlas SRV URI
// from DB_USER, DB_PASS and DB_HOST.
func (c *Config) MongoConnectionURI() string {
	if c.MongoURI != "" {
		return c.MongoURI
	}

	u := url.URL{
		Scheme:   "mongodb+srv",
		User:     url.UserPassword(c.DBUser, c.DBPass),
		Host:     c.DBHost,
		Path:     "/",
		RawQuery: "retryWrites=true&w=majority",
	}
	return u.String()
}

// Validate checks that the secrets required by the selected providers are present.
func (c *Config) Validate() error {
	var errs []error

	if c.MongoURI == "" && (c.DBUser == "" || c.DBPass == "") {
		errs = append(errs, errors.New("missing MONGO_URI or DB_USER/DB_PASS environment variables"))
	}

	switch c.AuthProvider {
	case AuthProviderFirebase:
		if c.FirebaseServiceAccount == "" {
			errs = append(errs, errors.New("missing FIREBASE_SERVICE_ACCOUNT environment variable"))
		}
	case AuthProviderGoogle:
		if c.GoogleClientID == "" {
			errs = append(errs, errors.New("missing GOOGLE_CLIENT_ID environment variable"))
		}
	case AuthProviderJWT:
		if c.JWTSecret == "" {
			errs = append(errs, errors.New("missing JWT_SECRET environment variable"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown AUTH_PROVIDER %q", c.AuthProvider))
	}

	if c.StripeSecret == "" {
		errs = append(errs, errors.New("missing STRIPE_SECRET environment variable"))
	}

	return errors.Join(errs...)
}
