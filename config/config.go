package config

import (
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Config holds the project config values
type Config struct {
	Env     string
	BaseURL string
	Port    string

	PublicDir string
	DataDir   string

	EmailUser      string
	EmailPassword  string
	OperatorEmail  string
	SMTPHost       string
	SMTPPort       string
	SendGridAPIKey string
	SiteName       string
	Signature      string

	MailTimeout       time.Duration
	RequestTimeout    time.Duration
	ReconcileSchedule string
}

// New sets up all config related services
func New() *Config {
	// a missing .env is fine, the real environment wins anyway
	_ = godotenv.Load()

	env := os.Getenv("APP_ENV")

	//setup zap logger and replace default logger
	logger, err := setLogger(env)
	if err != nil {
		logger = zap.NewExample()
	}
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	emailUser := os.Getenv("EMAIL_USER")

	return &Config{
		Env:               env,
		BaseURL:           os.Getenv("BASE_URL"),
		Port:              getEnv("PORT", "3000"),
		PublicDir:         getEnv("PUBLIC_DIR", "./public"),
		DataDir:           getEnv("DATA_DIR", "."),
		EmailUser:         emailUser,
		EmailPassword:     os.Getenv("EMAIL_PASSWORD"),
		OperatorEmail:     getEnv("OPERATOR_EMAIL", emailUser),
		SMTPHost:          getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:          getEnv("SMTP_PORT", "587"),
		SendGridAPIKey:    os.Getenv("SENDGRID_API_KEY"),
		SiteName:          getEnv("SITE_NAME", "Your Site"),
		Signature:         getEnv("SIGNATURE", "Your Name"),
		MailTimeout:       getDuration("MAIL_TIMEOUT", 15*time.Second),
		RequestTimeout:    getDuration("REQUEST_TIMEOUT", 30*time.Second),
		ReconcileSchedule: lookupEnv("RECONCILE_SCHEDULE", "@every 1h"),
	}
}

// getEnv returns the env value for key, or fallback when it is unset or empty
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// lookupEnv is like getEnv but an explicitly empty value is kept
func lookupEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		zap.S().Warnw("invalid duration, using default",
			"key", key,
			"value", v,
			"default", fallback)
		return fallback
	}
	return d
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err. The cause is only logged, clients get the message.
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With("error", err).Error(message)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
