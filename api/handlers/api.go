package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/linesmerrill/cohort-site/api"
	"github.com/linesmerrill/cohort-site/config"
	"github.com/linesmerrill/cohort-site/databases"
	"github.com/linesmerrill/cohort-site/mailer"
	"github.com/linesmerrill/cohort-site/models"
)

// defaultRequestTimeout bounds /api requests when the config leaves it unset
const defaultRequestTimeout = 30 * time.Second

// App stores the router and the shared stores, so they can be reused
type App struct {
	Router    *mux.Router
	Config    config.Config
	MessageDB databases.MessageDatabase
	QuizDB    databases.QuizDatabase
	Relay     ContactRelay
	LiveCount *LiveCount
	dbHelper  databases.DatabaseHelper
}

// New creates a new mux router and all the routes. Dependencies that were not set
// are built from the config.
func (a *App) New() *mux.Router {
	if a.dbHelper == nil {
		a.dbHelper = databases.NewDatabase(&a.Config)
	}
	if a.MessageDB == nil {
		a.MessageDB = databases.NewMessageDatabase(a.dbHelper)
	}
	if a.QuizDB == nil {
		a.QuizDB = databases.NewQuizDatabase(a.dbHelper)
	}
	if a.Relay == nil {
		a.Relay = mailer.New(&a.Config)
	}
	if a.LiveCount == nil {
		a.LiveCount = NewLiveCount()
	}

	timeout := a.Config.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	r := mux.NewRouter()
	r.Use(api.RecoveryMiddleware)
	r.Use(api.MetricsMiddleware)

	msg := Message{DB: a.MessageDB}
	contact := Contact{Relay: a.Relay, Val: validator.New(), Timeout: a.Config.MailTimeout}
	q := Quiz{DB: a.QuizDB}
	metrics := MetricsHandler{}

	// healthchex
	r.HandleFunc("/health", healthCheckHandler).Methods("GET")

	r.HandleFunc("/ws", a.LiveCount.ServeWS).Methods("GET")
	r.HandleFunc("/", a.LiveCount.ServeWS).Methods("GET").HeadersRegexp("Upgrade", "(?i)^websocket$")
	r.HandleFunc("/contact", contact.ContactHandler).Methods("POST")
	r.HandleFunc("/quiz", q.QuizHandler).Methods("POST")

	apiRouter := r.PathPrefix("/api").Subrouter()
	apiRouter.Use(api.JSONMiddleware)
	apiRouter.Use(api.TimeoutMiddleware(timeout))
	apiRouter.HandleFunc("/messages", msg.ListMessagesHandler).Methods("GET")
	apiRouter.HandleFunc("/messages", msg.CreateMessageHandler).Methods("POST")
	apiRouter.HandleFunc("/metrics/summary", metrics.GetMetricsSummary).Methods("GET")
	apiRouter.HandleFunc("/metrics/routes", metrics.GetRouteMetrics).Methods("GET")

	// everything else is the static site
	r.PathPrefix("/").Handler(http.FileServer(http.Dir(a.Config.PublicDir))).Methods("GET", "HEAD")

	return r
}

// Initialize is invoked by main to prepare the data directory and create a router
func (a *App) Initialize() error {
	a.dbHelper = databases.NewDatabase(&a.Config)
	if err := databases.EnsureDir(a.Config.DataDir); err != nil {
		zap.S().With("error", err).Error("failed to prepare data directory")
		return err
	}
	zap.S().Infow("using data directory", "path", a.Config.DataDir)

	a.initializeRoutes()
	return nil
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}
