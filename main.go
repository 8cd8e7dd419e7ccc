package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/linesmerrill/cohort-site/api/handlers"
	"github.com/linesmerrill/cohort-site/api/scheduler"
	"github.com/linesmerrill/cohort-site/config"
)

const shutdownTimeout = 10 * time.Second

func main() {
	a := handlers.App{}
	a.Config = *config.New()

	if err := a.Initialize(); err != nil { //initialize data directory and router
		zap.S().Fatalw("failed to initialize app", "error", err)
	}

	s := scheduler.NewScheduler(a.MessageDB, a.Config.ReconcileSchedule)
	if err := s.Start(); err != nil {
		zap.S().Warnw("message mirror job not scheduled", "error", err)
	}
	defer s.Stop()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%v", a.Config.Port),
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zap.S().Infow("cohort-site is up and running",
			"port", a.Config.Port,
			"url", a.Config.BaseURL,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.S().Fatalw("server failed", "error", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zap.S().Errorw("graceful shutdown failed", "error", err)
	}
	zap.S().Info("cohort-site stopped")
}
