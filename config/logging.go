package config

import (
	"go.uber.org/zap"

	"github.com/linesmerrill/cohort-site/logging"
)

// setLogger builds the logger for the given environment
func setLogger(env string) (*zap.Logger, error) {
	return logging.New(env)
}
