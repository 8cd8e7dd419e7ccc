package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/linesmerrill/cohort-site/api"
	"github.com/linesmerrill/cohort-site/config"
	"github.com/linesmerrill/cohort-site/databases"
	"github.com/linesmerrill/cohort-site/models"
)

// Message exists for dependency injection purposes
type Message struct {
	DB databases.MessageDatabase
}

// ListMessagesHandler returns every message on the board in stored order
func (m Message) ListMessagesHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var messages []models.Message
	_ = api.TimeOp(ctx, "load", "message_board.json", func() error {
		messages = m.DB.LoadAll(ctx)
		return nil
	})
	if messages == nil {
		messages = []models.Message{}
	}

	writeJSON(w, http.StatusOK, messages)
}

// CreateMessageHandler adds a message to the board
func (m Message) CreateMessageHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	values, err := formValues(w, r)
	if err != nil {
		config.ErrorStatus("Invalid request body", http.StatusBadRequest, w, err)
		return
	}

	var msg models.Message
	err = api.TimeOp(ctx, "append", "message_board.json", func() error {
		var appendErr error
		msg, appendErr = m.DB.Append(ctx, values("author"), values("message"))
		return appendErr
	})

	var vErr *models.ValidationError
	switch {
	case errors.As(err, &vErr):
		config.ErrorStatus(vErr.Message, http.StatusBadRequest, w, err)
		return
	case err != nil:
		config.ErrorStatus("Failed to save message", http.StatusInternalServerError, w, err)
		return
	}

	zap.S().Infow("message posted", "id", msg.ID, "author", msg.Author)
	writeJSON(w, http.StatusCreated, models.CreateMessageResponse{Success: true, Message: msg})
}
