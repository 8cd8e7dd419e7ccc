package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/linesmerrill/cohort-site/api"
	"github.com/linesmerrill/cohort-site/models"
	templates "github.com/linesmerrill/cohort-site/templates/html"
)

// ContactRelay sends the emails for one contact form submission
type ContactRelay interface {
	SendContact(ctx context.Context, name, email, message string) error
}

// Contact handles the contact form
type Contact struct {
	Relay   ContactRelay
	Val     *validator.Validate
	Timeout time.Duration
}

// ContactHandler relays a contact form submission by email and renders a thank-you page
func (c Contact) ContactHandler(w http.ResponseWriter, r *http.Request) {
	values, err := formValues(w, r)
	if err != nil {
		zap.S().Warnw("failed to parse contact form", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	req := models.ContactRequest{
		Name:    strings.TrimSpace(values("name")),
		Email:   strings.TrimSpace(values("email")),
		Message: strings.TrimSpace(values("message")),
	}
	if err := c.Val.Struct(req); err != nil {
		zap.S().Infow("rejected contact form", "email", req.Email, "error", err)
		http.Error(w, "Please provide a valid email address and a message.", http.StatusBadRequest)
		return
	}

	zap.S().Infow("Form submission", "name", req.Name, "email", req.Email)

	ctx, cancel := api.WithMailTimeout(r.Context(), c.Timeout)
	defer cancel()
	err = api.TimeOp(ctx, "send_contact", "mail", func() error {
		return c.Relay.SendContact(ctx, req.Name, req.Email, req.Message)
	})
	if err != nil {
		zap.S().Errorw("Error sending email", "email", req.Email, "error", err)
		http.Error(w, "Something went wrong. Please try again later.", http.StatusInternalServerError)
		return
	}

	writeHTML(w, http.StatusOK, templates.RenderThankYouPage())
}
