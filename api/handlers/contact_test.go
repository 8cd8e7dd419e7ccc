package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func postForm(path string, form url.Values) *http.Request {
	req, _ := http.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestContact_Success(t *testing.T) {
	app, _ := newTestApp(t)
	relay := &fakeRelay{}
	app.Relay = relay
	app.Router = app.New()
	a = *app

	response := executeRequest(postForm("/contact", url.Values{
		"name":    {"Pat"},
		"email":   {" pat@example.com "},
		"message": {"Can we talk?"},
	}))

	checkResponseCode(t, http.StatusOK, response.Code)
	assert.Contains(t, response.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, response.Body.String(), "Thank you!")
	assert.Equal(t, []string{"Pat|pat@example.com|Can we talk?"}, relay.calls)
}

func TestContact_JSONBody(t *testing.T) {
	app, _ := newTestApp(t)
	relay := &fakeRelay{}
	app.Relay = relay
	app.Router = app.New()
	a = *app

	req, _ := http.NewRequest("POST", "/contact", strings.NewReader(`{"name":"Pat","email":"pat@example.com","message":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	response := executeRequest(req)

	checkResponseCode(t, http.StatusOK, response.Code)
	assert.Len(t, relay.calls, 1)
}

func TestContact_Validation(t *testing.T) {
	tests := []struct {
		name string
		form url.Values
	}{
		{"missing email", url.Values{"name": {"Pat"}, "message": {"hi"}}},
		{"bad email", url.Values{"email": {"not-an-email"}, "message": {"hi"}}},
		{"missing message", url.Values{"email": {"pat@example.com"}}},
		{"blank message", url.Values{"email": {"pat@example.com"}, "message": {"   "}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _ := newTestApp(t)
			relay := &fakeRelay{}
			app.Relay = relay
			app.Router = app.New()
			a = *app

			response := executeRequest(postForm("/contact", tt.form))

			checkResponseCode(t, http.StatusBadRequest, response.Code)
			assert.Empty(t, relay.calls)
		})
	}
}

func TestContact_LongNameAccepted(t *testing.T) {
	app, _ := newTestApp(t)
	relay := &fakeRelay{}
	app.Relay = relay
	app.Router = app.New()
	a = *app

	name := strings.Repeat("n", 500)
	response := executeRequest(postForm("/contact", url.Values{
		"name":    {name},
		"email":   {"pat@example.com"},
		"message": {"hi"},
	}))

	checkResponseCode(t, http.StatusOK, response.Code)
	assert.Equal(t, []string{name + "|pat@example.com|hi"}, relay.calls)
}

func TestContact_RelayFailure(t *testing.T) {
	app, _ := newTestApp(t)
	app.Relay = &fakeRelay{err: errors.New("smtp down")}
	app.Router = app.New()
	a = *app

	response := executeRequest(postForm("/contact", url.Values{
		"name":    {"Pat"},
		"email":   {"pat@example.com"},
		"message": {"hi"},
	}))

	checkResponseCode(t, http.StatusInternalServerError, response.Code)
	assert.Equal(t, "Something went wrong. Please try again later.\n", response.Body.String())
}
