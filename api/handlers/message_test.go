package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/linesmerrill/cohort-site/databases/mocks"
	"github.com/linesmerrill/cohort-site/models"
)

func TestMessage_ListEmptyBoard(t *testing.T) {
	app, _ := newTestApp(t)
	a = *app

	req, _ := http.NewRequest("GET", "/api/messages", nil)
	response := executeRequest(req)

	checkResponseCode(t, http.StatusOK, response.Code)
	assert.Equal(t, "application/json", response.Header().Get("Content-Type"))
	assert.JSONEq(t, `[]`, response.Body.String())
}

func TestMessage_CreateThenList(t *testing.T) {
	app, dataDir := newTestApp(t)
	a = *app

	req, _ := http.NewRequest("POST", "/api/messages", strings.NewReader(`{"author":"  Dana ","message":" hello there "}`))
	req.Header.Set("Content-Type", "application/json")
	response := executeRequest(req)
	checkResponseCode(t, http.StatusCreated, response.Code)

	var created models.CreateMessageResponse
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &created))
	assert.True(t, created.Success)
	assert.Equal(t, "Dana", created.Message.Author)
	assert.Equal(t, "hello there", created.Message.Message)
	assert.NotEmpty(t, created.Message.ID)
	assert.NotEmpty(t, created.Message.CreatedAt)

	form := url.Values{"message": {"second"}}
	req, _ = http.NewRequest("POST", "/api/messages", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	response = executeRequest(req)
	checkResponseCode(t, http.StatusCreated, response.Code)

	req, _ = http.NewRequest("GET", "/api/messages", nil)
	response = executeRequest(req)
	checkResponseCode(t, http.StatusOK, response.Code)

	var listed []models.Message
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &listed))
	require.Len(t, listed, 2)
	assert.Equal(t, created.Message, listed[0])
	assert.Equal(t, "Anonymous", listed[1].Author)
	assert.Equal(t, "second", listed[1].Message)

	csv, err := os.ReadFile(filepath.Join(dataDir, "message_board.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(csv)), "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, "id,created_at,author,message", lines[0])
}

func TestMessage_CreateValidation(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		contentType string
		want        string
	}{
		{"missing message", `{"author":"Dana"}`, "application/json", `{"error":"Message is required"}`},
		{"blank message", `{"message":"   "}`, "application/json", `{"error":"Message is required"}`},
		{"non string message", `{"message":42}`, "application/json", `{"error":"Message is required"}`},
		{"empty form", ``, "application/x-www-form-urlencoded", `{"error":"Message is required"}`},
		{"malformed json", `{"message":`, "application/json", `{"error":"Invalid request body"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _ := newTestApp(t)
			a = *app

			req, _ := http.NewRequest("POST", "/api/messages", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", tt.contentType)
			response := executeRequest(req)

			checkResponseCode(t, http.StatusBadRequest, response.Code)
			assert.JSONEq(t, tt.want, response.Body.String())

			req, _ = http.NewRequest("GET", "/api/messages", nil)
			response = executeRequest(req)
			assert.JSONEq(t, `[]`, response.Body.String())
		})
	}
}

func TestMessage_CreateStorageFailure(t *testing.T) {
	db := &mocks.MessageDatabase{}
	db.On("Append", mock.Anything, "", "hi").
		Return(models.Message{}, &models.StorageError{Op: "write", Path: "message_board.json", Err: errors.New("disk full")})

	m := Message{DB: db}
	req := httptest.NewRequest("POST", "/api/messages", strings.NewReader(`{"message":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	m.CreateMessageHandler(rr, req)

	checkResponseCode(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"Failed to save message"}`, rr.Body.String())
	db.AssertExpectations(t)
}

func TestMessage_ListNilFromStore(t *testing.T) {
	db := &mocks.MessageDatabase{}
	db.On("LoadAll", mock.Anything).Return(nil)

	m := Message{DB: db}
	rr := httptest.NewRecorder()
	m.ListMessagesHandler(rr, httptest.NewRequest("GET", "/api/messages", nil))

	checkResponseCode(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}
