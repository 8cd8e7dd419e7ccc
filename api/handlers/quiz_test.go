package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/linesmerrill/cohort-site/databases/mocks"
	"github.com/linesmerrill/cohort-site/models"
)

func TestQuiz_ScoresAndLogs(t *testing.T) {
	tests := []struct {
		answer string
		stage  string
	}{
		{"occasional_memory_lapses", "Stage 1 Cohort"},
		{"noticeable_confusion_task_difficulty", "Stage 2 Cohort"},
		{"frequent_repetition_safety_concerns", "Stage 3 Cohort"},
		{"significant_help_daily_care", "Stage 4 Cohort"},
		{"", "Stage 1 Cohort"},
		{"something_else", "Stage 1 Cohort"},
	}

	for _, tt := range tests {
		t.Run(tt.stage+"/"+tt.answer, func(t *testing.T) {
			app, dataDir := newTestApp(t)
			a = *app

			response := executeRequest(postForm("/quiz", url.Values{
				"who_caring_for":       {"parent"},
				"dementia_dx":          {"yes"},
				"recent_changes":       {tt.answer},
				"biggest_challenge":    {"sleep, \"sundowning\""},
				"join_cohort_interest": {"yes"},
			}))

			checkResponseCode(t, http.StatusOK, response.Code)
			assert.Contains(t, response.Header().Get("Content-Type"), "text/html")
			assert.Contains(t, response.Body.String(), tt.stage)

			raw, err := os.ReadFile(filepath.Join(dataDir, "quiz_responses.csv"))
			require.NoError(t, err)
			lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
			require.Len(t, lines, 2)
			assert.Equal(t, "timestamp,who_caring_for,dementia_dx,recent_changes,biggest_challenge,join_cohort_interest,stage", lines[0])
			assert.Contains(t, lines[1], `"sleep, ""sundowning"""`)
			assert.True(t, strings.HasSuffix(lines[1], `"`+tt.stage+`"`))
		})
	}
}

func TestQuiz_TimestampAndFields(t *testing.T) {
	db := &mocks.QuizDatabase{}
	db.On("AppendResponse", mock.Anything, models.QuizResponse{
		Timestamp:          "2024-03-05T06:07:08.009Z",
		WhoCaringFor:       "spouse",
		DementiaDx:         "no",
		RecentChanges:      "significant_help_daily_care",
		BiggestChallenge:   "",
		JoinCohortInterest: "maybe",
		Stage:              "Stage 4 Cohort",
	}).Return(nil)

	q := Quiz{DB: db, Now: func() time.Time {
		return time.Date(2024, 3, 5, 6, 7, 8, 9_000_000, time.UTC)
	}}
	rr := httptest.NewRecorder()
	q.QuizHandler(rr, postForm("/quiz", url.Values{
		"who_caring_for":       {"spouse"},
		"dementia_dx":          {"no"},
		"recent_changes":       {"significant_help_daily_care"},
		"join_cohort_interest": {"maybe"},
	}))

	checkResponseCode(t, http.StatusOK, rr.Code)
	db.AssertExpectations(t)
}

func TestQuiz_StorageFailure(t *testing.T) {
	db := &mocks.QuizDatabase{}
	db.On("AppendResponse", mock.Anything, mock.Anything).Return(errors.New("read-only file system"))

	q := Quiz{DB: db}
	rr := httptest.NewRecorder()
	q.QuizHandler(rr, postForm("/quiz", url.Values{"recent_changes": {"occasional_memory_lapses"}}))

	checkResponseCode(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "Something went wrong saving your response. Please try again.\n", rr.Body.String())
}
