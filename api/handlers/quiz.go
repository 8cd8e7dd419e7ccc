package handlers

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/linesmerrill/cohort-site/api"
	"github.com/linesmerrill/cohort-site/databases"
	"github.com/linesmerrill/cohort-site/models"
	"github.com/linesmerrill/cohort-site/quiz"
	templates "github.com/linesmerrill/cohort-site/templates/html"
)

// Quiz handles cohort quiz submissions
type Quiz struct {
	DB  databases.QuizDatabase
	Now func() time.Time
}

// QuizHandler scores the quiz, logs the response and renders the matching stage
func (q Quiz) QuizHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	values, err := formValues(w, r)
	if err != nil {
		zap.S().Warnw("failed to parse quiz form", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	now := time.Now
	if q.Now != nil {
		now = q.Now
	}

	stage := quiz.Score(values("recent_changes"))
	resp := models.QuizResponse{
		Timestamp:          now().UTC().Format(databases.ISOTimeFormat),
		WhoCaringFor:       values("who_caring_for"),
		DementiaDx:         values("dementia_dx"),
		RecentChanges:      values("recent_changes"),
		BiggestChallenge:   values("biggest_challenge"),
		JoinCohortInterest: values("join_cohort_interest"),
		Stage:              quiz.StageLabel(stage),
	}

	err = api.TimeOp(ctx, "append", "quiz_responses.csv", func() error {
		return q.DB.AppendResponse(ctx, resp)
	})
	if err != nil {
		zap.S().Errorw("Error writing CSV", "error", err)
		http.Error(w, "Something went wrong saving your response. Please try again.", http.StatusInternalServerError)
		return
	}

	zap.S().Infow("quiz response saved", "stage", stage)
	writeHTML(w, http.StatusOK, templates.RenderQuizResultPage(quiz.Describe(stage)))
}
