package databases

// go generate: mockery --name QuizDatabase

import (
	"context"
	"sync"

	"github.com/linesmerrill/cohort-site/models"
)

const quizCSVName = "quiz_responses.csv"

var quizCSVHeader = []string{
	"timestamp",
	"who_caring_for",
	"dementia_dx",
	"recent_changes",
	"biggest_challenge",
	"join_cohort_interest",
	"stage",
}

// QuizDatabase contains the methods to use with the quiz response log
type QuizDatabase interface {
	AppendResponse(ctx context.Context, resp models.QuizResponse) error
}

type quizDatabase struct {
	db DatabaseHelper
	mu sync.Mutex
}

// NewQuizDatabase initializes a new instance of quiz database with the provided file helper
func NewQuizDatabase(db DatabaseHelper) QuizDatabase {
	return &quizDatabase{
		db: db,
	}
}

// AppendResponse appends one row to the quiz log, creating it with a header if needed
func (q *quizDatabase) AppendResponse(ctx context.Context, resp models.QuizResponse) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	row := []string{
		resp.Timestamp,
		resp.WhoCaringFor,
		resp.DementiaDx,
		resp.RecentChanges,
		resp.BiggestChallenge,
		resp.JoinCohortInterest,
		resp.Stage,
	}
	if err := q.db.AppendCSV(quizCSVName, quizCSVHeader, row); err != nil {
		return &models.StorageError{Op: "append", Path: q.db.Path(quizCSVName), Err: err}
	}
	return nil
}
