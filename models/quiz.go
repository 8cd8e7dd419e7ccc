package models

// QuizResponse holds one submitted cohort quiz. Stage is the label written to the
// CSV log, e.g. "Stage 2 Cohort".
type QuizResponse struct {
	Timestamp          string `json:"timestamp"`
	WhoCaringFor       string `json:"who_caring_for"`
	DementiaDx         string `json:"dementia_dx"`
	RecentChanges      string `json:"recent_changes"`
	BiggestChallenge   string `json:"biggest_challenge"`
	JoinCohortInterest string `json:"join_cohort_interest"`
	Stage              string `json:"stage"`
}
