// Package quiz maps the cohort quiz answers to a caregiving stage.
package quiz

import "fmt"

// Answer tokens accepted for the recent_changes question
const (
	OccasionalMemoryLapses            = "occasional_memory_lapses"
	NoticeableConfusionTaskDifficulty = "noticeable_confusion_task_difficulty"
	FrequentRepetitionSafetyConcerns  = "frequent_repetition_safety_concerns"
	SignificantHelpDailyCare          = "significant_help_daily_care"
)

// MinStage and MaxStage bound the cohort stages
const (
	MinStage = 1
	MaxStage = 4
)

var stages = map[string]int{
	OccasionalMemoryLapses:            1,
	NoticeableConfusionTaskDifficulty: 2,
	FrequentRepetitionSafetyConcerns:  3,
	SignificantHelpDailyCare:          4,
}

// Score returns the stage for a recent_changes answer. Unknown or missing answers are stage 1.
func Score(recentChanges string) int {
	if n, ok := stages[recentChanges]; ok {
		return n
	}
	return MinStage
}

// StageLabel returns the label stored in the quiz log, e.g. "Stage 3 Cohort"
func StageLabel(n int) string {
	return fmt.Sprintf("Stage %d Cohort", n)
}

// Stage is the copy shown on the result page for one cohort stage
type Stage struct {
	Number     int
	Label      string
	Summary    string
	Experience string
	Activities []string
}

var descriptions = map[int]Stage{
	1: {
		Summary:    "You are noticing early changes and want to understand what is normal.",
		Experience: "Caregivers in this stage are learning to spot changes in memory and routine, preparing for first medical conversations, and balancing support with independence.",
		Activities: []string{"Weekly small-group check-ins", "Making sense of a new diagnosis", "Planning ahead while things are stable"},
	},
	2: {
		Summary:    "Daily tasks are getting harder and you are stepping in more often.",
		Experience: "Caregivers in this stage are adjusting routines, handling more appointments and paperwork, and figuring out when to help and when to step back.",
		Activities: []string{"Weekly small-group check-ins", "Tools for routines, reminders and medications", "Talking with family about sharing the load"},
	},
	3: {
		Summary:    "Repetition and safety concerns are part of most days.",
		Experience: "Caregivers in this stage are managing safety at home, responding to repeated questions and mood changes, and looking for respite before burnout sets in.",
		Activities: []string{"Weekly small-group check-ins", "Home safety and wandering prevention", "Finding respite and in-home support"},
	},
	4: {
		Summary:    "Your person needs significant help with daily care.",
		Experience: "Caregivers in this stage are providing hands-on care, coordinating professional help, and making decisions about long-term care while looking after themselves.",
		Activities: []string{"Weekly small-group check-ins", "Coordinating in-home and residential care", "Grief, guilt and caring for yourself"},
	},
}

// Describe returns the result page copy for stage n. Out of range stages fall back to stage 1.
func Describe(n int) Stage {
	if n < MinStage || n > MaxStage {
		n = MinStage
	}
	s := descriptions[n]
	s.Number = n
	s.Label = StageLabel(n)
	return s
}
