package models

import "time"

type RunStatus string

const (
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
)

// Progress is the current/total counter of a batch run.
type Progress struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

// Summary counts records per confidence label.
type Summary struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
	None   int `json:"none"`
}

// Summarize counts the confidence labels of records.
func Summarize(records []AddressRecord) Summary {
	var s Summary
	for _, r := range records {
		switch r.MatchConfidence {
		case ConfidenceHigh:
			s.High++
		case ConfidenceMedium:
			s.Medium++
		case ConfidenceLow:
			s.Low++
		default:
			s.None++
		}
	}
	return s
}

// BatchRun is one batch execution and its results.
type BatchRun struct {
	ID         string          `json:"id"`
	Status     RunStatus       `json:"status"`
	Progress   Progress        `json:"progress"`
	Summary    Summary         `json:"summary"`
	Records    []AddressRecord `json:"records"`
	CreatedAt  time.Time       `json:"created_at"`
	FinishedAt *time.Time      `json:"finished_at,omitempty"`
}
