package models

import "fmt"

// Risk label constants
const (
	LabelLow      = "Low"
	LabelModerate = "Moderate"
	LabelHigh     = "High"
	LabelElevated = "Elevated"
	LabelCritical = "Critical"
)

// Finding records a rule that fired during scoring
type Finding struct {
	Rule    string // Rule name
	Probate int    // Probate score contribution
	Dispute int    // Dispute score contribution
}

// Result is the outcome of scoring a completed answer set
type Result struct {
	ProbateRisk  int       // Accumulated probate score
	DisputeRisk  int       // Accumulated dispute score
	ProbateLabel string    // Low, Moderate or High
	DisputeLabel string    // Low, Elevated or Critical
	Actions      []string  // Unique actions in rule order
	Findings     []Finding // Rules that fired, in rule order
}

// HasActions returns true if at least one action was recommended
func (r *Result) HasActions() bool {
	return len(r.Actions) > 0
}

// Progress is the answered/visible count for a session
type Progress struct {
	Answered int // Visible questions with a recorded answer
	Visible  int // Questions currently visible
}

// Percent returns answered*100/visible, or 0 when nothing is visible
func (p Progress) Percent() int {
	if p.Visible == 0 {
		return 0
	}
	return p.Answered * 100 / p.Visible
}

// String formats the progress as "N of M answered"
func (p Progress) String() string {
	return fmt.Sprintf("%d of %d answered", p.Answered, p.Visible)
}
