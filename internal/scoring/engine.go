package scoring

import (
	"fmt"

	"github.com/harrison/prebate/internal/models"
)

// Thresholds are the inclusive upper bounds of the probate risk labels.
type Thresholds struct {
	ProbateLowMax      int // Scores <= this are Low
	ProbateModerateMax int // Scores <= this (and above ProbateLowMax) are Moderate
}

// DefaultThresholds returns the standard label bounds (Low <= 2, Moderate <= 4).
func DefaultThresholds() Thresholds {
	return Thresholds{ProbateLowMax: 2, ProbateModerateMax: 4}
}

// Validate checks that the bounds are ordered and non-negative.
func (t Thresholds) Validate() error {
	if t.ProbateLowMax < 0 {
		return fmt.Errorf("probate low max must be >= 0, got %d", t.ProbateLowMax)
	}
	if t.ProbateModerateMax <= t.ProbateLowMax {
		return fmt.Errorf("probate moderate max (%d) must be greater than low max (%d)", t.ProbateModerateMax, t.ProbateLowMax)
	}
	return nil
}

// Engine folds a rule battery over answer sets. It is stateless between
// calls and safe for concurrent use.
type Engine struct {
	rules      []Rule
	thresholds Thresholds
}

// NewEngine creates an engine with the default rule battery.
func NewEngine(thresholds Thresholds) *Engine {
	return NewEngineWithRules(DefaultRules(), thresholds)
}

// NewEngineWithRules creates an engine over a custom rule list.
func NewEngineWithRules(rules []Rule, thresholds Thresholds) *Engine {
	copied := make([]Rule, len(rules))
	copy(copied, rules)
	return &Engine{rules: copied, thresholds: thresholds}
}

// Rules returns the rules in evaluation order.
func (e *Engine) Rules() []Rule {
	out := make([]Rule, len(e.rules))
	copy(out, e.rules)
	return out
}

// Thresholds returns the label bounds in use.
func (e *Engine) Thresholds() Thresholds {
	return e.thresholds
}

// Evaluate applies every rule to answers. Rules never short-circuit each
// other. Evaluate never fails; unanswered questions match no condition.
func (e *Engine) Evaluate(answers models.AnswerSet) models.Result {
	result := models.Result{Actions: []string{}}
	seen := make(map[string]bool)

	for _, rule := range e.rules {
		if !rule.Applies(answers) {
			continue
		}

		result.ProbateRisk += rule.Probate
		result.DisputeRisk += rule.Dispute
		result.Findings = append(result.Findings, models.Finding{
			Rule:    rule.Name,
			Probate: rule.Probate,
			Dispute: rule.Dispute,
		})

		for _, action := range rule.Actions {
			if seen[action] {
				continue
			}
			seen[action] = true
			result.Actions = append(result.Actions, action)
		}
	}

	result.ProbateLabel = ProbateLabel(result.ProbateRisk, e.thresholds)
	result.DisputeLabel = DisputeLabel(result.DisputeRisk)
	return result
}

// ProbateLabel maps a probate score to Low, Moderate or High.
func ProbateLabel(score int, t Thresholds) string {
	switch {
	case score <= t.ProbateLowMax:
		return models.LabelLow
	case score <= t.ProbateModerateMax:
		return models.LabelModerate
	default:
		return models.LabelHigh
	}
}

// DisputeLabel maps a dispute score to Low, Elevated or Critical.
func DisputeLabel(score int) string {
	switch {
	case score <= 0:
		return models.LabelLow
	case score == 1:
		return models.LabelElevated
	default:
		return models.LabelCritical
	}
}
