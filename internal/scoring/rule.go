// Package scoring evaluates a completed answer set against a fixed battery
// of estate readiness rules.
//
// Rules are plain descriptors (predicate, score deltas, action texts) folded
// over the answer set in table order. Scores are sums and do not depend on
// rule order; the action list keeps rule order with exact-text duplicates
// removed.
package scoring

import "github.com/harrison/prebate/internal/models"

// Predicate decides whether a rule applies to an answer set.
type Predicate func(answers models.AnswerSet) bool

// Rule is a single scoring rule.
type Rule struct {
	Name    string    // Unique rule name, reported in findings
	When    Predicate // Condition on the answer set
	Probate int       // Added to probate risk when the rule fires
	Dispute int       // Added to dispute risk when the rule fires
	Actions []string  // Appended to the action list when the rule fires
}

// Applies reports whether the rule fires for answers.
func (r Rule) Applies(answers models.AnswerSet) bool {
	return r.When != nil && r.When(answers)
}

// Is matches when id was answered with want. Unanswered never matches.
func Is(id models.QuestionID, want models.Answer) Predicate {
	return func(answers models.AnswerSet) bool {
		return answers.Is(id, want)
	}
}

// OneOf matches when id was answered with any of the given answers.
func OneOf(id models.QuestionID, wants ...models.Answer) Predicate {
	return func(answers models.AnswerSet) bool {
		for _, want := range wants {
			if answers.Is(id, want) {
				return true
			}
		}
		return false
	}
}

// All matches when every predicate matches.
func All(preds ...Predicate) Predicate {
	return func(answers models.AnswerSet) bool {
		for _, p := range preds {
			if !p(answers) {
				return false
			}
		}
		return true
	}
}
