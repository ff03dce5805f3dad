package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/harrison/prebate/internal/models"
)

// ErrMalformedQuestionSet matches every ValidationError via errors.Is.
var ErrMalformedQuestionSet = errors.New("malformed question set")

// ValidationError lists every problem found in a question set.
type ValidationError struct {
	Issues []string
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	if len(e.Issues) == 1 {
		return fmt.Sprintf("%v: %s", ErrMalformedQuestionSet, e.Issues[0])
	}
	return fmt.Sprintf("%v: %d issues: %s", ErrMalformedQuestionSet, len(e.Issues), strings.Join(e.Issues, "; "))
}

// Is reports whether target is ErrMalformedQuestionSet.
func (e *ValidationError) Is(target error) bool {
	return target == ErrMalformedQuestionSet
}

// ValidateQuestions checks a question sequence:
//   - the sequence is not empty
//   - every question passes Question.Validate
//   - ids are unique
//   - every show_if references a question earlier in the sequence
//   - every show_if answer is allowed by the referenced question's kind
//
// All problems are collected into a single ValidationError.
func ValidateQuestions(questions []models.Question) error {
	var issues []string

	if len(questions) == 0 {
		return &ValidationError{Issues: []string{"question set has no questions"}}
	}

	earlier := make(map[models.QuestionID]*models.Question, len(questions))
	for i := range questions {
		q := &questions[i]
		label := fmt.Sprintf("question %d", i+1)
		if q.ID != "" {
			label = fmt.Sprintf("question %d (%s)", i+1, q.ID)
		}

		if err := q.Validate(); err != nil {
			issues = append(issues, fmt.Sprintf("%s: %v", label, err))
		}

		for _, cond := range q.ShowIf {
			ref, ok := earlier[cond.QuestionID]
			switch {
			case cond.QuestionID == q.ID:
				issues = append(issues, fmt.Sprintf("%s: show_if references itself", label))
			case !ok:
				issues = append(issues, fmt.Sprintf("%s: show_if references %q which is not defined earlier in the sequence", label, cond.QuestionID))
			case !ref.Allows(cond.Answer):
				issues = append(issues, fmt.Sprintf("%s: show_if requires %s = %q but %s only accepts %s", label, cond.QuestionID, string(cond.Answer), cond.QuestionID, formatOptions(ref.Options())))
			}
		}

		if q.ID == "" {
			continue
		}
		if _, dup := earlier[q.ID]; dup {
			issues = append(issues, fmt.Sprintf("%s: duplicate question id", label))
			continue
		}
		earlier[q.ID] = q
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

func formatOptions(opts []models.Answer) string {
	if len(opts) == 0 {
		return "nothing"
	}
	parts := make([]string, len(opts))
	for i, o := range opts {
		parts[i] = string(o)
	}
	return strings.Join(parts, "/")
}
