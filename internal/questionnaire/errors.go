package questionnaire

import (
	"errors"
	"fmt"
	"strings"

	"github.com/harrison/prebate/internal/models"
)

var (
	// ErrInvalidAnswer is returned when a submitted value is not in the
	// question's allowed answer set. Session state is unchanged.
	ErrInvalidAnswer = errors.New("invalid answer")

	// ErrOutOfSequence is returned for operations that do not apply to the
	// current position: answering after completion, answering a question
	// that is not current, going back past the first answer, or asking for
	// a result before completion. It is a no-op signal, never fatal.
	ErrOutOfSequence = errors.New("out of sequence")
)

// AnswerError describes a rejected answer.
type AnswerError struct {
	QuestionID models.QuestionID // Question the answer was submitted for
	Value      models.Answer     // Rejected value
	Allowed    []models.Answer   // Values the question accepts
	Err        error             // ErrInvalidAnswer or ErrOutOfSequence
}

// Error implements the error interface for AnswerError.
func (e *AnswerError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("question %s: %v", e.QuestionID, e.Err))
	if len(e.Allowed) > 0 {
		allowed := make([]string, len(e.Allowed))
		for i, a := range e.Allowed {
			allowed[i] = string(a)
		}
		sb.WriteString(fmt.Sprintf(": %q not in [%s]", string(e.Value), strings.Join(allowed, ", ")))
	}
	return sb.String()
}

// Unwrap returns the sentinel error for errors.Is support.
func (e *AnswerError) Unwrap() error {
	return e.Err
}
