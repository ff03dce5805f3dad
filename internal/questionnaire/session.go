package questionnaire

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/harrison/prebate/internal/models"
)

// Evaluator scores an answer set. scoring.Engine satisfies it.
type Evaluator interface {
	Evaluate(answers models.AnswerSet) models.Result
}

// Session holds the state of one interactive questionnaire run.
// It is owned by a single caller and is not safe for concurrent use.
type Session struct {
	ID        string
	StartedAt time.Time

	set      *models.QuestionSet
	position int
	answers  models.AnswerSet
}

// New creates a session positioned at the first visible question.
func New(set *models.QuestionSet) *Session {
	s := &Session{
		ID:  uuid.New().String(),
		set: set,
	}
	s.Reset()
	return s
}

// Reset clears all answers and returns to the first visible question.
// The session id is kept.
func (s *Session) Reset() {
	s.answers = make(models.AnswerSet)
	s.position = Advance(s.set, 0, s.answers)
	s.StartedAt = time.Now()
}

// QuestionSet returns the sequence the session walks.
func (s *Session) QuestionSet() *models.QuestionSet {
	return s.set
}

// Position returns the current index into the question sequence.
// It equals the sequence length when the session is complete.
func (s *Session) Position() int {
	return s.position
}

// IsComplete returns true when no visible question remains. Completion is
// derived from the position.
func (s *Session) IsComplete() bool {
	return s.position >= s.set.Len()
}

// CurrentPrompt returns the question to display, or false when complete.
func (s *Session) CurrentPrompt() (*models.Question, bool) {
	if s.IsComplete() {
		return nil, false
	}
	return s.set.At(s.position), true
}

// SubmitAnswer records value for the current question.
func (s *Session) SubmitAnswer(value models.Answer) error {
	q, ok := s.CurrentPrompt()
	if !ok {
		return fmt.Errorf("session already complete: %w", ErrOutOfSequence)
	}
	return s.RecordAnswer(q.ID, value)
}

// RecordAnswer writes answers[id] = value and moves to the next visible
// question. id must be the current question and value must be allowed by
// it; otherwise the session is left unchanged.
func (s *Session) RecordAnswer(id models.QuestionID, value models.Answer) error {
	q, ok := s.CurrentPrompt()
	if !ok {
		return &AnswerError{QuestionID: id, Value: value, Err: ErrOutOfSequence}
	}
	if q.ID != id {
		return fmt.Errorf("current question is %s, not %s: %w", q.ID, id, ErrOutOfSequence)
	}
	if !q.Allows(value) {
		return &AnswerError{QuestionID: id, Value: value, Allowed: q.Options(), Err: ErrInvalidAnswer}
	}

	s.answers[id] = value
	s.position = Advance(s.set, s.position+1, s.answers)
	return nil
}

// GoBack moves to the closest earlier question that is visible and has a
// recorded answer. The answer is kept; the next submission overwrites it.
// Returns ErrOutOfSequence and leaves the session unchanged when there is
// nothing to go back to.
func (s *Session) GoBack() error {
	for i := s.position - 1; i >= 0; i-- {
		q := s.set.At(i)
		if !Visible(q, s.answers) || !s.answers.Has(q.ID) {
			continue
		}
		s.position = i
		return nil
	}
	return fmt.Errorf("no earlier answered question: %w", ErrOutOfSequence)
}

// Progress returns the answered and visible counts under the current
// answers. It is recomputed on every call because visibility changes as
// answers change.
func (s *Session) Progress() models.Progress {
	return CountProgress(s.set, s.answers)
}

// Answers returns a copy of every recorded answer, including stale answers
// for questions that are now hidden.
func (s *Session) Answers() models.AnswerSet {
	return s.answers.Clone()
}

// Answer returns the recorded answer for id, or Unanswered.
func (s *Session) Answer(id models.QuestionID) models.Answer {
	return s.answers.Get(id)
}

// VisibleAnswers returns the answers for currently visible questions only.
func (s *Session) VisibleAnswers() models.AnswerSet {
	return FilterVisible(s.set, s.answers)
}

// StaleAnswers returns ids of hidden questions that still hold an answer.
func (s *Session) StaleAnswers() []models.QuestionID {
	return StaleAnswers(s.set, s.answers)
}

// Result scores the visible answers. Stale answers for hidden questions are
// ignored. Returns ErrOutOfSequence until the session is complete.
func (s *Session) Result(eval Evaluator) (models.Result, error) {
	if !s.IsComplete() {
		p := s.Progress()
		return models.Result{}, fmt.Errorf("assessment incomplete (%s): %w", p, ErrOutOfSequence)
	}
	return eval.Evaluate(s.VisibleAnswers()), nil
}
