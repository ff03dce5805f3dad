// Package interview drives one questionnaire session over a line-oriented
// terminal: it renders each prompt, reads a line, and applies it to the
// session until no visible question remains.
package interview

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/harrison/prebate/internal/display"
	"github.com/harrison/prebate/internal/logger"
	"github.com/harrison/prebate/internal/models"
	"github.com/harrison/prebate/internal/questionnaire"
)

var (
	// ErrAborted is returned when the user quits before completion
	ErrAborted = errors.New("assessment aborted")

	// ErrInputClosed is returned when input ends before completion
	ErrInputClosed = errors.New("input closed before assessment was complete")
)

// Outcome is the result of a completed interview
type Outcome struct {
	SessionID string
	Result    models.Result
	Answers   models.AnswerSet    // Answers to visible questions
	Stale     []models.QuestionID // Hidden questions whose answers were ignored
}

// Interviewer connects a LineReader and a Renderer to one session
type Interviewer struct {
	session  *questionnaire.Session
	eval     questionnaire.Evaluator
	reader   LineReader
	renderer *display.Renderer
	logger   logger.Logger
}

// New creates an Interviewer. A nil log discards events.
func New(session *questionnaire.Session, eval questionnaire.Evaluator, reader LineReader, renderer *display.Renderer, log logger.Logger) *Interviewer {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Interviewer{
		session:  session,
		eval:     eval,
		reader:   reader,
		renderer: renderer,
		logger:   log,
	}
}

type readResult struct {
	line string
	err  error
}

// Run loops until the session completes, the user quits, input ends, or
// ctx is cancelled.
func (iv *Interviewer) Run(ctx context.Context) (Outcome, error) {
	iv.logger.LogSessionStart(iv.session.ID, iv.session.Progress().Visible)

	for {
		q, ok := iv.session.CurrentPrompt()
		if !ok {
			return iv.complete()
		}

		iv.renderer.Prompt(q, iv.session.Progress())

		line, err := iv.readLine(ctx)
		if err != nil {
			fmt.Fprintln(iv.renderer.Writer())
			iv.logger.LogWarn(fmt.Sprintf("Session stopped at %s: %v", q.ID, err))
			return Outcome{SessionID: iv.session.ID}, err
		}

		if quit := iv.dispatch(q, line); quit {
			iv.logger.LogInfo(fmt.Sprintf("Session aborted at %s (%s)", q.ID, iv.session.Progress()))
			return Outcome{SessionID: iv.session.ID}, ErrAborted
		}
	}
}

// readLine reads one line without blocking past ctx cancellation. A final
// line without a newline is returned before ErrInputClosed.
//
// On cancellation the reader goroutine stays blocked in ReadString until
// the reader returns. That is fine for the CLI, which exits, but a
// long-lived caller must close the underlying reader to release it.
func (iv *Interviewer) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ch := make(chan readResult, 1)
	go func() {
		line, err := iv.reader.ReadString('\n')
		ch <- readResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.err != nil {
			if errors.Is(res.err, io.EOF) {
				if strings.TrimSpace(res.line) != "" {
					return res.line, nil
				}
				return "", ErrInputClosed
			}
			return "", fmt.Errorf("failed to read input: %w", res.err)
		}
		return res.line, nil
	}
}

// dispatch applies one line of input at q. Returns true on quit.
func (iv *Interviewer) dispatch(q *models.Question, line string) bool {
	cmd, answer, err := ParseInput(line, q)
	if err != nil {
		iv.reject(q, err)
		return false
	}

	switch cmd {
	case CommandQuit:
		return true

	case CommandRestart:
		iv.session.Reset()
		iv.logger.LogReset()
		iv.renderer.Notice("Starting over. All answers cleared.")

	case CommandBack:
		if err := iv.session.GoBack(); err != nil {
			iv.logger.LogDebug(fmt.Sprintf("Back ignored at %s: %v", q.ID, err))
			iv.renderer.Notice("Already at the first question.")
			return false
		}
		if prev, ok := iv.session.CurrentPrompt(); ok {
			iv.logger.LogBack(prev.ID)
			if a := iv.session.Answer(prev.ID); a != models.Unanswered {
				iv.renderer.Notice(fmt.Sprintf("Previous answer: %s", a))
			}
		}

	case CommandAnswer:
		if err := iv.session.SubmitAnswer(answer); err != nil {
			iv.reject(q, err)
			return false
		}
		iv.logger.LogAnswer(q.ID, answer, iv.session.Progress())
	}

	return false
}

func (iv *Interviewer) reject(q *models.Question, err error) {
	iv.logger.LogWarn(fmt.Sprintf("Invalid input at %s: %v", q.ID, err))
	iv.renderer.Error(fmt.Sprintf("%v. Please answer %s.", err, display.AnswerHint(q)))
}

func (iv *Interviewer) complete() (Outcome, error) {
	result, err := iv.session.Result(iv.eval)
	if err != nil {
		return Outcome{SessionID: iv.session.ID}, fmt.Errorf("failed to score session: %w", err)
	}

	stale := iv.session.StaleAnswers()
	if len(stale) > 0 {
		ids := make([]string, len(stale))
		for i, id := range stale {
			ids[i] = string(id)
		}
		iv.logger.LogWarn(fmt.Sprintf("Ignoring answers to hidden questions: %s", strings.Join(ids, ", ")))
		display.WarnStaleAnswers(stale).Display(iv.renderer.Writer())
	}

	iv.logger.LogSessionComplete(result)

	return Outcome{
		SessionID: iv.session.ID,
		Result:    result,
		Answers:   iv.session.VisibleAnswers(),
		Stale:     stale,
	}, nil
}
