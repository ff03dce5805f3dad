package interview

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/harrison/prebate/internal/models"
	"github.com/harrison/prebate/internal/questionnaire"
)

// LineReader reads one line of user input (for testing)
type LineReader interface {
	ReadString(delim byte) (string, error)
}

// DefaultLineReader wraps bufio.Reader
type DefaultLineReader struct {
	reader *bufio.Reader
}

// NewLineReader wraps r in a buffered LineReader
func NewLineReader(r io.Reader) *DefaultLineReader {
	return &DefaultLineReader{reader: bufio.NewReader(r)}
}

// ReadString implements LineReader
func (d *DefaultLineReader) ReadString(delim byte) (string, error) {
	return d.reader.ReadString(delim)
}

// Command is what a line of input asks the interview to do
type Command int

const (
	// CommandAnswer submits the parsed answer
	CommandAnswer Command = iota
	// CommandBack returns to the previous answered question
	CommandBack
	// CommandRestart clears all answers
	CommandRestart
	// CommandQuit aborts the interview
	CommandQuit
)

// String returns the command name
func (c Command) String() string {
	switch c {
	case CommandAnswer:
		return "answer"
	case CommandBack:
		return "back"
	case CommandRestart:
		return "restart"
	case CommandQuit:
		return "quit"
	default:
		return fmt.Sprintf("Command(%d)", int(c))
	}
}

// ParseInput maps a line typed at q's prompt to a command and, for
// CommandAnswer, the answer. Matching is case-insensitive. A number selects
// the 1-based option from q's option list. Unrecognised input returns an
// error wrapping questionnaire.ErrInvalidAnswer.
//
// Keyword answers are not checked against q's kind here, so "u" on a
// Yes/No question yields NotSure and is rejected by the session.
func ParseInput(input string, q *models.Question) (Command, models.Answer, error) {
	if answer, ok := models.ParseAnswerToken(input); ok {
		return CommandAnswer, answer, nil
	}

	token := strings.ToLower(strings.TrimSpace(input))
	switch token {
	case "b", "back":
		return CommandBack, models.Unanswered, nil
	case "r", "restart":
		return CommandRestart, models.Unanswered, nil
	case "q", "quit", "exit":
		return CommandQuit, models.Unanswered, nil
	case "":
		return CommandAnswer, models.Unanswered, fmt.Errorf("no answer given: %w", questionnaire.ErrInvalidAnswer)
	}

	if n, err := strconv.Atoi(token); err == nil {
		options := q.Options()
		if n < 1 || n > len(options) {
			return CommandAnswer, models.Unanswered,
				fmt.Errorf("option %d out of range (1-%d): %w", n, len(options), questionnaire.ErrInvalidAnswer)
		}
		return CommandAnswer, options[n-1], nil
	}

	return CommandAnswer, models.Unanswered,
		fmt.Errorf("unrecognised input %q: %w", strings.TrimSpace(input), questionnaire.ErrInvalidAnswer)
}
