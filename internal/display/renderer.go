package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/harrison/prebate/internal/models"
)

// Renderer writes interview screens to an io.Writer.
// Colors are applied only when enableColor is set, independent of
// fatih/color's global TTY detection, so output is deterministic in tests.
type Renderer struct {
	out         io.Writer
	enableColor bool
	bar         *ProgressBar
}

// NewRenderer creates a Renderer writing to out
func NewRenderer(out io.Writer, enableColor bool) *Renderer {
	return &Renderer{
		out:         out,
		enableColor: enableColor,
		bar:         NewProgressBar(20, enableColor),
	}
}

// Writer returns the underlying writer
func (r *Renderer) Writer() io.Writer {
	return r.out
}

func (r *Renderer) paint(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if r.enableColor {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// Prompt renders the progress bar, the question and its numbered options,
// followed by the input hint. The cursor is left on the hint line.
func (r *Renderer) Prompt(q *models.Question, progress models.Progress) {
	r.bar.Update(progress)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(r.bar.Render())
	b.WriteString("\n")
	b.WriteString(r.paint(color.Bold).Sprint(q.Prompt))
	b.WriteString("\n")
	for i, opt := range q.Options() {
		b.WriteString(fmt.Sprintf("  %d) %s\n", i+1, r.answerColor(opt).Sprint(string(opt))))
	}
	b.WriteString(r.paint(color.FgHiBlack).Sprintf("[%s, b=back, r=restart, q=quit]", AnswerHint(q)))
	b.WriteString(" > ")

	fmt.Fprint(r.out, b.String())
}

// AnswerHint returns the short answer keys for q, e.g. "y/n" or "y/u/n".
func AnswerHint(q *models.Question) string {
	keys := make([]string, 0, 3)
	for _, opt := range q.Options() {
		switch opt {
		case models.Yes:
			keys = append(keys, "y")
		case models.No:
			keys = append(keys, "n")
		case models.NotSure:
			keys = append(keys, "u")
		}
	}
	return strings.Join(keys, "/")
}

// Notice renders an informational line in yellow
func (r *Renderer) Notice(message string) {
	fmt.Fprintln(r.out, r.paint(color.FgYellow).Sprint(message))
}

// Error renders a failure line in red with a ✗ prefix
func (r *Renderer) Error(message string) {
	fmt.Fprintln(r.out, r.paint(color.FgRed).Sprintf("✗ %s", message))
}

// Success renders a line in green with a ✓ prefix
func (r *Renderer) Success(message string) {
	fmt.Fprintln(r.out, r.paint(color.FgGreen).Sprintf("✓ %s", message))
}

func (r *Renderer) answerColor(a models.Answer) *color.Color {
	switch a {
	case models.Yes:
		return r.paint(color.FgGreen)
	case models.No:
		return r.paint(color.FgRed)
	case models.NotSure:
		return r.paint(color.FgYellow)
	default:
		return r.paint(color.Reset)
	}
}

// labelColor returns the pill color for a risk label:
// green Low, yellow Moderate/Elevated, red High/Critical
func (r *Renderer) labelColor(label string) *color.Color {
	switch label {
	case models.LabelLow:
		return r.paint(color.FgGreen, color.Bold)
	case models.LabelModerate, models.LabelElevated:
		return r.paint(color.FgYellow, color.Bold)
	case models.LabelHigh, models.LabelCritical:
		return r.paint(color.FgRed, color.Bold)
	default:
		return r.paint(color.Bold)
	}
}
