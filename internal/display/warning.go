package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/harrison/prebate/internal/models"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Items      []string // Related questions or issues (optional)
	ItemLabel  string   // Singular noun for Items, default "item"
	Suggestion string   // Action to take (optional)
}

// Display shows a formatted warning in yellow
func (w Warning) Display(out io.Writer) {
	var b strings.Builder

	// Start with yellow color, emoji, and title
	b.WriteString("\x1b[33m")
	b.WriteString("⚠️  Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	// Add message with 4-space indent if present
	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	// Add items with proper singular/plural and indentation
	if len(w.Items) > 0 {
		label := w.ItemLabel
		if label == "" {
			label = "item"
		}
		b.WriteString("    ")
		if len(w.Items) == 1 {
			b.WriteString(fmt.Sprintf("Affected %s:\n", label))
		} else {
			b.WriteString(fmt.Sprintf("Affected %ss:\n", label))
		}

		for i, item := range w.Items {
			b.WriteString("      ")
			b.WriteString(fmt.Sprintf("%d. %s", i+1, item))
			b.WriteString("\n")
		}
	}

	// Add suggestion with 4-space indent if present
	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	// End with reset code
	b.WriteString("\x1b[0m")

	// Write final output
	fmt.Fprint(out, b.String())
}

// WarnStaleAnswers creates a warning for answers recorded against
// questions that are now hidden. Those answers are kept but not scored.
func WarnStaleAnswers(ids []models.QuestionID) Warning {
	items := make([]string, len(ids))
	for i, id := range ids {
		items[i] = string(id)
	}
	return Warning{
		Title:      "Hidden Answers Ignored",
		Message:    "A changed answer hid questions you had already answered.",
		Items:      items,
		ItemLabel:  "question",
		Suggestion: "These answers are kept but not scored. Go back to restore them.",
	}
}

// WarnValidationIssues creates a warning listing question set problems.
func WarnValidationIssues(path string, issues []string) Warning {
	return Warning{
		Title:     fmt.Sprintf("Invalid question set %s", path),
		Items:     issues,
		ItemLabel: "issue",
	}
}
