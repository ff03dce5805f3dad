package display

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/harrison/prebate/internal/models"
)

// NoActionsText is shown when no rule recommended an action.
const NoActionsText = "No immediate actions detected."

// SummaryOptions controls optional sections of the summary
type SummaryOptions struct {
	ShowFindings bool // Include the table of rules that fired
}

// Summary renders the scored outcome: both risk labels with scores, the
// numbered action list and, optionally, the findings table.
func (r *Renderer) Summary(result models.Result, opts SummaryOptions) {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(r.paint(color.Bold).Sprint("=== Estate Readiness Summary ==="))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Probate Risk: %s (score %d)\n",
		r.labelColor(result.ProbateLabel).Sprint(result.ProbateLabel), result.ProbateRisk))
	b.WriteString(fmt.Sprintf("Dispute Risk: %s (score %d)\n",
		r.labelColor(result.DisputeLabel).Sprint(result.DisputeLabel), result.DisputeRisk))

	b.WriteString("\n")
	b.WriteString(r.paint(color.Bold).Sprint("Recommended Actions"))
	b.WriteString("\n")
	if result.HasActions() {
		for i, action := range result.Actions {
			b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, action))
		}
	} else {
		b.WriteString("  ")
		b.WriteString(r.paint(color.FgGreen).Sprint(NoActionsText))
		b.WriteString("\n")
	}

	if opts.ShowFindings {
		b.WriteString("\n")
		b.WriteString(r.paint(color.Bold).Sprint("Rules Fired"))
		b.WriteString("\n")
		b.WriteString(FormatFindings(result.Findings))
	}

	fmt.Fprint(r.out, b.String())
}

// FormatFindings renders findings as a fixed-width table.
func FormatFindings(findings []models.Finding) string {
	if len(findings) == 0 {
		return "  (none)\n"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("  %-24s %8s %8s\n", "Rule", "Probate", "Dispute"))
	sb.WriteString("  " + strings.Repeat("-", 42) + "\n")

	probate, dispute := 0, 0
	for _, f := range findings {
		sb.WriteString(fmt.Sprintf("  %-24s %8s %8s\n", f.Rule, signed(f.Probate), signed(f.Dispute)))
		probate += f.Probate
		dispute += f.Dispute
	}

	sb.WriteString("  " + strings.Repeat("-", 42) + "\n")
	sb.WriteString(fmt.Sprintf("  %-24s %8d %8d\n", "Total", probate, dispute))
	return sb.String()
}

func signed(n int) string {
	if n == 0 {
		return "-"
	}
	return fmt.Sprintf("+%d", n)
}
