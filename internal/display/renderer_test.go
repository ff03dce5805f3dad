package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harrison/prebate/internal/models"
)

func TestRendererPrompt(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, false)

	q := &models.Question{ID: models.PropertyRegistered, Prompt: "Is your property registered?", Kind: models.KindTernary}
	r.Prompt(q, models.Progress{Answered: 2, Visible: 8})

	want := "\n" +
		"[=====               ] 25% (2 of 8 answered)\n" +
		"Is your property registered?\n" +
		"  1) Yes\n" +
		"  2) Not sure\n" +
		"  3) No\n" +
		"[y/u/n, b=back, r=restart, q=quit] > "
	assert.Equal(t, want, buf.String())
}

func TestRendererPrompt_Color(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, true)

	r.Prompt(&models.Question{ID: models.HasWill, Prompt: "Will?", Kind: models.KindBinary}, models.Progress{Visible: 1})

	out := buf.String()
	assert.Contains(t, out, "\x1b[32mYes\x1b[0m")
	assert.Contains(t, out, "\x1b[31mNo\x1b[0m")
}

func TestAnswerHint(t *testing.T) {
	assert.Equal(t, "y/n", AnswerHint(&models.Question{Kind: models.KindBinary}))
	assert.Equal(t, "y/u/n", AnswerHint(&models.Question{Kind: models.KindTernary}))
	assert.Equal(t, "", AnswerHint(&models.Question{Kind: "other"}))
}

func TestRendererMessages(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, false)

	r.Notice("Already at the first question.")
	r.Error("invalid answer")
	r.Success("report written")

	assert.Equal(t, "Already at the first question.\n✗ invalid answer\n✓ report written\n", buf.String())
	assert.Equal(t, &buf, r.Writer())
}

func TestRendererSummary(t *testing.T) {
	result := models.Result{
		ProbateRisk:  5,
		ProbateLabel: models.LabelHigh,
		DisputeRisk:  2,
		DisputeLabel: models.LabelCritical,
		Actions:      []string{"First action.", "Second action."},
		Findings: []models.Finding{
			{Rule: "sole_property", Probate: 2},
			{Rule: "caregiver_informal", Probate: 1, Dispute: 2},
			{Rule: "no_will", Probate: 2},
		},
	}

	t.Run("without findings", func(t *testing.T) {
		var buf bytes.Buffer
		NewRenderer(&buf, false).Summary(result, SummaryOptions{})
		out := buf.String()

		assert.Contains(t, out, "=== Estate Readiness Summary ===")
		assert.Contains(t, out, "Probate Risk: High (score 5)\n")
		assert.Contains(t, out, "Dispute Risk: Critical (score 2)\n")
		assert.Contains(t, out, "Recommended Actions\n  1. First action.\n  2. Second action.\n")
		assert.NotContains(t, out, "Rules Fired")
		assert.NotContains(t, out, NoActionsText)
	})

	t.Run("with findings", func(t *testing.T) {
		var buf bytes.Buffer
		NewRenderer(&buf, false).Summary(result, SummaryOptions{ShowFindings: true})
		out := buf.String()

		assert.Contains(t, out, "Rules Fired")
		assert.Contains(t, out, "caregiver_informal")
		lines := strings.Split(out, "\n")
		var total string
		for _, l := range lines {
			if strings.Contains(l, "Total") {
				total = l
			}
		}
		assert.Equal(t, []string{"Total", "5", "2"}, strings.Fields(total))
	})

	t.Run("colored labels", func(t *testing.T) {
		var buf bytes.Buffer
		NewRenderer(&buf, true).Summary(result, SummaryOptions{})
		assert.Contains(t, buf.String(), "\x1b[31;1mHigh")
	})
}

func TestRendererSummary_NoActions(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf, false).Summary(models.Result{
		ProbateLabel: models.LabelLow,
		DisputeLabel: models.LabelLow,
		Actions:      []string{},
	}, SummaryOptions{ShowFindings: true})

	out := buf.String()
	assert.Contains(t, out, "Probate Risk: Low (score 0)")
	assert.Contains(t, out, "  No immediate actions detected.\n")
	assert.Contains(t, out, "  (none)\n")
}

func TestFormatFindings(t *testing.T) {
	out := FormatFindings([]models.Finding{{Rule: "divorced", Probate: 1}})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert.Len(t, lines, 5)
	assert.Equal(t, []string{"Rule", "Probate", "Dispute"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"divorced", "+1", "-"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"Total", "1", "0"}, strings.Fields(lines[4]))
}
