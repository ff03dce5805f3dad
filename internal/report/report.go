// Package report renders a scored assessment as a standalone Markdown or
// HTML document and writes it to disk under a file lock.
package report

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/harrison/prebate/internal/config"
	"github.com/harrison/prebate/internal/models"
)

// Title is the report heading in both formats.
const Title = "PreBate – Estate Readiness Report"

// Disclaimer closes every report.
const Disclaimer = "This report is for educational purposes and does not constitute legal advice. " +
	"Consult a solicitor for personalized guidance."

// TimeLayout formats the generated timestamp
const TimeLayout = "2006-01-02 15:04"

const noActionsText = "No immediate actions detected."

//go:embed templates/report.html.tmpl
var pageSource string

var page = template.Must(template.New("report").Parse(pageSource))

// Render produces the report for result in the given format
// (config.FormatMarkdown or config.FormatHTML).
func Render(result models.Result, generatedAt time.Time, format string) ([]byte, error) {
	switch format {
	case config.FormatMarkdown:
		return []byte(markdown(result, generatedAt, markdownLabel)), nil
	case config.FormatHTML:
		return renderHTML(result, generatedAt)
	default:
		return nil, fmt.Errorf("unsupported report format %q (expected %s or %s)",
			format, config.FormatHTML, config.FormatMarkdown)
	}
}

func markdown(result models.Result, generatedAt time.Time, label func(string) string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("# %s\n\n", Title))
	b.WriteString(fmt.Sprintf("Generated: %s\n\n", generatedAt.Format(TimeLayout)))
	b.WriteString(fmt.Sprintf("- **Probate Risk:** %s (score %d)\n", label(result.ProbateLabel), result.ProbateRisk))
	b.WriteString(fmt.Sprintf("- **Dispute Risk:** %s (score %d)\n\n", label(result.DisputeLabel), result.DisputeRisk))

	b.WriteString("## Recommended Actions\n\n")
	if result.HasActions() {
		for i, action := range result.Actions {
			b.WriteString(fmt.Sprintf("%d. %s\n", i+1, action))
		}
	} else {
		b.WriteString(noActionsText + "\n")
	}

	b.WriteString("\n---\n\n")
	b.WriteString(fmt.Sprintf("*%s*\n", Disclaimer))
	return b.String()
}

func markdownLabel(label string) string {
	return label
}

func pillLabel(label string) string {
	return fmt.Sprintf(`<span class="pill %s">%s</span>`, pillClass(label), template.HTMLEscapeString(label))
}

// pillClass maps a risk label to its CSS class
func pillClass(label string) string {
	switch label {
	case models.LabelLow:
		return "pill-green"
	case models.LabelModerate, models.LabelElevated:
		return "pill-amber"
	case models.LabelHigh, models.LabelCritical:
		return "pill-red"
	default:
		return "pill-neutral"
	}
}

type pageData struct {
	Title string
	Body  template.HTML
}

func renderHTML(result models.Result, generatedAt time.Time) ([]byte, error) {
	md := goldmark.New(goldmark.WithRendererOptions(html.WithUnsafe()))

	var body bytes.Buffer
	if err := md.Convert([]byte(markdown(result, generatedAt, pillLabel)), &body); err != nil {
		return nil, fmt.Errorf("failed to convert report markdown: %w", err)
	}

	var out bytes.Buffer
	if err := page.Execute(&out, pageData{Title: Title, Body: template.HTML(body.String())}); err != nil {
		return nil, fmt.Errorf("failed to render report page: %w", err)
	}
	return out.Bytes(), nil
}
