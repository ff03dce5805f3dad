package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/harrison/prebate/internal/models"
)

func TestMultiLogger(t *testing.T) {
	first := &bytes.Buffer{}
	second := &bytes.Buffer{}

	m := NewMultiLogger(NewConsoleLogger(first, "debug"), nil, NewConsoleLogger(second, "info"))
	if len(m.loggers) != 2 {
		t.Fatalf("expected nil logger to be skipped, got %d loggers", len(m.loggers))
	}

	m.LogSessionStart("abc", 5)
	m.LogAnswer(models.Pension, models.Yes, models.Progress{Answered: 1, Visible: 5})
	m.LogBack(models.Pension)
	m.LogReset()
	m.LogWarn("careful")
	m.LogSessionComplete(models.Result{ProbateLabel: models.LabelLow, DisputeLabel: models.LabelLow})

	for name, buf := range map[string]*bytes.Buffer{"first": first, "second": second} {
		out := buf.String()
		for _, want := range []string{"Session abc started", "Session reset", "[WARN] careful", "Assessment Summary"} {
			if !strings.Contains(out, want) {
				t.Errorf("%s logger missing %q: %q", name, want, out)
			}
		}
	}

	// Debug events reach only the debug-level logger
	if !strings.Contains(first.String(), "Answered pension: Yes") {
		t.Errorf("debug logger missing answer: %q", first.String())
	}
	if strings.Contains(second.String(), "Answered") || strings.Contains(second.String(), "Back to") {
		t.Errorf("info logger should filter debug events: %q", second.String())
	}
}

func TestNoOpLogger(t *testing.T) {
	var l Logger = NewNoOpLogger()
	l.LogInfo("x")
	l.LogSessionStart("id", 1)
	l.LogAnswer(models.HasWill, models.Yes, models.Progress{})
	l.LogBack(models.HasWill)
	l.LogReset()
	l.LogSessionComplete(models.Result{})
}
