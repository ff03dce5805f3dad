package display

import (
	"strings"
	"sync"
	"testing"

	"github.com/harrison/prebate/internal/models"
)

// TestProgressBarRender verifies correct ASCII bar rendering
func TestProgressBarRender(t *testing.T) {
	tests := []struct {
		name     string
		progress models.Progress
		width    int
		expected string
	}{
		{"empty progress", models.Progress{Answered: 0, Visible: 10}, 10, "[          ] 0% (0 of 10 answered)"},
		{"half progress", models.Progress{Answered: 5, Visible: 10}, 10, "[=====     ] 50% (5 of 10 answered)"},
		{"full progress", models.Progress{Answered: 10, Visible: 10}, 10, "[==========] 100% (10 of 10 answered)"},
		{"quarter progress", models.Progress{Answered: 2, Visible: 8}, 8, "[==      ] 25% (2 of 8 answered)"},
		{"rounds down", models.Progress{Answered: 1, Visible: 3}, 10, "[===       ] 33% (1 of 3 answered)"},
		{"nothing visible", models.Progress{}, 4, "[    ] 0% (0 of 0 answered)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pb := NewProgressBar(tt.width, false)
			pb.Update(tt.progress)
			if got := pb.Render(); got != tt.expected {
				t.Errorf("Render() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestProgressBarDefaultWidth(t *testing.T) {
	pb := NewProgressBar(0, false)
	pb.Update(models.Progress{Answered: 1, Visible: 2})
	if got := pb.Render(); !strings.HasPrefix(got, "["+strings.Repeat("=", 10)+strings.Repeat(" ", 10)+"]") {
		t.Errorf("Render() = %q, want 20-wide bar", got)
	}
}

func TestProgressBarPrefix(t *testing.T) {
	pb := NewProgressBar(4, false)
	pb.SetPrefix("Progress: ")
	pb.Update(models.Progress{Answered: 4, Visible: 4})
	if got := pb.Render(); got != "Progress: [====] 100% (4 of 4 answered)" {
		t.Errorf("Render() = %q", got)
	}
}

func TestProgressBarPercentageClamped(t *testing.T) {
	pb := NewProgressBar(10, false)
	pb.Update(models.Progress{Answered: 7, Visible: 5})
	if got := pb.Percentage(); got != 100 {
		t.Errorf("Percentage() = %d, want 100", got)
	}
	if got := pb.Progress(); got.Answered != 7 || got.Visible != 5 {
		t.Errorf("Progress() = %+v", got)
	}
}

func TestProgressBarColor(t *testing.T) {
	tests := []struct {
		name     string
		progress models.Progress
		wantCode string
	}{
		{"in progress is cyan", models.Progress{Answered: 1, Visible: 2}, "\x1b[36m"},
		{"complete is green", models.Progress{Answered: 2, Visible: 2}, "\x1b[32m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pb := NewProgressBar(10, true)
			pb.Update(tt.progress)
			got := pb.Render()
			if !strings.HasPrefix(got, tt.wantCode) {
				t.Errorf("Render() = %q, want prefix %q", got, tt.wantCode)
			}
		})
	}
}

// TestProgressBarConcurrentAccess verifies thread-safe updates
func TestProgressBarConcurrentAccess(t *testing.T) {
	pb := NewProgressBar(10, false)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			pb.Update(models.Progress{Answered: n % 10, Visible: 10})
		}(i)
		go func() {
			defer wg.Done()
			_ = pb.Render()
		}()
	}
	wg.Wait()

	if p := pb.Percentage(); p < 0 || p > 100 {
		t.Errorf("Percentage() out of range: %d", p)
	}
}
