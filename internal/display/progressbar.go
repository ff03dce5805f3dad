package display

import (
	"fmt"
	"strings"
	"sync"

	"github.com/fatih/color"

	"github.com/harrison/prebate/internal/models"
)

// ProgressBar represents an ASCII progress bar over visible questions
type ProgressBar struct {
	answered    int
	visible     int
	width       int
	enableColor bool
	prefix      string
	mu          sync.RWMutex
}

// NewProgressBar creates a new progress bar
func NewProgressBar(width int, enableColor bool) *ProgressBar {
	if width < 1 {
		width = 20
	}
	return &ProgressBar{
		width:       width,
		enableColor: enableColor,
	}
}

// Update sets the answered and visible counts
func (pb *ProgressBar) Update(p models.Progress) {
	pb.mu.Lock()
	defer pb.mu.Unlock()
	pb.answered = p.Answered
	pb.visible = p.Visible
}

// Progress returns the current counts
func (pb *ProgressBar) Progress() models.Progress {
	pb.mu.RLock()
	defer pb.mu.RUnlock()
	return models.Progress{Answered: pb.answered, Visible: pb.visible}
}

// Percentage returns the progress percentage (0-100)
func (pb *ProgressBar) Percentage() int {
	pb.mu.RLock()
	defer pb.mu.RUnlock()
	return clampPercent(pb.answered, pb.visible)
}

// SetPrefix sets a custom prefix for the progress bar
func (pb *ProgressBar) SetPrefix(prefix string) {
	pb.mu.Lock()
	defer pb.mu.Unlock()
	pb.prefix = prefix
}

// Render generates the progress bar string.
// Format: "[=====     ] 50% (3 of 6 answered)"
func (pb *ProgressBar) Render() string {
	pb.mu.RLock()
	defer pb.mu.RUnlock()

	perc := clampPercent(pb.answered, pb.visible)
	filled := (perc * pb.width) / 100

	var bar strings.Builder
	bar.WriteString("[")
	bar.WriteString(strings.Repeat("=", filled))
	bar.WriteString(strings.Repeat(" ", pb.width-filled))
	bar.WriteString("]")

	progress := models.Progress{Answered: pb.answered, Visible: pb.visible}
	result := fmt.Sprintf("%s%s %d%% (%s)", pb.prefix, bar.String(), perc, progress)

	if pb.enableColor {
		c := color.New(color.FgCyan)
		if perc == 100 {
			c = color.New(color.FgGreen)
		}
		c.EnableColor()
		result = c.Sprint(result)
	}

	return result
}

func clampPercent(answered, visible int) int {
	if visible <= 0 {
		return 0
	}
	perc := (answered * 100) / visible
	if perc > 100 {
		perc = 100
	}
	if perc < 0 {
		perc = 0
	}
	return perc
}
