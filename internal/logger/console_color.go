package logger

import (
	"github.com/fatih/color"

	"github.com/harrison/prebate/internal/models"
)

// riskColor returns the color for a risk label.
// Green: Low
// Yellow: Moderate, Elevated
// Red: High, Critical
func riskColor(label string) *color.Color {
	switch label {
	case models.LabelLow:
		return color.New(color.FgGreen)
	case models.LabelModerate, models.LabelElevated:
		return color.New(color.FgYellow)
	case models.LabelHigh, models.LabelCritical:
		return color.New(color.FgRed)
	default:
		return color.New(color.Reset)
	}
}

// answerColor returns the color for a recorded answer, matching the
// answer buttons: Yes green, No red, Not sure yellow.
func answerColor(a models.Answer) *color.Color {
	switch a {
	case models.Yes:
		return color.New(color.FgGreen)
	case models.No:
		return color.New(color.FgRed)
	case models.NotSure:
		return color.New(color.FgYellow)
	default:
		return color.New(color.Reset)
	}
}
