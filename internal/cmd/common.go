package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/harrison/prebate/internal/config"
	"github.com/harrison/prebate/internal/display"
	"github.com/harrison/prebate/internal/models"
	"github.com/harrison/prebate/internal/parser"
	"github.com/harrison/prebate/internal/report"
	"github.com/harrison/prebate/internal/scoring"
)

// loadConfig reads --config when given, otherwise the home config path.
// A missing file yields defaults.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath != "" {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
		return cfg, nil
	}

	path, err := config.HomeConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to locate config: %w", err)
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// stringFlag returns a pointer to the flag value, or nil when the flag was
// not set on the command line.
func stringFlag(cmd *cobra.Command, name string) *string {
	if cmd.Flags().Lookup(name) == nil || !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}

// loadQuestions returns the question set at path, or the embedded set
func loadQuestions(path string, out io.Writer) (*models.QuestionSet, error) {
	if path != "" {
		display.DisplaySingleFile(out, path)
	}
	set, err := parser.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}
	return set, nil
}

func newEngine(cfg *config.Config) (*scoring.Engine, error) {
	thresholds := scoring.Thresholds{
		ProbateLowMax:      cfg.Scoring.ProbateLowMax,
		ProbateModerateMax: cfg.Scoring.ProbateModerateMax,
	}
	if err := thresholds.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scoring thresholds: %w", err)
	}
	return scoring.NewEngine(thresholds), nil
}

// writeReport renders result in format and stores it at path
func writeReport(result models.Result, format, path string) error {
	data, err := report.Render(result, time.Now(), format)
	if err != nil {
		return err
	}
	return report.Write(path, data)
}

// useColor reports whether w is a color-capable terminal
func useColor(w io.Writer) bool {
	if color.NoColor {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
