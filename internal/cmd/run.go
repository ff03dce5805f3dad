package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/harrison/prebate/internal/config"
	"github.com/harrison/prebate/internal/display"
	"github.com/harrison/prebate/internal/interview"
	"github.com/harrison/prebate/internal/logger"
	"github.com/harrison/prebate/internal/questionnaire"
)

// NewRunCommand creates the run command
func NewRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Answer the estate readiness questionnaire",
		Long: `Run the questionnaire interactively. Each question is answered with
y (Yes), n (No), u (Not sure, where offered) or the option number.

At any prompt:
  b  go back to the previous answer
  r  restart and clear all answers
  q  quit without a result

Questions that depend on an earlier answer are skipped when they do not
apply. When every visible question is answered, the risk summary is printed
and a report is written.

Configuration is loaded from .prebate/config.yaml if present.
CLI flags override configuration file settings.

Examples:
  prebate run
  prebate run --format markdown --report estate.md
  prebate run --questions my-questions.yaml --no-report
  prebate run --log-level debug --log-dir ./logs`,
		Args: cobra.NoArgs,
		RunE: runCommand,
	}

	cmd.Flags().String("config", "", "Path to config file (default: .prebate/config.yaml)")
	cmd.Flags().String("questions", "", "Question set file (default: built-in questions)")
	cmd.Flags().String("report", "", "Report output path (default: prebate-report.<ext>)")
	cmd.Flags().String("format", "", "Report format: html or markdown")
	cmd.Flags().String("log-level", "", "Log level: trace, debug, info, warn, error")
	cmd.Flags().String("log-dir", "", "Directory for session log files")
	cmd.Flags().Bool("no-report", false, "Do not write a report file")
	cmd.Flags().Bool("explain", false, "Show which rules contributed to the scores")

	return cmd
}

// runCommand implements the run command logic
func runCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	var reportEnabled *bool
	if noReport, _ := cmd.Flags().GetBool("no-report"); noReport {
		disabled := false
		reportEnabled = &disabled
	}

	// Merge CLI flags with config (flags take precedence)
	cfg.MergeWithFlags(
		stringFlag(cmd, "log-level"),
		stringFlag(cmd, "log-dir"),
		stringFlag(cmd, "questions"),
		stringFlag(cmd, "report"),
		stringFlag(cmd, "format"),
		reportEnabled,
	)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	explain, _ := cmd.Flags().GetBool("explain")
	return runInterview(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), explain)
}

// runInterview wires the session, interviewer, loggers and report for one run
func runInterview(ctx context.Context, cfg *config.Config, in io.Reader, out, errOut io.Writer, explain bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	set, err := loadQuestions(cfg.Questions, out)
	if err != nil {
		return err
	}

	engine, err := newEngine(cfg)
	if err != nil {
		return err
	}

	console := logger.NewConsoleLogger(errOut, cfg.LogLevel)
	var log logger.Logger = console

	fileLogger, err := logger.NewFileLoggerWithDirAndLevel(cfg.LogDir, cfg.LogLevel)
	if err != nil {
		console.LogWarn(fmt.Sprintf("Session log disabled: %v", err))
	} else {
		defer fileLogger.Close()
		log = logger.NewMultiLogger(console, fileLogger)
		console.LogDebug(fmt.Sprintf("Session log: %s", fileLogger.Path()))
	}

	renderer := display.NewRenderer(out, useColor(out))
	session := questionnaire.New(set)
	iv := interview.New(session, engine, interview.NewLineReader(in), renderer, log)

	outcome, err := iv.Run(ctx)
	if err != nil {
		if errors.Is(err, interview.ErrAborted) {
			renderer.Notice("Assessment stopped. No report written.")
			return nil
		}
		return fmt.Errorf("assessment interrupted: %w", err)
	}

	renderer.Summary(outcome.Result, display.SummaryOptions{ShowFindings: explain})

	if !cfg.Report.Enabled {
		return nil
	}

	path := cfg.ReportPath()
	if err := writeReport(outcome.Result, cfg.Report.Format, path); err != nil {
		log.LogError(fmt.Sprintf("Report not written: %v", err))
		return err
	}
	log.LogInfo(fmt.Sprintf("Report written to %s", path))
	renderer.Success(fmt.Sprintf("Report written to %s", path))
	return nil
}
