package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/harrison/prebate/internal/config"
	"github.com/harrison/prebate/internal/display"
	"github.com/harrison/prebate/internal/parser"
	"github.com/harrison/prebate/internal/questionnaire"
)

// NewScoreCommand creates the score command
func NewScoreCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score <answers.yaml>",
		Short: "Score a saved answer file without prompting",
		Long: `Score an answer file non-interactively. The file is a YAML mapping of
question id to answer:

  has_will: "Yes"
  will_recent: "No"
  property_registered: Not sure

Answers are matched like typed input, ignoring case: yes/y, no/n and
not sure/unsure/u/? are accepted.

Answers to questions hidden by an earlier answer are ignored. Unknown
question ids and answers a question does not accept are errors.

Examples:
  prebate score answers.yaml
  prebate score answers.yaml --explain
  prebate score answers.yaml --report estate.html`,
		Args: cobra.ExactArgs(1),
		RunE: scoreCommand,
	}

	cmd.Flags().String("config", "", "Path to config file (default: .prebate/config.yaml)")
	cmd.Flags().String("questions", "", "Question set file (default: built-in questions)")
	cmd.Flags().String("report", "", "Write a report to this path")
	cmd.Flags().String("format", "", "Report format: html or markdown")
	cmd.Flags().Bool("explain", false, "Show which rules contributed to the scores")

	return cmd
}

func scoreCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	reportPath := stringFlag(cmd, "report")
	enabled := reportPath != nil
	cfg.MergeWithFlags(nil, nil, stringFlag(cmd, "questions"), reportPath, stringFlag(cmd, "format"), &enabled)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	explain, _ := cmd.Flags().GetBool("explain")
	return scoreAnswers(args[0], cfg, cmd.OutOrStdout(), explain)
}

// scoreAnswers evaluates the answers in path against the configured set
func scoreAnswers(path string, cfg *config.Config, out io.Writer, explain bool) error {
	set, err := loadQuestions(cfg.Questions, out)
	if err != nil {
		return err
	}

	engine, err := newEngine(cfg)
	if err != nil {
		return err
	}

	answers, err := parser.ParseAnswersFile(path)
	if err != nil {
		return err
	}
	if err := parser.ValidateAnswers(set, answers); err != nil {
		return err
	}

	renderer := display.NewRenderer(out, useColor(out))

	if stale := questionnaire.StaleAnswers(set, answers); len(stale) > 0 {
		display.WarnStaleAnswers(stale).Display(out)
	}
	if p := questionnaire.CountProgress(set, answers); p.Answered < p.Visible {
		renderer.Notice(fmt.Sprintf("Incomplete answers (%s). Unanswered questions trigger no rules.", p))
	}

	result := engine.Evaluate(questionnaire.FilterVisible(set, answers))
	renderer.Summary(result, display.SummaryOptions{ShowFindings: explain})

	if !cfg.Report.Enabled {
		return nil
	}
	reportPath := cfg.ReportPath()
	if err := writeReport(result, cfg.Report.Format, reportPath); err != nil {
		return err
	}
	renderer.Success(fmt.Sprintf("Report written to %s", reportPath))
	return nil
}
