package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harrison/prebate/internal/models"
)

// NewQuestionsCommand creates the questions command
func NewQuestionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "questions",
		Short: "List the question sequence",
		Long: `List every question in order with its answer kind and the condition
under which it is shown. Uses the built-in questions unless --questions or
the config file names another set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			cfg.MergeWithFlags(nil, nil, stringFlag(cmd, "questions"), nil, nil, nil)

			set, err := loadQuestions(cfg.Questions, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			verbose, _ := cmd.Flags().GetBool("verbose")
			listQuestions(set, cmd.OutOrStdout(), verbose)
			return nil
		},
	}

	cmd.Flags().String("config", "", "Path to config file (default: .prebate/config.yaml)")
	cmd.Flags().String("questions", "", "Question set file (default: built-in questions)")
	cmd.Flags().BoolP("verbose", "v", false, "Show the prompt text under each question")

	return cmd
}

// listQuestions prints the sequence as a fixed-width table
func listQuestions(set *models.QuestionSet, out io.Writer, verbose bool) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s: %d questions\n\n", set.Name, set.Len()))
	sb.WriteString(fmt.Sprintf("  %3s  %-22s %-8s %s\n", "#", "ID", "Kind", "Shown if"))
	sb.WriteString("  " + strings.Repeat("-", 60) + "\n")

	for i := range set.Questions {
		q := &set.Questions[i]
		sb.WriteString(fmt.Sprintf("  %3d  %-22s %-8s %s\n", i+1, q.ID, q.Kind, formatConditions(q.ShowIf)))
		if verbose {
			sb.WriteString(fmt.Sprintf("       %s\n", q.Prompt))
		}
	}

	fmt.Fprint(out, sb.String())
}

func formatConditions(conds []models.Condition) string {
	if len(conds) == 0 {
		return "always"
	}
	parts := make([]string, len(conds))
	for i, c := range conds {
		parts[i] = fmt.Sprintf("%s = %s", c.QuestionID, c.Answer)
	}
	return strings.Join(parts, " and ")
}
