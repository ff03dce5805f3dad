package cmd

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/harrison/prebate/internal/display"
	"github.com/harrison/prebate/internal/models"
	"github.com/harrison/prebate/internal/parser"
)

// NewValidateCommand creates and returns the validate subcommand
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <questions-file>...",
		Short: "Validate one or more question set files",
		Long: `Parse and validate question set files (YAML or Markdown), checking for:
  - Known question ids and non-empty prompts
  - Answer kinds (binary or ternary)
  - Duplicate question ids
  - show_if conditions that reference an earlier question
  - show_if answers the referenced question accepts

Every problem in a file is reported, not just the first.

Exit code: 0 if valid, 1 if errors found`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return validateQuestionFiles(args, cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}

	return cmd
}

// validateQuestionFiles validates each file and reports a combined result
func validateQuestionFiles(paths []string, output io.Writer) error {
	if len(paths) == 1 {
		return validateQuestionFile(paths[0], output)
	}

	progress := display.NewProgressIndicator(output, len(paths))
	progress.Start()

	failed := 0
	errorCount := 0
	for _, path := range paths {
		progress.Step(path)

		set, issues := checkQuestionFile(path)
		if len(issues) > 0 {
			failed++
			errorCount += len(issues)
			for _, issue := range issues {
				fmt.Fprintf(output, "    ✗ %s\n", issue)
			}
			continue
		}
		fmt.Fprintf(output, "    ✓ %s\n", describeSet(set))
	}

	progress.Complete(failed)

	if errorCount > 0 {
		return fmt.Errorf("validation failed with %d error(s)", errorCount)
	}
	return nil
}

// validateQuestionFile validates a single file with a detailed report
func validateQuestionFile(path string, output io.Writer) error {
	set, issues := checkQuestionFile(path)
	if len(issues) > 0 {
		display.WarnValidationIssues(filepath.Base(path), issues).Display(output)
		fmt.Fprintf(output, "✗ Validation failed\n")
		return fmt.Errorf("validation failed with %d error(s)", len(issues))
	}

	fmt.Fprintf(output, "✓ Question set is valid: %s\n", describeSet(set))
	return nil
}

// checkQuestionFile parses path and returns the set or the list of issues
func checkQuestionFile(path string) (*models.QuestionSet, []string) {
	set, err := parser.ParseFile(path)
	if err == nil {
		return set, nil
	}

	var verr *parser.ValidationError
	if errors.As(err, &verr) {
		return nil, verr.Issues
	}
	return nil, []string{err.Error()}
}

func describeSet(set *models.QuestionSet) string {
	conditional := 0
	for i := range set.Questions {
		if set.Questions[i].IsConditional() {
			conditional++
		}
	}
	name := set.Name
	if name == "" {
		name = filepath.Base(set.FilePath)
	}
	return fmt.Sprintf("%s (%d questions, %d conditional)", name, set.Len(), conditional)
}
