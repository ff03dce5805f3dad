package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for prebate
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prebate",
		Short: "Estate readiness questionnaire",
		Long: `PreBate asks a short series of Yes/No questions about your property,
accounts, pensions and will, then scores how likely your estate is to face
probate delays and family disputes.

It prints a risk summary with recommended actions and can write the result
as an HTML or Markdown report. This is not legal advice.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	// Add subcommands
	cmd.AddCommand(NewRunCommand())
	cmd.AddCommand(NewScoreCommand())
	cmd.AddCommand(NewValidateCommand())
	cmd.AddCommand(NewQuestionsCommand())

	return cmd
}
