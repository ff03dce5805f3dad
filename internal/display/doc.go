// Package display provides terminal UI utilities for the interview: prompts,
// progress, the result summary and warnings.
//
// # Interview Screens
//
// Renderer draws every interview screen. Colors come from fatih/color and are
// switched on per renderer, so callers decide based on TTY detection:
//
//	r := display.NewRenderer(os.Stdout, isatty.IsTerminal(os.Stdout.Fd()))
//	r.Prompt(question, session.Progress())
//	...
//	r.Summary(result, display.SummaryOptions{ShowFindings: explain})
//
// Prompt output looks like:
//
//	[========            ] 40% (4 of 10 answered)
//	Do you have a valid will?
//	  1) Yes
//	  2) No
//	[y/n, b=back, r=restart, q=quit] >
//
// Risk labels are colored like status pills: green for Low, yellow for
// Moderate and Elevated, red for High and Critical.
//
// # Progress
//
// ProgressBar renders answered/visible counts as an ASCII bar. For multi-file
// commands, ProgressIndicator prints one cyan line per file:
//
//	progress := display.NewProgressIndicator(os.Stdout, len(files))
//	progress.Start()
//	for _, file := range files {
//	    progress.Step(file)
//	    // ... validate file ...
//	}
//	progress.Complete(failed)
//
// # Warning Messages
//
// Display warnings with optional components:
//
//	warning := display.Warning{
//	    Title:      "Hidden Answers Ignored",
//	    Items:      []string{"joint_tenants"},
//	    ItemLabel:  "question",
//	    Suggestion: "Go back to restore them",
//	}
//	warning.Display(os.Stderr)
//
// Or use the factories WarnStaleAnswers and WarnValidationIssues.
//
// All functions accept io.Writer interfaces for testability.
package display
