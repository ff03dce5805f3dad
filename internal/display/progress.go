package display

import (
	"fmt"
	"io"
	"path/filepath"
)

// ProgressIndicator manages multi-file progress display with ANSI colors
type ProgressIndicator struct {
	writer     io.Writer
	totalFiles int
	current    int
}

// NewProgressIndicator creates a new progress indicator
func NewProgressIndicator(w io.Writer, total int) *ProgressIndicator {
	return &ProgressIndicator{
		writer:     w,
		totalFiles: total,
		current:    0,
	}
}

// Start displays the header message
func (p *ProgressIndicator) Start() {
	fmt.Fprintf(p.writer, "Validating question sets:\n")
}

// Step displays progress for current item: [N/Total] filename (cyan)
func (p *ProgressIndicator) Step(filename string) {
	p.current++
	basename := filepath.Base(filename)
	fmt.Fprintf(p.writer, "\x1b[36m  [%d/%d] %s\x1b[0m\n", p.current, p.totalFiles, basename)
}

// Complete displays the final count: green check when failed is zero,
// red cross otherwise
func (p *ProgressIndicator) Complete(failed int) {
	if failed == 0 {
		fmt.Fprintf(p.writer, "\x1b[32m✓\x1b[0m Validated %d question set files\n", p.totalFiles)
		return
	}
	fmt.Fprintf(p.writer, "\x1b[31m✗\x1b[0m %d of %d question set files invalid\n", failed, p.totalFiles)
}

// DisplaySingleFile shows simple loading message for single file
func DisplaySingleFile(w io.Writer, filename string) {
	fmt.Fprintf(w, "Loading questions from %s...\n", filename)
}
