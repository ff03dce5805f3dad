// Package parser loads and validates questionnaire question sets.
//
// Question sets are static assets read once at startup, either from a YAML
// or Markdown file or from the set embedded in the binary. Every set is
// validated before it is returned; a malformed set is a configuration
// defect and is reported as a ValidationError.
package parser

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/harrison/prebate/internal/models"
)

//go:embed questions.yaml
var defaultQuestionsYAML []byte

// Format represents the format of a question set file
type Format int

const (
	// FormatUnknown represents an unknown or unsupported file format
	FormatUnknown Format = iota
	// FormatMarkdown represents a Markdown (.md, .markdown) question set
	FormatMarkdown
	// FormatYAML represents a YAML (.yaml, .yml) question set
	FormatYAML
)

// String returns the string representation of the Format
func (f Format) String() string {
	switch f {
	case FormatMarkdown:
		return "markdown"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Parser is the interface that all question set parsers implement
type Parser interface {
	// Parse reads from an io.Reader and returns the questions in file order.
	// The result is not validated.
	Parse(r io.Reader) (name string, questions []models.Question, err error)
}

// DetectFormat detects the question set format from the file extension
func DetectFormat(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".md", ".markdown":
		return FormatMarkdown
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatUnknown
	}
}

// NewParser creates a new parser instance for the specified format
func NewParser(format Format) (Parser, error) {
	switch format {
	case FormatMarkdown:
		return NewMarkdownParser(), nil
	case FormatYAML:
		return NewYAMLParser(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %v", format)
	}
}

// ParseFile detects the format of path, parses and validates it.
// The absolute path is stored in the returned set's FilePath.
func ParseFile(path string) (*models.QuestionSet, error) {
	format := DetectFormat(path)
	if format == FormatUnknown {
		return nil, fmt.Errorf("unknown file format: %s (supported: .md, .markdown, .yaml, .yml)", path)
	}

	parser, err := NewParser(format)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	set, err := parse(parser, file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse question set %s: %w", filepath.Base(path), err)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}
	set.FilePath = absPath
	return set, nil
}

// Default returns the question set embedded in the binary.
func Default() (*models.QuestionSet, error) {
	set, err := parse(NewYAMLParser(), bytes.NewReader(defaultQuestionsYAML))
	if err != nil {
		return nil, fmt.Errorf("embedded question set: %w", err)
	}
	return set, nil
}

// Load returns the question set at path, or the embedded set when path is
// empty.
func Load(path string) (*models.QuestionSet, error) {
	if path == "" {
		return Default()
	}
	return ParseFile(path)
}

func parse(p Parser, r io.Reader) (*models.QuestionSet, error) {
	name, questions, err := p.Parse(r)
	if err != nil {
		return nil, err
	}
	if err := ValidateQuestions(questions); err != nil {
		return nil, err
	}
	return models.NewQuestionSet(name, questions), nil
}
