package parser

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/harrison/prebate/internal/models"
)

// MarkdownParser parses question sets written as Markdown:
//
//	# Estate readiness
//
//	## co_owned
//	Do you co-own property with someone else?
//
//	## joint_tenants
//	If co-owned, is it owned as joint tenants?
//
//	- show_if: co_owned = Yes
//
// A level 1 heading names the set. Each level 2 heading starts a question
// whose id is the heading text; following paragraphs form the prompt and
// list items of the form "key: value" set kind and show_if.
type MarkdownParser struct {
	markdown goldmark.Markdown
}

// NewMarkdownParser creates a new MarkdownParser
func NewMarkdownParser() *MarkdownParser {
	return &MarkdownParser{
		markdown: goldmark.New(),
	}
}

var (
	metadataRegex  = regexp.MustCompile(`^([a-z_]+)\s*:\s*(.*)$`)
	conditionRegex = regexp.MustCompile(`^([a-z_]+)\s*=\s*(.+)$`)
)

// Parse implements Parser
func (p *MarkdownParser) Parse(r io.Reader) (string, []models.Question, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read content: %w", err)
	}

	doc := p.markdown.Parser().Parse(text.NewReader(content))

	var (
		name      string
		questions []models.Question
		current   *models.Question
		prompt    []string
		walkErr   error
	)

	flush := func() {
		if current == nil {
			return
		}
		current.Prompt = strings.Join(prompt, " ")
		questions = append(questions, *current)
		current = nil
		prompt = nil
	}

	for n := doc.FirstChild(); n != nil && walkErr == nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			headingText := strings.TrimSpace(extractText(node, content))
			switch node.Level {
			case 1:
				if name == "" {
					name = headingText
				}
			case 2:
				flush()
				current = &models.Question{
					ID:   models.QuestionID(headingText),
					Kind: models.KindBinary,
				}
			}
		case *ast.Paragraph:
			if current != nil {
				prompt = append(prompt, strings.TrimSpace(extractText(node, content)))
			}
		case *ast.List:
			if current == nil {
				continue
			}
			for item := node.FirstChild(); item != nil; item = item.NextSibling() {
				line := strings.TrimSpace(extractText(item, content))
				if err := applyMetadata(current, line); err != nil {
					walkErr = fmt.Errorf("question %s: %w", current.ID, err)
					break
				}
			}
		}
	}
	if walkErr != nil {
		return "", nil, walkErr
	}
	flush()

	return name, questions, nil
}

// applyMetadata applies a "kind: ..." or "show_if: a = Yes, b = No" item.
func applyMetadata(q *models.Question, line string) error {
	matches := metadataRegex.FindStringSubmatch(line)
	if matches == nil {
		return fmt.Errorf("unrecognized metadata %q (expected 'kind: ...' or 'show_if: id = Answer')", line)
	}

	key, value := matches[1], strings.TrimSpace(matches[2])
	switch key {
	case "kind":
		q.Kind = normalizeKind(value)
	case "show_if":
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			cm := conditionRegex.FindStringSubmatch(part)
			if cm == nil {
				return fmt.Errorf("invalid show_if condition %q (expected 'id = Answer')", part)
			}
			q.ShowIf = append(q.ShowIf, models.Condition{
				QuestionID: models.QuestionID(cm[1]),
				Answer:     models.Answer(strings.TrimSpace(cm[2])),
			})
		}
	default:
		return fmt.Errorf("unknown metadata key %q", key)
	}
	return nil
}

// extractText collects the plain text under n. Soft line breaks become
// spaces.
func extractText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				buf.WriteByte(' ')
			}
		}
		return ast.WalkContinue, nil
	})
	return buf.String()
}
