package parser

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/harrison/prebate/internal/models"
)

// YAMLParser parses question sets in YAML format:
//
//	name: Estate readiness
//	questions:
//	  - id: co_owned
//	    prompt: Do you co-own property with someone else?
//	  - id: joint_tenants
//	    prompt: If co-owned, is it owned as joint tenants?
//	    kind: binary
//	    show_if:
//	      co_owned: "Yes"
type YAMLParser struct{}

// NewYAMLParser creates a new YAMLParser
func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

type yamlQuestionSet struct {
	Name      string         `yaml:"name"`
	Questions []yamlQuestion `yaml:"questions"`
}

type yamlQuestion struct {
	ID     string    `yaml:"id"`
	Prompt string    `yaml:"prompt"`
	Kind   string    `yaml:"kind"`
	ShowIf yaml.Node `yaml:"show_if"`
}

// Parse implements Parser
func (p *YAMLParser) Parse(r io.Reader) (string, []models.Question, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read content: %w", err)
	}

	var doc yamlQuestionSet
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return "", nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	questions := make([]models.Question, 0, len(doc.Questions))
	for i, yq := range doc.Questions {
		conds, err := conditionsFromNode(&yq.ShowIf)
		if err != nil {
			return "", nil, fmt.Errorf("question %d (%s): %w", i+1, yq.ID, err)
		}
		questions = append(questions, models.Question{
			ID:     models.QuestionID(strings.TrimSpace(yq.ID)),
			Prompt: strings.TrimSpace(yq.Prompt),
			Kind:   normalizeKind(yq.Kind),
			ShowIf: conds,
		})
	}

	return strings.TrimSpace(doc.Name), questions, nil
}

// conditionsFromNode reads a show_if mapping, keeping document order.
func conditionsFromNode(node *yaml.Node) ([]models.Condition, error) {
	if node.Kind == 0 {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("show_if must be a mapping of question id to answer (line %d)", node.Line)
	}

	conds := make([]models.Condition, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("show_if %s: answer must be a scalar (line %d)", key.Value, value.Line)
		}
		conds = append(conds, models.Condition{
			QuestionID: models.QuestionID(strings.TrimSpace(key.Value)),
			Answer:     models.Answer(strings.TrimSpace(value.Value)),
		})
	}
	return conds, nil
}

// normalizeKind lowercases the kind and applies the binary default.
// Short aliases yn/ynm are accepted.
func normalizeKind(kind string) models.AnswerKind {
	switch k := strings.ToLower(strings.TrimSpace(kind)); k {
	case "", "yn", "yes_no":
		return models.KindBinary
	case "ynm", "yes_unsure_no":
		return models.KindTernary
	default:
		return models.AnswerKind(k)
	}
}
