package parser

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/harrison/prebate/internal/models"
)

// ParseAnswersFile reads a yaml mapping of question id to answer:
//
//	lives_in_ireland: "Yes"
//	property_registered: Not sure
//
// Values are matched like typed input, ignoring case: yes, No, y, unsure
// and "not sure" are all accepted. They are not checked against a question
// set; see ValidateAnswers.
func ParseAnswersFile(path string) (models.AnswerSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read answers file: %w", err)
	}
	return ParseAnswers(data)
}

// ParseAnswers decodes a yaml answer mapping.
func ParseAnswers(data []byte) (models.AnswerSet, error) {
	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse answers YAML: %w", err)
	}

	answers := make(models.AnswerSet, len(raw))
	for id, value := range raw {
		answer, ok := models.ParseAnswerToken(value)
		if !ok {
			return nil, fmt.Errorf("answer for %s: unknown answer %q (expected Yes, No or Not sure)", id, value)
		}
		answers[models.QuestionID(strings.TrimSpace(id))] = answer
	}
	return answers, nil
}

// ValidateAnswers checks that every answer belongs to a question in set and
// is allowed by that question's kind. Issues are reported in id order.
func ValidateAnswers(set *models.QuestionSet, answers models.AnswerSet) error {
	ids := make([]string, 0, len(answers))
	for id := range answers {
		ids = append(ids, string(id))
	}
	sort.Strings(ids)

	var issues []string
	for _, raw := range ids {
		id := models.QuestionID(raw)
		q, ok := set.Lookup(id)
		if !ok {
			issues = append(issues, fmt.Sprintf("unknown question id %q", raw))
			continue
		}
		if a := answers[id]; a != models.Unanswered && !q.Allows(a) {
			issues = append(issues, fmt.Sprintf("%s: %q not allowed (expected %s)", raw, string(a), formatOptions(q.Options())))
		}
	}

	if len(issues) > 0 {
		return fmt.Errorf("invalid answers: %s", strings.Join(issues, "; "))
	}
	return nil
}
