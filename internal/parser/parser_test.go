package parser

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/prebate/internal/models"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"questions.yaml", FormatYAML},
		{"questions.yml", FormatYAML},
		{"QUESTIONS.YAML", FormatYAML},
		{"questions.md", FormatMarkdown},
		{"questions.markdown", FormatMarkdown},
		{"questions.json", FormatUnknown},
		{"questions", FormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := DetectFormat(tt.filename); got != tt.want {
				t.Errorf("DetectFormat(%q) = %v, want %v", tt.filename, got, tt.want)
			}
		})
	}
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "yaml", FormatYAML.String())
	assert.Equal(t, "markdown", FormatMarkdown.String())
	assert.Equal(t, "unknown", FormatUnknown.String())
}

func TestNewParser_Unsupported(t *testing.T) {
	_, err := NewParser(FormatUnknown)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestDefault(t *testing.T) {
	set, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "Estate Readiness", set.Name)
	assert.Empty(t, set.FilePath)
	require.Equal(t, len(models.KnownQuestionIDs), set.Len())

	for i, id := range models.KnownQuestionIDs {
		assert.Equal(t, id, set.At(i).ID, "question %d", i)
	}

	registered, ok := set.Lookup(models.PropertyRegistered)
	require.True(t, ok)
	assert.Equal(t, models.KindTernary, registered.Kind)

	conditional := map[models.QuestionID]models.Condition{
		models.JointTenants:       {QuestionID: models.CoOwned, Answer: models.Yes},
		models.CaregiverOfficial:  {QuestionID: models.CaregiverAccess, Answer: models.Yes},
		models.LifeBeneficiary:    {QuestionID: models.LifeInsurance, Answer: models.Yes},
		models.PensionBeneficiary: {QuestionID: models.Pension, Answer: models.Yes},
		models.WillRecent:         {QuestionID: models.HasWill, Answer: models.Yes},
	}
	for _, q := range set.Questions {
		want, ok := conditional[q.ID]
		if !ok {
			assert.False(t, q.IsConditional(), "%s should be unconditional", q.ID)
			continue
		}
		assert.Equal(t, []models.Condition{want}, q.ShowIf, "%s show_if", q.ID)
	}
}

func TestParseFile(t *testing.T) {
	for _, name := range []string{"valid.yaml", "valid.md"} {
		t.Run(name, func(t *testing.T) {
			set, err := ParseFile(filepath.Join("testdata", name))
			require.NoError(t, err)

			assert.Equal(t, "Property only", set.Name)
			assert.True(t, filepath.IsAbs(set.FilePath))
			require.Equal(t, 3, set.Len())

			assert.Equal(t, models.CoOwned, set.At(0).ID)
			assert.Equal(t, models.KindBinary, set.At(0).Kind)
			assert.Equal(t, "Do you co-own property with someone else?", set.At(0).Prompt)

			assert.Equal(t, models.JointTenants, set.At(1).ID)
			assert.Equal(t, []models.Condition{{QuestionID: models.CoOwned, Answer: models.Yes}}, set.At(1).ShowIf)

			assert.Equal(t, models.PropertyRegistered, set.At(2).ID)
			assert.Equal(t, models.KindTernary, set.At(2).Kind)
			assert.Equal(t, "Is your property registered with the Land Registry?", set.At(2).Prompt)
		})
	}
}

func TestParseFile_Errors(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		wantErr   string
		malformed bool
	}{
		{"unknown extension", "testdata/questions.json", "unknown file format", false},
		{"missing file", "testdata/missing.yaml", "failed to open file", false},
		{"bad yaml", "testdata/malformed.yaml", "failed to parse YAML", false},
		{"invalid set", "testdata/invalid.yaml", "4 issues", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFile(tt.path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Equal(t, tt.malformed, errors.Is(err, ErrMalformedQuestionSet))
		})
	}
}

func TestLoad(t *testing.T) {
	set, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, len(models.KnownQuestionIDs), set.Len())

	set, err = Load("testdata/valid.yaml")
	require.NoError(t, err)
	assert.Equal(t, 3, set.Len())
}

func TestYAMLParser_ShowIfOrder(t *testing.T) {
	input := `
questions:
  - id: has_will
    prompt: Will?
  - id: life_insurance
    prompt: Life?
  - id: will_recent
    prompt: Recent?
    kind: yn
    show_if:
      life_insurance: "No"
      has_will: "Yes"
`
	_, questions, err := NewYAMLParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, questions, 3)

	assert.Equal(t, []models.Condition{
		{QuestionID: models.LifeInsurance, Answer: models.No},
		{QuestionID: models.HasWill, Answer: models.Yes},
	}, questions[2].ShowIf)
	assert.Equal(t, models.KindBinary, questions[2].Kind)
}

func TestYAMLParser_ShowIfNotMapping(t *testing.T) {
	input := `
questions:
  - id: will_recent
    prompt: Recent?
    show_if: [has_will]
`
	_, _, err := NewYAMLParser().Parse(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "show_if must be a mapping")
}

func TestNormalizeKind(t *testing.T) {
	tests := []struct {
		in   string
		want models.AnswerKind
	}{
		{"", models.KindBinary},
		{"yn", models.KindBinary},
		{"Binary", models.KindBinary},
		{"ynm", models.KindTernary},
		{" TERNARY ", models.KindTernary},
		{"multiple", models.AnswerKind("multiple")},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeKind(tt.in), "normalizeKind(%q)", tt.in)
	}
}

func TestMarkdownParser_Metadata(t *testing.T) {
	input := `# Wills

## has_will

Do you have a valid will?

## life_insurance

Do you have life insurance?

## will_recent

Was your will updated within the last 3 years?

- kind: binary
- show_if: has_will = Yes, life_insurance = No
`
	name, questions, err := NewMarkdownParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, "Wills", name)
	require.Len(t, questions, 3)
	assert.Equal(t, []models.Condition{
		{QuestionID: models.HasWill, Answer: models.Yes},
		{QuestionID: models.LifeInsurance, Answer: models.No},
	}, questions[2].ShowIf)
}

func TestMarkdownParser_BadMetadata(t *testing.T) {
	tests := []struct {
		name    string
		item    string
		wantErr string
	}{
		{"unknown key", "- weight: 3", "unknown metadata key"},
		{"not key value", "- just a note", "unrecognized metadata"},
		{"bad condition", "- show_if: has_will", "invalid show_if condition"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := "## has_will\n\nDo you have a valid will?\n\n" + tt.item + "\n"
			_, _, err := NewMarkdownParser().Parse(strings.NewReader(input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Contains(t, err.Error(), "question has_will")
		})
	}
}
