package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/prebate/internal/models"
)

func q(id models.QuestionID, kind models.AnswerKind, showIf ...models.Condition) models.Question {
	return models.Question{ID: id, Prompt: "Prompt for " + string(id), Kind: kind, ShowIf: showIf}
}

func when(id models.QuestionID, a models.Answer) models.Condition {
	return models.Condition{QuestionID: id, Answer: a}
}

func TestValidateQuestions(t *testing.T) {
	tests := []struct {
		name      string
		questions []models.Question
		wantIssue string
	}{
		{
			name:      "empty set",
			questions: nil,
			wantIssue: "no questions",
		},
		{
			name:      "missing id",
			questions: []models.Question{{Prompt: "x", Kind: models.KindBinary}},
			wantIssue: "question id is required",
		},
		{
			name:      "unknown id",
			questions: []models.Question{q("favourite_colour", models.KindBinary)},
			wantIssue: `unknown question id "favourite_colour"`,
		},
		{
			name:      "empty prompt",
			questions: []models.Question{{ID: models.HasWill, Kind: models.KindBinary}},
			wantIssue: "prompt is required",
		},
		{
			name:      "bad kind",
			questions: []models.Question{q(models.HasWill, "multiple")},
			wantIssue: "invalid kind",
		},
		{
			name: "duplicate id",
			questions: []models.Question{
				q(models.HasWill, models.KindBinary),
				q(models.HasWill, models.KindBinary),
			},
			wantIssue: "question 2 (has_will): duplicate question id",
		},
		{
			name: "forward reference",
			questions: []models.Question{
				q(models.WillRecent, models.KindBinary, when(models.HasWill, models.Yes)),
				q(models.HasWill, models.KindBinary),
			},
			wantIssue: "not defined earlier",
		},
		{
			name: "self reference",
			questions: []models.Question{
				q(models.HasWill, models.KindBinary, when(models.HasWill, models.Yes)),
			},
			wantIssue: "references itself",
		},
		{
			name: "answer not allowed by referenced kind",
			questions: []models.Question{
				q(models.HasWill, models.KindBinary),
				q(models.WillRecent, models.KindBinary, when(models.HasWill, models.NotSure)),
			},
			wantIssue: `requires has_will = "Not sure" but has_will only accepts Yes/No`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateQuestions(tt.questions)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedQuestionSet))

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			require.Len(t, verr.Issues, 1, "issues: %v", verr.Issues)
			assert.Contains(t, verr.Issues[0], tt.wantIssue)
		})
	}
}

func TestValidateQuestions_CollectsAllIssues(t *testing.T) {
	err := ValidateQuestions([]models.Question{
		q("nope", models.KindBinary),
		q(models.HasWill, "maybe"),
		q(models.WillRecent, models.KindBinary, when(models.Pension, models.Yes)),
	})

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Issues, 3)
	assert.Contains(t, err.Error(), "3 issues")
}

func TestValidateQuestions_Valid(t *testing.T) {
	err := ValidateQuestions([]models.Question{
		q(models.PropertyRegistered, models.KindTernary),
		q(models.CoOwned, models.KindBinary),
		q(models.JointTenants, models.KindBinary,
			when(models.CoOwned, models.Yes),
			when(models.PropertyRegistered, models.NotSure)),
	})
	assert.NoError(t, err)
}

func TestValidationError_Format(t *testing.T) {
	one := &ValidationError{Issues: []string{"question set has no questions"}}
	assert.Equal(t, "malformed question set: question set has no questions", one.Error())

	two := &ValidationError{Issues: []string{"a", "b"}}
	assert.Equal(t, "malformed question set: 2 issues: a; b", two.Error())
}
