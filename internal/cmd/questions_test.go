package cmd

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/prebate/internal/models"
)

func TestQuestionsCommand_Default(t *testing.T) {
	out, _, err := execute(t, "", "questions")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "Estate Readiness: 29 questions\n"))
	assert.Contains(t, out, "lives_in_ireland")
	assert.Contains(t, out, "co_owned = Yes")
	assert.Contains(t, out, "ternary")
	assert.NotContains(t, out, "Do you currently live in Ireland?")
}

func TestQuestionsCommand_File(t *testing.T) {
	out, _, err := execute(t, "", "questions", "-v", "--questions", filepath.Join("testdata", "property.yaml"))
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	var row []string
	for _, l := range lines {
		if strings.Contains(l, "joint_tenants") {
			row = strings.Fields(l)
		}
	}
	assert.Equal(t, []string{"2", "joint_tenants", "binary", "co_owned", "=", "Yes"}, row)
	assert.Contains(t, out, "Property only: 3 questions")
	assert.Contains(t, out, "If co-owned, is it owned as joint tenants?")
}

func TestFormatConditions(t *testing.T) {
	assert.Equal(t, "always", formatConditions(nil))
	assert.Equal(t, "has_will = Yes and pension = No", formatConditions([]models.Condition{
		{QuestionID: models.HasWill, Answer: models.Yes},
		{QuestionID: models.Pension, Answer: models.No},
	}))
}
