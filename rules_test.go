package promptaudit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/promptaudit"
)

func TestRules_CatalogShape(t *testing.T) {
	t.Parallel()

	rules := promptaudit.Rules()
	require.Len(t, rules, promptaudit.RuleCount)

	names := make(map[string]bool, len(rules))
	for i, rule := range rules {
		assert.Equal(t, i+1, rule.ID, "rules must be ordered by ID")
		assert.NotEmpty(t, rule.Name)
		assert.NotEmpty(t, rule.Description)
		assert.False(t, names[rule.Name], "rule names must be unique")
		names[rule.Name] = true
	}
}

func TestRules_ReturnsCopy(t *testing.T) {
	t.Parallel()

	rules := promptaudit.Rules()
	rules[0].Name = "mutated"

	assert.Equal(t, "Clear and Direct", promptaudit.Rules()[0].Name)
}

func TestRuleByID(t *testing.T) {
	t.Parallel()

	rule, ok := promptaudit.RuleByID(2)
	require.True(t, ok)
	assert.Equal(t, "Persona/Role", rule.Name)

	_, ok = promptaudit.RuleByID(0)
	assert.False(t, ok)
	_, ok = promptaudit.RuleByID(11)
	assert.False(t, ok)
}
