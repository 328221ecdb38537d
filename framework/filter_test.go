package framework

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegexFiltersWithNoPatternsMatchEverything(t *testing.T) {
	var filters RegexFilters
	assert.True(t, filters.AsFilter("any/test"))
}

func TestRegexFiltersMustMatch(t *testing.T) {
	var filters RegexFilters
	require.NoError(t, filters.MustMatch.Set("^suite-a/"))

	assert.True(t, filters.AsFilter("suite-a/test"))
	assert.False(t, filters.AsFilter("suite-b/test"))
}

func TestRegexFiltersMustNotMatch(t *testing.T) {
	var filters RegexFilters
	require.NoError(t, filters.MustNotMatch.Set("slow"))

	assert.True(t, filters.AsFilter("suite/fast-test"))
	assert.False(t, filters.AsFilter("suite/slow-test"))
}

func TestRegexFiltersCombineRunAndSkip(t *testing.T) {
	var filters RegexFilters
	require.NoError(t, filters.MustMatch.Set("^suite/"))
	require.NoError(t, filters.MustNotMatch.Set("flaky"))

	assert.True(t, filters.AsFilter("suite/stable"))
	assert.False(t, filters.AsFilter("suite/flaky"))
	assert.False(t, filters.AsFilter("other/stable"))
}

func TestRegexListSetRejectsInvalidPattern(t *testing.T) {
	var list RegexList
	err := list.Set("(unclosed")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid regex")
	assert.False(t, list.IsDefined())
}

func TestRegexListString(t *testing.T) {
	var list RegexList
	require.NoError(t, list.Set("a"))
	require.NoError(t, list.Set("b"))
	assert.Equal(t, `"a" or "b"`, list.String())
}
