package appsearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaller_GetName(t *testing.T) {
	testCases := []struct {
		caller   Caller
		expected string
	}{
		{
			caller:   Caller{ID: "frontend"},
			expected: "frontend",
		},
		{
			caller:   Caller{ID: "frontend", Attributes: map[string]string{CallerName: "Frontend"}},
			expected: "Frontend",
		},
		{
			caller:   Caller{ID: "frontend", Attributes: map[string]string{CallerName: ""}},
			expected: "frontend",
		},
	}

	for _, testCase := range testCases {
		testCase := testCase

		t.Run("", func(t *testing.T) {
			assert.Equal(t, testCase.expected, testCase.caller.GetName())
		})
	}
}

func TestDocument_ID(t *testing.T) {
	assert.Equal(t, "INscMGmhmX4", Document{"id": "INscMGmhmX4", "url": "http://www.youtube.com/watch?v=v1uyQZNg2vE"}.ID())
	assert.Equal(t, "", Document{"id": 42}.ID())
}

func TestDocumentResults_Err(t *testing.T) {
	assert.NoError(t, DocumentResults{{ID: "INscMGmhmX4"}, {ID: "JNDFojsd02"}}.Err())

	results := DocumentResults{
		{ID: "INscMGmhmX4"},
		{ID: "JNDFojsd02", Errors: []string{"Invalid field type: id must be a string", "Invalid field"}},
	}

	err := results.Err()
	require.Error(t, err)

	assert.Contains(t, err.Error(), `document "JNDFojsd02": Invalid field type: id must be a string; Invalid field`)
	assert.NotContains(t, err.Error(), "INscMGmhmX4")
}

func TestRawValue(t *testing.T) {
	result := map[string]interface{}{
		"id":    map[string]interface{}{"raw": "yellowstone"},
		"title": "Yellowstone",
	}

	value, ok := RawValue(result, "id")
	require.True(t, ok)
	assert.Equal(t, "yellowstone", value)

	_, ok = RawValue(result, "title")
	assert.False(t, ok)

	_, ok = RawValue(result, "missing")
	assert.False(t, ok)
}
