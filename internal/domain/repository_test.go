package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRepository(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		expected    Repository
		expectError bool
	}{
		{
			name:     "happy path - owner and name",
			input:    "acme/widgets",
			expected: Repository{Owner: "acme", Name: "widgets"},
		},
		{name: "error case - empty string", input: "", expectError: true},
		{name: "error case - no separator", input: "only-one-part", expectError: true},
		{name: "error case - empty name", input: "acme/", expectError: true},
		{name: "error case - empty owner", input: "/widgets", expectError: true},
		{name: "error case - too many separators", input: "acme/widgets/extra", expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, err := ParseRepository(tc.input)
			if tc.expectError {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidRepositoryFormat)
				assert.Equal(t, Repository{}, repo)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, repo)
			assert.Equal(t, tc.input, repo.String())
		})
	}
}

func TestIssueAnalysis_HasTopic(t *testing.T) {
	analysis := IssueAnalysis{Topics: []Topic{TopicTPM, TopicDocker}}

	assert.True(t, analysis.HasTopic(TopicTPM))
	assert.True(t, analysis.HasTopic(TopicDocker))
	assert.False(t, analysis.HasTopic(TopicSecurity))
	assert.False(t, IssueAnalysis{}.HasTopic(TopicTPM))
}
