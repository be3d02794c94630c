package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/naka-gawa/tpm-agent/internal/domain"
)

func TestRender(t *testing.T) {
	testCases := []struct {
		name            string
		analysis        domain.IssueAnalysis
		contains        []string
		notContains     []string
		expectedSnippet string
	}{
		{
			name: "bug with TPM and Docker",
			analysis: domain.IssueAnalysis{
				Type:     domain.IssueTypeBug,
				Priority: domain.PriorityHigh,
				Topics:   []domain.Topic{domain.TopicTPM, domain.TopicDocker},
			},
			contains: []string{
				"- **Type**: bug\n",
				"- **Priority**: high\n",
				"- **Topics**: TPM, Docker\n",
				"This appears to be a bug report. The development team will:\n",
				"4. Provide a fix or workaround\n",
				tpmChecklist,
				dockerChecklist,
			},
			expectedSnippet: tpmChecklist + dockerChecklist + "---\n",
		},
		{
			name: "feature without topics",
			analysis: domain.IssueAnalysis{
				Type:     domain.IssueTypeFeature,
				Priority: domain.PriorityMedium,
				Topics:   []domain.Topic{},
			},
			contains: []string{
				"- **Type**: feature\n",
				"This appears to be a feature request. The team will:\n",
				"3. Consider adding it to the roadmap\n",
			},
			notContains:     []string{"**Topics**", tpmChecklist, dockerChecklist},
			expectedSnippet: "## Additional Information\n\n---\n",
		},
		{
			name: "question with Docker only",
			analysis: domain.IssueAnalysis{
				Type:     domain.IssueTypeQuestion,
				Priority: domain.PriorityLow,
				Topics:   []domain.Topic{domain.TopicDocker, domain.TopicContainer},
			},
			contains: []string{
				"- **Topics**: Docker, Container\n",
				"This appears to be a question or general issue. The team will:\n",
				"3. Update documentation if needed\n",
				dockerChecklist,
			},
			notContains:     []string{tpmChecklist},
			expectedSnippet: "## Additional Information\n\n" + dockerChecklist + "---\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			comment := Render(tc.analysis, "original text")

			assert.True(t, strings.HasPrefix(comment, commentHeader+"## Analysis Results\n\n"))
			assert.True(t, strings.HasSuffix(comment, "---\n"+Attribution))
			for _, s := range tc.contains {
				assert.Contains(t, comment, s)
			}
			for _, s := range tc.notContains {
				assert.NotContains(t, comment, s)
			}
			assert.Contains(t, comment, tc.expectedSnippet)
		})
	}
}

func TestRender_SectionOrder(t *testing.T) {
	comment := Render(Classify("Critical bug: authentication fails with TPM module"), "")

	results := strings.Index(comment, "## Analysis Results")
	steps := strings.Index(comment, "## Next Steps")
	info := strings.Index(comment, "## Additional Information")
	trailer := strings.Index(comment, Attribution)

	assert.True(t, results < steps && steps < info && info < trailer)
}
