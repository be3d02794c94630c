package usecase

import (
	"fmt"
	"strings"

	"github.com/naka-gawa/tpm-agent/internal/domain"
)

// Attribution is the trailer closing every generated comment.
const Attribution = "*This response was generated automatically by the TPM Agent.*"

const commentHeader = "Thank you for this issue! I've analyzed it automatically.\n\n"

var nextSteps = map[domain.IssueType]string{
	domain.IssueTypeBug: "This appears to be a bug report. The development team will:\n" +
		"1. Review the issue details\n" +
		"2. Reproduce the issue if possible\n" +
		"3. Investigate the root cause\n" +
		"4. Provide a fix or workaround\n",
	domain.IssueTypeFeature: "This appears to be a feature request. The team will:\n" +
		"1. Evaluate the request against project goals\n" +
		"2. Assess implementation complexity\n" +
		"3. Consider adding it to the roadmap\n" +
		"4. Provide feedback on feasibility\n",
}

const defaultNextSteps = "This appears to be a question or general issue. The team will:\n" +
	"1. Review the details provided\n" +
	"2. Provide clarification or guidance\n" +
	"3. Update documentation if needed\n"

const tpmChecklist = "Since this relates to TPM functionality, please ensure you have:\n" +
	"- TPM hardware or software available\n" +
	"- Proper permissions for TPM operations\n" +
	"- Latest version of the TPM Agent\n\n"

const dockerChecklist = "For Docker-related issues, please provide:\n" +
	"- Docker version information\n" +
	"- Container logs if applicable\n" +
	"- Environment details\n\n"

// Render builds the Markdown comment posted in reply to an analyzed issue.
// originalText is accepted for parity with the analysis step; all output is
// derived from the analysis itself.
func Render(analysis domain.IssueAnalysis, originalText string) string {
	var b strings.Builder

	b.WriteString(commentHeader)

	b.WriteString("## Analysis Results\n\n")
	fmt.Fprintf(&b, "- **Type**: %s\n", analysis.Type)
	fmt.Fprintf(&b, "- **Priority**: %s\n", analysis.Priority)
	if len(analysis.Topics) > 0 {
		fmt.Fprintf(&b, "- **Topics**: %s\n", joinTopics(analysis.Topics))
	}

	b.WriteString("\n## Next Steps\n\n")
	if steps, ok := nextSteps[analysis.Type]; ok {
		b.WriteString(steps)
	} else {
		b.WriteString(defaultNextSteps)
	}

	b.WriteString("\n## Additional Information\n\n")
	if analysis.HasTopic(domain.TopicTPM) {
		b.WriteString(tpmChecklist)
	}
	if analysis.HasTopic(domain.TopicDocker) {
		b.WriteString(dockerChecklist)
	}

	b.WriteString("---\n")
	b.WriteString(Attribution)

	return b.String()
}

func joinTopics(topics []domain.Topic) string {
	names := make([]string, len(topics))
	for i, topic := range topics {
		names[i] = string(topic)
	}
	return strings.Join(names, ", ")
}
