package usecase

import (
	"strings"
	"unicode/utf8"

	"github.com/naka-gawa/tpm-agent/internal/domain"
)

// summaryLength is the number of characters kept from the issue text.
const summaryLength = 100

// Rules are checked top to bottom and the first match wins, so "bug" beats "feature".
var typeRules = []struct {
	issueType domain.IssueType
	keywords  []string
}{
	{domain.IssueTypeBug, []string{"bug", "error", "issue"}},
	{domain.IssueTypeFeature, []string{"feature", "enhancement", "request"}},
}

var priorityRules = []struct {
	priority domain.Priority
	keywords []string
}{
	{domain.PriorityHigh, []string{"urgent", "critical", "high"}},
	{domain.PriorityLow, []string{"low", "minor"}},
}

// topicVocabulary also fixes the order topics are reported in.
var topicVocabulary = []struct {
	term  string
	topic domain.Topic
}{
	{"tpm", domain.TopicTPM},
	{"security", domain.TopicSecurity},
	{"authentication", domain.TopicAuthentication},
	{"encryption", domain.TopicEncryption},
	{"docker", domain.TopicDocker},
	{"container", domain.TopicContainer},
}

// Classify derives an IssueAnalysis from raw issue text using case-insensitive
// substring matching. It is defined for every input, including the empty string.
func Classify(text string) domain.IssueAnalysis {
	content := strings.ToLower(text)

	analysis := domain.IssueAnalysis{
		Type:     domain.IssueTypeQuestion,
		Priority: domain.PriorityMedium,
		Topics:   []domain.Topic{},
		Summary:  summarize(text),
	}

	for _, rule := range typeRules {
		if containsAny(content, rule.keywords) {
			analysis.Type = rule.issueType
			break
		}
	}
	for _, rule := range priorityRules {
		if containsAny(content, rule.keywords) {
			analysis.Priority = rule.priority
			break
		}
	}
	for _, entry := range topicVocabulary {
		if strings.Contains(content, entry.term) {
			analysis.Topics = append(analysis.Topics, entry.topic)
		}
	}

	return analysis
}

func containsAny(content string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(content, keyword) {
			return true
		}
	}
	return false
}

// summarize counts characters as runes so multi-byte text is never cut mid-character.
func summarize(text string) string {
	if utf8.RuneCountInString(text) <= summaryLength {
		return text
	}
	runes := []rune(text)
	return string(runes[:summaryLength]) + "..."
}
