// Package domain contains the core data structures and domain logic for the application.
package domain

import "slices"

// IssueType is the coarse category assigned to an issue.
type IssueType string

const (
	IssueTypeBug      IssueType = "bug"
	IssueTypeFeature  IssueType = "feature"
	IssueTypeQuestion IssueType = "question"
)

// Priority is the urgency assigned to an issue.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Topic is a fixed-vocabulary tag attached to an issue when its trigger term appears in the text.
type Topic string

const (
	TopicTPM            Topic = "TPM"
	TopicSecurity       Topic = "Security"
	TopicAuthentication Topic = "Authentication"
	TopicEncryption     Topic = "Encryption"
	TopicDocker         Topic = "Docker"
	TopicContainer      Topic = "Container"
)

// IssueAnalysis holds the result of classifying a single issue.
// It is the core domain entity of this application and is not modified once built.
type IssueAnalysis struct {
	Type     IssueType `json:"type"`
	Priority Priority  `json:"priority"`
	Topics   []Topic   `json:"topics"`
	Summary  string    `json:"summary"`
}

// HasTopic reports whether the analysis carries the given topic.
func (a IssueAnalysis) HasTopic(topic Topic) bool {
	return slices.Contains(a.Topics, topic)
}
