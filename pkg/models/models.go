package models

import "time"

// Message is a single parsed transcript line. Messages are immutable once
// parsed; every analyzer receives the same slice and never modifies it.
type Message struct {
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// EmotionalExamples holds up to three sample messages per emotion category,
// in first-encountered order.
type EmotionalExamples struct {
	Positive   []Message `json:"positive"`
	Negative   []Message `json:"negative"`
	Humor      []Message `json:"humor"`
	Vulnerable []Message `json:"vulnerable"`
}

// EmotionalMetrics are normalized per-participant tone ratios. All ratios are
// divided by max(messageCount, 1) so a silent participant yields zeros, never
// NaN.
type EmotionalMetrics struct {
	Expressiveness float64           `json:"expressiveness"`
	Positivity     float64           `json:"positivity"`
	Humor          float64           `json:"humor"`
	Vulnerability  float64           `json:"vulnerability"`
	Examples       EmotionalExamples `json:"examples"`
}

// StyleExamples holds up to three sample messages per style category.
type StyleExamples struct {
	LongMessages   []Message `json:"longMessages"`
	QuickResponses []Message `json:"quickResponses"`
	TopicStarters  []Message `json:"topicStarters"`
}

// CommunicationStyle summarises how one participant behaves in the thread.
type CommunicationStyle struct {
	AverageResponseTime    time.Duration `json:"averageResponseTime"`
	MessageLength          float64       `json:"messageLength"`
	InitiatesConversations int           `json:"initiatesConversations"`
	Examples               StyleExamples `json:"examples"`
}

// SpecialTerm is a token whose usage pattern suggests idiomatic or shared
// meaning: a nickname, an inside joke, a place both keep mentioning.
type SpecialTerm struct {
	Term      string    `json:"term"`
	Meaning   string    `json:"meaning"`
	Users     []string  `json:"users"`
	Frequency int       `json:"frequency"`
	Examples  []Message `json:"examples"`
}

// WordCloudEntry is one word-frequency pair for the cloud display.
type WordCloudEntry struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

// ImageBatch is a run of same-sender image shares, each within five minutes
// of the batch start.
type ImageBatch struct {
	Sender    string    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
	Count     int       `json:"count"`
}

// ImageInsights are the headline numbers derived from image batches.
type ImageInsights struct {
	MostActiveSharer string     `json:"mostActiveImageSharer"`
	PeakHour         string     `json:"peakImageSharingTime"`
	AverageBatchSize float64    `json:"averageBatchSize"`
	LargestBatch     ImageBatch `json:"largestImageBatch"`
}

// ImageAnalytics describes image-sharing behaviour across the chat.
type ImageAnalytics struct {
	TotalImages        int            `json:"totalImages"`
	TimeDistribution   map[int]int    `json:"timeDistribution"`
	SenderDistribution map[string]int `json:"senderDistribution"`
	BatchSizes         []int          `json:"batchSizes"`
	ConsecutiveShares  []ImageBatch   `json:"consecutiveShares"`
	Insights           ImageInsights  `json:"insights"`
}

// MessageDistribution buckets messages by hour of day, weekday name and
// month name.
type MessageDistribution struct {
	Hourly  map[int]int    `json:"hourly"`
	Daily   map[string]int `json:"daily"`
	Monthly map[string]int `json:"monthly"`
}

// RelationshipDynamics carries the conversation-balance score. The score sits
// near 1.0 for an evenly split two-person chat and approaches 0 as one side
// dominates.
type RelationshipDynamics struct {
	ConversationBalance float64 `json:"conversationBalance"`
}

// AIAnalysis is the typed result of the text-generation collaborator. A
// failed call yields Success=false and a reason; it never invalidates the
// locally computed stats.
type AIAnalysis struct {
	Content *string `json:"content"`
	Success bool    `json:"success"`
	Error   string  `json:"error,omitempty"`
}

// ChatStats is the aggregate root for one analysis run. It is built once per
// uploaded transcript and never mutated afterwards; a new upload is a full
// fresh computation.
type ChatStats struct {
	TotalMessages        int                           `json:"totalMessages"`
	MessagesPerPerson    map[string]int                `json:"messagesPerPerson"`
	AverageMessageLength float64                       `json:"averageMessageLength"`
	DailyAverage         float64                       `json:"dailyAverage"`
	MostActiveHours      map[int]int                   `json:"mostActiveHours"`
	MessageDistribution  MessageDistribution           `json:"messageDistribution"`
	CommonWords          []WordCloudEntry              `json:"commonWords"`
	EmotionalMetrics     map[string]EmotionalMetrics   `json:"emotionalMetrics"`
	CommunicationStyles  map[string]CommunicationStyle `json:"communicationStyles"`
	RelationshipDynamics RelationshipDynamics          `json:"relationshipDynamics"`
	SpecialLingo         []SpecialTerm                 `json:"specialLingo"`
	ImageAnalytics       ImageAnalytics                `json:"imageAnalytics"`
	AIAnalysis           *AIAnalysis                   `json:"aiAnalysis,omitempty"`
}

// Participants returns the distinct senders in first-seen order.
func Participants(msgs []Message) []string {
	seen := make(map[string]struct{}, 4)
	var out []string
	for _, m := range msgs {
		if _, ok := seen[m.Sender]; ok {
			continue
		}
		seen[m.Sender] = struct{}{}
		out = append(out, m.Sender)
	}
	return out
}
