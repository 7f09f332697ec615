package analyzer

import (
	"time"

	"github.com/eladmint/whatsapp-analyzer/pkg/models"
)

const (
	quickResponseWindow  = time.Minute
	initiationGap        = time.Hour
	longMessageThreshold = 200
	maxStyleExamples     = 3
)

// CommunicationStyle walks the full message sequence once and summarises how
// the given participant responds, initiates and writes.
//
// A message counts as a response when the immediately preceding message came
// from another sender; the gap feeds the response-time average, and gaps
// under a minute are recorded as quick-response examples. A message starts a
// conversation when it is the first of the sequence or follows more than an
// hour of silence. Messages over 200 characters are long-message examples.
func CommunicationStyle(msgs []models.Message, sender string) models.CommunicationStyle {
	var (
		totalChars    int
		totalMessages int
		responseSum   time.Duration
		responseCount int
		initiations   int
		examples      models.StyleExamples
	)

	for i, m := range msgs {
		if m.Sender != sender {
			continue
		}
		totalMessages++
		totalChars += len(m.Content)

		if i > 0 {
			gap := m.Timestamp.Sub(msgs[i-1].Timestamp)
			if msgs[i-1].Sender != sender {
				responseSum += gap
				responseCount++
				if gap < quickResponseWindow && len(examples.QuickResponses) < maxStyleExamples {
					examples.QuickResponses = append(examples.QuickResponses, m)
				}
			}
			if gap > initiationGap {
				initiations++
				if len(examples.TopicStarters) < maxStyleExamples {
					examples.TopicStarters = append(examples.TopicStarters, m)
				}
			}
		} else {
			initiations++
			if len(examples.TopicStarters) < maxStyleExamples {
				examples.TopicStarters = append(examples.TopicStarters, m)
			}
		}

		if len(m.Content) > longMessageThreshold && len(examples.LongMessages) < maxStyleExamples {
			examples.LongMessages = append(examples.LongMessages, m)
		}
	}

	var avg time.Duration
	if responseCount > 0 {
		avg = responseSum / time.Duration(responseCount)
	}
	return models.CommunicationStyle{
		AverageResponseTime:    avg,
		MessageLength:          float64(totalChars) / float64(max(totalMessages, 1)),
		InitiatesConversations: initiations,
		Examples:               examples,
	}
}
