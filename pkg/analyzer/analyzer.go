// Package analyzer computes descriptive statistics over a parsed transcript:
// activity histograms, per-participant emotional and communication metrics,
// word frequencies, special-term mining and image-share batch detection.
//
// Every analyzer is a pure function over the immutable message sequence, so
// the aggregator runs them concurrently; nothing here ever mutates the input
// or another analyzer's output.
package analyzer

import (
	"sync"

	"github.com/eladmint/whatsapp-analyzer/pkg/models"
)

// Analyze merges every analyzer's output into one immutable ChatStats
// snapshot. A new transcript upload is always a full fresh computation;
// prior snapshots are never updated in place.
func Analyze(msgs []models.Message) models.ChatStats {
	stats := models.ChatStats{
		TotalMessages:       len(msgs),
		MessagesPerPerson:   make(map[string]int),
		MostActiveHours:     make(map[int]int),
		EmotionalMetrics:    make(map[string]models.EmotionalMetrics),
		CommunicationStyles: make(map[string]models.CommunicationStyle),
		CommonWords:         []models.WordCloudEntry{},
		SpecialLingo:        []models.SpecialTerm{},
	}

	totalChars := 0
	days := make(map[string]struct{})
	for _, m := range msgs {
		stats.MessagesPerPerson[m.Sender]++
		stats.MostActiveHours[m.Timestamp.Hour()]++
		totalChars += len(m.Content)
		days[m.Timestamp.Format("2006-01-02")] = struct{}{}
	}
	stats.AverageMessageLength = float64(totalChars) / float64(max(len(msgs), 1))
	stats.DailyAverage = float64(len(msgs)) / float64(max(len(days), 1))

	participants := models.Participants(msgs)

	// The sequence analyzers are independent of each other; run them and the
	// per-participant folds in parallel over the same fully parsed slice.
	var wg sync.WaitGroup

	emotions := make([]models.EmotionalMetrics, len(participants))
	styles := make([]models.CommunicationStyle, len(participants))
	for i, p := range participants {
		wg.Add(1)
		go func(i int, p string) {
			defer wg.Done()
			emotions[i] = EmotionalMetrics(msgs, p)
			styles[i] = CommunicationStyle(msgs, p)
		}(i, p)
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		stats.CommonWords = WordCloud(msgs)
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		stats.SpecialLingo = SpecialLingo(msgs)
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		stats.ImageAnalytics = ImageAnalytics(msgs)
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		stats.MessageDistribution = MessageDistribution(msgs)
		stats.RelationshipDynamics = models.RelationshipDynamics{
			ConversationBalance: ConversationBalance(msgs),
		}
	}()
	wg.Wait()

	for i, p := range participants {
		stats.EmotionalMetrics[p] = emotions[i]
		stats.CommunicationStyles[p] = styles[i]
	}
	return stats
}
