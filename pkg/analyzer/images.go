package analyzer

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/eladmint/whatsapp-analyzer/pkg/lexicon"
	"github.com/eladmint/whatsapp-analyzer/pkg/models"
)

const (
	batchWindow         = 5 * time.Minute
	consecutiveShareTop = 5
)

// ImageAnalytics detects image-share batches and their surrounding
// distribution. Image messages are those containing the media-omitted marker
// or the word "image" (case-insensitive). A batch extends while the sender
// stays the same and the message lands within five minutes of the batch's
// start time; the window is measured from batch start, it does not slide.
// Only batches with more than one message are recorded; the final batch is
// flushed at end of input.
func ImageAnalytics(msgs []models.Message) models.ImageAnalytics {
	out := models.ImageAnalytics{
		TimeDistribution:   make(map[int]int),
		SenderDistribution: make(map[string]int),
		BatchSizes:         []int{},
		ConsecutiveShares:  []models.ImageBatch{},
	}

	var images []models.Message
	for _, m := range msgs {
		if strings.Contains(m.Content, lexicon.MediaOmittedMarker) ||
			strings.Contains(strings.ToLower(m.Content), "image") {
			images = append(images, m)
		}
	}
	out.TotalImages = len(images)

	var senderOrder []string
	var batches []models.ImageBatch
	var current models.ImageBatch

	flush := func() {
		if current.Count > 1 {
			out.BatchSizes = append(out.BatchSizes, current.Count)
			batches = append(batches, current)
		}
	}

	for _, m := range images {
		out.TimeDistribution[m.Timestamp.Hour()]++
		if _, ok := out.SenderDistribution[m.Sender]; !ok {
			senderOrder = append(senderOrder, m.Sender)
		}
		out.SenderDistribution[m.Sender]++

		switch {
		case current.Count == 0:
			current = models.ImageBatch{Sender: m.Sender, Timestamp: m.Timestamp, Count: 1}
		case m.Sender == current.Sender && m.Timestamp.Sub(current.Timestamp) < batchWindow:
			current.Count++
		default:
			flush()
			current = models.ImageBatch{Sender: m.Sender, Timestamp: m.Timestamp, Count: 1}
		}
	}
	flush()

	ranked := append([]models.ImageBatch(nil), batches...)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Count > ranked[j].Count })
	if len(ranked) > consecutiveShareTop {
		out.ConsecutiveShares = ranked[:consecutiveShareTop]
	} else {
		out.ConsecutiveShares = ranked
	}

	out.Insights = imageInsights(out, senderOrder, ranked)
	return out
}

func imageInsights(a models.ImageAnalytics, senderOrder []string, ranked []models.ImageBatch) models.ImageInsights {
	ins := models.ImageInsights{PeakHour: "0:00"}

	peak, peakCount := 0, 0
	for hour := 0; hour < 24; hour++ {
		if c := a.TimeDistribution[hour]; c > peakCount {
			peak, peakCount = hour, c
		}
	}
	if peakCount > 0 {
		ins.PeakHour = fmt.Sprintf("%d:00", peak)
	}

	best := 0
	for _, s := range senderOrder {
		if c := a.SenderDistribution[s]; c > best {
			best = c
			ins.MostActiveSharer = s
		}
	}

	if len(a.BatchSizes) > 0 {
		sum := 0
		for _, n := range a.BatchSizes {
			sum += n
		}
		ins.AverageBatchSize = float64(sum) / float64(len(a.BatchSizes))
	}
	if len(ranked) > 0 {
		ins.LargestBatch = ranked[0]
	}
	return ins
}
