package analyzer

import (
	"math"
	"testing"
	"time"

	"github.com/eladmint/whatsapp-analyzer/pkg/models"
)

func TestImageBatchDetection(t *testing.T) {
	msgs := []models.Message{
		msg("Alice", "<Media omitted>", t0),
		msg("Alice", "<Media omitted>", t0.Add(100*time.Second)),
		msg("Alice", "<Media omitted>", t0.Add(250*time.Second)),
		msg("Bob", "<Media omitted>", t0.Add(260*time.Second)),
	}
	a := ImageAnalytics(msgs)

	if a.TotalImages != 4 {
		t.Fatalf("totalImages = %d, want 4", a.TotalImages)
	}
	if len(a.BatchSizes) != 1 || a.BatchSizes[0] != 3 {
		t.Fatalf("batchSizes = %v, want [3]", a.BatchSizes)
	}
	if len(a.ConsecutiveShares) != 1 {
		t.Fatalf("consecutiveShares = %+v", a.ConsecutiveShares)
	}
	b := a.ConsecutiveShares[0]
	if b.Sender != "Alice" || b.Count != 3 || !b.Timestamp.Equal(t0) {
		t.Fatalf("batch = %+v", b)
	}
}

func TestImageBatchWindowFromStart(t *testing.T) {
	// window is measured from batch start: a message 6 minutes after the
	// first share opens a new batch even though it is within 5 minutes of
	// the previous share.
	msgs := []models.Message{
		msg("Alice", "photo image one", t0),
		msg("Alice", "photo image two", t0.Add(4*time.Minute)),
		msg("Alice", "photo image three", t0.Add(6*time.Minute)),
		msg("Alice", "photo image four", t0.Add(7*time.Minute)),
	}
	a := ImageAnalytics(msgs)
	if len(a.BatchSizes) != 2 || a.BatchSizes[0] != 2 || a.BatchSizes[1] != 2 {
		t.Fatalf("batchSizes = %v, want [2 2]", a.BatchSizes)
	}
}

func TestImageInsights(t *testing.T) {
	at := time.Date(2025, time.March, 14, 21, 0, 0, 0, time.UTC)
	msgs := []models.Message{
		msg("Alice", "<Media omitted>", at),
		msg("Alice", "<Media omitted>", at.Add(time.Minute)),
		msg("Alice", "<Media omitted>", at.Add(2*time.Minute)),
		msg("Bob", "<Media omitted>", at.Add(10*time.Minute)),
	}
	a := ImageAnalytics(msgs)

	if a.Insights.MostActiveSharer != "Alice" {
		t.Fatalf("mostActiveSharer = %q", a.Insights.MostActiveSharer)
	}
	if a.Insights.PeakHour != "21:00" {
		t.Fatalf("peakHour = %q", a.Insights.PeakHour)
	}
	if a.Insights.LargestBatch.Count != 3 {
		t.Fatalf("largestBatch = %+v", a.Insights.LargestBatch)
	}
	if math.Abs(a.Insights.AverageBatchSize-3) > 1e-9 {
		t.Fatalf("averageBatchSize = %v, want 3", a.Insights.AverageBatchSize)
	}
}

func TestImageAnalyticsEmpty(t *testing.T) {
	a := ImageAnalytics([]models.Message{msg("Alice", "no pictures here", t0)})
	if a.TotalImages != 0 {
		t.Fatalf("totalImages = %d", a.TotalImages)
	}
	if a.Insights.PeakHour != "0:00" || a.Insights.MostActiveSharer != "" {
		t.Fatalf("insights = %+v", a.Insights)
	}
	if a.Insights.AverageBatchSize != 0 {
		t.Fatalf("averageBatchSize = %v", a.Insights.AverageBatchSize)
	}
}
