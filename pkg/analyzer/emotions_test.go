package analyzer

import (
	"math"
	"testing"
	"time"

	"github.com/eladmint/whatsapp-analyzer/pkg/models"
)

func TestEmotionalMetricsRatios(t *testing.T) {
	msgs := []models.Message{
		msg("Alice", "I love this so much", t0),
		msg("Alice", "that was terrible", t0.Add(time.Minute)),
		msg("Alice", "haha hilarious", t0.Add(2*time.Minute)),
		msg("Alice", "nothing notable", t0.Add(3*time.Minute)),
		msg("Bob", "I hate everything", t0.Add(4*time.Minute)),
	}
	em := EmotionalMetrics(msgs, "Alice")

	// 4 messages: one positive, one negative, one humor
	if math.Abs(em.Expressiveness-0.5) > 1e-9 {
		t.Fatalf("expressiveness = %v, want 0.5", em.Expressiveness)
	}
	if math.Abs(em.Positivity-0.0) > 1e-9 {
		t.Fatalf("positivity = %v, want 0", em.Positivity)
	}
	if math.Abs(em.Humor-0.25) > 1e-9 {
		t.Fatalf("humor = %v, want 0.25", em.Humor)
	}
	if len(em.Examples.Positive) != 1 || em.Examples.Positive[0].Content != "I love this so much" {
		t.Fatalf("positive examples = %+v", em.Examples.Positive)
	}
}

func TestEmotionalMetricsSubstringMatch(t *testing.T) {
	// "lovely" contains "love": substring matching is the intended heuristic
	msgs := []models.Message{msg("Alice", "what a lovely day", t0)}
	em := EmotionalMetrics(msgs, "Alice")
	if em.Positivity != 1 {
		t.Fatalf("positivity = %v, want 1", em.Positivity)
	}
}

func TestEmotionalMetricsZeroMessages(t *testing.T) {
	msgs := []models.Message{msg("Alice", "hello", t0)}
	em := EmotionalMetrics(msgs, "Ghost")
	for name, v := range map[string]float64{
		"expressiveness": em.Expressiveness,
		"positivity":     em.Positivity,
		"humor":          em.Humor,
		"vulnerability":  em.Vulnerability,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("%s not finite: %v", name, v)
		}
		if v != 0 {
			t.Fatalf("%s = %v, want 0", name, v)
		}
	}
}

func TestEmotionalMetricsExampleCap(t *testing.T) {
	var msgs []models.Message
	for i := 0; i < 10; i++ {
		msgs = append(msgs, msg("Alice", "so happy today", t0.Add(time.Duration(i)*time.Minute)))
	}
	em := EmotionalMetrics(msgs, "Alice")
	if len(em.Examples.Positive) != 3 {
		t.Fatalf("positive examples = %d, want cap of 3", len(em.Examples.Positive))
	}
}
