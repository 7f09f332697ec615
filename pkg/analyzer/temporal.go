package analyzer

import (
	"github.com/eladmint/whatsapp-analyzer/pkg/models"
)

// MessageDistribution buckets every message by hour of day, weekday name and
// month name.
func MessageDistribution(msgs []models.Message) models.MessageDistribution {
	dist := models.MessageDistribution{
		Hourly:  make(map[int]int),
		Daily:   make(map[string]int),
		Monthly: make(map[string]int),
	}
	for _, m := range msgs {
		dist.Hourly[m.Timestamp.Hour()]++
		dist.Daily[m.Timestamp.Weekday().String()]++
		dist.Monthly[m.Timestamp.Month().String()]++
	}
	return dist
}

// ConversationBalance folds per-participant message counts into a symmetry
// score: 1 - |fold of |a-b|| / total. For two participants this is exactly
// 1 - |countA-countB|/total. The nested-absolute fold does not generalize
// cleanly beyond two participants; the fold runs over counts in first-seen
// participant order so results stay deterministic, but the N>2 behaviour is
// a documented quirk, kept as-is on purpose.
func ConversationBalance(msgs []models.Message) float64 {
	if len(msgs) == 0 {
		return 0
	}
	counts := make(map[string]int)
	for _, m := range msgs {
		counts[m.Sender]++
	}
	participants := models.Participants(msgs)

	acc := float64(counts[participants[0]])
	for _, p := range participants[1:] {
		acc = abs(acc - float64(counts[p]))
	}
	return 1 - abs(acc/float64(len(msgs)))
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
