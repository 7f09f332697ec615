package analyzer

import (
	"strings"

	"github.com/eladmint/whatsapp-analyzer/pkg/lexicon"
	"github.com/eladmint/whatsapp-analyzer/pkg/models"
)

const maxEmotionExamples = 3

// EmotionalMetrics scores one participant's messages against the four static
// emotion word lists. Matching is lower-cased substring membership. Ratios
// are normalized by max(messageCount, 1), so a participant with no messages
// yields all zeros and never NaN.
func EmotionalMetrics(msgs []models.Message, sender string) models.EmotionalMetrics {
	var (
		total      int
		emotional  int
		positive   int
		negative   int
		humor      int
		vulnerable int
		examples   models.EmotionalExamples
	)

	for _, m := range msgs {
		if m.Sender != sender {
			continue
		}
		total++
		content := strings.ToLower(m.Content)

		if containsAny(content, lexicon.PositiveWords) {
			emotional++
			positive++
			if len(examples.Positive) < maxEmotionExamples {
				examples.Positive = append(examples.Positive, m)
			}
		}
		if containsAny(content, lexicon.NegativeWords) {
			emotional++
			negative++
			if len(examples.Negative) < maxEmotionExamples {
				examples.Negative = append(examples.Negative, m)
			}
		}
		if containsAny(content, lexicon.HumorWords) {
			humor++
			if len(examples.Humor) < maxEmotionExamples {
				examples.Humor = append(examples.Humor, m)
			}
		}
		if containsAny(content, lexicon.VulnerableWords) {
			vulnerable++
			if len(examples.Vulnerable) < maxEmotionExamples {
				examples.Vulnerable = append(examples.Vulnerable, m)
			}
		}
	}

	n := float64(max(total, 1))
	return models.EmotionalMetrics{
		Expressiveness: float64(emotional) / n,
		Positivity:     float64(positive-negative) / n,
		Humor:          float64(humor) / n,
		Vulnerability:  float64(vulnerable) / n,
		Examples:       examples,
	}
}

func containsAny(content string, words []string) bool {
	for _, w := range words {
		if strings.Contains(content, w) {
			return true
		}
	}
	return false
}
