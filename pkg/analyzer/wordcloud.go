package analyzer

import (
	"sort"
	"strings"

	"github.com/eladmint/whatsapp-analyzer/pkg/lexicon"
	"github.com/eladmint/whatsapp-analyzer/pkg/models"
)

const wordCloudLimit = 100

// WordCloud builds the top-100 word frequency list. Content is lower-cased,
// sentence punctuation stripped and split on whitespace; tokens survive when
// longer than three characters, not on the stop-word list and not URL or
// media-omitted debris. Ties rank in first-seen order for determinism.
func WordCloud(msgs []models.Message) []models.WordCloudEntry {
	counts := make(map[string]int)
	var order []string

	for _, m := range msgs {
		content := lexicon.StripPunctuation(strings.ToLower(m.Content))
		for _, word := range strings.Fields(content) {
			if len(word) <= 3 ||
				lexicon.IsStopWord(word) ||
				strings.HasPrefix(word, "http") ||
				strings.Contains(word, "media") ||
				strings.Contains(word, "omitted") {
				continue
			}
			if _, seen := counts[word]; !seen {
				order = append(order, word)
			}
			counts[word]++
		}
	}

	entries := make([]models.WordCloudEntry, 0, len(order))
	for _, word := range order {
		entries = append(entries, models.WordCloudEntry{Text: word, Value: counts[word]})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Value > entries[j].Value })
	if len(entries) > wordCloudLimit {
		entries = entries[:wordCloudLimit]
	}
	return entries
}
