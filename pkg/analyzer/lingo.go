package analyzer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/eladmint/whatsapp-analyzer/pkg/lexicon"
	"github.com/eladmint/whatsapp-analyzer/pkg/models"
)

const (
	specialTermLimit   = 15
	minTermFrequency   = 3
	maxTermExamples    = 5
	maxTermContexts    = 3
	contextTokenRadius = 2
	rarityCeilingOfAll = 0.01
)

type termUsage struct {
	count    int
	users    []string // distinct senders, first-use order
	userSet  map[string]struct{}
	examples []models.Message
	contexts []string
}

// SpecialLingo mines tokens whose usage pattern suggests idiomatic or shared
// meaning. A token qualifies when its frequency sits inside the rarity bound
// [3, 1% of total messages] and it additionally looks like an emoji, a
// nickname, a place name, is concentrated in at most two senders, or repeats
// an identical surrounding context (fixed-phrase usage). The top 15 by
// frequency survive, each labeled with a first-matching-rule meaning.
func SpecialLingo(msgs []models.Message) []models.SpecialTerm {
	usage := make(map[string]*termUsage)
	var order []string

	for _, m := range msgs {
		words := tokenizeForLingo(m.Content)
		for i, word := range words {
			if lexicon.IsStopWord(word) ||
				lexicon.URLPattern.MatchString(word) ||
				lexicon.SlangSuffixPattern.MatchString(word) {
				continue
			}
			u := usage[word]
			if u == nil {
				u = &termUsage{userSet: make(map[string]struct{})}
				usage[word] = u
				order = append(order, word)
			}
			u.count++
			if _, ok := u.userSet[m.Sender]; !ok {
				u.userSet[m.Sender] = struct{}{}
				u.users = append(u.users, m.Sender)
			}
			if len(u.examples) < maxTermExamples {
				u.examples = append(u.examples, m)
			}
			if len(u.contexts) < maxTermContexts {
				u.contexts = append(u.contexts, contextWindow(words, i))
			}
		}
	}

	ceiling := float64(len(msgs)) * rarityCeilingOfAll
	qualified := make([]string, 0, len(order))
	for _, word := range order {
		u := usage[word]
		if u.count < minTermFrequency || float64(u.count) > ceiling {
			continue
		}
		if lexicon.ContainsEmoji(word) ||
			lexicon.NicknamePattern.MatchString(word) ||
			lexicon.PlacePattern.MatchString(word) ||
			len(u.users) <= 2 ||
			hasRepeatedContext(u.contexts) {
			qualified = append(qualified, word)
		}
	}

	sort.SliceStable(qualified, func(i, j int) bool {
		return usage[qualified[i]].count > usage[qualified[j]].count
	})
	if len(qualified) > specialTermLimit {
		qualified = qualified[:specialTermLimit]
	}

	terms := make([]models.SpecialTerm, 0, len(qualified))
	for _, word := range qualified {
		u := usage[word]
		terms = append(terms, models.SpecialTerm{
			Term:      word,
			Meaning:   termMeaning(word, u),
			Users:     u.users,
			Frequency: u.count,
			Examples:  u.examples,
		})
	}
	return terms
}

// tokenizeForLingo splits on whitespace, strips sentence punctuation and
// keeps tokens longer than one character. Case is preserved; the nickname
// and place patterns depend on it.
func tokenizeForLingo(content string) []string {
	fields := strings.Fields(content)
	words := fields[:0:0]
	for _, f := range fields {
		w := lexicon.StripPunctuation(f)
		if len(w) > 1 {
			words = append(words, w)
		}
	}
	return words
}

// contextWindow joins the tokens within two positions of index i.
func contextWindow(words []string, i int) string {
	lo := max(i-contextTokenRadius, 0)
	hi := min(i+contextTokenRadius+1, len(words))
	return strings.Join(words[lo:hi], " ")
}

// hasRepeatedContext reports whether at least two recorded contexts exist
// and at least one of them is duplicated verbatim.
func hasRepeatedContext(contexts []string) bool {
	if len(contexts) < 2 {
		return false
	}
	seen := make(map[string]struct{}, len(contexts))
	for _, c := range contexts {
		if _, ok := seen[c]; ok {
			return true
		}
		seen[c] = struct{}{}
	}
	return false
}

func termMeaning(word string, u *termUsage) string {
	switch {
	case lexicon.ContainsEmoji(word):
		return "Frequently used emoji"
	case lexicon.NicknamePattern.MatchString(word):
		return "Nickname or term of endearment"
	case lexicon.PlacePattern.MatchString(word):
		return "Frequently mentioned location"
	case len(u.users) == 1:
		return fmt.Sprintf("Expression unique to %s", u.users[0])
	case len(u.contexts) >= 2:
		return "Group-specific term with special meaning"
	default:
		return "Unique expression"
	}
}
