// Package lexicon holds the static classification data shared by the
// analyzers: emotion word lists, the stop-word list and the structural
// token patterns.
package lexicon

import (
	"regexp"
	"strings"
)

// Emotion word lists. Matching is case-insensitive substring membership, not
// token membership; "lovely" counts as containing "love". That is an accepted
// heuristic, not a bug.
var (
	PositiveWords = []string{
		"happy", "love", "great", "awesome", "excited", "wonderful",
		"good", "nice", "fun", "beautiful",
	}
	NegativeWords = []string{
		"sad", "angry", "upset", "hate", "terrible", "bad", "awful",
		"worried", "stressed", "annoyed",
	}
	VulnerableWords = []string{
		"feel", "miss", "need", "sorry", "hurt", "alone", "afraid",
		"worried", "confused", "help",
	}
	HumorWords = []string{
		"lol", "haha", "lmao", "😂", "🤣", "funny", "joke", "hilarious",
		"😅", "😆",
	}
)

// stopWords is the expanded exclusion list for the word cloud and the lingo
// miner. Lookups go through IsStopWord which lower-cases first.
var stopWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"the", "be", "to", "of", "and", "a", "in", "that", "have", "i",
		"it", "for", "not", "on", "with", "he", "as", "you", "do", "at",
		"this", "but", "his", "by", "from", "they", "we", "say", "her",
		"she", "or", "an", "will", "my", "one", "all", "would", "there",
		"their", "what", "so", "up", "out", "if", "about", "who", "get",
		"which", "go", "me", "when", "make", "can", "like", "time", "no",
		"just", "him", "know", "take", "people", "into", "year", "your",
		"good", "some", "could", "them", "see", "other", "than", "then",
		"now", "look", "only", "come", "its", "over", "think", "also",
		"back", "after", "use", "two", "how", "our", "work", "first",
		"well", "way", "even", "new", "want", "because", "any", "these",
		"give", "day", "most", "cant", "wont", "dont",
		"null", "<media", "omitted>", "i'll", "im", "i'm", "ive", "i've",
		"message", "deleted", "http", "https", "www", "com",
		"still", "hey", "meet", "got", "getting", "goes", "going", "gone",
		"coming", "came", "wanted", "wants", "need", "needed", "needs",
		"looking", "looked", "seeing", "seen", "saw", "watch", "watching",
		"thinking", "thought", "knowing", "knew", "known",
		"yes", "yeah", "yep", "nope", "ok", "okay", "sure", "right",
		"great", "nice", "cool", "awesome", "amazing", "wow", "omg", "oh",
		"lol", "haha", "hehe", "hmm", "really", "actually",
		"maybe", "probably", "definitely", "absolutely", "totally", "basically",
		"anyway", "though", "although", "however",
		"later", "soon", "today", "tomorrow", "yesterday", "morning", "evening",
		"night", "week", "month", "hour", "minute", "second",
		"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
		"january", "february", "march", "april", "may", "june", "july", "august",
		"september", "october", "november", "december",
	} {
		stopWords[w] = struct{}{}
	}
}

// IsStopWord reports whether the token (lower-cased) is on the exclusion list.
func IsStopWord(token string) bool {
	_, ok := stopWords[strings.ToLower(token)]
	return ok
}

// Structural token patterns used by the lingo miner.
var (
	// NicknamePattern matches common endearment suffixes: Benny, Rosie, Jacko.
	NicknamePattern = regexp.MustCompile(`^[A-Z][a-z]+y$|^[A-Z][a-z]+ie$|^[A-Z][a-z]+(o|sy)$`)
	// PlacePattern matches capitalized multi-word place names.
	PlacePattern = regexp.MustCompile(`^[A-Z][a-zA-Z\s\-']+$`)
	// SlangSuffixPattern matches generic verb endings to exclude from mining.
	SlangSuffixPattern = regexp.MustCompile(`^[a-z]+ing$|^[a-z]+ed$|^[a-z]+s$`)
	// URLPattern matches http(s) links.
	URLPattern = regexp.MustCompile(`^https?://`)

	punctuation = strings.NewReplacer(".", "", ",", "", "!", "", "?", "")
)

// StripPunctuation removes the sentence punctuation the miners ignore.
func StripPunctuation(token string) string {
	return punctuation.Replace(token)
}

// emoji presentation blocks; covers pictographs, transport, supplemental
// symbols, flags, dingbats and the variation selector.
var emojiRanges = [][2]rune{
	{0x1F300, 0x1F5FF},
	{0x1F600, 0x1F64F},
	{0x1F680, 0x1F6FF},
	{0x1F900, 0x1F9FF},
	{0x1FA70, 0x1FAFF},
	{0x1F1E6, 0x1F1FF},
	{0x2600, 0x27BF},
	{0x2B00, 0x2BFF},
	{0xFE0F, 0xFE0F},
}

// ContainsEmoji reports whether the string carries at least one
// emoji-presentation rune.
func ContainsEmoji(s string) bool {
	for _, r := range s {
		for _, rg := range emojiRanges {
			if r >= rg[0] && r <= rg[1] {
				return true
			}
		}
	}
	return false
}

// MediaOmittedMarker is what WhatsApp substitutes for attachments in exports.
const MediaOmittedMarker = "<Media omitted>"
