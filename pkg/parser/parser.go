// Package parser turns a raw WhatsApp export into an ordered message
// sequence. The parser is total: any input, including the empty string,
// yields a (possibly empty) slice and never a panic.
package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/eladmint/whatsapp-analyzer/pkg/logger"
	"github.com/eladmint/whatsapp-analyzer/pkg/models"
)

// lineRe matches one exported message line:
//
//	[optional "["] DATE [optional "]"] separator SENDER ":" CONTENT
//
// where DATE is D{1,2}/D{1,2}/D{2,4} followed by a comma or whitespace and
// H{1,2}:MM[:SS][ AM/PM]. The pattern is linear per line; there is no
// backtracking blowup on large inputs.
var lineRe = regexp.MustCompile(`(?i)^\[?(\d{1,2}/\d{1,2}/\d{2,4}(?:,|\s)\s*\d{1,2}:\d{2}(?::\d{2})?(?:\s*[AP]M)?)\]?\s+-?\s+([^:]+):\s+(.+)`)

// timestamp layouts tried in order, after the comma is dropped and AM/PM is
// upper-cased. Two-digit years resolve to 20xx the same way the exports do.
var layouts = []string{
	"1/2/2006 3:04:05 PM",
	"1/2/2006 3:04 PM",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"1/2/06 3:04:05 PM",
	"1/2/06 3:04 PM",
	"1/2/06 15:04:05",
	"1/2/06 15:04",
}

// Parse splits text into lines and extracts every line that matches the
// message grammar. Lines that do not match are silently dropped; continuation
// lines of multi-line messages are not merged into the preceding message.
// A matching line whose date fails to parse is dropped with a diagnostic.
// Output preserves input order; no re-sorting happens.
func Parse(text string) []models.Message {
	lines := strings.Split(text, "\n")
	msgs := make([]models.Message, 0, len(lines))

	for _, line := range lines {
		m := lineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		ts, ok := parseTimestamp(m[1])
		if !ok {
			logger.Warn("transcript_timestamp_unparseable", "raw", m[1])
			continue
		}
		msgs = append(msgs, models.Message{
			Sender:    strings.TrimSpace(m[2]),
			Content:   strings.TrimSpace(m[3]),
			Timestamp: ts,
		})
	}
	return msgs
}

func parseTimestamp(raw string) (time.Time, bool) {
	s := strings.Replace(raw, ",", "", 1)
	s = strings.Join(strings.Fields(s), " ")
	s = strings.ToUpper(s)
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
