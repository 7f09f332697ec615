package parser

import (
	"strings"
	"testing"
	"time"
)

func TestParseLiteralLine(t *testing.T) {
	msgs := Parse("[3/14/25, 9:05 AM] - Alice: Hello there")
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	m := msgs[0]
	if m.Sender != "Alice" {
		t.Fatalf("sender = %q", m.Sender)
	}
	if m.Content != "Hello there" {
		t.Fatalf("content = %q", m.Content)
	}
	want := time.Date(2025, time.March, 14, 9, 5, 0, 0, time.UTC)
	if !m.Timestamp.Equal(want) {
		t.Fatalf("timestamp = %v, want %v", m.Timestamp, want)
	}
}

func TestParseFormats(t *testing.T) {
	cases := []struct {
		line string
		hour int
	}{
		{"12/31/2023, 23:59 - Bob: bye", 23},
		{"12/31/2023, 23:59:59 - Bob: bye", 23},
		{"[1/2/24, 1:02:03 pm] - Bob: lunch", 13},
		{"1/2/24 1:02 PM - Bob: lunch", 13},
	}
	for _, c := range cases {
		msgs := Parse(c.line)
		if len(msgs) != 1 {
			t.Fatalf("%q: expected 1 message, got %d", c.line, len(msgs))
		}
		if got := msgs[0].Timestamp.Hour(); got != c.hour {
			t.Fatalf("%q: hour = %d, want %d", c.line, got, c.hour)
		}
	}
}

func TestParseTotality(t *testing.T) {
	for _, input := range []string{
		"",
		"\n\n\n",
		"no timestamps here",
		"just: a colon but no date",
		strings.Repeat("garbage line\n", 1000),
	} {
		if msgs := Parse(input); len(msgs) != 0 {
			t.Fatalf("input %.30q: expected empty result, got %d messages", input, len(msgs))
		}
	}
}

func TestParseDropsInvalidDate(t *testing.T) {
	input := "[99/99/99, 9:05 AM] - Bob: bad date\n" +
		"[3/14/25, 9:05 AM] - Alice: good date"
	msgs := Parse(input)
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	if msgs[0].Sender != "Alice" {
		t.Fatalf("sender = %q", msgs[0].Sender)
	}
}

func TestParseDropsContinuationLines(t *testing.T) {
	input := "3/14/25, 9:05 AM - Alice: first line\n" +
		"and this continues the thought\n" +
		"3/14/25, 9:06 AM - Bob: reply"
	msgs := Parse(input)
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].Content != "first line" || msgs[1].Sender != "Bob" {
		t.Fatalf("unexpected messages: %+v", msgs)
	}
}

func TestParsePreservesInputOrder(t *testing.T) {
	// out-of-order timestamps are not re-sorted
	input := "3/14/25, 9:06 AM - Bob: second stamp first\n" +
		"3/14/25, 9:05 AM - Alice: first stamp second"
	msgs := Parse(input)
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].Sender != "Bob" || msgs[1].Sender != "Alice" {
		t.Fatalf("order not preserved: %+v", msgs)
	}
}
