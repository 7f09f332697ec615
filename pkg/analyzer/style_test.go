package analyzer

import (
	"testing"
	"time"

	"github.com/eladmint/whatsapp-analyzer/pkg/models"
)

func TestCommunicationStyleResponses(t *testing.T) {
	msgs := []models.Message{
		msg("Alice", "hey", t0),
		msg("Bob", "hi back", t0.Add(30*time.Second)),
		msg("Bob", "second thought", t0.Add(40*time.Second)),
		msg("Alice", "ok", t0.Add(10*time.Minute)),
	}
	cs := CommunicationStyle(msgs, "Bob")

	if cs.AverageResponseTime != 30*time.Second {
		t.Fatalf("averageResponseTime = %v, want 30s", cs.AverageResponseTime)
	}
	if len(cs.Examples.QuickResponses) != 1 || cs.Examples.QuickResponses[0].Content != "hi back" {
		t.Fatalf("quickResponses = %+v", cs.Examples.QuickResponses)
	}
}

func TestCommunicationStyleInitiations(t *testing.T) {
	msgs := []models.Message{
		msg("Alice", "first ever", t0),
		msg("Bob", "reply", t0.Add(time.Minute)),
		msg("Alice", "resuming after a quiet evening", t0.Add(3*time.Hour)),
	}
	alice := CommunicationStyle(msgs, "Alice")
	if alice.InitiatesConversations != 2 {
		t.Fatalf("alice initiations = %d, want 2", alice.InitiatesConversations)
	}
	if len(alice.Examples.TopicStarters) != 2 {
		t.Fatalf("topicStarters = %+v", alice.Examples.TopicStarters)
	}

	bob := CommunicationStyle(msgs, "Bob")
	if bob.InitiatesConversations != 0 {
		t.Fatalf("bob initiations = %d, want 0", bob.InitiatesConversations)
	}
}

func TestCommunicationStyleLongMessages(t *testing.T) {
	long := make([]byte, 201)
	for i := range long {
		long[i] = 'x'
	}
	msgs := []models.Message{
		msg("Alice", string(long), t0),
		msg("Alice", "short", t0.Add(time.Minute)),
	}
	cs := CommunicationStyle(msgs, "Alice")
	if len(cs.Examples.LongMessages) != 1 {
		t.Fatalf("longMessages = %d, want 1", len(cs.Examples.LongMessages))
	}
	wantLen := float64(201+5) / 2
	if cs.MessageLength != wantLen {
		t.Fatalf("messageLength = %v, want %v", cs.MessageLength, wantLen)
	}
}

func TestCommunicationStyleNoResponses(t *testing.T) {
	msgs := []models.Message{msg("Alice", "talking to myself", t0)}
	cs := CommunicationStyle(msgs, "Alice")
	if cs.AverageResponseTime != 0 {
		t.Fatalf("averageResponseTime = %v, want 0", cs.AverageResponseTime)
	}
}
