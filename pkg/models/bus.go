package models

import (
	"sync"
	"time"
)

// MsgType classifies a bus message.
type MsgType string

// Recognized message types.
const (
	MsgInfo     MsgType = "info"
	MsgReview   MsgType = "review"
	MsgQuestion MsgType = "question"
	MsgDecision MsgType = "decision"
	MsgError    MsgType = "error"
	MsgGatePass MsgType = "gate_pass"
	MsgGateFail MsgType = "gate_fail"
)

// BroadcastReceiver is the special receiver value meaning "deliver to
// every reader".
const BroadcastReceiver = "*"

// Message is one entry on the orchestrator's in-memory bus.
type Message struct {
	Sender    string    `json:"sender"`
	Receiver  string    `json:"receiver"`
	Type      MsgType   `json:"msg_type"`
	Stage     string    `json:"stage"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Bus is an append-only, in-memory message log. It is safe for concurrent
// Publish/GetFor calls. Messages are never removed — a run's bus is
// discarded with its RunContext.
type Bus struct {
	mu       sync.Mutex
	messages []Message
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Publish appends a message, preserving insertion order.
func (b *Bus) Publish(msg Message) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.messages = append(b.messages, msg)
}

// GetFor returns all messages addressed to receiver (directly, or via
// broadcast), optionally filtered by msgType and stage. An empty filter
// value matches any. Results preserve insertion order (spec.md §5).
func (b *Bus) GetFor(receiver string, msgType MsgType, stage string) []Message {
	b.mu.Lock()
	defer b.mu.Unlock()

	var out []Message
	for _, m := range b.messages {
		if m.Receiver != receiver && m.Receiver != BroadcastReceiver {
			continue
		}
		if msgType != "" && m.Type != msgType {
			continue
		}
		if stage != "" && m.Stage != stage {
			continue
		}
		out = append(out, m)
	}
	return out
}

// All returns every message ever published, in insertion order.
func (b *Bus) All() []Message {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Message, len(b.messages))
	copy(out, b.messages)
	return out
}
