package models

import "time"

// Message is one entry of a session's conversation history.
type Message struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// Session is the per-conversation state, keyed by an opaque identifier and
// held in the session store under a TTL. A non-nil BookingSlots marks a
// booking flow in progress.
type Session struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	History      []Message `json:"history,omitempty"`
	BookingSlots *SlotSet  `json:"booking_slots,omitempty"`
}

// Append records a message, dropping the oldest entries beyond maxMessages.
// The cap bounds prompt size for the chit-chat collaborator only.
func (s *Session) Append(role, content string, maxMessages int) {
	s.History = append(s.History, Message{Role: role, Content: content})
	if maxMessages > 0 && len(s.History) > maxMessages {
		s.History = s.History[len(s.History)-maxMessages:]
	}
}
