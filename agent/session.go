package agent

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
)

var (
	ErrEmptyMessage = errors.New("empty message")
	ErrPending      = errors.New("waiting for the previous reply")
)

// Sender replies to a new message given the prior conversation.
type Sender interface {
	Send(ctx context.Context, prior []Message, text string) string
}

// Session is a conversation with the mentor. It is safe for concurrent use,
// but only one message can wait for its reply at a time.
type Session struct {
	sender Sender

	mu       sync.Mutex
	messages []Message
	pending  bool
}

// NewSession starts a conversation opened by greeting.
func NewSession(sender Sender, greeting Message) *Session {
	return &Session{sender: sender, messages: []Message{greeting}}
}

// Messages returns the conversation so far.
func (s *Session) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.messages)
}

// Pending reports whether a message is waiting for its reply.
func (s *Session) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Started reports whether the user has said anything yet.
func (s *Session) Started() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages) > 1
}

// Send adds text to the conversation and waits for the reply.
func (s *Session) Send(ctx context.Context, text string) (Message, error) {
	if strings.TrimSpace(text) == "" {
		return Message{}, ErrEmptyMessage
	}
	s.mu.Lock()
	if s.pending {
		s.mu.Unlock()
		return Message{}, ErrPending
	}
	prior := slices.Clone(s.messages)
	s.messages = append(s.messages, NewMessage(RoleUser, text))
	s.pending = true
	s.mu.Unlock()

	reply := NewMessage(RoleModel, s.sender.Send(ctx, prior, text))

	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, reply)
	s.pending = false
	return reply, nil
}
