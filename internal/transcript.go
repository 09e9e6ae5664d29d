package internal

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

// Transcript owns the ordered message log of one session and its loading
// flag. At most one question is in flight at a time, so entries settle in
// submission order.
type Transcript struct {
	client    Asker
	sessionID string
	createdAt time.Time
	now       func() time.Time

	mu       sync.Mutex
	messages []Message
	awaiting bool
	// generation changes on every clear and on close; a settling request
	// only appends if the generation it started under is still current.
	generation uint64
	closed     bool
}

// TranscriptOption configures a Transcript
type TranscriptOption func(*transcriptConfig)

type transcriptConfig struct {
	ids IDGenerator
	now func() time.Time
}

// WithIDGenerator sets the session id source
func WithIDGenerator(gen IDGenerator) TranscriptOption {
	return func(c *transcriptConfig) {
		c.ids = gen
	}
}

// WithClock sets the clock used for timestamps
func WithClock(now func() time.Time) TranscriptOption {
	return func(c *transcriptConfig) {
		c.now = now
	}
}

// NewTranscript creates an idle, empty transcript with a fresh session id
func NewTranscript(client Asker, opts ...TranscriptOption) *Transcript {
	cfg := transcriptConfig{ids: UUIDGenerator(), now: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}

	t := &Transcript{
		client:    client,
		sessionID: cfg.ids(),
		now:       cfg.now,
	}
	t.createdAt = t.now()
	LogDebug("transcript created: session=%s", t.sessionID)
	return t
}

// SessionID returns the id correlating this transcript's requests
func (t *Transcript) SessionID() string {
	return t.sessionID
}

// Loading reports whether a question is in flight
func (t *Transcript) Loading() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.awaiting
}

// Len returns the number of entries
func (t *Transcript) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.messages)
}

// Messages returns a copy of the log
func (t *Transcript) Messages() []Message {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Message, len(t.messages))
	copy(out, t.messages)
	return out
}

// Snapshot captures the transcript for rendering or export
func (t *Transcript) Snapshot() *Session {
	t.mu.Lock()
	defer t.mu.Unlock()
	messages := make([]Message, len(t.messages))
	copy(messages, t.messages)
	return &Session{
		ID:       t.sessionID,
		Messages: messages,
		Loading:  t.awaiting,
		Metadata: Metadata{
			CreatedAt:    t.createdAt.Format(time.RFC3339),
			MessageCount: len(messages),
		},
	}
}

// Submit records question, resolves it through the client and records the
// outcome. It blocks until the request settles. Blank questions, questions
// submitted while another is in flight and questions after Close are
// refused with ErrEmptyQuestion, ErrAwaiting and ErrClosed respectively,
// leaving the log untouched.
func (t *Transcript) Submit(ctx context.Context, question string) error {
	question = strings.TrimSpace(question)
	if question == "" {
		return ErrEmptyQuestion
	}

	t.mu.Lock()
	switch {
	case t.closed:
		t.mu.Unlock()
		return ErrClosed
	case t.awaiting:
		t.mu.Unlock()
		return ErrAwaiting
	}
	t.messages = append(t.messages, Message{
		Kind:      MessageUser,
		Text:      question,
		Timestamp: t.stamp(),
	})
	t.awaiting = true
	gen := t.generation
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		t.awaiting = false
		t.mu.Unlock()
	}()

	entry := t.resolve(ctx, question)
	t.settle(gen, entry)
	return nil
}

// resolve turns the client outcome into exactly one entry.
func (t *Transcript) resolve(ctx context.Context, question string) (entry Message) {
	defer func() {
		if r := recover(); r != nil {
			LogError("ask panicked: %v", r)
			entry = t.errorEntry(&TransportError{Op: "ask", Err: fmt.Errorf("panic: %v", r)})
		}
	}()

	result, err := t.client.Ask(ctx, question, t.sessionID)
	if err != nil {
		return t.errorEntry(err)
	}
	if result == nil {
		return t.errorEntry(&ApplicationError{})
	}
	return Message{Kind: MessageResult, Result: result, Timestamp: t.stamp()}
}

func (t *Transcript) errorEntry(err error) Message {
	return Message{Kind: MessageError, Text: UserMessage(err), Timestamp: t.stamp()}
}

func (t *Transcript) settle(gen uint64, entry Message) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if gen != t.generation {
		LogDebug("discarding %s for stale transcript state (session=%s)", entry.Kind, t.sessionID)
		return
	}
	t.messages = append(t.messages, entry)
}

// Clear empties the log and asks the backend to forget the session. The
// local reset happens first and never depends on the backend call. The
// session id is kept, and an in-flight request is not cancelled: its
// outcome is dropped when it settles.
func (t *Transcript) Clear(ctx context.Context) {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	t.generation++
	t.messages = nil
	t.mu.Unlock()

	t.client.Clear(ctx, t.sessionID)
}

// Close tears the transcript down. Later submissions are refused and
// outcomes still in flight are dropped.
func (t *Transcript) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
	t.generation++
}

func (t *Transcript) stamp() string {
	return t.now().Format(time.RFC3339)
}
