package server

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/archmind/archmind/pkg/design"
	"github.com/archmind/archmind/pkg/jsontime"
)

// ErrChatBusy is returned when a session already has an AI request in
// flight. There is no queueing and no cancellation; the client retries.
var ErrChatBusy = errors.New("server: a chat request is already in flight")

// ChatState is the chat surface's request lifecycle.
type ChatState int

const (
	// ChatIdle accepts new messages.
	ChatIdle ChatState = iota

	// ChatAwaitingResponse has one AI request in flight and rejects others.
	ChatAwaitingResponse

	// ChatError holds the failure of the last request until the next
	// message implicitly clears it.
	ChatError
)

func (s ChatState) String() string {
	switch s {
	case ChatAwaitingResponse:
		return "awaiting-response"
	case ChatError:
		return "error"
	default:
		return "idle"
	}
}

// Session is one editing surface: a workspace plus chat state, owned by a
// single client. The workspace is not safe for concurrent use, so all
// access goes through Do.
type Session struct {
	ID        string
	CreatedAt jsontime.Milli

	mu      sync.Mutex
	ws      *design.Workspace
	chat    ChatState
	lastErr error
}

func newSession() *Session {
	return &Session{
		ID:        uuid.NewString(),
		CreatedAt: jsontime.NowEpochMilli(),
		ws:        design.NewWorkspace(),
	}
}

// Do runs fn with exclusive access to the session's workspace.
func (s *Session) Do(fn func(w *design.Workspace)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.ws)
}

// BeginChat claims the single in-flight slot. Starting a new message from
// the error state clears the previous failure.
func (s *Session) BeginChat() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.chat == ChatAwaitingResponse {
		return ErrChatBusy
	}
	s.chat = ChatAwaitingResponse
	s.lastErr = nil
	return nil
}

// EndChat releases the in-flight slot, recording the outcome.
func (s *Session) EndChat(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.chat = ChatError
		s.lastErr = err
		return
	}
	s.chat = ChatIdle
}

// ChatState returns the current chat lifecycle state.
func (s *Session) ChatState() ChatState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chat
}

// Store is the in-memory session map. Designs live only as long as the
// process; durable persistence is deliberately out of scope.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Get returns the session with the given id.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}

// GetOrCreate returns the session with the given id, creating a fresh one
// when the id is empty or unknown.
func (st *Store) GetOrCreate(id string) *Session {
	if id != "" {
		if s, ok := st.Get(id); ok {
			return s
		}
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	s := newSession()
	st.sessions[s.ID] = s
	return s
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
