package dialog

import "sync"

// Sessions maps conversation ids to their current FSM state. A conversation
// entry is created on first use with the Idle state and is never destroyed;
// stale sessions are harmless.
//
// Each conversation carries its own mutex. The engine holds it for the whole
// read-compute-write of one event, so events of the same conversation never
// interleave, while distinct conversations proceed in parallel. The outer
// map mutex is held only for lookup/create.
type Sessions struct {
	mu            sync.Mutex
	conversations map[int64]*conversation
}

type conversation struct {
	mu    sync.Mutex
	state State
}

// NewSessions constructs an empty session store.
func NewSessions() *Sessions {
	return &Sessions{conversations: make(map[int64]*conversation)}
}

func (s *Sessions) conversation(id int64) *conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	conv, ok := s.conversations[id]
	if !ok {
		conv = &conversation{state: Idle{}}
		s.conversations[id] = conv
	}
	return conv
}

// State reports the current FSM state of a conversation. Conversations that
// have never seen an event are Idle.
func (s *Sessions) State(id int64) State {
	conv := s.conversation(id)
	conv.mu.Lock()
	defer conv.mu.Unlock()
	return conv.state
}

// InProgress reports whether a multi-step operation is active for the
// conversation.
func (s *Sessions) InProgress(id int64) bool {
	_, idle := s.State(id).(Idle)
	return !idle
}
