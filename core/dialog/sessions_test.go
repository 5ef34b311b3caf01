package dialog

import (
	"context"
	"sync"
	"testing"
)

func TestSessionsDefaultIdle(t *testing.T) {
	s := NewSessions()
	if _, idle := s.State(42).(Idle); !idle {
		t.Fatalf("fresh conversation must start idle")
	}
	if s.InProgress(42) {
		t.Fatalf("fresh conversation must not be in progress")
	}
}

func TestConcurrentConversations(t *testing.T) {
	engine, _, _ := newTestEngine()
	ctx := context.Background()

	// Hammer distinct conversations in parallel; each walks the full
	// add-work flow and must end idle with its own accumulated data.
	var wg sync.WaitGroup
	for conv := int64(1); conv <= 16; conv++ {
		wg.Add(1)
		go func(conv int64) {
			defer wg.Done()
			engine.Handle(ctx, CommandEvent(conv, conv, CommandAddWork))
			engine.Handle(ctx, TextEvent(conv, conv, "Title"))
			engine.Handle(ctx, TextEvent(conv, conv, "manga"))
			engine.Handle(ctx, TextEvent(conv, conv, "Description"))
		}(conv)
	}
	wg.Wait()

	for conv := int64(1); conv <= 16; conv++ {
		if _, idle := engine.Sessions().State(conv).(Idle); !idle {
			t.Fatalf("conversation %d ended in %s", conv, engine.Sessions().State(conv).stateName())
		}
	}
}
