package telegram

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	tele "gopkg.in/telebot.v4"

	"shelfbot/core/dialog"
)

func TestInlineKeyboard(t *testing.T) {
	rows := [][]dialog.Button{
		{{Label: "Naruto", Route: "view-work:1"}},
		{{Label: "➕ Add work", Route: "add-work"}, {Label: "⬅️ Back", Route: "list-works"}},
	}
	kb := InlineKeyboard(rows)
	if kb == nil {
		t.Fatal("expected markup")
	}
	if len(kb.InlineKeyboard) != 2 {
		t.Fatalf("rows = %d", len(kb.InlineKeyboard))
	}
	if got := kb.InlineKeyboard[0][0].Data; got != "view-work:1" {
		t.Fatalf("data = %s", got)
	}
	if got := kb.InlineKeyboard[1][1].Text; got != "⬅️ Back" {
		t.Fatalf("text = %s", got)
	}
}

func TestInlineKeyboardEmpty(t *testing.T) {
	if InlineKeyboard(nil) != nil {
		t.Fatal("button-less reply must produce no markup")
	}
}

func TestCallbackToken(t *testing.T) {
	cases := []struct {
		data string
		want string
	}{
		{"view-work:7", "view-work:7"},
		{"list-works", "list-works"},
		{"\fview-work|7", "view-work:7"},
		{"\fadd-work|", "add-work"},
	}
	for _, c := range cases {
		if got := CallbackToken(&tele.Callback{Data: c.data}); got != c.want {
			t.Errorf("CallbackToken(%q) = %q, want %q", c.data, got, c.want)
		}
	}
	if got := CallbackToken(nil); got != "" {
		t.Errorf("nil callback = %q", got)
	}
}

func TestSenderRunsJobs(t *testing.T) {
	s := NewSender(SenderOptions{QueueSize: 8, Workers: 2})

	var ran atomic.Int32
	for i := 0; i < 5; i++ {
		if err := s.Enqueue(context.Background(), func() error {
			ran.Add(1)
			return nil
		}); err != nil {
			t.Fatalf("enqueue: %v", err)
		}
	}
	s.Close()

	if ran.Load() != 5 {
		t.Fatalf("ran = %d, want 5", ran.Load())
	}
	if s.ErrorCount() != 0 {
		t.Fatalf("errors = %d", s.ErrorCount())
	}
}

func TestSenderCountsFailures(t *testing.T) {
	s := NewSender(SenderOptions{QueueSize: 2, Workers: 1})
	if err := s.Enqueue(context.Background(), func() error {
		return errors.New("timeout")
	}); err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	s.Close()
	if s.ErrorCount() != 1 {
		t.Fatalf("errors = %d, want 1", s.ErrorCount())
	}
}

func TestSenderClosed(t *testing.T) {
	s := NewSender(SenderOptions{})
	s.Close()
	if err := s.Enqueue(context.Background(), func() error { return nil }); !errors.Is(err, ErrQueueClosed) {
		t.Fatalf("enqueue after close = %v, want ErrQueueClosed", err)
	}
}
