package dialog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"shelfbot/core/catalog"
	"shelfbot/core/logger"
)

// Reply texts. Kept in one place so flows stay consistent.
const (
	msgStart          = "Hi! I keep track of works and their chapters. Use /works to browse the catalog."
	msgIdleHint       = "Use /works to browse the catalog."
	msgUnknownAction  = "I don't understand that action."
	msgStorageApology = "Something went wrong on my side, please try again later."
	msgWorkNotFound   = "That work is not in the catalog anymore."
	msgChapterMissing = "That chapter is not in the catalog anymore."

	msgAskTitle       = "Send the title of the new work."
	msgAskKind        = `What kind of work is it? Send "manga" or "ranobe".`
	msgBadKind        = `I don't know that kind. Send "manga" or "ranobe".`
	msgAskDescription = "Send a short description."
	msgAskLabel       = "Send the chapter number or name."
	msgAskLink        = "Send the link to the chapter."
)

// Engine decides, for every inbound event, the next conversation state, the
// repository side effect and the reply to deliver.
type Engine struct {
	works    catalog.WorkRepository
	chapters catalog.ChapterRepository
	sessions *Sessions
}

// NewEngine wires the engine to its repositories and session store.
func NewEngine(works catalog.WorkRepository, chapters catalog.ChapterRepository, sessions *Sessions) *Engine {
	if sessions == nil {
		sessions = NewSessions()
	}
	return &Engine{works: works, chapters: chapters, sessions: sessions}
}

// Sessions exposes the owned session store, mainly for transport wiring.
func (e *Engine) Sessions() *Sessions { return e.sessions }

// Handle processes one inbound event and returns the reply to send.
//
// Failures never escape: storage problems, missing entities and unknown
// routes all turn into user-visible replies, resetting the conversation to
// Idle where the flow cannot continue. The conversation lock is held
// across the repository sync point and released before the caller sends the
// reply, so a slow send never blocks the next event of another conversation.
func (e *Engine) Handle(ctx context.Context, ev Event) Reply {
	conv := e.sessions.conversation(ev.ConversationID)

	conv.mu.Lock()
	prev := conv.state
	next, reply := e.step(ctx, prev, ev)
	conv.state = next
	conv.mu.Unlock()

	if prev.stateName() != next.stateName() {
		logger.FSM.Debug("transition",
			slog.String("event", "fsm.transition"),
			slog.Int64("conversation_id", ev.ConversationID),
			slog.String("from", prev.stateName()),
			slog.String("to", next.stateName()),
		)
	}
	return reply
}

func (e *Engine) step(ctx context.Context, st State, ev Event) (State, Reply) {
	// A command or button press received mid-flow cancels the in-progress
	// operation and is handled as fresh navigation. Silently ignoring it
	// would leave the user stuck in the half-finished flow.
	if _, idle := st.(Idle); !idle && ev.Kind != EventText {
		logger.FSM.Debug("flow cancelled",
			slog.String("event", "fsm.cancel"),
			slog.Int64("conversation_id", ev.ConversationID),
			slog.String("state", st.stateName()),
		)
		return e.navigate(ctx, ev)
	}

	switch s := st.(type) {
	case Idle:
		if ev.Kind != EventText {
			return e.navigate(ctx, ev)
		}
		return st, textReply(msgIdleHint)

	case AwaitingWorkTitle:
		title := strings.TrimSpace(ev.Text)
		if title == "" {
			return st, textReply(msgAskTitle)
		}
		return AwaitingWorkKind{Title: title}, textReply(msgAskKind)

	case AwaitingWorkKind:
		token := strings.TrimSpace(ev.Text)
		if token == "" {
			return st, textReply(msgAskKind)
		}
		kind, err := catalog.ParseWorkKind(token)
		if err != nil {
			return st, textReply(msgBadKind)
		}
		return AwaitingWorkDescription{Title: s.Title, Kind: kind}, textReply(msgAskDescription)

	case AwaitingWorkDescription:
		description := strings.TrimSpace(ev.Text)
		if description == "" {
			return st, textReply(msgAskDescription)
		}
		id, err := e.works.Insert(ctx, catalog.Work{
			Kind:        s.Kind,
			Title:       s.Title,
			Description: description,
			CoverRef:    catalog.DefaultCoverRef,
		})
		if err != nil {
			return Idle{}, textReply(msgStorageApology)
		}
		return Idle{}, Reply{
			Text: fmt.Sprintf("Added %q to the catalog.", s.Title),
			Buttons: [][]Button{
				{{Label: s.Title, Route: EncodeRoute(RouteViewWork, id)}},
				{{Label: "⬅️ To the list", Route: RouteListWorks}},
			},
		}

	case AwaitingChapterLabel:
		label := strings.TrimSpace(ev.Text)
		if label == "" {
			return st, textReply(msgAskLabel)
		}
		return AwaitingChapterLink{WorkID: s.WorkID, Label: label}, textReply(msgAskLink)

	case AwaitingChapterLink:
		link := strings.TrimSpace(ev.Text)
		if link == "" {
			return st, textReply(msgAskLink)
		}
		_, err := e.chapters.Insert(ctx, catalog.Chapter{
			WorkID:     s.WorkID,
			UploaderID: ev.SenderID,
			Label:      s.Label,
			Link:       link,
		})
		if err != nil {
			return Idle{}, textReply(msgStorageApology)
		}
		return Idle{}, Reply{
			Text: fmt.Sprintf("Chapter %q added.", s.Label),
			Buttons: [][]Button{
				{{Label: "⬅️ Back to the work", Route: EncodeRoute(RouteViewWork, s.WorkID)}},
			},
		}
	}

	return Idle{}, textReply(msgUnknownAction)
}

// navigate handles commands and button presses. It always starts from a
// clean slate: any previous flow has been cancelled by the caller.
func (e *Engine) navigate(ctx context.Context, ev Event) (State, Reply) {
	switch ev.Kind {
	case EventCommand:
		switch ev.Command {
		case CommandStart:
			return Idle{}, Reply{
				Text:    msgStart,
				Buttons: [][]Button{{{Label: "📚 Works", Route: RouteListWorks}}},
			}
		case CommandListWorks:
			return e.listWorks(ctx)
		case CommandAddWork:
			return AwaitingWorkTitle{}, textReply(msgAskTitle)
		case CommandAddChapter:
			return e.startChapter(ctx, ev.Arg)
		case CommandDeleteWork:
			return e.deleteWork(ctx, ev.Arg)
		}

	case EventCallback:
		switch ev.Route {
		case RouteListWorks:
			return e.listWorks(ctx)
		case RouteViewWork:
			return e.viewWork(ctx, ev.Arg)
		case RouteViewChapter:
			return e.viewChapter(ctx, ev.Arg)
		case RouteAddWork:
			return AwaitingWorkTitle{}, textReply(msgAskTitle)
		case RouteAddChapter:
			return e.startChapter(ctx, ev.Arg)
		case RouteDeleteWork:
			return e.deleteWork(ctx, ev.Arg)
		}
		logger.FSM.Warn("unknown route",
			slog.String("event", "fsm.route"),
			slog.Int64("conversation_id", ev.ConversationID),
			slog.String("route", ev.Route),
		)
	}
	return Idle{}, textReply(msgUnknownAction)
}

func (e *Engine) listWorks(ctx context.Context) (State, Reply) {
	works, err := e.works.List(ctx)
	if err != nil {
		return Idle{}, textReply(msgStorageApology)
	}

	var rows [][]Button
	for _, w := range works {
		rows = append(rows, []Button{{Label: w.Title, Route: EncodeRoute(RouteViewWork, *w.ID)}})
	}
	rows = append(rows, []Button{{Label: "➕ Add work", Route: RouteAddWork}})

	text := "Works in the catalog:"
	if len(works) == 0 {
		text = "The catalog is empty so far."
	}
	return Idle{}, Reply{Text: text, Buttons: rows}
}

func (e *Engine) viewWork(ctx context.Context, id int64) (State, Reply) {
	w, err := e.works.GetByID(ctx, id)
	if errors.Is(err, catalog.ErrNotFound) {
		return Idle{}, textReply(msgWorkNotFound)
	}
	if err != nil {
		return Idle{}, textReply(msgStorageApology)
	}

	chapters, err := e.chapters.ListByWork(ctx, id)
	if err != nil {
		return Idle{}, textReply(msgStorageApology)
	}

	var rows [][]Button
	for _, ch := range chapters {
		rows = append(rows, []Button{{Label: ch.Label, Route: EncodeRoute(RouteViewChapter, *ch.ID)}})
	}
	rows = append(rows,
		[]Button{
			{Label: "➕ Add chapter", Route: EncodeRoute(RouteAddChapter, id)},
			{Label: "🗑 Delete work", Route: EncodeRoute(RouteDeleteWork, id)},
		},
		[]Button{{Label: "⬅️ To the list", Route: RouteListWorks}},
	)

	text := fmt.Sprintf("%s (%s)\n%s\n\nChapters: %d", w.Title, w.Kind, w.Description, len(chapters))
	return Idle{}, Reply{Text: text, Buttons: rows}
}

func (e *Engine) viewChapter(ctx context.Context, id int64) (State, Reply) {
	ch, err := e.chapters.GetByID(ctx, id)
	if errors.Is(err, catalog.ErrNotFound) {
		return Idle{}, textReply(msgChapterMissing)
	}
	if err != nil {
		return Idle{}, textReply(msgStorageApology)
	}
	return Idle{}, Reply{
		Text: fmt.Sprintf("Chapter %s\n%s", ch.Label, ch.Link),
		Buttons: [][]Button{
			{{Label: "⬅️ Back to the work", Route: EncodeRoute(RouteViewWork, ch.WorkID)}},
		},
	}
}

func (e *Engine) startChapter(ctx context.Context, workID int64) (State, Reply) {
	// Confirm the parent still exists before entering the flow, so the user
	// is not walked through two steps only to hit a missing work.
	_, err := e.works.GetByID(ctx, workID)
	if errors.Is(err, catalog.ErrNotFound) {
		return Idle{}, textReply(msgWorkNotFound)
	}
	if err != nil {
		return Idle{}, textReply(msgStorageApology)
	}
	return AwaitingChapterLabel{WorkID: workID}, textReply(msgAskLabel)
}

func (e *Engine) deleteWork(ctx context.Context, id int64) (State, Reply) {
	// Chapters of the work stay in place: deletion does not cascade.
	if err := e.works.Delete(ctx, id); err != nil {
		return Idle{}, textReply(msgStorageApology)
	}
	return Idle{}, Reply{
		Text:    "The work has been removed from the catalog.",
		Buttons: [][]Button{{{Label: "⬅️ To the list", Route: RouteListWorks}}},
	}
}
