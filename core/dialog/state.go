package dialog

import "shelfbot/core/catalog"

// State is the per-conversation FSM state. Each variant carries exactly the
// data accumulated so far for the in-progress multi-step operation, so a
// conversation can resume from any turn.
type State interface {
	stateName() string
}

// Idle means no operation is in progress; navigation is handled here.
type Idle struct{}

// AwaitingWorkTitle expects free text for the new work's title.
type AwaitingWorkTitle struct{}

// AwaitingWorkKind expects a kind token for the new work.
type AwaitingWorkKind struct {
	Title string
}

// AwaitingWorkDescription expects free text for the new work's description;
// receiving it triggers the insert.
type AwaitingWorkDescription struct {
	Title string
	Kind  catalog.WorkKind
}

// AwaitingChapterLabel expects free text for the new chapter's label.
type AwaitingChapterLabel struct {
	WorkID int64
}

// AwaitingChapterLink expects the chapter content URL; receiving it triggers
// the insert.
type AwaitingChapterLink struct {
	WorkID int64
	Label  string
}

func (Idle) stateName() string                    { return "idle" }
func (AwaitingWorkTitle) stateName() string       { return "awaiting_work_title" }
func (AwaitingWorkKind) stateName() string        { return "awaiting_work_kind" }
func (AwaitingWorkDescription) stateName() string { return "awaiting_work_description" }
func (AwaitingChapterLabel) stateName() string    { return "awaiting_chapter_label" }
func (AwaitingChapterLink) stateName() string     { return "awaiting_chapter_link" }
