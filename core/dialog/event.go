// Package dialog implements the conversation engine: inbound events are
// matched against the per-conversation finite state machine, repositories
// are called at terminal steps, and a reply is produced for the transport.
package dialog

// EventKind discriminates the inbound event variants.
type EventKind int

const (
	// EventText is a free-text message.
	EventText EventKind = iota
	// EventCommand is an already-decoded bot command.
	EventCommand
	// EventCallback is a button press carrying a route token.
	EventCallback
)

// Command enumerates the decoded bot commands the engine understands.
type Command int

const (
	// CommandStart shows the main menu.
	CommandStart Command = iota
	// CommandListWorks lists the catalog.
	CommandListWorks
	// CommandAddWork starts the guided work creation flow.
	CommandAddWork
	// CommandAddChapter starts the chapter creation flow for the work in Arg.
	CommandAddChapter
	// CommandDeleteWork deletes the work in Arg.
	CommandDeleteWork
)

// Event is one inbound update from the transport. Exactly the fields of the
// active Kind are meaningful.
type Event struct {
	ConversationID int64
	SenderID       int64

	Kind    EventKind
	Text    string  // EventText
	Command Command // EventCommand
	Route   string  // EventCallback route tag
	Arg     int64   // integer argument of a command or callback
	HasArg  bool
}

// TextEvent builds a free-text event.
func TextEvent(conversationID, senderID int64, text string) Event {
	return Event{ConversationID: conversationID, SenderID: senderID, Kind: EventText, Text: text}
}

// CommandEvent builds a command event without an argument.
func CommandEvent(conversationID, senderID int64, cmd Command) Event {
	return Event{ConversationID: conversationID, SenderID: senderID, Kind: EventCommand, Command: cmd}
}

// CommandArgEvent builds a command event carrying an integer argument.
func CommandArgEvent(conversationID, senderID int64, cmd Command, arg int64) Event {
	return Event{ConversationID: conversationID, SenderID: senderID, Kind: EventCommand, Command: cmd, Arg: arg, HasArg: true}
}

// CallbackEvent builds a button-callback event from a split route token.
func CallbackEvent(conversationID, senderID int64, route string, arg int64, hasArg bool) Event {
	return Event{ConversationID: conversationID, SenderID: senderID, Kind: EventCallback, Route: route, Arg: arg, HasArg: hasArg}
}
