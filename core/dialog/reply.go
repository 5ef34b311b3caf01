package dialog

// Button is one pressable control: a visible label plus the route token the
// transport echoes back when the button is pressed.
type Button struct {
	Label string
	Route string
}

// Reply is what the engine hands back to the transport for delivery.
// Buttons are rows of controls; an empty slice means a plain text reply.
type Reply struct {
	Text    string
	Buttons [][]Button
}

func textReply(text string) Reply {
	return Reply{Text: text}
}
