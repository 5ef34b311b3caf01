package telegram

import (
	"strings"

	tele "gopkg.in/telebot.v4"
)

// CallbackToken extracts the route token from a callback.
//
// Buttons built by this bot carry the token verbatim. Buttons registered the
// telebot way are encoded as \f<unique>|<payload>; those collapse back into
// the <unique>:<payload> token shape.
func CallbackToken(cb *tele.Callback) string {
	if cb == nil {
		return ""
	}
	raw := strings.TrimPrefix(cb.Data, "\f")
	if unique, payload, found := strings.Cut(raw, "|"); found {
		unique = strings.TrimSpace(unique)
		if payload == "" {
			return unique
		}
		return unique + ":" + payload
	}
	return raw
}
