package telegram

import (
	tele "gopkg.in/telebot.v4"

	"shelfbot/core/dialog"
)

// InlineKeyboard renders dialogue reply buttons as a telebot inline keyboard.
// Route tokens travel verbatim in the callback data. Returns nil for a
// button-less reply so callers can send plain text.
func InlineKeyboard(rows [][]dialog.Button) *tele.ReplyMarkup {
	if len(rows) == 0 {
		return nil
	}
	inline := make([][]tele.InlineButton, len(rows))
	for i, row := range rows {
		r := make([]tele.InlineButton, len(row))
		for j, b := range row {
			r[j] = tele.InlineButton{Text: b.Label, Data: b.Route}
		}
		inline[i] = r
	}
	return &tele.ReplyMarkup{InlineKeyboard: inline}
}
