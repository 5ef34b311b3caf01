package telegram

import (
	"log/slog"
	"runtime/debug"
	"time"

	tele "gopkg.in/telebot.v4"

	"shelfbot/core/logger"
)

// Recover catches panics in handlers and prevents the bot from crashing.
func Recover(next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		defer func() {
			if r := recover(); r != nil {
				logger.TG.Error("panic recovered",
					slog.String("event", "tg.panic"),
					slog.Any("err", r),
					slog.String("stack", string(debug.Stack())),
				)
			}
		}()
		return next(c)
	}
}

// Logging writes one summary line per handled update, tagged with a
// correlation id derived from the update.
func Logging(next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		start := time.Now()

		var chatID, userID int64
		if chat := c.Chat(); chat != nil {
			chatID = chat.ID
		}
		if user := c.Sender(); user != nil {
			userID = user.ID
		}
		rid := logger.BuildRID(c.Update().ID, chatID, userID)

		err := next(c)

		attrs := []any{
			slog.String("event", "update.handled"),
			slog.String("rid", rid),
			slog.String("status", logger.Status(err)),
			slog.Duration("duration", logger.Took(start)),
		}
		if err != nil {
			attrs = append(attrs, slog.String("err", err.Error()))
		}
		logger.TG.Info("update handled", attrs...)
		return err
	}
}
