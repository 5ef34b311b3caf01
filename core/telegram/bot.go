// Package telegram adapts the dialogue engine to the Telegram transport
// using telebot. It decodes updates into engine events, renders replies as
// messages with inline keyboards, and runs the long-poll loop.
package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tele "gopkg.in/telebot.v4"

	"shelfbot/core/dialog"
	"shelfbot/core/logger"
)

// Options configure the bot runtime.
type Options struct {
	Token                  string
	LongPollTimeoutSeconds int

	Engine *dialog.Engine
	Sender *Sender
}

type bot struct {
	engine *dialog.Engine
	sender *Sender
}

// Run composes and runs the Telegram bot until the provided context is done.
func Run(ctx context.Context, opts Options) error {
	if opts.Engine == nil {
		return fmt.Errorf("telegram: nil engine provided")
	}

	timeout := 10 * time.Second
	if opts.LongPollTimeoutSeconds > 0 {
		timeout = time.Duration(opts.LongPollTimeoutSeconds) * time.Second
	}

	b, err := tele.NewBot(tele.Settings{
		Token:  opts.Token,
		Poller: &tele.LongPoller{Timeout: timeout},
	})
	if err != nil {
		return fmt.Errorf("telegram: bot initialization failed: %w", err)
	}

	app := &bot{engine: opts.Engine, sender: opts.Sender}

	b.Use(Recover, Logging)

	b.Handle("/start", app.command(dialog.CommandStart))
	b.Handle("/works", app.command(dialog.CommandListWorks))
	b.Handle("/add", app.command(dialog.CommandAddWork))
	b.Handle(tele.OnText, app.onText)
	b.Handle(tele.OnCallback, app.onCallback)

	if err := b.SetCommands([]tele.Command{
		{Text: "/works", Description: "Browse the catalog"},
		{Text: "/add", Description: "Add a new work"},
	}); err != nil {
		logger.TG.Warn("set commands failed",
			slog.String("event", "tg.commands"),
			slog.String("err", err.Error()),
		)
	}

	logger.TG.Info("polling mode",
		slog.String("event", "mode"),
		slog.Duration("timeout", timeout),
	)

	done := make(chan struct{})
	go func() {
		b.Start()
		close(done)
	}()

	select {
	case <-ctx.Done():
		b.Stop()
		<-done
	case <-done:
	}
	return nil
}

func (b *bot) command(cmd dialog.Command) tele.HandlerFunc {
	return func(c tele.Context) error {
		conv, sender := ids(c)
		return b.deliver(c, b.engine.Handle(context.Background(), dialog.CommandEvent(conv, sender, cmd)))
	}
}

func (b *bot) onText(c tele.Context) error {
	conv, sender := ids(c)
	return b.deliver(c, b.engine.Handle(context.Background(), dialog.TextEvent(conv, sender, c.Text())))
}

func (b *bot) onCallback(c tele.Context) error {
	_ = c.Respond()

	tag, arg, hasArg := dialog.SplitRoute(CallbackToken(c.Callback()))
	conv, sender := ids(c)
	return b.deliver(c, b.engine.Handle(context.Background(), dialog.CallbackEvent(conv, sender, tag, arg, hasArg)))
}

// deliver sends a dialogue reply, preferring the async sender so the handler
// returns as soon as the engine has committed the new conversation state.
func (b *bot) deliver(c tele.Context, reply dialog.Reply) error {
	send := func() error {
		if kb := InlineKeyboard(reply.Buttons); kb != nil {
			return c.Send(reply.Text, kb)
		}
		return c.Send(reply.Text)
	}

	if b.sender == nil {
		return send()
	}
	if err := b.sender.Enqueue(context.Background(), send); err != nil {
		logger.TG.Warn("queue fallback",
			slog.String("event", "send.fallback"),
			slog.String("err", err.Error()),
		)
		return send()
	}
	return nil
}

func ids(c tele.Context) (conversationID, senderID int64) {
	if chat := c.Chat(); chat != nil {
		conversationID = chat.ID
	}
	if user := c.Sender(); user != nil {
		senderID = user.ID
	}
	return conversationID, senderID
}
