package bot

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gopkg.in/telebot.v4"
)

// Deps are the collaborators behind the bot commands.
type Deps struct {
	Store     SubscriptionStore
	Runner    Runner
	Reports   ReportSource
	Threshold int
}

// Bot contains the bot API instance and other information.
type Bot struct {
	bot  API
	log  *slog.Logger
	deps Deps
	ctx  context.Context //nolint:containedctx // handlers are invoked by telebot without a context
}

func NewBot(log *slog.Logger, token string, poller time.Duration) (*Bot, error) {
	bot, err := telebot.NewBot(telebot.Settings{
		Token:  token,
		Poller: &telebot.LongPoller{Timeout: poller},
		OnError: func(err error, c telebot.Context) {
			log.Error("telegram update failed", "op", "bot.OnError", "error", err, "update_id", updateID(c))
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Telegram bot: %w", err)
	}
	log.Info("Authorized on account", "account", bot.Me.Username)

	return &Bot{bot: bot, log: log, ctx: context.Background()}, nil
}

// Bind sets the command collaborators and registers the routes. It must be
// called before Start.
func (b *Bot) Bind(deps Deps) {
	b.deps = deps
	b.registerRoutes()
}

// Start launches the bot to listen for updates. It blocks until Stop.
func (b *Bot) Start(ctx context.Context) {
	b.ctx = ctx
	b.log.InfoContext(ctx, "Telegram bot is starting...")
	b.bot.Start()
}

// Stop gracefully stops the Telegram bot and logs the action.
func (b *Bot) Stop() {
	b.log.Info("Telegram bot is stopped...")
	b.bot.Stop()
}

// Send delivers a text message to a chat.
func (b *Bot) Send(ctx context.Context, chatID int64, text string) error {
	if _, err := b.bot.Send(telebot.ChatID(chatID), text); err != nil {
		return fmt.Errorf("failed to send message to chat %d: %w", chatID, err)
	}
	b.log.DebugContext(ctx, "Message sent", "chat_id", chatID)

	return nil
}

// registerRoutes configures all routes (commands).
func (b *Bot) registerRoutes() {
	b.bot.Handle("/start", b.startHandler)
	b.bot.Handle("/stop", b.stopHandler)
	b.bot.Handle("/offers", b.offersHandler)
	b.bot.Handle("/status", b.statusHandler)
	b.bot.Handle("/report", b.reportHandler)
}

func updateID(c telebot.Context) int {
	if c == nil {
		return 0
	}

	return c.Update().ID
}
