package bot

import (
	"context"

	"github.com/Houeta/cruise-flow/internal/models"
	"gopkg.in/telebot.v4"
)

type API interface {
	// Handle lets you set the handler for some command name or one of the supported endpoints. It also applies middleware if such passed to the function.
	Handle(endpoint interface{}, h telebot.HandlerFunc, m ...telebot.MiddlewareFunc)
	// Start brings bot into motion by consuming incoming updates (see Bot.Updates channel).
	Start()
	// Stop gracefully shuts the poller down.
	Stop()

	Send(to telebot.Recipient, what interface{}, opts ...interface{}) (*telebot.Message, error)
}

// SubscriptionStore is the part of the state the commands read and change.
type SubscriptionStore interface {
	AddSubscriber(ctx context.Context, chatID int64) (bool, error)
	RemoveSubscriber(ctx context.Context, chatID int64) (bool, error)
	SeenOffers() []models.Offer
	LastRun() (models.RunSummary, bool)
}

// Runner starts a check, joining the one in progress if any.
type Runner interface {
	Run(ctx context.Context) (*models.Changes, error)
}

// ReportSource locates the latest XLSX report.
type ReportSource interface {
	LatestReport() (string, error)
}
