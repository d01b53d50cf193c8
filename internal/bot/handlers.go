package bot

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/Houeta/cruise-flow/internal/export"
	"github.com/Houeta/cruise-flow/internal/services/notifier"
	"gopkg.in/telebot.v4"
)

const (
	msgAlreadyRegistered = "Ya estás registrado para recibir notificaciones."
	msgRegisterFailed    = "❌ No se pudo completar el registro. Intentá de nuevo más tarde."
	msgUnregistered      = "Te has dado de baja de las notificaciones de ofertas."
	msgNotRegistered     = "No estabas registrado para recibir notificaciones."
	msgUnregisterFailed  = "❌ No se pudo completar la baja. Intentá de nuevo más tarde."
	msgNoRun             = "Todavía no se completó ninguna búsqueda."
	msgNoReport          = "Todavía no hay un reporte disponible."
	msgReportFailed      = "❌ No se pudo obtener el reporte."
)

// startHandler process command /start. A new subscriber gets an immediate check.
func (b *Bot) startHandler(c telebot.Context) error {
	chatID := c.Chat().ID
	b.log.InfoContext(b.ctx, "User started the bot", "username", c.Sender().Username, "chat_id", chatID)

	reply, isNew := b.register(b.ctx, chatID)
	if err := c.Send(reply); err != nil {
		return fmt.Errorf("failed to send registration reply: %w", err)
	}

	if isNew {
		b.runNow(b.ctx)
	}

	return nil
}

// stopHandler process command /stop.
func (b *Bot) stopHandler(c telebot.Context) error {
	if err := c.Send(b.unregister(b.ctx, c.Chat().ID)); err != nil {
		return fmt.Errorf("failed to send unsubscribe reply: %w", err)
	}

	return nil
}

// offersHandler process command /offers.
func (b *Bot) offersHandler(c telebot.Context) error {
	if err := c.Send(b.offersReply()); err != nil {
		return fmt.Errorf("failed to send offers: %w", err)
	}

	return nil
}

// statusHandler process command /status.
func (b *Bot) statusHandler(c telebot.Context) error {
	if err := c.Send(b.statusReply()); err != nil {
		return fmt.Errorf("failed to send status: %w", err)
	}

	return nil
}

// reportHandler process command /report by attaching the latest XLSX report.
func (b *Bot) reportHandler(c telebot.Context) error {
	path, reply := b.reportPath()
	if path == "" {
		if err := c.Send(reply); err != nil {
			return fmt.Errorf("failed to send report reply: %w", err)
		}
		return nil
	}

	doc := &telebot.Document{File: telebot.FromDisk(path), FileName: filepath.Base(path)}
	if err := c.Send(doc); err != nil {
		return fmt.Errorf("failed to send report: %w", err)
	}

	return nil
}

// register adds the chat and reports whether it was new. A storage failure
// gets its own reply, distinct from the already registered one.
func (b *Bot) register(ctx context.Context, chatID int64) (string, bool) {
	added, err := b.deps.Store.AddSubscriber(ctx, chatID)
	if err != nil {
		b.log.ErrorContext(ctx, "failed to register subscriber", "chat_id", chatID, "error", err)
		return msgRegisterFailed, false
	}

	if !added {
		return msgAlreadyRegistered, false
	}

	return fmt.Sprintf(
		"¡Te has registrado para recibir notificaciones de ofertas de cruceros! "+
			"Te avisaré cuando encuentre ofertas menores o iguales a $%d.",
		b.deps.Threshold,
	), true
}

func (b *Bot) unregister(ctx context.Context, chatID int64) string {
	removed, err := b.deps.Store.RemoveSubscriber(ctx, chatID)
	if err != nil {
		b.log.ErrorContext(ctx, "failed to unregister subscriber", "chat_id", chatID, "error", err)
		return msgUnregisterFailed
	}

	if !removed {
		return msgNotRegistered
	}

	return msgUnregistered
}

func (b *Bot) offersReply() string {
	return notifier.FormatOfferList(b.deps.Store.SeenOffers(), b.deps.Threshold)
}

func (b *Bot) statusReply() string {
	run, ok := b.deps.Store.LastRun()
	if !ok {
		return msgNoRun
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "🕒 Última búsqueda: %s\n", run.RunTimestamp.UTC().Format(time.DateTime+" MST"))
	fmt.Fprintf(&sb, "📄 Páginas procesadas: %d\n", run.PagesProcessed)
	fmt.Fprintf(&sb, "🚢 Ofertas encontradas: %d\n", run.TotalCount)
	fmt.Fprintf(&sb, "🔔 Ofertas notificadas vigentes: %d", len(b.deps.Store.SeenOffers()))
	if run.ErrorMessage != "" {
		fmt.Fprintf(&sb, "\n⚠️ Búsqueda incompleta: %s", run.ErrorMessage)
	}

	return sb.String()
}

// reportPath returns the report to attach, or the reply explaining why there
// is none.
func (b *Bot) reportPath() (string, string) {
	path, err := b.deps.Reports.LatestReport()
	switch {
	case err == nil:
		return path, ""
	case errors.Is(err, export.ErrNoReport):
		return "", msgNoReport
	default:
		b.log.Error("failed to locate report", "error", err)
		return "", msgReportFailed
	}
}

// runNow performs a check for a new subscriber. Failures are only logged.
func (b *Bot) runNow(ctx context.Context) {
	changes, err := b.deps.Runner.Run(ctx)
	if err != nil {
		b.log.ErrorContext(ctx, "registration check failed", "error", err)
		return
	}

	b.log.InfoContext(ctx, "Registration check finished", "added", len(changes.Added))
}
