// Package notifier fans new offers out to the subscribers.
package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/Houeta/cruise-flow/internal/models"
)

// Sender delivers one text message to one chat.
type Sender interface {
	Send(ctx context.Context, chatID int64, text string) error
}

type Notifier struct {
	log        *slog.Logger
	sender     Sender
	catalogURL string
}

// NewNotifier creates a Notifier. catalogURL is linked for offers without an
// itinerary URL.
func NewNotifier(log *slog.Logger, sender Sender, catalogURL string) *Notifier {
	return &Notifier{log: log, sender: sender, catalogURL: catalogURL}
}

// Notify sends every addition to every subscriber, sequentially. A failed send
// is logged and the fan-out goes on. An addition is committed once all its
// sends were attempted; the committed additions are returned. Cancellation is
// honoured between additions only.
func (n *Notifier) Notify(ctx context.Context, additions []models.Offer, subscribers []int64) []models.Offer {
	const opn = "notifier.Notify"
	log := n.log.With("op", opn)

	committed := make([]models.Offer, 0, len(additions))

	for _, offer := range additions {
		if err := ctx.Err(); err != nil {
			log.WarnContext(ctx, "Notification interrupted", "committed", len(committed), "error", err)
			break
		}

		text := FormatOffer(offer, n.catalogURL)
		failed := 0
		for _, chatID := range subscribers {
			if err := n.sender.Send(ctx, chatID, text); err != nil {
				failed++
				log.ErrorContext(
					ctx,
					"failed to deliver offer",
					"chat_id", chatID,
					"destination", offer.Destination,
					"error", err,
				)
			}
		}

		log.InfoContext(
			ctx,
			"Offer notified",
			"destination", offer.Destination,
			"price", offer.Price,
			"subscribers", len(subscribers),
			"failed", failed,
		)
		committed = append(committed, offer)
	}

	return committed
}

// FormatOffer renders the message announcing a new offer.
func FormatOffer(offer models.Offer, catalogURL string) string {
	var b strings.Builder

	b.WriteString("¡Nueva oferta encontrada!\n\n")
	fmt.Fprintf(&b, "🚢 Destino: %s\n", offer.Destination)
	fmt.Fprintf(&b, "⏱ Duración: %s\n", offer.Duration)
	fmt.Fprintf(&b, "🛳 Barco: %s\n", offer.Ship)
	fmt.Fprintf(&b, "🌊 Puerto de salida: %s\n", offer.DeparturePort)
	fmt.Fprintf(&b, "💰 Precio: %d %s\n", offer.Price, offer.Currency)
	fmt.Fprintf(&b, "📅 Fechas disponibles: %s\n", offer.JoinedDates())
	if offer.Promotion != nil {
		fmt.Fprintf(&b, "🎁 Promoción: %s\n", *offer.Promotion)
	}
	fmt.Fprintf(&b, "🔗 Ver más: %s", offerLink(offer, catalogURL))

	return b.String()
}

// FormatOfferList renders the currently notified offers.
func FormatOfferList(offers []models.Offer, threshold int) string {
	if len(offers) == 0 {
		return fmt.Sprintf("❌ No hay ofertas activas menores o iguales a $%d en este momento.", threshold)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📢 Ofertas actuales menores o iguales a $%d:\n", threshold)
	for idx, o := range offers {
		fmt.Fprintf(&b, "\n%d. %s\n", idx+1, o.Destination)
		fmt.Fprintf(&b, "   💰 Precio: %d %s\n", o.Price, o.Currency)
		fmt.Fprintf(&b, "   ⏱ Duración: %s\n", o.Duration)
		fmt.Fprintf(&b, "   🛳 Barco: %s\n", o.Ship)
		fmt.Fprintf(&b, "   🌊 Puerto: %s\n", o.DeparturePort)
		fmt.Fprintf(&b, "   📅 Fechas: %s\n", o.JoinedDates())
	}

	return b.String()
}

// offerLink returns the itinerary URL, or the catalog page the offer was
// found on.
func offerLink(offer models.Offer, catalogURL string) string {
	if offer.ItineraryURL != nil {
		return *offer.ItineraryURL
	}

	u, err := url.Parse(catalogURL)
	if err != nil {
		return catalogURL
	}

	query := u.Query()
	query.Set("page", strconv.Itoa(offer.Page))
	u.RawQuery = query.Encode()

	return u.String()
}
