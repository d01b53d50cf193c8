package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Houeta/cruise-flow/internal/models"
)

// GetSeenOffers returns the notified offers in the order they were stored.
func (r *Repository) GetSeenOffers(ctx context.Context) ([]models.Offer, error) {
	const opn = "repository.sqlite.GetSeenOffers"

	rows, err := r.db.QueryContext(
		ctx,
		`SELECT destination, duration, ship, departure_port, price, currency,
			available_dates, promotion, itinerary_url, page
		FROM seen_offers ORDER BY position`,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get seen offers: %w", opn, err)
	}
	defer rows.Close()

	offers := make([]models.Offer, 0)
	for rows.Next() {
		var (
			o         models.Offer
			dates     string
			promotion sql.NullString
			url       sql.NullString
		)
		err = rows.Scan(
			&o.Destination, &o.Duration, &o.Ship, &o.DeparturePort, &o.Price, &o.Currency,
			&dates, &promotion, &url, &o.Page,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan offer: %w", opn, err)
		}

		if err = json.Unmarshal([]byte(dates), &o.AvailableDates); err != nil {
			return nil, fmt.Errorf("%s: failed to decode available dates of %q: %w", opn, o.Destination, err)
		}
		if o.AvailableDates == nil {
			o.AvailableDates = []string{}
		}
		o.Promotion = fromNull(promotion)
		o.ItineraryURL = fromNull(url)

		offers = append(offers, o)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows iteration error: %w", opn, err)
	}

	return offers, nil
}

// ReplaceSeenOffers atomically overwrites the stored offers.
func (r *Repository) ReplaceSeenOffers(ctx context.Context, offers []models.Offer) error {
	const opn = "repository.sqlite.ReplaceSeenOffers"

	tx, err := r.db.BeginTx(ctx, nil) //nolint:varnamelen // tx its a default naming for transaction
	if err != nil {
		return fmt.Errorf("%s: failed to begin transaction: %w", opn, err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit returns sql.ErrTxDone

	if _, err = tx.ExecContext(ctx, "DELETE FROM seen_offers"); err != nil {
		return fmt.Errorf("%s: failed to delete old offers: %w", opn, err)
	}

	stmt, err := tx.PrepareContext(
		ctx,
		`INSERT INTO seen_offers (position, destination, duration, ship, departure_port, price,
			currency, available_dates, promotion, itinerary_url, page)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("%s: failed to prepare insert statement: %w", opn, err)
	}
	defer stmt.Close()

	for idx, o := range offers {
		dates, mErr := json.Marshal(nonNil(o.AvailableDates))
		if mErr != nil {
			return fmt.Errorf("%s: failed to encode available dates: %w", opn, mErr)
		}

		_, err = stmt.ExecContext(
			ctx,
			idx, o.Destination, o.Duration, o.Ship, o.DeparturePort, o.Price,
			o.Currency, string(dates), toNull(o.Promotion), toNull(o.ItineraryURL), o.Page,
		)
		if err != nil {
			return fmt.Errorf("%s: failed to insert offer %q: %w", opn, o.Destination, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%s: failed to commit transaction: %w", opn, err)
	}

	return nil
}

func fromNull(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String

	return &v
}

func toNull(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}

	return sql.NullString{String: *s, Valid: true}
}

func nonNil(dates []string) []string {
	if dates == nil {
		return []string{}
	}

	return dates
}
