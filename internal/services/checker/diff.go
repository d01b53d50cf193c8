package checker

import "github.com/Houeta/cruise-flow/internal/models"

// Diff compares the scraped offers with the notified ones. Only offers priced
// at or below threshold are eligible. Retained keeps the notified entries whose
// key is still eligible, Added holds eligible offers never notified (one per
// key, first occurrence wins) and Dropped the notified entries that are gone.
// Disappearing offers produce no notification. Cards repeated within one
// scrape are announced once, not once per card.
func Diff(current, seen []models.Offer, threshold int) models.Changes {
	eligible := make(map[models.OfferKey]struct{}, len(current))
	for _, o := range current {
		if o.Price <= threshold {
			eligible[o.Key()] = struct{}{}
		}
	}

	changes := models.Changes{
		Added:    make([]models.Offer, 0),
		Retained: make([]models.Offer, 0),
		Dropped:  make([]models.Offer, 0),
	}

	seenKeys := make(map[models.OfferKey]struct{}, len(seen))
	for _, o := range seen {
		key := o.Key()
		seenKeys[key] = struct{}{}

		if _, ok := eligible[key]; ok {
			changes.Retained = append(changes.Retained, o)
		} else {
			changes.Dropped = append(changes.Dropped, o)
		}
	}

	for _, o := range current {
		if o.Price > threshold {
			continue
		}

		key := o.Key()
		if _, ok := seenKeys[key]; ok {
			continue
		}
		seenKeys[key] = struct{}{}
		changes.Added = append(changes.Added, o)
	}

	return changes
}
