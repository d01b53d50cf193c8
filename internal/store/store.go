// Package store keeps the notified offers, the subscribers and the last run
// in memory and flushes every mutation to the repository.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/Houeta/cruise-flow/internal/models"
	"github.com/Houeta/cruise-flow/internal/repository"
)

// Repository is the durable storage behind the Store.
type Repository interface {
	GetSeenOffers(ctx context.Context) ([]models.Offer, error)
	ReplaceSeenOffers(ctx context.Context, offers []models.Offer) error
	SubscribeChat(ctx context.Context, chatID int64) (bool, error)
	UnsubscribeChat(ctx context.Context, chatID int64) (bool, error)
	GetSubscribedChats(ctx context.Context) ([]int64, error)
	GetLastRun(ctx context.Context) (*models.RunSummary, error)
	SaveRun(ctx context.Context, summary models.RunSummary) error
}

// Store is safe for concurrent use. Subscriber and run changes reach memory
// only after the repository accepted them. Seen offers are the exception, see
// ReplaceSeenOffers.
type Store struct {
	log  *slog.Logger
	repo Repository

	mu          sync.RWMutex
	seen        []models.Offer
	subscribers []int64
	lastRun     *models.RunSummary
}

// Load reads the persisted state once.
func Load(ctx context.Context, log *slog.Logger, repo Repository) (*Store, error) {
	const opn = "store.Load"

	seen, err := repo.GetSeenOffers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opn, err)
	}

	subscribers, err := repo.GetSubscribedChats(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opn, err)
	}

	lastRun, err := repo.GetLastRun(ctx)
	if err != nil && !errors.Is(err, repository.ErrStateNotFound) {
		return nil, fmt.Errorf("%s: %w", opn, err)
	}

	log.InfoContext(ctx, "State loaded", "op", opn, "seen_offers", len(seen), "subscribers", len(subscribers))

	return &Store{
		log:         log,
		repo:        repo,
		seen:        seen,
		subscribers: subscribers,
		lastRun:     lastRun,
	}, nil
}

// SeenOffers returns a copy of the notified offers.
func (s *Store) SeenOffers() []models.Offer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.seen)
}

// Subscribers returns a copy of the subscribed chat IDs.
func (s *Store) Subscribers() []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.subscribers)
}

// LastRun returns the summary of the last recorded run.
func (s *Store) LastRun() (models.RunSummary, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.lastRun == nil {
		return models.RunSummary{}, false
	}

	return *s.lastRun, true
}

// AddSubscriber registers chatID. It reports false when the chat was
// already registered.
func (s *Store) AddSubscriber(ctx context.Context, chatID int64) (bool, error) {
	const opn = "store.AddSubscriber"

	s.mu.Lock()
	defer s.mu.Unlock()

	if slices.Contains(s.subscribers, chatID) {
		return false, nil
	}

	if _, err := s.repo.SubscribeChat(ctx, chatID); err != nil {
		return false, fmt.Errorf("%s: %w", opn, err)
	}
	s.subscribers = append(s.subscribers, chatID)

	return true, nil
}

// RemoveSubscriber unregisters chatID. It reports false when the chat was
// not registered.
func (s *Store) RemoveSubscriber(ctx context.Context, chatID int64) (bool, error) {
	const opn = "store.RemoveSubscriber"

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.Index(s.subscribers, chatID)
	if idx < 0 {
		return false, nil
	}

	if _, err := s.repo.UnsubscribeChat(ctx, chatID); err != nil {
		return false, fmt.Errorf("%s: %w", opn, err)
	}
	s.subscribers = slices.Delete(s.subscribers, idx, idx+1)

	return true, nil
}

// ReplaceSeenOffers overwrites the notified offers. Memory is updated even
// when the write fails so offers already delivered are not sent again while
// storage is unavailable. The write error is still returned.
func (s *Store) ReplaceSeenOffers(ctx context.Context, offers []models.Offer) error {
	const opn = "store.ReplaceSeenOffers"

	s.mu.Lock()
	defer s.mu.Unlock()

	s.seen = slices.Clone(offers)
	if err := s.repo.ReplaceSeenOffers(ctx, offers); err != nil {
		return fmt.Errorf("%s: %w", opn, err)
	}

	return nil
}

// RecordRun stores the summary of a finished run.
func (s *Store) RecordRun(ctx context.Context, summary models.RunSummary) error {
	const opn = "store.RecordRun"

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.SaveRun(ctx, summary); err != nil {
		return fmt.Errorf("%s: %w", opn, err)
	}
	s.lastRun = &summary

	return nil
}
