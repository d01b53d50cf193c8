package store_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Houeta/cruise-flow/internal/models"
	"github.com/Houeta/cruise-flow/internal/repository"
	"github.com/Houeta/cruise-flow/internal/store"
	"github.com/Houeta/cruise-flow/test/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var brasil = models.Offer{Destination: "Brasil", Price: 480, AvailableDates: []string{"10/01"}}

func loadStore(t *testing.T, seen []models.Offer, chats []int64) (*store.Store, *mocks.Repository) {
	t.Helper()

	repo := mocks.NewRepository(t)
	repo.On("GetSeenOffers", mock.Anything).Return(seen, nil).Once()
	repo.On("GetSubscribedChats", mock.Anything).Return(chats, nil).Once()
	repo.On("GetLastRun", mock.Anything).Return(nil, repository.ErrStateNotFound).Once()

	st, err := store.Load(t.Context(), slog.New(slog.NewTextHandler(io.Discard, nil)), repo)
	require.NoError(t, err)

	return st, repo
}

func TestLoad(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("success with previous run", func(t *testing.T) {
		run := &models.RunSummary{RunTimestamp: time.Now(), TotalCount: 3, PagesProcessed: 1}
		repo := mocks.NewRepository(t)
		repo.On("GetSeenOffers", mock.Anything).Return([]models.Offer{brasil}, nil).Once()
		repo.On("GetSubscribedChats", mock.Anything).Return([]int64{1, 2}, nil).Once()
		repo.On("GetLastRun", mock.Anything).Return(run, nil).Once()

		st, err := store.Load(t.Context(), logger, repo)

		require.NoError(t, err)
		assert.Equal(t, []models.Offer{brasil}, st.SeenOffers())
		assert.Equal(t, []int64{1, 2}, st.Subscribers())
		got, ok := st.LastRun()
		assert.True(t, ok)
		assert.Equal(t, *run, got)
	})

	t.Run("no run recorded yet", func(t *testing.T) {
		st, _ := loadStore(t, []models.Offer{}, []int64{})

		_, ok := st.LastRun()
		assert.False(t, ok)
	})

	t.Run("seen offers error", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		repo.On("GetSeenOffers", mock.Anything).Return(nil, assert.AnError).Once()

		st, err := store.Load(t.Context(), logger, repo)

		assert.Nil(t, st)
		require.ErrorIs(t, err, assert.AnError)
	})

	t.Run("subscribers error", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		repo.On("GetSeenOffers", mock.Anything).Return([]models.Offer{}, nil).Once()
		repo.On("GetSubscribedChats", mock.Anything).Return(nil, assert.AnError).Once()

		_, err := store.Load(t.Context(), logger, repo)

		require.ErrorIs(t, err, assert.AnError)
	})

	t.Run("run state error", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		repo.On("GetSeenOffers", mock.Anything).Return([]models.Offer{}, nil).Once()
		repo.On("GetSubscribedChats", mock.Anything).Return([]int64{}, nil).Once()
		repo.On("GetLastRun", mock.Anything).Return(nil, assert.AnError).Once()

		_, err := store.Load(t.Context(), logger, repo)

		require.ErrorIs(t, err, assert.AnError)
	})
}

func TestAddSubscriber(t *testing.T) {
	t.Run("new subscriber is flushed", func(t *testing.T) {
		st, repo := loadStore(t, nil, []int64{1})
		repo.On("SubscribeChat", mock.Anything, int64(2)).Return(true, nil).Once()

		added, err := st.AddSubscriber(t.Context(), 2)

		require.NoError(t, err)
		assert.True(t, added)
		assert.Equal(t, []int64{1, 2}, st.Subscribers())
	})

	t.Run("existing subscriber is a no-op", func(t *testing.T) {
		st, repo := loadStore(t, nil, []int64{1})

		added, err := st.AddSubscriber(t.Context(), 1)

		require.NoError(t, err)
		assert.False(t, added)
		assert.Len(t, st.Subscribers(), 1)
		repo.AssertNotCalled(t, "SubscribeChat", mock.Anything, mock.Anything)
	})

	t.Run("flush failure leaves memory untouched", func(t *testing.T) {
		st, repo := loadStore(t, nil, []int64{1})
		repo.On("SubscribeChat", mock.Anything, int64(2)).Return(false, assert.AnError).Once()

		added, err := st.AddSubscriber(t.Context(), 2)

		require.ErrorIs(t, err, assert.AnError)
		assert.False(t, added)
		assert.Equal(t, []int64{1}, st.Subscribers())
	})
}

func TestRemoveSubscriber(t *testing.T) {
	t.Run("registered subscriber is removed", func(t *testing.T) {
		st, repo := loadStore(t, nil, []int64{1, 2, 3})
		repo.On("UnsubscribeChat", mock.Anything, int64(2)).Return(true, nil).Once()

		removed, err := st.RemoveSubscriber(t.Context(), 2)

		require.NoError(t, err)
		assert.True(t, removed)
		assert.Equal(t, []int64{1, 3}, st.Subscribers())
	})

	t.Run("unknown subscriber is a no-op", func(t *testing.T) {
		st, _ := loadStore(t, nil, []int64{1})

		removed, err := st.RemoveSubscriber(t.Context(), 9)

		require.NoError(t, err)
		assert.False(t, removed)
	})

	t.Run("flush failure", func(t *testing.T) {
		st, repo := loadStore(t, nil, []int64{1})
		repo.On("UnsubscribeChat", mock.Anything, int64(1)).Return(false, assert.AnError).Once()

		_, err := st.RemoveSubscriber(t.Context(), 1)

		require.ErrorIs(t, err, assert.AnError)
		assert.Equal(t, []int64{1}, st.Subscribers())
	})
}

func TestReplaceSeenOffers(t *testing.T) {
	uruguay := models.Offer{Destination: "Uruguay", Price: 390}

	t.Run("success", func(t *testing.T) {
		st, repo := loadStore(t, []models.Offer{brasil}, nil)
		repo.On("ReplaceSeenOffers", mock.Anything, []models.Offer{uruguay}).Return(nil).Once()

		require.NoError(t, st.ReplaceSeenOffers(t.Context(), []models.Offer{uruguay}))
		assert.Equal(t, []models.Offer{uruguay}, st.SeenOffers())
	})

	t.Run("flush failure still updates memory", func(t *testing.T) {
		st, repo := loadStore(t, []models.Offer{brasil}, nil)
		repo.On("ReplaceSeenOffers", mock.Anything, mock.Anything).Return(assert.AnError).Once()

		err := st.ReplaceSeenOffers(t.Context(), []models.Offer{uruguay})

		require.ErrorIs(t, err, assert.AnError)
		assert.Equal(t, []models.Offer{uruguay}, st.SeenOffers())
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		st, _ := loadStore(t, []models.Offer{brasil}, nil)

		offers := st.SeenOffers()
		offers[0].Destination = "changed"

		assert.Equal(t, "Brasil", st.SeenOffers()[0].Destination)
	})
}

func TestRecordRun(t *testing.T) {
	summary := models.RunSummary{RunTimestamp: time.Now(), TotalCount: 10, PagesProcessed: 2}

	t.Run("success", func(t *testing.T) {
		st, repo := loadStore(t, nil, nil)
		repo.On("SaveRun", mock.Anything, summary).Return(nil).Once()

		require.NoError(t, st.RecordRun(t.Context(), summary))
		got, ok := st.LastRun()
		assert.True(t, ok)
		assert.Equal(t, summary, got)
	})

	t.Run("flush failure", func(t *testing.T) {
		st, repo := loadStore(t, nil, nil)
		repo.On("SaveRun", mock.Anything, summary).Return(assert.AnError).Once()

		require.ErrorIs(t, st.RecordRun(t.Context(), summary), assert.AnError)
		_, ok := st.LastRun()
		assert.False(t, ok)
	})
}
