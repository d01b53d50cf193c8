package config_test

import (
	"testing"
	"time"

	"github.com/Houeta/cruise-flow/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestMustLoad(t *testing.T) {
	t.Run("error - empty required env variable", func(t *testing.T) {
		t.Setenv("CF_TELEGRAM_TOKEN", "")

		assert.PanicsWithError(t, config.ErrEmptyToken.Error(), func() {
			config.MustLoad()
		})
	})

	t.Run("error - empty destination url", func(t *testing.T) {
		t.Setenv("CF_TELEGRAM_TOKEN", "telegramToken")
		t.Setenv("CF_DEST_URL", "")

		assert.PanicsWithError(t, config.ErrEmptyURL.Error(), func() {
			config.MustLoad()
		})
	})

	t.Run("success", func(t *testing.T) {
		t.Setenv("CF_ENV", "local")
		t.Setenv("CF_TELEGRAM_TOKEN", "telegramToken")
		t.Setenv("CF_DEST_URL", "https://www.msccruceros.com.ar/ofertas-cruceros/cruceros-a-brasil?page=1")
		t.Setenv("CF_STORAGE_PATH", "some/path/to/db")
		t.Setenv("CF_PRICE_THRESHOLD", "650")

		cfg := config.MustLoad()

		assert.Equal(t, "local", cfg.Env)
		assert.Equal(t, 15*time.Second, cfg.Tg.Timeout)
		assert.Equal(t, "telegramToken", cfg.Tg.Token)
		assert.Equal(t, "https://www.msccruceros.com.ar/ofertas-cruceros/cruceros-a-brasil?page=1", cfg.URL)
		assert.Equal(t, "https://www.msccruceros.com.ar", cfg.SiteOrigin)
		assert.Equal(t, "some/path/to/db", cfg.StoragePath)
		assert.Equal(t, 650, cfg.PriceThreshold)
		assert.Equal(t, "USD", cfg.DefaultCurrency)
		assert.Equal(t, "*/15 * * * *", cfg.Schedule)
		assert.True(t, cfg.Browser.Headless)
		assert.Equal(t, 60*time.Second, cfg.Browser.LoadTimeout)
		assert.Equal(t, 30*time.Second, cfg.Browser.NavTimeout)
		assert.Equal(t, ".itinerary-card", cfg.Browser.ReadySelector)
		assert.Equal(t, ".right-arrow", cfg.Browser.NextSelector)
	})

	t.Run("explicit site origin", func(t *testing.T) {
		t.Setenv("CF_TELEGRAM_TOKEN", "telegramToken")
		t.Setenv("CF_DEST_URL", "https://example.com/catalog")
		t.Setenv("CF_SITE_ORIGIN", "https://cdn.example.com")

		cfg := config.MustLoad()

		assert.Equal(t, "https://cdn.example.com", cfg.SiteOrigin)
	})
}
