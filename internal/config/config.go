package config

import (
	"errors"
	"net/url"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	ErrEmptyToken = errors.New(
		"error getting CF_TELEGRAM_TOKEN: variable not specified or contains an empty string",
	)
	ErrEmptyURL = errors.New("error getting CF_DEST_URL: variable not specified or contains an empty string")
)

type Config struct {
	Env             string // Env is the current environment: local, dev, prod.
	URL             string // URL is the first catalog page.
	SiteOrigin      string // SiteOrigin completes relative itinerary links.
	StoragePath     string
	OutputDir       string
	PriceThreshold  int    // PriceThreshold is the highest price that is notified.
	DefaultCurrency string // DefaultCurrency is used when a card shows no currency.
	Schedule        string // Schedule is a cron spec for periodic runs.
	MaxPages        int    // MaxPages limits the traversal, 0 means no limit.
	Tg              Telegram
	Browser         Browser
}

type Telegram struct {
	Token   string        // Token is an unique telgram bot token.
	Timeout time.Duration // Timeout is a poller timeout duration.
}

type Browser struct {
	Headless      bool
	LoadTimeout   time.Duration // LoadTimeout bounds the first page load.
	NavTimeout    time.Duration // NavTimeout bounds each next-page navigation.
	ReadyTimeout  time.Duration // ReadyTimeout bounds the wait for listing cards.
	SettleDelay   time.Duration // SettleDelay is used instead of ReadySelector when it is empty.
	ReadySelector string
	NextSelector  string
}

// MustLoad loads the configuration from environment variables and returns a Config struct.
func MustLoad() *Config {
	// A missing .env is fine, variables may come from the environment.
	_ = godotenv.Load()

	// Automatically binds environment variables to config keys
	viper.SetEnvPrefix("CF")
	viper.AutomaticEnv()

	// optional args
	viper.SetDefault("ENV", "production")
	viper.SetDefault("STORAGE_PATH", "storage/cruise-flow.db")
	viper.SetDefault("OUTPUT_DIR", "output")
	viper.SetDefault("PRICE_THRESHOLD", 500) //nolint:mnd // default notification threshold in USD
	viper.SetDefault("DEFAULT_CURRENCY", "USD")
	viper.SetDefault("SCHEDULE", "*/15 * * * *")
	viper.SetDefault("MAX_PAGES", 0)
	viper.SetDefault("TELEGRAM_TIMEOUT", "15s")
	viper.SetDefault("BROWSER_HEADLESS", true)
	viper.SetDefault("BROWSER_LOAD_TIMEOUT", "60s")
	viper.SetDefault("BROWSER_NAV_TIMEOUT", "30s")
	viper.SetDefault("BROWSER_READY_TIMEOUT", "15s")
	viper.SetDefault("BROWSER_SETTLE_DELAY", "5s")
	viper.SetDefault("BROWSER_READY_SELECTOR", ".itinerary-card")
	viper.SetDefault("BROWSER_NEXT_SELECTOR", ".right-arrow")

	if viper.GetString("TELEGRAM_TOKEN") == "" {
		panic(ErrEmptyToken)
	}

	if viper.GetString("DEST_URL") == "" {
		panic(ErrEmptyURL)
	}

	origin := viper.GetString("SITE_ORIGIN")
	if origin == "" {
		origin = originOf(viper.GetString("DEST_URL"))
	}

	return &Config{
		Env:             viper.GetString("ENV"),
		URL:             viper.GetString("DEST_URL"),
		SiteOrigin:      origin,
		StoragePath:     viper.GetString("STORAGE_PATH"),
		OutputDir:       viper.GetString("OUTPUT_DIR"),
		PriceThreshold:  viper.GetInt("PRICE_THRESHOLD"),
		DefaultCurrency: viper.GetString("DEFAULT_CURRENCY"),
		Schedule:        viper.GetString("SCHEDULE"),
		MaxPages:        viper.GetInt("MAX_PAGES"),
		Tg: Telegram{
			Token:   viper.GetString("TELEGRAM_TOKEN"),
			Timeout: viper.GetDuration("TELEGRAM_TIMEOUT"),
		},
		Browser: Browser{
			Headless:      viper.GetBool("BROWSER_HEADLESS"),
			LoadTimeout:   viper.GetDuration("BROWSER_LOAD_TIMEOUT"),
			NavTimeout:    viper.GetDuration("BROWSER_NAV_TIMEOUT"),
			ReadyTimeout:  viper.GetDuration("BROWSER_READY_TIMEOUT"),
			SettleDelay:   viper.GetDuration("BROWSER_SETTLE_DELAY"),
			ReadySelector: viper.GetString("BROWSER_READY_SELECTOR"),
			NextSelector:  viper.GetString("BROWSER_NEXT_SELECTOR"),
		},
	}
}

// originOf returns scheme://host of the raw URL or an empty string.
func originOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}

	return u.Scheme + "://" + u.Host
}
