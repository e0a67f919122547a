package cmd

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/paseo-app/paseo-cli/internal/adapters/api"
	locationfile "github.com/paseo-app/paseo-cli/internal/adapters/location/file"
	locationstatic "github.com/paseo-app/paseo-cli/internal/adapters/location/static"
	walkerrender "github.com/paseo-app/paseo-cli/internal/adapters/render/walker"
	chainstore "github.com/paseo-app/paseo-cli/internal/adapters/secrets/chain"
	sessiontoml "github.com/paseo-app/paseo-cli/internal/adapters/session/toml"
	"github.com/paseo-app/paseo-cli/internal/application"
	"github.com/paseo-app/paseo-cli/internal/domain"
	"github.com/paseo-app/paseo-cli/internal/ports"
	"github.com/paseo-app/paseo-cli/internal/reporter"
)

const (
	defaultBaseURL     = "https://apimascotas.jmacboy.com/api"
	durationDefaultKey = "display.default_duration_minutes"
	priceHourKey       = "display.default_price_hour"
	locationFileKey    = "location.file"
	reportIntervalKey  = "report.interval"
)

type app struct {
	service       *application.Service
	reporter      *reporter.Reporter
	boardRenderer func(application.Board, walkerrender.RenderOptions) (string, error)
	baseURL       string
	defaults      domain.DisplayDefaults
	now           func() time.Time
}

func (a *app) renderOptions() walkerrender.RenderOptions {
	return walkerrender.RenderOptions{
		Now:      a.now(),
		Defaults: a.defaults,
		BaseURL:  a.baseURL,
	}
}

func wireApp() (*app, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg := viper.New()
	cfg.SetDefault(durationDefaultKey, 30)
	cfg.SetDefault(priceHourKey, "10")
	cfg.SetDefault(locationFileKey, filepath.Join(homeDir, ".paseo", "location"))
	cfg.SetDefault(reportIntervalKey, reporter.DefaultInterval.String())

	secretStore, err := chainstore.NewPassFirstWithFileFallback(filepath.Join(homeDir, ".paseo", "secrets"))
	if err != nil {
		return nil, fmt.Errorf("wire secret store chain: %w", err)
	}

	sessions, err := sessiontoml.NewStore(cfg, secretStore)
	if err != nil {
		return nil, fmt.Errorf("wire session store: %w", err)
	}

	baseURL := envOrDefault("PASEO_API_BASE_URL", defaultBaseURL)

	client, err := api.NewClient(api.Config{
		BaseURL:    baseURL,
		HTTPClient: http.DefaultClient,
	}, sessions)
	if err != nil {
		return nil, fmt.Errorf("wire api client: %w", err)
	}

	interval, err := time.ParseDuration(cfg.GetString(reportIntervalKey))
	if err != nil {
		return nil, fmt.Errorf("parse report interval: %w", err)
	}

	rep := reporter.New(client, sessions, locationSource(cfg), reporter.Config{
		Interval: interval,
		Notify: func(active bool) {
			if active {
				_, _ = fmt.Fprintln(os.Stderr, "location reporting started")
				return
			}
			_, _ = fmt.Fprintln(os.Stderr, "location reporting stopped")
		},
		Clock: ports.SystemClock{},
	})

	return &app{
		service:       application.NewService(client, sessions, rep, ports.SystemClock{}),
		reporter:      rep,
		boardRenderer: walkerrender.RenderBoard,
		baseURL:       baseURL,
		defaults: domain.DisplayDefaults{
			DurationMinutes: cfg.GetInt(durationDefaultKey),
			PriceHour:       cfg.GetString(priceHourKey),
		},
		now: time.Now,
	}, nil
}

// locationSource picks the position source: a fixed "lat,lon" pair from
// PASEO_LOCATION when set, otherwise the fix file an external GPS agent
// maintains.
func locationSource(cfg *viper.Viper) ports.LocationSource {
	if fixed := os.Getenv("PASEO_LOCATION"); fixed != "" {
		lat, lon, _ := strings.Cut(fixed, ",")
		return locationstatic.NewSource(strings.TrimSpace(lat), strings.TrimSpace(lon))
	}
	return locationfile.NewSource(cfg.GetString(locationFileKey))
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
