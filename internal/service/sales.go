// Package service holds the request orchestrator: the pipeline that
// turns an inbound period request into exactly one success or failure
// outcome.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"

	"github.com/thibautrey/PebbleShopApp/internal/currency"
	"github.com/thibautrey/PebbleShopApp/internal/domain/models"
	"github.com/thibautrey/PebbleShopApp/internal/logger"
	"github.com/thibautrey/PebbleShopApp/internal/storage"
	"github.com/thibautrey/PebbleShopApp/internal/timerange"
)

// ErrMissingConfiguration is the terminal outcome for requests arriving
// before the store domain and token are configured. No network call is
// made in that case, and no placeholder total is served.
var ErrMissingConfiguration = errors.New("Missing store domain/token (configure settings)")

// ShopifyGateway is the slice of the Shopify client the orchestrator
// needs; narrowed for testability.
type ShopifyGateway interface {
	ShopCurrency(ctx context.Context, domain, token string) (string, error)
	SumOrderTotals(ctx context.Context, domain, token string, rng models.DateRange) (decimal.Decimal, error)
}

// SalesService defines the business operations behind the API surface.
type SalesService interface {
	// GetSales answers "what were my sales for this period" from cache or
	// a fresh fetch. Every returned error is terminal for the request.
	GetSales(ctx context.Context, period models.Period) (models.SalesTotal, error)

	// Settings returns the persisted connection record.
	Settings() (models.Settings, error)

	// UpdateSettings persists a new connection record and invalidates the
	// whole result cache (best effort).
	UpdateSettings(in models.Settings) (models.Settings, error)
}

type salesService struct {
	settings storage.SettingsStore
	cache    storage.SalesCache
	shop     ShopifyGateway

	// flight coalesces concurrent requests for the same store/period so a
	// burst of identical watch taps costs one upstream fetch.
	flight singleflight.Group

	// now is captured once per request; injected for deterministic tests.
	now func() time.Time
}

// NewSalesService wires the orchestrator from its injected collaborators.
func NewSalesService(settings storage.SettingsStore, cache storage.SalesCache, shop ShopifyGateway) SalesService {
	return &salesService{
		settings: settings,
		cache:    cache,
		shop:     shop,
		now:      time.Now,
	}
}

func (s *salesService) GetSales(ctx context.Context, period models.Period) (models.SalesTotal, error) {
	cfg, err := s.settings.LoadSettings()
	if err != nil {
		return models.SalesTotal{}, err
	}
	if !cfg.Configured() {
		return models.SalesTotal{}, ErrMissingConfiguration
	}

	key := storage.CacheKey(cfg, period)
	v, err, shared := s.flight.Do(key, func() (any, error) {
		// The fetch is shared by every coalesced caller, so it must not die
		// with whichever request happened to start it. The client's own
		// per-request timeout still bounds each upstream call.
		return s.lookup(context.WithoutCancel(ctx), cfg, period, key)
	})
	if err != nil {
		return models.SalesTotal{}, err
	}
	if shared {
		logger.L().Debug().Str("key", key).Msg("request coalesced with in-flight fetch")
	}
	return v.(models.SalesTotal), nil
}

// lookup is the cache-or-fetch body executed once per in-flight key.
func (s *salesService) lookup(ctx context.Context, cfg models.Settings, period models.Period, key string) (models.SalesTotal, error) {
	if entry, err := s.cache.GetCached(key); err == nil && entry != nil {
		logger.L().Debug().Str("key", key).Msg("serving from cache")
		return models.SalesTotal{Total: entry.Total, Currency: entry.Currency}, nil
	} else if err != nil {
		// A broken cache read degrades to a fetch, never to a failure.
		logger.L().Warn().Err(err).Str("key", key).Msg("cache read failed")
	}

	rng := timerange.Compute(period, s.now(), cfg.Timezone)

	code, err := s.shop.ShopCurrency(ctx, cfg.Domain, cfg.Token)
	if err != nil {
		return models.SalesTotal{}, err
	}
	sum, err := s.shop.SumOrderTotals(ctx, cfg.Domain, cfg.Token, rng)
	if err != nil {
		return models.SalesTotal{}, err
	}

	result := models.SalesTotal{
		Total:    sum.StringFixed(2),
		Currency: currency.Symbol(code),
	}

	// Best effort: a cache write failure must never abort a successful fetch.
	if err := s.cache.PutCached(key, result.Total, result.Currency); err != nil {
		logger.L().Warn().Err(err).Str("key", key).Msg("cache write failed")
	}

	logger.L().Info().
		Str("period", period.String()).
		Str("range_start", rng.Start).
		Str("range_end", rng.End).
		Str("total", result.Total).
		Msg("sales fetched")

	return result, nil
}

func (s *salesService) Settings() (models.Settings, error) {
	return s.settings.LoadSettings()
}

func (s *salesService) UpdateSettings(in models.Settings) (models.Settings, error) {
	saved, err := s.settings.SaveSettings(in)
	if err != nil {
		return models.Settings{}, err
	}

	// Stale totals for the previous store must not survive a reconfigure.
	// Best effort: the new settings are already durable.
	if err := s.cache.ClearCache(); err != nil {
		logger.L().Warn().Err(err).Msg("cache clear failed after settings change")
	}

	logger.L().Info().Str("domain", saved.Domain).Msg("settings saved")
	return saved, nil
}
