package portal

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"agrimate/app/agrimate/model"
	"agrimate/common/log"
)

type priceCache struct {
	Timestamp time.Time     `json:"timestamp"`
	Prices    []model.Price `json:"prices"`
	State     string        `json:"state"`
	District  string        `json:"district"`
}

// PricesManager runs the fetch, fallback, normalize, render, cache pipeline
// for crop prices.
type PricesManager struct {
	client *Client
	view   PriceView
	store  Storage

	mu  sync.Mutex
	seq uint64
}

func NewPricesManager(client *Client, view PriceView, store Storage) *PricesManager {
	return &PricesManager{client: client, view: view, store: store}
}

// Load fetches prices for a selection and renders them, degrading to the
// static table when the fetch fails. A newer Load supersedes an in-flight
// one: only the holder of the latest sequence token may render or cache.
func (m *PricesManager) Load(ctx context.Context, state, district string) {
	m.view.Loading()

	m.mu.Lock()
	m.seq++
	token := m.seq
	m.mu.Unlock()

	prices, err := m.client.FetchPrices(ctx, state, district)
	if err != nil {
		log.Logger().Debugf("price fetch failed, using fallback: %s", err.Error())
		prices = FallbackPrices(state, district)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if token != m.seq {
		return
	}
	if len(prices) == 0 {
		m.view.NoData()
	} else {
		m.view.RenderPrices(prices)
	}
	writeCache(m.store, PricesCacheKey, priceCache{
		Timestamp: time.Now(),
		Prices:    prices,
		State:     state,
		District:  district,
	})
}

// LoadCached renders the cached prices when they are still inside the 24h
// freshness window. It reports whether anything was rendered; a stale cache
// is ignored, not deleted.
func (m *PricesManager) LoadCached() bool {
	cached, ok := readCache[priceCache](m.store, PricesCacheKey)
	if !ok {
		return false
	}
	if time.Since(cached.Timestamp) >= PricesFreshFor {
		return false
	}
	if len(cached.Prices) == 0 {
		m.view.NoData()
	} else {
		m.view.RenderPrices(cached.Prices)
	}
	return true
}

// AutoRefresh reloads the same selection on a cron schedule until the context
// is cancelled.
func (m *PricesManager) AutoRefresh(ctx context.Context, spec, state, district string) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		m.Load(ctx, state, district)
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	log.SafeGo(func() {
		<-ctx.Done()
		c.Stop()
	}, log.WithName("prices-autorefresh"))
	return c, nil
}
