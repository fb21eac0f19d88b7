package portal

import (
	"encoding/json"
	"time"

	"agrimate/common/log"
)

const (
	PricesCacheKey  = "agrimate-prices-cache"
	WeatherCacheKey = "agrimate-weather-cache"
	MarketplaceKey  = "agrimate-marketplace"

	// Freshness windows. A cached entry older than its window is ignored on
	// read but left in place for the next successful load to overwrite.
	PricesFreshFor  = 24 * time.Hour
	WeatherFreshFor = time.Hour
)

func writeCache(store Storage, key string, v interface{}) {
	raw, err := json.Marshal(v)
	if err != nil {
		log.Logger().Errorf("marshal cache %s: %s", key, err.Error())
		return
	}
	store.Set(key, raw)
}

func readCache[T any](store Storage, key string) (T, bool) {
	var v T
	raw, ok := store.Get(key)
	if !ok {
		return v, false
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		log.Logger().Errorf("unmarshal cache %s: %s", key, err.Error())
		return v, false
	}
	return v, true
}
