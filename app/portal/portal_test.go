package portal

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"agrimate/app/agrimate/model"
)

func TestNormalize(t *testing.T) {
	t.Run("bare list", func(t *testing.T) {
		got := Normalize[model.Price]([]byte(`[{"crop":"Rice","price":2500}]`))
		if len(got) != 1 || got[0].Crop != "Rice" {
			t.Errorf("want one Rice entry got %v", got)
		}
	})
	t.Run("envelope", func(t *testing.T) {
		got := Normalize[model.Price]([]byte(`{"success":true,"data":[{"crop":"Wheat"}]}`))
		if len(got) != 1 || got[0].Crop != "Wheat" {
			t.Errorf("want one Wheat entry got %v", got)
		}
	})
	t.Run("anything else becomes empty", func(t *testing.T) {
		for _, raw := range []string{`"text"`, `42`, `{"message":"nope"}`, `not json`, `null`} {
			got := Normalize[model.Price]([]byte(raw))
			if got == nil || len(got) != 0 {
				t.Errorf("%s: want empty list got %v", raw, got)
			}
		}
	})
}

func TestFallbackPrices(t *testing.T) {
	t.Run("exact district", func(t *testing.T) {
		got := FallbackPrices("tamil-nadu", "Chennai")
		if len(got) != 4 {
			t.Fatalf("want 4 Chennai entries got %d", len(got))
		}
	})
	t.Run("case-insensitive district", func(t *testing.T) {
		got := FallbackPrices("tamil-nadu", "chennai")
		if len(got) != 4 {
			t.Errorf("want 4 entries got %d", len(got))
		}
	})
	t.Run("unknown district widens to state union", func(t *testing.T) {
		got := FallbackPrices("punjab", "Nowhere")
		if len(got) != 5 {
			t.Errorf("want union of 5 punjab entries got %d", len(got))
		}
	})
	t.Run("unknown state lands on the default", func(t *testing.T) {
		got := FallbackPrices("atlantis", "")
		want := FallbackPrices("tamil-nadu", "Chennai")
		if len(got) != len(want) {
			t.Errorf("want the Chennai default got %d entries", len(got))
		}
	})
}

func TestFallbackSchemes(t *testing.T) {
	t.Run("state plus All India", func(t *testing.T) {
		got := FallbackSchemes("Tamil Nadu")
		if len(got) != 3 {
			t.Errorf("want 3 got %d", len(got))
		}
	})
	t.Run("other state gets only All India", func(t *testing.T) {
		got := FallbackSchemes("Punjab")
		for _, s := range got {
			if s.State[0] != model.AllIndia {
				t.Errorf("%s should not match Punjab", s.Name)
			}
		}
	})
}

// recordingView captures render calls in order.
type recordingView struct {
	mu     sync.Mutex
	events []string
	prices []model.Price
}

func (v *recordingView) record(e string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.events = append(v.events, e)
}

func (v *recordingView) Loading() { v.record("loading") }
func (v *recordingView) NoData()  { v.record("nodata") }
func (v *recordingView) RenderPrices(prices []model.Price) {
	v.mu.Lock()
	v.prices = prices
	v.mu.Unlock()
	v.record("render")
}

func (v *recordingView) last() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	if len(v.events) == 0 {
		return ""
	}
	return v.events[len(v.events)-1]
}

func TestPricesManagerLoad(t *testing.T) {
	t.Run("live fetch renders and caches", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("state") != "tamil-nadu" {
				t.Errorf("state not forwarded: %s", r.URL.RawQuery)
			}
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"success": true,
				"data":    []model.Price{{Crop: "Rice", Price: 2500}},
			})
		}))
		defer srv.Close()

		view := &recordingView{}
		store := NewMemStorage()
		m := NewPricesManager(NewClient(srv.URL), view, store)
		m.Load(context.Background(), "tamil-nadu", "Chennai")

		if view.last() != "render" {
			t.Fatalf("want render got %v", view.events)
		}
		if view.events[0] != "loading" {
			t.Errorf("loading must come first: %v", view.events)
		}
		cached, ok := readCache[priceCache](store, PricesCacheKey)
		if !ok || len(cached.Prices) != 1 {
			t.Errorf("cache not written: %+v", cached)
		}
		if cached.State != "tamil-nadu" || cached.District != "Chennai" {
			t.Errorf("filter state not cached: %+v", cached)
		}
	})

	t.Run("transport failure falls back and still caches fresh", func(t *testing.T) {
		view := &recordingView{}
		store := NewMemStorage()
		m := NewPricesManager(NewClient("http://127.0.0.1:1"), view, store)
		m.Load(context.Background(), "tamil-nadu", "Chennai")

		if view.last() != "render" {
			t.Fatalf("want fallback render got %v", view.events)
		}
		if len(view.prices) != 4 {
			t.Errorf("want the 4 Chennai fallback entries got %d", len(view.prices))
		}
		cached, ok := readCache[priceCache](store, PricesCacheKey)
		if !ok {
			t.Fatal("fallback result must still be cached")
		}
		if time.Since(cached.Timestamp) > time.Minute {
			t.Errorf("cache timestamp not fresh: %v", cached.Timestamp)
		}
	})

	t.Run("server error status falls back", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer srv.Close()

		view := &recordingView{}
		m := NewPricesManager(NewClient(srv.URL), view, NewMemStorage())
		m.Load(context.Background(), "karnataka", "Mysore")
		if view.last() != "render" || len(view.prices) != 1 {
			t.Errorf("want Mysore fallback got %v / %d", view.events, len(view.prices))
		}
	})

	t.Run("empty result renders no-data", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "data": []model.Price{}})
		}))
		defer srv.Close()

		view := &recordingView{}
		m := NewPricesManager(NewClient(srv.URL), view, NewMemStorage())
		m.Load(context.Background(), "tamil-nadu", "Chennai")
		if view.last() != "nodata" {
			t.Errorf("want nodata got %v", view.events)
		}
	})
}

func TestPricesManagerSupersededLoad(t *testing.T) {
	release := make(chan struct{})
	first := true
	var mu sync.Mutex
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		slow := first
		first = false
		mu.Unlock()
		if slow {
			<-release
			_ = json.NewEncoder(w).Encode([]model.Price{{Crop: "Stale"}})
			return
		}
		_ = json.NewEncoder(w).Encode([]model.Price{{Crop: "Fresh"}})
	}))
	defer srv.Close()

	view := &recordingView{}
	store := NewMemStorage()
	m := NewPricesManager(NewClient(srv.URL), view, store)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		m.Load(context.Background(), "tamil-nadu", "Chennai")
	}()
	// second load supersedes the first while it is blocked in flight
	time.Sleep(50 * time.Millisecond)
	m.Load(context.Background(), "tamil-nadu", "Madurai")
	close(release)
	wg.Wait()

	if len(view.prices) != 1 || view.prices[0].Crop != "Fresh" {
		t.Errorf("stale completion must not render: %v", view.prices)
	}
	cached, _ := readCache[priceCache](store, PricesCacheKey)
	if cached.District != "Madurai" {
		t.Errorf("stale completion must not cache: %+v", cached)
	}
}

func TestPricesManagerLoadCached(t *testing.T) {
	t.Run("fresh cache renders", func(t *testing.T) {
		view := &recordingView{}
		store := NewMemStorage()
		writeCache(store, PricesCacheKey, priceCache{
			Timestamp: time.Now().Add(-time.Hour),
			Prices:    []model.Price{{Crop: "Rice"}},
		})
		m := NewPricesManager(NewClient("http://127.0.0.1:1"), view, store)
		if !m.LoadCached() {
			t.Fatal("fresh cache should render")
		}
		if view.last() != "render" {
			t.Errorf("want render got %v", view.events)
		}
	})
	t.Run("stale cache ignored but kept", func(t *testing.T) {
		view := &recordingView{}
		store := NewMemStorage()
		writeCache(store, PricesCacheKey, priceCache{
			Timestamp: time.Now().Add(-25 * time.Hour),
			Prices:    []model.Price{{Crop: "Rice"}},
		})
		m := NewPricesManager(NewClient("http://127.0.0.1:1"), view, store)
		if m.LoadCached() {
			t.Fatal("stale cache must be ignored")
		}
		if len(view.events) != 0 {
			t.Errorf("nothing should render: %v", view.events)
		}
		if _, ok := store.Get(PricesCacheKey); !ok {
			t.Error("stale cache must not be deleted")
		}
	})
	t.Run("no cache", func(t *testing.T) {
		m := NewPricesManager(NewClient("http://127.0.0.1:1"), &recordingView{}, NewMemStorage())
		if m.LoadCached() {
			t.Error("empty storage should not render")
		}
	})
}
