package portal

import (
	"context"
	"sync"

	"agrimate/app/agrimate/model"
	"agrimate/common/log"
)

// SchemesManager follows the same pipeline as prices without a freshness
// window; the scheme catalog changes rarely and the fallback list is always
// usable.
type SchemesManager struct {
	client *Client
	view   SchemeView

	mu  sync.Mutex
	seq uint64
}

func NewSchemesManager(client *Client, view SchemeView) *SchemesManager {
	return &SchemesManager{client: client, view: view}
}

func (m *SchemesManager) Load(ctx context.Context, state string) {
	m.view.Loading()

	m.mu.Lock()
	m.seq++
	token := m.seq
	m.mu.Unlock()

	schemes, err := m.client.FetchSchemes(ctx, state)
	if err != nil {
		log.Logger().Debugf("scheme fetch failed, using fallback: %s", err.Error())
		schemes = FallbackSchemes(state)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if token != m.seq {
		return
	}
	if len(schemes) == 0 {
		m.view.NoData()
	} else {
		m.view.RenderSchemes(schemes)
	}
}

// EligibleAmong filters a scheme list locally the way the backend eligibility
// route does, for use against fallback data when the server is unreachable.
func EligibleAmong(schemes []model.Scheme, state string, landHolding float64) []model.Scheme {
	var out []model.Scheme
	for _, s := range schemes {
		stateOk := false
		for _, st := range s.State {
			if st == model.AllIndia || st == state {
				stateOk = true
				break
			}
		}
		if !stateOk {
			continue
		}
		if s.MinLandHolding <= landHolding && landHolding <= s.MaxLandHolding {
			out = append(out, s)
		}
	}
	return out
}
