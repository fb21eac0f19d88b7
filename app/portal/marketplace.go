package portal

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"agrimate/app/agrimate/model"
)

// Marketplace keeps listings in local storage only; there is no server
// endpoint for them yet.
type Marketplace struct {
	store Storage
}

func NewMarketplace(store Storage) *Marketplace {
	return &Marketplace{store: store}
}

func (m *Marketplace) List() []model.MarketplaceProduct {
	products, ok := readCache[[]model.MarketplaceProduct](m.store, MarketplaceKey)
	if !ok {
		return []model.MarketplaceProduct{}
	}
	return products
}

// Add stamps the listing and appends it to the stored list.
func (m *Marketplace) Add(p model.MarketplaceProduct) model.MarketplaceProduct {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	if p.Status == "" {
		p.Status = model.ProductStatusActive
	}
	p.TotalPrice = p.Quantity * p.PricePerUnit
	p.ListedDate = time.Now().UTC()

	products := append(m.List(), p)
	writeCache(m.store, MarketplaceKey, products)
	return p
}

// MarkSold flips a listing's status; it reports whether the id was found.
func (m *Marketplace) MarkSold(id primitive.ObjectID) bool {
	products := m.List()
	for i := range products {
		if products[i].ID == id {
			products[i].Status = model.ProductStatusSold
			writeCache(m.store, MarketplaceKey, products)
			return true
		}
	}
	return false
}
