package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ProductStatusActive  = "active"
	ProductStatusSold    = "sold"
	ProductStatusExpired = "expired"
)

// MarketplaceProduct listings are created client-side only; the collection
// exists so the portal has somewhere to sync to later.
type MarketplaceProduct struct {
	ID           primitive.ObjectID `bson:"_id" json:"id"`
	UserID       primitive.ObjectID `bson:"userId,omitempty" json:"userId,omitempty"`
	ProductType  string             `bson:"productType" json:"productType"`
	ProductName  string             `bson:"productName" json:"productName"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Quantity     float64            `bson:"quantity" json:"quantity"`
	Unit         string             `bson:"unit,omitempty" json:"unit,omitempty"`
	PricePerUnit float64            `bson:"pricePerUnit" json:"pricePerUnit"`
	TotalPrice   float64            `bson:"totalPrice,omitempty" json:"totalPrice,omitempty"`
	ListedDate   time.Time          `bson:"listedDate" json:"listedDate"`
	Status       string             `bson:"status" json:"status"`
}
