package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AllIndia is the sentinel state entry marking a scheme available everywhere.
const AllIndia = "All India"

const (
	CategoryInsurance = "Insurance"
	CategorySubsidy   = "Subsidy"
	CategoryLoan      = "Loan"
	CategoryEquipment = "Equipment"
	CategoryCredit    = "Credit"
	CategoryTraining  = "Training"
)

type Scheme struct {
	ID             primitive.ObjectID `bson:"_id" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Description    string             `bson:"description" json:"description"`
	Benefits       string             `bson:"benefits" json:"benefits"`
	Eligibility    string             `bson:"eligibility" json:"eligibility"`
	State          []string           `bson:"state" json:"state"`
	Category       string             `bson:"category" json:"category"`
	Link           string             `bson:"link,omitempty" json:"link,omitempty"`
	ContactPhone   string             `bson:"contactPhone,omitempty" json:"contactPhone,omitempty"`
	ContactEmail   string             `bson:"contactEmail,omitempty" json:"contactEmail,omitempty"`
	MinLandHolding float64            `bson:"minLandHolding" json:"minLandHolding"`
	MaxLandHolding float64            `bson:"maxLandHolding" json:"maxLandHolding"`
	CreatedAt      time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt      time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
