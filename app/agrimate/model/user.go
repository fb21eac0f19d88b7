package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID                primitive.ObjectID   `bson:"_id" json:"id"`
	Name              string               `bson:"name" json:"name"`
	Email             string               `bson:"email" json:"email"`
	Phone             string               `bson:"phone,omitempty" json:"phone,omitempty"`
	State             string               `bson:"state" json:"state"`
	District          string               `bson:"district" json:"district"`
	LandHolding       float64              `bson:"landHolding" json:"landHolding"`
	CropsCultivated   []string             `bson:"cropsCultivated" json:"cropsCultivated"`
	Language          string               `bson:"language,omitempty" json:"language,omitempty"`
	BookmarkedSchemes []primitive.ObjectID `bson:"bookmarkedSchemes" json:"bookmarkedSchemes"`
	SoilTestResults   []SoilTestResult     `bson:"soilTestResults" json:"soilTestResults"`
	CreatedAt         time.Time            `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt         time.Time            `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// SoilTestResult records are append-only on the user document; TestDate is
// always stamped server-side.
type SoilTestResult struct {
	PH         float64   `bson:"pH" json:"pH"`
	Nitrogen   float64   `bson:"nitrogen,omitempty" json:"nitrogen,omitempty"`
	Phosphorus float64   `bson:"phosphorus,omitempty" json:"phosphorus,omitempty"`
	Potassium  float64   `bson:"potassium,omitempty" json:"potassium,omitempty"`
	TestDate   time.Time `bson:"testDate" json:"testDate"`
}

// UserStats is derived from array lengths at read time; no counters are
// maintained in the store.
type UserStats struct {
	LandHolding       float64   `json:"landHolding"`
	CropsCultivated   int       `json:"cropsCultivated"`
	BookmarkedSchemes int       `json:"bookmarkedSchemes"`
	SoilTestsDone     int       `json:"soilTestsDone"`
	MemberSince       time.Time `json:"memberSince"`
}

// UpdateSummary reports the outcome of a partial update or set-add operation.
type UpdateSummary struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}
