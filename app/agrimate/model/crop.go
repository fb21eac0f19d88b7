package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	SeasonKharif = "Kharif"
	SeasonRabi   = "Rabi"
	SeasonSummer = "Summer"
)

type Crop struct {
	ID               primitive.ObjectID `bson:"_id" json:"id"`
	Name             string             `bson:"name" json:"name"`
	Season           string             `bson:"season" json:"season"`
	Regions          []string           `bson:"regions" json:"regions"`
	States           []string           `bson:"states,omitempty" json:"states,omitempty"`
	WaterRequirement string             `bson:"waterRequirement" json:"waterRequirement"`
	Temperature      string             `bson:"temperature" json:"temperature"`
	Humidity         string             `bson:"humidity,omitempty" json:"humidity,omitempty"`
	SoilType         string             `bson:"soilType,omitempty" json:"soilType,omitempty"`
	Yield            string             `bson:"yield" json:"yield"`
	SowingMonths     []string           `bson:"sowingMonth,omitempty" json:"sowingMonth,omitempty"`
	HarvestMonths    []string           `bson:"harvestMonth,omitempty" json:"harvestMonth,omitempty"`
	CreatedAt        time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt        time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
