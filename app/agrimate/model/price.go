package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Price struct {
	ID       primitive.ObjectID `bson:"_id" json:"id"`
	Crop     string             `bson:"crop" json:"crop"`
	State    string             `bson:"state" json:"state"`
	District string             `bson:"district" json:"district"`
	Market   string             `bson:"market" json:"market"`
	Price    float64            `bson:"price" json:"price"`
	Unit     string             `bson:"unit,omitempty" json:"unit,omitempty"`
	Date     time.Time          `bson:"date" json:"date"`
	Trend    string             `bson:"trend,omitempty" json:"trend,omitempty"`
	Change   string             `bson:"change,omitempty" json:"change,omitempty"`
}
