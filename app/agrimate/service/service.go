package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	ErrDatabase   = errors.New("database error")
	ErrNotFound   = errors.New("not found")
	ErrUserExists = errors.New("user already exists")
)

type AgriMateService struct {
	MongodbClient *mongo.Client
	MongodbDB     *mongo.Database

	CollectionCrops       *mongo.Collection
	CollectionSchemes     *mongo.Collection
	CollectionUsers       *mongo.Collection
	CollectionPrices      *mongo.Collection
	CollectionMarketplace *mongo.Collection
}

func NewAgriMateService(client *mongo.Client, dbName string) *AgriMateService {
	db := client.Database(dbName)
	return &AgriMateService{
		MongodbClient:         client,
		MongodbDB:             db,
		CollectionCrops:       db.Collection("crops"),
		CollectionSchemes:     db.Collection("schemes"),
		CollectionUsers:       db.Collection("users"),
		CollectionPrices:      db.Collection("prices"),
		CollectionMarketplace: db.Collection("marketplace"),
	}
}

func InitObjectID(id *primitive.ObjectID) {
	if id.IsZero() {
		*id = primitive.NewObjectID()
	}
}

func (svc *AgriMateService) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return svc.MongodbClient.Ping(ctx, readpref.Primary())
}

// SanitizeUpdate builds the $set document for a partial-field merge: any
// client-supplied id is stripped and updatedAt is stamped server-side.
func SanitizeUpdate(fields map[string]interface{}) bson.M {
	doc := bson.M{}
	for k, v := range fields {
		if k == "_id" || k == "id" {
			continue
		}
		doc[k] = v
	}
	doc["updatedAt"] = time.Now().UTC()
	return doc
}
