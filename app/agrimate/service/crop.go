package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"agrimate/app/agrimate/model"
	"agrimate/common/log"
	"agrimate/common/util"
)

func (svc *AgriMateService) GetAllCrops(ctx context.Context) ([]model.Crop, error) {
	cursor, err := svc.CollectionCrops.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		log.Logger().WithContext(ctx).Error("get crops: ", err.Error())
		return nil, ErrDatabase
	}
	crops := make([]model.Crop, 0)
	if err = cursor.All(ctx, &crops); err != nil {
		log.Logger().WithContext(ctx).Error("get crops: ", err.Error())
		return nil, ErrDatabase
	}
	return crops, nil
}

func (svc *AgriMateService) GetCropsBySeason(ctx context.Context, season string) ([]model.Crop, error) {
	cursor, err := svc.CollectionCrops.Find(ctx, bson.M{"season": season})
	if err != nil {
		log.Logger().WithContext(ctx).Error("get crops by season: ", err.Error())
		return nil, ErrDatabase
	}
	crops := make([]model.Crop, 0)
	if err = cursor.All(ctx, &crops); err != nil {
		log.Logger().WithContext(ctx).Error("get crops by season: ", err.Error())
		return nil, ErrDatabase
	}
	return crops, nil
}

// RecommendCrops is a static threshold lookup: pH picks the base list,
// rainfall (mm/year, optional) appends water-matched crops.
func RecommendCrops(pH float64, rainfall *float64) []string {
	var recommendations []string
	switch {
	case pH >= 6 && pH <= 7:
		recommendations = append(recommendations, "Rice", "Wheat", "Maize")
	case pH > 7:
		recommendations = append(recommendations, "Sugarcane", "Cotton")
	default:
		recommendations = append(recommendations, "Tea", "Coffee")
	}
	if rainfall != nil {
		switch {
		case *rainfall >= 1000:
			recommendations = append(recommendations, "Rice", "Sugarcane")
		case *rainfall < 500:
			recommendations = append(recommendations, "Bajra", "Millets")
		}
	}
	return util.Dedupe(recommendations)
}
