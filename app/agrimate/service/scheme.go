package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"agrimate/app/agrimate/model"
	"agrimate/common/log"
)

// SchemeStateFilter matches schemes applicable in the given state, which
// always includes the "All India" sentinel.
func SchemeStateFilter(state string) bson.M {
	return bson.M{"state": bson.M{"$in": []string{state, model.AllIndia}}}
}

// EligibilityFilter is a range-membership query: state match plus inclusive
// land holding bounds.
func EligibilityFilter(state string, landHolding float64) bson.M {
	return bson.M{
		"state":          bson.M{"$in": []string{state, model.AllIndia}},
		"minLandHolding": bson.M{"$lte": landHolding},
		"maxLandHolding": bson.M{"$gte": landHolding},
	}
}

func (svc *AgriMateService) findSchemes(ctx context.Context, filter bson.M, op string) ([]model.Scheme, error) {
	cursor, err := svc.CollectionSchemes.Find(ctx, filter)
	if err != nil {
		log.Logger().WithContext(ctx).Error(op, ": ", err.Error())
		return nil, ErrDatabase
	}
	schemes := make([]model.Scheme, 0)
	if err = cursor.All(ctx, &schemes); err != nil {
		log.Logger().WithContext(ctx).Error(op, ": ", err.Error())
		return nil, ErrDatabase
	}
	return schemes, nil
}

func (svc *AgriMateService) GetAllSchemes(ctx context.Context) ([]model.Scheme, error) {
	return svc.findSchemes(ctx, bson.M{}, "get schemes")
}

func (svc *AgriMateService) GetSchemesByState(ctx context.Context, state string) ([]model.Scheme, error) {
	return svc.findSchemes(ctx, SchemeStateFilter(state), "get schemes by state")
}

func (svc *AgriMateService) GetSchemesByCategory(ctx context.Context, category string) ([]model.Scheme, error) {
	return svc.findSchemes(ctx, bson.M{"category": category}, "get schemes by category")
}

func (svc *AgriMateService) CheckEligibility(ctx context.Context, state string, landHolding float64) ([]model.Scheme, error) {
	return svc.findSchemes(ctx, EligibilityFilter(state, landHolding), "check eligibility")
}

func (svc *AgriMateService) CreateScheme(ctx context.Context, req model.Scheme) (model.Scheme, error) {
	InitObjectID(&req.ID)
	now := time.Now().UTC()
	req.CreatedAt = now
	req.UpdatedAt = now
	if _, err := svc.CollectionSchemes.InsertOne(ctx, req); err != nil {
		log.Logger().WithContext(ctx).Error("create scheme: ", err.Error())
		return model.Scheme{}, ErrDatabase
	}
	return req, nil
}

// UpdateScheme applies a partial-field merge; the filter id is immutable and
// any id in the payload has already been stripped by SanitizeUpdate.
func (svc *AgriMateService) UpdateScheme(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (model.UpdateSummary, error) {
	result, err := svc.CollectionSchemes.UpdateByID(ctx, id, bson.M{"$set": SanitizeUpdate(fields)})
	if err != nil {
		log.Logger().WithContext(ctx).Error("update scheme: ", err.Error())
		return model.UpdateSummary{}, ErrDatabase
	}
	return model.UpdateSummary{MatchedCount: result.MatchedCount, ModifiedCount: result.ModifiedCount}, nil
}
