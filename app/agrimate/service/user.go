package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"agrimate/app/agrimate/model"
	"agrimate/common/log"
)

func (svc *AgriMateService) GetUser(ctx context.Context, id primitive.ObjectID) (model.User, error) {
	var user model.User
	err := svc.CollectionUsers.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return model.User{}, ErrNotFound
	}
	if err != nil {
		log.Logger().WithContext(ctx).Error("get user: ", err.Error())
		return model.User{}, ErrDatabase
	}
	return user, nil
}

// InitUserDocument prepares a new user document: fresh id, server-stamped
// createdAt/updatedAt, and empty bookmark/soil-test arrays regardless of what
// the client sent.
func InitUserDocument(req model.User) model.User {
	InitObjectID(&req.ID)
	now := time.Now().UTC()
	req.CreatedAt = now
	req.UpdatedAt = now
	req.BookmarkedSchemes = []primitive.ObjectID{}
	req.SoilTestResults = []model.SoilTestResult{}
	return req
}

// StampSoilTest overwrites any client-supplied testDate with the server
// clock.
func StampSoilTest(r model.SoilTestResult) model.SoilTestResult {
	r.TestDate = time.Now().UTC()
	return r
}

func (svc *AgriMateService) CreateUser(ctx context.Context, req model.User) (model.User, error) {
	req = InitUserDocument(req)

	err := svc.CollectionUsers.FindOne(ctx, bson.M{"email": req.Email}).Err()
	if err == nil {
		return model.User{}, ErrUserExists
	}
	if err != mongo.ErrNoDocuments {
		log.Logger().WithContext(ctx).Error("create user: ", err.Error())
		return model.User{}, ErrDatabase
	}

	if _, err := svc.CollectionUsers.InsertOne(ctx, req); err != nil {
		// The unique index catches the race the pre-check cannot.
		if mongo.IsDuplicateKeyError(err) {
			return model.User{}, ErrUserExists
		}
		log.Logger().WithContext(ctx).Error("create user: ", err.Error())
		return model.User{}, ErrDatabase
	}
	return req, nil
}

func (svc *AgriMateService) UpdateUser(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (model.UpdateSummary, error) {
	result, err := svc.CollectionUsers.UpdateByID(ctx, id, bson.M{"$set": SanitizeUpdate(fields)})
	if err != nil {
		log.Logger().WithContext(ctx).Error("update user: ", err.Error())
		return model.UpdateSummary{}, ErrDatabase
	}
	return model.UpdateSummary{MatchedCount: result.MatchedCount, ModifiedCount: result.ModifiedCount}, nil
}

// BookmarkScheme relies on $addToSet for idempotence: bookmarking the same
// scheme twice leaves a single occurrence and reports no error.
func (svc *AgriMateService) BookmarkScheme(ctx context.Context, userID, schemeID primitive.ObjectID) (model.UpdateSummary, error) {
	result, err := svc.CollectionUsers.UpdateByID(ctx, userID,
		bson.M{"$addToSet": bson.M{"bookmarkedSchemes": schemeID}})
	if err != nil {
		log.Logger().WithContext(ctx).Error("bookmark scheme: ", err.Error())
		return model.UpdateSummary{}, ErrDatabase
	}
	return model.UpdateSummary{MatchedCount: result.MatchedCount, ModifiedCount: result.ModifiedCount}, nil
}

func (svc *AgriMateService) SaveSoilTest(ctx context.Context, userID primitive.ObjectID, soilData model.SoilTestResult) (model.UpdateSummary, error) {
	soilData = StampSoilTest(soilData)
	result, err := svc.CollectionUsers.UpdateByID(ctx, userID,
		bson.M{"$push": bson.M{"soilTestResults": soilData}})
	if err != nil {
		log.Logger().WithContext(ctx).Error("save soil test: ", err.Error())
		return model.UpdateSummary{}, ErrDatabase
	}
	return model.UpdateSummary{MatchedCount: result.MatchedCount, ModifiedCount: result.ModifiedCount}, nil
}

func (svc *AgriMateService) GetUserStats(ctx context.Context, id primitive.ObjectID) (model.UserStats, error) {
	user, err := svc.GetUser(ctx, id)
	if err != nil {
		return model.UserStats{}, err
	}
	return DeriveStats(user), nil
}

func DeriveStats(user model.User) model.UserStats {
	return model.UserStats{
		LandHolding:       user.LandHolding,
		CropsCultivated:   len(user.CropsCultivated),
		BookmarkedSchemes: len(user.BookmarkedSchemes),
		SoilTestsDone:     len(user.SoilTestResults),
		MemberSince:       user.CreatedAt,
	}
}
