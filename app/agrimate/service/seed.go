package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"agrimate/app/agrimate/model"
	"agrimate/common/log"
)

// EnsureIndexes creates the indexes the handlers rely on; the unique email
// index is what makes duplicate-user creation safe under concurrency.
func (svc *AgriMateService) EnsureIndexes(ctx context.Context) error {
	_, err := svc.CollectionUsers.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}
	_, err = svc.CollectionCrops.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "name", Value: 1}},
	})
	if err != nil {
		return err
	}
	_, err = svc.CollectionSchemes.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "state", Value: 1}},
	})
	return err
}

// Seed inserts sample crops and schemes into empty collections so a fresh
// database serves something immediately.
func (svc *AgriMateService) Seed(ctx context.Context) error {
	count, err := svc.CollectionCrops.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count == 0 {
		docs := make([]interface{}, 0, len(sampleCrops))
		for _, c := range sampleCrops {
			InitObjectID(&c.ID)
			docs = append(docs, c)
		}
		if _, err := svc.CollectionCrops.InsertMany(ctx, docs); err != nil {
			return err
		}
		log.Logger().Infof("seeded %d crops", len(docs))
	}

	count, err = svc.CollectionSchemes.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count == 0 {
		docs := make([]interface{}, 0, len(sampleSchemes))
		for _, s := range sampleSchemes {
			InitObjectID(&s.ID)
			docs = append(docs, s)
		}
		if _, err := svc.CollectionSchemes.InsertMany(ctx, docs); err != nil {
			return err
		}
		log.Logger().Infof("seeded %d schemes", len(docs))
	}
	return nil
}

var sampleCrops = []model.Crop{
	{
		Name:             "Rice",
		Season:           model.SeasonKharif,
		Regions:          []string{"Tamil Nadu", "Karnataka", "Punjab"},
		WaterRequirement: "1200-1500mm",
		Temperature:      "21-37°C",
		Yield:            "50-60 quintals/hectare",
		SowingMonths:     []string{"May", "June"},
		HarvestMonths:    []string{"October", "November"},
	},
	{
		Name:             "Wheat",
		Season:           model.SeasonRabi,
		Regions:          []string{"Punjab", "Rajasthan", "Uttar Pradesh"},
		WaterRequirement: "400-500mm",
		Temperature:      "15-20°C",
		Yield:            "40-50 quintals/hectare",
		SowingMonths:     []string{"October", "November"},
		HarvestMonths:    []string{"March", "April"},
	},
	{
		Name:             "Cotton",
		Season:           model.SeasonKharif,
		Regions:          []string{"Maharashtra", "Gujarat", "Telangana"},
		WaterRequirement: "400-600mm",
		Temperature:      "21-30°C",
		Yield:            "15-20 quintals/hectare",
		SowingMonths:     []string{"April", "May", "June"},
		HarvestMonths:    []string{"December", "January"},
	},
}

var sampleSchemes = []model.Scheme{
	{
		Name:           "PM FASAL Bima Yojana",
		Description:    "Crop insurance scheme providing financial support to farmers in case of crop failure due to natural calamities",
		Benefits:       "100% coverage of yield loss with subsidized premiums",
		Eligibility:    "All farmers growing notified crops",
		State:          []string{model.AllIndia},
		Category:       model.CategoryInsurance,
		Link:           "https://pmfby.gov.in",
		MinLandHolding: 0.1,
		MaxLandHolding: 1000,
	},
	{
		Name:           "Soil Health Card Scheme",
		Description:    "Free soil testing and customized fertilizer recommendations for farmers",
		Benefits:       "Free soil testing at registered labs with recommendations",
		Eligibility:    "All farmers",
		State:          []string{model.AllIndia},
		Category:       model.CategoryTraining,
		Link:           "https://soilhealth.dac.gov.in",
		MinLandHolding: 0,
		MaxLandHolding: 1000,
	},
	{
		Name:           "Pradhan Mantri Krishi Sinchayee Yojana",
		Description:    "Irrigation scheme to enhance water use efficiency and crop productivity",
		Benefits:       "50-90% subsidy on irrigation equipment",
		Eligibility:    "Landholding farmers",
		State:          []string{model.AllIndia},
		Category:       model.CategorySubsidy,
		Link:           "https://pmksy.gov.in",
		MinLandHolding: 0.5,
		MaxLandHolding: 1000,
	},
	{
		Name:           "Kisan Vikas Patra",
		Description:    "Investment scheme for farmers with assured returns and tax benefits",
		Benefits:       "7.6% interest rate with tax benefits under Section 80C",
		Eligibility:    "Indian farmers and residents",
		State:          []string{model.AllIndia},
		Category:       model.CategoryCredit,
		Link:           "https://www.indiapost.gov.in",
		MinLandHolding: 0,
		MaxLandHolding: 1000,
	},
	{
		Name:           "Subsidy for Agricultural Tools",
		Description:    "Government subsidy on modern farming equipment and tools",
		Benefits:       "40-50% subsidy on tools and machinery",
		Eligibility:    "Small and marginal farmers",
		State:          []string{"Tamil Nadu", "Karnataka", "Maharashtra"},
		Category:       model.CategoryEquipment,
		MinLandHolding: 0.1,
		MaxLandHolding: 2,
	},
}
