package api

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"agrimate/app/agrimate/model"
	"agrimate/common/middleware"
	"agrimate/common/response"
)

type (
	GinHandler = func(c *gin.Context)
	Router     = func(g *gin.RouterGroup, api *AgriMateAPI)
)

// Store is the explicit store handle every handler factory closes over;
// *service.AgriMateService implements it. No package-global client exists.
type Store interface {
	GetAllCrops(ctx context.Context) ([]model.Crop, error)
	GetCropsBySeason(ctx context.Context, season string) ([]model.Crop, error)

	SearchPrices(ctx context.Context, state, district string) ([]model.Price, error)
	CreatePrice(ctx context.Context, req model.Price) (model.Price, error)
	ExportPrices(ctx context.Context) (*excelize.File, error)

	GetAllSchemes(ctx context.Context) ([]model.Scheme, error)
	GetSchemesByState(ctx context.Context, state string) ([]model.Scheme, error)
	GetSchemesByCategory(ctx context.Context, category string) ([]model.Scheme, error)
	CheckEligibility(ctx context.Context, state string, landHolding float64) ([]model.Scheme, error)
	CreateScheme(ctx context.Context, req model.Scheme) (model.Scheme, error)
	UpdateScheme(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (model.UpdateSummary, error)

	GetUser(ctx context.Context, id primitive.ObjectID) (model.User, error)
	CreateUser(ctx context.Context, req model.User) (model.User, error)
	UpdateUser(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (model.UpdateSummary, error)
	BookmarkScheme(ctx context.Context, userID, schemeID primitive.ObjectID) (model.UpdateSummary, error)
	SaveSoilTest(ctx context.Context, userID primitive.ObjectID, soilData model.SoilTestResult) (model.UpdateSummary, error)
	GetUserStats(ctx context.Context, id primitive.ObjectID) (model.UserStats, error)

	Ping(ctx context.Context) error
}

type AgriMateAPI struct {
	Store Store
}

func NewAgriMateAPI(store Store) *AgriMateAPI {
	return &AgriMateAPI{Store: store}
}

var routers = make([]Router, 0)

// InitRouter registers every route exactly; prefix matching is gone on
// purpose, so /api/crops/season-extra is a 404, not a season query.
func InitRouter(r *gin.Engine, api *AgriMateAPI) {
	g := r.Group("")
	for _, f := range routers {
		f(g, api)
	}
	r.NoRoute(middleware.NotFound())
}

// popObjectID extracts and removes the document id from an update payload,
// accepting either "_id" or "id" as a hex string.
func popObjectID(fields map[string]interface{}) (primitive.ObjectID, bool) {
	for _, key := range []string{"_id", "id"} {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		delete(fields, key)
		hex, ok := raw.(string)
		if !ok {
			continue
		}
		if id, err := primitive.ObjectIDFromHex(hex); err == nil {
			return id, true
		}
	}
	return primitive.NilObjectID, false
}

// queryObjectID parses the id query parameter, answering 400 itself when the
// parameter is missing or malformed.
func queryObjectID(c *gin.Context, message string) (primitive.ObjectID, bool) {
	hex := c.Query("id")
	if hex == "" {
		response.Error(c, 400, nil, message)
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		response.Error(c, 400, err, "Invalid id")
		return primitive.NilObjectID, false
	}
	return id, true
}
