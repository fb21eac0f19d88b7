package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agrimate/app/agrimate/model"
	"agrimate/common/log"
	"agrimate/common/response"
)

func init() {
	routers = append(routers, schemeRouter())
}

func schemeRouter() Router {
	return func(g *gin.RouterGroup, api *AgriMateAPI) {
		g.GET("/api/schemes", api.GetAllSchemes())
		g.GET("/api/schemes/state", api.GetSchemesByState())
		g.GET("/api/schemes/category", api.GetSchemesByCategory())
		g.POST("/api/schemes/eligibility", api.CheckEligibility())
		g.POST("/api/schemes", api.AddScheme())
		g.PUT("/api/schemes", api.UpdateScheme())
	}
}

// eligibilityReq carries income too; it is accepted but no scheme in the
// catalog filters on it yet.
type eligibilityReq struct {
	State       string   `json:"state"`
	LandHolding *float64 `json:"landHolding"`
	Income      float64  `json:"income"`
}

type eligibilityResp struct {
	Success       bool           `json:"success"`
	Data          []model.Scheme `json:"data"`
	EligibleCount int            `json:"eligibleCount"`
}

func (api *AgriMateAPI) GetAllSchemes() GinHandler {
	return func(c *gin.Context) {
		schemes, err := api.Store.GetAllSchemes(c.Request.Context())
		if err != nil {
			response.Error(c, http.StatusInternalServerError, err, "Error fetching schemes")
			return
		}
		response.OK(c, schemes)
	}
}

func (api *AgriMateAPI) GetSchemesByState() GinHandler {
	return func(c *gin.Context) {
		state := c.Query("state")
		if state == "" {
			response.Error(c, http.StatusBadRequest, nil, "State required")
			return
		}
		schemes, err := api.Store.GetSchemesByState(c.Request.Context(), state)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, err, "Error fetching schemes by state")
			return
		}
		response.OK(c, schemes)
	}
}

func (api *AgriMateAPI) GetSchemesByCategory() GinHandler {
	return func(c *gin.Context) {
		category := c.Query("category")
		if category == "" {
			response.Error(c, http.StatusBadRequest, nil, "Category required")
			return
		}
		schemes, err := api.Store.GetSchemesByCategory(c.Request.Context(), category)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, err, "Error fetching schemes by category")
			return
		}
		response.OK(c, schemes)
	}
}

func (api *AgriMateAPI) CheckEligibility() GinHandler {
	return func(c *gin.Context) {
		var req eligibilityReq
		if err := c.ShouldBindJSON(&req); err != nil {
			log.Logger().WithContext(c.Request.Context()).Error(err.Error())
			response.Error(c, http.StatusInternalServerError, err, "Error checking eligibility")
			return
		}
		if req.State == "" || req.LandHolding == nil {
			response.Error(c, http.StatusBadRequest, nil, "State and land holding required")
			return
		}
		schemes, err := api.Store.CheckEligibility(c.Request.Context(), req.State, *req.LandHolding)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, err, "Error checking eligibility")
			return
		}
		if schemes == nil {
			schemes = []model.Scheme{}
		}
		c.JSON(http.StatusOK, eligibilityResp{
			Success:       true,
			Data:          schemes,
			EligibleCount: len(schemes),
		})
	}
}

func (api *AgriMateAPI) AddScheme() GinHandler {
	return func(c *gin.Context) {
		var req model.Scheme
		if err := c.ShouldBindJSON(&req); err != nil {
			log.Logger().WithContext(c.Request.Context()).Error(err.Error())
			response.Error(c, http.StatusInternalServerError, err, "Error adding scheme")
			return
		}
		scheme, err := api.Store.CreateScheme(c.Request.Context(), req)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, err, "Error adding scheme")
			return
		}
		response.Created(c, scheme)
	}
}

func (api *AgriMateAPI) UpdateScheme() GinHandler {
	return func(c *gin.Context) {
		fields := make(map[string]interface{})
		if err := c.ShouldBindJSON(&fields); err != nil {
			log.Logger().WithContext(c.Request.Context()).Error(err.Error())
			response.Error(c, http.StatusInternalServerError, err, "Error updating scheme")
			return
		}
		id, ok := popObjectID(fields)
		if !ok {
			response.Error(c, http.StatusBadRequest, nil, "Scheme id required")
			return
		}
		summary, err := api.Store.UpdateScheme(c.Request.Context(), id, fields)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, err, "Error updating scheme")
			return
		}
		response.OK(c, summary)
	}
}
