package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"agrimate/app/agrimate/service"
	"agrimate/common/response"
)

func init() {
	routers = append(routers, cropRouter())
}

func cropRouter() Router {
	return func(g *gin.RouterGroup, api *AgriMateAPI) {
		g.GET("/api/crops", api.GetAllCrops())
		g.GET("/api/crops/season", api.GetCropsBySeason())
		g.GET("/api/crops/recommendations", api.GetCropRecommendations())
	}
}

func (api *AgriMateAPI) GetAllCrops() GinHandler {
	return func(c *gin.Context) {
		crops, err := api.Store.GetAllCrops(c.Request.Context())
		if err != nil {
			response.Error(c, http.StatusInternalServerError, err, "Error fetching crops")
			return
		}
		response.OK(c, crops)
	}
}

func (api *AgriMateAPI) GetCropsBySeason() GinHandler {
	return func(c *gin.Context) {
		season := c.Query("season")
		if season == "" {
			response.Error(c, http.StatusBadRequest, nil, "Season required")
			return
		}
		crops, err := api.Store.GetCropsBySeason(c.Request.Context(), season)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, err, "Error fetching crops by season")
			return
		}
		response.OK(c, crops)
	}
}

func (api *AgriMateAPI) GetCropRecommendations() GinHandler {
	return func(c *gin.Context) {
		pH, err := strconv.ParseFloat(c.Query("pH"), 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, nil, "pH required")
			return
		}
		var rainfall *float64
		if raw := c.Query("rainfall"); raw != "" {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				response.Error(c, http.StatusBadRequest, nil, "Invalid rainfall")
				return
			}
			rainfall = &v
		}
		response.OK(c, service.RecommendCrops(pH, rainfall))
	}
}
