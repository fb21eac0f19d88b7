package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agrimate/app/agrimate/model"
	"agrimate/common/log"
	"agrimate/common/response"
)

func init() {
	routers = append(routers, priceRouter())
}

func priceRouter() Router {
	return func(g *gin.RouterGroup, api *AgriMateAPI) {
		g.GET("/api/prices", api.SearchPrices())
		g.POST("/api/prices", api.AddPrice())
		g.GET("/api/prices/export", api.ExportPrices())
	}
}

func (api *AgriMateAPI) SearchPrices() GinHandler {
	return func(c *gin.Context) {
		prices, err := api.Store.SearchPrices(c.Request.Context(), c.Query("state"), c.Query("district"))
		if err != nil {
			response.Error(c, http.StatusInternalServerError, err, "Error fetching prices")
			return
		}
		response.OK(c, prices)
	}
}

func (api *AgriMateAPI) AddPrice() GinHandler {
	return func(c *gin.Context) {
		var req model.Price
		if err := c.ShouldBindJSON(&req); err != nil {
			log.Logger().WithContext(c.Request.Context()).Error(err.Error())
			response.Error(c, http.StatusInternalServerError, err, "Error adding crop price")
			return
		}
		price, err := api.Store.CreatePrice(c.Request.Context(), req)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, err, "Error adding crop price")
			return
		}
		response.Created(c, price)
	}
}

func (api *AgriMateAPI) ExportPrices() GinHandler {
	return func(c *gin.Context) {
		f, err := api.Store.ExportPrices(c.Request.Context())
		if err != nil {
			response.Error(c, http.StatusInternalServerError, err, "Error exporting prices")
			return
		}
		c.Header("Content-Disposition", `attachment; filename="prices.xlsx"`)
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := f.Write(c.Writer); err != nil {
			log.Logger().WithContext(c.Request.Context()).Error("write export: ", err.Error())
		}
	}
}
