package api

import (
	"github.com/gin-gonic/gin"

	"agrimate/common/response"
)

func init() {
	routers = append(routers, healthRouter())
}

func healthRouter() Router {
	return func(g *gin.RouterGroup, api *AgriMateAPI) {
		g.GET("/api/health", api.Health())
	}
}

func (api *AgriMateAPI) Health() GinHandler {
	return func(c *gin.Context) {
		database := "connected"
		if err := api.Store.Ping(c.Request.Context()); err != nil {
			database = "disconnected"
		}
		response.OK(c, gin.H{
			"status":   "ok",
			"database": database,
		})
	}
}
