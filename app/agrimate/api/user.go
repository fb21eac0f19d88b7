package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"agrimate/app/agrimate/model"
	"agrimate/app/agrimate/service"
	"agrimate/common/log"
	"agrimate/common/response"
)

func init() {
	routers = append(routers, userRouter())
}

func userRouter() Router {
	return func(g *gin.RouterGroup, api *AgriMateAPI) {
		g.GET("/api/users/profile", api.GetUserProfile())
		g.POST("/api/users", api.CreateUser())
		g.PUT("/api/users", api.UpdateUser())
		g.POST("/api/users/bookmark", api.BookmarkScheme())
		g.POST("/api/users/soil-test", api.SaveSoilTest())
		g.GET("/api/users/stats", api.GetUserStats())
	}
}

type bookmarkReq struct {
	UserID   string `json:"userId"`
	SchemeID string `json:"schemeId"`
}

type soilTestReq struct {
	UserID   string               `json:"userId"`
	SoilData model.SoilTestResult `json:"soilData"`
}

func (api *AgriMateAPI) GetUserProfile() GinHandler {
	return func(c *gin.Context) {
		id, ok := queryObjectID(c, "User id required")
		if !ok {
			return
		}
		user, err := api.Store.GetUser(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				response.Error(c, http.StatusNotFound, nil, "User not found")
				return
			}
			response.Error(c, http.StatusInternalServerError, err, "Error fetching user profile")
			return
		}
		response.OK(c, user)
	}
}

func (api *AgriMateAPI) CreateUser() GinHandler {
	return func(c *gin.Context) {
		var req model.User
		if err := c.ShouldBindJSON(&req); err != nil {
			log.Logger().WithContext(c.Request.Context()).Error(err.Error())
			response.Error(c, http.StatusInternalServerError, err, "Error creating user")
			return
		}
		user, err := api.Store.CreateUser(c.Request.Context(), req)
		if err != nil {
			if errors.Is(err, service.ErrUserExists) {
				response.Error(c, http.StatusConflict, nil, "User with this email already exists")
				return
			}
			response.Error(c, http.StatusInternalServerError, err, "Error creating user")
			return
		}
		response.Created(c, user)
	}
}

func (api *AgriMateAPI) UpdateUser() GinHandler {
	return func(c *gin.Context) {
		fields := make(map[string]interface{})
		if err := c.ShouldBindJSON(&fields); err != nil {
			log.Logger().WithContext(c.Request.Context()).Error(err.Error())
			response.Error(c, http.StatusInternalServerError, err, "Error updating user")
			return
		}
		id, ok := popObjectID(fields)
		if !ok {
			response.Error(c, http.StatusBadRequest, nil, "User id required")
			return
		}
		summary, err := api.Store.UpdateUser(c.Request.Context(), id, fields)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, err, "Error updating user")
			return
		}
		response.OK(c, summary)
	}
}

func (api *AgriMateAPI) BookmarkScheme() GinHandler {
	return func(c *gin.Context) {
		var req bookmarkReq
		if err := c.ShouldBindJSON(&req); err != nil {
			log.Logger().WithContext(c.Request.Context()).Error(err.Error())
			response.Error(c, http.StatusInternalServerError, err, "Error bookmarking scheme")
			return
		}
		userID, err := primitive.ObjectIDFromHex(req.UserID)
		if err != nil {
			response.Error(c, http.StatusBadRequest, err, "User id required")
			return
		}
		schemeID, err := primitive.ObjectIDFromHex(req.SchemeID)
		if err != nil {
			response.Error(c, http.StatusBadRequest, err, "Scheme id required")
			return
		}
		summary, err := api.Store.BookmarkScheme(c.Request.Context(), userID, schemeID)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, err, "Error bookmarking scheme")
			return
		}
		response.OK(c, summary)
	}
}

func (api *AgriMateAPI) SaveSoilTest() GinHandler {
	return func(c *gin.Context) {
		var req soilTestReq
		if err := c.ShouldBindJSON(&req); err != nil {
			log.Logger().WithContext(c.Request.Context()).Error(err.Error())
			response.Error(c, http.StatusInternalServerError, err, "Error saving soil test")
			return
		}
		userID, err := primitive.ObjectIDFromHex(req.UserID)
		if err != nil {
			response.Error(c, http.StatusBadRequest, err, "User id required")
			return
		}
		summary, err := api.Store.SaveSoilTest(c.Request.Context(), userID, req.SoilData)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, err, "Error saving soil test")
			return
		}
		response.OK(c, summary)
	}
}

func (api *AgriMateAPI) GetUserStats() GinHandler {
	return func(c *gin.Context) {
		id, ok := queryObjectID(c, "User id required")
		if !ok {
			return
		}
		stats, err := api.Store.GetUserStats(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				response.Error(c, http.StatusNotFound, nil, "User not found")
				return
			}
			response.Error(c, http.StatusInternalServerError, err, "Error fetching user stats")
			return
		}
		response.OK(c, stats)
	}
}
