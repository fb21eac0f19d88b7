package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform JSON shape every endpoint answers with.
// Success responses carry data; failures carry a human message and the
// underlying error string.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Data: data})
}

func Error(c *gin.Context, code int, err error, message string) {
	e := Envelope{Success: false, Message: message}
	if err != nil {
		e.Error = err.Error()
	}
	c.AbortWithStatusJSON(code, e)
}
