package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spellworks/grimoire/pkg/db/pagination"
)

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Meta    any    `json:"meta,omitempty"`
}

func respondOK(c *gin.Context, status int, message string, data any) {
	c.JSON(status, envelope{Success: true, Message: message, Data: data})
}

func respondList(c *gin.Context, message string, data any, meta *pagination.Meta) {
	env := envelope{Success: true, Message: message, Data: data}
	if meta != nil {
		env.Meta = meta
	}
	c.JSON(http.StatusOK, env)
}

func respondFail(c *gin.Context, status int, message string) {
	c.JSON(status, envelope{Success: false, Message: message})
}

func abortFail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, envelope{Success: false, Message: message})
}

// errMessage mirrors the "error.message || fallback" convention used across
// the handlers.
func errMessage(err error, fallback string) string {
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return fallback
}
