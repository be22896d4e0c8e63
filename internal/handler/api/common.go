package api

import (
	"net/http"
	"strconv"

	"lease-engine/internal/handler/httperr"
	"lease-engine/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func callerProject(c *gin.Context) (string, bool) {
	projectID, ok := middleware.GetProjectID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return "", false
	}
	return projectID, true
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}

// purgeRequested reports whether a DELETE should destroy the record instead
// of cancelling it.
func purgeRequested(c *gin.Context) bool {
	purge, err := strconv.ParseBool(c.DefaultQuery("purge", "false"))
	return err == nil && purge
}
