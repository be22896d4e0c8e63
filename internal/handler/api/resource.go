package api

import (
	"net/http"

	reqdto "lease-engine/internal/handler/dto/request"
	resdto "lease-engine/internal/handler/dto/response"
	"lease-engine/internal/handler/httperr"
	"lease-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ResourceHandler struct {
	q queries.ResourceQueries
}

func NewResourceHandler(q queries.ResourceQueries) *ResourceHandler {
	return &ResourceHandler{q: q}
}

// @Summary Check resource administration
// @Description Report whether the caller administers a resource for a whole window
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param type path string true "Resource type"
// @Param id path string true "Resource uuid or name"
// @Param start_time query string false "Window start (RFC3339), defaults to now"
// @Param end_time query string false "Window end (RFC3339), defaults to forever"
// @Success 200 {object} resdto.AdminResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /resources/{type}/{id}/admin [get]
func (h *ResourceHandler) CheckAdmin(c *gin.Context) {
	projectID, ok := callerProject(c)
	if !ok {
		return
	}
	var query reqdto.AdminQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	view, err := h.q.CheckAdmin(c.Request.Context(), c.Param("type"), c.Param("id"), query.StartTime, query.EndTime, projectID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAdminView(view))
}
