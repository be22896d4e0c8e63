package api

import (
	"net/http"

	reqdto "lease-engine/internal/handler/dto/request"
	resdto "lease-engine/internal/handler/dto/response"
	"lease-engine/internal/handler/httperr"
	"lease-engine/internal/usecase/commands"
	"lease-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OwnerChangeHandler struct {
	cmds commands.OwnerChangeCommands
	q    queries.OwnerChangeQueries
}

func NewOwnerChangeHandler(cmds commands.OwnerChangeCommands, q queries.OwnerChangeQueries) *OwnerChangeHandler {
	return &OwnerChangeHandler{cmds: cmds, q: q}
}

// @Summary Create owner change
// @Description Hand administration of a resource to another project for a window
// @Tags owner_changes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateOwnerChangeRequest true "Create owner change request"
// @Success 201 {object} resdto.OwnerChangeResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /owner_changes [post]
func (h *OwnerChangeHandler) Create(c *gin.Context) {
	projectID, ok := callerProject(c)
	if !ok {
		return
	}
	var req reqdto.CreateOwnerChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	id, err := h.cmds.CreateOwnerChange(c.Request.Context(), cmd, projectID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.Get(c.Request.Context(), id, projectID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load owner change", nil)
		return
	}
	c.Header("Location", "/v1/owner_changes/"+id.String())
	c.JSON(http.StatusCreated, resdto.FromOwnerChangeView(view))
}

// @Summary Get owner change
// @Tags owner_changes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Owner change uuid"
// @Success 200 {object} resdto.OwnerChangeResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /owner_changes/{id} [get]
func (h *OwnerChangeHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	projectID, ok := callerProject(c)
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), id, projectID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOwnerChangeView(view))
}

// @Summary List owner changes
// @Description List owner changes the caller gives or receives
// @Tags owner_changes
// @Produce json
// @Security BearerAuth
// @Param resource_type query string false "Resource type"
// @Param resource_uuid query string false "Resource uuid or name"
// @Param start_time query string false "Window start (RFC3339)"
// @Param end_time query string false "Window end (RFC3339)"
// @Param status query string false "Comma separated statuses, or any"
// @Success 200 {object} map[string][]resdto.OwnerChangeResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /owner_changes [get]
func (h *OwnerChangeHandler) List(c *gin.Context) {
	projectID, ok := callerProject(c)
	if !ok {
		return
	}
	var query reqdto.ListOwnerChangesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	items, err := h.q.List(c.Request.Context(), query.ToParams(), projectID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"owner_changes": resdto.FromOwnerChangeList(items)})
}

// @Summary Update owner change
// @Tags owner_changes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Owner change uuid"
// @Param request body reqdto.UpdateOwnerChangeRequest true "Update owner change request"
// @Success 200 {object} resdto.OwnerChangeResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /owner_changes/{id} [patch]
func (h *OwnerChangeHandler) Update(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	projectID, ok := callerProject(c)
	if !ok {
		return
	}
	var req reqdto.UpdateOwnerChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err = h.cmds.UpdateOwnerChange(c.Request.Context(), id, cmd, projectID); err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.Get(c.Request.Context(), id, projectID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load owner change", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOwnerChangeView(view))
}

// @Summary Delete owner change
// @Description Cancel an owner change, or remove it with purge=true
// @Tags owner_changes
// @Security BearerAuth
// @Param id path string true "Owner change uuid"
// @Param purge query bool false "Destroy instead of cancel"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /owner_changes/{id} [delete]
func (h *OwnerChangeHandler) Delete(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	projectID, ok := callerProject(c)
	if !ok {
		return
	}
	var err error
	if purgeRequested(c) {
		err = h.cmds.DestroyOwnerChange(c.Request.Context(), id, projectID)
	} else {
		err = h.cmds.CancelOwnerChange(c.Request.Context(), id, projectID)
	}
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
