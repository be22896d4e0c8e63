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

type LeaseHandler struct {
	cmds commands.LeaseCommands
	q    queries.LeaseQueries
}

func NewLeaseHandler(cmds commands.LeaseCommands, q queries.LeaseQueries) *LeaseHandler {
	return &LeaseHandler{cmds: cmds, q: q}
}

// @Summary Create lease
// @Description Grant a lease on a resource the caller administers
// @Tags leases
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateLeaseRequest true "Create lease request"
// @Success 201 {object} resdto.LeaseResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /leases [post]
func (h *LeaseHandler) Create(c *gin.Context) {
	projectID, ok := callerProject(c)
	if !ok {
		return
	}
	var req reqdto.CreateLeaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand(projectID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	id, err := h.cmds.CreateLease(c.Request.Context(), cmd, projectID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.Get(c.Request.Context(), id.String(), projectID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load lease", nil)
		return
	}
	c.Header("Location", "/v1/leases/"+id.String())
	c.JSON(http.StatusCreated, resdto.FromLeaseView(view))
}

// @Summary Get lease
// @Description Get a lease the caller consumes or owns, by uuid or name
// @Tags leases
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lease uuid or name"
// @Success 200 {object} resdto.LeaseResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /leases/{id} [get]
func (h *LeaseHandler) Get(c *gin.Context) {
	projectID, ok := callerProject(c)
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), c.Param("id"), projectID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLeaseView(view))
}

// @Summary List leases
// @Description List leases the caller consumes or owns
// @Tags leases
// @Produce json
// @Security BearerAuth
// @Param project_id query string false "Consuming project"
// @Param owner_id query string false "Owning project"
// @Param resource_type query string false "Resource type"
// @Param resource_uuid query string false "Resource uuid or name"
// @Param offer_uuid query string false "Offer the lease was claimed from"
// @Param start_time query string false "Window start (RFC3339)"
// @Param end_time query string false "Window end (RFC3339)"
// @Param time_filter_type query string false "covers or within"
// @Param status query string false "Comma separated statuses, or any"
// @Success 200 {object} map[string][]resdto.LeaseResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /leases [get]
func (h *LeaseHandler) List(c *gin.Context) {
	projectID, ok := callerProject(c)
	if !ok {
		return
	}
	var query reqdto.ListLeasesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	params, err := query.ToParams()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	items, err := h.q.List(c.Request.Context(), params, projectID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"leases": resdto.FromLeaseList(items)})
}

// @Summary Update lease
// @Description Update a lease the caller owns
// @Tags leases
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lease uuid"
// @Param request body reqdto.UpdateLeaseRequest true "Update lease request"
// @Success 200 {object} resdto.LeaseResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /leases/{id} [patch]
func (h *LeaseHandler) Update(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	projectID, ok := callerProject(c)
	if !ok {
		return
	}
	var req reqdto.UpdateLeaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err = h.cmds.UpdateLease(c.Request.Context(), id, cmd, projectID); err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.Get(c.Request.Context(), id.String(), projectID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load lease", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLeaseView(view))
}

// @Summary Delete lease
// @Description Cancel a lease, or remove it with purge=true
// @Tags leases
// @Security BearerAuth
// @Param id path string true "Lease uuid"
// @Param purge query bool false "Destroy instead of cancel"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /leases/{id} [delete]
func (h *LeaseHandler) Delete(c *gin.Context) {
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
		err = h.cmds.DestroyLease(c.Request.Context(), id, projectID)
	} else {
		err = h.cmds.CancelLease(c.Request.Context(), id, projectID)
	}
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
