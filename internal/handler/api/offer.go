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

type OfferHandler struct {
	cmds   commands.OfferCommands
	q      queries.OfferQueries
	leases queries.LeaseQueries
}

func NewOfferHandler(cmds commands.OfferCommands, q queries.OfferQueries, leases queries.LeaseQueries) *OfferHandler {
	return &OfferHandler{cmds: cmds, q: q, leases: leases}
}

// @Summary Create offer
// @Description Offer a resource the caller administers for a time window
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateOfferRequest true "Create offer request"
// @Success 201 {object} resdto.OfferResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /offers [post]
func (h *OfferHandler) Create(c *gin.Context) {
	projectID, ok := callerProject(c)
	if !ok {
		return
	}
	var req reqdto.CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	id, err := h.cmds.CreateOffer(c.Request.Context(), cmd, projectID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.Get(c.Request.Context(), id.String(), projectID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load offer", nil)
		return
	}
	c.Header("Location", "/v1/offers/"+id.String())
	c.JSON(http.StatusCreated, resdto.FromOfferView(view))
}

// @Summary Get offer
// @Description Get an offer by uuid or unique name
// @Tags offers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer uuid or name"
// @Success 200 {object} resdto.OfferResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /offers/{id} [get]
func (h *OfferHandler) Get(c *gin.Context) {
	projectID, ok := callerProject(c)
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), c.Param("id"), projectID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOfferView(view))
}

// @Summary List offers
// @Description List offers visible to the caller
// @Tags offers
// @Produce json
// @Security BearerAuth
// @Param project_id query string false "Offering project"
// @Param resource_type query string false "Resource type"
// @Param resource_uuid query string false "Resource uuid or name"
// @Param start_time query string false "Window start (RFC3339)"
// @Param end_time query string false "Window end (RFC3339)"
// @Param time_filter_type query string false "covers or within"
// @Param available_start_time query string false "Availability window start (RFC3339)"
// @Param available_end_time query string false "Availability window end (RFC3339)"
// @Param status query string false "Comma separated statuses, or any"
// @Success 200 {object} map[string][]resdto.OfferResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /offers [get]
func (h *OfferHandler) List(c *gin.Context) {
	projectID, ok := callerProject(c)
	if !ok {
		return
	}
	var query reqdto.ListOffersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	items, err := h.q.List(c.Request.Context(), query.ToParams(), projectID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"offers": resdto.FromOfferList(items)})
}

// @Summary Update offer
// @Description Update an offer the caller owns
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer uuid"
// @Param request body reqdto.UpdateOfferRequest true "Update offer request"
// @Success 200 {object} resdto.OfferResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /offers/{id} [patch]
func (h *OfferHandler) Update(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	projectID, ok := callerProject(c)
	if !ok {
		return
	}
	var req reqdto.UpdateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err = h.cmds.UpdateOffer(c.Request.Context(), id, cmd, projectID); err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.Get(c.Request.Context(), id.String(), projectID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load offer", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOfferView(view))
}

// @Summary Delete offer
// @Description Cancel an offer and its leases, or remove it with purge=true
// @Tags offers
// @Security BearerAuth
// @Param id path string true "Offer uuid"
// @Param purge query bool false "Destroy instead of cancel"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /offers/{id} [delete]
func (h *OfferHandler) Delete(c *gin.Context) {
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
		err = h.cmds.DestroyOffer(c.Request.Context(), id, projectID)
	} else {
		err = h.cmds.CancelOffer(c.Request.Context(), id, projectID)
	}
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Claim offer
// @Description Turn (part of) an offer into a lease for the caller
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer uuid"
// @Param request body reqdto.ClaimOfferRequest false "Claim request"
// @Success 201 {object} resdto.LeaseResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /offers/{id}/claim [post]
func (h *OfferHandler) Claim(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	projectID, ok := callerProject(c)
	if !ok {
		return
	}
	var req reqdto.ClaimOfferRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
			return
		}
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	leaseID, err := h.cmds.ClaimOffer(c.Request.Context(), id, cmd, projectID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.leases.Get(c.Request.Context(), leaseID.String(), projectID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load lease", nil)
		return
	}
	c.Header("Location", "/v1/leases/"+leaseID.String())
	c.JSON(http.StatusCreated, resdto.FromLeaseView(view))
}
