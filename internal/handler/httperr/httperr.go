package httperr

import (
	"errors"
	"log/slog"
	"net/http"

	"lease-engine/internal/domain/reservation"
	"lease-engine/internal/domain/resource"
	"lease-engine/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const stackLines = 20

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// ConflictDetail names the reservation that blocked a request.
type ConflictDetail struct {
	ResourceType string `json:"resource_type"`
	ResourceID   string `json:"resource_uuid"`
	Kind         string `json:"conflict_kind"`
	ID           string `json:"conflict_uuid"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail
	if detail == nil && status >= http.StatusInternalServerError && gin.Mode() == gin.DebugMode {
		resp.Detail = gin.H{"stack": errs.ExtractStackLines(err, stackLines)}
	}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type mapping struct {
	sentinel error
	status   int
}

// Order matters: the first sentinel err carries decides the status.
var mappings = []mapping{
	{errs.ErrInvalidTimeRange, http.StatusBadRequest},
	{errs.ErrInvalidProperties, http.StatusBadRequest},
	{errs.ErrSameOwner, http.StatusBadRequest},
	{resource.ErrEmptyResourceType, http.StatusBadRequest},
	{resource.ErrEmptyResourceID, http.StatusBadRequest},
	{resource.ErrResourceIDTooLong, http.StatusBadRequest},
	{errs.ErrResourceTimeConflict, http.StatusConflict},
	{errs.ErrOfferNoTimeAvailabilities, http.StatusConflict},
	{errs.ErrInvalidStatus, http.StatusConflict},
	{errs.ErrAmbiguousName, http.StatusConflict},
	{errs.ErrOfferNotFound, http.StatusNotFound},
	{errs.ErrLeaseNotFound, http.StatusNotFound},
	{errs.ErrOwnerChangeNotFound, http.StatusNotFound},
	{errs.ErrResourceNotFound, http.StatusNotFound},
	{errs.ErrProjectNotFound, http.StatusNotFound},
	{errs.ErrNotResourceAdmin, http.StatusForbidden},
	{errs.ErrOfferNotClaimable, http.StatusForbidden},
	{errs.ErrForbidden, http.StatusForbidden},
}

// StatusOf maps a use case error to its HTTP status.
func StatusOf(err error) int {
	for _, m := range mappings {
		if errs.Is(err, m.sentinel) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}

// Abort renders err with the status its sentinel maps to. Unclassified
// errors are reported as a generic internal error.
func Abort(c *gin.Context, err error) {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		slog.Error("request failed", "path", c.Request.URL.Path, "error", err)
		AbortWithError(c, status, err, "Internal server error", nil)
		return
	}

	var detail any
	var conflict *reservation.ConflictError
	if errors.As(err, &conflict) {
		detail = ConflictDetail{
			ResourceType: conflict.Resource.Type,
			ResourceID:   conflict.Resource.ID,
			Kind:         string(conflict.Occupant.Kind),
			ID:           conflict.Occupant.ID.String(),
		}
	}
	AbortWithError(c, status, err, err.Error(), detail)
}
