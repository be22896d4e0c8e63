//go:build unit

package api_test

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"lease-engine/internal/handler/api"
	resdto "lease-engine/internal/handler/dto/response"
	"lease-engine/internal/handler/validation"
	"lease-engine/internal/pkg/errs"
	"lease-engine/internal/usecase/commands"
	"lease-engine/internal/usecase/queries"
	"lease-engine/tests/common/builder"
	"lease-engine/tests/common/httptest"
	"lease-engine/tests/common/testutil"
	commandsmock "lease-engine/tests/mock/commands"
	queriesmock "lease-engine/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const callerProject = "owner"

// fakeAuth stands in for the bearer token middleware: any token
// authenticates as callerProject.
func fakeAuth(c *gin.Context) {
	if c.GetHeader("Authorization") == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
		return
	}
	c.Set("project_id", callerProject)
	c.Next()
}

type OfferHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOfferCommands
	mockQueries  *queriesmock.MockOfferQueries
	mockLeases   *queriesmock.MockLeaseQueries
	handler      *api.OfferHandler
}

func (s *OfferHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(validation.Register())
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOfferCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOfferQueries(s.mockCtrl)
	s.mockLeases = queriesmock.NewMockLeaseQueries(s.mockCtrl)
	s.handler = api.NewOfferHandler(s.mockCommands, s.mockQueries, s.mockLeases)

	v1 := s.router.Group("/v1", fakeAuth)
	v1.POST("/offers", s.handler.Create)
	v1.GET("/offers", s.handler.List)
	v1.GET("/offers/:id", s.handler.Get)
	v1.PATCH("/offers/:id", s.handler.Update)
	v1.DELETE("/offers/:id", s.handler.Delete)
	v1.POST("/offers/:id/claim", s.handler.Claim)
}

func (s *OfferHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOfferHandlerSuite(t *testing.T) {
	suite.Run(t, new(OfferHandlerTestSuite))
}

type testCaseHandler struct {
	name       string
	mutate     testutil.Mutation
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *OfferHandlerTestSuite) TestCreate() {
	url := "/v1/offers"
	ob := builder.NewOfferBuilder()
	reqBody := ob.BuildCreateRequestDTO()
	view := ob.BuildView()

	s.Run("success: returns 201 with the offer and its location", func() {
		s.mockCommands.EXPECT().CreateOffer(gomock.Any(), gomock.Any(), callerProject).
			DoAndReturn(func(_ context.Context, req commands.CreateOfferRequest, _ string) (uuid.UUID, error) {
				s.Equal("node-1", req.ResourceID)
				s.Equal("ironic_node", req.ResourceType)
				s.True(req.StartTime.Equal(ob.StartTime))
				return ob.ID, nil
			}).Times(1)
		s.mockQueries.EXPECT().Get(gomock.Any(), ob.ID.String(), callerProject).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var body resdto.OfferResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(ob.ID.String(), body.ID)
		s.Len(body.Availabilities, 1)
		httptest.AssertLocation(s.T(), rec, "/v1/offers/"+ob.ID.String())
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseHandler{
			{name: "missing resource_uuid", mutate: testutil.Drop("resource_uuid"), expectCode: http.StatusBadRequest},
			{name: "unknown resource_type", mutate: testutil.Set("resource_type", "toaster"), expectCode: http.StatusBadRequest},
			{name: "name too long", mutate: testutil.Set("name", strings.Repeat("a", 256)), expectCode: http.StatusBadRequest},
			{name: "malformed start_time", mutate: testutil.Set("start_time", "tomorrow"), expectCode: http.StatusBadRequest},
			{name: "dummy_node is accepted", mutate: testutil.Set("resource_type", "dummy_node"), expectCode: http.StatusCreated},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				if tc.expectCode == http.StatusCreated {
					s.mockCommands.EXPECT().CreateOffer(gomock.Any(), gomock.Any(), gomock.Any()).Return(ob.ID, nil).Times(1)
					s.mockQueries.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(view, nil).Times(1)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.JSONBody(s.T(), reqBody, tc.mutate), "token")
				if tc.expectCode == http.StatusCreated {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
				}
			})
		}
	})

	s.Run("error: 401 Unauthorized without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps use case errors to statuses", func() {
		cases := []struct {
			name   string
			err    error
			status int
		}{
			{"bad window", errs.ErrInvalidTimeRange, http.StatusBadRequest},
			{"not admin", errs.ErrNotResourceAdmin, http.StatusForbidden},
			{"unknown resource", errs.ErrResourceNotFound, http.StatusNotFound},
			{"conflict", errs.ErrResourceTimeConflict, http.StatusConflict},
			{"storage failure", errs.ErrDatabaseOperationFailed, http.StatusInternalServerError},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateOffer(gomock.Any(), gomock.Any(), callerProject).Return(uuid.Nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.status, "")
			})
		}
	})
}

// ================================================================================
// TestGet / TestList
// ================================================================================

func (s *OfferHandlerTestSuite) TestGet() {
	ob := builder.NewOfferBuilder()

	s.Run("success: by name", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), "node-1-offer", callerProject).Return(ob.BuildView(), nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/v1/offers/node-1-offer", nil, "token")

		var body resdto.OfferResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("node-1-offer", body.Name)
	})

	s.Run("error: 404 Not Found", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), "missing", callerProject).Return(nil, errs.ErrOfferNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/v1/offers/missing", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "offer not found")
	})

	s.Run("error: 409 Conflict on ambiguous name", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), "dup", callerProject).Return(nil, errs.ErrAmbiguousName).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/v1/offers/dup", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}

func (s *OfferHandlerTestSuite) TestList() {
	s.Run("success: binds the query string", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), callerProject).
			DoAndReturn(func(_ context.Context, params queries.OfferListParams, _ string) ([]*queries.OfferView, error) {
				s.Require().NotNil(params.ResourceID)
				s.Equal("rack-a-01", *params.ResourceID)
				s.Require().NotNil(params.Available.Start)
				s.True(params.Available.Start.Equal(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)))
				s.Require().NotNil(params.Status)
				s.Equal("any", *params.Status)
				return []*queries.OfferView{builder.NewOfferBuilder().BuildView()}, nil
			}).Times(1)

		url := "/v1/offers?resource_uuid=rack-a-01&available_start_time=2030-01-01T00:00:00Z&available_end_time=2030-01-02T00:00:00Z&status=any"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var body struct {
			Offers []resdto.OfferResponse `json:"offers"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Offers, 1)
	})

	s.Run("success: empty list renders as an array", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), callerProject).Return([]*queries.OfferView{}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/v1/offers", nil, "token")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"offers":[]}`, rec.Body.String())
	})

	s.Run("error: 400 on unknown time filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/v1/offers?time_filter_type=during", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})
}

// ================================================================================
// TestUpdate / TestDelete
// ================================================================================

func (s *OfferHandlerTestSuite) TestUpdate() {
	ob := builder.NewOfferBuilder()
	url := "/v1/offers/" + ob.ID.String()

	s.Run("success: returns the updated offer", func() {
		s.mockCommands.EXPECT().UpdateOffer(gomock.Any(), ob.ID, gomock.Any(), callerProject).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, req commands.UpdateOfferRequest, _ string) error {
				s.Require().NotNil(req.Name)
				s.Equal("renamed", *req.Name)
				s.Nil(req.StartTime)
				return nil
			}).Times(1)
		s.mockQueries.EXPECT().Get(gomock.Any(), ob.ID.String(), callerProject).Return(ob.BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"name": "renamed"}, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "sold"}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/v1/offers/not-a-uuid", map[string]any{}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 409 when the new window collides", func() {
		s.mockCommands.EXPECT().UpdateOffer(gomock.Any(), ob.ID, gomock.Any(), callerProject).Return(errs.ErrResourceTimeConflict).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"end_time": "2031-01-01T00:00:00Z"}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}

func (s *OfferHandlerTestSuite) TestDelete() {
	id := uuid.New()
	url := "/v1/offers/" + id.String()

	s.Run("success: cancels by default", func() {
		s.mockCommands.EXPECT().CancelOffer(gomock.Any(), id, callerProject).Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: purge destroys", func() {
		s.mockCommands.EXPECT().DestroyOffer(gomock.Any(), id, callerProject).Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url+"?purge=true", nil, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 when already cancelled", func() {
		s.mockCommands.EXPECT().CancelOffer(gomock.Any(), id, callerProject).Return(errs.ErrInvalidStatus).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}

// ================================================================================
// TestClaim
// ================================================================================

func (s *OfferHandlerTestSuite) TestClaim() {
	ob := builder.NewOfferBuilder()
	lb := builder.NewLeaseBuilder().FromOffer(ob)
	url := "/v1/offers/" + ob.ID.String() + "/claim"

	s.Run("success: empty body claims from now", func() {
		s.mockCommands.EXPECT().ClaimOffer(gomock.Any(), ob.ID, gomock.Any(), callerProject).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, req commands.ClaimOfferRequest, _ string) (uuid.UUID, error) {
				s.Nil(req.StartTime)
				s.Nil(req.EndTime)
				return lb.ID, nil
			}).Times(1)
		s.mockLeases.EXPECT().Get(gomock.Any(), lb.ID.String(), callerProject).Return(lb.BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")

		var body resdto.LeaseResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Require().NotNil(body.OfferID)
		s.Equal(ob.ID.String(), *body.OfferID)
		httptest.AssertLocation(s.T(), rec, "/v1/leases/"+lb.ID.String())
	})

	s.Run("error: 409 when the window is taken", func() {
		s.mockCommands.EXPECT().ClaimOffer(gomock.Any(), ob.ID, gomock.Any(), callerProject).Return(uuid.Nil, errs.ErrOfferNoTimeAvailabilities).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"start_time": "2030-01-01T00:00:00Z"}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "no availability")
	})

	s.Run("error: 403 on a restricted offer", func() {
		s.mockCommands.EXPECT().ClaimOffer(gomock.Any(), ob.ID, gomock.Any(), callerProject).Return(uuid.Nil, errs.ErrOfferNotClaimable).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}
