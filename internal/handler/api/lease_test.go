//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

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

type LeaseHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockLeaseCommands
	mockQueries  *queriesmock.MockLeaseQueries
	handler      *api.LeaseHandler
}

func (s *LeaseHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(validation.Register())
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockLeaseCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockLeaseQueries(s.mockCtrl)
	s.handler = api.NewLeaseHandler(s.mockCommands, s.mockQueries)

	v1 := s.router.Group("/v1", fakeAuth)
	v1.POST("/leases", s.handler.Create)
	v1.GET("/leases", s.handler.List)
	v1.GET("/leases/:id", s.handler.Get)
	v1.PATCH("/leases/:id", s.handler.Update)
	v1.DELETE("/leases/:id", s.handler.Delete)
}

func (s *LeaseHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLeaseHandlerSuite(t *testing.T) {
	suite.Run(t, new(LeaseHandlerTestSuite))
}

func (s *LeaseHandlerTestSuite) TestCreate() {
	url := "/v1/leases"
	lb := builder.NewLeaseBuilder()
	reqBody := lb.BuildCreateRequestDTO()

	s.Run("success: lessee defaults to the caller", func() {
		s.mockCommands.EXPECT().CreateLease(gomock.Any(), gomock.Any(), callerProject).
			DoAndReturn(func(_ context.Context, req commands.CreateLeaseRequest, _ string) (uuid.UUID, error) {
				s.Equal(callerProject, req.ProjectID)
				return lb.ID, nil
			}).Times(1)
		s.mockQueries.EXPECT().Get(gomock.Any(), lb.ID.String(), callerProject).Return(lb.BuildView(), nil).Times(1)

		body := testutil.JSONBody(s.T(), reqBody, testutil.Drop("project_id"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")

		var res resdto.LeaseResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal(lb.ID.String(), res.ID)
		s.Nil(res.OfferID)
		httptest.AssertLocation(s.T(), rec, "/v1/leases/"+lb.ID.String())
	})

	s.Run("error: 409 carries the blocking reservation", func() {
		s.mockCommands.EXPECT().CreateLease(gomock.Any(), gomock.Any(), callerProject).Return(uuid.Nil, errs.ErrResourceTimeConflict).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "conflict")
	})

	s.Run("error: 400 without a resource", func() {
		body := testutil.JSONBody(s.T(), reqBody, testutil.Drop("resource_uuid"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 on a truncated body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, `{"resource_uuid":`, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *LeaseHandlerTestSuite) TestList() {
	s.Run("success: offer filter is parsed", func() {
		offerID := uuid.New()
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), callerProject).
			DoAndReturn(func(_ context.Context, params queries.LeaseListParams, _ string) ([]*queries.LeaseView, error) {
				s.Require().NotNil(params.OfferID)
				s.Equal(offerID, *params.OfferID)
				return []*queries.LeaseView{builder.NewLeaseBuilder().BuildView()}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/v1/leases?offer_uuid="+offerID.String(), nil, "token")
		var body struct {
			Leases []resdto.LeaseResponse `json:"leases"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Leases, 1)
	})

	s.Run("error: 400 on malformed offer_uuid", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/v1/leases?offer_uuid=nope", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})

	s.Run("error: 400 from an invalid window", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), callerProject).Return(nil, errs.ErrInvalidTimeRange).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/v1/leases?start_time=2030-01-01T00:00:00Z", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *LeaseHandlerTestSuite) TestGetUpdateDelete() {
	lb := builder.NewLeaseBuilder()
	url := "/v1/leases/" + lb.ID.String()

	s.Run("get: 200", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), lb.ID.String(), callerProject).Return(lb.BuildView(), nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("get: 403 for uninvolved projects", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), lb.ID.String(), callerProject).Return(nil, errs.ErrForbidden).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("update: 200", func() {
		s.mockCommands.EXPECT().UpdateLease(gomock.Any(), lb.ID, gomock.Any(), callerProject).Return(nil).Times(1)
		s.mockQueries.EXPECT().Get(gomock.Any(), lb.ID.String(), callerProject).Return(lb.BuildView(), nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "active"}, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("update: 400 on unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "paused"}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("delete: purge destroys", func() {
		s.mockCommands.EXPECT().DestroyLease(gomock.Any(), lb.ID, callerProject).Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url+"?purge=1", nil, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("delete: 404", func() {
		s.mockCommands.EXPECT().CancelLease(gomock.Any(), lb.ID, callerProject).Return(errs.ErrLeaseNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "lease not found")
	})
}
