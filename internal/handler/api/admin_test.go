//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"circulation/internal/handler/api"
	"circulation/internal/pkg/clock"
	"circulation/internal/pkg/jwt"
	"circulation/internal/usecase/commands"
	"circulation/tests/common/httptest"
	"circulation/tests/common/testutil"
	commandsmock "circulation/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockOverdue *commandsmock.MockOverdueCommands
	mockCatalog *commandsmock.MockCatalogCommands
	handler     *api.AdminHandler
	role        string
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockOverdue = commandsmock.NewMockOverdueCommands(s.mockCtrl)
	s.mockCatalog = commandsmock.NewMockCatalogCommands(s.mockCtrl)
	s.handler = api.NewAdminHandler(s.mockOverdue, s.mockCatalog, clock.NewMockClock(handlerNow))

	s.role = jwt.RoleStaff

	// Mock authentication middleware for testing; role gating itself is
	// exercised through the staff check below.
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("patron_id", uuid.New())
		c.Set("patron_role", s.role)
		c.Next()
	}
	staffOnly := func(c *gin.Context) {
		if s.role != jwt.RoleStaff {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}
		c.Next()
	}

	// Setup routes
	s.router.POST("/admin/sweeps/overdue", authMiddleware, staffOnly, s.handler.SweepOverdue)
	s.router.PUT("/admin/items/:id/metadata", authMiddleware, staffOnly, s.handler.UpdateItemMetadata)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

// ================================================================================
// TestSweepOverdue
// ================================================================================

func (s *AdminHandlerTestSuite) TestSweepOverdue() {
	url := "/admin/sweeps/overdue"

	s.Run("success: empty body sweeps as of now", func() {
		s.mockOverdue.EXPECT().ProcessOverdue(gomock.Any(), handlerNow).
			Return(&commands.Report{Processed: 3, Skipped: 1}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(float64(3), body["processed"])
		s.Equal(float64(1), body["skipped"])
		s.Equal(float64(0), body["failed"])
	})

	s.Run("success: explicit as_of is honoured", func() {
		asOf := time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC)
		s.mockOverdue.EXPECT().ProcessOverdue(gomock.Any(), asOf).
			Return(&commands.Report{}, nil).Times(1)

		reqBody := map[string]any{"as_of": asOf.Format(time.RFC3339)}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 403 for a non-staff caller", func() {
		s.role = jwt.RolePatron
		defer func() { s.role = jwt.RoleStaff }()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestUpdateItemMetadata
// ================================================================================

func (s *AdminHandlerTestSuite) TestUpdateItemMetadata() {
	itemID := uuid.New()
	url := "/admin/items/" + itemID.String() + "/metadata"

	reqBody := map[string]any{"title": "Corrected Title", "author": "Corrected Author"}

	s.Run("success: returns sync counts", func() {
		s.mockCatalog.EXPECT().SyncItemMetadata(gomock.Any(), itemID, "Corrected Title", "Corrected Author").
			Return(&commands.SyncResult{BorrowsTouched: 4, ReservationsTouched: 2}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(float64(4), body["borrowsTouched"])
		s.Equal(float64(2), body["reservationsTouched"])
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, tc := range []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing title", mutate: testutil.Field("title", nil)},
			{name: "missing author", mutate: testutil.Field("author", nil)},
			{name: "empty title", mutate: testutil.Field("title", "")},
		} {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 404 for unknown item", func() {
		s.mockCatalog.EXPECT().SyncItemMetadata(gomock.Any(), itemID, "Corrected Title", "Corrected Author").
			Return(nil, commands.ErrItemNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Item not found")
	})

	s.Run("error: 400 for malformed item ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/admin/items/not-a-uuid/metadata", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid item ID")
	})
}
