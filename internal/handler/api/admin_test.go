//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"casegate/internal/handler/api"
	resdto "casegate/internal/handler/dto/response"
	"casegate/internal/handler/middleware"
	"casegate/internal/pkg/config"
	"casegate/internal/pkg/errs"
	"casegate/internal/pkg/jwt"
	"casegate/internal/usecase/queries"
	"casegate/tests/common/authtest"
	"casegate/tests/common/builder"
	"casegate/tests/common/httptest"
	queriesmock "casegate/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockUnlockQueries
	jwt         *authtest.JWTHelper
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	cfg := config.NewTestConfig()
	s.jwt = authtest.NewJWTHelper(cfg.Admin)
	auth := middleware.NewAuthMiddleware(jwt.NewService(cfg.Admin.JWTSecret))

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockUnlockQueries(s.mockCtrl)
	s.router.GET("/api/admin/unlocks", auth.RequireAdmin(), api.NewAdminHandler(s.mockQueries).ListUnlocks)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) TestListUnlocks() {
	redeemedAt := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	pending := builder.NewUnlockBuilder().BuildView()
	redeemed := builder.NewUnlockBuilder().With(func(b *builder.UnlockBuilder) {
		b.Email = "c@d.de"
	}).Unlocked(redeemedAt).BuildView()

	s.mockQueries.EXPECT().ListUnlocks(gomock.Any(), queries.UnlockListFilter{CaseStudyID: "cs1", Limit: 10}).
		Return([]queries.UnlockView{redeemed, pending}, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/unlocks?case_study_id=cs1&limit=10", nil, s.jwt.AdminToken(s.T()))

	var got resdto.UnlockListResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
	want := resdto.UnlockListResponse{
		Count: 2,
		Items: []resdto.UnlockListItem{
			{ID: redeemed.ID, Email: "c@d.de", CaseStudyID: "cs1", UnlockedAt: &redeemedAt, CreatedAt: redeemed.CreatedAt},
			{ID: pending.ID, Email: "a@b.de", CaseStudyID: "cs1", CreatedAt: pending.CreatedAt},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		s.T().Errorf("response mismatch (-want +got):\n%s", diff)
	}
	s.NotContains(w.Body.String(), "token")
}

func (s *AdminHandlerTestSuite) TestListUnlocks_Auth() {
	tests := []struct {
		name        string
		token       func() string
		expectCode  int
		expectError string
	}{
		{"no token", func() string { return "" }, http.StatusUnauthorized, "Access token required"},
		{"garbage token", func() string { return "garbage" }, http.StatusUnauthorized, "Invalid or expired token"},
		{"expired token", func() string { return s.jwt.CreateExpiredToken(s.T(), "x", jwt.RoleAdmin) }, http.StatusUnauthorized, "Invalid or expired token"},
		{"non-admin role", func() string { return s.jwt.GenerateToken(s.T(), "x", "editor") }, http.StatusForbidden, "Insufficient permissions"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/unlocks", nil, tt.token())

			httptest.AssertErrorResponse(s.T(), w, tt.expectCode, tt.expectError)
		})
	}
}

func (s *AdminHandlerTestSuite) TestListUnlocks_BadInput() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/unlocks?limit=ten", nil, s.jwt.AdminToken(s.T()))
	httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid limit")

	s.mockQueries.EXPECT().ListUnlocks(gomock.Any(), gomock.Any()).Return(nil, errs.Mark(errs.New("bad"), errs.ErrValidation))
	w = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/unlocks?case_study_id=a%20b", nil, s.jwt.AdminToken(s.T()))
	httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid case study id")
}
