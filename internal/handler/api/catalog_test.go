//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"clubvenue/internal/domain/catalog"
	"clubvenue/internal/handler/api"
	resdto "clubvenue/internal/handler/dto/response"
	"clubvenue/internal/usecase"
	"clubvenue/tests/common/httptest"
	usecasemock "clubvenue/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *usecasemock.MockCatalogQueries
	handler     *api.CatalogHandler
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = usecasemock.NewMockCatalogQueries(s.mockCtrl)
	s.handler = api.NewCatalogHandler(s.mockQueries)

	s.router.GET("/catalog/clubs", s.handler.ListClubs)
	s.router.GET("/catalog/venues", s.handler.ListVenues)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func (s *CatalogHandlerTestSuite) TestListClubs() {
	s.Run("success: returns 200 OK with the club list", func() {
		clubs := []catalog.Club{
			{ID: uuid.New(), Name: "Drama Society", GroupCategory: "cultural"},
			{ID: uuid.New(), Name: "Robotics Club", GroupCategory: "technical"},
		}
		s.mockQueries.EXPECT().ListClubs(gomock.Any()).Return(clubs, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/catalog/clubs", nil)

		var response []resdto.ClubResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal("Drama Society", response[0].Name)
		s.Equal("technical", response[1].GroupCategory)
	})

	s.Run("error: 503 when the catalog is unavailable", func() {
		s.mockQueries.EXPECT().ListClubs(gomock.Any()).
			Return(nil, usecase.ErrCatalogUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/catalog/clubs", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Catalog is unavailable")
	})
}

func (s *CatalogHandlerTestSuite) TestListVenues() {
	s.Run("success: venue categories are canonical", func() {
		venues := []catalog.Venue{
			{ID: uuid.New(), Name: "Main Auditorium", Category: catalog.CategoryRestrictedApproval},
			{ID: uuid.New(), Name: "Seminar Hall", Category: catalog.CategoryDirect},
		}
		s.mockQueries.EXPECT().ListVenues(gomock.Any()).Return(venues, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/catalog/venues", nil)

		var response []resdto.VenueResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal("B", response[0].Category)
		s.Equal("A", response[1].Category)
	})

	s.Run("error: 500 on an unexpected failure", func() {
		s.mockQueries.EXPECT().ListVenues(gomock.Any()).
			Return(nil, errors.New("boom")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/catalog/venues", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
