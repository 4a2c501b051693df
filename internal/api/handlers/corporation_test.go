package handlers

import (
	"net/http"
	"testing"

	"rental-portal-backend/internal/database/models"
	apperrors "rental-portal-backend/internal/errors"
	"rental-portal-backend/internal/mocks"
	"rental-portal-backend/internal/service"
	"rental-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// CorporationHandlerTestSuite defines the test suite for CorporationHandler
type CorporationHandlerTestSuite struct {
	suite.Suite
	ctrl                   *gomock.Controller
	mockCorporationService *mocks.MockCorporationServiceInterface
	handler                *CorporationHandler
	httpSuite              *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *CorporationHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockCorporationService = mocks.NewMockCorporationServiceInterface(suite.ctrl)
	suite.handler = NewCorporationHandler(suite.mockCorporationService)
	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	corps := v1.Group("/corporations")
	{
		corps.GET("", suite.handler.ListCorporations)
		corps.POST("", suite.handler.CreateCorporation)
		corps.GET("/:id", suite.handler.GetCorporation)
		corps.PUT("/:id", suite.handler.UpdateCorporation)
		corps.DELETE("/:id", suite.handler.DeleteCorporation)
		corps.GET("/:id/buildings", suite.handler.GetCorporationWithBuildings)
	}
}

// TearDownTest cleans up after each test
func (suite *CorporationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateCorporation tests creating a corporation
func (suite *CorporationHandlerTestSuite) TestCreateCorporation() {
	corp := &models.Corporation{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Acme Estates",
	}
	suite.mockCorporationService.EXPECT().
		Create(gomock.Any()).
		Return(corp, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/corporations", map[string]interface{}{
		"name": "Acme Estates",
	})

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response models.Corporation
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "Acme Estates", response.Name)
}

// TestCreateCorporationConflict tests the duplicate name mapping
func (suite *CorporationHandlerTestSuite) TestCreateCorporationConflict() {
	suite.mockCorporationService.EXPECT().
		Create(gomock.Any()).
		Return(nil, apperrors.ErrCorporationExists).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/corporations", map[string]interface{}{
		"name": "Acme Estates",
	})

	assert.Equal(suite.T(), http.StatusConflict, recorder.Code)
}

// TestCreateCorporationValidation tests the validation error mapping
func (suite *CorporationHandlerTestSuite) TestCreateCorporationValidation() {
	suite.mockCorporationService.EXPECT().
		Create(gomock.Any()).
		Return(nil, apperrors.NewValidationError("name", "is required")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/corporations", map[string]interface{}{
		"name": "",
	})

	assert.Equal(suite.T(), http.StatusUnprocessableEntity, recorder.Code)
}

// TestGetCorporation tests retrieving a corporation
func (suite *CorporationHandlerTestSuite) TestGetCorporation() {
	id := uuid.New()
	suite.mockCorporationService.EXPECT().
		GetByID(id).
		Return(&models.Corporation{BaseModel: models.BaseModel{ID: id}, Name: "Acme Estates"}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/corporations/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestGetCorporationNotFound tests the 404 mapping
func (suite *CorporationHandlerTestSuite) TestGetCorporationNotFound() {
	id := uuid.New()
	suite.mockCorporationService.EXPECT().
		GetByID(id).
		Return(nil, apperrors.ErrCorporationNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/corporations/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestGetCorporationInvalidUUID tests a malformed ID
func (suite *CorporationHandlerTestSuite) TestGetCorporationInvalidUUID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/corporations/not-a-uuid", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestListCorporations tests the paginated listing
func (suite *CorporationHandlerTestSuite) TestListCorporations() {
	suite.mockCorporationService.EXPECT().
		GetAll(2, 10).
		Return(&service.CorporationListResponse{
			Corporations: []models.Corporation{{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Acme Estates"}},
			Total:        11,
			Page:         2,
			PageSize:     10,
		}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/corporations?page=2&page_size=10", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.CorporationListResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), int64(11), response.Total)
	assert.Equal(suite.T(), 2, response.Page)
	assert.Len(suite.T(), response.Corporations, 1)
}

// TestGetCorporationWithBuildings tests the nested listing
func (suite *CorporationHandlerTestSuite) TestGetCorporationWithBuildings() {
	id := uuid.New()
	suite.mockCorporationService.EXPECT().
		GetWithBuildings(id).
		Return(&models.Corporation{
			BaseModel: models.BaseModel{ID: id},
			Name:      "Acme Estates",
			Buildings: []models.Building{{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "North Tower"}},
		}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/corporations/"+id.String()+"/buildings", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response models.Corporation
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response.Buildings, 1)
}

// TestUpdateCorporation tests updating a corporation
func (suite *CorporationHandlerTestSuite) TestUpdateCorporation() {
	id := uuid.New()
	suite.mockCorporationService.EXPECT().
		Update(id, gomock.Any()).
		Return(&models.Corporation{BaseModel: models.BaseModel{ID: id}, Name: "New Name"}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/corporations/"+id.String(), map[string]interface{}{
		"name": "New Name",
	})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestDeleteCorporation tests deleting a corporation
func (suite *CorporationHandlerTestSuite) TestDeleteCorporation() {
	id := uuid.New()
	suite.mockCorporationService.EXPECT().
		Delete(id).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/corporations/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response map[string]interface{}
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "Corporation deleted successfully", response["message"])
}

// TestDeleteCorporationNotFound tests the 404 mapping on delete
func (suite *CorporationHandlerTestSuite) TestDeleteCorporationNotFound() {
	id := uuid.New()
	suite.mockCorporationService.EXPECT().
		Delete(id).
		Return(apperrors.ErrCorporationNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/corporations/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// Run the test suite
func TestCorporationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CorporationHandlerTestSuite))
}
