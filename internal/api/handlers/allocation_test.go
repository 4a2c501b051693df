package handlers

import (
	"errors"
	"net/http"
	"testing"

	"rental-portal-backend/internal/database/models"
	apperrors "rental-portal-backend/internal/errors"
	"rental-portal-backend/internal/mocks"
	"rental-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AllocationHandlerTestSuite defines the test suite for AllocationHandler
type AllocationHandlerTestSuite struct {
	suite.Suite
	ctrl                  *gomock.Controller
	mockAllocationService *mocks.MockAllocationServiceInterface
	handler               *AllocationHandler
	httpSuite             *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *AllocationHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAllocationService = mocks.NewMockAllocationServiceInterface(suite.ctrl)
	suite.handler = NewAllocationHandler(suite.mockAllocationService)
	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	v1.POST("/properties/:id/createRentalContract", suite.handler.CreateRentalContract)
	v1.GET("/properties/:id/tenants", suite.handler.ListPropertyTenants)
	v1.POST("/tenants/:id/move", suite.handler.MoveTenant)
}

// TearDownTest cleans up after each test
func (suite *AllocationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func contractBody() map[string]interface{} {
	return map[string]interface{}{
		"start_date": "2024-01-01",
		"end_date":   "2024-12-31",
		"tenants": []map[string]interface{}{
			{"name": "Alice", "email": "alice@example.com"},
		},
	}
}

// TestCreateRentalContract tests the happy path
func (suite *AllocationHandlerTestSuite) TestCreateRentalContract() {
	propertyID := uuid.New()
	period := &models.TenancyPeriod{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		PropertyID: propertyID,
		StartDate:  testutils.Date(2024, 1, 1),
		EndDate:    testutils.DatePtr(2024, 12, 31),
	}

	suite.mockAllocationService.EXPECT().
		CreateRentalContract(propertyID, gomock.Any()).
		Return(period, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/properties/"+propertyID.String()+"/createRentalContract", contractBody())

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response map[string]interface{}
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "Rental contract created successfully", response["message"])
	assert.NotNil(suite.T(), response["tenancy_period"])
}

// TestCreateRentalContractInvalidUUID tests a malformed property ID
func (suite *AllocationHandlerTestSuite) TestCreateRentalContractInvalidUUID() {
	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/properties/not-a-uuid/createRentalContract", contractBody())

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestCreateRentalContractPropertyNotFound tests the 404 mapping
func (suite *AllocationHandlerTestSuite) TestCreateRentalContractPropertyNotFound() {
	propertyID := uuid.New()
	suite.mockAllocationService.EXPECT().
		CreateRentalContract(propertyID, gomock.Any()).
		Return(nil, apperrors.ErrPropertyNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/properties/"+propertyID.String()+"/createRentalContract", contractBody())

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestCreateRentalContractOverlap tests that a date collision maps to 422
func (suite *AllocationHandlerTestSuite) TestCreateRentalContractOverlap() {
	propertyID := uuid.New()
	suite.mockAllocationService.EXPECT().
		CreateRentalContract(propertyID, gomock.Any()).
		Return(nil, apperrors.ErrTenancyOverlap).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/properties/"+propertyID.String()+"/createRentalContract", contractBody())

	assert.Equal(suite.T(), http.StatusUnprocessableEntity, recorder.Code)
}

// TestCreateRentalContractValidation tests that a validation error maps to 422
func (suite *AllocationHandlerTestSuite) TestCreateRentalContractValidation() {
	propertyID := uuid.New()
	suite.mockAllocationService.EXPECT().
		CreateRentalContract(propertyID, gomock.Any()).
		Return(nil, apperrors.NewValidationError("end_date", "must be after start_date")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/properties/"+propertyID.String()+"/createRentalContract", contractBody())

	assert.Equal(suite.T(), http.StatusUnprocessableEntity, recorder.Code)
}

// TestCreateRentalContractTransactionFailure tests the 500 mapping
func (suite *AllocationHandlerTestSuite) TestCreateRentalContractTransactionFailure() {
	propertyID := uuid.New()
	txErr := apperrors.NewTransactionError("create rental contract", errors.New("serialization failure"), true)
	suite.mockAllocationService.EXPECT().
		CreateRentalContract(propertyID, gomock.Any()).
		Return(nil, txErr).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/properties/"+propertyID.String()+"/createRentalContract", contractBody())

	assert.Equal(suite.T(), http.StatusInternalServerError, recorder.Code)

	var response map[string]interface{}
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "Failed to create rental contract", response["message"])
	assert.NotEmpty(suite.T(), response["error"])
}

// TestListPropertyTenants tests listing tenants of a property
func (suite *AllocationHandlerTestSuite) TestListPropertyTenants() {
	propertyID := uuid.New()
	tenants := []models.Tenant{
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Alice", Email: "alice@example.com"},
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Bob", Email: "bob@example.com"},
	}
	suite.mockAllocationService.EXPECT().
		ListPropertyTenants(propertyID).
		Return(tenants, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/properties/"+propertyID.String()+"/tenants", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response []models.Tenant
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response, 2)
}

// TestListPropertyTenantsNotFound tests the 404 mapping
func (suite *AllocationHandlerTestSuite) TestListPropertyTenantsNotFound() {
	propertyID := uuid.New()
	suite.mockAllocationService.EXPECT().
		ListPropertyTenants(propertyID).
		Return(nil, apperrors.ErrPropertyNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/properties/"+propertyID.String()+"/tenants", nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestMoveTenant tests the happy path
func (suite *AllocationHandlerTestSuite) TestMoveTenant() {
	tenantID := uuid.New()
	targetID := uuid.New()
	tenant := &models.Tenant{
		BaseModel: models.BaseModel{ID: tenantID},
		Name:      "Alice",
		Email:     "alice@example.com",
	}

	suite.mockAllocationService.EXPECT().
		MoveTenant(tenantID, gomock.Any()).
		Return(tenant, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/tenants/"+tenantID.String()+"/move", map[string]interface{}{
		"target_tenancy_period_id": targetID.String(),
		"start_date":               "2024-02-01",
		"end_date":                 "2024-03-31",
	})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response map[string]interface{}
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "Tenant moved successfully", response["message"])
	assert.NotNil(suite.T(), response["tenant"])
}

// TestMoveTenantAtCapacity tests that a full target period maps to 422
func (suite *AllocationHandlerTestSuite) TestMoveTenantAtCapacity() {
	tenantID := uuid.New()
	suite.mockAllocationService.EXPECT().
		MoveTenant(tenantID, gomock.Any()).
		Return(nil, apperrors.ErrPeriodAtCapacity).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/tenants/"+tenantID.String()+"/move", map[string]interface{}{
		"target_tenancy_period_id": uuid.New().String(),
		"start_date":               "2024-02-01",
		"end_date":                 "2024-03-31",
	})

	assert.Equal(suite.T(), http.StatusUnprocessableEntity, recorder.Code)
}

// TestMoveTenantNotFound tests the 404 mapping
func (suite *AllocationHandlerTestSuite) TestMoveTenantNotFound() {
	tenantID := uuid.New()
	suite.mockAllocationService.EXPECT().
		MoveTenant(tenantID, gomock.Any()).
		Return(nil, apperrors.ErrTenantNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/tenants/"+tenantID.String()+"/move", map[string]interface{}{
		"target_tenancy_period_id": uuid.New().String(),
		"start_date":               "2024-02-01",
		"end_date":                 "2024-03-31",
	})

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestMoveTenantTransactionFailure tests the 500 mapping
func (suite *AllocationHandlerTestSuite) TestMoveTenantTransactionFailure() {
	tenantID := uuid.New()
	txErr := apperrors.NewTransactionError("move tenant", errors.New("deadlock detected"), false)
	suite.mockAllocationService.EXPECT().
		MoveTenant(tenantID, gomock.Any()).
		Return(nil, txErr).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/tenants/"+tenantID.String()+"/move", map[string]interface{}{
		"target_tenancy_period_id": uuid.New().String(),
		"start_date":               "2024-02-01",
		"end_date":                 "2024-03-31",
	})

	assert.Equal(suite.T(), http.StatusInternalServerError, recorder.Code)

	var response map[string]interface{}
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "Failed to move tenant", response["message"])
}

// Run the test suite
func TestAllocationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AllocationHandlerTestSuite))
}
