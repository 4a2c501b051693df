package service_test

import (
	"testing"

	"rental-portal-backend/internal/database/models"
	apperrors "rental-portal-backend/internal/errors"
	"rental-portal-backend/internal/mocks"
	"rental-portal-backend/internal/service"
	"rental-portal-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type PropertyServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockPropertyRepo *mocks.MockPropertyRepositoryInterface
	mockBuildingRepo *mocks.MockBuildingRepositoryInterface
	propertyService  *service.PropertyService
	validator        *validator.Validate
}

func (suite *PropertyServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPropertyRepo = mocks.NewMockPropertyRepositoryInterface(suite.ctrl)
	suite.mockBuildingRepo = mocks.NewMockBuildingRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.propertyService = service.NewPropertyService(suite.mockPropertyRepo, suite.mockBuildingRepo, suite.validator)
}

func (suite *PropertyServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PropertyServiceTestSuite) TestCreate_Success() {
	buildingID := uuid.New()
	suite.mockBuildingRepo.EXPECT().GetByID(buildingID).Return(&models.Building{
		BaseModel: models.BaseModel{ID: buildingID},
	}, nil)
	suite.mockPropertyRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(property *models.Property) error {
		property.ID = uuid.New()
		return nil
	})

	property, err := suite.propertyService.Create(&service.CreatePropertyRequest{
		BuildingID:  buildingID,
		Name:        "Unit A",
		MonthlyRent: decimal.NewFromFloat(1250.00),
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), buildingID, property.BuildingID)
	assert.True(suite.T(), property.MonthlyRent.Equal(decimal.NewFromFloat(1250.00)))
}

func (suite *PropertyServiceTestSuite) TestCreate_BuildingNotFound() {
	buildingID := uuid.New()
	suite.mockBuildingRepo.EXPECT().GetByID(buildingID).Return(nil, gorm.ErrRecordNotFound)

	property, err := suite.propertyService.Create(&service.CreatePropertyRequest{
		BuildingID: buildingID,
		Name:       "Unit A",
	})

	assert.Nil(suite.T(), property)
	assert.ErrorIs(suite.T(), err, apperrors.ErrBuildingNotFound)
}

func (suite *PropertyServiceTestSuite) TestGetByID_NotFound() {
	id := uuid.New()
	suite.mockPropertyRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	property, err := suite.propertyService.GetByID(id)

	assert.Nil(suite.T(), property)
	assert.ErrorIs(suite.T(), err, apperrors.ErrPropertyNotFound)
}

func (suite *PropertyServiceTestSuite) TestGetByBuilding_Success() {
	buildingID := uuid.New()
	suite.mockBuildingRepo.EXPECT().GetByID(buildingID).Return(&models.Building{
		BaseModel: models.BaseModel{ID: buildingID},
	}, nil)
	suite.mockPropertyRepo.EXPECT().GetByBuildingID(buildingID, 20, 0).Return([]models.Property{
		{BaseModel: models.BaseModel{ID: uuid.New()}, BuildingID: buildingID, Name: "Unit A"},
	}, int64(1), nil)

	resp, err := suite.propertyService.GetByBuilding(buildingID, 1, 20)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), resp.Total)
	assert.Len(suite.T(), resp.Properties, 1)
}

func (suite *PropertyServiceTestSuite) TestGetByBuilding_BuildingNotFound() {
	buildingID := uuid.New()
	suite.mockBuildingRepo.EXPECT().GetByID(buildingID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.propertyService.GetByBuilding(buildingID, 1, 20)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrBuildingNotFound)
}

func (suite *PropertyServiceTestSuite) TestIsActiveOn_Success() {
	id := uuid.New()
	suite.mockPropertyRepo.EXPECT().GetByID(id).Return(&models.Property{
		BaseModel: models.BaseModel{ID: id},
	}, nil)
	suite.mockPropertyRepo.EXPECT().IsActiveOn(id, testutils.Date(2024, 5, 1)).Return(true, nil)

	resp, err := suite.propertyService.IsActiveOn(id, "2024-05-01")

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), resp.Active)
	assert.Equal(suite.T(), "2024-05-01", resp.Date)
	assert.Equal(suite.T(), id, resp.PropertyID)
}

func (suite *PropertyServiceTestSuite) TestIsActiveOn_InvalidDate() {
	resp, err := suite.propertyService.IsActiveOn(uuid.New(), "05/01/2024")

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *PropertyServiceTestSuite) TestIsActiveOn_DefaultsToToday() {
	id := uuid.New()
	suite.mockPropertyRepo.EXPECT().GetByID(id).Return(&models.Property{
		BaseModel: models.BaseModel{ID: id},
	}, nil)
	suite.mockPropertyRepo.EXPECT().IsActiveOn(id, gomock.Any()).Return(false, nil)

	resp, err := suite.propertyService.IsActiveOn(id, "")

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), resp.Active)
	assert.NotEmpty(suite.T(), resp.Date)
}

func (suite *PropertyServiceTestSuite) TestUpdate_Success() {
	id := uuid.New()
	suite.mockPropertyRepo.EXPECT().GetByID(id).Return(&models.Property{
		BaseModel:   models.BaseModel{ID: id},
		Name:        "Unit A",
		MonthlyRent: decimal.NewFromFloat(1250.00),
	}, nil)
	suite.mockPropertyRepo.EXPECT().Update(gomock.Any()).Return(nil)

	property, err := suite.propertyService.Update(id, &service.UpdatePropertyRequest{
		Name:        "Unit A Renovated",
		MonthlyRent: decimal.NewFromFloat(1450.00),
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Unit A Renovated", property.Name)
	assert.True(suite.T(), property.MonthlyRent.Equal(decimal.NewFromFloat(1450.00)))
}

func (suite *PropertyServiceTestSuite) TestDelete_NotFound() {
	id := uuid.New()
	suite.mockPropertyRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	err := suite.propertyService.Delete(id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrPropertyNotFound)
}

func TestPropertyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PropertyServiceTestSuite))
}
