package repository

import (
	"testing"

	"rental-portal-backend/internal/database/models"
	"rental-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// BuildingRepositoryTestSuite tests the BuildingRepository
type BuildingRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *BuildingRepository
}

// SetupSuite runs before all tests in the suite
func (suite *BuildingRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewBuildingRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *BuildingRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *BuildingRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *BuildingRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// helper to insert a corporation
func (suite *BuildingRepositoryTestSuite) createCorporation() *models.Corporation {
	corp := testutils.NewCorporationFactory().Create()
	suite.NoError(suite.baseTestSuite.DB.Create(corp).Error)
	return corp
}

// helper to insert a building under a corporation
func (suite *BuildingRepositoryTestSuite) createBuilding(corpID uuid.UUID, name string) *models.Building {
	building := testutils.NewBuildingFactory().WithCorporation(corpID)
	building.Name = name
	suite.NoError(suite.baseTestSuite.DB.Create(building).Error)
	return building
}

// TestCreate tests creating a building
func (suite *BuildingRepositoryTestSuite) TestCreate() {
	corp := suite.createCorporation()
	building := testutils.NewBuildingFactory().WithCorporation(corp.ID)

	err := suite.repo.Create(building)

	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(building.ID)
	suite.NoError(err)
	suite.Equal(corp.ID, retrieved.CorporationID)
	suite.NotEmpty(retrieved.Address)
	suite.NotEmpty(retrieved.City)
}

// TestCreateWithoutCorporation tests that the foreign key is enforced
func (suite *BuildingRepositoryTestSuite) TestCreateWithoutCorporation() {
	building := testutils.NewBuildingFactory().WithCorporation(uuid.New())

	err := suite.repo.Create(building)

	suite.Error(err)
}

// TestGetByIDNotFound tests retrieving a non-existent building
func (suite *BuildingRepositoryTestSuite) TestGetByIDNotFound() {
	building, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(building)
}

// TestGetByCorporationID tests listing a corporation's buildings with pagination
func (suite *BuildingRepositoryTestSuite) TestGetByCorporationID() {
	corp := suite.createCorporation()
	suite.createBuilding(corp.ID, "South Tower")
	suite.createBuilding(corp.ID, "North Tower")
	suite.createBuilding(corp.ID, "West Tower")

	other := suite.createCorporation()
	suite.createBuilding(other.ID, "Elsewhere")

	buildings, total, err := suite.repo.GetByCorporationID(corp.ID, 10, 0)

	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(buildings, 3)
	suite.Equal("North Tower", buildings[0].Name)

	page, total, err := suite.repo.GetByCorporationID(corp.ID, 2, 2)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(page, 1)
}

// TestGetWithProperties tests preloading a building's properties
func (suite *BuildingRepositoryTestSuite) TestGetWithProperties() {
	corp := suite.createCorporation()
	building := suite.createBuilding(corp.ID, "North Tower")
	for i := 0; i < 2; i++ {
		property := testutils.NewPropertyFactory().WithBuilding(building.ID)
		suite.NoError(suite.baseTestSuite.DB.Create(property).Error)
	}

	retrieved, err := suite.repo.GetWithProperties(building.ID)

	suite.NoError(err)
	suite.Len(retrieved.Properties, 2)
}

// TestUpdate tests updating a building
func (suite *BuildingRepositoryTestSuite) TestUpdate() {
	corp := suite.createCorporation()
	building := suite.createBuilding(corp.ID, "North Tower")

	building.Address = "Herengracht 100"
	building.City = "Amsterdam"
	suite.NoError(suite.repo.Update(building))

	retrieved, err := suite.repo.GetByID(building.ID)
	suite.NoError(err)
	suite.Equal("Herengracht 100", retrieved.Address)
	suite.Equal("Amsterdam", retrieved.City)
}

// TestDelete tests deleting a building and cascading to its properties
func (suite *BuildingRepositoryTestSuite) TestDelete() {
	corp := suite.createCorporation()
	building := suite.createBuilding(corp.ID, "North Tower")
	property := testutils.NewPropertyFactory().WithBuilding(building.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(property).Error)

	suite.NoError(suite.repo.Delete(building.ID))

	_, err := suite.repo.GetByID(building.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)

	var count int64
	suite.baseTestSuite.DB.Model(&models.Property{}).Where("id = ?", property.ID).Count(&count)
	suite.Equal(int64(0), count)
}

// Run the test suite
func TestBuildingRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(BuildingRepositoryTestSuite))
}
