package repository

import (
	"testing"

	"rental-portal-backend/internal/database/models"
	"rental-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// CorporationRepositoryTestSuite tests the CorporationRepository
type CorporationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *CorporationRepository
}

// SetupSuite runs before all tests in the suite
func (suite *CorporationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewCorporationRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *CorporationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *CorporationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *CorporationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// helper to insert a corporation directly via gorm
func (suite *CorporationRepositoryTestSuite) createCorporation(name string) *models.Corporation {
	corp := testutils.NewCorporationFactory().WithName(name)
	err := suite.baseTestSuite.DB.Create(corp).Error
	suite.NoError(err)
	return corp
}

// helper to insert a building under a corporation
func (suite *CorporationRepositoryTestSuite) createBuilding(corpID uuid.UUID, name string) *models.Building {
	building := testutils.NewBuildingFactory().WithCorporation(corpID)
	building.Name = name
	err := suite.baseTestSuite.DB.Create(building).Error
	suite.NoError(err)
	return building
}

// TestCreate tests creating a corporation
func (suite *CorporationRepositoryTestSuite) TestCreate() {
	corp := testutils.NewCorporationFactory().WithName("Acme Estates")

	err := suite.repo.Create(corp)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, corp.ID)

	retrieved, err := suite.repo.GetByID(corp.ID)
	suite.NoError(err)
	suite.Equal("Acme Estates", retrieved.Name)
}

// TestCreateDuplicateName tests that corporation names are unique
func (suite *CorporationRepositoryTestSuite) TestCreateDuplicateName() {
	suite.createCorporation("Acme Estates")

	dup := testutils.NewCorporationFactory().WithName("Acme Estates")
	err := suite.repo.Create(dup)

	suite.Error(err)
}

// TestGetByID tests retrieving a corporation by ID
func (suite *CorporationRepositoryTestSuite) TestGetByID() {
	corp := suite.createCorporation("Acme Estates")

	retrieved, err := suite.repo.GetByID(corp.ID)

	suite.NoError(err)
	suite.NotNil(retrieved)
	suite.Equal(corp.ID, retrieved.ID)
	suite.Equal("Acme Estates", retrieved.Name)
}

// TestGetByIDNotFound tests retrieving a non-existent corporation
func (suite *CorporationRepositoryTestSuite) TestGetByIDNotFound() {
	corp, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(corp)
}

// TestGetByName tests retrieving a corporation by its unique name
func (suite *CorporationRepositoryTestSuite) TestGetByName() {
	corp := suite.createCorporation("Acme Estates")

	retrieved, err := suite.repo.GetByName("Acme Estates")

	suite.NoError(err)
	suite.Equal(corp.ID, retrieved.ID)

	missing, err := suite.repo.GetByName("No Such Corp")
	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(missing)
}

// TestGetAll tests listing corporations ordered by name ascending
func (suite *CorporationRepositoryTestSuite) TestGetAll() {
	suite.createCorporation("Charlie Properties")
	suite.createCorporation("Alpha Holdings")
	suite.createCorporation("Bravo Estates")

	corps, total, err := suite.repo.GetAll(10, 0)

	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(corps, 3)
	suite.Equal("Alpha Holdings", corps[0].Name)
	suite.Equal("Bravo Estates", corps[1].Name)
	suite.Equal("Charlie Properties", corps[2].Name)
}

// TestGetAllWithPagination tests listing corporations with pagination
func (suite *CorporationRepositoryTestSuite) TestGetAllWithPagination() {
	for i := 0; i < 5; i++ {
		suite.createCorporation("Corp " + uuid.New().String()[:8])
	}

	corps, total, err := suite.repo.GetAll(2, 0)
	suite.NoError(err)
	suite.Len(corps, 2)
	suite.Equal(int64(5), total)

	corps, total, err = suite.repo.GetAll(2, 4)
	suite.NoError(err)
	suite.Len(corps, 1)
	suite.Equal(int64(5), total)
}

// TestGetWithBuildings tests preloading the buildings of a corporation
func (suite *CorporationRepositoryTestSuite) TestGetWithBuildings() {
	corp := suite.createCorporation("Acme Estates")
	suite.createBuilding(corp.ID, "North Tower")
	suite.createBuilding(corp.ID, "South Tower")

	// A building of another corporation must not leak in
	other := suite.createCorporation("Other Holdings")
	suite.createBuilding(other.ID, "Elsewhere")

	retrieved, err := suite.repo.GetWithBuildings(corp.ID)

	suite.NoError(err)
	suite.Len(retrieved.Buildings, 2)
}

// TestUpdate tests updating a corporation
func (suite *CorporationRepositoryTestSuite) TestUpdate() {
	corp := suite.createCorporation("Acme Estates")

	corp.Name = "Acme Estates International"
	err := suite.repo.Update(corp)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(corp.ID)
	suite.NoError(err)
	suite.Equal("Acme Estates International", retrieved.Name)
}

// TestDelete tests deleting a corporation and cascading to buildings
func (suite *CorporationRepositoryTestSuite) TestDelete() {
	corp := suite.createCorporation("Acme Estates")
	building := suite.createBuilding(corp.ID, "North Tower")

	err := suite.repo.Delete(corp.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID(corp.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)

	var count int64
	suite.baseTestSuite.DB.Model(&models.Building{}).Where("id = ?", building.ID).Count(&count)
	suite.Equal(int64(0), count)
}

// Run the test suite
func TestCorporationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CorporationRepositoryTestSuite))
}
