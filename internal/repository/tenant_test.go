package repository

import (
	"testing"
	"time"

	"rental-portal-backend/internal/database/models"
	"rental-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TenantRepositoryTestSuite tests the TenantRepository
type TenantRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TenantRepository
}

// SetupSuite runs before all tests in the suite
func (suite *TenantRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewTenantRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *TenantRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TenantRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TenantRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// helper to insert a tenant directly via gorm
func (suite *TenantRepositoryTestSuite) createTenant(name, email string) *models.Tenant {
	tenant := testutils.NewTenantFactory().WithEmail(email)
	tenant.Name = name
	suite.NoError(suite.baseTestSuite.DB.Create(tenant).Error)
	return tenant
}

// helper to build a period the tenant can be attached to
func (suite *TenantRepositoryTestSuite) createPeriod(start time.Time, end *time.Time) *models.TenancyPeriod {
	corp := testutils.NewCorporationFactory().Create()
	suite.NoError(suite.baseTestSuite.DB.Create(corp).Error)
	building := testutils.NewBuildingFactory().WithCorporation(corp.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(building).Error)
	property := testutils.NewPropertyFactory().WithBuilding(building.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(property).Error)
	period := testutils.NewTenancyPeriodFactory().WithProperty(property.ID)
	period.StartDate = start
	period.EndDate = end
	suite.NoError(suite.baseTestSuite.DB.Create(period).Error)
	return period
}

// helper to attach a tenant to a period
func (suite *TenantRepositoryTestSuite) attach(periodID, tenantID uuid.UUID) {
	suite.NoError(suite.baseTestSuite.DB.Create(&models.TenancyAssignment{
		TenancyPeriodID: periodID,
		TenantID:        tenantID,
	}).Error)
}

// TestCreate tests creating a tenant
func (suite *TenantRepositoryTestSuite) TestCreate() {
	tenant := testutils.NewTenantFactory().WithEmail("alice@example.com")

	err := suite.repo.Create(tenant)

	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(tenant.ID)
	suite.NoError(err)
	suite.Equal("alice@example.com", retrieved.Email)
	suite.False(retrieved.IsDeleted())
}

// TestCreateDuplicateEmail tests the unique email constraint on live tenants
func (suite *TenantRepositoryTestSuite) TestCreateDuplicateEmail() {
	suite.createTenant("Alice", "alice@example.com")

	dup := testutils.NewTenantFactory().WithEmail("alice@example.com")
	err := suite.repo.Create(dup)

	suite.Error(err)
}

// TestGetByEmail tests retrieving a tenant by email
func (suite *TenantRepositoryTestSuite) TestGetByEmail() {
	tenant := suite.createTenant("Alice", "alice@example.com")

	retrieved, err := suite.repo.GetByEmail("alice@example.com")

	suite.NoError(err)
	suite.Equal(tenant.ID, retrieved.ID)

	missing, err := suite.repo.GetByEmail("nobody@example.com")
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(missing)
}

// TestGetAll tests listing tenants ordered by name
func (suite *TenantRepositoryTestSuite) TestGetAll() {
	suite.createTenant("Charlie", "charlie@example.com")
	suite.createTenant("Alice", "alice@example.com")
	suite.createTenant("Bob", "bob@example.com")

	tenants, total, err := suite.repo.GetAll(10, 0)

	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(tenants, 3)
	suite.Equal("Alice", tenants[0].Name)
	suite.Equal("Bob", tenants[1].Name)
	suite.Equal("Charlie", tenants[2].Name)
}

// TestGetAllExcludesSoftDeleted tests that removed tenants are not listed
func (suite *TenantRepositoryTestSuite) TestGetAllExcludesSoftDeleted() {
	suite.createTenant("Alice", "alice@example.com")
	removed := suite.createTenant("Bob", "bob@example.com")
	suite.NoError(suite.repo.SoftDelete(removed.ID))

	tenants, total, err := suite.repo.GetAll(10, 0)

	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(tenants, 1)
	suite.Equal("Alice", tenants[0].Name)
}

// TestGetWithTenancyPeriods tests preloading a tenant's periods
func (suite *TenantRepositoryTestSuite) TestGetWithTenancyPeriods() {
	tenant := suite.createTenant("Alice", "alice@example.com")
	period := suite.createPeriod(testutils.Date(2024, 1, 1), testutils.DatePtr(2024, 12, 31))
	suite.attach(period.ID, tenant.ID)

	retrieved, err := suite.repo.GetWithTenancyPeriods(tenant.ID)

	suite.NoError(err)
	suite.Len(retrieved.TenancyPeriods, 1)
	suite.Equal(period.ID, retrieved.TenancyPeriods[0].ID)
}

// TestUpdate tests updating tenant contact details
func (suite *TenantRepositoryTestSuite) TestUpdate() {
	tenant := suite.createTenant("Alice", "alice@example.com")

	tenant.Phone = "+31-6-99900001"
	tenant.Comments = "prefers email contact"
	suite.NoError(suite.repo.Update(tenant))

	retrieved, err := suite.repo.GetByID(tenant.ID)
	suite.NoError(err)
	suite.Equal("+31-6-99900001", retrieved.Phone)
	suite.Equal("prefers email contact", retrieved.Comments)
}

// TestSoftDelete tests that removal hides the tenant but keeps the row
func (suite *TenantRepositoryTestSuite) TestSoftDelete() {
	tenant := suite.createTenant("Alice", "alice@example.com")
	period := suite.createPeriod(testutils.Date(2024, 1, 1), testutils.DatePtr(2024, 12, 31))
	suite.attach(period.ID, tenant.ID)

	suite.NoError(suite.repo.SoftDelete(tenant.ID))

	_, err := suite.repo.GetByID(tenant.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)

	// The row survives, flagged as deleted
	var raw models.Tenant
	suite.NoError(suite.baseTestSuite.DB.Unscoped().First(&raw, "id = ?", tenant.ID).Error)
	suite.True(raw.IsDeleted())

	// Historic attachments are kept for audit
	var count int64
	suite.baseTestSuite.DB.Model(&models.TenancyAssignment{}).Where("tenant_id = ?", tenant.ID).Count(&count)
	suite.Equal(int64(1), count)
}

// TestEmailReusableAfterSoftDelete tests the partial unique index on email
func (suite *TenantRepositoryTestSuite) TestEmailReusableAfterSoftDelete() {
	original := suite.createTenant("Alice", "alice@example.com")
	suite.NoError(suite.repo.SoftDelete(original.ID))

	replacement := testutils.NewTenantFactory().WithEmail("alice@example.com")
	err := suite.repo.Create(replacement)

	suite.NoError(err)
}

// TestRestore tests reversing a soft delete
func (suite *TenantRepositoryTestSuite) TestRestore() {
	tenant := suite.createTenant("Alice", "alice@example.com")
	suite.NoError(suite.repo.SoftDelete(tenant.ID))

	suite.NoError(suite.repo.Restore(tenant.ID))

	retrieved, err := suite.repo.GetByID(tenant.ID)
	suite.NoError(err)
	suite.False(retrieved.IsDeleted())
	suite.Equal("alice@example.com", retrieved.Email)
}

// TestForceDelete tests permanent removal together with attachments
func (suite *TenantRepositoryTestSuite) TestForceDelete() {
	tenant := suite.createTenant("Alice", "alice@example.com")
	period := suite.createPeriod(testutils.Date(2024, 1, 1), testutils.DatePtr(2024, 12, 31))
	suite.attach(period.ID, tenant.ID)

	suite.NoError(suite.repo.ForceDelete(tenant.ID))

	var count int64
	suite.baseTestSuite.DB.Unscoped().Model(&models.Tenant{}).Where("id = ?", tenant.ID).Count(&count)
	suite.Equal(int64(0), count)

	suite.baseTestSuite.DB.Model(&models.TenancyAssignment{}).Where("tenant_id = ?", tenant.ID).Count(&count)
	suite.Equal(int64(0), count)

	// The period itself is untouched
	var periodCount int64
	suite.baseTestSuite.DB.Model(&models.TenancyPeriod{}).Where("id = ?", period.ID).Count(&periodCount)
	suite.Equal(int64(1), periodCount)
}

// TestForceDeleteWorksOnSoftDeleted tests purging an already removed tenant
func (suite *TenantRepositoryTestSuite) TestForceDeleteWorksOnSoftDeleted() {
	tenant := suite.createTenant("Alice", "alice@example.com")
	suite.NoError(suite.repo.SoftDelete(tenant.ID))

	suite.NoError(suite.repo.ForceDelete(tenant.ID))

	var count int64
	suite.baseTestSuite.DB.Unscoped().Model(&models.Tenant{}).Where("id = ?", tenant.ID).Count(&count)
	suite.Equal(int64(0), count)
}

// Run the test suite
func TestTenantRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TenantRepositoryTestSuite))
}
