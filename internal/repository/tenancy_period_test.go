package repository

import (
	"testing"
	"time"

	"rental-portal-backend/internal/database/models"
	"rental-portal-backend/internal/daterange"
	"rental-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TenancyPeriodRepositoryTestSuite tests the TenancyPeriodRepository
type TenancyPeriodRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TenancyPeriodRepository
}

// SetupSuite runs before all tests in the suite
func (suite *TenancyPeriodRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewTenancyPeriodRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *TenancyPeriodRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TenancyPeriodRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TenancyPeriodRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// helper to build the corporation -> building -> property chain
func (suite *TenancyPeriodRepositoryTestSuite) createProperty() *models.Property {
	corp := testutils.NewCorporationFactory().Create()
	suite.NoError(suite.baseTestSuite.DB.Create(corp).Error)
	building := testutils.NewBuildingFactory().WithCorporation(corp.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(building).Error)
	property := testutils.NewPropertyFactory().WithBuilding(building.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(property).Error)
	return property
}

// helper to insert a tenancy period
func (suite *TenancyPeriodRepositoryTestSuite) createPeriod(propertyID uuid.UUID, start time.Time, end *time.Time) *models.TenancyPeriod {
	period := testutils.NewTenancyPeriodFactory().WithProperty(propertyID)
	period.StartDate = start
	period.EndDate = end
	suite.NoError(suite.baseTestSuite.DB.Create(period).Error)
	return period
}

// helper to insert a tenant
func (suite *TenancyPeriodRepositoryTestSuite) createTenant() *models.Tenant {
	tenant := testutils.NewTenantFactory().Create()
	suite.NoError(suite.baseTestSuite.DB.Create(tenant).Error)
	return tenant
}

// TestCreateAndGetByID tests the basic round trip
func (suite *TenancyPeriodRepositoryTestSuite) TestCreateAndGetByID() {
	property := suite.createProperty()
	period := testutils.NewTenancyPeriodFactory().WithProperty(property.ID)

	suite.NoError(suite.repo.Create(period))

	retrieved, err := suite.repo.GetByID(period.ID)
	suite.NoError(err)
	suite.Equal(property.ID, retrieved.PropertyID)
	suite.True(period.StartDate.Equal(retrieved.StartDate))
	suite.NotNil(retrieved.EndDate)
}

// TestGetByIDNotFound tests retrieving a non-existent period
func (suite *TenancyPeriodRepositoryTestSuite) TestGetByIDNotFound() {
	period, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(period)
}

// TestGetByPropertyID tests listing a property's periods ordered by start date
func (suite *TenancyPeriodRepositoryTestSuite) TestGetByPropertyID() {
	property := suite.createProperty()
	suite.createPeriod(property.ID, testutils.Date(2025, 1, 1), nil)
	suite.createPeriod(property.ID, testutils.Date(2024, 1, 1), testutils.DatePtr(2024, 6, 30))

	other := suite.createProperty()
	suite.createPeriod(other.ID, testutils.Date(2024, 1, 1), testutils.DatePtr(2024, 12, 31))

	periods, err := suite.repo.GetByPropertyID(property.ID)

	suite.NoError(err)
	suite.Len(periods, 2)
	suite.True(periods[0].StartDate.Before(periods[1].StartDate))
}

// TestGetOverlapping tests the inclusive interval overlap query
func (suite *TenancyPeriodRepositoryTestSuite) TestGetOverlapping() {
	property := suite.createProperty()
	stored := suite.createPeriod(property.ID, testutils.Date(2024, 3, 1), testutils.DatePtr(2024, 5, 31))

	cases := []struct {
		name    string
		rng     daterange.Range
		matches int
	}{
		{"disjoint before", daterange.Closed(testutils.Date(2024, 1, 1), testutils.Date(2024, 2, 28)), 0},
		{"disjoint after", daterange.Closed(testutils.Date(2024, 6, 2), testutils.Date(2024, 8, 1)), 0},
		{"touching at start", daterange.Closed(testutils.Date(2024, 1, 1), testutils.Date(2024, 3, 1)), 1},
		{"touching at end", daterange.Closed(testutils.Date(2024, 5, 31), testutils.Date(2024, 8, 1)), 1},
		{"contained", daterange.Closed(testutils.Date(2024, 4, 1), testutils.Date(2024, 4, 30)), 1},
		{"enclosing", daterange.Closed(testutils.Date(2024, 1, 1), testutils.Date(2024, 12, 31)), 1},
		{"open-ended from before", daterange.Open(testutils.Date(2024, 1, 1)), 1},
		{"open-ended from after", daterange.Open(testutils.Date(2024, 6, 1)), 0},
	}
	for _, tc := range cases {
		periods, err := suite.repo.GetOverlapping(property.ID, tc.rng)
		suite.NoError(err, tc.name)
		suite.Len(periods, tc.matches, tc.name)
		if tc.matches == 1 {
			suite.Equal(stored.ID, periods[0].ID, tc.name)
		}
	}
}

// TestGetOverlappingOpenEndedStored tests overlap against a stored open-ended period
func (suite *TenancyPeriodRepositoryTestSuite) TestGetOverlappingOpenEndedStored() {
	property := suite.createProperty()
	suite.createPeriod(property.ID, testutils.Date(2024, 3, 1), nil)

	// Anything at or after the open start overlaps
	periods, err := suite.repo.GetOverlapping(property.ID, daterange.Closed(testutils.Date(2030, 1, 1), testutils.Date(2030, 12, 31)))
	suite.NoError(err)
	suite.Len(periods, 1)

	// A range ending before the open start does not
	periods, err = suite.repo.GetOverlapping(property.ID, daterange.Closed(testutils.Date(2024, 1, 1), testutils.Date(2024, 2, 28)))
	suite.NoError(err)
	suite.Len(periods, 0)
}

// TestGetOverlappingScopedToProperty tests that other properties' periods are ignored
func (suite *TenancyPeriodRepositoryTestSuite) TestGetOverlappingScopedToProperty() {
	property := suite.createProperty()
	other := suite.createProperty()
	suite.createPeriod(other.ID, testutils.Date(2024, 1, 1), testutils.DatePtr(2024, 12, 31))

	periods, err := suite.repo.GetOverlapping(property.ID, daterange.Closed(testutils.Date(2024, 1, 1), testutils.Date(2024, 12, 31)))

	suite.NoError(err)
	suite.Len(periods, 0)
}

// TestGetOverlappingForTenant tests overlap scoped to a tenant's attachments
func (suite *TenancyPeriodRepositoryTestSuite) TestGetOverlappingForTenant() {
	property := suite.createProperty()
	attached := suite.createPeriod(property.ID, testutils.Date(2024, 3, 1), testutils.DatePtr(2024, 5, 31))
	suite.createPeriod(property.ID, testutils.Date(2024, 7, 1), testutils.DatePtr(2024, 9, 30))

	tenant := suite.createTenant()
	suite.NoError(suite.repo.Attach(attached.ID, tenant.ID, nil, nil))

	// Overlapping window over the attached period
	periods, err := suite.repo.GetOverlappingForTenant(tenant.ID, daterange.Closed(testutils.Date(2024, 5, 1), testutils.Date(2024, 8, 1)))
	suite.NoError(err)
	suite.Len(periods, 1)
	suite.Equal(attached.ID, periods[0].ID)

	// Window over the unattached period only
	periods, err = suite.repo.GetOverlappingForTenant(tenant.ID, daterange.Closed(testutils.Date(2024, 6, 1), testutils.Date(2024, 6, 30)))
	suite.NoError(err)
	suite.Len(periods, 0)
}

// TestCountTenants tests counting attachments on a period
func (suite *TenancyPeriodRepositoryTestSuite) TestCountTenants() {
	property := suite.createProperty()
	period := suite.createPeriod(property.ID, testutils.Date(2024, 1, 1), testutils.DatePtr(2024, 12, 31))

	count, err := suite.repo.CountTenants(period.ID)
	suite.NoError(err)
	suite.Equal(int64(0), count)

	for i := 0; i < 3; i++ {
		tenant := suite.createTenant()
		suite.NoError(suite.repo.Attach(period.ID, tenant.ID, nil, nil))
	}

	count, err = suite.repo.CountTenants(period.ID)
	suite.NoError(err)
	suite.Equal(int64(3), count)
}

// TestAttachWithEffectiveWindow tests that the occupancy window is stored
func (suite *TenancyPeriodRepositoryTestSuite) TestAttachWithEffectiveWindow() {
	property := suite.createProperty()
	period := suite.createPeriod(property.ID, testutils.Date(2024, 1, 1), testutils.DatePtr(2024, 12, 31))
	tenant := suite.createTenant()

	start := testutils.Date(2024, 3, 1)
	end := testutils.Date(2024, 5, 31)
	suite.NoError(suite.repo.Attach(period.ID, tenant.ID, &start, &end))

	var assignment models.TenancyAssignment
	err := suite.baseTestSuite.DB.
		Where("tenancy_period_id = ? AND tenant_id = ?", period.ID, tenant.ID).
		First(&assignment).Error
	suite.NoError(err)
	suite.NotNil(assignment.EffectiveStart)
	suite.NotNil(assignment.EffectiveEnd)
	suite.True(start.Equal(*assignment.EffectiveStart))
	suite.True(end.Equal(*assignment.EffectiveEnd))
}

// TestAttachDuplicate tests that attaching the same tenant twice fails
func (suite *TenancyPeriodRepositoryTestSuite) TestAttachDuplicate() {
	property := suite.createProperty()
	period := suite.createPeriod(property.ID, testutils.Date(2024, 1, 1), testutils.DatePtr(2024, 12, 31))
	tenant := suite.createTenant()

	suite.NoError(suite.repo.Attach(period.ID, tenant.ID, nil, nil))
	err := suite.repo.Attach(period.ID, tenant.ID, nil, nil)

	suite.Error(err)
}

// TestDetach tests removing an attachment
func (suite *TenancyPeriodRepositoryTestSuite) TestDetach() {
	property := suite.createProperty()
	period := suite.createPeriod(property.ID, testutils.Date(2024, 1, 1), testutils.DatePtr(2024, 12, 31))
	tenant := suite.createTenant()
	suite.NoError(suite.repo.Attach(period.ID, tenant.ID, nil, nil))

	suite.NoError(suite.repo.Detach(period.ID, tenant.ID))

	count, err := suite.repo.CountTenants(period.ID)
	suite.NoError(err)
	suite.Equal(int64(0), count)
}

// TestGetWithTenants tests preloading attached tenants
func (suite *TenancyPeriodRepositoryTestSuite) TestGetWithTenants() {
	property := suite.createProperty()
	period := suite.createPeriod(property.ID, testutils.Date(2024, 1, 1), testutils.DatePtr(2024, 12, 31))
	first := suite.createTenant()
	second := suite.createTenant()
	suite.NoError(suite.repo.Attach(period.ID, first.ID, nil, nil))
	suite.NoError(suite.repo.Attach(period.ID, second.ID, nil, nil))

	retrieved, err := suite.repo.GetWithTenants(period.ID)

	suite.NoError(err)
	suite.Len(retrieved.Tenants, 2)
}

// TestGetByTenantID tests listing the periods a tenant is attached to
func (suite *TenancyPeriodRepositoryTestSuite) TestGetByTenantID() {
	property := suite.createProperty()
	early := suite.createPeriod(property.ID, testutils.Date(2023, 1, 1), testutils.DatePtr(2023, 12, 31))
	late := suite.createPeriod(property.ID, testutils.Date(2024, 1, 1), testutils.DatePtr(2024, 12, 31))
	tenant := suite.createTenant()
	suite.NoError(suite.repo.Attach(late.ID, tenant.ID, nil, nil))
	suite.NoError(suite.repo.Attach(early.ID, tenant.ID, nil, nil))

	periods, err := suite.repo.GetByTenantID(tenant.ID)

	suite.NoError(err)
	suite.Len(periods, 2)
	suite.Equal(early.ID, periods[0].ID)
	suite.Equal(late.ID, periods[1].ID)
}

// TestDelete tests deleting a period together with its attachments
func (suite *TenancyPeriodRepositoryTestSuite) TestDelete() {
	property := suite.createProperty()
	period := suite.createPeriod(property.ID, testutils.Date(2024, 1, 1), testutils.DatePtr(2024, 12, 31))
	tenant := suite.createTenant()
	suite.NoError(suite.repo.Attach(period.ID, tenant.ID, nil, nil))

	suite.NoError(suite.repo.Delete(period.ID))

	_, err := suite.repo.GetByID(period.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)

	var count int64
	suite.baseTestSuite.DB.Model(&models.TenancyAssignment{}).Where("tenancy_period_id = ?", period.ID).Count(&count)
	suite.Equal(int64(0), count)
}

// Run the test suite
func TestTenancyPeriodRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TenancyPeriodRepositoryTestSuite))
}
