package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"rental-portal-backend/internal/config"
	"rental-portal-backend/internal/database"
	"rental-portal-backend/internal/database/models"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const dateLayout = "2006-01-02"

// Simple structures that directly match the seed YAML files
type CorporationData struct {
	Name string `yaml:"name"`
}

type BuildingData struct {
	Name            string `yaml:"name"`
	CorporationName string `yaml:"corporation_name"`
	Address         string `yaml:"address"`
	City            string `yaml:"city"`
	ZipCode         string `yaml:"zip_code"`
}

type PropertyData struct {
	Name         string `yaml:"name"`
	BuildingName string `yaml:"building_name"`
	MonthlyRent  string `yaml:"monthly_rent"`
}

type TenantData struct {
	Name    string `yaml:"name"`
	Email   string `yaml:"email"`
	Phone   string `yaml:"phone,omitempty"`
	Comment string `yaml:"comment,omitempty"`
}

type TenancyPeriodData struct {
	Name         string       `yaml:"name,omitempty"`
	PropertyName string       `yaml:"property_name"`
	StartDate    string       `yaml:"start_date"`
	EndDate      string       `yaml:"end_date,omitempty"`
	Tenants      []TenantData `yaml:"tenants,omitempty"`
}

type CorporationsFile struct {
	Corporations []CorporationData `yaml:"corporations"`
}

type BuildingsFile struct {
	Buildings []BuildingData `yaml:"buildings"`
}

type PropertiesFile struct {
	Properties []PropertyData `yaml:"properties"`
}

type TenancyPeriodsFile struct {
	TenancyPeriods []TenancyPeriodData `yaml:"tenancy_periods"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	corporations, err := loadCorporations(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load corporations: %w", err)
	}

	buildings, err := loadBuildings(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load buildings: %w", err)
	}

	properties, err := loadProperties(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load properties: %w", err)
	}

	periods, err := loadTenancyPeriods(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load tenancy periods: %w", err)
	}

	// Create corporations first
	corpMap := make(map[string]*models.Corporation)
	corpCreated := 0
	for _, corpData := range corporations {
		corp, created, err := createCorporation(db, corpData)
		if err != nil {
			return fmt.Errorf("failed to create corporation %s: %w", corpData.Name, err)
		}
		corpMap[corpData.Name] = corp
		if created {
			corpCreated++
		}
	}
	log.Printf("Corporations: %d created, %d total", corpCreated, len(corporations))

	// Create buildings
	buildingMap := make(map[string]*models.Building)
	buildingCreated := 0
	for _, buildingData := range buildings {
		building, created, err := createBuilding(db, buildingData, corpMap)
		if err != nil {
			return fmt.Errorf("failed to create building %s: %w", buildingData.Name, err)
		}
		buildingMap[buildingData.Name] = building
		if created {
			buildingCreated++
		}
	}
	log.Printf("Buildings: %d created, %d total", buildingCreated, len(buildings))

	// Create properties
	propertyMap := make(map[string]*models.Property)
	propertyCreated := 0
	for _, propertyData := range properties {
		property, created, err := createProperty(db, propertyData, buildingMap)
		if err != nil {
			return fmt.Errorf("failed to create property %s: %w", propertyData.Name, err)
		}
		propertyMap[propertyData.Name] = property
		if created {
			propertyCreated++
		}
	}
	log.Printf("Properties: %d created, %d total", propertyCreated, len(properties))

	// Create tenancy periods with their tenants
	periodCreated := 0
	for _, periodData := range periods {
		created, err := createTenancyPeriod(db, periodData, propertyMap)
		if err != nil {
			return fmt.Errorf("failed to create tenancy period for %s: %w", periodData.PropertyName, err)
		}
		if created {
			periodCreated++
		}
	}
	log.Printf("Tenancy periods: %d created, %d total", periodCreated, len(periods))

	return nil
}

func loadCorporations(dataDir string) ([]CorporationData, error) {
	var all []CorporationData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "corporations") {
			var file CorporationsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			all = append(all, file.Corporations...)
		}
		return nil
	})

	return all, err
}

func loadBuildings(dataDir string) ([]BuildingData, error) {
	var all []BuildingData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "buildings") {
			var file BuildingsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			all = append(all, file.Buildings...)
		}
		return nil
	})

	return all, err
}

func loadProperties(dataDir string) ([]PropertyData, error) {
	var all []PropertyData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "properties") {
			var file PropertiesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			all = append(all, file.Properties...)
		}
		return nil
	})

	return all, err
}

func loadTenancyPeriods(dataDir string) ([]TenancyPeriodData, error) {
	var all []TenancyPeriodData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "tenancy_periods") {
			var file TenancyPeriodsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			all = append(all, file.TenancyPeriods...)
		}
		return nil
	})

	return all, err
}

func createCorporation(db *gorm.DB, corpData CorporationData) (*models.Corporation, bool, error) {
	var corp models.Corporation
	if err := db.Where("name = ?", corpData.Name).First(&corp).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			corp = models.Corporation{Name: corpData.Name}

			if err := db.Create(&corp).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create corporation: %w", err)
			}
			return &corp, true, nil
		}
		return nil, false, fmt.Errorf("failed to query corporation: %w", err)
	}

	return &corp, false, nil
}

func createBuilding(db *gorm.DB, buildingData BuildingData, corpMap map[string]*models.Corporation) (*models.Building, bool, error) {
	corp := corpMap[buildingData.CorporationName]
	if corp == nil {
		return nil, false, fmt.Errorf("corporation %s not found for building %s", buildingData.CorporationName, buildingData.Name)
	}

	var building models.Building
	if err := db.Where("name = ? AND corporation_id = ?", buildingData.Name, corp.ID).First(&building).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			building = models.Building{
				CorporationID: corp.ID,
				Name:          buildingData.Name,
				Address:       buildingData.Address,
				City:          buildingData.City,
				ZipCode:       buildingData.ZipCode,
			}

			if err := db.Create(&building).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create building: %w", err)
			}
			return &building, true, nil
		}
		return nil, false, fmt.Errorf("failed to query building: %w", err)
	}

	return &building, false, nil
}

func createProperty(db *gorm.DB, propertyData PropertyData, buildingMap map[string]*models.Building) (*models.Property, bool, error) {
	building := buildingMap[propertyData.BuildingName]
	if building == nil {
		return nil, false, fmt.Errorf("building %s not found for property %s", propertyData.BuildingName, propertyData.Name)
	}

	var property models.Property
	if err := db.Where("name = ? AND building_id = ?", propertyData.Name, building.ID).First(&property).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			rent := decimal.Zero
			if propertyData.MonthlyRent != "" {
				parsed, err := decimal.NewFromString(propertyData.MonthlyRent)
				if err != nil {
					return nil, false, fmt.Errorf("invalid monthly rent %q: %w", propertyData.MonthlyRent, err)
				}
				rent = parsed
			}

			property = models.Property{
				BuildingID:  building.ID,
				Name:        propertyData.Name,
				MonthlyRent: rent,
			}

			if err := db.Create(&property).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create property: %w", err)
			}
			return &property, true, nil
		}
		return nil, false, fmt.Errorf("failed to query property: %w", err)
	}

	return &property, false, nil
}

// createTenancyPeriod seeds a period together with its tenants and their
// attachments. Reruns are idempotent: an existing period for the same
// property and start date is left untouched.
func createTenancyPeriod(db *gorm.DB, periodData TenancyPeriodData, propertyMap map[string]*models.Property) (bool, error) {
	property := propertyMap[periodData.PropertyName]
	if property == nil {
		return false, fmt.Errorf("property %s not found for tenancy period", periodData.PropertyName)
	}

	startDate, err := time.Parse(dateLayout, periodData.StartDate)
	if err != nil {
		return false, fmt.Errorf("invalid start date %q: %w", periodData.StartDate, err)
	}
	var endDate *time.Time
	if periodData.EndDate != "" {
		parsed, err := time.Parse(dateLayout, periodData.EndDate)
		if err != nil {
			return false, fmt.Errorf("invalid end date %q: %w", periodData.EndDate, err)
		}
		endDate = &parsed
	}

	if len(periodData.Tenants) > models.MaxTenantsPerPeriod {
		return false, fmt.Errorf("tenancy period for %s has %d tenants, maximum is %d",
			periodData.PropertyName, len(periodData.Tenants), models.MaxTenantsPerPeriod)
	}

	var existing models.TenancyPeriod
	err = db.Where("property_id = ? AND start_date = ?", property.ID, startDate).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, fmt.Errorf("failed to query tenancy period: %w", err)
	}

	return true, db.Transaction(func(tx *gorm.DB) error {
		period := models.TenancyPeriod{
			PropertyID: property.ID,
			Name:       periodData.Name,
			StartDate:  startDate,
			EndDate:    endDate,
		}
		if err := tx.Create(&period).Error; err != nil {
			return fmt.Errorf("failed to create tenancy period: %w", err)
		}

		for _, tenantData := range periodData.Tenants {
			var tenant models.Tenant
			if err := tx.Where("email = ?", tenantData.Email).First(&tenant).Error; err != nil {
				if err != gorm.ErrRecordNotFound {
					return fmt.Errorf("failed to query tenant: %w", err)
				}
				tenant = models.Tenant{
					Name:     tenantData.Name,
					Email:    tenantData.Email,
					Phone:    tenantData.Phone,
					Comments: tenantData.Comment,
				}
				if err := tx.Create(&tenant).Error; err != nil {
					return fmt.Errorf("failed to create tenant %s: %w", tenantData.Email, err)
				}
			}

			assignment := models.TenancyAssignment{
				TenancyPeriodID: period.ID,
				TenantID:        tenant.ID,
			}
			if err := tx.Create(&assignment).Error; err != nil {
				return fmt.Errorf("failed to attach tenant %s: %w", tenantData.Email, err)
			}
		}
		return nil
	})
}
