package service

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"rental-portal-backend/internal/database/models"
	"rental-portal-backend/internal/daterange"
	apperrors "rental-portal-backend/internal/errors"
	"rental-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// DateLayout is the wire format for all contract dates
const DateLayout = "2006-01-02"

// Postgres error codes relevant to allocation transactions
const (
	pgSerializationFailure = "40001"
	pgUniqueViolation      = "23505"
)

// AllocationService orchestrates rental contract creation and tenant
// reassignment. Both operations run as single serializable transactions so
// that two concurrent callers can never both pass the overlap or capacity
// check and commit conflicting assignments.
type AllocationService struct {
	db        *gorm.DB
	validator *validator.Validate
}

// NewAllocationService creates a new allocation service
func NewAllocationService(db *gorm.DB, validator *validator.Validate) *AllocationService {
	return &AllocationService{
		db:        db,
		validator: validator,
	}
}

// TenantInput describes one tenant on a new rental contract
type TenantInput struct {
	Name    string `json:"name" validate:"required,min=1,max=255"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Phone   string `json:"phone,omitempty" validate:"max=255"`
	Comment string `json:"comment,omitempty"`
}

// CreateRentalContractRequest represents the request to create a rental contract
type CreateRentalContractRequest struct {
	Tenants   []TenantInput `json:"tenants" validate:"required,min=1,max=4,dive"`
	StartDate string        `json:"start_date" validate:"required"`
	EndDate   string        `json:"end_date,omitempty"`
	Name      string        `json:"name,omitempty" validate:"max=255"`
}

// MoveTenantRequest represents the request to move a tenant to another tenancy period
type MoveTenantRequest struct {
	TargetTenancyPeriodID uuid.UUID `json:"target_tenancy_period_id" validate:"required"`
	StartDate             string    `json:"start_date" validate:"required"`
	EndDate               string    `json:"end_date" validate:"required"`
}

// CreateRentalContract creates a tenancy period for the property together
// with its 1..4 tenants and their attachments, all as one atomic unit.
// Overlap against the property's existing periods is re-checked inside the
// transaction; on any failure nothing persists.
func (s *AllocationService) CreateRentalContract(propertyID uuid.UUID, req *CreateRentalContractRequest) (*models.TenancyPeriod, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	startDate, err := parseDate("start_date", req.StartDate)
	if err != nil {
		return nil, err
	}
	var endDate *time.Time
	if req.EndDate != "" {
		parsed, err := parseDate("end_date", req.EndDate)
		if err != nil {
			return nil, err
		}
		if !parsed.After(startDate) {
			return nil, apperrors.NewValidationError("end_date", "must be after start_date")
		}
		endDate = &parsed
	}
	candidate := daterange.Range{Start: startDate, End: endDate}

	if err := s.checkTenantEmails(req.Tenants); err != nil {
		return nil, err
	}

	propertyRepo := repository.NewPropertyRepository(s.db)
	if _, err := propertyRepo.GetByID(propertyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to get property: %w", err)
	}

	var created *models.TenancyPeriod
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		periodRepo := repository.NewTenancyPeriodRepository(tx)
		tenantRepo := repository.NewTenantRepository(tx)

		// Overlap check must happen inside the serializable scope so a
		// concurrent creation for the same property cannot slip past it.
		overlapping, err := periodRepo.GetOverlapping(propertyID, candidate)
		if err != nil {
			return fmt.Errorf("failed to check overlapping periods: %w", err)
		}
		if len(overlapping) > 0 {
			return apperrors.ErrTenancyOverlap
		}

		period := &models.TenancyPeriod{
			PropertyID: propertyID,
			Name:       req.Name,
			StartDate:  startDate,
			EndDate:    endDate,
		}
		if err := periodRepo.Create(period); err != nil {
			return fmt.Errorf("failed to create tenancy period: %w", err)
		}

		for _, input := range req.Tenants {
			tenant := &models.Tenant{
				Name:     input.Name,
				Email:    input.Email,
				Phone:    input.Phone,
				Comments: input.Comment,
			}
			if err := tenantRepo.Create(tenant); err != nil {
				if isUniqueViolation(err) {
					return apperrors.ErrTenantExists
				}
				return fmt.Errorf("failed to create tenant: %w", err)
			}
			if err := periodRepo.Attach(period.ID, tenant.ID, nil, nil); err != nil {
				return fmt.Errorf("failed to attach tenant: %w", err)
			}
		}

		created = period
		return nil
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})

	if txErr != nil {
		return nil, s.classifyTxError("create rental contract", txErr)
	}

	return repository.NewTenancyPeriodRepository(s.db).GetWithTenants(created.ID)
}

// MoveTenant atomically detaches the tenant from every period overlapping
// the requested window and attaches it to the target period, recording the
// window as the attachment's effective occupancy dates. The capacity check
// runs before the writes, inside the same transaction.
func (s *AllocationService) MoveTenant(tenantID uuid.UUID, req *MoveTenantRequest) (*models.Tenant, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	startDate, err := parseDate("start_date", req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDate("end_date", req.EndDate)
	if err != nil {
		return nil, err
	}
	if !endDate.After(startDate) {
		return nil, apperrors.NewValidationError("end_date", "must be after start_date")
	}
	window := daterange.Closed(startDate, endDate)

	tenantRepo := repository.NewTenantRepository(s.db)
	if _, err := tenantRepo.GetByID(tenantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	periodRepo := repository.NewTenancyPeriodRepository(s.db)
	target, err := periodRepo.GetByID(req.TargetTenancyPeriodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenancyPeriodNotFound
		}
		return nil, fmt.Errorf("failed to get target tenancy period: %w", err)
	}

	if !target.Range().Encloses(window) {
		return nil, apperrors.NewValidationError("start_date", "the requested dates must fall within the tenancy period dates")
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		txPeriodRepo := repository.NewTenancyPeriodRepository(tx)

		count, err := txPeriodRepo.CountTenants(target.ID)
		if err != nil {
			return fmt.Errorf("failed to count tenants: %w", err)
		}
		if count >= models.MaxTenantsPerPeriod {
			return apperrors.ErrPeriodAtCapacity
		}

		// Full interval test against each existing period's own bounds.
		overlapping, err := txPeriodRepo.GetOverlappingForTenant(tenantID, window)
		if err != nil {
			return fmt.Errorf("failed to find overlapping periods: %w", err)
		}
		for _, period := range overlapping {
			if err := txPeriodRepo.Detach(period.ID, tenantID); err != nil {
				return fmt.Errorf("failed to detach tenant from period %s: %w", period.ID, err)
			}
		}

		if err := txPeriodRepo.Attach(target.ID, tenantID, &startDate, &endDate); err != nil {
			return fmt.Errorf("failed to attach tenant to target period: %w", err)
		}
		return nil
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})

	if txErr != nil {
		return nil, s.classifyTxError("move tenant", txErr)
	}

	return tenantRepo.GetWithTenancyPeriods(tenantID)
}

// ListPropertyTenants returns the distinct tenants across all of the
// property's tenancy periods.
func (s *AllocationService) ListPropertyTenants(propertyID uuid.UUID) ([]models.Tenant, error) {
	propertyRepo := repository.NewPropertyRepository(s.db)
	if _, err := propertyRepo.GetByID(propertyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	return propertyRepo.GetTenants(propertyID)
}

// checkTenantEmails rejects duplicate emails, both within the request and
// against existing non-deleted tenants. The store's partial unique index is
// the backstop; this pre-check produces a clean validation error instead of
// surfacing a constraint failure.
func (s *AllocationService) checkTenantEmails(inputs []TenantInput) error {
	seen := make(map[string]struct{}, len(inputs))
	tenantRepo := repository.NewTenantRepository(s.db)
	for _, input := range inputs {
		if _, dup := seen[input.Email]; dup {
			return apperrors.NewValidationError("tenants", fmt.Sprintf("duplicate email %q in request", input.Email))
		}
		seen[input.Email] = struct{}{}

		_, err := tenantRepo.GetByEmail(input.Email)
		if err == nil {
			return apperrors.NewValidationError("tenants", fmt.Sprintf("email %q is already in use", input.Email))
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check tenant email: %w", err)
		}
	}
	return nil
}

// classifyTxError passes typed business errors through unchanged and wraps
// storage-level failures as TransactionError. Serialization conflicts are
// marked retryable: the whole operation can simply be replayed.
func (s *AllocationService) classifyTxError(op string, err error) error {
	if apperrors.IsConflict(err) || apperrors.IsValidation(err) || apperrors.IsNotFound(err) || apperrors.IsAlreadyExists(err) {
		return err
	}
	return apperrors.NewTransactionError(op, err, isSerializationFailure(err))
}

func parseDate(field, value string) (time.Time, error) {
	parsed, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError(field, fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", value))
	}
	return parsed, nil
}

func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgSerializationFailure
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
