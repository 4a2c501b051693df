package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this email"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents malformed or out-of-range input. It is never
// partially applied; the request is rejected before any write.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ConflictError represents a business-rule violation detected against
// existing state, such as a date overlap or a full tenancy period. No state
// is mutated when one is returned.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// TransactionError represents an atomic write that failed after passing
// validation and conflict checks. The transaction is fully rolled back, so
// the caller may safely retry the whole operation.
type TransactionError struct {
	Op    string
	Cause error
	// Retryable is set for serialization conflicts where a retry of the
	// whole operation is expected to succeed.
	Retryable bool
}

func (e *TransactionError) Error() string {
	return fmt.Sprintf("%s: transaction failed: %v", e.Op, e.Cause)
}

// Unwrap exposes the underlying cause for errors.Is/errors.As
func (e *TransactionError) Unwrap() error {
	return e.Cause
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrCorporationNotFound   = &NotFoundError{Entity: "corporation"}
	ErrBuildingNotFound      = &NotFoundError{Entity: "building"}
	ErrPropertyNotFound      = &NotFoundError{Entity: "property"}
	ErrTenancyPeriodNotFound = &NotFoundError{Entity: "tenancy period"}
	ErrTenantNotFound        = &NotFoundError{Entity: "tenant"}
	ErrUserNotFound          = &NotFoundError{Entity: "user"}
)

// Already Exists Errors
var (
	ErrCorporationExists = &AlreadyExistsError{Entity: "corporation", Context: "with this name"}
	ErrTenantExists      = &AlreadyExistsError{Entity: "tenant", Context: "with this email"}
	ErrUserExists        = &AlreadyExistsError{Entity: "user", Context: "with this email"}
)

// Business Logic Errors
var (
	ErrTenancyOverlap   = &ConflictError{Message: "property already has an active tenancy period for the specified dates"}
	ErrPeriodAtCapacity = &ConflictError{Message: "the target tenancy period already has the maximum number of tenants (4)"}
	ErrTenantNotDeleted = &ValidationError{Field: "id", Message: "tenant is not deleted"}
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid email or password"}
	ErrInvalidToken       = &AuthenticationError{Message: "invalid or expired token"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsTransaction checks if an error is a TransactionError
func IsTransaction(err error) bool {
	var txErr *TransactionError
	return errors.As(err, &txErr)
}

// IsRetryableTransaction checks if an error is a TransactionError caused by a
// serialization conflict that is safe to retry.
func IsRetryableTransaction(err error) bool {
	var txErr *TransactionError
	return errors.As(err, &txErr) && txErr.Retryable
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConflictError creates a new ConflictError
func NewConflictError(message string) error {
	return &ConflictError{Message: message}
}

// NewTransactionError wraps a failed atomic operation's cause
func NewTransactionError(op string, cause error, retryable bool) error {
	return &TransactionError{Op: op, Cause: cause, Retryable: retryable}
}
