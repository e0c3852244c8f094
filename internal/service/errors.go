package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Common service errors
var (
	// ErrDuplicateName is returned when an employee or customer name is taken
	ErrDuplicateName = errors.New("name already exists")

	// ErrDuplicateSerial is returned when a serial number is already assigned to another lead
	ErrDuplicateSerial = errors.New("serial number already exists")

	// ErrCustomerNotFound is returned when a lead or lookup names an unknown customer
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrLeadNotFound is returned when a lead id does not exist
	ErrLeadNotFound = errors.New("lead not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoFieldsToUpdate is returned for an empty lead patch
	ErrNoFieldsToUpdate = errors.New("no fields to update")

	// ErrSerialImmutable is returned when a patch tries to replace an assigned serial number
	ErrSerialImmutable = errors.New("serial number cannot be changed once assigned")

	// ErrStore wraps unexpected persistence failures
	ErrStore = errors.New("store error")
)

// storeError wraps err so callers can match ErrStore while keeping the cause
func storeError(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStore, op, err)
}

// invalidInput wraps ErrInvalidInput with a field-level reason
func invalidInput(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
