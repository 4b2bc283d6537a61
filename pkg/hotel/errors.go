package hotel

import (
	"errors"
	"fmt"
)

// Domain-level error values returned by the hotel service.
var (
	ErrDuplicateRoomNumber  = errors.New("duplicate room number")
	ErrDuplicateStaffID     = errors.New("duplicate staff id")
	ErrCapacityExceeded     = errors.New("capacity exceeded")
	ErrRoomNotFound         = errors.New("room not found")
	ErrRoomUnavailable      = errors.New("room unavailable")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrStaffNotFound        = errors.New("staff not found")
	ErrResourceUnreadable   = errors.New("resource unreadable")
	ErrInvalidRoomNumber    = errors.New("invalid room number")
	ErrInvalidRoomType      = errors.New("invalid room type")
	ErrInvalidPrice         = errors.New("invalid price")
	ErrInvalidCapacity      = errors.New("invalid capacity")
	ErrInvalidGuestName     = errors.New("invalid guest name")
	ErrInvalidPhone         = errors.New("invalid phone")
	ErrInvalidStayDate      = errors.New("invalid stay date")
	ErrInvalidStaffMember   = errors.New("invalid staff member")
	ErrInvalidRating        = errors.New("invalid rating")
	ErrInvalidServiceConfig = errors.New("invalid service config")
)

// OperationError wraps a failure with a stable operation code.
type OperationError struct {
	operation string
	subject   string
	code      string
	err       error
}

// Error returns the formatted error message.
func (operationError OperationError) Error() string {
	return fmt.Sprintf("%s.%s.%s: %v", operationError.operation, operationError.subject, operationError.code, operationError.err)
}

// Unwrap returns the underlying error.
func (operationError OperationError) Unwrap() error {
	return operationError.err
}

// Operation returns the operation segment.
func (operationError OperationError) Operation() string {
	return operationError.operation
}

// Subject returns the subject segment.
func (operationError OperationError) Subject() string {
	return operationError.subject
}

// Code returns the stable error code segment.
func (operationError OperationError) Code() string {
	return operationError.code
}

// WrapError wraps an error with operation, subject, and code metadata.
func WrapError(operation string, subject string, code string, err error) error {
	if err == nil {
		return nil
	}
	return OperationError{
		operation: operation,
		subject:   subject,
		code:      code,
		err:       err,
	}
}
