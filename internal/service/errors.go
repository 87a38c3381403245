package service

import (
	"context"
	"errors"
	"fmt"
)

// ErrorType classifies failures so handlers can map them to HTTP statuses
type ErrorType int

const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeInvalidBody
	ErrorTypeContextCancelled
)

// ServiceError represents a service-specific error with type information
type ServiceError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Cause
}

// ClassifyError returns the ErrorType carried by err, recognising bare
// context errors as cancellations.
func ClassifyError(err error) ErrorType {
	if err == nil {
		return ErrorTypeUnknown
	}

	var serviceError *ServiceError
	switch {
	case errors.As(err, &serviceError):
		return serviceError.Type
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ErrorTypeContextCancelled
	default:
		return ErrorTypeUnknown
	}
}
