// Package errors provides standardized error handling for wristlist.
// It defines the error kinds used across the store, config and resource
// layers, plus helpers for consistent creation and wrapping.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package errors that we re-export for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// Config error kinds
	InvalidConfig
	ConfigNotFound
	// Store error kinds
	ItemNotFound
	ChecklistFull
	StoreNotInitialized
	StoreOperationFailed
	// Resource error kinds
	ResourceNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidConfig:
		return "invalid_config"
	case ConfigNotFound:
		return "config_not_found"
	case ItemNotFound:
		return "item_not_found"
	case ChecklistFull:
		return "checklist_full"
	case StoreNotInitialized:
		return "store_not_initialized"
	case StoreOperationFailed:
		return "store_operation_failed"
	case ResourceNotFound:
		return "resource_not_found"
	default:
		return "unknown"
	}
}

// Common error constants for frequently occurring errors
var (
	ErrItemNotFound        = NewStoreError("checklist item not found", "", ItemNotFound, nil)
	ErrChecklistFull       = NewStoreError("checklist is full", "", ChecklistFull, nil)
	ErrStoreNotInitialized = NewStoreError("checklist store not initialized", "", StoreNotInitialized, nil)
	ErrInvalidConfig       = NewConfigError("invalid configuration", "", InvalidConfig, nil)
)

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// StoreError represents errors raised by a checklist store
type StoreError struct {
	ApplicationError
	operation string
}

// NewStoreError creates a new store error
func NewStoreError(msg string, operation string, kind ErrorKind, err error) *StoreError {
	return &StoreError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		operation: operation,
	}
}

// Error returns the store error message
func (e *StoreError) Error() string {
	if e.operation != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: operation=%s: %v", e.msg, e.operation, e.err)
		}
		return fmt.Sprintf("%s: operation=%s", e.msg, e.operation)
	}
	return e.ApplicationError.Error()
}

// Is matches store errors by kind so callers can compare against the
// sentinel values regardless of operation or cause.
func (e *StoreError) Is(target error) bool {
	t, ok := target.(*StoreError)
	if !ok {
		return false
	}
	return t.kind == e.kind
}

// Operation returns the store operation that failed
func (e *StoreError) Operation() string {
	return e.operation
}

// ConfigError represents errors related to configuration
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		param: param,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// ResourceError represents a bitmap or animation that could not be loaded
type ResourceError struct {
	ApplicationError
	resourceID string
}

// NewResourceError creates a new resource error
func NewResourceError(msg string, resourceID string, err error) *ResourceError {
	return &ResourceError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: ResourceNotFound,
		},
		resourceID: resourceID,
	}
}

// Error returns the resource error message
func (e *ResourceError) Error() string {
	if e.resourceID != "" {
		return fmt.Sprintf("%s: %s", e.msg, e.resourceID)
	}
	return e.ApplicationError.Error()
}

// ResourceID returns the identifier of the missing resource
func (e *ResourceError) ResourceID() string {
	return e.resourceID
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: Unknown,
	}
}

// KindOf returns the kind of the first ApplicationError-derived error in
// err's chain, or Unknown.
func KindOf(err error) ErrorKind {
	var storeErr *StoreError
	if errors.As(err, &storeErr) {
		return storeErr.Kind()
	}
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind()
	}
	var resErr *ResourceError
	if errors.As(err, &resErr) {
		return resErr.Kind()
	}
	var appErr *ApplicationError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}
	return Unknown
}

// IsItemNotFound checks if the error is an item not found error
func IsItemNotFound(err error) bool {
	return KindOf(err) == ItemNotFound
}

// IsChecklistFull checks if the error reports a full checklist
func IsChecklistFull(err error) bool {
	return KindOf(err) == ChecklistFull
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind() == InvalidConfig
	}
	return false
}

// IsStoreError checks if the error came from a checklist store
func IsStoreError(err error) bool {
	var storeErr *StoreError
	return errors.As(err, &storeErr)
}
