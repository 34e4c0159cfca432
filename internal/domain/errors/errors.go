package errors

import (
	"net/http"
	"sort"
	"strings"

	"storefront/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError carrying the same error code, so errors built with
// WithDetails still compare equal to the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Input errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Request validation failed",
		"",
	)

	ErrInvalidQuantity = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QUANTITY",
		"Quantity must be a whole number of at least 1",
		"",
	)

	ErrIdentityRequired = NewBaseError(
		http.StatusBadRequest,
		"IDENTITY_REQUIRED",
		"A user or session identity is required",
		"",
	)

	// Catalog errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	ErrCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"CATEGORY_NOT_FOUND",
		"Category not found",
		"",
	)

	ErrCategoryAlreadyExists = NewBaseError(
		http.StatusConflict,
		"CATEGORY_ALREADY_EXISTS",
		"A category with this name already exists",
		"",
	)

	ErrTooManyImages = NewBaseError(
		http.StatusBadRequest,
		"TOO_MANY_IMAGES",
		"A product can have at most 6 images",
		"",
	)

	// Cart errors
	ErrCartNotFound = NewBaseError(
		http.StatusNotFound,
		"CART_NOT_FOUND",
		"Cart not found",
		"",
	)

	ErrCartItemNotFound = NewBaseError(
		http.StatusNotFound,
		"CART_ITEM_NOT_FOUND",
		"Item not found in cart",
		"",
	)

	ErrEmptyCart = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_CART",
		"Your cart is empty",
		"",
	)

	// Order errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	ErrAlreadyConfirmed = NewBaseError(
		http.StatusConflict,
		"ALREADY_CONFIRMED",
		"Order is already confirmed",
		"",
	)

	ErrInvalidStatusTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_STATUS_TRANSITION",
		"Order cannot move to the requested status",
		"",
	)

	ErrOrderAccessDenied = NewBaseError(
		http.StatusForbidden,
		"ORDER_ACCESS_DENIED",
		"You do not have access to this order",
		"",
	)

	// Payment errors
	ErrInvalidPaymentMethod = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PAYMENT",
		"Invalid payment method",
		"",
	)

	ErrMissingProof = NewBaseError(
		http.StatusBadRequest,
		"MISSING_PROOF",
		"Proof of payment is required",
		"",
	)

	ErrInvalidFileType = NewBaseError(
		http.StatusBadRequest,
		"INVALID_FILE_TYPE",
		"Only PNG and JPEG images are accepted",
		"",
	)

	ErrProofNotFound = NewBaseError(
		http.StatusNotFound,
		"PROOF_NOT_FOUND",
		"Stored proof of payment not found",
		"",
	)

	ErrFileTooLarge = NewBaseError(
		http.StatusRequestEntityTooLarge,
		"FILE_TOO_LARGE",
		"File exceeds the maximum allowed size",
		"",
	)

	// Generic errors
	ErrServer = NewBaseError(
		http.StatusInternalServerError,
		"SERVER_ERROR",
		"Something went wrong, please try again later",
		"",
	)
)

// ValidationError is a VALIDATION_FAILED error itemized per field.
type ValidationError struct {
	fields map[string]string
}

// NewValidationError creates a validation error from field -> reason pairs.
func NewValidationError(fields map[string]string) *ValidationError {
	copied := make(map[string]string, len(fields))
	for k, v := range fields {
		copied[k] = v
	}

	return &ValidationError{fields: copied}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return ErrValidationFailed.Message() + ": " + e.Details()
}

// Is lets errors.Is match ErrValidationFailed.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return ErrValidationFailed.ErrorCode()
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return ErrValidationFailed.Message()
}

// Details joins the field reasons in field order.
func (e *ValidationError) Details() string {
	keys := make([]string, 0, len(e.fields))
	for k := range e.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.fields[k])
	}

	return strings.Join(parts, "; ")
}

// Fields returns the per-field reasons.
func (e *ValidationError) Fields() map[string]string {
	return e.fields
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return ErrServer.ErrorCode()
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return ErrServer.Message()
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
