package apperrors

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Code is a machine-readable error category used by handlers to pick an
// HTTP status and by clients to pick a user-facing message.
type Code string

const (
	CodeDBConnection  Code = "db_connection_error"
	CodeDBQuery       Code = "db_query_error"
	CodeAuthRequired  Code = "auth_required"
	CodeUnauthorized  Code = "unauthorized"
	CodeNotFound      Code = "resource_not_found"
	CodeAlreadyExists Code = "resource_already_exists"
	CodeValidation    Code = "validation_error"
	CodeUnknown       Code = "unknown_error"
)

// Error is the base type for the closed error taxonomy. Details carries
// optional diagnostic payload (e.g. redacted API key info) that handlers may
// include in the response body.
type AppError struct {
	Message string
	Code    Code
	Details map[string]interface{}
}

func (e *AppError) Error() string { return e.Message }

// ValidationError reports bad input shape or range.
type ValidationError struct{ AppError }

// AuthError reports missing or invalid credentials.
type AuthError struct{ AppError }

// ResourceNotFoundError reports a stale id on read/update/delete.
type ResourceNotFoundError struct {
	AppError
	Resource string
}

// DatabaseError reports a generic upstream persistence failure.
type DatabaseError struct{ AppError }

// ApiError wraps a third-party HTTP failure.
type ApiError struct{ AppError }

func NewValidation(msg string) *ValidationError {
	return &ValidationError{AppError{Message: msg, Code: CodeValidation}}
}

func NewValidationf(format string, args ...interface{}) *ValidationError {
	return NewValidation(fmt.Sprintf(format, args...))
}

func NewAuth(msg string, code Code) *AuthError {
	return &AuthError{AppError{Message: msg, Code: code}}
}

func NewNotFound(resource string) *ResourceNotFoundError {
	return &ResourceNotFoundError{
		AppError: AppError{Message: resource + " not found", Code: CodeNotFound},
		Resource: resource,
	}
}

func NewDatabase(msg string, code Code) *DatabaseError {
	return &DatabaseError{AppError{Message: msg, Code: code}}
}

func NewApi(msg string, code Code, details map[string]interface{}) *ApiError {
	return &ApiError{AppError{Message: msg, Code: code, Details: details}}
}

// FromPostgres maps driver errors onto the taxonomy so handlers never have
// to inspect Postgres error codes. resource names the entity for messages.
func FromPostgres(err error, resource string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return NewNotFound(resource)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "42501", "28000":
			return NewAuth("you do not have permission to perform this action", CodeUnauthorized)
		case "23503":
			return NewValidationf("referenced %s does not exist", resource)
		case "23505":
			return &ValidationError{AppError{
				Message: fmt.Sprintf("this %s already exists", resource),
				Code:    CodeAlreadyExists,
			}}
		case "23514":
			return NewValidationf("invalid %s data", resource)
		}
	}

	return NewDatabase(fmt.Sprintf("error while performing operation on %s: %v", resource, err), CodeDBQuery)
}

// CodeOf extracts the taxonomy code from any error, defaulting to unknown.
func CodeOf(err error) Code {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Code
	}
	var ae *AuthError
	if errors.As(err, &ae) {
		return ae.Code
	}
	var nfe *ResourceNotFoundError
	if errors.As(err, &nfe) {
		return nfe.Code
	}
	var de *DatabaseError
	if errors.As(err, &de) {
		return de.Code
	}
	var apiErr *ApiError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return CodeUnknown
}
