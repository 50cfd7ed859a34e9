package model

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrInvalidParameter = errors.New("") // Base error for invalid parameter
var ErrDataNotFound = errors.New("")     // Base error for data not found
var ErrProviderError = errors.New("")    // Base error for provider integrations
var ErrVaultError = errors.New("")       // Base error for credential vault
var ErrConflict = errors.New("")         // Base error for conflicting state

// Provider errors
var ErrProviderNotFound = fmt.Errorf("provider not found%w", ErrDataNotFound)
var ErrProviderDisabled = fmt.Errorf("provider is disabled%w", ErrProviderError)
var ErrProviderUnreachable = fmt.Errorf("provider unreachable%w", ErrProviderError)
var ErrUnsupportedOperation = fmt.Errorf("operation not supported%w", ErrProviderError)

// Vault errors
var ErrKeyUnavailable = fmt.Errorf("vault key unavailable%w", ErrVaultError)
var ErrMalformedEnvelope = fmt.Errorf("malformed credential envelope%w", ErrVaultError)
var ErrIntegrity = fmt.Errorf("credential envelope integrity check failed%w", ErrVaultError)

// Catalog / mapping errors
var ErrProductNotFound = fmt.Errorf("catalog product not found%w", ErrDataNotFound)
var ErrCanonicalNotFound = fmt.Errorf("canonical product not found%w", ErrDataNotFound)

// Order errors
var ErrOrderNotFound = fmt.Errorf("order not found%w", ErrDataNotFound)
var ErrInvalidStatusTransition = fmt.Errorf("invalid order status transition%w", ErrConflict)

// Sync errors
var ErrLockHeld = fmt.Errorf("sync lock is held by another run%w", ErrConflict)

// UnsupportedOperationError carries which provider rejected which operation so
// callers can gate UI affordances instead of treating it as a failure.
type UnsupportedOperationError struct {
	Provider  string
	Operation string
}

func (e UnsupportedOperationError) Error() string {
	return fmt.Sprintf("provider %s does not support %s", e.Provider, e.Operation)
}

func (e UnsupportedOperationError) Unwrap() error {
	return ErrUnsupportedOperation
}

func ErrToHttpStatus(err error) int {
	if errors.Is(err, ErrInvalidParameter) {
		return http.StatusBadRequest
	} else if errors.Is(err, ErrDataNotFound) {
		return http.StatusNotFound
	} else if errors.Is(err, ErrConflict) {
		return http.StatusConflict
	} else if errors.Is(err, ErrUnsupportedOperation) {
		return http.StatusNotImplemented
	} else if errors.Is(err, ErrProviderError) {
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}
