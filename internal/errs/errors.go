package errs

import "errors"

// Common sentinel errors for cross-layer signaling.
var (
	// ErrNotFound indicates no account exists for the given account number.
	ErrNotFound = errors.New("account_not_found")
	// ErrAuthentication indicates the supplied PIN does not match the stored hash.
	ErrAuthentication = errors.New("authentication_failed")
	// ErrInvalid indicates bad input shape or range; wrapped errors name the failing field.
	ErrInvalid = errors.New("invalid")
	// ErrInsufficientFunds indicates a withdrawal exceeding the current balance.
	ErrInsufficientFunds = errors.New("insufficient_funds")
	// ErrStorage indicates a backing-file or database read/write/parse failure.
	ErrStorage = errors.New("storage_failure")
)
