package bank

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tarun5004/bankd/internal/errs"
)

const (
	// MinAge is the minimum holder age checked at account creation.
	MinAge = 18
	// PINLength is the required number of PIN digits.
	PINLength = 4
	// MaxDepositMinor caps a single deposit at 100000.00 in minor units.
	MaxDepositMinor = 100000_00
)

var (
	reName  = regexp.MustCompile(`^[A-Za-z ]+$`)
	reEmail = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	rePIN   = regexp.MustCompile(`^[0-9]{4}$`)
)

// ValidateName checks that name is non-empty and contains only letters and spaces.
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || !reName.MatchString(trimmed) {
		return fmt.Errorf("%w: name must contain only letters and spaces", errs.ErrInvalid)
	}
	return nil
}

// ValidateAge checks the minimum-age rule. It applies at creation only.
func ValidateAge(age int) error {
	if age < MinAge {
		return fmt.Errorf("%w: age must be at least %d", errs.ErrInvalid, MinAge)
	}
	return nil
}

// ValidateEmail checks the local@domain.tld shape.
func ValidateEmail(email string) error {
	if !reEmail.MatchString(strings.TrimSpace(email)) {
		return fmt.Errorf("%w: email format is invalid", errs.ErrInvalid)
	}
	return nil
}

// ValidatePIN checks that pin is exactly four digits.
func ValidatePIN(pin string) error {
	if !rePIN.MatchString(pin) {
		return fmt.Errorf("%w: pin must be exactly %d digits", errs.ErrInvalid, PINLength)
	}
	return nil
}

// NormalizeName trims surrounding whitespace before storage.
func NormalizeName(name string) string { return strings.TrimSpace(name) }

// NormalizeEmail trims and lowercases an email before storage.
func NormalizeEmail(email string) string { return strings.ToLower(strings.TrimSpace(email)) }
