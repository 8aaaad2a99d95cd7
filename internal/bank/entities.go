package bank

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/google/uuid"
	"github.com/govalues/money"
)

// CurrencyCode is the single currency all accounts are denominated in.
const CurrencyCode = "USD"

// Account represents one bank account record as held by the record store.
type Account struct {
	ID     uuid.UUID
	Name   string
	Age    int
	Email  string
	// PINHash is the SHA-256 hex digest of the 4-digit PIN. The raw PIN is never stored.
	PINHash string
	// Number is the 8-character account number, immutable once assigned.
	Number string
	// BalanceMinor is the balance in minor units (cents). Never negative.
	BalanceMinor int64
}

// Balance returns the account balance as a currency amount.
func (a Account) Balance() money.Amount {
	return AmountFromMinor(a.BalanceMinor)
}

// AmountFromMinor converts minor units into an amount in the account currency.
func AmountFromMinor(units int64) money.Amount {
	amt, _ := money.NewAmountFromMinorUnits(CurrencyCode, units)
	return amt
}

// HashPIN returns the SHA-256 hex digest of a PIN.
func HashPIN(pin string) string {
	sum := sha256.Sum256([]byte(pin))
	return hex.EncodeToString(sum[:])
}

// MaskedPIN is the placeholder returned in account views instead of the stored hash.
const MaskedPIN = "****"
