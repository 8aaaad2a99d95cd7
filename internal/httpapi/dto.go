package httpapi

import (
	"github.com/google/uuid"
	"github.com/tarun5004/bankd/internal/bank"
)

type createAccountRequest struct {
	Name  string `json:"name"`
	Age   int    `json:"age"`
	Email string `json:"email"`
	PIN   string `json:"pin"`
}

// amountRequest authenticates and carries the amount for deposit/withdraw.
type amountRequest struct {
	PIN         string `json:"pin"`
	AmountMinor int64  `json:"amount_minor"`
}

type updateAccountRequest struct {
	PIN    string  `json:"pin"`
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	NewPIN *string `json:"new_pin"`
}

// accountResponse is the public view of a record. The PIN hash never appears.
type accountResponse struct {
	ID            uuid.UUID `json:"id"`
	AccountNumber string    `json:"account_number"`
	Name          string    `json:"name"`
	Age           int       `json:"age"`
	Email         string    `json:"email"`
	BalanceMinor  int64     `json:"balance_minor"`
	Balance       string    `json:"balance"`
}

func toAccountResponse(a bank.Account) accountResponse {
	return accountResponse{
		ID:            a.ID,
		AccountNumber: a.Number,
		Name:          a.Name,
		Age:           a.Age,
		Email:         a.Email,
		BalanceMinor:  a.BalanceMinor,
		Balance:       a.Balance().String(),
	}
}
