// Package account implements the account service rules: validated creation,
// PIN-authenticated mutation, deposit/withdraw bounds, and record deletion.
// Every operation validates its inputs, locates the record where applicable,
// mutates, and leaves persistence to the backing store.
package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/tarun5004/bankd/internal/acctno"
	"github.com/tarun5004/bankd/internal/bank"
	"github.com/tarun5004/bankd/internal/errs"
)

// maxGenerateAttempts bounds the collision-regenerate loop at creation.
const maxGenerateAttempts = 100

type Repo interface {
	ListAccounts(ctx context.Context) ([]bank.Account, error)
	GetAccount(ctx context.Context, number string) (bank.Account, error)
}

type Writer interface {
	CreateAccount(ctx context.Context, a bank.Account) (bank.Account, error)
	UpdateAccount(ctx context.Context, a bank.Account) (bank.Account, error)
	DeleteAccount(ctx context.Context, number string) error
}

// CreateInput carries the fields collected by a front-end at account creation.
type CreateInput struct {
	Name  string
	Age   int
	Email string
	PIN   string
}

// UpdateInput carries the authenticated update request. Nil fields are left unchanged.
type UpdateInput struct {
	Number string
	PIN    string
	Name   *string
	Email  *string
	NewPIN *string
}

type Service interface {
	Create(ctx context.Context, in CreateInput) (bank.Account, error)
	Authenticate(ctx context.Context, number, pin string) (bank.Account, error)
	VerifyCredentials(ctx context.Context, number, pin string) bool
	AccountExists(ctx context.Context, number string) bool
	Deposit(ctx context.Context, number, pin string, amountMinor int64) (bank.Account, error)
	Withdraw(ctx context.Context, number, pin string, amountMinor int64) (bank.Account, error)
	Details(ctx context.Context, number, pin string) (bank.Account, error)
	Update(ctx context.Context, in UpdateInput) (bank.Account, error)
	Delete(ctx context.Context, number, pin string) error
}

type service struct {
	repo   Repo
	writer Writer
}

func New(repo Repo, writer Writer) Service { return &service{repo: repo, writer: writer} }

// Create validates all four fields, assigns a unique account number, hashes
// the PIN and appends the record. Validation reports the first failing field.
func (s *service) Create(ctx context.Context, in CreateInput) (bank.Account, error) {
	if err := bank.ValidateName(in.Name); err != nil {
		return bank.Account{}, err
	}
	if err := bank.ValidateAge(in.Age); err != nil {
		return bank.Account{}, err
	}
	if err := bank.ValidateEmail(in.Email); err != nil {
		return bank.Account{}, err
	}
	if err := bank.ValidatePIN(in.PIN); err != nil {
		return bank.Account{}, err
	}
	number, err := s.freshNumber(ctx)
	if err != nil {
		return bank.Account{}, err
	}
	acc := bank.Account{
		ID:           uuid.New(),
		Name:         bank.NormalizeName(in.Name),
		Age:          in.Age,
		Email:        bank.NormalizeEmail(in.Email),
		PINHash:      bank.HashPIN(in.PIN),
		Number:       number,
		BalanceMinor: 0,
	}
	return s.writer.CreateAccount(ctx, acc)
}

// freshNumber generates account numbers until one is unused. The generator
// gives no collision guarantee, so uniqueness is confirmed against the store.
func (s *service) freshNumber(ctx context.Context) (string, error) {
	for range maxGenerateAttempts {
		number := acctno.Generate()
		_, err := s.repo.GetAccount(ctx, number)
		if errors.Is(err, errs.ErrNotFound) {
			return number, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", fmt.Errorf("%w: could not generate an unused account number", errs.ErrStorage)
}

// Authenticate locates the record and compares the re-hashed PIN against the
// stored hash. Every mutating operation calls this first.
func (s *service) Authenticate(ctx context.Context, number, pin string) (bank.Account, error) {
	acc, err := s.repo.GetAccount(ctx, number)
	if err != nil {
		return bank.Account{}, err
	}
	if acc.PINHash != bank.HashPIN(pin) {
		return bank.Account{}, fmt.Errorf("%w: incorrect pin", errs.ErrAuthentication)
	}
	return acc, nil
}

// VerifyCredentials reports whether the number/PIN pair authenticates,
// without exposing the record.
func (s *service) VerifyCredentials(ctx context.Context, number, pin string) bool {
	_, err := s.Authenticate(ctx, number, pin)
	return err == nil
}

// AccountExists reports whether a record exists for the account number.
func (s *service) AccountExists(ctx context.Context, number string) bool {
	_, err := s.repo.GetAccount(ctx, number)
	return err == nil
}

// Deposit adds amountMinor to the balance after authentication.
// The amount must be positive and at most the single-deposit cap.
func (s *service) Deposit(ctx context.Context, number, pin string, amountMinor int64) (bank.Account, error) {
	acc, err := s.Authenticate(ctx, number, pin)
	if err != nil {
		return bank.Account{}, err
	}
	if amountMinor <= 0 {
		return bank.Account{}, fmt.Errorf("%w: deposit amount must be greater than zero", errs.ErrInvalid)
	}
	if amountMinor > bank.MaxDepositMinor {
		return bank.Account{}, fmt.Errorf("%w: deposit limit is %s", errs.ErrInvalid, bank.AmountFromMinor(bank.MaxDepositMinor))
	}
	newBal, err := acc.Balance().Add(bank.AmountFromMinor(amountMinor))
	if err != nil {
		return bank.Account{}, fmt.Errorf("%w: %v", errs.ErrInvalid, err)
	}
	units, ok := newBal.MinorUnits()
	if !ok {
		return bank.Account{}, fmt.Errorf("%w: balance out of range", errs.ErrInvalid)
	}
	acc.BalanceMinor = units
	return s.writer.UpdateAccount(ctx, acc)
}

// Withdraw subtracts amountMinor from the balance after authentication.
// The amount must be positive and no greater than the current balance.
func (s *service) Withdraw(ctx context.Context, number, pin string, amountMinor int64) (bank.Account, error) {
	acc, err := s.Authenticate(ctx, number, pin)
	if err != nil {
		return bank.Account{}, err
	}
	if amountMinor <= 0 {
		return bank.Account{}, fmt.Errorf("%w: withdrawal amount must be greater than zero", errs.ErrInvalid)
	}
	if amountMinor > acc.BalanceMinor {
		return bank.Account{}, fmt.Errorf("%w: current balance is %s", errs.ErrInsufficientFunds, acc.Balance())
	}
	newBal, err := acc.Balance().Sub(bank.AmountFromMinor(amountMinor))
	if err != nil {
		return bank.Account{}, fmt.Errorf("%w: %v", errs.ErrInvalid, err)
	}
	units, ok := newBal.MinorUnits()
	if !ok {
		return bank.Account{}, fmt.Errorf("%w: balance out of range", errs.ErrInvalid)
	}
	acc.BalanceMinor = units
	return s.writer.UpdateAccount(ctx, acc)
}

// Details returns an authenticated view of the record. The stored PIN hash is
// masked and never leaves the service.
func (s *service) Details(ctx context.Context, number, pin string) (bank.Account, error) {
	acc, err := s.Authenticate(ctx, number, pin)
	if err != nil {
		return bank.Account{}, err
	}
	acc.PINHash = bank.MaskedPIN
	return acc, nil
}

// Update revalidates any supplied field, overwrites it and persists.
// The account number, age and balance are not updatable.
func (s *service) Update(ctx context.Context, in UpdateInput) (bank.Account, error) {
	acc, err := s.Authenticate(ctx, in.Number, in.PIN)
	if err != nil {
		return bank.Account{}, err
	}
	if in.Name != nil {
		if err := bank.ValidateName(*in.Name); err != nil {
			return bank.Account{}, err
		}
		acc.Name = bank.NormalizeName(*in.Name)
	}
	if in.Email != nil {
		if err := bank.ValidateEmail(*in.Email); err != nil {
			return bank.Account{}, err
		}
		acc.Email = bank.NormalizeEmail(*in.Email)
	}
	if in.NewPIN != nil {
		if err := bank.ValidatePIN(*in.NewPIN); err != nil {
			return bank.Account{}, err
		}
		acc.PINHash = bank.HashPIN(*in.NewPIN)
	}
	return s.writer.UpdateAccount(ctx, acc)
}

// Delete removes the record after authentication.
func (s *service) Delete(ctx context.Context, number, pin string) error {
	if _, err := s.Authenticate(ctx, number, pin); err != nil {
		return err
	}
	return s.writer.DeleteAccount(ctx, number)
}
