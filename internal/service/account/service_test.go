package account

import (
	"context"
	"errors"
	"testing"

	"github.com/tarun5004/bankd/internal/bank"
	"github.com/tarun5004/bankd/internal/errs"
	"github.com/tarun5004/bankd/internal/storage/memory"
)

func setup(t *testing.T) (Service, *memory.Store) {
	t.Helper()
	store := memory.New()
	return New(store, store), store
}

func mustCreate(t *testing.T, svc Service) bank.Account {
	t.Helper()
	acc, err := svc.Create(context.Background(), CreateInput{
		Name:  "John Smith",
		Age:   30,
		Email: "john@example.com",
		PIN:   "1234",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	return acc
}

func TestCreate_Validation(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	cases := []struct {
		name string
		in   CreateInput
	}{
		{"bad name", CreateInput{Name: "J0hn", Age: 30, Email: "a@b.co", PIN: "1234"}},
		{"underage", CreateInput{Name: "John", Age: 17, Email: "a@b.co", PIN: "1234"}},
		{"bad email", CreateInput{Name: "John", Age: 30, Email: "nope", PIN: "1234"}},
		{"bad pin", CreateInput{Name: "John", Age: 30, Email: "a@b.co", PIN: "12345"}},
	}
	for _, tc := range cases {
		if _, err := svc.Create(ctx, tc.in); !errors.Is(err, errs.ErrInvalid) {
			t.Errorf("%s: err = %v, want ErrInvalid", tc.name, err)
		}
	}
}

func TestCreate_AgeBoundaryAndDefaults(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateInput{Name: "John", Age: 17, Email: "a@b.co", PIN: "1234"}); !errors.Is(err, errs.ErrInvalid) {
		t.Fatalf("age 17: err = %v, want ErrInvalid", err)
	}
	acc, err := svc.Create(ctx, CreateInput{Name: "John", Age: 18, Email: "A@B.CO", PIN: "1234"})
	if err != nil {
		t.Fatalf("age 18: %v", err)
	}
	if acc.BalanceMinor != 0 {
		t.Errorf("new balance = %d, want 0", acc.BalanceMinor)
	}
	if acc.Email != "a@b.co" {
		t.Errorf("email not lowercased: %q", acc.Email)
	}
	if len(acc.Number) != 8 {
		t.Errorf("account number %q, want 8 chars", acc.Number)
	}
	if acc.PINHash == "1234" || acc.PINHash == "" {
		t.Error("pin must be stored as a hash")
	}
}

func TestAuthenticate(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()
	acc := mustCreate(t, svc)

	if _, err := svc.Authenticate(ctx, acc.Number, "1234"); err != nil {
		t.Fatalf("correct pin: %v", err)
	}
	if _, err := svc.Authenticate(ctx, acc.Number, "0000"); !errors.Is(err, errs.ErrAuthentication) {
		t.Fatalf("wrong pin: err = %v, want ErrAuthentication", err)
	}
	if _, err := svc.Authenticate(ctx, "missing!", "1234"); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("unknown number: err = %v, want ErrNotFound", err)
	}
	if !svc.VerifyCredentials(ctx, acc.Number, "1234") {
		t.Error("VerifyCredentials should hold for correct pin")
	}
	if svc.VerifyCredentials(ctx, acc.Number, "9999") {
		t.Error("VerifyCredentials should fail for wrong pin")
	}
	if !svc.AccountExists(ctx, acc.Number) {
		t.Error("AccountExists should hold for created account")
	}
}

func TestDeposit_Bounds(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()
	acc := mustCreate(t, svc)

	// maximum single deposit of 100000.00 is accepted
	got, err := svc.Deposit(ctx, acc.Number, "1234", 100000_00)
	if err != nil {
		t.Fatalf("deposit at cap: %v", err)
	}
	if got.BalanceMinor != 100000_00 {
		t.Fatalf("balance = %d, want %d", got.BalanceMinor, 100000_00)
	}

	if _, err := svc.Deposit(ctx, acc.Number, "1234", 100001_00); !errors.Is(err, errs.ErrInvalid) {
		t.Fatalf("deposit above cap: err = %v, want ErrInvalid", err)
	}
	if _, err := svc.Deposit(ctx, acc.Number, "1234", 0); !errors.Is(err, errs.ErrInvalid) {
		t.Fatalf("zero deposit: err = %v, want ErrInvalid", err)
	}
	if _, err := svc.Deposit(ctx, acc.Number, "1234", -5); !errors.Is(err, errs.ErrInvalid) {
		t.Fatalf("negative deposit: err = %v, want ErrInvalid", err)
	}
	// authentication happens before the amount checks
	if _, err := svc.Deposit(ctx, acc.Number, "0000", 100); !errors.Is(err, errs.ErrAuthentication) {
		t.Fatalf("wrong pin deposit: err = %v, want ErrAuthentication", err)
	}
}

func TestWithdraw(t *testing.T) {
	svc, store := setup(t)
	ctx := context.Background()
	acc := mustCreate(t, svc)
	if _, err := svc.Deposit(ctx, acc.Number, "1234", 50_00); err != nil {
		t.Fatalf("seed deposit: %v", err)
	}

	// over-balance withdrawal fails and leaves the balance unchanged
	if _, err := svc.Withdraw(ctx, acc.Number, "1234", 60_00); !errors.Is(err, errs.ErrInsufficientFunds) {
		t.Fatalf("over-balance: err = %v, want ErrInsufficientFunds", err)
	}
	cur, err := store.GetAccount(ctx, acc.Number)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if cur.BalanceMinor != 50_00 {
		t.Fatalf("balance changed to %d after failed withdrawal", cur.BalanceMinor)
	}

	got, err := svc.Withdraw(ctx, acc.Number, "1234", 20_00)
	if err != nil {
		t.Fatalf("withdraw: %v", err)
	}
	if got.BalanceMinor != 30_00 {
		t.Fatalf("balance = %d, want %d", got.BalanceMinor, 30_00)
	}

	if _, err := svc.Withdraw(ctx, acc.Number, "1234", 0); !errors.Is(err, errs.ErrInvalid) {
		t.Fatalf("zero withdrawal: err = %v, want ErrInvalid", err)
	}
}

func TestDetails_MasksPIN(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()
	acc := mustCreate(t, svc)

	view, err := svc.Details(ctx, acc.Number, "1234")
	if err != nil {
		t.Fatalf("details: %v", err)
	}
	if view.PINHash != bank.MaskedPIN {
		t.Fatalf("details exposed pin hash %q", view.PINHash)
	}
	if view.Number != acc.Number || view.Name != acc.Name {
		t.Errorf("unexpected view: %+v", view)
	}
}

func TestUpdate(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()
	acc := mustCreate(t, svc)

	name := "Jane Doe"
	email := "Jane@Example.com"
	pin := "5678"
	got, err := svc.Update(ctx, UpdateInput{Number: acc.Number, PIN: "1234", Name: &name, Email: &email, NewPIN: &pin})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Name != "Jane Doe" || got.Email != "jane@example.com" {
		t.Fatalf("update result: %+v", got)
	}
	// old pin no longer authenticates, new one does
	if _, err := svc.Authenticate(ctx, acc.Number, "1234"); !errors.Is(err, errs.ErrAuthentication) {
		t.Fatal("old pin should no longer authenticate")
	}
	if _, err := svc.Authenticate(ctx, acc.Number, "5678"); err != nil {
		t.Fatalf("new pin: %v", err)
	}

	// supplied fields are revalidated
	bad := "no good 2"
	if _, err := svc.Update(ctx, UpdateInput{Number: acc.Number, PIN: "5678", Name: &bad}); !errors.Is(err, errs.ErrInvalid) {
		t.Fatalf("bad name update: err = %v, want ErrInvalid", err)
	}
	// nil fields stay untouched
	same, err := svc.Update(ctx, UpdateInput{Number: acc.Number, PIN: "5678"})
	if err != nil {
		t.Fatalf("no-op update: %v", err)
	}
	if same.Name != "Jane Doe" {
		t.Errorf("no-op update changed name to %q", same.Name)
	}
}

func TestDelete(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()
	acc := mustCreate(t, svc)

	if err := svc.Delete(ctx, acc.Number, "0000"); !errors.Is(err, errs.ErrAuthentication) {
		t.Fatalf("wrong pin delete: err = %v, want ErrAuthentication", err)
	}
	if err := svc.Delete(ctx, acc.Number, "1234"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Authenticate(ctx, acc.Number, "1234"); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("after delete: err = %v, want ErrNotFound", err)
	}
}

func TestCreate_NumbersUnique(t *testing.T) {
	svc, store := setup(t)
	ctx := context.Background()

	seen := make(map[string]struct{})
	for i := 0; i < 25; i++ {
		acc := mustCreate(t, svc)
		if _, dup := seen[acc.Number]; dup {
			t.Fatalf("duplicate account number %q", acc.Number)
		}
		seen[acc.Number] = struct{}{}
	}
	all, err := store.ListAccounts(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 25 {
		t.Fatalf("stored %d accounts, want 25", len(all))
	}
}
