// Package memory provides a simple in-memory record store used for
// development and tests. It satisfies the same read/write interfaces as the
// file and database backends without touching disk.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/tarun5004/bankd/internal/bank"
	"github.com/tarun5004/bankd/internal/errs"
)

// Store is an in-memory implementation of the repository+writer used by the
// service layer. It is guarded by an RWMutex for concurrent reads/writes.
type Store struct {
	mu       sync.RWMutex
	accounts map[string]bank.Account
}

// New constructs an empty in-memory store.
func New() *Store {
	return &Store{accounts: make(map[string]bank.Account)}
}

// Seed helpers for local dev/tests.
func (s *Store) SeedAccount(a bank.Account) {
	s.mu.Lock()
	s.accounts[a.Number] = a
	s.mu.Unlock()
}

func (s *Store) Reset() {
	s.mu.Lock()
	s.accounts = map[string]bank.Account{}
	s.mu.Unlock()
}

// ListAccounts returns all accounts ordered by account number.
func (s *Store) ListAccounts(_ context.Context) ([]bank.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]bank.Account, 0, len(s.accounts))
	for _, a := range s.accounts {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}

// GetAccount fetches a single account by number.
func (s *Store) GetAccount(_ context.Context, number string) (bank.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.accounts[number]
	if !ok {
		return bank.Account{}, errs.ErrNotFound
	}
	return a, nil
}

// CreateAccount stores a new account record.
func (s *Store) CreateAccount(_ context.Context, a bank.Account) (bank.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[a.Number] = a
	return a, nil
}

// UpdateAccount replaces an existing record by account number.
func (s *Store) UpdateAccount(_ context.Context, a bank.Account) (bank.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[a.Number]; !ok {
		return bank.Account{}, errs.ErrNotFound
	}
	s.accounts[a.Number] = a
	return a, nil
}

// DeleteAccount removes a record by account number.
func (s *Store) DeleteAccount(_ context.Context, number string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[number]; !ok {
		return errs.ErrNotFound
	}
	delete(s.accounts, number)
	return nil
}
