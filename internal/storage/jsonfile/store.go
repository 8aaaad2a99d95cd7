// Package jsonfile implements the record store over a single JSON file.
// The full in-memory collection is rewritten to the file after every
// mutation; there is no batching, write-ahead log or partial-write
// recovery. Writes go to a temp file first and replace the target with
// os.Rename so an interrupted write cannot corrupt the existing file.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/tarun5004/bankd/internal/bank"
	"github.com/tarun5004/bankd/internal/errs"
)

// record is the serialized form of one account in the backing file.
// Balance is stored as a JSON number in currency units.
type record struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Age           int       `json:"age"`
	Email         string    `json:"email"`
	PINHash       string    `json:"pinHash"`
	AccountNumber string    `json:"accountNumber"`
	Balance       float64   `json:"balance"`
}

func toRecord(a bank.Account) record {
	return record{
		ID:            a.ID,
		Name:          a.Name,
		Age:           a.Age,
		Email:         a.Email,
		PINHash:       a.PINHash,
		AccountNumber: a.Number,
		Balance:       float64(a.BalanceMinor) / 100,
	}
}

func toAccount(r record) bank.Account {
	return bank.Account{
		ID:           r.ID,
		Name:         r.Name,
		Age:          r.Age,
		Email:        r.Email,
		PINHash:      r.PINHash,
		Number:       r.AccountNumber,
		BalanceMinor: int64(math.Round(r.Balance * 100)),
	}
}

// Store owns the ordered account collection and mirrors it to the backing
// file. A mutex serializes load-mutate-persist so concurrent HTTP requests
// cannot interleave partial writes.
type Store struct {
	mu       sync.Mutex
	path     string
	accounts []bank.Account
}

// Open reads the backing file at path if present and parses it into the
// collection. An absent file initializes an empty collection; a present but
// malformed file is a storage error.
func Open(path string) (*Store, error) {
	s := &Store{path: path}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.accounts = nil
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: read %s: %v", errs.ErrStorage, s.path, err)
	}
	if len(data) == 0 {
		s.accounts = nil
		return nil
	}
	var recs []record
	if err := json.Unmarshal(data, &recs); err != nil {
		return fmt.Errorf("%w: parse %s: %v", errs.ErrStorage, s.path, err)
	}
	s.accounts = make([]bank.Account, 0, len(recs))
	for _, r := range recs {
		s.accounts = append(s.accounts, toAccount(r))
	}
	return nil
}

// Persist rewrites the backing file from the current collection.
func (s *Store) Persist() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persistLocked()
}

func (s *Store) persistLocked() error {
	recs := make([]record, 0, len(s.accounts))
	for _, a := range s.accounts {
		recs = append(recs, toRecord(a))
	}
	tmp := s.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("%w: write %s: %v", errs.ErrStorage, s.path, err)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(recs); err != nil {
		f.Close()
		return fmt.Errorf("%w: encode %s: %v", errs.ErrStorage, s.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", errs.ErrStorage, s.path, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("%w: replace %s: %v", errs.ErrStorage, s.path, err)
	}
	return nil
}

// ListAccounts returns the collection in file order.
func (s *Store) ListAccounts(_ context.Context) ([]bank.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]bank.Account, len(s.accounts))
	copy(out, s.accounts)
	return out, nil
}

// GetAccount finds a record by account number with a linear scan.
func (s *Store) GetAccount(_ context.Context, number string) (bank.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.accounts {
		if a.Number == number {
			return a, nil
		}
	}
	return bank.Account{}, errs.ErrNotFound
}

// CreateAccount appends the record and rewrites the backing file.
func (s *Store) CreateAccount(_ context.Context, a bank.Account) (bank.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = append(s.accounts, a)
	if err := s.persistLocked(); err != nil {
		return bank.Account{}, err
	}
	return a, nil
}

// UpdateAccount replaces the record matching a.Number in place and rewrites
// the backing file.
func (s *Store) UpdateAccount(_ context.Context, a bank.Account) (bank.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.accounts {
		if s.accounts[i].Number == a.Number {
			s.accounts[i] = a
			if err := s.persistLocked(); err != nil {
				return bank.Account{}, err
			}
			return a, nil
		}
	}
	return bank.Account{}, errs.ErrNotFound
}

// DeleteAccount removes the record from the collection and rewrites the
// backing file.
func (s *Store) DeleteAccount(_ context.Context, number string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.accounts {
		if s.accounts[i].Number == number {
			s.accounts = append(s.accounts[:i], s.accounts[i+1:]...)
			return s.persistLocked()
		}
	}
	return errs.ErrNotFound
}

// Path returns the backing file location.
func (s *Store) Path() string { return s.path }
