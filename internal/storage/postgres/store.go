// Package postgres provides a pgx-backed record store that satisfies the
// repository and writer interfaces used by the service layer.
//
// It is intentionally small and explicit: one accounts table, ensured on
// open, with methods mapping between the domain entity and SQL rows.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tarun5004/bankd/internal/bank"
	"github.com/tarun5004/bankd/internal/errs"
)

const schema = `
create table if not exists accounts (
    id             uuid primary key,
    name           text   not null,
    age            int    not null,
    email          text   not null,
    pin_hash       text   not null,
    account_number text   not null unique,
    balance_minor  bigint not null default 0
)`

// Store holds a pgx connection pool and implements the read/write interfaces
// used across the service layer. All methods are safe for concurrent use.
type Store struct {
	pool *pgxpool.Pool
}

// Open establishes a pgx pool using the provided connection string and
// ensures the accounts table exists.
func Open(ctx context.Context, dsn string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%w: ensure schema: %v", errs.ErrStorage, err)
	}
	return &Store{pool: pool}, nil
}

// Close releases the underlying pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Ready pings the pool to verify connectivity.
func (s *Store) Ready(ctx context.Context) error { return s.pool.Ping(ctx) }

// ListAccounts returns all account records ordered by account number.
func (s *Store) ListAccounts(ctx context.Context) ([]bank.Account, error) {
	rows, err := s.pool.Query(ctx, `
        select id, name, age, email, pin_hash, account_number, balance_minor
        from accounts
        order by account_number
    `)
	if err != nil {
		return nil, fmt.Errorf("%w: list accounts: %v", errs.ErrStorage, err)
	}
	defer rows.Close()
	out := make([]bank.Account, 0)
	for rows.Next() {
		var a bank.Account
		if err := rows.Scan(&a.ID, &a.Name, &a.Age, &a.Email, &a.PINHash, &a.Number, &a.BalanceMinor); err != nil {
			return nil, fmt.Errorf("%w: scan account: %v", errs.ErrStorage, err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list accounts: %v", errs.ErrStorage, err)
	}
	return out, nil
}

// GetAccount fetches a single account by account number.
func (s *Store) GetAccount(ctx context.Context, number string) (bank.Account, error) {
	var a bank.Account
	err := s.pool.QueryRow(ctx, `
        select id, name, age, email, pin_hash, account_number, balance_minor
        from accounts
        where account_number = $1
    `, number).Scan(&a.ID, &a.Name, &a.Age, &a.Email, &a.PINHash, &a.Number, &a.BalanceMinor)
	if errors.Is(err, pgx.ErrNoRows) {
		return bank.Account{}, errs.ErrNotFound
	}
	if err != nil {
		return bank.Account{}, fmt.Errorf("%w: get account: %v", errs.ErrStorage, err)
	}
	return a, nil
}

// CreateAccount inserts a new account row.
func (s *Store) CreateAccount(ctx context.Context, a bank.Account) (bank.Account, error) {
	_, err := s.pool.Exec(ctx, `
        insert into accounts (id, name, age, email, pin_hash, account_number, balance_minor)
        values ($1,$2,$3,$4,$5,$6,$7)
    `, a.ID, a.Name, a.Age, a.Email, a.PINHash, a.Number, a.BalanceMinor)
	if err != nil {
		return bank.Account{}, fmt.Errorf("%w: create account: %v", errs.ErrStorage, err)
	}
	return a, nil
}

// UpdateAccount rewrites the mutable columns of an existing row.
func (s *Store) UpdateAccount(ctx context.Context, a bank.Account) (bank.Account, error) {
	tag, err := s.pool.Exec(ctx, `
        update accounts
        set name = $2, age = $3, email = $4, pin_hash = $5, balance_minor = $6
        where account_number = $1
    `, a.Number, a.Name, a.Age, a.Email, a.PINHash, a.BalanceMinor)
	if err != nil {
		return bank.Account{}, fmt.Errorf("%w: update account: %v", errs.ErrStorage, err)
	}
	if tag.RowsAffected() == 0 {
		return bank.Account{}, errs.ErrNotFound
	}
	return a, nil
}

// DeleteAccount removes the row for the account number.
func (s *Store) DeleteAccount(ctx context.Context, number string) error {
	tag, err := s.pool.Exec(ctx, `delete from accounts where account_number = $1`, number)
	if err != nil {
		return fmt.Errorf("%w: delete account: %v", errs.ErrStorage, err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}
