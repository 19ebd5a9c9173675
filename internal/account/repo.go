package account

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

// ErrNotFound is returned when no account row matches a lookup.
var ErrNotFound = errors.New("account not found")

// Repo provides data access for the accounts table using sqlx.
type Repo struct {
	db *sqlx.DB
}

func NewRepo(db *sqlx.DB) *Repo { return &Repo{db: db} }

// EnsureTable creates the accounts table if missing (idempotent).
// password and hashed_password are legacy columns carried over from earlier
// imports of the previous backend's data: reads coalesce them, writes only
// ever touch password_hash.
func (r *Repo) EnsureTable(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS accounts (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL DEFAULT '',
  email TEXT NOT NULL UNIQUE,
  password_hash TEXT,
  password TEXT,
  hashed_password TEXT,
  role TEXT NOT NULL DEFAULT 'user',
  organisation_id TEXT,
  is_active BOOLEAN NOT NULL DEFAULT true,
  last_login_at TIMESTAMPTZ,
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_accounts_email ON accounts(email);
`
	_, err := r.db.ExecContext(ctx, ddl)
	return err
}

type accountRow struct {
	ID             string     `db:"id"`
	Name           string     `db:"name"`
	Email          string     `db:"email"`
	PasswordHash   *string    `db:"password_hash"`
	Role           string     `db:"role"`
	OrganisationID *string    `db:"organisation_id"`
	IsActive       bool       `db:"is_active"`
	LastLoginAt    *time.Time `db:"last_login_at"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

func (row accountRow) toAccount() *Account {
	hash := ""
	if row.PasswordHash != nil {
		hash = *row.PasswordHash
	}
	return &Account{
		ID:             row.ID,
		Name:           row.Name,
		Email:          row.Email,
		PasswordHash:   hash,
		Role:           row.Role,
		OrganisationID: row.OrganisationID,
		IsActive:       row.IsActive,
		LastLoginAt:    row.LastLoginAt,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}

// FindByEmail returns the account for an already-normalized email, or
// ErrNotFound. The hash column coalesces the canonical name with the two
// legacy spellings.
func (r *Repo) FindByEmail(ctx context.Context, email string) (*Account, error) {
	const q = `SELECT id, name, email,
		COALESCE(password_hash, password, hashed_password) AS password_hash,
		role, organisation_id, is_active, last_login_at, created_at, updated_at
	  FROM accounts WHERE email=$1`
	var row accountRow
	if err := r.db.GetContext(ctx, &row, q, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return row.toAccount(), nil
}

// Create inserts a new account row. Email must already be lowercase.
func (r *Repo) Create(ctx context.Context, a *Account) error {
	const q = `INSERT INTO accounts (id, name, email, password_hash, role, organisation_id, is_active)
	  VALUES ($1,$2,$3,$4,$5,$6,$7)`
	_, err := r.db.ExecContext(ctx, q, a.ID, a.Name, a.Email, a.PasswordHash, a.Role, a.OrganisationID, a.IsActive)
	return err
}

// TouchLastLogin records a successful login.
func (r *Repo) TouchLastLogin(ctx context.Context, id string) error {
	const q = `UPDATE accounts SET last_login_at=NOW(), updated_at=NOW() WHERE id=$1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

// Deactivate flips is_active off. The account keeps its row but stops
// resolving as a principal on its next request.
func (r *Repo) Deactivate(ctx context.Context, id string) error {
	const q = `UPDATE accounts SET is_active=false, updated_at=NOW() WHERE id=$1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
