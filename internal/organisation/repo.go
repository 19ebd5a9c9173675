package organisation

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrNotFound = errors.New("organisation not found")

// Repo provides data access for the organisations table using sqlx.
type Repo struct {
	db *sqlx.DB
}

func NewRepo(db *sqlx.DB) *Repo { return &Repo{db: db} }

// EnsureTable creates the organisations table if missing (idempotent).
func (r *Repo) EnsureTable(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS organisations (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  country TEXT,
  sector TEXT,
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`
	_, err := r.db.ExecContext(ctx, ddl)
	return err
}

// List returns all organisations in insertion order (ids are sortable).
func (r *Repo) List(ctx context.Context) ([]Organisation, error) {
	const q = `SELECT id, name, country, sector FROM organisations ORDER BY id`
	out := []Organisation{}
	if err := r.db.SelectContext(ctx, &out, q); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a new organisation; the caller assigns the id.
func (r *Repo) Create(ctx context.Context, o *Organisation) error {
	const q = `INSERT INTO organisations (id, name, country, sector) VALUES ($1,$2,$3,$4)`
	_, err := r.db.ExecContext(ctx, q, o.ID, o.Name, o.Country, o.Sector)
	return err
}

// GetByID returns one organisation or ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id string) (*Organisation, error) {
	const q = `SELECT id, name, country, sector FROM organisations WHERE id=$1`
	var o Organisation
	if err := r.db.GetContext(ctx, &o, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}
