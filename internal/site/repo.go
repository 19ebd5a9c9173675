package site

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Repo provides data access for the sites table using sqlx.
type Repo struct {
	db *sqlx.DB
}

func NewRepo(db *sqlx.DB) *Repo { return &Repo{db: db} }

// EnsureTable creates the sites table if missing (idempotent).
func (r *Repo) EnsureTable(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS sites (
  id TEXT PRIMARY KEY,
  organisation_id TEXT NOT NULL,
  name TEXT NOT NULL,
  location TEXT,
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_sites_organisation ON sites(organisation_id);
`
	_, err := r.db.ExecContext(ctx, ddl)
	return err
}

// List returns all sites in insertion order.
func (r *Repo) List(ctx context.Context) ([]Site, error) {
	const q = `SELECT id, organisation_id, name, location FROM sites ORDER BY id`
	out := []Site{}
	if err := r.db.SelectContext(ctx, &out, q); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a new site; the caller assigns the id.
func (r *Repo) Create(ctx context.Context, s *Site) error {
	const q = `INSERT INTO sites (id, organisation_id, name, location) VALUES ($1,$2,$3,$4)`
	_, err := r.db.ExecContext(ctx, q, s.ID, s.OrganisationID, s.Name, s.Location)
	return err
}
