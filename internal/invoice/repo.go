package invoice

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Repo provides data access for the invoices table using sqlx.
type Repo struct {
	db *sqlx.DB
}

func NewRepo(db *sqlx.DB) *Repo { return &Repo{db: db} }

// EnsureTable creates the invoices table if missing (idempotent).
func (r *Repo) EnsureTable(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS invoices (
  id TEXT PRIMARY KEY,
  site_id TEXT NOT NULL,
  invoice_number TEXT NOT NULL,
  period_start DATE NOT NULL,
  period_end DATE NOT NULL,
  total_kwh DOUBLE PRECISION NOT NULL,
  total_amount DOUBLE PRECISION NOT NULL,
  tax_invoice TEXT,
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_invoices_site ON invoices(site_id);
`
	_, err := r.db.ExecContext(ctx, ddl)
	return err
}

// List returns all invoices in insertion order.
func (r *Repo) List(ctx context.Context) ([]Invoice, error) {
	const q = `SELECT id, site_id, invoice_number, period_start, period_end,
		total_kwh, total_amount, tax_invoice
	  FROM invoices ORDER BY id`
	out := []Invoice{}
	if err := r.db.SelectContext(ctx, &out, q); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a new invoice; the caller assigns the id.
func (r *Repo) Create(ctx context.Context, in *Invoice) error {
	const q = `INSERT INTO invoices (id, site_id, invoice_number, period_start, period_end, total_kwh, total_amount, tax_invoice)
	  VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`
	_, err := r.db.ExecContext(ctx, q, in.ID, in.SiteID, in.InvoiceNumber,
		in.PeriodStart, in.PeriodEnd, in.TotalKwh, in.TotalAmount, in.TaxInvoice)
	return err
}
