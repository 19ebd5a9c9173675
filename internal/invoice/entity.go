package invoice

import "time"

// Invoice is an energy invoice recorded against a site.
type Invoice struct {
	ID            string    `db:"id"`
	SiteID        string    `db:"site_id"`
	InvoiceNumber string    `db:"invoice_number"`
	PeriodStart   time.Time `db:"period_start"`
	PeriodEnd     time.Time `db:"period_end"`
	TotalKwh      float64   `db:"total_kwh"`
	TotalAmount   float64   `db:"total_amount"`
	TaxInvoice    *string   `db:"tax_invoice"`
}
