package invoice

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/segmentio/ksuid"
	"go.uber.org/zap"

	"github.com/greenbdg/atlas-api/pkg/utilities"
)

const dateLayout = "2006-01-02"

// Handler exposes admin-gated CRUD endpoints for invoices.
type Handler struct {
	repo   *Repo
	logger *zap.SugaredLogger
}

func NewHandler(db *sqlx.DB, logger *zap.SugaredLogger) *Handler {
	return &Handler{repo: NewRepo(db), logger: logger}
}

// CreateRequest is the create payload. Period dates use YYYY-MM-DD.
// An empty invoiceNumber gets a server-assigned sequence number.
type CreateRequest struct {
	SiteID        string  `json:"siteId"`
	InvoiceNumber string  `json:"invoiceNumber"`
	PeriodStart   string  `json:"periodStart"`
	PeriodEnd     string  `json:"periodEnd"`
	TotalKwh      float64 `json:"totalKwh"`
	TotalAmount   float64 `json:"totalAmount"`
	TaxInvoice    *string `json:"taxInvoice"`
}

// View is the response shape with dates rendered as YYYY-MM-DD.
type View struct {
	ID            string  `json:"id"`
	SiteID        string  `json:"siteId"`
	InvoiceNumber string  `json:"invoiceNumber"`
	PeriodStart   string  `json:"periodStart"`
	PeriodEnd     string  `json:"periodEnd"`
	TotalKwh      float64 `json:"totalKwh"`
	TotalAmount   float64 `json:"totalAmount"`
	TaxInvoice    *string `json:"taxInvoice"`
}

func viewOf(in Invoice) View {
	return View{
		ID:            in.ID,
		SiteID:        in.SiteID,
		InvoiceNumber: in.InvoiceNumber,
		PeriodStart:   in.PeriodStart.Format(dateLayout),
		PeriodEnd:     in.PeriodEnd.Format(dateLayout),
		TotalKwh:      in.TotalKwh,
		TotalAmount:   in.TotalAmount,
		TaxInvoice:    in.TaxInvoice,
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	docs, err := h.repo.List(r.Context())
	if err != nil {
		h.logger.Warnw("list invoices failed", "err", err)
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "list failed"})
		return
	}
	views := make([]View, 0, len(docs))
	for _, d := range docs {
		views = append(views, viewOf(d))
	}
	h.writeJSON(w, http.StatusOK, views)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
		return
	}
	if _, err := ksuid.Parse(req.SiteID); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid site id"})
		return
	}
	start, err := time.Parse(dateLayout, req.PeriodStart)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid periodStart"})
		return
	}
	end, err := time.Parse(dateLayout, req.PeriodEnd)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid periodEnd"})
		return
	}
	number := req.InvoiceNumber
	if number == "" {
		number = "INV-" + utilities.NewSnowflakeID()
	}
	in := &Invoice{
		ID:            utilities.NewKSUID(),
		SiteID:        req.SiteID,
		InvoiceNumber: number,
		PeriodStart:   start,
		PeriodEnd:     end,
		TotalKwh:      req.TotalKwh,
		TotalAmount:   req.TotalAmount,
		TaxInvoice:    req.TaxInvoice,
	}
	if err := h.repo.Create(r.Context(), in); err != nil {
		h.logger.Warnw("create invoice failed", "err", err)
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "create failed"})
		return
	}
	h.writeJSON(w, http.StatusCreated, viewOf(*in))
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
