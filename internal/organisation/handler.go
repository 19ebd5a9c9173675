package organisation

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/segmentio/ksuid"
	"go.uber.org/zap"

	"github.com/greenbdg/atlas-api/pkg/utilities"
)

// Handler exposes admin-gated CRUD endpoints for organisations.
type Handler struct {
	repo   *Repo
	logger *zap.SugaredLogger
}

func NewHandler(db *sqlx.DB, logger *zap.SugaredLogger) *Handler {
	return &Handler{repo: NewRepo(db), logger: logger}
}

// CreateRequest is the create payload.
type CreateRequest struct {
	Name    string  `json:"name"`
	Country *string `json:"country"`
	Sector  *string `json:"sector"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	docs, err := h.repo.List(r.Context())
	if err != nil {
		h.logger.Warnw("list organisations failed", "err", err)
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "list failed"})
		return
	}
	h.writeJSON(w, http.StatusOK, docs)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
		return
	}
	o := &Organisation{
		ID:      utilities.NewKSUID(),
		Name:    req.Name,
		Country: req.Country,
		Sector:  req.Sector,
	}
	if err := h.repo.Create(r.Context(), o); err != nil {
		h.logger.Warnw("create organisation failed", "err", err)
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "create failed"})
		return
	}
	h.writeJSON(w, http.StatusCreated, o)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := ksuid.Parse(id); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid organisation id"})
		return
	}
	o, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			h.writeJSON(w, http.StatusNotFound, map[string]string{"error": "organisation not found"})
			return
		}
		h.logger.Warnw("get organisation failed", "err", err)
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "get failed"})
		return
	}
	h.writeJSON(w, http.StatusOK, o)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
