package site

import (
	"encoding/json"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/segmentio/ksuid"
	"go.uber.org/zap"

	"github.com/greenbdg/atlas-api/pkg/utilities"
)

// Handler exposes admin-gated CRUD endpoints for sites.
type Handler struct {
	repo   *Repo
	logger *zap.SugaredLogger
}

func NewHandler(db *sqlx.DB, logger *zap.SugaredLogger) *Handler {
	return &Handler{repo: NewRepo(db), logger: logger}
}

// CreateRequest is the create payload.
type CreateRequest struct {
	OrganisationID string  `json:"organisationId"`
	Name           string  `json:"name"`
	Location       *string `json:"location"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	docs, err := h.repo.List(r.Context())
	if err != nil {
		h.logger.Warnw("list sites failed", "err", err)
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
	if _, err := ksuid.Parse(req.OrganisationID); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid organisation id"})
		return
	}
	s := &Site{
		ID:             utilities.NewKSUID(),
		OrganisationID: req.OrganisationID,
		Name:           req.Name,
		Location:       req.Location,
	}
	if err := h.repo.Create(r.Context(), s); err != nil {
		h.logger.Warnw("create site failed", "err", err)
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "create failed"})
		return
	}
	h.writeJSON(w, http.StatusCreated, s)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
