package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/trivault/trivault-backend/internal/domain"
	"github.com/trivault/trivault-backend/internal/service/vault"
)

// vaultService defines the minimal interface needed by PasswordHandler.
type vaultService interface {
	ListEntries(ctx context.Context, input vault.ListEntriesInput) ([]domain.PasswordEntry, error)
	GetEntry(ctx context.Context, id uuid.UUID) (*domain.PasswordEntry, error)
	CreateEntry(ctx context.Context, input vault.CreateEntryInput) (*domain.PasswordEntry, error)
	UpdateEntry(ctx context.Context, id uuid.UUID, input vault.UpdateEntryInput) (*domain.PasswordEntry, error)
	DeleteEntry(ctx context.Context, id uuid.UUID) error
	ListTags(ctx context.Context) ([]string, error)
}

// PasswordHandler serves password entry REST endpoints.
type PasswordHandler struct {
	svc vaultService
	log *slog.Logger
}

// NewPasswordHandler creates a PasswordHandler.
func NewPasswordHandler(svc vaultService, logger *slog.Logger) *PasswordHandler {
	return &PasswordHandler{svc: svc, log: logger.With("handler", "passwords")}
}

type createEntryRequest struct {
	WebsiteName string   `json:"websiteName"`
	ClientName  string   `json:"clientName"`
	Email       string   `json:"email"`
	Password    string   `json:"password"`
	Notes       string   `json:"notes"`
	Tags        []string `json:"tags"`
}

type updateEntryRequest struct {
	WebsiteName *string  `json:"websiteName"`
	ClientName  *string  `json:"clientName"`
	Email       *string  `json:"email"`
	Password    *string  `json:"password"`
	Notes       *string  `json:"notes"`
	Tags        []string `json:"tags"`
}

type entryResponse struct {
	ID          string    `json:"id"`
	WebsiteName string    `json:"websiteName"`
	ClientName  string    `json:"clientName"`
	Email       string    `json:"email"`
	Password    string    `json:"password"`
	Notes       string    `json:"notes"`
	Tags        []string  `json:"tags"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// List handles GET /api/passwords?search=&tags=a,b.
func (h *PasswordHandler) List(w http.ResponseWriter, r *http.Request) {
	input := vault.ListEntriesInput{
		Search: r.URL.Query().Get("search"),
	}
	if raw := r.URL.Query().Get("tags"); raw != "" {
		input.Tags = strings.Split(raw, ",")
	}

	entries, err := h.svc.ListEntries(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	out := make([]entryResponse, len(entries))
	for i, e := range entries {
		out[i] = toEntryResponse(&e)
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /api/passwords/{id}.
func (h *PasswordHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.entryID(w, r)
	if !ok {
		return
	}

	entry, err := h.svc.GetEntry(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

// Create handles POST /api/passwords.
func (h *PasswordHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.svc.CreateEntry(r.Context(), vault.CreateEntryInput{
		WebsiteName: req.WebsiteName,
		ClientName:  req.ClientName,
		Email:       req.Email,
		Password:    req.Password,
		Notes:       req.Notes,
		Tags:        req.Tags,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEntryResponse(entry))
}

// Update handles PUT /api/passwords/{id}. Absent fields are untouched.
func (h *PasswordHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.entryID(w, r)
	if !ok {
		return
	}

	var req updateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.svc.UpdateEntry(r.Context(), id, vault.UpdateEntryInput{
		WebsiteName: req.WebsiteName,
		ClientName:  req.ClientName,
		Email:       req.Email,
		Password:    req.Password,
		Notes:       req.Notes,
		Tags:        req.Tags,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

// Delete handles DELETE /api/passwords/{id}.
func (h *PasswordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.entryID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteEntry(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Password entry deleted successfully"})
}

// Tags handles GET /api/passwords/tags.
func (h *PasswordHandler) Tags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.svc.ListTags(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tags)
}

// entryID parses the {id} path segment. A syntactically invalid id cannot
// name any entry, so it reports not-found rather than a validation error.
func (h *PasswordHandler) entryID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Password entry not found")
		return uuid.Nil, false
	}
	return id, true
}

func (h *PasswordHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	respondError(w, r, h.log, err, "Password entry not found")
}

func toEntryResponse(e *domain.PasswordEntry) entryResponse {
	tags := e.Tags
	if tags == nil {
		tags = []string{}
	}
	return entryResponse{
		ID:          e.ID.String(),
		WebsiteName: e.WebsiteName,
		ClientName:  e.ClientName,
		Email:       e.Email,
		Password:    e.Password,
		Notes:       e.Notes,
		Tags:        tags,
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
