package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/trivault/trivault-backend/internal/domain"
	"github.com/trivault/trivault-backend/internal/service/activity"
)

// activityService defines the minimal interface needed by ActivityHandler.
type activityService interface {
	ListLogs(ctx context.Context, page, limit int) (*activity.LogPage, error)
	ListLogsByAdmin(ctx context.Context, adminName string, page, limit int) (*activity.LogPage, error)
	Stats(ctx context.Context) (*domain.ActivityStats, error)
}

// ActivityHandler serves activity ledger REST endpoints.
type ActivityHandler struct {
	svc activityService
	log *slog.Logger
}

// NewActivityHandler creates an ActivityHandler.
func NewActivityHandler(svc activityService, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{svc: svc, log: logger.With("handler", "activity")}
}

type logResponse struct {
	ID        string    `json:"id"`
	AdminName string    `json:"adminName"`
	Action    string    `json:"action"`
	EntryName string    `json:"entryName"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"createdAt"`
}

type paginationResponse struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalLogs   int  `json:"totalLogs"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

type logPageResponse struct {
	Logs       []logResponse      `json:"logs"`
	Pagination paginationResponse `json:"pagination"`
}

type actionCountResponse struct {
	Action string `json:"action"`
	Count  int    `json:"count"`
}

type statsResponse struct {
	Stats            []actionCountResponse `json:"stats"`
	TotalActivities  int                   `json:"totalActivities"`
	RecentActivities []logResponse         `json:"recentActivities"`
}

// List handles GET /api/activity?page=&limit=.
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)

	result, err := h.svc.ListLogs(r.Context(), page, limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toLogPageResponse(result))
}

// ListByAdmin handles GET /api/activity/user/{adminName}?page=&limit=.
func (h *ActivityHandler) ListByAdmin(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)

	result, err := h.svc.ListLogsByAdmin(r.Context(), r.PathValue("adminName"), page, limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toLogPageResponse(result))
}

// Stats handles GET /api/activity/stats.
func (h *ActivityHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	out := statsResponse{
		Stats:            make([]actionCountResponse, len(stats.Counts)),
		TotalActivities:  stats.TotalActivities,
		RecentActivities: toLogResponses(stats.RecentActivities),
	}
	for i, c := range stats.Counts {
		out.Stats[i] = actionCountResponse{Action: c.Action.String(), Count: c.Count}
	}

	writeJSON(w, http.StatusOK, out)
}

func (h *ActivityHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	respondError(w, r, h.log, err, "activity logs not found")
}

// pageParams extracts page/limit query parameters. Unparseable or absent
// values fall through to the service defaults.
func pageParams(r *http.Request) (page, limit int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	return page, limit
}

func toLogPageResponse(p *activity.LogPage) logPageResponse {
	return logPageResponse{
		Logs: toLogResponses(p.Logs),
		Pagination: paginationResponse{
			CurrentPage: p.Pagination.CurrentPage,
			TotalPages:  p.Pagination.TotalPages,
			TotalLogs:   p.Pagination.TotalLogs,
			HasNextPage: p.Pagination.HasNextPage,
			HasPrevPage: p.Pagination.HasPrevPage,
		},
	}
}

func toLogResponses(logs []domain.ActivityLog) []logResponse {
	out := make([]logResponse, len(logs))
	for i, l := range logs {
		out[i] = logResponse{
			ID:        l.ID.String(),
			AdminName: l.AdminName,
			Action:    l.Action.String(),
			EntryName: l.EntryName,
			Details:   l.Details,
			CreatedAt: l.CreatedAt,
		}
	}
	return out
}
