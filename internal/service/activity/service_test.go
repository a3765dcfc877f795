package activity

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/trivault/trivault-backend/internal/config"
	"github.com/trivault/trivault-backend/internal/domain"
	"github.com/trivault/trivault-backend/pkg/ctxutil"
)

// activityRepoMock is a func-field mock of activityRepo.
type activityRepoMock struct {
	ListFunc          func(ctx context.Context, adminName string, limit, offset int) ([]domain.ActivityLog, int, error)
	CountByActionFunc func(ctx context.Context) ([]domain.ActionCount, error)
	RecentFunc        func(ctx context.Context, limit int) ([]domain.ActivityLog, error)
}

func (m *activityRepoMock) List(ctx context.Context, adminName string, limit, offset int) ([]domain.ActivityLog, int, error) {
	if m.ListFunc == nil {
		panic("unexpected call to List")
	}
	return m.ListFunc(ctx, adminName, limit, offset)
}

func (m *activityRepoMock) CountByAction(ctx context.Context) ([]domain.ActionCount, error) {
	if m.CountByActionFunc == nil {
		panic("unexpected call to CountByAction")
	}
	return m.CountByActionFunc(ctx)
}

func (m *activityRepoMock) Recent(ctx context.Context, limit int) ([]domain.ActivityLog, error) {
	if m.RecentFunc == nil {
		panic("unexpected call to Recent")
	}
	return m.RecentFunc(ctx, limit)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testCfg() config.ActivityConfig {
	return config.ActivityConfig{DefaultPageSize: 50, MaxPageSize: 200, RecentCount: 10}
}

func authedCtx() context.Context {
	return ctxutil.WithIdentity(context.Background(), domain.Identity{
		ID:   uuid.New(),
		Name: "Mike Chen",
	})
}

func makeLogs(n int) []domain.ActivityLog {
	logs := make([]domain.ActivityLog, n)
	for i := range logs {
		logs[i] = domain.ActivityLog{
			ID:        uuid.New(),
			AdminName: "Mike Chen",
			Action:    domain.ActionView,
			EntryName: "Password entries",
			Details:   "Viewed password entries list",
			CreatedAt: time.Now(),
		}
	}
	return logs
}

func TestService_ListLogs_PaginationMath(t *testing.T) {
	t.Parallel()

	var gotLimit, gotOffset int
	repo := &activityRepoMock{
		ListFunc: func(ctx context.Context, adminName string, limit, offset int) ([]domain.ActivityLog, int, error) {
			gotLimit, gotOffset = limit, offset
			return makeLogs(50), 120, nil
		},
	}
	svc := NewService(testLogger(), repo, testCfg())

	page, err := svc.ListLogs(authedCtx(), 2, 50)
	if err != nil {
		t.Fatalf("ListLogs failed: %v", err)
	}

	if gotLimit != 50 || gotOffset != 50 {
		t.Errorf("repo called with limit=%d offset=%d, want 50/50", gotLimit, gotOffset)
	}

	want := domain.Pagination{CurrentPage: 2, TotalPages: 3, TotalLogs: 120, HasNextPage: true, HasPrevPage: true}
	if page.Pagination != want {
		t.Errorf("pagination = %+v, want %+v", page.Pagination, want)
	}
}

func TestService_ListLogs_ClampsPageAndLimit(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name                string
		page, limit         int
		wantLimit, wantPage int
	}{
		{"defaults for zero values", 0, 0, 50, 1},
		{"negative page floors to one", -3, 20, 20, 1},
		{"limit capped at max", 1, 10_000, 200, 1},
		{"in-range values untouched", 4, 25, 25, 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var gotLimit, gotOffset int
			repo := &activityRepoMock{
				ListFunc: func(ctx context.Context, adminName string, limit, offset int) ([]domain.ActivityLog, int, error) {
					gotLimit, gotOffset = limit, offset
					return nil, 0, nil
				},
			}
			svc := NewService(testLogger(), repo, testCfg())

			page, err := svc.ListLogs(authedCtx(), tc.page, tc.limit)
			if err != nil {
				t.Fatalf("ListLogs failed: %v", err)
			}
			if gotLimit != tc.wantLimit {
				t.Errorf("limit = %d, want %d", gotLimit, tc.wantLimit)
			}
			if wantOffset := (tc.wantPage - 1) * tc.wantLimit; gotOffset != wantOffset {
				t.Errorf("offset = %d, want %d", gotOffset, wantOffset)
			}
			if page.Pagination.CurrentPage != tc.wantPage {
				t.Errorf("currentPage = %d, want %d", page.Pagination.CurrentPage, tc.wantPage)
			}
		})
	}
}

func TestService_ListLogs_Unauthenticated(t *testing.T) {
	t.Parallel()

	svc := NewService(testLogger(), &activityRepoMock{}, testCfg())

	if _, err := svc.ListLogs(context.Background(), 1, 50); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got: %v", err)
	}
}

func TestService_ListLogsByAdmin_PassesName(t *testing.T) {
	t.Parallel()

	var gotName string
	repo := &activityRepoMock{
		ListFunc: func(ctx context.Context, adminName string, limit, offset int) ([]domain.ActivityLog, int, error) {
			gotName = adminName
			return makeLogs(3), 3, nil
		},
	}
	svc := NewService(testLogger(), repo, testCfg())

	page, err := svc.ListLogsByAdmin(authedCtx(), "  Sarah Johnson  ", 1, 50)
	if err != nil {
		t.Fatalf("ListLogsByAdmin failed: %v", err)
	}
	if gotName != "Sarah Johnson" {
		t.Errorf("adminName = %q, want trimmed name", gotName)
	}
	if page.Pagination.TotalLogs != 3 {
		t.Errorf("totalLogs = %d, want 3", page.Pagination.TotalLogs)
	}
}

func TestService_ListLogsByAdmin_BlankNameRejected(t *testing.T) {
	t.Parallel()

	svc := NewService(testLogger(), &activityRepoMock{}, testCfg())

	_, err := svc.ListLogsByAdmin(authedCtx(), "   ", 1, 50)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got: %v", err)
	}
}

func TestService_Stats(t *testing.T) {
	t.Parallel()

	var gotRecentLimit int
	repo := &activityRepoMock{
		CountByActionFunc: func(ctx context.Context) ([]domain.ActionCount, error) {
			return []domain.ActionCount{
				{Action: domain.ActionView, Count: 40},
				{Action: domain.ActionAdd, Count: 7},
				{Action: domain.ActionEdit, Count: 2},
			}, nil
		},
		RecentFunc: func(ctx context.Context, limit int) ([]domain.ActivityLog, error) {
			gotRecentLimit = limit
			return makeLogs(10), nil
		},
	}
	svc := NewService(testLogger(), repo, testCfg())

	stats, err := svc.Stats(authedCtx())
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}

	if stats.TotalActivities != 49 {
		t.Errorf("totalActivities = %d, want 49", stats.TotalActivities)
	}
	if len(stats.Counts) != 3 {
		t.Errorf("counts = %+v", stats.Counts)
	}
	if gotRecentLimit != 10 {
		t.Errorf("recent limit = %d, want configured 10", gotRecentLimit)
	}
	if len(stats.RecentActivities) != 10 {
		t.Errorf("recent = %d records, want 10", len(stats.RecentActivities))
	}
}

func TestService_Stats_Unauthenticated(t *testing.T) {
	t.Parallel()

	svc := NewService(testLogger(), &activityRepoMock{}, testCfg())

	if _, err := svc.Stats(context.Background()); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got: %v", err)
	}
}
