package vault

import (
	"context"

	"github.com/google/uuid"

	"github.com/trivault/trivault-backend/internal/domain"
)

// entryRepoMock is a func-field mock of entryRepo. A nil func means the
// test does not expect that call.
type entryRepoMock struct {
	ListFunc     func(ctx context.Context, filter domain.EntryFilter) ([]domain.PasswordEntry, error)
	GetByIDFunc  func(ctx context.Context, id uuid.UUID) (*domain.PasswordEntry, error)
	CreateFunc   func(ctx context.Context, e *domain.PasswordEntry) (*domain.PasswordEntry, error)
	UpdateFunc   func(ctx context.Context, id uuid.UUID, params domain.EntryUpdateParams) (*domain.PasswordEntry, error)
	DeleteFunc   func(ctx context.Context, id uuid.UUID) error
	ListTagsFunc func(ctx context.Context) ([]string, error)
}

func (m *entryRepoMock) List(ctx context.Context, filter domain.EntryFilter) ([]domain.PasswordEntry, error) {
	if m.ListFunc == nil {
		panic("unexpected call to List")
	}
	return m.ListFunc(ctx, filter)
}

func (m *entryRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.PasswordEntry, error) {
	if m.GetByIDFunc == nil {
		panic("unexpected call to GetByID")
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *entryRepoMock) Create(ctx context.Context, e *domain.PasswordEntry) (*domain.PasswordEntry, error) {
	if m.CreateFunc == nil {
		panic("unexpected call to Create")
	}
	return m.CreateFunc(ctx, e)
}

func (m *entryRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.EntryUpdateParams) (*domain.PasswordEntry, error) {
	if m.UpdateFunc == nil {
		panic("unexpected call to Update")
	}
	return m.UpdateFunc(ctx, id, params)
}

func (m *entryRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("unexpected call to Delete")
	}
	return m.DeleteFunc(ctx, id)
}

func (m *entryRepoMock) ListTags(ctx context.Context) ([]string, error) {
	if m.ListTagsFunc == nil {
		panic("unexpected call to ListTags")
	}
	return m.ListTagsFunc(ctx)
}

// ledgerMock is a func-field mock of activityAppender that records every
// appended log.
type ledgerMock struct {
	AppendFunc func(ctx context.Context, log domain.ActivityLog) (domain.ActivityLog, error)

	appended []domain.ActivityLog
}

func (m *ledgerMock) Append(ctx context.Context, log domain.ActivityLog) (domain.ActivityLog, error) {
	m.appended = append(m.appended, log)
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, log)
	}
	log.ID = uuid.New()
	return log, nil
}
