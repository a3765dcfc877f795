package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/google/uuid"

	"github.com/trivault/trivault-backend/internal/config"
	"github.com/trivault/trivault-backend/internal/domain"
	"github.com/trivault/trivault-backend/pkg/ctxutil"
)

// adminRepoMock is a func-field mock of adminRepo.
type adminRepoMock struct {
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.Admin, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.Admin, error)
	CreateFunc     func(ctx context.Context, a *domain.Admin) (*domain.Admin, error)
}

func (m *adminRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Admin, error) {
	if m.GetByIDFunc == nil {
		panic("unexpected call to GetByID")
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *adminRepoMock) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	if m.GetByEmailFunc == nil {
		panic("unexpected call to GetByEmail")
	}
	return m.GetByEmailFunc(ctx, email)
}

func (m *adminRepoMock) Create(ctx context.Context, a *domain.Admin) (*domain.Admin, error) {
	if m.CreateFunc == nil {
		panic("unexpected call to Create")
	}
	return m.CreateFunc(ctx, a)
}

// jwtManagerMock is a func-field mock of jwtManager.
type jwtManagerMock struct {
	GenerateAccessTokenFunc func(identity domain.Identity) (string, error)
	ValidateAccessTokenFunc func(token string) (domain.Identity, error)
}

func (m *jwtManagerMock) GenerateAccessToken(identity domain.Identity) (string, error) {
	if m.GenerateAccessTokenFunc == nil {
		panic("unexpected call to GenerateAccessToken")
	}
	return m.GenerateAccessTokenFunc(identity)
}

func (m *jwtManagerMock) ValidateAccessToken(token string) (domain.Identity, error) {
	if m.ValidateAccessTokenFunc == nil {
		panic("unexpected call to ValidateAccessToken")
	}
	return m.ValidateAccessTokenFunc(token)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// defaultCfg returns a config suitable for most tests.
func defaultCfg() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:        "test-secret-at-least-32-chars-long-xxxx",
		JWTIssuer:        "trivault-test",
		AccessTokenTTL:   15 * time.Minute,
		PasswordHashCost: bcrypt.MinCost, // fast tests
	}
}

// hashPassword returns a bcrypt hash for testing.
func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashPassword: %v", err)
	}
	return string(hash)
}

func storedAdmin(t *testing.T) *domain.Admin {
	t.Helper()
	return &domain.Admin{
		ID:           uuid.New(),
		Name:         "Sarah Johnson",
		Email:        "sarah@agency.com",
		PasswordHash: hashPassword(t, "admin123"),
		CreatedAt:    time.Now(),
	}
}

func TestService_Login_Success(t *testing.T) {
	t.Parallel()

	admin := storedAdmin(t)
	admins := &adminRepoMock{
		GetByEmailFunc: func(ctx context.Context, email string) (*domain.Admin, error) {
			if email != "sarah@agency.com" {
				t.Errorf("GetByEmail called with %q, want lowercased trimmed email", email)
			}
			return admin, nil
		},
	}
	jwt := &jwtManagerMock{
		GenerateAccessTokenFunc: func(identity domain.Identity) (string, error) {
			if identity.ID != admin.ID || identity.Name != admin.Name {
				t.Errorf("token issued for wrong identity: %+v", identity)
			}
			return "token123", nil
		},
	}
	svc := NewService(testLogger(), admins, jwt, defaultCfg())

	result, err := svc.Login(context.Background(), LoginInput{
		Email:    "  Sarah@Agency.COM  ",
		Password: "admin123",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if result.Token != "token123" {
		t.Errorf("token = %q", result.Token)
	}
	if result.Admin.ID != admin.ID {
		t.Errorf("admin = %+v", result.Admin)
	}
}

func TestService_Login_WrongPassword(t *testing.T) {
	t.Parallel()

	admin := storedAdmin(t)
	admins := &adminRepoMock{
		GetByEmailFunc: func(ctx context.Context, email string) (*domain.Admin, error) {
			return admin, nil
		},
	}
	svc := NewService(testLogger(), admins, &jwtManagerMock{}, defaultCfg())

	_, err := svc.Login(context.Background(), LoginInput{
		Email:    "sarah@agency.com",
		Password: "wrong-password",
	})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got: %v", err)
	}
}

func TestService_Login_UnknownEmail(t *testing.T) {
	t.Parallel()

	admins := &adminRepoMock{
		GetByEmailFunc: func(ctx context.Context, email string) (*domain.Admin, error) {
			return nil, domain.ErrNotFound
		},
	}
	svc := NewService(testLogger(), admins, &jwtManagerMock{}, defaultCfg())

	// Unknown email must be indistinguishable from a wrong password.
	_, err := svc.Login(context.Background(), LoginInput{
		Email:    "nobody@agency.com",
		Password: "admin123",
	})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got: %v", err)
	}
}

func TestService_Login_MissingFields(t *testing.T) {
	t.Parallel()

	svc := NewService(testLogger(), &adminRepoMock{}, &jwtManagerMock{}, defaultCfg())

	_, err := svc.Login(context.Background(), LoginInput{})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got: %v", err)
	}
}

func TestService_Register_Success(t *testing.T) {
	t.Parallel()

	var created *domain.Admin
	admins := &adminRepoMock{
		CreateFunc: func(ctx context.Context, a *domain.Admin) (*domain.Admin, error) {
			if a.Email != "alex@agency.com" {
				t.Errorf("Create called with email %q, want normalized", a.Email)
			}
			if a.PasswordHash == "admin123" || a.PasswordHash == "" {
				t.Error("password must be stored as a bcrypt hash")
			}
			c := *a
			c.ID = uuid.New()
			c.CreatedAt = time.Now()
			created = &c
			return &c, nil
		},
	}
	jwt := &jwtManagerMock{
		GenerateAccessTokenFunc: func(identity domain.Identity) (string, error) {
			return "token456", nil
		},
	}
	svc := NewService(testLogger(), admins, jwt, defaultCfg())

	result, err := svc.Register(context.Background(), RegisterInput{
		Name:     "  Alex Rivera  ",
		Email:    "Alex@Agency.com",
		Password: "admin123",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if result.Token != "token456" {
		t.Errorf("token = %q", result.Token)
	}
	if created.Name != "Alex Rivera" {
		t.Errorf("name = %q, want trimmed", created.Name)
	}

	// The stored hash must verify against the original password.
	if err := bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("admin123")); err != nil {
		t.Errorf("stored hash does not match password: %v", err)
	}
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	t.Parallel()

	admins := &adminRepoMock{
		CreateFunc: func(ctx context.Context, a *domain.Admin) (*domain.Admin, error) {
			return nil, domain.ErrAlreadyExists
		},
	}
	svc := NewService(testLogger(), admins, &jwtManagerMock{}, defaultCfg())

	_, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Sarah Johnson",
		Email:    "sarah@agency.com",
		Password: "admin123",
	})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got: %v", err)
	}
}

func TestService_Register_ShortPassword(t *testing.T) {
	t.Parallel()

	svc := NewService(testLogger(), &adminRepoMock{}, &jwtManagerMock{}, defaultCfg())

	_, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Sarah Johnson",
		Email:    "sarah@agency.com",
		Password: "12345",
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got: %v", err)
	}
}

func TestService_ResolveToken(t *testing.T) {
	t.Parallel()

	identity := domain.Identity{ID: uuid.New(), Name: "Sarah Johnson", Email: "sarah@agency.com"}
	jwt := &jwtManagerMock{
		ValidateAccessTokenFunc: func(token string) (domain.Identity, error) {
			if token == "good" {
				return identity, nil
			}
			return domain.Identity{}, errors.New("bad token")
		},
	}
	svc := NewService(testLogger(), &adminRepoMock{}, jwt, defaultCfg())

	got, err := svc.ResolveToken(context.Background(), "good")
	if err != nil {
		t.Fatalf("ResolveToken failed: %v", err)
	}
	if got != identity {
		t.Errorf("identity = %+v, want %+v", got, identity)
	}

	if _, err := svc.ResolveToken(context.Background(), "bad"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got: %v", err)
	}
}

func TestService_Profile(t *testing.T) {
	t.Parallel()

	admin := storedAdmin(t)
	admins := &adminRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Admin, error) {
			if id != admin.ID {
				t.Errorf("GetByID called with %s, want %s", id, admin.ID)
			}
			return admin, nil
		},
	}
	svc := NewService(testLogger(), admins, &jwtManagerMock{}, defaultCfg())

	ctx := ctxutil.WithIdentity(context.Background(), domain.Identity{
		ID: admin.ID, Name: admin.Name, Email: admin.Email,
	})

	got, err := svc.Profile(ctx)
	if err != nil {
		t.Fatalf("Profile failed: %v", err)
	}
	if got.ID != admin.ID {
		t.Errorf("admin = %+v", got)
	}
}

func TestService_Profile_Unauthenticated(t *testing.T) {
	t.Parallel()

	svc := NewService(testLogger(), &adminRepoMock{}, &jwtManagerMock{}, defaultCfg())

	if _, err := svc.Profile(context.Background()); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got: %v", err)
	}
}
