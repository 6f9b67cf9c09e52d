package service_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/plainlearn/plainlearn/internal/domain"
	"github.com/plainlearn/plainlearn/internal/repository/sqlite"
	"github.com/plainlearn/plainlearn/internal/service"
)

func newTestAuthService(t *testing.T) (*service.AuthService, *sqlite.DB) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return service.NewAuthService(db.Users()), db
}

func TestAuthService_Register_Success(t *testing.T) {
	auth, _ := newTestAuthService(t)
	ctx := context.Background()

	user, err := auth.Register(ctx, "New User", "new@example.com", "password123", "college")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if user.ID == 0 {
		t.Fatal("expected user ID to be set")
	}
	if user.Level != domain.LevelCollege {
		t.Fatalf("expected level college, got %s", user.Level)
	}
	if user.PasswordHash == "password123" {
		t.Fatal("password must not be stored in plaintext")
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	auth, _ := newTestAuthService(t)
	ctx := context.Background()

	if _, err := auth.Register(ctx, "User 1", "dup@example.com", "password123", "school"); err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, err := auth.Register(ctx, "User 2", "dup@example.com", "password456", "degree")
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestAuthService_Register_EmptyFields(t *testing.T) {
	auth, _ := newTestAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		userName string
		email    string
		password string
		level    string
	}{
		{"empty name", "", "a@b.com", "password123", "school"},
		{"empty email", "Name", "", "password123", "school"},
		{"empty password", "Name", "a@b.com", "", "school"},
		{"empty level", "Name", "a@b.com", "password123", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := auth.Register(ctx, tc.userName, tc.email, tc.password, tc.level)
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestAuthService_Register_UnknownLevel(t *testing.T) {
	auth, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, "Name", "lvl@example.com", "password123", "kindergarten")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown level, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	auth, _ := newTestAuthService(t)
	ctx := context.Background()

	if _, err := auth.Register(ctx, "Login User", "login@example.com", "password123", "degree"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	user, err := auth.Login(ctx, "login@example.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.Name != "Login User" {
		t.Fatalf("expected name %q, got %q", "Login User", user.Name)
	}
	if user.Level != domain.LevelDegree {
		t.Fatalf("expected level degree, got %s", user.Level)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	auth, _ := newTestAuthService(t)
	ctx := context.Background()

	if _, err := auth.Register(ctx, "User", "wrongpw@example.com", "password123", "school"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err := auth.Login(ctx, "wrongpw@example.com", "wrongpassword")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	auth, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := auth.Login(ctx, "nobody@example.com", "password123")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_UpdateLevel(t *testing.T) {
	auth, db := newTestAuthService(t)
	ctx := context.Background()

	user, err := auth.Register(ctx, "Level User", "level@example.com", "password123", "college")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	level, err := auth.UpdateLevel(ctx, user.ID, "degree")
	if err != nil {
		t.Fatalf("UpdateLevel: %v", err)
	}
	if level != domain.LevelDegree {
		t.Fatalf("expected degree, got %s", level)
	}

	stored, err := db.Users().GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.Level != domain.LevelDegree {
		t.Fatalf("expected stored level degree, got %s", stored.Level)
	}
}

func TestAuthService_UpdateLevel_UnknownLevel(t *testing.T) {
	auth, _ := newTestAuthService(t)
	ctx := context.Background()

	user, err := auth.Register(ctx, "Level User", "level2@example.com", "password123", "college")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, err := auth.UpdateLevel(ctx, user.ID, "phd"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown level, got %v", err)
	}
}
