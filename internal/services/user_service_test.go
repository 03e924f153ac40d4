package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"satuBack/internal/models"
	"satuBack/internal/repositories"
	"satuBack/utils"
)

func newUserService(t *testing.T) *UserService {
	t.Helper()
	tokens, err := utils.NewManager("test-signing-key", time.Hour, 24*time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	return &UserService{UserRepo: repositories.NewUserRepository(), Tokens: tokens}
}

func TestSignUp(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a user and strips the password", func(t *testing.T) {
		svc := newUserService(t)
		user, err := svc.SignUp(ctx, models.SignUpRequest{
			Name:     "Aidos",
			Email:    "aidos@example.com",
			Password: "secret123",
			City:     "Almaty",
		})
		if err != nil {
			t.Fatal(err)
		}
		if user.ID == 0 {
			t.Fatal("expected an assigned id")
		}
		if user.Password != "" {
			t.Fatal("password must not be returned")
		}
		if user.Role != "user" {
			t.Fatalf("expected role user, got %q", user.Role)
		}

		stored, err := svc.UserRepo.GetUserByID(ctx, user.ID)
		if err != nil {
			t.Fatal(err)
		}
		if stored.Password == "secret123" || stored.Password == "" {
			t.Fatal("stored password must be a hash")
		}
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		svc := newUserService(t)
		cases := []models.SignUpRequest{
			{Email: "a@example.com", Password: "secret123"},
			{Name: "Aidos", Email: "a@example.com"},
			{Name: "Aidos", Password: "secret123"},
		}
		for _, req := range cases {
			if _, err := svc.SignUp(ctx, req); !errors.Is(err, ErrMissingFields) {
				t.Fatalf("expected ErrMissingFields for %+v, got %v", req, err)
			}
		}
	})

	t.Run("rejects duplicate email and phone", func(t *testing.T) {
		svc := newUserService(t)
		first := models.SignUpRequest{Name: "Aidos", Email: "a@example.com", Phone: "+77010000001", Password: "secret123"}
		if _, err := svc.SignUp(ctx, first); err != nil {
			t.Fatal(err)
		}

		dupEmail := models.SignUpRequest{Name: "Dana", Email: "a@example.com", Password: "secret123"}
		if _, err := svc.SignUp(ctx, dupEmail); !errors.Is(err, models.ErrDuplicateEmail) {
			t.Fatalf("expected ErrDuplicateEmail, got %v", err)
		}

		dupPhone := models.SignUpRequest{Name: "Dana", Phone: "+77010000001", Password: "secret123"}
		if _, err := svc.SignUp(ctx, dupPhone); !errors.Is(err, models.ErrDuplicatePhone) {
			t.Fatalf("expected ErrDuplicatePhone, got %v", err)
		}
	})
}

func TestSignIn(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(t)

	user, err := svc.SignUp(ctx, models.SignUpRequest{
		Name:     "Aidos",
		Email:    "aidos@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatal(err)
	}

	t.Run("issues a token pair and records the session", func(t *testing.T) {
		tokens, err := svc.SignIn(ctx, models.SignInRequest{Email: "aidos@example.com", Password: "secret123"})
		if err != nil {
			t.Fatal(err)
		}
		if tokens.AccessToken == "" || tokens.RefreshToken == "" {
			t.Fatalf("expected both tokens, got %+v", tokens)
		}

		userID, role, err := svc.Tokens.Parse(tokens.AccessToken)
		if err != nil {
			t.Fatal(err)
		}
		if userID != user.ID || role != "user" {
			t.Fatalf("token claims wrong: id=%d role=%q", userID, role)
		}

		session, err := svc.UserRepo.GetSessionByToken(ctx, tokens.RefreshToken)
		if err != nil {
			t.Fatal(err)
		}
		if session.UserID != user.ID {
			t.Fatalf("session belongs to %d, want %d", session.UserID, user.ID)
		}
		if !session.ExpiresAt.After(time.Now()) {
			t.Fatal("session must expire in the future")
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.SignIn(ctx, models.SignInRequest{Email: "aidos@example.com", Password: "wrong"})
		if !errors.Is(err, models.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown login", func(t *testing.T) {
		_, err := svc.SignIn(ctx, models.SignInRequest{Email: "nobody@example.com", Password: "secret123"})
		if !errors.Is(err, models.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestProfile(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(t)

	user, err := svc.SignUp(ctx, models.SignUpRequest{
		Name:     "Aidos",
		Surname:  "Bekov",
		Email:    "aidos@example.com",
		Password: "secret123",
		City:     "Almaty",
	})
	if err != nil {
		t.Fatal(err)
	}

	t.Run("get", func(t *testing.T) {
		profile, err := svc.GetProfile(ctx, user.ID)
		if err != nil {
			t.Fatal(err)
		}
		if profile.Name != "Aidos" || profile.City != "Almaty" {
			t.Fatalf("unexpected profile: %+v", profile)
		}
		if profile.Password != "" {
			t.Fatal("password must not be returned")
		}
	})

	t.Run("partial update keeps untouched fields", func(t *testing.T) {
		updated, err := svc.UpdateProfile(ctx, user.ID, models.UpdateProfileRequest{City: "Astana"})
		if err != nil {
			t.Fatal(err)
		}
		if updated.City != "Astana" {
			t.Fatalf("expected city Astana, got %q", updated.City)
		}
		if updated.Name != "Aidos" || updated.Surname != "Bekov" {
			t.Fatalf("unrelated fields changed: %+v", updated)
		}
		if updated.UpdatedAt == nil {
			t.Fatal("expected UpdatedAt to be set")
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		if _, err := svc.GetProfile(ctx, 9999); !errors.Is(err, models.ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})
}
