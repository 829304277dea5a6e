package usecase

import (
	"context"
	"testing"

	"ciblsport-api/internal/auth"
	"ciblsport-api/internal/auth/repository"
	"ciblsport-api/internal/auth/repository/inmem"
	"ciblsport-api/internal/model"
	"ciblsport-api/pkg/encrypter"
	pkgLog "ciblsport-api/pkg/log"
	"ciblsport-api/pkg/scope"
)

const testSecret = "test-secret-key-0123456789abcdef"

func newTestUsecase(t *testing.T) (auth.UseCase, repository.Repository, scope.Manager) {
	t.Helper()
	l := pkgLog.NewNoop()
	repo := inmem.New(l)
	jwtMgr := scope.New(testSecret)
	return New(l, repo, jwtMgr), repo, jwtMgr
}

func seedUser(t *testing.T, repo repository.Repository, email, password string) model.User {
	t.Helper()
	hash, err := encrypter.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	usr, err := repo.Create(context.Background(), repository.CreateOptions{
		User: model.User{
			ID:           "user-1",
			Email:        email,
			PasswordHash: hash,
			Role:         model.RoleOfficial,
		},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	return usr
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	uc, repo, jwtMgr := newTestUsecase(t)
	seedUser(t, repo, "official@ciblsport.fr", "secret123")

	out, err := uc.Login(context.Background(), auth.LoginInput{
		Email:    "official@ciblsport.fr",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if out.Token == "" {
		t.Fatal("Login() returned empty token")
	}
	if out.User.PasswordHash == "" {
		// repo user keeps the hash internally, the delivery layer hides it
		t.Error("Login() user lost password hash")
	}

	payload, err := jwtMgr.Verify(out.Token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if payload.UserID != "user-1" || payload.Role != model.RoleOfficial {
		t.Errorf("unexpected payload: %+v", payload)
	}
}

func TestLoginEmailIsCaseInsensitive(t *testing.T) {
	uc, repo, _ := newTestUsecase(t)
	seedUser(t, repo, "official@ciblsport.fr", "secret123")

	if _, err := uc.Login(context.Background(), auth.LoginInput{
		Email:    "Official@CiblSport.fr",
		Password: "secret123",
	}); err != nil {
		t.Errorf("Login() with mixed-case email error = %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	uc, repo, _ := newTestUsecase(t)
	seedUser(t, repo, "official@ciblsport.fr", "secret123")

	_, err := uc.Login(context.Background(), auth.LoginInput{
		Email:    "official@ciblsport.fr",
		Password: "wrong",
	})
	if err != auth.ErrInvalidCredentials {
		t.Errorf("Login() error = %v, want %v", err, auth.ErrInvalidCredentials)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	uc, _, _ := newTestUsecase(t)

	_, err := uc.Login(context.Background(), auth.LoginInput{
		Email:    "nobody@ciblsport.fr",
		Password: "secret123",
	})
	if err != auth.ErrInvalidCredentials {
		t.Errorf("Login() error = %v, want %v", err, auth.ErrInvalidCredentials)
	}
}

func TestMe(t *testing.T) {
	uc, repo, _ := newTestUsecase(t)
	usr := seedUser(t, repo, "official@ciblsport.fr", "secret123")

	got, err := uc.Me(context.Background(), model.Scope{UserID: usr.ID})
	if err != nil {
		t.Fatalf("Me() error = %v", err)
	}
	if got.Email != usr.Email {
		t.Errorf("Me() email = %q, want %q", got.Email, usr.Email)
	}

	if _, err := uc.Me(context.Background(), model.Scope{UserID: "missing"}); err != auth.ErrUserNotFound {
		t.Errorf("Me(missing) error = %v, want %v", err, auth.ErrUserNotFound)
	}
}
