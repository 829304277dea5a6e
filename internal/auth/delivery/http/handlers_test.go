package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	authRepo "ciblsport-api/internal/auth/repository"
	authInmem "ciblsport-api/internal/auth/repository/inmem"
	authUsecase "ciblsport-api/internal/auth/usecase"
	"ciblsport-api/internal/middleware"
	"ciblsport-api/internal/model"
	"ciblsport-api/pkg/encrypter"
	pkgLog "ciblsport-api/pkg/log"
	"ciblsport-api/pkg/scope"
)

const testSecret = "test-secret-key-0123456789abcdef"

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := pkgLog.NewNoop()
	repo := authInmem.New(l)
	jwtMgr := scope.New(testSecret)

	hash, err := encrypter.HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if _, err := repo.Create(context.Background(), authRepo.CreateOptions{
		User: model.User{
			ID:           "user-1",
			Email:        "official@ciblsport.fr",
			PasswordHash: hash,
			Role:         model.RoleOfficial,
			FirstName:    "Marc",
			LastName:     "Lefevre",
		},
	}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	router := gin.New()
	h := New(l, authUsecase.New(l, repo, jwtMgr))
	h.MapRoutes(router.Group("/auth"), middleware.New(l, jwtMgr))
	return router
}

func postLogin(t *testing.T, router *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(http.MethodPost, "/auth/login", &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestLoginSuccess(t *testing.T) {
	router := newTestRouter(t)

	w := postLogin(t, router, gin.H{"email": "official@ciblsport.fr", "password": "secret123"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body: %s)", w.Code, http.StatusOK, w.Body.String())
	}

	var resp struct {
		User  model.User `json:"user"`
		Token string     `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.Token == "" {
		t.Error("login response has no token")
	}
	if resp.User.Email != "official@ciblsport.fr" {
		t.Errorf("user email = %q", resp.User.Email)
	}
	// PasswordHash is json:"-", it must never appear on the wire.
	if bytes.Contains(w.Body.Bytes(), []byte("passwordHash")) {
		t.Error("login response leaks the password hash")
	}
}

func TestLoginMissingFields(t *testing.T) {
	router := newTestRouter(t)

	for _, body := range []gin.H{
		{},
		{"email": "official@ciblsport.fr"},
		{"password": "secret123"},
	} {
		w := postLogin(t, router, body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d for body %v, want %d", w.Code, body, http.StatusBadRequest)
			continue
		}
		var resp map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if resp["error"] != "Email and password are required" {
			t.Errorf("error = %q, want %q", resp["error"], "Email and password are required")
		}
	}
}

func TestLoginWrongPassword(t *testing.T) {
	router := newTestRouter(t)

	w := postLogin(t, router, gin.H{"email": "official@ciblsport.fr", "password": "wrong"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp["error"] != "Invalid credentials" {
		t.Errorf("error = %q, want %q", resp["error"], "Invalid credentials")
	}
}

func TestMeRequiresAuth(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestMeReturnsProfile(t *testing.T) {
	router := newTestRouter(t)

	w := postLogin(t, router, gin.H{"email": "official@ciblsport.fr", "password": "secret123"})
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d", w.Code)
	}
	var loginResp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &loginResp); err != nil {
		t.Fatalf("decode login body: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+loginResp.Token)
	meW := httptest.NewRecorder()
	router.ServeHTTP(meW, req)
	if meW.Code != http.StatusOK {
		t.Fatalf("me status = %d (body: %s)", meW.Code, meW.Body.String())
	}

	var usr model.User
	if err := json.Unmarshal(meW.Body.Bytes(), &usr); err != nil {
		t.Fatalf("decode me body: %v", err)
	}
	if usr.ID != "user-1" {
		t.Errorf("me returned user %q, want user-1", usr.ID)
	}
}
