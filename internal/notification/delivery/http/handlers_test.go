package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"ciblsport-api/internal/middleware"
	"ciblsport-api/internal/model"
	"ciblsport-api/internal/notification/repository/inmem"
	"ciblsport-api/internal/notification/usecase"
	pkgLog "ciblsport-api/pkg/log"
	"ciblsport-api/pkg/scope"
)

const testSecret = "test-secret-key-0123456789abcdef"

func newTestRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := pkgLog.NewNoop()
	uc := usecase.New(l, inmem.New(l), inmem.NewPreferenceRepository(l, ""), nil, usecase.Config{})

	jwtMgr := scope.New(testSecret)
	token, err := jwtMgr.CreateToken(scope.Payload{UserID: "official-1", Role: model.RoleOfficial})
	if err != nil {
		t.Fatalf("CreateToken() error = %v", err)
	}

	router := gin.New()
	h := New(l, uc)
	h.MapRoutes(router.Group("/notifications"), middleware.New(l, jwtMgr))

	return router, token
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestUpdatePreferencesPartialBodyKeepsOtherFlags(t *testing.T) {
	router, token := newTestRouter(t)

	w := doJSON(t, router, http.MethodPut, "/notifications/preferences", token, gin.H{"sound": false})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body: %s)", w.Code, http.StatusOK, w.Body.String())
	}

	var prefs model.Preferences
	if err := json.Unmarshal(w.Body.Bytes(), &prefs); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if prefs.Sound {
		t.Error("sound still enabled after update")
	}
	if !prefs.Results || !prefs.Security || !prefs.Events || !prefs.Personal || !prefs.Desktop {
		t.Errorf("partial body changed unmentioned flags: %+v", prefs)
	}
}

func TestUpdatePreferencesFullBodyRoundTrip(t *testing.T) {
	router, token := newTestRouter(t)

	w := doJSON(t, router, http.MethodPut, "/notifications/preferences", token, gin.H{
		"results": false, "security": false, "events": true,
		"personal": true, "system": true, "sound": true, "desktop": false,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body: %s)", w.Code, http.StatusOK, w.Body.String())
	}

	g := doJSON(t, router, http.MethodGet, "/notifications/preferences", token, nil)
	if g.Code != http.StatusOK {
		t.Fatalf("GET status = %d", g.Code)
	}

	var prefs model.Preferences
	if err := json.Unmarshal(g.Body.Bytes(), &prefs); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if prefs.Results || prefs.Security || !prefs.Events || !prefs.Personal || !prefs.System || !prefs.Sound || prefs.Desktop {
		t.Errorf("persisted preferences = %+v", prefs)
	}
}
