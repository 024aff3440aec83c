package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"apartment-rental-portal/internal/domain/models"
	"apartment-rental-portal/internal/domain/services"

	"github.com/gin-gonic/gin"
)

func buildTestRouter(t *testing.T) (*gin.Engine, services.InterfaceSessionService) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	sessionSvc := services.NewMemorySessionService(time.Hour)
	InitAuthMiddleware(sessionSvc)

	r := gin.New()
	r.GET("/protected", Authentication(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":  c.GetUint("userID"),
			"is_admin": c.GetBool("isAdmin"),
		})
	})
	r.GET("/admin-only", AuthenticateAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r, sessionSvc
}

func login(t *testing.T, svc services.InterfaceSessionService, isAdmin bool) string {
	t.Helper()

	user := &models.User{Username: "tester", IsAdmin: isAdmin}
	user.ID = 42
	session, err := svc.Create(user)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	return session.Token
}

func TestAuthenticationRejectsMissingToken(t *testing.T) {
	r, _ := buildTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.Code)
	}
}

func TestAuthenticationRejectsUnknownToken(t *testing.T) {
	r, _ := buildTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer bogus-token")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown token, got %d", resp.Code)
	}
}

func TestAuthenticationAcceptsValidToken(t *testing.T) {
	r, svc := buildTestRouter(t)
	token := login(t, svc, false)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 with valid token, got %d", resp.Code)
	}
}

func TestAuthenticationAcceptsCustomHeader(t *testing.T) {
	r, svc := buildTestRouter(t)
	token := login(t, svc, false)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("X-Session-Token", token)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 with X-Session-Token header, got %d", resp.Code)
	}
}

func TestAdminGateRejectsRegularUser(t *testing.T) {
	r, svc := buildTestRouter(t)
	token := login(t, svc, false)

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin, got %d", resp.Code)
	}
}

func TestAdminGateAcceptsAdmin(t *testing.T) {
	r, svc := buildTestRouter(t)
	token := login(t, svc, true)

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", resp.Code)
	}
}

func TestLogoutInvalidatesToken(t *testing.T) {
	r, svc := buildTestRouter(t)
	token := login(t, svc, false)

	if err := svc.Destroy(token); err != nil {
		t.Fatalf("destroy session: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", resp.Code)
	}
}
