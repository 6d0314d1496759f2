package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"rahhalah-backend/internal/models"
)

func testContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/admin/check", nil)
	return c, w
}

func TestTokenFromRequestPrefersCookie(t *testing.T) {
	c, _ := testContext(t)
	c.Request.AddCookie(&http.Cookie{Name: CookieName, Value: "cookie-token"})
	c.Request.Header.Set("Authorization", "Bearer header-token")

	if got := tokenFromRequest(c); got != "cookie-token" {
		t.Fatalf("expected cookie token, got %q", got)
	}
}

func TestTokenFromRequestFallsBackToBearer(t *testing.T) {
	c, _ := testContext(t)
	c.Request.Header.Set("Authorization", "Bearer header-token")

	if got := tokenFromRequest(c); got != "header-token" {
		t.Fatalf("expected header token, got %q", got)
	}
}

func TestTokenFromRequestRejectsMalformedHeader(t *testing.T) {
	c, _ := testContext(t)
	c.Request.Header.Set("Authorization", "Token abc")

	if got := tokenFromRequest(c); got != "" {
		t.Fatalf("expected empty token, got %q", got)
	}
}

func TestRequireRoleAllowsMatchingRole(t *testing.T) {
	c, w := testContext(t)
	c.Set(ContextAdminKey, models.Admin{Role: "super_admin", IsActive: true})

	RequireRole("super_admin")(c)

	if c.IsAborted() {
		t.Fatalf("expected request to continue, got status %d", w.Code)
	}
}

func TestRequireRoleForbidsOtherRoles(t *testing.T) {
	c, w := testContext(t)
	c.Set(ContextAdminKey, models.Admin{Role: "editor", IsActive: true})

	RequireRole("super_admin")(c)

	if !c.IsAborted() || w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestRequireRoleWithoutIdentity(t *testing.T) {
	c, w := testContext(t)

	RequireRole("super_admin")(c)

	if !c.IsAborted() || w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
