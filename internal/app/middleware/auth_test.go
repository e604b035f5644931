package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backend/internal/app/config"
	"backend/internal/app/ds"
	"backend/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

const testSecret = "test-secret"

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:        testSecret,
			ExpiresIn:     time.Hour,
			SigningMethod: jwt.SigningMethodHS256,
		},
	}
}

func makeToken(t *testing.T, secret string, userID uint, userRole role.Role, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, ds.JWTClaims{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expiresAt.Unix(),
			IssuedAt:  time.Now().Unix(),
			Issuer:    "scheduling-app",
		},
		UserID: userID,
		Role:   userRole,
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

func testRouter(am *AuthMiddleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/elevated", am.WithAuthCheck(role.Admin, role.Manager), func(c *gin.Context) {
		userID, _ := c.Get("userID")
		userRole, _ := c.Get("userRole")
		c.JSON(http.StatusOK, gin.H{
			"userID":   userID,
			"userRole": userRole,
		})
	})
	r.GET("/any", am.WithAuthCheck(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestWithAuthCheck(t *testing.T) {
	am := NewAuthMiddleware(nil, testConfig())
	r := testRouter(am)

	validAdmin := makeToken(t, testSecret, 7, role.Admin, time.Now().Add(time.Hour))

	tests := []struct {
		name       string
		path       string
		authHeader string
		wantStatus int
	}{
		{"no header", "/elevated", "", http.StatusUnauthorized},
		{"garbage token", "/elevated", "Bearer not-a-token", http.StatusForbidden},
		{"wrong secret", "/elevated", "Bearer " + makeToken(t, "other-secret", 1, role.Admin, time.Now().Add(time.Hour)), http.StatusForbidden},
		{"expired token", "/elevated", "Bearer " + makeToken(t, testSecret, 1, role.Admin, time.Now().Add(-time.Minute)), http.StatusForbidden},
		{"employee on elevated route", "/elevated", "Bearer " + makeToken(t, testSecret, 2, role.Employee, time.Now().Add(time.Hour)), http.StatusForbidden},
		{"manager on elevated route", "/elevated", "Bearer " + makeToken(t, testSecret, 3, role.Manager, time.Now().Add(time.Hour)), http.StatusOK},
		{"admin on elevated route", "/elevated", "Bearer " + validAdmin, http.StatusOK},
		{"token without bearer prefix", "/elevated", validAdmin, http.StatusOK},
		{"employee on open route", "/any", "Bearer " + makeToken(t, testSecret, 4, role.Employee, time.Now().Add(time.Hour)), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body: %s)", w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}

func TestWithAuthCheckForbiddenMessage(t *testing.T) {
	am := NewAuthMiddleware(nil, testConfig())
	r := testRouter(am)

	token := makeToken(t, testSecret, 5, role.Employee, time.Now().Add(time.Hour))
	req := httptest.NewRequest(http.MethodGet, "/elevated", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusForbidden)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if body["message"] != "Forbidden: Insufficient permissions" {
		t.Errorf("message = %q, want %q", body["message"], "Forbidden: Insufficient permissions")
	}
}

func TestWithAuthCheckContextValues(t *testing.T) {
	am := NewAuthMiddleware(nil, testConfig())
	r := testRouter(am)

	token := makeToken(t, testSecret, 42, role.Admin, time.Now().Add(time.Hour))
	req := httptest.NewRequest(http.MethodGet, "/elevated", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var body struct {
		UserID   uint      `json:"userID"`
		UserRole role.Role `json:"userRole"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if body.UserID != 42 {
		t.Errorf("userID = %d, want 42", body.UserID)
	}
	if body.UserRole != role.Admin {
		t.Errorf("userRole = %q, want %q", body.UserRole, role.Admin)
	}
}
