package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func mintToken(t *testing.T, email string, expiresAt time.Time) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"exp":   expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

func TestParseIdentityToken(t *testing.T) {
	tokenString := mintToken(t, "alice@example.com", time.Now().Add(time.Hour))

	claims, err := ParseIdentityToken(tokenString)
	if err != nil {
		t.Fatalf("ParseIdentityToken() unexpected error: %v", err)
	}
	if claims.Email != "alice@example.com" {
		t.Errorf("claims email = %q, want alice@example.com", claims.Email)
	}
}

func TestParseIdentityTokenExpired(t *testing.T) {
	tokenString := mintToken(t, "alice@example.com", time.Now().Add(-time.Hour))

	if _, err := ParseIdentityToken(tokenString); err == nil {
		t.Error("ParseIdentityToken() expected error for expired token, got nil")
	}
}

func TestParseIdentityTokenMalformed(t *testing.T) {
	if _, err := ParseIdentityToken("not-a-token"); err == nil {
		t.Error("ParseIdentityToken() expected error for malformed token, got nil")
	}
}

func TestTokenGuard(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"valid token", "Bearer " + mintToken(t, "alice@example.com", time.Now().Add(time.Hour)), http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"no bearer prefix", "Token abc", http.StatusUnauthorized},
		{"malformed token", "Bearer garbage", http.StatusUnauthorized},
		{"expired token", "Bearer " + mintToken(t, "alice@example.com", time.Now().Add(-time.Hour)), http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := gin.New()
			engine.Use(TokenGuard())
			engine.GET("/protected", func(c *gin.Context) {
				c.String(http.StatusOK, c.GetString("identity_email"))
			})

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			recorder := httptest.NewRecorder()
			engine.ServeHTTP(recorder, req)

			if recorder.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", recorder.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusOK && recorder.Body.String() != "alice@example.com" {
				t.Errorf("body = %q, want identity email", recorder.Body.String())
			}
		})
	}
}
