package handler

import (
	"testing"
	"time"

	"backend/internal/app/config"
	"backend/internal/app/ds"
	"backend/internal/app/role"

	"github.com/golang-jwt/jwt"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "handler-test-secret"

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:        testSecret,
			ExpiresIn:     time.Hour,
			SigningMethod: jwt.SigningMethodHS256,
		},
	}
}

func TestGenerateTokenRoundTrip(t *testing.T) {
	h := NewAuthHandler(nil, nil, testConfig())

	signed, err := h.generateToken(15, role.Manager)
	if err != nil {
		t.Fatalf("generateToken: %v", err)
	}

	token, err := jwt.ParseWithClaims(signed, &ds.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	if err != nil {
		t.Fatalf("parsing token: %v", err)
	}

	claims, ok := token.Claims.(*ds.JWTClaims)
	if !ok || !token.Valid {
		t.Fatal("token claims invalid")
	}
	if claims.UserID != 15 {
		t.Errorf("UserID = %d, want 15", claims.UserID)
	}
	if claims.Role != role.Manager {
		t.Errorf("Role = %q, want %q", claims.Role, role.Manager)
	}

	// Токен живёт один час
	ttl := time.Until(time.Unix(claims.ExpiresAt, 0))
	if ttl < 55*time.Minute || ttl > time.Hour {
		t.Errorf("token ttl = %v, want ~1h", ttl)
	}
}

func TestGenerateTokenWrongSecret(t *testing.T) {
	h := NewAuthHandler(nil, nil, testConfig())

	signed, err := h.generateToken(1, role.Admin)
	if err != nil {
		t.Fatalf("generateToken: %v", err)
	}

	_, err = jwt.ParseWithClaims(signed, &ds.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte("another-secret"), nil
	})
	if err == nil {
		t.Error("expected verification error with wrong secret")
	}
}

func TestPasswordHashing(t *testing.T) {
	plaintext := "pw"

	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		t.Fatalf("hashing: %v", err)
	}

	// Хеш никогда не равен исходному паролю
	if string(hash) == plaintext {
		t.Error("stored hash equals plaintext password")
	}

	if err := bcrypt.CompareHashAndPassword(hash, []byte(plaintext)); err != nil {
		t.Errorf("correct password rejected: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte("wrong")); err == nil {
		t.Error("wrong password accepted")
	}
}
