package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMiddleware(t *testing.T) {
	jwtService := NewJWTService(testSecret)
	valid, _ := jwtService.GenerateJWT(42, time.Now().Add(time.Hour))

	var seen int
	handler := Middleware(jwtService)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = UserID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name         string
		header       string
		expectedCode int
		expectedUser int
	}{
		{name: "Valid bearer token", header: "Bearer " + valid, expectedCode: http.StatusOK, expectedUser: 42},
		{name: "Missing header", expectedCode: http.StatusUnauthorized},
		{name: "Wrong scheme", header: "Basic abc", expectedCode: http.StatusUnauthorized},
		{name: "Garbage token", header: "Bearer abc", expectedCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = 0
			req := httptest.NewRequest(http.MethodGet, "/api/wallets", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedUser, seen)
		})
	}
}
