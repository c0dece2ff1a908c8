package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "segredo-de-teste"

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims SessionClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func validClaims() SessionClaims {
	return SessionClaims{
		Email: "operador@gestaobikes.com.br",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func TestAuth(t *testing.T) {
	var got Session
	handler := Auth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = SessionFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	serve := func(authorization string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/v1/contacts", nil)
		if authorization != "" {
			req.Header.Set("Authorization", authorization)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	t.Run("valid token", func(t *testing.T) {
		rec := serve("Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims()))
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, Session{UserID: "user-1", Email: "operador@gestaobikes.com.br"}, got)
	})

	expired := validClaims()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	noExpiry := validClaims()
	noExpiry.ExpiresAt = nil

	noSubject := validClaims()
	noSubject.Subject = ""

	rejected := map[string]string{
		"missing header": "",
		"not bearer":     "Basic dXNlcjpwYXNz",
		"wrong secret":   "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte("outro"), validClaims()),
		"wrong method":   "Bearer " + signToken(t, jwt.SigningMethodHS512, []byte(testSecret), validClaims()),
		"expired":        "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), expired),
		"no expiry":      "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), noExpiry),
		"no subject":     "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), noSubject),
		"garbage":        "Bearer abc.def.ghi",
	}
	for name, header := range rejected {
		t.Run(name, func(t *testing.T) {
			rec := serve(header)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}
