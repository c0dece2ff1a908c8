package middlewares

import (
	"context"
	"net/http"
	"strings"

	"gestaobikes/utils"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const SessionContextKey = contextKey("session")

// Session is the signed-in operator. There are no roles: a valid token is
// the whole authorization model.
type Session struct {
	UserID string
	Email  string
}

type SessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func SessionFromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(SessionContextKey).(Session)
	return s, ok
}

// Auth accepts HS256 bearer tokens signed with secret.
func Auth(secret string) func(http.Handler) http.Handler {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	key := []byte(secret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.SendResponse(w, http.StatusUnauthorized, "Token não informado", nil, 0)
				return
			}

			tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || tokenString == "" {
				utils.SendResponse(w, http.StatusUnauthorized, "Formato de token inválido", nil, 0)
				return
			}

			claims := &SessionClaims{}
			token, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
				return key, nil
			})
			if err != nil || !token.Valid || claims.Subject == "" {
				utils.SendResponse(w, http.StatusUnauthorized, "Token inválido ou usuário não autenticado", nil, 0)
				return
			}

			ctx := context.WithValue(r.Context(), SessionContextKey, Session{
				UserID: claims.Subject,
				Email:  claims.Email,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
