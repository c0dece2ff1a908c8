package middlewares

import (
	"net/http"
	"slices"

	"gestaobikes/utils"
)

func allowedOrigins(env string) []string {
	origins := []string{
		"http://localhost:8080",
		"http://localhost:5173",
	}

	if env == utils.ENV_RELEASE {
		origins = []string{
			"https://gestaobikes.com.br",
			"https://www.gestaobikes.com.br",
			"https://painel.gestaobikes.com.br",
		}
	}
	return origins
}

func Cors(env string, next http.Handler) http.Handler {
	origins := allowedOrigins(env)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		if slices.Contains(origins, origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
		}

		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Max-Age", "3600")

		if r.Method == http.MethodOptions {
			utils.SendResponse(w, http.StatusOK, "", nil, 0)
			return
		}

		next.ServeHTTP(w, r)
	})
}
