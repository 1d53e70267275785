package middleware

import (
	"net/http"
	"strings"
)

const wildcardOrigin = "*"

// originMatcher decide quais origens recebem os cabeçalhos de CORS (CORS_ORIGINS)
type originMatcher struct {
	allowAll bool
	origins  map[string]struct{}
}

func newOriginMatcher(allowedOrigins []string) originMatcher {
	m := originMatcher{origins: make(map[string]struct{}, len(allowedOrigins))}
	for _, origin := range allowedOrigins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		if origin == wildcardOrigin {
			m.allowAll = true
			continue
		}
		m.origins[strings.TrimSuffix(origin, "/")] = struct{}{}
	}
	return m
}

func (m originMatcher) isOriginAllowed(origin string) bool {
	if origin == "" {
		return false
	}
	if m.allowAll {
		return true
	}
	_, ok := m.origins[origin]
	return ok
}

func Cors(allowedOrigins []string) func(http.Handler) http.Handler {
	matcher := newOriginMatcher(allowedOrigins)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			// Com credenciais o navegador não aceita "*", então a origem é ecoada
			if matcher.isOriginAllowed(origin) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS, PUT, DELETE")
				w.Header().Set("Access-Control-Allow-Headers", "Accept, Authorization, Content-Type, X-Requested-With")
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Set("Access-Control-Max-Age", "86400") // Cache do CORS por 24 horas
				w.Header().Add("Vary", "Origin")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
