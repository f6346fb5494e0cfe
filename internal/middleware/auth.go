package middleware

import (
	"net/http"
	"strings"

	"cleverpad/internal/auth"
)

// SessionHeader carries the guest session identifier.
const SessionHeader = "X-Session-Id"

// Identity resolves the caller's identity from the Authorization and
// X-Session-Id headers and stores it on the request context. In strict mode
// anonymous requests to protected endpoints are rejected before any handler
// runs; in permissive mode handlers decide what an anonymous caller may do.
func Identity(resolver *auth.Resolver, mode auth.Mode, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := resolver.Resolve(bearerToken(r), r.Header.Get(SessionHeader))

		if mode == auth.ModeStrict && id.Kind == auth.KindAnonymous && !isPublicEndpoint(r.URL.Path) {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), id)))
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

func isPublicEndpoint(path string) bool {
	// Exact match paths
	exactPaths := []string{"/", "/api/auth/signup", "/api/auth/login", "/api/auth/guest"}
	for _, p := range exactPaths {
		if path == p {
			return true
		}
	}
	// The MCP surface authorizes by session id possession inside each tool.
	return strings.HasPrefix(path, "/mcp")
}
