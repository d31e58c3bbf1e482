package identity

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/lumiderm/lumiderm/pkg/handlers"
)

// Require returns middleware that rejects requests without a verifiable
// bearer token and stores the resulting principal in the request context.
func Require(sys System, logger *slog.Logger) func(http.Handler) http.Handler {
	log := logger.With("middleware", "identity")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r)
			if !ok {
				handlers.RespondError(w, log, http.StatusUnauthorized, ErrUnauthorized)
				return
			}

			principal, err := sys.Verify(r.Context(), raw)
			if err != nil {
				handlers.RespondError(w, log, MapHTTPStatus(err), err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), *principal)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	auth := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(auth, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", false
	}
	return strings.TrimSpace(token), true
}
