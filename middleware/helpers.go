package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/pmsa-qul/artsfest/models"
)

type contextKey string

const principalContextKey contextKey = "principal"

// Имена JWT claims, общие для выдачи токена и его проверки.
const (
	jwtClaimAdminID = "admin_id"
	jwtClaimRole    = "role"
	jwtClaimEmail   = "email"
)

// WithPrincipal кладёт принципала в контекст запроса.
func WithPrincipal(ctx context.Context, p models.Principal) context.Context {
	return context.WithValue(ctx, principalContextKey, p)
}

// PrincipalFromContext возвращает принципала, установленного Authenticate.
func PrincipalFromContext(ctx context.Context) (models.Principal, bool) {
	p, ok := ctx.Value(principalContextKey).(models.Principal)
	return p, ok
}

func errorJSON(w http.ResponseWriter, r *http.Request, logger *slog.Logger, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": message}); err != nil {
		logger.ErrorContext(r.Context(), "failed to write error response", slog.Any("error", err))
	}
}
