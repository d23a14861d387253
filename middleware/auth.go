package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pmsa-qul/artsfest/models"
	"github.com/pmsa-qul/artsfest/services"
)

// PrincipalResolver подтверждает, что владелец токена всё ещё администратор.
type PrincipalResolver interface {
	Principal(ctx context.Context, adminID string) (models.Principal, error)
}

// SignAdminToken выпускает HS256 токен для администратора.
func SignAdminToken(secret []byte, admin *models.Admin, ttl time.Duration, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		jwtClaimAdminID: admin.ID,
		jwtClaimRole:    string(models.RoleAdmin),
		jwtClaimEmail:   admin.Email,
		"exp":           now.Add(ttl).Unix(),
		"iat":           now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Authenticate проверяет Bearer токен, затем подтверждает членство в таблице
// админов и кладёт models.Principal в контекст.
func Authenticate(secret []byte, resolver PrincipalResolver, logger *slog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := bearerToken(r)
			if !ok {
				errorJSON(w, r, logger, http.StatusUnauthorized, "missing or malformed authorization header")
				return
			}

			adminID, err := parseAdminToken(secret, tokenString)
			if err != nil {
				logger.InfoContext(r.Context(), "rejected token", slog.Any("error", err))
				errorJSON(w, r, logger, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			principal, err := resolver.Principal(r.Context(), adminID)
			if err != nil {
				switch {
				case errors.Is(err, services.ErrForbiddenOperation):
					errorJSON(w, r, logger, http.StatusForbidden, "admin access has been revoked")
				case errors.Is(err, services.ErrAuthenticationFailed):
					errorJSON(w, r, logger, http.StatusUnauthorized, "invalid or expired token")
				default:
					logger.ErrorContext(r.Context(), "failed to resolve principal", slog.String("admin_id", adminID), slog.Any("error", err))
					errorJSON(w, r, logger, http.StatusInternalServerError, "the server encountered a problem and could not process your request")
				}
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
		})
	}
}

// Authorize пропускает только принципалов с одной из указанных ролей.
func Authorize(roles ...models.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := PrincipalFromContext(r.Context())
			if !ok {
				errorJSON(w, r, slog.Default(), http.StatusUnauthorized, "authentication required")
				return
			}
			for _, role := range roles {
				if principal.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			errorJSON(w, r, slog.Default(), http.StatusForbidden, "forbidden")
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func parseAdminToken(secret []byte, tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token claims")
	}
	if !claims.VerifyExpiresAt(time.Now().Unix(), true) {
		return "", errors.New("token has no expiry")
	}
	if role, _ := claims[jwtClaimRole].(string); role != string(models.RoleAdmin) {
		return "", fmt.Errorf("unexpected role claim %q", role)
	}
	adminID, _ := claims[jwtClaimAdminID].(string)
	if adminID == "" {
		return "", fmt.Errorf("missing '%s' claim in token", jwtClaimAdminID)
	}
	return adminID, nil
}
