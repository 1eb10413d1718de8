package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/vfg2006/seo-audit-api/internal/domain"
	"github.com/vfg2006/seo-audit-api/internal/usecases/authenticating"
	"github.com/vfg2006/seo-audit-api/pkg/apiErrors"
	"github.com/vfg2006/seo-audit-api/pkg/log"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

// publicPaths não exigem token
var publicPaths = map[string]struct{}{
	"/healthcheck": {},
}

func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := publicPaths[r.URL.Path]; ok || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrMissingToken, "Cabeçalho Authorization é obrigatório", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrMissingToken, "Token Bearer é obrigatório", nil)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil && !authenticating.IsAuthorizationError(err) {
				log.ForContext(r.Context()).WithError(err).Error("Falha ao validar token")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Autenticação indisponível", nil)
				return
			}
			if err != nil {
				log.ForContext(r.Context()).WithError(err).Warn("Token rejeitado")

				code := apiErrors.ErrInvalidToken
				var authErr *authenticating.AuthError
				if errors.As(err, &authErr) && authErr.Code != "" {
					code = authErr.Code
				}
				apiErrors.WriteError(w, code, "Token inválido", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext retorna as claims gravadas pelo AuthMiddleware
func ClaimsFromContext(ctx context.Context) (*domain.Claims, bool) {
	claims, ok := ctx.Value(ContextKeyUser).(*domain.Claims)
	return claims, ok && claims != nil
}
