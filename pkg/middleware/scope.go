package middleware

import (
	"net/http"

	"github.com/vfg2006/seo-audit-api/internal/domain"
	"github.com/vfg2006/seo-audit-api/pkg/apiErrors"
	"github.com/vfg2006/seo-audit-api/pkg/log"
)

// RequireScope restringe a rota aos papéis que possuem todos os escopos informados
func RequireScope(scopes ...domain.Scope) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				log.ForContext(r.Context()).Warn("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			for _, scope := range scopes {
				if !claims.HasScope(scope) {
					log.ForContext(r.Context()).WithFields(log.Fields{
						"role":  claims.Role,
						"scope": scope,
					}).Warn("Acesso negado por escopo")
					apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", map[string]any{
						"required_scope": scope,
					})
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AuditsRead permite a leitura de auditorias e histórico
func AuditsRead() func(http.Handler) http.Handler {
	return RequireScope(domain.ScopeAuditsRead)
}

func AuditsRefresh() func(http.Handler) http.Handler {
	return RequireScope(domain.ScopeAuditsRefresh)
}

func AuditsClaim() func(http.Handler) http.Handler {
	return RequireScope(domain.ScopeAuditsClaim)
}

func RankingsRead() func(http.Handler) http.Handler {
	return RequireScope(domain.ScopeRankingsRead)
}

// CronRun e CronRead ficam restritos ao service_role
func CronRun() func(http.Handler) http.Handler {
	return RequireScope(domain.ScopeCronRun)
}

func CronRead() func(http.Handler) http.Handler {
	return RequireScope(domain.ScopeCronRead)
}
