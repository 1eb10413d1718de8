package domain

import "github.com/golang-jwt/jwt/v5"

type Role string

const (
	RoleAnon          Role = "anon"
	RoleAuthenticated Role = "authenticated"
	RoleServiceRole   Role = "service_role"
)

type Scope string

const (
	ScopeAuditsRead    Scope = "audits:read"
	ScopeAuditsRefresh Scope = "audits:refresh"
	ScopeAuditsBatch   Scope = "audits:batch"
	ScopeAuditsClaim   Scope = "audits:claim"
	ScopeRankingsRead  Scope = "rankings:read"
	ScopeCronRun       Scope = "cron:run"
	ScopeCronRead      Scope = "cron:read"
)

// roleScopes é a tabela estática de permissões por papel
var roleScopes = map[Role][]Scope{
	RoleAnon: {
		ScopeAuditsRead,
		ScopeAuditsRefresh,
	},
	RoleAuthenticated: {
		ScopeAuditsRead,
		ScopeAuditsRefresh,
		ScopeAuditsClaim,
		ScopeRankingsRead,
	},
	RoleServiceRole: {
		ScopeAuditsRead,
		ScopeAuditsRefresh,
		ScopeAuditsBatch,
		ScopeAuditsClaim,
		ScopeRankingsRead,
		ScopeCronRun,
		ScopeCronRead,
	},
}

// ScopesFor retorna os escopos do papel. Papéis desconhecidos não têm escopo.
func ScopesFor(role Role) []Scope {
	scopes := roleScopes[role]
	out := make([]Scope, len(scopes))
	copy(out, scopes)
	return out
}

func HasScope(role Role, scope Scope) bool {
	for _, s := range roleScopes[role] {
		if s == scope {
			return true
		}
	}
	return false
}

// Claims são as informações extraídas do JWT de acesso
type Claims struct {
	Role  Role   `json:"role"`
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

func (c *Claims) HasScope(scope Scope) bool {
	if c == nil {
		return false
	}
	return HasScope(c.Role, scope)
}
