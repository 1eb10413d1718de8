package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasScope(t *testing.T) {
	tests := []struct {
		name     string
		role     Role
		scope    Scope
		expected bool
	}{
		{name: "Anônimo pode ler", role: RoleAnon, scope: ScopeAuditsRead, expected: true},
		{name: "Anônimo pode atualizar um domínio", role: RoleAnon, scope: ScopeAuditsRefresh, expected: true},
		{name: "Anônimo não roda lote", role: RoleAnon, scope: ScopeAuditsBatch, expected: false},
		{name: "Autenticado reivindica", role: RoleAuthenticated, scope: ScopeAuditsClaim, expected: true},
		{name: "Autenticado não roda cron", role: RoleAuthenticated, scope: ScopeCronRun, expected: false},
		{name: "Service role roda lote", role: RoleServiceRole, scope: ScopeAuditsBatch, expected: true},
		{name: "Papel desconhecido", role: Role("admin"), scope: ScopeAuditsRead, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HasScope(tt.role, tt.scope))
		})
	}
}

func TestScopesFor_RetornaCopia(t *testing.T) {
	scopes := ScopesFor(RoleAnon)
	scopes[0] = ScopeCronRun

	assert.False(t, HasScope(RoleAnon, ScopeCronRun))
	assert.Empty(t, ScopesFor(Role("desconhecido")))
}

func TestClaims_HasScope(t *testing.T) {
	var nilClaims *Claims
	assert.False(t, nilClaims.HasScope(ScopeAuditsRead))
	assert.True(t, (&Claims{Role: RoleServiceRole}).HasScope(ScopeCronRead))
}
