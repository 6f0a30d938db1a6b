package middleware

import (
	"net/http"
	"slices"

	"github.com/vfg2006/production-report-api/internal/domain"
	"github.com/vfg2006/production-report-api/pkg/apiErrors"
	"github.com/vfg2006/production-report-api/pkg/log"
)

// RequireRoles libera a rota apenas para os perfis informados.
// Depende do AuthMiddleware ter colocado as claims no contexto.
func RequireRoles(roles ...int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := log.ForContext(r.Context())

			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				logger.WithField("path", r.URL.Path).Warn("role: acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			if !slices.Contains(roles, claims.UserRoleID) {
				logger.WithFields(log.Fields{
					"user_id":      claims.UserID,
					"user_role_id": claims.UserRoleID,
					"path":         r.URL.Path,
				}).Warn("role: acesso negado")
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func AdminOnly() func(http.Handler) http.Handler {
	return RequireRoles(domain.RoleAdmin)
}

// AllRoles permite profissionais e administradores
func AllRoles() func(http.Handler) http.Handler {
	return RequireRoles(domain.RoleAdmin, domain.RolePractitioner)
}
