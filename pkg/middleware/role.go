package middleware

import (
	"net/http"

	"github.com/maxreviewer/reviews-api/internal/domain"
	"github.com/maxreviewer/reviews-api/pkg/apiErrors"
	"github.com/maxreviewer/reviews-api/pkg/log"
)

// RoleMiddleware cria um middleware que restringe o acesso com base nos perfis
// allowedRoles é a lista de perfis que têm permissão para acessar a rota
func RoleMiddleware(allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := ClaimsFromContext(r.Context())
			if !ok {
				log.ForContext(r.Context()).Warn("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			if !userClaims.HasRole(allowedRoles...) {
				log.ForContext(r.Context()).Warnf("Acesso negado para usuário ID=%s, Role=%s", userClaims.UserID, userClaims.Role)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly permite acesso apenas para administradores
func AdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware(domain.RoleAdmin)
}

// AllRoles permite acesso para qualquer usuário autenticado com perfil conhecido
func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware(domain.RoleAdmin, domain.RoleViewer)
}
