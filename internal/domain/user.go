package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Perfis aceitos no token
const (
	RoleAdmin  = "admin"
	RoleViewer = "viewer"
)

// Claims são emitidas pelo serviço de autenticação externo (/auth/login)
type Claims struct {
	UserID     string `json:"user_id"`
	CustomerID string `json:"customer_id,omitempty"`
	Email      string `json:"email,omitempty"`
	Role       string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// HasRole indica se o perfil do usuário está entre os informados. Sem perfil conta como viewer.
func (c *Claims) HasRole(roles ...string) bool {
	current := c.Role
	if current == "" {
		current = RoleViewer
	}

	for _, role := range roles {
		if current == role {
			return true
		}
	}
	return false
}
