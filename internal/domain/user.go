package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims representa o JWT emitido pelo Supabase para o usuário autenticado.
// O Subject (sub) é o id do usuário.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

func (c *Claims) UserID() string {
	if c == nil {
		return ""
	}

	return c.Subject
}
