package jwt

import "github.com/golang-jwt/jwt/v5"

type SessionClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Role     string `json:"role"`
}

type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)
