package models

import "github.com/golang-jwt/jwt/v5"

// JWTClaims represents the claims carried by access tokens issued at login
type JWTClaims struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	Role     int    `json:"role"`
	jwt.RegisteredClaims
}
