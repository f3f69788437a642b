package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type JWTClaims struct {
	UserID string `json:"user_id,omitempty"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func secret() (string, error) {
	s := os.Getenv("JWT_SECRET")
	if s == "" {
		return "", errors.New("JWT_SECRET not set")
	}
	return s, nil
}

// GenerateUserJWT issues the long-lived token handed out on login and
// registration.
func GenerateUserJWT(userID primitive.ObjectID, email string) (string, error) {
	return generate(JWTClaims{
		UserID: userID.Hex(),
		Email:  email,
		Role:   RoleUser,
	}, 30*24*time.Hour)
}

// GenerateAdminJWT issues the short-lived dashboard token.
func GenerateAdminJWT(email string) (string, error) {
	return generate(JWTClaims{Email: email, Role: RoleAdmin}, time.Hour)
}

func generate(claims JWTClaims, ttl time.Duration) (string, error) {
	s, err := secret()
	if err != nil {
		return "", err
	}
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s))
}

func ValidateJWT(tokenString string) (*JWTClaims, error) {
	s, err := secret()
	if err != nil {
		return nil, err
	}
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}
