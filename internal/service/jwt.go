package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// minSecretLength is the minimum accepted HMAC key size in bytes.
const minSecretLength = 32

// Claims represents the bearer token claims. The admin flag is a
// point-in-time snapshot taken at login and is honored until expiry.
type Claims struct {
	UserID int64 `json:"id"`
	Admin  bool  `json:"admin"`
	jwt.RegisteredClaims
}

// JWTService defines bearer token operations.
type JWTService interface {
	Generate(username string, userID int64, admin bool) (string, error)
	Validate(tokenString string) (*Claims, error)
}

type jwtService struct {
	secret string
	expiry time.Duration
}

// NewJWTService creates a new JWTService instance. Returns nil when the
// secret is shorter than 32 bytes.
func NewJWTService(secret string, expiry time.Duration) JWTService {
	if len(secret) < minSecretLength {
		return nil
	}
	return &jwtService{
		secret: secret,
		expiry: expiry,
	}
}

func (s *jwtService) Generate(username string, userID int64, admin bool) (string, error) {
	claims := Claims{
		UserID: userID,
		Admin:  admin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

// Validate parses and verifies a token string. Every failure mode —
// missing token, bad signature, unexpected algorithm, expired token, or
// a well-formed token missing the subject or id claim — collapses into
// ErrInvalidCredentials so the caller leaks nothing about the cause.
func (s *jwtService) Validate(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrInvalidCredentials
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidCredentials
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidCredentials
	}

	// A token can be cryptographically valid yet semantically incomplete.
	if claims.Subject == "" || claims.UserID == 0 {
		return nil, ErrInvalidCredentials
	}

	return claims, nil
}
