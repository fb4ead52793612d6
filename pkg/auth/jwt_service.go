package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuer = "devconnector-api"

var ErrInvalidToken = errors.New("token is not valid")

// TokenUser is the identity carried inside a session token.
type TokenUser struct {
	ID uuid.UUID `json:"id"`
}

// CustomClaims serialises as {"user": {"id": ...}, "exp": ..., ...}.
type CustomClaims struct {
	User TokenUser `json:"user"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secretKey     []byte
	tokenLifespan time.Duration
}

func NewJWTService(secretKey string, tokenLifespan time.Duration) *JWTService {
	return &JWTService{
		secretKey:     []byte(secretKey),
		tokenLifespan: tokenLifespan,
	}
}

func (s *JWTService) GenerateToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := CustomClaims{
		TokenUser{ID: userID},
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenLifespan)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Subject:   userID.String(),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("cannot sign token: %w", err)
	}

	return signedString, nil
}

// ValidateToken checks signature, algorithm and expiry. Every failure wraps
// ErrInvalidToken.
func (s *JWTService) ValidateToken(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("invalid signature algorithm: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	}, jwt.WithIssuer(issuer))

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if claims, ok := token.Claims.(*CustomClaims); ok && token.Valid {
		if claims.User.ID == uuid.Nil {
			return nil, fmt.Errorf("%w: missing user id", ErrInvalidToken)
		}
		return claims, nil
	}

	return nil, fmt.Errorf("%w: error when parsing token claims", ErrInvalidToken)
}
