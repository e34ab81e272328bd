package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/piresc/chauffeur/internal/pkg/models"
)

// Claims carries the dispatcher identity plus registered claims
type Claims struct {
	UserID string    `json:"user_id"`
	OrgID  uuid.UUID `json:"org_id"`
	Role   string    `json:"role"`
	jwt.RegisteredClaims
}

// Caller converts claims to the identity used by handlers
func (c *Claims) Caller() models.Caller {
	return models.Caller{
		UserID: c.UserID,
		OrgID:  c.OrgID,
		Role:   models.Role(c.Role),
	}
}

// GenerateToken signs an HS256 token for caller
func GenerateToken(caller models.Caller, cfg models.JWTConfig) (string, int64, error) {
	expirationTime := time.Now().Add(time.Duration(cfg.Expiration) * time.Minute)

	claims := &Claims{
		UserID: caller.UserID,
		OrgID:  caller.OrgID,
		Role:   string(caller.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    cfg.Issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expirationTime.Unix(), nil
}

// ValidateToken parses tokenString and returns its claims
func ValidateToken(tokenString string, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.OrgID == uuid.Nil {
		return nil, errors.New("missing org_id claim")
	}

	return claims, nil
}
