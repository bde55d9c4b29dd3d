package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("auth: invalid token")

// Claims is the identity carried by an access token.
type Claims struct {
	UserID    int64
	IsAdmin   bool
	TokenID   string
	ExpiresAt time.Time
}

// TokenManager signs and verifies HS256 access tokens. Each token gets a jti
// so logout can revoke it individually.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

func (m *TokenManager) Issue(userID int64, isAdmin bool) (string, Claims, error) {
	now := time.Now().UTC()
	claims := Claims{
		UserID:    userID,
		IsAdmin:   isAdmin,
		TokenID:   uuid.New().String(),
		ExpiresAt: now.Add(m.ttl),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"adm": isAdmin,
		"jti": claims.TokenID,
		"exp": claims.ExpiresAt.Unix(),
		"iat": now.Unix(),
	})
	signed, err := t.SignedString(m.secret)
	if err != nil {
		return "", Claims{}, err
	}
	return signed, claims, nil
}

func (m *TokenManager) Parse(raw string) (Claims, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return Claims{}, ErrInvalidToken
	}
	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}
	sub, ok := mc["sub"].(float64)
	if !ok || sub <= 0 {
		return Claims{}, ErrInvalidToken
	}
	claims := Claims{UserID: int64(sub)}
	if adm, ok := mc["adm"].(bool); ok {
		claims.IsAdmin = adm
	}
	if jti, ok := mc["jti"].(string); ok {
		claims.TokenID = jti
	}
	if exp, ok := mc["exp"].(float64); ok {
		claims.ExpiresAt = time.Unix(int64(exp), 0)
	}
	return claims, nil
}
