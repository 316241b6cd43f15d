package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pc-store/internal/config"
	"github.com/pc-store/internal/model"
)

// ErrInvalidToken is returned for any token that fails signature or
// expiry validation. The cause is deliberately not exposed.
var ErrInvalidToken = errors.New("invalid or expired token")

// TokenService issues and verifies signed session tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(cfg config.JWTConfig) *TokenService {
	return &TokenService{
		secret: []byte(cfg.Secret),
		ttl:    time.Duration(cfg.ExpirationHours) * time.Hour,
	}
}

// Issue creates a signed token for the given identity claims and
// returns it together with its unix expiry timestamp.
func (s *TokenService) Issue(claims *model.TokenClaims) (string, int64, error) {
	now := time.Now()
	expiresAt := now.Add(s.ttl)

	mapClaims := jwt.MapClaims{
		"email": claims.Email,
		"exp":   expiresAt.Unix(),
		"iat":   now.Unix(),
	}
	if claims.UserID != "" {
		mapClaims["user_id"] = claims.UserID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)
	tokenStr, err := token.SignedString(s.secret)
	if err != nil {
		return "", 0, err
	}

	return tokenStr, expiresAt.Unix(), nil
}

// Verify validates signature and expiry and returns the decoded claims.
// Any failure yields ErrInvalidToken.
func (s *TokenService) Verify(tokenStr string) (*model.TokenClaims, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return nil, ErrInvalidToken
	}
	userID, _ := claims["user_id"].(string)

	return &model.TokenClaims{
		UserID: userID,
		Email:  email,
	}, nil
}
