package mockserver

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/muhammedyasars/VoltMate-sub000/internal/domain"
)

var ErrInvalidToken = errors.New("invalid token")

type tokenPair struct {
	Access  string
	Refresh string
}

// issueTokens mints an HMAC access/refresh pair for a fixture user.
func (s *Server) issueTokens(user domain.User) (tokenPair, error) {
	now := time.Now()

	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":        user.ID,
		"email":      user.Email,
		"role":       user.Role,
		"token_type": "access",
		"exp":        now.Add(s.cfg.AccessTokenTTL).Unix(),
		"iat":        now.Unix(),
	}).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return tokenPair{}, err
	}

	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":        user.ID,
		"token_type": "refresh",
		"exp":        now.Add(s.cfg.RefreshTokenTTL).Unix(),
		"iat":        now.Unix(),
	}).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return tokenPair{}, err
	}

	return tokenPair{Access: access, Refresh: refresh}, nil
}

// parseToken validates an HMAC token of the expected type and returns the
// subject user id.
func (s *Server) parseToken(tokenStr, wantType string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["token_type"] != wantType {
		return "", ErrInvalidToken
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", ErrInvalidToken
	}
	return sub, nil
}
