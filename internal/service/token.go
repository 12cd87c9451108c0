package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenManager выпускает и проверяет сессионные JWT. Токен несёт только
// пару идентификатор/роль — никакой другой аутентификации в системе нет,
// выбор роли и есть вход.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager создаёт менеджер токенов.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Generate выпускает сессионный токен для пары пользователь/роль.
func (m *TokenManager) Generate(userID, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"jti":  uuid.NewString(),
		"iat":  now.Unix(),
		"exp":  now.Add(m.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse извлекает userID и роль из токена.
func (m *TokenManager) Parse(token string) (userID, role string, err error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		return "", "", err
	}
	if !parsed.Valid {
		return "", "", jwt.ErrTokenInvalidClaims
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", jwt.ErrTokenInvalidClaims
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", "", jwt.ErrTokenInvalidClaims
	}

	roleClaim, _ := claims["role"].(string)
	if roleClaim == "" {
		return "", "", fmt.Errorf("токен не содержит роль")
	}

	return sub, roleClaim, nil
}
