package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hirenow/hirenow-backend/internal/models"
)

func newTestTokenManager() *TokenManager {
	return NewTokenManager("test-secret-for-session-tokens", time.Hour)
}

func TestTokenManager_GenerateAndParse(t *testing.T) {
	tm := newTestTokenManager()

	token, err := tm.Generate("laborer-1", models.RoleLaborer)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	userID, role, err := tm.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, "laborer-1", userID)
	assert.Equal(t, models.RoleLaborer, role)
}

func TestTokenManager_Parse_WrongSecret(t *testing.T) {
	tm := newTestTokenManager()
	other := NewTokenManager("another-secret-entirely", time.Hour)

	token, err := tm.Generate("laborer-1", models.RoleLaborer)
	assert.NoError(t, err)

	_, _, err = other.Parse(token)
	assert.Error(t, err)
}

func TestTokenManager_Parse_Expired(t *testing.T) {
	tm := NewTokenManager("test-secret-for-session-tokens", -time.Minute)

	token, err := tm.Generate("laborer-1", models.RoleLaborer)
	assert.NoError(t, err)

	_, _, err = tm.Parse(token)
	assert.Error(t, err)
}

func TestTokenManager_Parse_Garbage(t *testing.T) {
	tm := newTestTokenManager()

	_, _, err := tm.Parse("not.a.token")
	assert.Error(t, err)
}

func TestSessionService_Login_Success(t *testing.T) {
	ctx := context.Background()
	st := newTestStore()
	svc := NewSessionService(st, newTestTokenManager())

	token, err := svc.Login(ctx, models.RoleLaborer, "laborer-1")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	role, userID, ok := svc.Current()
	assert.True(t, ok)
	assert.Equal(t, models.RoleLaborer, role)
	assert.Equal(t, "laborer-1", userID)
}

func TestSessionService_Login_UnknownRole(t *testing.T) {
	svc := NewSessionService(newTestStore(), newTestTokenManager())

	_, err := svc.Login(context.Background(), "admin", "laborer-1")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "неизвестная роль")
}

func TestSessionService_Login_UnknownProfile(t *testing.T) {
	svc := NewSessionService(newTestStore(), newTestTokenManager())

	_, err := svc.Login(context.Background(), models.RoleLaborer, "laborer-missing")
	assert.Error(t, err)

	_, err = svc.Login(context.Background(), models.RoleContractor, "contractor-missing")
	assert.Error(t, err)
}

func TestSessionService_Logout_ClearsPairAtomically(t *testing.T) {
	ctx := context.Background()
	svc := NewSessionService(newTestStore(), newTestTokenManager())

	_, err := svc.Login(ctx, models.RoleContractor, "contractor-1")
	assert.NoError(t, err)

	svc.Logout(ctx)

	role, userID, ok := svc.Current()
	assert.False(t, ok)
	assert.Empty(t, role)
	assert.Empty(t, userID)
}

func TestSessionService_Login_ReplacesPreviousSession(t *testing.T) {
	ctx := context.Background()
	svc := NewSessionService(newTestStore(), newTestTokenManager())

	_, err := svc.Login(ctx, models.RoleLaborer, "laborer-1")
	assert.NoError(t, err)

	_, err = svc.Login(ctx, models.RoleContractor, "contractor-1")
	assert.NoError(t, err)

	role, userID, ok := svc.Current()
	assert.True(t, ok)
	assert.Equal(t, models.RoleContractor, role)
	assert.Equal(t, "contractor-1", userID)
}
