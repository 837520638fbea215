package model_test

import (
	"context"
	"testing"
	"time"

	"studio/internal/domains/auth/model"
	"studio/shared/constant"

	"github.com/stretchr/testify/assert"
)

func TestSessionContext(t *testing.T) {
	_, ok := model.FromContext(context.Background())
	assert.False(t, ok)

	session := &model.Session{TokenID: "jti", Username: "admin", LoggedIn: true}
	ctx := model.WithSession(context.Background(), session)

	got, ok := model.FromContext(ctx)
	assert.True(t, ok)
	assert.Same(t, session, got)
	assert.Equal(t, "admin", ctx.Value(constant.ContextKeyUsername))
	assert.Equal(t, "jti", ctx.Value(constant.ContextKeyTokenID))
}

func TestSessionContextRejectsLoggedOut(t *testing.T) {
	ctx := model.WithSession(context.Background(), &model.Session{Username: "admin"})

	_, ok := model.FromContext(ctx)
	assert.False(t, ok)
}

func TestRemaining(t *testing.T) {
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	session := &model.Session{ExpiresAt: now.Add(90 * time.Second)}

	assert.Equal(t, 90*time.Second, session.Remaining(now))
	assert.Zero(t, session.Remaining(now.Add(time.Hour)))

	var missing *model.Session
	assert.Zero(t, missing.Remaining(now))
}
