package model

import (
	"context"
	"time"

	"studio/shared/constant"
)

// Session is the logged in state carried by the session cookie.
type Session struct {
	TokenID   string
	Username  string
	LoggedIn  bool
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Remaining is the time left before the session expires, never negative.
func (s *Session) Remaining(now time.Time) time.Duration {
	if s == nil || !now.Before(s.ExpiresAt) {
		return 0
	}

	return s.ExpiresAt.Sub(now)
}

// WithSession stores the session in ctx.
func WithSession(ctx context.Context, session *Session) context.Context {
	ctx = context.WithValue(ctx, constant.ContextKeyUsername, session.Username)
	ctx = context.WithValue(ctx, constant.ContextKeyTokenID, session.TokenID)

	return context.WithValue(ctx, constant.ContextKeySession, session)
}

// FromContext returns the logged in session, if any.
func FromContext(ctx context.Context) (*Session, bool) {
	session, ok := ctx.Value(constant.ContextKeySession).(*Session)
	if !ok || session == nil || !session.LoggedIn {
		return nil, false
	}

	return session, true
}
