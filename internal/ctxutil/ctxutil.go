package ctxutil

import (
	"context"
	"time"
)

// private keys to avoid collisions with other packages
type key int

const (
	keyChatID key = iota
	keyUserID
	keyOpName
)

func WithChatID(ctx context.Context, chatID int64) context.Context {
	return context.WithValue(ctx, keyChatID, chatID)
}

func ChatID(ctx context.Context) (int64, bool) {
	v := ctx.Value(keyChatID)
	if v == nil {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, keyUserID, userID)
}

func UserID(ctx context.Context) (int64, bool) {
	v := ctx.Value(keyUserID)
	if v == nil {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

// WithOp tags the context with an operation name for logs.
func WithOp(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, keyOpName, name)
}

func Op(ctx context.Context) (string, bool) {
	v := ctx.Value(keyOpName)
	if v == nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Bounded timeouts for the two classes of blocking calls: the local
// Postgres cache and the university API.
var (
	DefaultDBTimeout     = 5 * time.Second
	DefaultRemoteTimeout = 10 * time.Second
)

func WithTimeout(parent context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, d)
}

func WithDBTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	return boundedBy(parent, DefaultDBTimeout)
}

// WithRemoteTimeout bounds a university API call so a stalled remote
// never blocks an already-applied local mutation indefinitely.
func WithRemoteTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	return boundedBy(parent, DefaultRemoteTimeout)
}

func boundedBy(parent context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if dl, ok := parent.Deadline(); ok {
		if remain := time.Until(dl); remain < d {
			return context.WithTimeout(parent, remain)
		}
	}
	return context.WithTimeout(parent, d)
}
