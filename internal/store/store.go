package store

import (
	"context"

	"github.com/me/clinidash/pkg/model"
)

// Store defines the persistence layer for browser sessions. All patient
// and user data lives on the remote service; the dashboard only keeps
// who is currently logged in.
type Store interface {
	CreateSession(ctx context.Context, sess *model.Session) error
	GetSession(ctx context.Context, id string) (*model.Session, error)
	DeleteSession(ctx context.Context, id string) error
	DeleteSessionsByEmail(ctx context.Context, email string) (int64, error)
	DeleteExpiredSessions(ctx context.Context) (int64, error)
	UpdateSessionLanguage(ctx context.Context, id, lang string) error

	// Lifecycle
	Close() error
	Migrate(ctx context.Context) error
}
