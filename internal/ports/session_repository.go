package ports

import (
	"context"

	"github.com/mvetrov/assetmart-cli/internal/domain"
)

// SessionRepository is the durable home of the two credential strings and the
// language preference. Token writes and clears must be atomic at the file
// level so a concurrent watcher never observes a half-written session.
type SessionRepository interface {
	Load(ctx context.Context) (domain.StoredSession, error)
	SaveTokens(ctx context.Context, authToken, refreshToken string) error
	ClearTokens(ctx context.Context) error
	SetLanguage(ctx context.Context, language string) error
	Path() string
}
