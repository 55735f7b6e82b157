package ports

import (
	"context"

	"github.com/mvetrov/assetmart-cli/internal/domain"
)

// AuthAPI is the remote surface the auth orchestration depends on. The
// concrete implementation lives in the API adapter.
type AuthAPI interface {
	Login(ctx context.Context, identifier, password string) (domain.TokenPair, error)
	Register(ctx context.Context, reg domain.Registration) error
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (domain.User, error)
	ProfileCompletion(ctx context.Context) (domain.ProfileCompletion, error)
}
