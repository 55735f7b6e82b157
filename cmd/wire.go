package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/mvetrov/assetmart-cli/internal/adapters/api"
	tomlrepo "github.com/mvetrov/assetmart-cli/internal/adapters/repo/toml"
	"github.com/mvetrov/assetmart-cli/internal/application"
	"github.com/mvetrov/assetmart-cli/internal/ports"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	baseURLKey     = "api.base_url"
	defaultBaseURL = "https://api.assetmart.dev/v1"
)

type app struct {
	client   *api.Client
	sessions *application.SessionStore
	auth     *application.AuthService
	repo     ports.SessionRepository
	logger   *zap.Logger
	now      func() time.Time
}

func wireApp() (*app, error) {
	logger := zap.NewNop()
	if os.Getenv("AM_DEBUG") != "" {
		if debugLogger, err := zap.NewDevelopment(); err == nil {
			logger = debugLogger
		}
	}

	cfg := viper.New()
	cfg.SetDefault(baseURLKey, defaultBaseURL)
	if err := cfg.BindEnv(baseURLKey, "AM_API_BASE_URL"); err != nil {
		return nil, fmt.Errorf("bind base URL env: %w", err)
	}

	repo, err := tomlrepo.NewSessionRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire session repository: %w", err)
	}

	sessions := application.NewSessionStore(repo, logger)
	if err := sessions.Restore(context.Background()); err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}

	client := api.New(
		cfg.GetString(baseURLKey),
		http.DefaultClient,
		sessions.Token,
		logger,
	)

	return &app{
		client:   client,
		sessions: sessions,
		auth:     application.NewAuthService(client, sessions, logger),
		repo:     repo,
		logger:   logger,
		now:      time.Now,
	}, nil
}
