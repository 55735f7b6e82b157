package toml

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) *SessionRepository {
	t.Helper()

	cfg := viper.New()
	cfg.Set(sessionPathKey, filepath.Join(t.TempDir(), "session.toml"))

	repo, err := NewSessionRepository(cfg)
	require.NoError(t, err)

	return repo
}

func TestLoadMissingFileReturnsEmptySession(t *testing.T) {
	repo := newTestRepository(t)

	stored, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, stored.AuthToken)
	assert.Empty(t, stored.RefreshToken)
	assert.Empty(t, stored.Language)
}

func TestSaveTokensRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveTokens(ctx, "access-token", "refresh-token"))

	stored, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "access-token", stored.AuthToken)
	assert.Equal(t, "refresh-token", stored.RefreshToken)
}

func TestClearTokensPreservesLanguage(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveTokens(ctx, "access-token", "refresh-token"))
	require.NoError(t, repo.SetLanguage(ctx, "de"))
	require.NoError(t, repo.ClearTokens(ctx))

	stored, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored.AuthToken)
	assert.Empty(t, stored.RefreshToken)
	assert.Equal(t, "de", stored.Language)
}

func TestSessionFilePermissions(t *testing.T) {
	repo := newTestRepository(t)

	require.NoError(t, repo.SaveTokens(context.Background(), "access-token", ""))

	info, err := os.Stat(repo.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(sessionFileMode), info.Mode().Perm())
}

func TestLoadRejectsUnsupportedVersion(t *testing.T) {
	repo := newTestRepository(t)

	require.NoError(t, os.MkdirAll(filepath.Dir(repo.Path()), sessionDirMode))
	require.NoError(t, os.WriteFile(repo.Path(), []byte("version = 99\nauth_token = \"x\"\n"), sessionFileMode))

	_, err := repo.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported session file version")
}

func TestLoadRejectsCorruptFile(t *testing.T) {
	repo := newTestRepository(t)

	require.NoError(t, os.MkdirAll(filepath.Dir(repo.Path()), sessionDirMode))
	require.NoError(t, os.WriteFile(repo.Path(), []byte("{not toml"), sessionFileMode))

	_, err := repo.Load(context.Background())
	require.Error(t, err)
}

func TestUpdateHonorsCancelledContext(t *testing.T) {
	repo := newTestRepository(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, repo.SaveTokens(ctx, "access-token", ""), context.Canceled)
	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDefaultPathUnderHome(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	repo, err := NewSessionRepository(viper.New())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(os.Getenv("HOME"), sessionConfigDir, sessionConfigFile), repo.Path())
}
