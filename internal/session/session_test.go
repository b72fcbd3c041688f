package session_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/pageturner/pageturner-service/config"
	"github.com/pageturner/pageturner-service/internal/errs"
	"github.com/pageturner/pageturner-service/internal/repository"
	"github.com/pageturner/pageturner-service/internal/session"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newManager(t *testing.T, path string, demoLogin bool) *session.Manager {
	t.Helper()
	repo := repository.New(config.Store{}, repository.Fixtures(), zap.NewNop())
	return session.NewManager(repo, session.NewFileStore(path), demoLogin, zap.NewNop())
}

func TestManager_RestoreAnonymous(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "identity.json")
	mgr := newManager(t, path, false)

	require.Equal(t, session.Uninitialized, mgr.State())
	require.NoError(t, mgr.Restore(context.Background()))
	require.Equal(t, session.Anonymous, mgr.State())

	_, err := mgr.Current(context.Background())
	require.True(t, errors.Is(err, errs.ErrNoSession))
}

func TestManager_LoginPersistenceRoundTrip(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "identity.json")
	ctx := context.Background()

	mgr := newManager(t, path, false)
	require.NoError(t, mgr.Restore(ctx))

	user, err := mgr.Login(ctx, "ernest@example.com", "whatever")
	require.NoError(t, err)
	require.Equal(t, "2", user.ID)
	require.Equal(t, session.Authenticated, mgr.State())

	// a fresh manager over the same identity file resumes the session
	fresh := newManager(t, path, false)
	require.NoError(t, fresh.Restore(ctx))
	require.Equal(t, session.Authenticated, fresh.State())

	current, err := fresh.Current(ctx)
	require.NoError(t, err)
	require.Equal(t, user, current)
}

func TestManager_LoginUnknownEmail(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "identity.json")
	ctx := context.Background()

	mgr := newManager(t, path, false)
	require.NoError(t, mgr.Restore(ctx))

	_, err := mgr.Login(ctx, "nobody@example.com", "pw")
	require.True(t, errors.Is(err, errs.ErrInvalidCredentials))
	require.Equal(t, session.Anonymous, mgr.State())

	// the failed attempt must not have persisted anything
	fresh := newManager(t, path, false)
	require.NoError(t, fresh.Restore(ctx))
	require.Equal(t, session.Anonymous, fresh.State())
}

func TestManager_Register(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "identity.json")
	ctx := context.Background()

	mgr := newManager(t, path, false)
	require.NoError(t, mgr.Restore(ctx))

	user, err := mgr.Register(ctx, "Leo Tolstoy", "leo@example.com", "pw123456")
	require.NoError(t, err)
	require.Equal(t, "4", user.ID)
	require.Equal(t, session.Authenticated, mgr.State())

	current, err := mgr.Current(ctx)
	require.NoError(t, err)
	require.Equal(t, user, current)
}

func TestManager_Logout(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "identity.json")
	ctx := context.Background()

	mgr := newManager(t, path, false)
	require.NoError(t, mgr.Restore(ctx))
	_, err := mgr.Login(ctx, "jane@example.com", "pw")
	require.NoError(t, err)

	require.NoError(t, mgr.Logout(ctx))
	require.Equal(t, session.Anonymous, mgr.State())
	_, err = mgr.Current(ctx)
	require.True(t, errors.Is(err, errs.ErrNoSession))

	fresh := newManager(t, path, false)
	require.NoError(t, fresh.Restore(ctx))
	require.Equal(t, session.Anonymous, fresh.State())
}

func TestManager_DemoLogin(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "identity.json")
	ctx := context.Background()

	mgr := newManager(t, path, true)
	require.NoError(t, mgr.Restore(ctx))
	require.Equal(t, session.Authenticated, mgr.State())

	user, err := mgr.Current(ctx)
	require.NoError(t, err)
	require.Equal(t, "1", user.ID)

	// the demo identity is persisted like any other
	fresh := newManager(t, path, false)
	require.NoError(t, fresh.Restore(ctx))
	require.Equal(t, session.Authenticated, fresh.State())
}

func TestFileStore(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "identity.json")
	store := session.NewFileStore(path)

	_, ok, err := store.Load()
	require.NoError(t, err)
	require.False(t, ok)

	data := repository.Fixtures()
	require.NoError(t, store.Save(data.Users[0]))

	user, ok, err := store.Load()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, data.Users[0], user)

	require.NoError(t, store.Clear())
	_, ok, err = store.Load()
	require.NoError(t, err)
	require.False(t, ok)

	// clearing an absent record is a no-op
	require.NoError(t, store.Clear())
}
