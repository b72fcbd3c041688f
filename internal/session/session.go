package session

import (
	"context"
	"sync"

	"github.com/pageturner/pageturner-service/internal/errs"
	"github.com/pageturner/pageturner-service/internal/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type State uint8

const (
	Uninitialized State = iota
	Resolving
	Authenticated
	Anonymous
)

// UserDirectory is the slice of the catalog store the session manager needs.
type UserDirectory interface {
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	CreateUser(ctx context.Context, name, email string) (model.User, error)
	FirstUser(ctx context.Context) (model.User, error)
}

// Manager tracks the one authenticated identity of the running client and
// keeps it in the identity store so a restart resumes the session.
type Manager struct {
	mu        sync.RWMutex
	state     State
	user      model.User
	users     UserDirectory
	store     IdentityStore
	demoLogin bool
	log       *zap.Logger
}

func NewManager(users UserDirectory, store IdentityStore, demoLogin bool, log *zap.Logger) *Manager {
	return &Manager{
		state:     Uninitialized,
		users:     users,
		store:     store,
		demoLogin: demoLogin,
		log:       log.Named("session"),
	}
}

// Restore resolves the persisted identity, if any. Without one the session is
// anonymous, unless demoLogin is set, which signs in the first catalog user.
func (m *Manager) Restore(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = Resolving

	user, ok, err := m.store.Load()
	if err != nil {
		m.state = Anonymous
		return err
	}
	if ok {
		m.user = user
		m.state = Authenticated
		m.log.Info("session restored", zap.String("userId", user.ID))
		return nil
	}

	if !m.demoLogin {
		m.state = Anonymous
		return nil
	}

	user, err = m.users.FirstUser(ctx)
	if err != nil {
		m.state = Anonymous
		return errors.Wrap(err, "demo login")
	}
	if err := m.store.Save(user); err != nil {
		m.state = Anonymous
		return err
	}
	m.user = user
	m.state = Authenticated
	m.log.Info("demo session started", zap.String("userId", user.ID))
	return nil
}

// Login resolves the user by email. The password is accepted but there is no
// credential store to verify it against; only an unknown email fails.
func (m *Manager) Login(ctx context.Context, email, _ string) (model.User, error) {
	user, err := m.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.User{}, errs.ErrInvalidCredentials
		}
		return model.User{}, err
	}
	if err := m.store.Save(user); err != nil {
		return model.User{}, err
	}

	m.mu.Lock()
	m.user = user
	m.state = Authenticated
	m.mu.Unlock()
	m.log.Info("login", zap.String("userId", user.ID))
	return user, nil
}

// Register creates the user unconditionally; email uniqueness is not checked
// and the password is discarded.
func (m *Manager) Register(ctx context.Context, name, email, _ string) (model.User, error) {
	user, err := m.users.CreateUser(ctx, name, email)
	if err != nil {
		return model.User{}, err
	}
	if err := m.store.Save(user); err != nil {
		return model.User{}, err
	}

	m.mu.Lock()
	m.user = user
	m.state = Authenticated
	m.mu.Unlock()
	m.log.Info("register", zap.String("userId", user.ID))
	return user, nil
}

func (m *Manager) Logout(_ context.Context) error {
	if err := m.store.Clear(); err != nil {
		return err
	}

	m.mu.Lock()
	m.user = model.User{}
	m.state = Anonymous
	m.mu.Unlock()
	m.log.Info("logout")
	return nil
}

func (m *Manager) Current(_ context.Context) (model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.state != Authenticated {
		return model.User{}, errs.ErrNoSession
	}
	return m.user, nil
}

func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}
