package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/elx/internal/models"
	"github.com/desertthunder/elx/internal/services"
	"github.com/desertthunder/elx/internal/shared"
)

// Repository persists the session slot between runs.
type Repository interface {
	Load() (*models.Session, error)
	Save(session models.Session) error
	Clear() error
}

// Store holds the current session and mediates every change to it.
type Store struct {
	mu      sync.RWMutex
	current models.Session

	repo    Repository
	gateway services.Gateway
	logger  *log.Logger
}

// NewStore creates a [Store] starting from the anonymous session.
func NewStore(repo Repository, gateway services.Gateway, logger *log.Logger) *Store {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Store{repo: repo, gateway: gateway, logger: logger}
}

// Current returns a copy of the current session.
func (s *Store) Current() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Authenticated reports whether a user is signed in.
func (s *Store) Authenticated() bool {
	return s.Current().Authenticated()
}

// Restore loads the persisted session, if any.
//
// A missing, malformed or unreadable slot is not an error: the store stays
// anonymous and the problem is only logged.
func (s *Store) Restore() {
	if s.repo == nil {
		return
	}

	stored, err := s.repo.Load()
	if err != nil {
		s.logger.Warn("discarding unreadable session", "error", err)
		return
	}
	if stored == nil {
		return
	}

	s.mu.Lock()
	s.current = *stored
	s.mu.Unlock()

	s.logger.Debug("session restored", "user", stored.User.Email, "role", stored.User.Role)
}

// Login exchanges credentials for a session and installs it.
//
// On failure the previous session is left untouched. Transport failures are
// reported as a connection problem so the caller can tell them apart from
// rejected credentials.
func (s *Store) Login(ctx context.Context, email, password string) error {
	fresh, err := s.gateway.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, shared.ErrConnection) {
			return fmt.Errorf("%w: is the backend running?", shared.ErrConnection)
		}
		return fmt.Errorf("%w: %v", shared.ErrInvalidCredentials, err)
	}

	s.install(*fresh)
	s.logger.Info("logged in", "user", fresh.User.Email, "role", fresh.User.Role)
	return nil
}

// Register creates an account and installs the resulting session.
func (s *Store) Register(ctx context.Context, reg models.Registration) error {
	fresh, err := s.gateway.Register(ctx, reg)
	if err != nil {
		if errors.Is(err, shared.ErrConnection) {
			return fmt.Errorf("%w: is the backend running?", shared.ErrConnection)
		}
		return err
	}

	s.install(*fresh)
	s.logger.Info("registered", "user", fresh.User.Email, "role", fresh.User.Role)
	return nil
}

// Logout clears the current session. Logging out while anonymous is a no-op.
func (s *Store) Logout() error {
	s.mu.Lock()
	s.current = models.Session{}
	s.mu.Unlock()

	if s.repo != nil {
		if err := s.repo.Clear(); err != nil {
			return fmt.Errorf("failed to clear stored session: %w", err)
		}
	}

	s.logger.Debug("logged out")
	return nil
}

// install replaces the current session and persists the pair.
//
// Persistence failures are logged but do not undo the in-memory login.
func (s *Store) install(fresh models.Session) {
	s.mu.Lock()
	s.current = fresh
	s.mu.Unlock()

	if s.repo == nil {
		return
	}
	if err := s.repo.Save(fresh); err != nil {
		s.logger.Warn("failed to persist session", "error", err)
	}
}
