package session

import (
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/invitro/booking/internal/platform/storage"
)

// RecordName is the namespace of the durable session record.
const RecordName = "session"

// ErrNoSession is returned by Current when nobody is signed in.
var ErrNoSession = errors.New("no active session")

// Store holds the current signed-in user and persists it across restarts.
// There is at most one session per process; a corrupt or missing record
// simply means logged out.
type Store struct {
	mu       sync.RWMutex
	user     *User
	record   *storage.Record
	logger   zerolog.Logger
	degraded bool
}

// NewStore opens the session store under dir and restores any persisted
// session.
func NewStore(dir string, logger zerolog.Logger) *Store {
	s := &Store{
		record: storage.NewRecord(dir, RecordName),
		logger: logger,
	}

	var u User
	err := s.record.Load(&u)
	switch {
	case err == nil && u.ID != "":
		s.user = &u
	case err == nil, errors.Is(err, storage.ErrNotExist):
		// Logged out.
	default:
		logger.Warn().Err(err).Str("record", s.record.Path()).
			Msg("session record unreadable, starting logged out")
	}
	return s
}

// Current returns the signed-in user, or ErrNoSession.
func (s *Store) Current() (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil, ErrNoSession
	}
	u := *s.user
	return &u, nil
}

// Login replaces the current session with the given user.
func (s *Store) Login(u User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &u
	s.persist()
}

// Logout clears the session and removes the persisted record.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	if err := s.record.Remove(); err != nil {
		s.logger.Warn().Err(err).Msg("failed to remove session record")
	}
}

func (s *Store) persist() {
	if s.degraded {
		return
	}
	if err := s.record.Save(s.user); err != nil {
		s.degraded = true
		s.logger.Warn().Err(err).Str("record", s.record.Path()).
			Msg("session persistence failed, continuing in-memory only")
	}
}
