package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/AnshRaj112/mindjournal-backend/internal/logger"
	"github.com/AnshRaj112/mindjournal-backend/internal/models"
	"github.com/AnshRaj112/mindjournal-backend/internal/storage"
)

// SessionDuration is 7 days
const SessionDuration = 7 * 24 * time.Hour

// Sessions maps opaque tokens to users. A user has at most one live session:
// creating a new one invalidates the previous token so the 7-day timer
// restarts from the latest login.
type Sessions struct {
	store storage.Store
	ttl   time.Duration
	now   func() time.Time
	log   *logger.Logger

	mu     sync.RWMutex
	subs   map[int]func(models.SessionEvent)
	nextID int
}

func NewSessions(store storage.Store, ttl time.Duration, now func() time.Time, log *logger.Logger) *Sessions {
	if ttl <= 0 {
		ttl = SessionDuration
	}
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Sessions{
		store: store,
		ttl:   ttl,
		now:   now,
		log:   log,
		subs:  make(map[int]func(models.SessionEvent)),
	}
}

// Create opens a session for userID and returns its token.
func (s *Sessions) Create(ctx context.Context, userID string) (string, error) {
	// Invalidate any existing session for this user (so 7-day timer resets)
	s.invalidateUser(ctx, userID)

	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", err
	}
	token := base64.URLEncoding.EncodeToString(tokenBytes)

	now := s.now()
	raw, err := json.Marshal(models.Session{UserID: userID, CreatedAt: now, ExpiresAt: now.Add(s.ttl)})
	if err != nil {
		return "", err
	}

	if err := s.store.Set(ctx, SessionKeyPrefix+token, raw); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	if err := s.store.Set(ctx, UserSessionKeyPrefix+userID, []byte(token)); err != nil {
		_ = s.store.Delete(ctx, SessionKeyPrefix+token)
		return "", fmt.Errorf("store user session: %w", err)
	}

	s.Notify(models.SessionEventLogin, userID)
	return token, nil
}

// Resolve returns the user id behind token. Missing, expired and undecodable
// sessions all resolve to ("", false); expired ones are removed.
func (s *Sessions) Resolve(ctx context.Context, token string) (string, bool) {
	if token == "" {
		return "", false
	}

	raw, err := s.store.Get(ctx, SessionKeyPrefix+token)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.log.Error().Err(err).Msg("session lookup failed")
		}
		return "", false
	}

	var sess models.Session
	if err := json.Unmarshal(raw, &sess); err != nil || sess.UserID == "" {
		s.log.Warn().Msg("dropping malformed session")
		_ = s.store.Delete(ctx, SessionKeyPrefix+token)
		return "", false
	}

	if !s.now().Before(sess.ExpiresAt) {
		s.remove(ctx, token, sess.UserID)
		return "", false
	}

	return sess.UserID, true
}

// Invalidate ends the session behind token. Unknown tokens are ignored.
func (s *Sessions) Invalidate(ctx context.Context, token string) {
	if token == "" {
		return
	}

	userID := ""
	if raw, err := s.store.Get(ctx, SessionKeyPrefix+token); err == nil {
		var sess models.Session
		if json.Unmarshal(raw, &sess) == nil {
			userID = sess.UserID
		}
	}

	s.remove(ctx, token, userID)
	if userID != "" {
		s.Notify(models.SessionEventLogout, userID)
	}
}

// InvalidateUser ends whatever session userID holds.
func (s *Sessions) InvalidateUser(ctx context.Context, userID string) {
	s.invalidateUser(ctx, userID)
}

func (s *Sessions) invalidateUser(ctx context.Context, userID string) {
	if userID == "" {
		return
	}
	token, err := s.store.Get(ctx, UserSessionKeyPrefix+userID)
	if err != nil {
		return
	}
	s.remove(ctx, string(token), userID)
}

func (s *Sessions) remove(ctx context.Context, token, userID string) {
	if err := s.store.Delete(ctx, SessionKeyPrefix+token); err != nil {
		s.log.Error().Err(err).Msg("session delete failed")
	}
	if userID == "" {
		return
	}

	// Only drop the pointer if it still names this token.
	current, err := s.store.Get(ctx, UserSessionKeyPrefix+userID)
	if err == nil && string(current) == token {
		if err := s.store.Delete(ctx, UserSessionKeyPrefix+userID); err != nil {
			s.log.Error().Err(err).Msg("user session delete failed")
		}
	}
}

// Subscribe registers fn for every session event and returns the func that
// unregisters it. fn runs on the notifying goroutine and must not block.
func (s *Sessions) Subscribe(fn func(models.SessionEvent)) (cancel func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

func (s *Sessions) Notify(eventType, userID string) {
	event := models.SessionEvent{Type: eventType, UserID: userID, Timestamp: s.now()}

	s.mu.RLock()
	fns := make([]func(models.SessionEvent), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()

	for _, fn := range fns {
		fn(event)
	}
}
