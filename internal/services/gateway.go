package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/AnshRaj112/mindjournal-backend/internal/logger"
	"github.com/AnshRaj112/mindjournal-backend/internal/models"
	"github.com/AnshRaj112/mindjournal-backend/internal/storage"
)

const (
	UsersKey             = "users"
	JournalKeyPrefix     = "journal_entries_"
	MoodDataKeyPrefix    = "mood_data_"
	SessionKeyPrefix     = "session:"
	UserSessionKeyPrefix = "user_session:"
)

func journalKey(userID string) string { return JournalKeyPrefix + userID }
func moodKey(userID string) string    { return MoodDataKeyPrefix + userID }

// Gateway reads and writes the JSON arrays behind every storage key.
// It never surfaces a storage failure: reads fall back to an empty list and
// writes are logged and dropped, so callers keep working against a broken
// backend.
//
// Read-modify-write sequences must hold Lock(key) for their whole duration.
// When several keys are held they are taken in the order users, entries, mood.
type Gateway struct {
	store storage.Store
	log   *logger.Logger

	mu    sync.Mutex
	locks map[string]*keyLock
}

// keyLock is dropped from the map once nobody holds or waits on it.
type keyLock struct {
	mu   sync.Mutex
	refs int
}

func NewGateway(store storage.Store, log *logger.Logger) *Gateway {
	if log == nil {
		log = logger.Nop()
	}
	return &Gateway{
		store: store,
		log:   log,
		locks: make(map[string]*keyLock),
	}
}

// Lock acquires the in-process lock for key and returns its release func.
func (g *Gateway) Lock(key string) func() {
	g.mu.Lock()
	l, ok := g.locks[key]
	if !ok {
		l = &keyLock{}
		g.locks[key] = l
	}
	l.refs++
	g.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()

		g.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(g.locks, key)
		}
		g.mu.Unlock()
	}
}

func (g *Gateway) Users(ctx context.Context) []models.User {
	return readList[models.User](ctx, g, UsersKey)
}

func (g *Gateway) SaveUsers(ctx context.Context, users []models.User) {
	g.writeList(ctx, UsersKey, users)
}

func (g *Gateway) Entries(ctx context.Context, userID string) []models.JournalEntry {
	if userID == "" {
		return []models.JournalEntry{}
	}
	return readList[models.JournalEntry](ctx, g, journalKey(userID))
}

func (g *Gateway) SaveEntries(ctx context.Context, userID string, entries []models.JournalEntry) {
	if userID == "" {
		return
	}
	g.writeList(ctx, journalKey(userID), entries)
}

func (g *Gateway) MoodData(ctx context.Context, userID string) []models.MoodData {
	if userID == "" {
		return []models.MoodData{}
	}
	return readList[models.MoodData](ctx, g, moodKey(userID))
}

func (g *Gateway) SaveMoodData(ctx context.Context, userID string, moods []models.MoodData) {
	if userID == "" {
		return
	}
	g.writeList(ctx, moodKey(userID), moods)
}

// Purge drops every per-user key of userID.
func (g *Gateway) Purge(ctx context.Context, userID string) {
	if userID == "" {
		return
	}
	for _, key := range []string{journalKey(userID), moodKey(userID)} {
		if err := g.store.Delete(ctx, key); err != nil {
			g.log.Error().Err(err).Str("key", key).Msg("storage delete failed")
		}
	}
}

// readList decodes the array at key. Any failure yields an empty, non-nil slice.
func readList[T any](ctx context.Context, g *Gateway, key string) []T {
	raw, err := g.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			g.log.Error().Err(err).Str("key", key).Msg("storage read failed")
		}
		return []T{}
	}

	var list []T
	if err := json.Unmarshal(raw, &list); err != nil {
		g.log.Warn().Err(err).Str("key", key).Msg("discarding undecodable value")
		return []T{}
	}
	if list == nil {
		list = []T{}
	}
	return list
}

func (g *Gateway) writeList(ctx context.Context, key string, list any) {
	raw, err := json.Marshal(list)
	if err != nil {
		g.log.Error().Err(err).Str("key", key).Msg("encoding value failed")
		return
	}
	if err := g.store.Set(ctx, key, raw); err != nil {
		g.log.Error().Err(err).Str("key", key).Msg("storage write failed")
	}
}
