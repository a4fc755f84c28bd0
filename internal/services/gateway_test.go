package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AnshRaj112/mindjournal-backend/internal/models"
	"github.com/AnshRaj112/mindjournal-backend/internal/storage"
)

// brokenStore fails every call.
type brokenStore struct{}

var errBroken = errors.New("disk on fire")

func (brokenStore) Get(context.Context, string) ([]byte, error) { return nil, errBroken }
func (brokenStore) Set(context.Context, string, []byte) error   { return errBroken }
func (brokenStore) Delete(context.Context, string) error        { return errBroken }

func TestGateway_ReadsFallBackToEmpty(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemory()
	gw := NewGateway(mem, nil)

	assert.NotNil(t, gw.Entries(ctx, "u1"))
	assert.Empty(t, gw.Entries(ctx, "u1"))

	_ = mem.Set(ctx, journalKey("u1"), []byte("{not json"))
	assert.Empty(t, gw.Entries(ctx, "u1"))

	_ = mem.Set(ctx, moodKey("u1"), []byte("null"))
	assert.NotNil(t, gw.MoodData(ctx, "u1"))

	assert.Empty(t, gw.Entries(ctx, ""))
}

func TestGateway_EmptyUserIDNeverWrites(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemory()
	gw := NewGateway(mem, nil)

	gw.SaveEntries(ctx, "", []models.JournalEntry{{ID: "1"}})
	gw.SaveMoodData(ctx, "", []models.MoodData{{Mood: "happy"}})
	assert.Equal(t, 0, mem.Len())
}

func TestGateway_BrokenStoreIsSilent(t *testing.T) {
	ctx := context.Background()
	gw := NewGateway(brokenStore{}, nil)

	assert.NotPanics(t, func() {
		gw.SaveUsers(ctx, []models.User{{ID: "1"}})
		gw.SaveEntries(ctx, "u1", []models.JournalEntry{{ID: "1"}})
		gw.Purge(ctx, "u1")
	})
	assert.Empty(t, gw.Users(ctx))
	assert.Empty(t, gw.Entries(ctx, "u1"))
	assert.Empty(t, gw.MoodData(ctx, "u1"))
}

func TestGateway_RoundTripAndPurge(t *testing.T) {
	ctx := context.Background()
	gw := NewGateway(storage.NewMemory(), nil)

	gw.SaveEntries(ctx, "u1", []models.JournalEntry{{ID: "a", Title: "one", Tags: []string{}}})
	gw.SaveMoodData(ctx, "u1", []models.MoodData{{Mood: models.MoodCalm}})
	gw.SaveEntries(ctx, "u2", []models.JournalEntry{{ID: "b"}})

	assert.Len(t, gw.Entries(ctx, "u1"), 1)
	gw.Purge(ctx, "u1")
	assert.Empty(t, gw.Entries(ctx, "u1"))
	assert.Empty(t, gw.MoodData(ctx, "u1"))
	assert.Len(t, gw.Entries(ctx, "u2"), 1)
}

func TestGateway_LockSerializesReadModifyWrite(t *testing.T) {
	ctx := context.Background()
	gw := NewGateway(storage.NewMemory(), nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := gw.Lock(journalKey("u1"))
			defer unlock()
			entries := gw.Entries(ctx, "u1")
			gw.SaveEntries(ctx, "u1", append(entries, models.JournalEntry{}))
		}()
	}
	wg.Wait()

	assert.Len(t, gw.Entries(ctx, "u1"), 50)
}

func (g *Gateway) heldLocks() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.locks)
}

func TestGateway_LocksAreReleased(t *testing.T) {
	gw := NewGateway(storage.NewMemory(), nil)

	unlockEntries := gw.Lock(journalKey("u1"))
	unlockMood := gw.Lock(moodKey("u1"))
	assert.Equal(t, 2, gw.heldLocks())

	unlockMood()
	unlockEntries()
	assert.Equal(t, 0, gw.heldLocks())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			gw.Lock(UsersKey)()
		}()
	}
	wg.Wait()
	assert.Equal(t, 0, gw.heldLocks())
}
