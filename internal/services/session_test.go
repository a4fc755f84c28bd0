package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnshRaj112/mindjournal-backend/internal/models"
	"github.com/AnshRaj112/mindjournal-backend/internal/storage"
)

func TestSessions_Expire(t *testing.T) {
	ctx := context.Background()
	clk := &fakeClock{t: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)}
	mem := storage.NewMemory()
	sessions := NewSessions(mem, time.Hour, clk.Now, nil)

	token, err := sessions.Create(ctx, "u1")
	require.NoError(t, err)

	userID, ok := sessions.Resolve(ctx, token)
	require.True(t, ok)
	assert.Equal(t, "u1", userID)

	clk.Advance(time.Hour)
	_, ok = sessions.Resolve(ctx, token)
	assert.False(t, ok)
	assert.Equal(t, 0, mem.Len(), "expired session keys are removed")
}

func TestSessions_OneLiveSessionPerUser(t *testing.T) {
	ctx := context.Background()
	sessions := NewSessions(storage.NewMemory(), 0, nil, nil)

	first, err := sessions.Create(ctx, "u1")
	require.NoError(t, err)
	second, err := sessions.Create(ctx, "u1")
	require.NoError(t, err)

	_, ok := sessions.Resolve(ctx, first)
	assert.False(t, ok)
	_, ok = sessions.Resolve(ctx, second)
	assert.True(t, ok)

	// Logging out the stale token must not touch the live one.
	sessions.Invalidate(ctx, first)
	_, ok = sessions.Resolve(ctx, second)
	assert.True(t, ok)
}

func TestSessions_MalformedValue(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemory()
	sessions := NewSessions(mem, 0, nil, nil)

	require.NoError(t, mem.Set(ctx, SessionKeyPrefix+"abc", []byte("garbage")))
	_, ok := sessions.Resolve(ctx, "abc")
	assert.False(t, ok)
}

func TestSessions_CreateFailsOnBrokenStore(t *testing.T) {
	sessions := NewSessions(brokenStore{}, 0, nil, nil)
	_, err := sessions.Create(context.Background(), "u1")
	assert.ErrorIs(t, err, errBroken)
}

func TestSessions_SubscribeAndCancel(t *testing.T) {
	ctx := context.Background()
	sessions := NewSessions(storage.NewMemory(), 0, nil, nil)

	var events []models.SessionEvent
	cancel := sessions.Subscribe(func(e models.SessionEvent) { events = append(events, e) })

	token, err := sessions.Create(ctx, "u1")
	require.NoError(t, err)
	sessions.Invalidate(ctx, token)

	require.Len(t, events, 2)
	assert.Equal(t, models.SessionEventLogin, events[0].Type)
	assert.Equal(t, models.SessionEventLogout, events[1].Type)
	assert.Equal(t, "u1", events[1].UserID)

	cancel()
	cancel()
	_, err = sessions.Create(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, events, 2)
}
