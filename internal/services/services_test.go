package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/AnshRaj112/mindjournal-backend/internal/storage"
	"github.com/AnshRaj112/mindjournal-backend/pkg/utils"
)

var cheapArgon2 = utils.Argon2Params{Time: 1, Memory: 1024, Parallelism: 1, SaltLength: 16, KeyLength: 32}

// fakeClock is a settable time source.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestServices(t *testing.T) (*Services, *fakeClock, *storage.Memory) {
	t.Helper()
	clk := &fakeClock{t: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)}
	store := storage.NewMemory()
	svc := New(store, Options{
		Hasher:   utils.NewArgon2Hasher(cheapArgon2),
		Location: time.UTC,
		Now:      clk.Now,
	})
	return svc, clk, store
}

func registerUser(t *testing.T, svc *Services, name, email string) (string, string) {
	t.Helper()
	user, token, _, err := svc.Users.Register(context.Background(), RegisterInput{
		Name:            name,
		Email:           email,
		Password:        "Secret#123",
		ConfirmPassword: "Secret#123",
	})
	require.NoError(t, err)
	return user.ID, token
}
