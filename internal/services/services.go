package services

import (
	"time"

	"github.com/AnshRaj112/mindjournal-backend/internal/analytics"
	"github.com/AnshRaj112/mindjournal-backend/internal/logger"
	"github.com/AnshRaj112/mindjournal-backend/internal/storage"
	"github.com/AnshRaj112/mindjournal-backend/pkg/utils"
)

// Options configures New. Zero values fall back to production defaults.
type Options struct {
	Logger     *logger.Logger
	Hasher     utils.PasswordHasher
	Location   *time.Location
	SessionTTL time.Duration
	Now        func() time.Time
	// Uploader enables TransferService.Backup when set.
	Uploader Uploader
}

// Services bundles every service over one store.
type Services struct {
	Gateway  *Gateway
	Sessions *Sessions
	Users    *UserService
	Journal  *JournalService
	Mood     *MoodService
	Transfer *TransferService
	Admin    *AdminService

	clock clock
}

func New(store storage.Store, opts Options) *Services {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	hasher := opts.Hasher
	if hasher == nil {
		hasher = utils.NewArgon2Hasher(utils.DefaultArgon2Params)
	}
	clk := newClock(opts.Now, opts.Location)

	gw := NewGateway(store, log)
	sessions := NewSessions(store, opts.SessionTTL, clk.now, log)
	mood := &MoodService{gw: gw, clock: clk}
	journal := &JournalService{gw: gw, mood: mood, clock: clk}
	users := &UserService{gw: gw, sessions: sessions, hasher: hasher, clock: clk, log: log}

	return &Services{
		Gateway:  gw,
		Sessions: sessions,
		Users:    users,
		Journal:  journal,
		Mood:     mood,
		Transfer: &TransferService{gw: gw, clock: clk, uploader: opts.Uploader, log: log},
		Admin:    &AdminService{gw: gw, users: users},
		clock:    clk,
	}
}

// Now is the service clock in the configured location.
func (s *Services) Now() time.Time {
	return s.clock.Now()
}

type clock struct {
	now func() time.Time
	loc *time.Location
}

func newClock(now func() time.Time, loc *time.Location) clock {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.UTC
	}
	return clock{now: now, loc: loc}
}

func (c clock) Now() time.Time {
	return c.now().In(c.loc)
}

// Day is the calendar day of t in the configured location.
func (c clock) Day(t time.Time) string {
	return analytics.Day(t, c.loc)
}

func (c clock) Today() string {
	return c.Day(c.now())
}
