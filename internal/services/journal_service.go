package services

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/AnshRaj112/mindjournal-backend/internal/models"
	"github.com/AnshRaj112/mindjournal-backend/pkg/utils"
)

// Search fields accepted by JournalService.Search.
const (
	SearchAll     = "all"
	SearchTitle   = "title"
	SearchContent = "content"
	SearchTag     = "tag"
	SearchMood    = "mood"
)

// JournalService is CRUD over a user's journal_entries_<id> list.
type JournalService struct {
	gw    *Gateway
	mood  *MoodService
	clock clock
}

func validateEntry(in models.EntryInput) error {
	var errs utils.ValidationErrors
	if strings.TrimSpace(in.Title) == "" {
		errs.Add("title", "Title is required")
	}
	if strings.TrimSpace(in.Content) == "" {
		errs.Add("content", "Content is required")
	}
	switch {
	case in.Mood == "":
		errs.Add("mood", "Mood is required")
	case !models.IsKnownMood(in.Mood):
		errs.Add("mood", "Unknown mood")
	}
	return errs.Err()
}

// List returns the entries in storage order, newest first by construction.
func (s *JournalService) List(ctx context.Context, userID string) []models.JournalEntry {
	return s.gw.Entries(ctx, userID)
}

// ListSorted re-sorts by date, newest first, in case storage was edited by hand or import.
func (s *JournalService) ListSorted(ctx context.Context, userID string) []models.JournalEntry {
	entries := s.gw.Entries(ctx, userID)
	sortNewestFirst(entries)
	return entries
}

func (s *JournalService) Recent(ctx context.Context, userID string, n int) []models.JournalEntry {
	entries := s.ListSorted(ctx, userID)
	if n >= 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

func (s *JournalService) Get(ctx context.Context, userID, id string) (*models.JournalEntry, bool) {
	entries := s.gw.Entries(ctx, userID)
	for i := range entries {
		if entries[i].ID == id {
			return &entries[i], true
		}
	}
	return nil, false
}

// Create prepends a new entry. The first entry of a day also records that
// day's mood when none was set yet.
func (s *JournalService) Create(ctx context.Context, userID string, in models.EntryInput) (*models.JournalEntry, error) {
	if err := validateEntry(in); err != nil {
		return nil, err
	}

	now := s.clock.Now()

	unlock := s.gw.Lock(journalKey(userID))
	entries := s.gw.Entries(ctx, userID)
	entry := models.JournalEntry{
		ID:      nextEntryID(entries, now.UnixMilli()),
		Title:   strings.TrimSpace(in.Title),
		Date:    now,
		Content: in.Content,
		Tags:    utils.NormalizeTags(in.Tags),
		Mood:    in.Mood,
	}
	s.gw.SaveEntries(ctx, userID, append([]models.JournalEntry{entry}, entries...))
	unlock()

	s.mood.RecordIfAbsent(ctx, userID, in.Mood)
	return &entry, nil
}

// Update replaces title, content, tags and mood. id and date never change.
func (s *JournalService) Update(ctx context.Context, userID, id string, in models.EntryInput) (*models.JournalEntry, error) {
	if err := validateEntry(in); err != nil {
		return nil, err
	}

	unlock := s.gw.Lock(journalKey(userID))
	defer unlock()

	entries := s.gw.Entries(ctx, userID)
	for i := range entries {
		if entries[i].ID != id {
			continue
		}
		entries[i].Title = strings.TrimSpace(in.Title)
		entries[i].Content = in.Content
		entries[i].Tags = utils.NormalizeTags(in.Tags)
		entries[i].Mood = in.Mood
		s.gw.SaveEntries(ctx, userID, entries)
		updated := entries[i]
		return &updated, nil
	}
	return nil, ErrNotFound
}

// Delete removes the entry if present.
func (s *JournalService) Delete(ctx context.Context, userID, id string) {
	unlock := s.gw.Lock(journalKey(userID))
	defer unlock()

	entries := s.gw.Entries(ctx, userID)
	kept := entries[:0]
	for _, e := range entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) != len(entries) {
		s.gw.SaveEntries(ctx, userID, kept)
	}
}

// Search matches query case-insensitively against one field, or all of them.
// A blank query matches nothing.
func (s *JournalService) Search(ctx context.Context, userID, query, field string) []models.JournalEntry {
	results := []models.JournalEntry{}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return results
	}

	for _, e := range s.gw.Entries(ctx, userID) {
		if entryMatches(e, q, field) {
			results = append(results, e)
		}
	}
	sortNewestFirst(results)
	return results
}

// OnDay returns the entries written on the calendar day (YYYY-MM-DD), newest first.
func (s *JournalService) OnDay(ctx context.Context, userID, day string) []models.JournalEntry {
	results := []models.JournalEntry{}
	for _, e := range s.gw.Entries(ctx, userID) {
		if s.clock.Day(e.Date) == day {
			results = append(results, e)
		}
	}
	sortNewestFirst(results)
	return results
}

// EntryDays lists the calendar days that hold at least one entry, newest first.
func (s *JournalService) EntryDays(ctx context.Context, userID string) []string {
	seen := make(map[string]bool)
	days := []string{}
	for _, e := range s.ListSorted(ctx, userID) {
		d := s.clock.Day(e.Date)
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}
	return days
}

func entryMatches(e models.JournalEntry, q, field string) bool {
	contains := func(s string) bool { return strings.Contains(strings.ToLower(s), q) }
	tagMatch := func() bool {
		for _, t := range e.Tags {
			if contains(t) {
				return true
			}
		}
		return false
	}

	switch field {
	case SearchTitle:
		return contains(e.Title)
	case SearchContent:
		return contains(e.Content)
	case SearchTag:
		return tagMatch()
	case SearchMood:
		return contains(e.Mood)
	default:
		return contains(e.Title) || contains(e.Content) || tagMatch() || contains(e.Mood)
	}
}

func sortNewestFirst(entries []models.JournalEntry) {
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Date.After(entries[j].Date) })
}

// nextEntryID is the creation millisecond, bumped until unique in entries.
func nextEntryID(entries []models.JournalEntry, millis int64) string {
	taken := make(map[string]bool, len(entries))
	for _, e := range entries {
		taken[e.ID] = true
	}
	for taken[strconv.FormatInt(millis, 10)] {
		millis++
	}
	return strconv.FormatInt(millis, 10)
}
