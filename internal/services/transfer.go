package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/AnshRaj112/mindjournal-backend/internal/logger"
	"github.com/AnshRaj112/mindjournal-backend/internal/models"
	"github.com/AnshRaj112/mindjournal-backend/pkg/utils"
)

// BackupFolder is the Cloudinary folder export backups are uploaded to.
const BackupFolder = "mindjournal/exports"

// Uploader stores a raw file somewhere reachable and returns its URL.
type Uploader interface {
	UploadRaw(ctx context.Context, data []byte, folder, publicID string) (string, error)
}

// TransferService moves a user's data in and out as JSON documents.
type TransferService struct {
	gw       *Gateway
	clock    clock
	uploader Uploader
	log      *logger.Logger
}

// Export returns the user's full data set.
func (s *TransferService) Export(ctx context.Context, userID string) models.ExportDocument {
	return models.ExportDocument{
		JournalEntries: s.gw.Entries(ctx, userID),
		MoodData:       s.gw.MoodData(ctx, userID),
	}
}

func (s *TransferService) ExportEntries(ctx context.Context, userID string) []models.JournalEntry {
	return s.gw.Entries(ctx, userID)
}

// ExportFileName is the download name of a full export made today.
func (s *TransferService) ExportFileName() string {
	return fmt.Sprintf("mindjournal-export-%s.json", s.clock.Today())
}

// EntriesFileName is the download name of an entries-only export made today.
func (s *TransferService) EntriesFileName() string {
	return fmt.Sprintf("mindjournal-entries-%s.json", s.clock.Today())
}

// MarshalExport renders v the way export files are written: indented by two spaces.
func MarshalExport(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// Import merges an export document into the user's data. Records whose key
// (entry id, mood calendar day) already exists are skipped, never overwritten,
// so importing the same document twice changes nothing the second time.
func (s *TransferService) Import(ctx context.Context, userID string, raw []byte) (models.ImportResult, error) {
	var result models.ImportResult

	incomingEntries, incomingMoods, err := s.parseImport(raw)
	if err != nil {
		return result, err
	}

	unlockEntries := s.gw.Lock(journalKey(userID))
	entries := s.gw.Entries(ctx, userID)
	ids := make(map[string]bool, len(entries))
	for _, e := range entries {
		ids[e.ID] = true
	}
	for _, e := range incomingEntries {
		if e.ID == "" || ids[e.ID] {
			result.EntriesSkipped++
			continue
		}
		ids[e.ID] = true
		e.Tags = utils.NormalizeTags(e.Tags)
		entries = append(entries, e)
		result.EntriesAdded++
	}
	if result.EntriesAdded > 0 {
		s.gw.SaveEntries(ctx, userID, entries)
	}
	unlockEntries()

	unlockMood := s.gw.Lock(moodKey(userID))
	moods := s.gw.MoodData(ctx, userID)
	days := make(map[string]bool, len(moods))
	for _, m := range moods {
		days[s.clock.Day(m.Date)] = true
	}
	for _, m := range incomingMoods {
		day := s.clock.Day(m.Date)
		if m.Date.IsZero() || days[day] {
			result.MoodsSkipped++
			continue
		}
		days[day] = true
		moods = append(moods, m)
		result.MoodsAdded++
	}
	if result.MoodsAdded > 0 {
		s.gw.SaveMoodData(ctx, userID, moods)
	}
	unlockMood()

	s.log.Info().
		Str("user_id", userID).
		Int("entries_added", result.EntriesAdded).
		Int("moods_added", result.MoodsAdded).
		Msg("import merged")
	return result, nil
}

// parseImport requires journalEntries to be a JSON array. moodData is
// optional; anything other than an array of mood rows is skipped.
func (s *TransferService) parseImport(raw []byte) ([]models.JournalEntry, []models.MoodData, error) {
	var doc struct {
		JournalEntries json.RawMessage `json:"journalEntries"`
		MoodData       json.RawMessage `json:"moodData"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}

	if !isJSONArray(doc.JournalEntries) {
		return nil, nil, fmt.Errorf("%w: journalEntries must be an array", ErrFormat)
	}
	var entries []models.JournalEntry
	if err := json.Unmarshal(doc.JournalEntries, &entries); err != nil {
		return nil, nil, fmt.Errorf("%w: journalEntries: %v", ErrFormat, err)
	}

	var moods []models.MoodData
	if m := bytes.TrimSpace(doc.MoodData); len(m) > 0 && !bytes.Equal(m, []byte("null")) {
		if !isJSONArray(m) || json.Unmarshal(m, &moods) != nil {
			s.log.Warn().Msg("import: unusable moodData ignored")
			moods = nil
		}
	}

	return entries, moods, nil
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

// Backup uploads the user's export document and returns where it landed.
func (s *TransferService) Backup(ctx context.Context, userID string) (string, error) {
	if s.uploader == nil {
		return "", ErrBackupUnavailable
	}

	data, err := MarshalExport(s.Export(ctx, userID))
	if err != nil {
		return "", err
	}

	publicID := fmt.Sprintf("%s-%s", userID, s.clock.Today())
	url, err := s.uploader.UploadRaw(ctx, data, BackupFolder, publicID)
	if err != nil {
		return "", fmt.Errorf("backup upload: %w", err)
	}
	return url, nil
}
