package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnshRaj112/mindjournal-backend/internal/models"
)

func sampleDocument() models.ExportDocument {
	base := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	return models.ExportDocument{
		JournalEntries: []models.JournalEntry{
			{ID: "1710057600000", Title: "a", Date: base, Content: "x", Tags: []string{"work"}, Mood: models.MoodCalm},
			{ID: "1709971200000", Title: "b", Date: base.Add(-24 * time.Hour), Content: "y", Tags: []string{}, Mood: models.MoodSad},
		},
		MoodData: []models.MoodData{
			{Date: base, Mood: models.MoodCalm},
			{Date: base.Add(-24 * time.Hour), Mood: models.MoodSad},
		},
	}
}

func TestTransfer_RoundTripIntoEmptyStore(t *testing.T) {
	ctx := context.Background()
	src, _, _ := newTestServices(t)
	doc := sampleDocument()
	src.Gateway.SaveEntries(ctx, "u1", doc.JournalEntries)
	src.Gateway.SaveMoodData(ctx, "u1", doc.MoodData)

	raw, err := MarshalExport(src.Transfer.Export(ctx, "u1"))
	require.NoError(t, err)

	dst, _, _ := newTestServices(t)
	result, err := dst.Transfer.Import(ctx, "u9", raw)
	require.NoError(t, err)
	assert.Equal(t, models.ImportResult{EntriesAdded: 2, MoodsAdded: 2}, result)

	got := dst.Transfer.Export(ctx, "u9")
	require.Len(t, got.JournalEntries, 2)
	for i, e := range got.JournalEntries {
		want := doc.JournalEntries[i]
		assert.Equal(t, want.ID, e.ID)
		assert.True(t, want.Date.Equal(e.Date))
		assert.Equal(t, want.Tags, e.Tags)
		assert.Equal(t, want.Mood, e.Mood)
	}
	require.Len(t, got.MoodData, 2)
	assert.True(t, doc.MoodData[0].Date.Equal(got.MoodData[0].Date))
}

func TestTransfer_ImportIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, _, store := newTestServices(t)
	raw, err := json.Marshal(sampleDocument())
	require.NoError(t, err)

	_, err = svc.Transfer.Import(ctx, "u1", raw)
	require.NoError(t, err)
	entriesAfterFirst, _ := store.Get(ctx, journalKey("u1"))
	moodsAfterFirst, _ := store.Get(ctx, moodKey("u1"))

	result, err := svc.Transfer.Import(ctx, "u1", raw)
	require.NoError(t, err)
	assert.Equal(t, models.ImportResult{EntriesSkipped: 2, MoodsSkipped: 2}, result)

	entriesAfterSecond, _ := store.Get(ctx, journalKey("u1"))
	moodsAfterSecond, _ := store.Get(ctx, moodKey("u1"))
	assert.Equal(t, entriesAfterFirst, entriesAfterSecond)
	assert.Equal(t, moodsAfterFirst, moodsAfterSecond)
}

func TestTransfer_ImportNeverOverwrites(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestServices(t)
	doc := sampleDocument()

	svc.Gateway.SaveEntries(ctx, "u1", []models.JournalEntry{{ID: doc.JournalEntries[0].ID, Title: "mine"}})
	// Same calendar day as the first mood row, different time.
	svc.Gateway.SaveMoodData(ctx, "u1", []models.MoodData{{Date: doc.MoodData[0].Date.Add(3 * time.Hour), Mood: models.MoodHappy}})

	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	result, err := svc.Transfer.Import(ctx, "u1", raw)
	require.NoError(t, err)
	assert.Equal(t, models.ImportResult{EntriesAdded: 1, EntriesSkipped: 1, MoodsAdded: 1, MoodsSkipped: 1}, result)

	got, ok := svc.Journal.Get(ctx, "u1", doc.JournalEntries[0].ID)
	require.True(t, ok)
	assert.Equal(t, "mine", got.Title)

	moods := svc.Mood.List(ctx, "u1")
	require.Len(t, moods, 2)
	assert.Equal(t, models.MoodHappy, moods[1].Mood)
}

func TestTransfer_ImportFormatErrors(t *testing.T) {
	svc, _, _ := newTestServices(t)

	tests := map[string]string{
		"invalid json":         `{"journalEntries": [`,
		"missing entries":      `{"moodData": []}`,
		"entries not an array": `{"journalEntries": {"id": "1"}}`,
		"entries null":         `{"journalEntries": null}`,
		"top-level array":      `[{"id": "1"}]`,
		"bad entry field":      `{"journalEntries": [{"date": "yesterday"}]}`,
	}

	for name, payload := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Transfer.Import(context.Background(), "u1", []byte(payload))
			assert.ErrorIs(t, err, ErrFormat)
		})
	}
}

func TestTransfer_ImportWithoutMoodData(t *testing.T) {
	svc, _, _ := newTestServices(t)

	result, err := svc.Transfer.Import(context.Background(), "u1", []byte(`{"journalEntries": [{"id": "7", "title": "t", "tags": ["A"]}, {"title": "no id"}]}`))
	require.NoError(t, err)
	assert.Equal(t, models.ImportResult{EntriesAdded: 1, EntriesSkipped: 1}, result)

	got, ok := svc.Journal.Get(context.Background(), "u1", "7")
	require.True(t, ok)
	assert.Equal(t, []string{"a"}, got.Tags)
}

func TestTransfer_ImportSkipsUnusableMoodData(t *testing.T) {
	svc, _, _ := newTestServices(t)
	ctx := context.Background()

	payloads := map[string]string{
		"u1": `{"journalEntries": [{"id": "7", "title": "t"}], "moodData": "happy"}`,
		"u2": `{"journalEntries": [{"id": "7", "title": "t"}], "moodData": [{"date": "yesterday"}]}`,
	}
	for userID, payload := range payloads {
		result, err := svc.Transfer.Import(ctx, userID, []byte(payload))
		require.NoError(t, err, userID)
		assert.Equal(t, models.ImportResult{EntriesAdded: 1}, result, userID)
		assert.Empty(t, svc.Mood.List(ctx, userID), userID)
	}
}

func TestTransfer_FileNames(t *testing.T) {
	svc, _, _ := newTestServices(t)
	assert.Equal(t, "mindjournal-export-2024-03-15.json", svc.Transfer.ExportFileName())
	assert.Equal(t, "mindjournal-entries-2024-03-15.json", svc.Transfer.EntriesFileName())
}

func TestTransfer_ExportIsScopedToUser(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestServices(t)
	svc.Gateway.SaveEntries(ctx, "u1", []models.JournalEntry{{ID: "mine"}})
	svc.Gateway.SaveEntries(ctx, "u2", []models.JournalEntry{{ID: "theirs"}})

	doc := svc.Transfer.Export(ctx, "u1")
	assert.Equal(t, []string{"mine"}, ids(doc.JournalEntries))
	assert.NotNil(t, doc.MoodData)
	assert.Equal(t, []string{"mine"}, ids(svc.Transfer.ExportEntries(ctx, "u1")))
}

type recordingUploader struct {
	data             []byte
	folder, publicID string
	err              error
}

func (u *recordingUploader) UploadRaw(_ context.Context, data []byte, folder, publicID string) (string, error) {
	u.data, u.folder, u.publicID = data, folder, publicID
	if u.err != nil {
		return "", u.err
	}
	return "https://res.cloudinary.com/demo/raw/upload/" + folder + "/" + publicID + ".json", nil
}

func TestTransfer_Backup(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestServices(t)

	_, err := svc.Transfer.Backup(ctx, "u1")
	assert.ErrorIs(t, err, ErrBackupUnavailable)

	up := &recordingUploader{}
	svc.Transfer.uploader = up
	svc.Gateway.SaveEntries(ctx, "u1", sampleDocument().JournalEntries)

	url, err := svc.Transfer.Backup(ctx, "u1")
	require.NoError(t, err)
	assert.Contains(t, url, "u1-2024-03-15")
	assert.Equal(t, BackupFolder, up.folder)

	var doc models.ExportDocument
	require.NoError(t, json.Unmarshal(up.data, &doc))
	assert.Len(t, doc.JournalEntries, 2)

	up.err = errors.New("quota exceeded")
	_, err = svc.Transfer.Backup(ctx, "u1")
	assert.ErrorContains(t, err, "quota exceeded")
}
