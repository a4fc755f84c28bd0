package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/AnshRaj112/mindjournal-backend/internal/models"
	"github.com/AnshRaj112/mindjournal-backend/internal/services"
)

const (
	// maxImportBytes caps the size of an import document.
	maxImportBytes = 10 << 20
	backupTimeout  = 30 * time.Second
)

type BackupResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	URL     string `json:"url"`
}

type ImportResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Result  models.ImportResult `json:"result"`
}

func writeDownload(w http.ResponseWriter, r *http.Request, filename string, v any) {
	data, err := services.MarshalExport(v)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// Export downloads every entry and mood sample of the caller.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r)
	defer cancel()

	doc := h.svc.Transfer.Export(ctx, currentUser(r).ID)
	writeDownload(w, r, h.svc.Transfer.ExportFileName(), doc)
}

// ExportEntries downloads the caller's entries as a bare array.
func (h *Handler) ExportEntries(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r)
	defer cancel()

	entries := h.svc.Transfer.ExportEntries(ctx, currentUser(r).ID)
	writeDownload(w, r, h.svc.Transfer.EntriesFileName(), entries)
}

// Backup uploads the export document to cloud storage.
func (h *Handler) Backup(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), backupTimeout)
	defer cancel()

	url, err := h.svc.Transfer.Backup(ctx, currentUser(r).ID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, BackupResponse{Success: true, Message: "Backup uploaded", URL: url})
}

// Import merges a pasted or uploaded export document into the caller's data.
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxImportBytes))
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "Import document is too large")
		return
	}

	ctx, cancel := withTimeout(r)
	defer cancel()

	result, err := h.svc.Transfer.Import(ctx, currentUser(r).ID, raw)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ImportResponse{Success: true, Message: "Import complete", Result: result})
}
