package api

import (
	"encoding/json"
	"net/http"

	"github.com/dgallion1/outliner/internal/pipeline"
	"github.com/go-chi/chi/v5"
)

// handleListDocuments lists documents with a finished outline still held
// in the job store.
func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	type docInfo struct {
		DocID    string             `json:"doc_id"`
		Filename string             `json:"filename"`
		Title    string             `json:"title"`
		Entries  int                `json:"entries"`
		Status   pipeline.JobStatus `json:"status"`
	}

	docs := []docInfo{}
	for _, job := range s.orchestrator.Jobs().List() {
		result := job.Result()
		if result == nil {
			continue
		}
		snap := job.Snapshot()
		docs = append(docs, docInfo{
			DocID:    snap.DocID,
			Filename: snap.Filename,
			Title:    result.Title,
			Entries:  len(result.Entries),
			Status:   snap.Status,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"documents": docs})
}

// handleDeleteDocument drops a document's job state and asks the
// downstream indexer to forget its outline.
func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	docID := chi.URLParam(r, "docID")
	job := s.orchestrator.Jobs().FindByDoc(docID)
	if job == nil {
		jsonError(w, "document not found", http.StatusNotFound)
		return
	}
	s.orchestrator.Jobs().Delete(job.ID)

	if s.orchestrator.Indexer().Enabled() {
		if err := s.orchestrator.Indexer().DeleteOutline(r.Context(), docID); err != nil {
			s.log.Warn("indexer delete failed", "doc_id", docID, "error", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"deleted": docID})
}
