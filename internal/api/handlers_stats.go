package api

import (
	"encoding/json"
	"net/http"
)

// handleExtractStats reports rolling extraction-latency percentiles and
// the current queue depth.
func (s *Server) handleExtractStats(w http.ResponseWriter, r *http.Request) {
	snap := s.orchestrator.Stats().Snapshot()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"extract":     snap,
		"queue_depth": s.orchestrator.QueueDepth(),
	})
}
