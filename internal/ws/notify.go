package ws

import (
	"encoding/json"
	"strings"
	"sync/atomic"
	"time"
)

type MatchesUpdatedEvent struct {
	Type        string `json:"type"`
	CandidateID string `json:"candidate_id"`
	Timestamp   string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifyMatchesUpdated broadcasts that a candidate's match rows were
// recomputed so open dashboards can refresh their cached views. Best-effort:
// with no hub configured this is a no-op.
func NotifyMatchesUpdated(candidateID string) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	candidateID = strings.TrimSpace(candidateID)
	if candidateID == "" {
		return
	}

	evt := MatchesUpdatedEvent{
		Type:        "matches_updated",
		CandidateID: candidateID,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(b)
}
