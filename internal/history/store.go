// Package history persists the unique keys seen by previous runs.
package history

import (
	"encoding/json"
	"os"
	"time"

	"govtable/internal/logger"
	"govtable/internal/models"
)

const timestampLayout = "2006-01-02 15:04:05"

// Store reads and writes the history JSON file. Every save fully
// replaces the previous content; there are no merge semantics.
type Store struct {
	path string
	log  *logger.Logger
	now  func() time.Time
}

// NewStore creates a store backed by the given file path.
func NewStore(path string, log *logger.Logger) *Store {
	return &Store{
		path: path,
		log:  log,
		now:  time.Now,
	}
}

// Load reads the persisted history. A missing or unreadable file
// yields an empty history; the run always continues.
func (s *Store) Load() models.History {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Debug("no history file yet", "path", s.path)
		} else {
			s.log.Warn("⚠️  failed to load history", "path", s.path, "error", err)
		}

		return models.EmptyHistory()
	}

	var h models.History
	if err := json.Unmarshal(data, &h); err != nil {
		s.log.Warn("⚠️  failed to parse history", "path", s.path, "error", err)

		return models.EmptyHistory()
	}

	if h.PurchaseNotice == nil {
		h.PurchaseNotice = []string{}
	}

	if h.PurchaseIntention == nil {
		h.PurchaseIntention = []string{}
	}

	return h
}

// Save overwrites the history file with the given key lists and a
// fresh timestamp. A write failure is logged, not fatal to the run.
func (s *Store) Save(noticeKeys, intentionKeys []string) {
	if noticeKeys == nil {
		noticeKeys = []string{}
	}

	if intentionKeys == nil {
		intentionKeys = []string{}
	}

	h := models.History{
		PurchaseNotice:    noticeKeys,
		PurchaseIntention: intentionKeys,
		LastUpdated:       s.now().Format(timestampLayout),
	}

	data, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		s.log.Error("❌ failed to marshal history", "error", err)

		return
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		s.log.Error("❌ failed to save history", "path", s.path, "error", err)

		return
	}

	s.log.Info("history updated", "path", s.path)
}
