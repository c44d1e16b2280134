// Package persistence stores per-level best scores on disk through gdata.
package persistence

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/quasilyte/gdata"
)

// items is the part of *gdata.Manager the store needs.
type items interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Record is what is kept per level.
type Record struct {
	Best int `json:"best"`
	Runs int `json:"runs"`
}

// Store reads and writes records. A nil *Store is valid and stores nothing,
// so callers can keep going when persistence is unavailable.
type Store struct {
	items items
}

// Open initializes gdata storage for appName.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open storage for %s: %w", appName, err)
	}
	return &Store{items: m}, nil
}

func recordKey(level string) string {
	return "best_" + level
}

// LoadBest returns the record for level. A missing record is the zero value.
func (s *Store) LoadBest(level string) (Record, error) {
	if s == nil || s.items == nil {
		return Record{}, nil
	}

	data, err := s.items.LoadItem(recordKey(level))
	if err != nil {
		log.Printf("Warning: Could not load record for %s: %v", level, err)
		return Record{}, nil
	}
	if len(data) == 0 {
		return Record{}, nil
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("parse record for %s: %w", level, err)
	}
	return rec, nil
}

// SaveBest counts a finished run with score and keeps the higher best. It
// reports whether score set a new best.
func (s *Store) SaveBest(level string, score int) (Record, bool, error) {
	if s == nil || s.items == nil {
		return Record{Best: score, Runs: 1}, false, nil
	}

	rec, err := s.LoadBest(level)
	if err != nil {
		log.Printf("Warning: Discarding unreadable record: %v", err)
		rec = Record{}
	}
	rec.Runs++
	improved := score > rec.Best
	if improved {
		rec.Best = score
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return rec, false, fmt.Errorf("serialize record: %w", err)
	}
	if err := s.items.SaveItem(recordKey(level), data); err != nil {
		return rec, false, fmt.Errorf("save record for %s: %w", level, err)
	}
	return rec, improved, nil
}
