// Package repo holds imported episodes in memory. It replaces any notion of a
// module-level datastore: callers construct a repository explicitly, pass it
// where needed, and control its lifecycle (seed, reset) themselves.
package repo

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/camm-health/stayload/internal/model"
)

// EpisodeRepository is a concurrency-safe in-memory episode store.
type EpisodeRepository struct {
	mu       sync.RWMutex
	episodes []model.Episode
	byID     map[uuid.UUID]int
}

// NewEpisodeRepository returns an empty repository.
func NewEpisodeRepository() *EpisodeRepository {
	return &EpisodeRepository{byID: make(map[uuid.UUID]int)}
}

// Add admits a record, assigning it a fresh ID and creation time.
func (r *EpisodeRepository) Add(rec model.PatientRecord) model.Episode {
	r.mu.Lock()
	defer r.mu.Unlock()
	ep := model.Episode{
		ID:            uuid.New(),
		CreatedAt:     time.Now().UTC(),
		PatientRecord: rec,
	}
	r.byID[ep.ID] = len(r.episodes)
	r.episodes = append(r.episodes, ep)
	return ep
}

// AddAll admits records in order and returns the created episodes.
func (r *EpisodeRepository) AddAll(recs []model.PatientRecord) []model.Episode {
	eps := make([]model.Episode, 0, len(recs))
	for _, rec := range recs {
		eps = append(eps, r.Add(rec))
	}
	return eps
}

// Get returns the episode with the given ID.
func (r *EpisodeRepository) Get(id uuid.UUID) (model.Episode, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.byID[id]
	if !ok {
		return model.Episode{}, false
	}
	return r.episodes[i], true
}

// List returns a copy of all episodes in admission order.
func (r *EpisodeRepository) List() []model.Episode {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Episode, len(r.episodes))
	copy(out, r.episodes)
	return out
}

// Count returns the number of stored episodes.
func (r *EpisodeRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.episodes)
}

// Reset drops all episodes.
func (r *EpisodeRepository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.episodes = nil
	r.byID = make(map[uuid.UUID]int)
}

// Seed replaces the contents with the given episodes, keeping their IDs.
func (r *EpisodeRepository) Seed(eps []model.Episode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.episodes = make([]model.Episode, len(eps))
	copy(r.episodes, eps)
	r.byID = make(map[uuid.UUID]int, len(eps))
	for i, ep := range r.episodes {
		r.byID[ep.ID] = i
	}
}

// SaveJSON writes all episodes to path as a JSON array.
func (r *EpisodeRepository) SaveJSON(path string) error {
	data, err := json.MarshalIndent(r.List(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode episodes: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write episodes file: %w", err)
	}
	return nil
}

// LoadJSON seeds the repository from a JSON array written by SaveJSON.
func (r *EpisodeRepository) LoadJSON(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read episodes file: %w", err)
	}
	var eps []model.Episode
	if err := json.Unmarshal(data, &eps); err != nil {
		return fmt.Errorf("decode episodes file: %w", err)
	}
	r.Seed(eps)
	return nil
}
