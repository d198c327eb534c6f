package repositories

import (
	"sync"
	"time"

	"github.com/alimgiray/ghprofile/internal/services"
)

// ViewerRepository keeps one viewer widget per browser session in memory.
// Nothing is persisted; a restart starts every session from idle.
type ViewerRepository struct {
	mu        sync.Mutex
	entries   map[string]*viewerEntry
	newViewer func() *services.Viewer
	now       func() time.Time
}

type viewerEntry struct {
	viewer    *services.Viewer
	createdAt time.Time
	lastSeen  time.Time
}

func NewViewerRepository(newViewer func() *services.Viewer) *ViewerRepository {
	return &ViewerRepository{
		entries:   make(map[string]*viewerEntry),
		newViewer: newViewer,
		now:       time.Now,
	}
}

// GetOrCreate returns the viewer of a session, mounting a new one if needed
func (r *ViewerRepository) GetOrCreate(sessionID string) *services.Viewer {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	entry, ok := r.entries[sessionID]
	if !ok {
		entry = &viewerEntry{
			viewer:    r.newViewer(),
			createdAt: now,
		}
		r.entries[sessionID] = entry
	}
	entry.lastSeen = now

	return entry.viewer
}

// get returns the viewer of a session if it exists
func (r *ViewerRepository) get(sessionID string) (*services.Viewer, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[sessionID]
	if !ok {
		return nil, false
	}
	return entry.viewer, true
}

// Delete unmounts the viewer of a session
func (r *ViewerRepository) Delete(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, sessionID)
}

// DeleteIdle unmounts every viewer not used for longer than ttl and
// returns how many were removed
func (r *ViewerRepository) DeleteIdle(ttl time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-ttl)
	removed := 0
	for id, entry := range r.entries {
		if entry.lastSeen.Before(cutoff) {
			delete(r.entries, id)
			removed++
		}
	}
	return removed
}

// Count returns the number of mounted viewers
func (r *ViewerRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
