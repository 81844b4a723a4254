package pipeline

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
)

// CollisionResolver tracks target paths claimed during a single plan build
// and disambiguates duplicates by numbering them " (2)", " (3)", … before
// the extension. All methods are goroutine-safe.
type CollisionResolver struct {
	mu       sync.Mutex
	owners   map[string]string // target path → source path that owns it
	counters map[string]int    // base target path → next free number
}

// NewCollisionResolver creates a ready-to-use resolver.
func NewCollisionResolver() *CollisionResolver {
	return &CollisionResolver{
		owners:   make(map[string]string),
		counters: make(map[string]int),
	}
}

// Resolve returns the final target path for source, handling duplicates.
// If requested is unclaimed (or already owned by source), it is returned
// as-is; otherwise a numbered variant is generated and claimed.
func (cr *CollisionResolver) Resolve(source, requested string) string {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	owner, exists := cr.owners[requested]
	if !exists || owner == source {
		cr.owners[requested] = source
		return requested
	}

	dir := filepath.Dir(requested)
	base := filepath.Base(requested)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	counter := cr.counters[requested]
	if counter < 2 {
		counter = 2
	}
	for {
		candidate := filepath.Join(dir, fmt.Sprintf("%s (%d)%s", stem, counter, ext))
		cOwner, cExists := cr.owners[candidate]
		if !cExists || cOwner == source {
			cr.counters[requested] = counter + 1
			cr.owners[candidate] = source
			return candidate
		}
		counter++
	}
}
