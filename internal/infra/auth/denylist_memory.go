package auth

import (
	"context"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/parlour-booking/internal/domain/auth"
)

const memorySweepEvery = 256

// MemoryDenylist keeps revoked token ids in process. Entries expire with
// the token they deny.
type MemoryDenylist struct {
	mu      sync.Mutex
	entries map[string]time.Time
	writes  int
	now     func() time.Time
}

func NewMemoryDenylist() *MemoryDenylist {
	return &MemoryDenylist{
		entries: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (d *MemoryDenylist) Add(_ context.Context, tokenID string, ttl time.Duration) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	var until time.Time
	if ttl > 0 {
		until = d.now().Add(ttl)
	}
	d.entries[tokenID] = until

	d.writes++
	if d.writes%memorySweepEvery == 0 {
		d.sweepLocked()
	}
	return nil
}

func (d *MemoryDenylist) Contains(_ context.Context, tokenID string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	until, ok := d.entries[tokenID]
	if !ok {
		return false, nil
	}
	if !until.IsZero() && !d.now().Before(until) {
		delete(d.entries, tokenID)
		return false, nil
	}
	return true, nil
}

func (d *MemoryDenylist) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.entries)
}

func (d *MemoryDenylist) sweepLocked() {
	now := d.now()
	for id, until := range d.entries {
		if !until.IsZero() && !now.Before(until) {
			delete(d.entries, id)
		}
	}
}

// Compile-time check
var _ domain.Denylist = (*MemoryDenylist)(nil)
