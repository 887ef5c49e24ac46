package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/vijaykr338/ShopEase/models"
)

// Change represents a single recorded mutation.
type Change struct {
	ID        int       `json:"id"`
	Entity    string    `json:"entity"`
	Action    string    `json:"action"`
	TargetID  string    `json:"targetId"`
	Detail    string    `json:"detail,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// ChangeLog stores recent mutations for debugging, newest first.
type ChangeLog struct {
	mu      sync.RWMutex
	changes []Change
	maxLogs int
	counter int
}

// NewChangeLog creates a new change log holding at most maxLogs entries.
func NewChangeLog(maxLogs int) *ChangeLog {
	return &ChangeLog{
		changes: make([]Change, 0, maxLogs),
		maxLogs: maxLogs,
	}
}

// Record logs one mutation.
func (cl *ChangeLog) Record(entity, action, targetID, detail string) {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	cl.counter++
	entry := Change{
		ID:        cl.counter,
		Entity:    entity,
		Action:    action,
		TargetID:  targetID,
		Detail:    detail,
		Timestamp: time.Now(),
	}

	// Add to beginning to show latest first
	cl.changes = append([]Change{entry}, cl.changes...)

	// Keep only maxLogs entries
	if len(cl.changes) > cl.maxLogs {
		cl.changes = cl.changes[:cl.maxLogs]
	}
}

// Recent returns the most recent n changes. A non-positive n returns an
// empty slice.
func (cl *ChangeLog) Recent(n int) []Change {
	cl.mu.RLock()
	defer cl.mu.RUnlock()

	if n < 0 {
		n = 0
	}
	if n > len(cl.changes) {
		n = len(cl.changes)
	}

	result := make([]Change, n)
	copy(result, cl.changes[:n])
	return result
}

// All returns every logged change.
func (cl *ChangeLog) All() []Change {
	cl.mu.RLock()
	defer cl.mu.RUnlock()

	result := make([]Change, len(cl.changes))
	copy(result, cl.changes)
	return result
}

// Clear removes all logged changes.
func (cl *ChangeLog) Clear() {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	cl.changes = cl.changes[:0]
}

func ruleDetail(r models.DiscountRule) string {
	return fmt.Sprintf("%d days before expiry -> %.0f%%", r.DaysBeforeExpiry, r.DiscountPercentage)
}
