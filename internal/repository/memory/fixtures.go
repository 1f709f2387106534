package memory

import (
	"encoding/binary"
	"sync"
	"time"

	"github.com/google/uuid"
)

// SequentialIDs returns a generator of increasing UUIDs
// (00000000-0000-0000-0000-000000000001, ...).
func SequentialIDs() func() uuid.UUID {
	var (
		mu sync.Mutex
		n  uint64
	)
	return func() uuid.UUID {
		mu.Lock()
		defer mu.Unlock()
		n++
		var id uuid.UUID
		binary.BigEndian.PutUint64(id[8:], n)
		return id
	}
}

// SteppingClock returns a clock that starts at start and advances by step on
// every call.
func SteppingClock(start time.Time, step time.Duration) func() time.Time {
	var (
		mu  sync.Mutex
		now = start
	)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t := now
		now = now.Add(step)
		return t
	}
}
