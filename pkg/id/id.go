// Package id generates ULID identifiers for trade records.
//
// ULIDs are lexicographically sortable by creation time, which keeps an
// exported journal diff-friendly and makes record IDs stable across
// export/import round trips.
package id

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	mu      sync.Mutex
	entropy = ulid.Monotonic(rand.Reader, 0)
)

// New returns a ULID string. IDs created within the same millisecond remain
// lexicographically increasing thanks to the monotonic entropy source.
func New() string {
	mu.Lock()
	defer mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now().UTC()), entropy).String()
}
