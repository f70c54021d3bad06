package kernel

import (
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

// TimePrecision is the resolution of every timestamp produced by a Supplier. It matches
// what PostgreSQL stores, so aggregates survive a round trip through the database unchanged.
const TimePrecision = time.Microsecond

// Clock provides the current instant.
type Clock interface {
	Now() time.Time
}

// IDGenerator produces unique identifier values.
type IDGenerator interface {
	NewID() string
}

// Supplier bundles the two capabilities every aggregate factory needs.
type Supplier interface {
	Clock
	IDGenerator
}

// NewSystemSupplier returns a Supplier backed by the wall clock (UTC) and random UUIDs.
func NewSystemSupplier() Supplier {
	return systemSupplier{}
}

type systemSupplier struct{}

func (systemSupplier) Now() time.Time {
	return time.Now().UTC().Truncate(TimePrecision)
}

func (systemSupplier) NewID() string {
	return uuid.NewString()
}

// SequenceSupplier is a deterministic Supplier: every call to Now returns an instant
// one step later than the previous one, and identifiers are name-based UUIDs derived
// from a counter. It is safe for concurrent use.
type SequenceSupplier struct {
	mu      sync.Mutex
	next    time.Time
	step    time.Duration
	counter int
}

// NewSequenceSupplier starts the sequence at start and advances it by step.
func NewSequenceSupplier(start time.Time, step time.Duration) *SequenceSupplier {
	return &SequenceSupplier{
		next: start.UTC().Truncate(TimePrecision),
		step: step,
	}
}

func (s *SequenceSupplier) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.next
	s.next = s.next.Add(s.step)
	return now
}

func (s *SequenceSupplier) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counter++
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(strconv.Itoa(s.counter))).String()
}

// Advance returns the next updatedAt value: now when it is after previous, otherwise
// the smallest representable instant after previous.
func Advance(previous, now time.Time) time.Time {
	if now.After(previous) {
		return now
	}
	return previous.Add(TimePrecision)
}
