package probe

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Record is a single observed value together with observation metadata.
type Record[T any] struct {
	id    uuid.UUID
	at    time.Time
	value T
}

func (r Record[T]) Id() uuid.UUID {
	return r.id
}

// At returns the observation time (UTC)
func (r Record[T]) At() time.Time {
	return r.at
}

func (r Record[T]) Value() T {
	return r.value
}

// Probe records every value it observes, in order. It is safe for concurrent
// use, so a single probe can be shared across parallel tests.
type Probe[T any] struct {
	mu      sync.Mutex
	records []Record[T]
}

func New[T any]() *Probe[T] {
	return &Probe[T]{}
}

// Observe records v. Its signature matches tap.Also effects.
func (p *Probe[T]) Observe(v T) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.records = append(p.records, Record[T]{
		id:    uuid.New(),
		at:    time.Now().UTC(),
		value: v,
	})
}

// ObserveMut records the value behind v as it is at the time of the call.
// Its signature matches tap.AlsoMut effects.
func (p *Probe[T]) ObserveMut(v *T) {
	p.Observe(*v)
}

func (p *Probe[T]) Count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.records)
}

// Records returns a copy of all records in observation order.
func (p *Probe[T]) Records() []Record[T] {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]Record[T], len(p.records))
	copy(out, p.records)
	return out
}

// Last returns the most recent record, if any.
func (p *Probe[T]) Last() (Record[T], bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.records) == 0 {
		return Record[T]{}, false
	}
	return p.records[len(p.records)-1], true
}
