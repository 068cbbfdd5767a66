package simulation

import (
	"github.com/ironsheep/parkspot/internal/logging"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Backend persists a single offset value.
//
// Backends store whatever they are given; bounds are enforced by OffsetStore.
type Backend interface {
	// Load returns the stored value, or an error when nothing usable is stored.
	Load() (int, error)

	// Save replaces the stored value.
	Save(value int) error
}

// OffsetStore is the bounded simulation offset of one lot.
type OffsetStore struct {
	backend  Backend
	capacity int
	log      logrus.FieldLogger
}

// NewOffsetStore creates a store whose values are clamped to [0, capacity].
// A nil logger discards log output.
func NewOffsetStore(backend Backend, capacity int, log logrus.FieldLogger) *OffsetStore {
	if log == nil {
		log = logging.Discard()
	}
	if capacity < 0 {
		capacity = 0
	}
	return &OffsetStore{backend: backend, capacity: capacity, log: log}
}

// Capacity returns the upper bound of the offset.
func (s *OffsetStore) Capacity() int {
	return s.capacity
}

// Read returns the current offset.
//
// Missing, unreadable or unparsable storage reads as 0. A stored value
// outside [0, capacity] is clamped, which covers a lot that shrank since the
// value was written.
func (s *OffsetStore) Read() int {
	value, err := s.backend.Load()
	if err != nil {
		s.log.WithError(err).Debug("no usable simulation offset stored, using 0")
		return 0
	}
	return s.clamp(value)
}

// Write clamps n to [0, capacity], persists it and returns the stored value.
func (s *OffsetStore) Write(n int) (int, error) {
	value := s.clamp(n)
	if value != n {
		s.log.WithFields(logrus.Fields{
			"requested": n,
			"stored":    value,
		}).Debug("simulation offset clamped")
	}
	if err := s.backend.Save(value); err != nil {
		return s.Read(), errors.Wrap(err, "failed to save simulation offset")
	}
	return value, nil
}

// Increment records one arriving car.
func (s *OffsetStore) Increment() (int, error) {
	return s.Write(s.Read() + 1)
}

// Decrement records one departing car. The offset never drops below 0.
func (s *OffsetStore) Decrement() (int, error) {
	return s.Write(s.Read() - 1)
}

// Reset clears the offset.
func (s *OffsetStore) Reset() (int, error) {
	return s.Write(0)
}

func (s *OffsetStore) clamp(n int) int {
	if n < 0 {
		return 0
	}
	if n > s.capacity {
		return s.capacity
	}
	return n
}
