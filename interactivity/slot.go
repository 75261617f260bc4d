package interactivity

import "sync"

// slot is the storage cell for one service kind's singleton. A slot
// transitions empty → occupied exactly once; it is never replaced, and only
// the console-window slot is ever cleared (during strict rundown).
//
// The lock is held across the whole construct-then-store sequence so that
// two concurrent getOrCreate calls on an empty slot construct exactly once.
type slot[T any] struct {
	mu       sync.Mutex
	value    T
	occupied bool
}

// setIfEmpty stores v if the slot is empty. Returns false when the slot is
// already occupied; the existing value is kept.
func (s *slot[T]) setIfEmpty(v T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.occupied {
		return false
	}
	s.value = v
	s.occupied = true
	return true
}

// getOrCreate returns the stored value, constructing and storing it on first
// access. A failed construction leaves the slot empty so a later call may
// retry.
func (s *slot[T]) getOrCreate(create func() (T, error)) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.occupied {
		return s.value, nil
	}

	v, err := create()
	if err != nil {
		var zero T
		return zero, err
	}
	s.value = v
	s.occupied = true
	return v, nil
}

// createIfEmpty constructs and stores a value only when the slot is empty.
// When the slot is occupied, it reports occupied=true and does not invoke
// create. A failed construction leaves the slot empty.
func (s *slot[T]) createIfEmpty(create func() (T, error)) (v T, occupied bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.occupied {
		return s.value, true, nil
	}

	v, err = create()
	if err != nil {
		var zero T
		return zero, false, err
	}
	s.value = v
	s.occupied = true
	return v, false, nil
}

// get returns the stored value without constructing.
func (s *slot[T]) get() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value, s.occupied
}

// clear empties the slot and returns the previous value, if any.
// Reserved for rundown.
func (s *slot[T]) clear() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.value, s.occupied
	var zero T
	s.value = zero
	s.occupied = false
	return v, ok
}
