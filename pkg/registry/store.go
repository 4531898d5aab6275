package registry

import (
	"fmt"
	"math"

	"github.com/bft-labs/memload/internal/domain"
)

// DefaultInitialCapacity is the capacity used when NewStore is given a
// non-positive value.
const DefaultInitialCapacity = 4

// Store is a growable, domain-indexed collection of blob sets.
// The zero value is not usable; create stores with NewStore.
type Store struct {
	// sets is only ever appended to within its capacity; growth goes
	// through grow so the doubling policy stays explicit.
	sets []*domain.BlobSet
}

// NewStore creates an empty store with room for initialCapacity domains.
func NewStore(initialCapacity int) *Store {
	if initialCapacity <= 0 {
		initialCapacity = DefaultInitialCapacity
	}
	return &Store{sets: make([]*domain.BlobSet, 0, initialCapacity)}
}

// Upsert stores set, replacing the set already registered for the same domain.
// The replaced set is released after the new one is in place. Upsert reports
// whether a replacement happened.
func (s *Store) Upsert(set *domain.BlobSet) (replaced bool) {
	if i := s.indexOf(set.DomainID()); i >= 0 {
		old := s.sets[i]
		s.sets[i] = set
		if old != set {
			old.Release()
		}
		return true
	}
	s.add(set)
	return false
}

// Find returns the set registered for id. The set is borrowed: it stays valid
// only until the next Upsert or Remove for the same domain.
func (s *Store) Find(id domain.DomainID) (*domain.BlobSet, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.sets[i], true
	}
	return nil, false
}

// Remove takes the set registered for id out of the store and hands it to the
// caller, who becomes responsible for releasing it. Remaining sets keep their
// relative order.
func (s *Store) Remove(id domain.DomainID) (*domain.BlobSet, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return nil, false
	}
	set := s.sets[i]
	copy(s.sets[i:], s.sets[i+1:])
	s.sets[len(s.sets)-1] = nil
	s.sets = s.sets[:len(s.sets)-1]
	return set, true
}

// Len returns the number of registered domains.
func (s *Store) Len() int {
	return len(s.sets)
}

// Cap returns the current capacity of the backing array.
func (s *Store) Cap() int {
	return cap(s.sets)
}

// Domains returns the registered domain ids in insertion order.
func (s *Store) Domains() []domain.DomainID {
	ids := make([]domain.DomainID, len(s.sets))
	for i, set := range s.sets {
		ids[i] = set.DomainID()
	}
	return ids
}

func (s *Store) indexOf(id domain.DomainID) int {
	for i, set := range s.sets {
		if set.DomainID() == id {
			return i
		}
	}
	return -1
}

func (s *Store) add(set *domain.BlobSet) {
	if len(s.sets) == cap(s.sets) {
		s.grow()
	}
	s.sets = append(s.sets, set)
}

func (s *Store) grow() {
	newCap, err := growCapacity(cap(s.sets), math.MaxInt)
	if err != nil {
		panic(err)
	}
	sets := make([]*domain.BlobSet, len(s.sets), newCap)
	copy(sets, s.sets)
	s.sets = sets
}

// growCapacity doubles current, refusing results above limit.
func growCapacity(current, limit int) (int, error) {
	if current == 0 {
		return 1, nil
	}
	if current > limit/2 {
		return 0, fmt.Errorf("%w: cannot double capacity %d", domain.ErrCapacityOverflow, current)
	}
	return current * 2, nil
}
