package txstore

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/btree"
)

const defaultDegree = 32

// Store is an in-memory key-value store with a single optional transaction.
//
// Reads go to the committed map while Idle and to the transaction overlay
// while Active. The overlay starts as a copy-on-write clone of the committed
// map, so it always holds every committed key; writes never reach the
// committed map until Commit swaps the overlay in.
type Store[V any] struct {
	mutex sync.RWMutex

	committed *btree.Map[string, V]
	overlay   *btree.Map[string, V]

	state State
	txID  uuid.UUID
}

func New[V any]() *Store[V] {
	return &Store[V]{
		committed: btree.NewMap[string, V](defaultDegree),
		state:     Idle,
	}
}

func (s *Store[V]) Get(key string) (V, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.visible().Get(key)
}

func (s *Store[V]) Begin() (uuid.UUID, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.state == Active {
		return uuid.Nil, TransactionConflictError
	}

	s.overlay = s.committed.Copy()
	s.txID = uuid.New()
	s.state = Active

	log.Debug().
		Stringer("tx", s.txID).
		Int("keys", s.overlay.Len()).
		Msg("txstore: transaction started")

	return s.txID, nil
}

func (s *Store[V]) Put(key string, value V) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.state != Active {
		return NoActiveTransactionError
	}

	s.overlay.Set(key, value)
	return nil
}

// Delete removes key from the transaction overlay and reports whether it
// was present there.
func (s *Store[V]) Delete(key string) (bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.state != Active {
		return false, NoActiveTransactionError
	}

	_, deleted := s.overlay.Delete(key)
	return deleted, nil
}

func (s *Store[V]) Commit() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.state != Active {
		return NoActiveTransactionError
	}

	s.committed = s.overlay

	log.Debug().
		Stringer("tx", s.txID).
		Int("keys", s.committed.Len()).
		Msg("txstore: transaction committed")

	s.reset()
	return nil
}

func (s *Store[V]) Rollback() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.state != Active {
		return NoActiveTransactionError
	}

	log.Debug().
		Stringer("tx", s.txID).
		Msg("txstore: transaction rolled back")

	s.reset()
	return nil
}

func (s *Store[V]) State() State {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.state
}

// TxID returns the ID of the active transaction, if any.
func (s *Store[V]) TxID() (uuid.UUID, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.txID, s.state == Active
}

func (s *Store[V]) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.visible().Len()
}

// Keys returns keys visible to Get, in ascending order.
func (s *Store[V]) Keys() []string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.visible().Keys()
}

// Snapshot returns a view of committed state. The active transaction, if
// any, is not visible through it.
func (s *Store[V]) Snapshot() *Snapshot[V] {
	// Copy re-tags the source tree, so it needs the write lock.
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return &Snapshot[V]{data: s.committed.Copy()}
}

func (s *Store[V]) visible() *btree.Map[string, V] {
	if s.state == Active {
		return s.overlay
	}

	return s.committed
}

func (s *Store[V]) reset() {
	s.overlay = nil
	s.txID = uuid.Nil
	s.state = Idle
}
