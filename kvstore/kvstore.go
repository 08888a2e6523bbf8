package kvstore

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Validation ValidationOptions
}

type ValidationOptions struct {
	MaxKeySize int
}

type KVStore[V any] struct {
	store   Store[V]
	options Options
}

func New[V any](store Store[V], options Options) *KVStore[V] {
	return &KVStore[V]{
		store:   store,
		options: options,
	}
}

func (s *KVStore[V]) Get(key string) (V, bool, error) {
	if err := s.validateKey(key); err != nil {
		var zero V
		return zero, false, err
	}

	value, found := s.store.Get(key)
	return value, found, nil
}

func (s *KVStore[V]) Put(key string, value V) error {
	if err := s.validateKey(key); err != nil {
		return err
	}

	return s.store.Put(key, value)
}

func (s *KVStore[V]) Delete(key string) (bool, error) {
	if err := s.validateKey(key); err != nil {
		return false, err
	}

	return s.store.Delete(key)
}

func (s *KVStore[V]) Keys() []string {
	return s.store.Keys()
}

func (s *KVStore[V]) Begin() (uuid.UUID, error) {
	txID, err := s.store.Begin()

	if err != nil {
		return uuid.Nil, err
	}

	log.Info().
		Stringer("tx", txID).
		Msg("kvstore: transaction started")

	return txID, nil
}

func (s *KVStore[V]) Commit() error {
	txID, _ := s.store.TxID()

	if err := s.store.Commit(); err != nil {
		return err
	}

	log.Info().
		Stringer("tx", txID).
		Msg("kvstore: transaction committed")

	return nil
}

func (s *KVStore[V]) Rollback() error {
	txID, _ := s.store.TxID()

	if err := s.store.Rollback(); err != nil {
		return err
	}

	log.Info().
		Stringer("tx", txID).
		Msg("kvstore: transaction rolled back")

	return nil
}

func (s *KVStore[V]) validateKey(key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	if len(key) > s.options.Validation.MaxKeySize {
		return ErrKeyTooLong
	}

	return nil
}
