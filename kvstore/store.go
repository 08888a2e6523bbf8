package kvstore

import "github.com/google/uuid"

type Store[V any] interface {
	Get(key string) (V, bool)
	Put(key string, value V) error
	Delete(key string) (bool, error)
	Keys() []string

	Begin() (uuid.UUID, error)
	Commit() error
	Rollback() error
	TxID() (uuid.UUID, bool)
}
