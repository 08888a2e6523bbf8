package kvstore

import "errors"

var (
	ErrEmptyKey   = errors.New("key is empty")
	ErrKeyTooLong = errors.New("key too long")
)
