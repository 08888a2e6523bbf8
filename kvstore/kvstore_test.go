package kvstore

import (
	"os"
	"strings"
	"testing"

	"txkv/test"
	"txkv/txstore"
)

func TestMain(m *testing.M) {
	test.DisableLogging()
	os.Exit(m.Run())
}

func setup() *KVStore[int64] {
	return New[int64](txstore.New[int64](), Options{
		Validation: ValidationOptions{MaxKeySize: 8},
	})
}

func TestKVStore_Validation(t *testing.T) {
	kv := setup()
	_, err := kv.Begin()
	test.AssertNoError(t, err)

	t.Run("it rejects empty keys", func(t *testing.T) {
		_, _, err := kv.Get("")
		test.AssertError(t, err, ErrEmptyKey)

		err = kv.Put("", 1)
		test.AssertError(t, err, ErrEmptyKey)

		_, err = kv.Delete("")
		test.AssertError(t, err, ErrEmptyKey)
	})

	t.Run("it rejects keys over the size limit", func(t *testing.T) {
		key := strings.Repeat("k", 9)

		_, _, err := kv.Get(key)
		test.AssertError(t, err, ErrKeyTooLong)

		err = kv.Put(key, 1)
		test.AssertError(t, err, ErrKeyTooLong)

		_, err = kv.Delete(key)
		test.AssertError(t, err, ErrKeyTooLong)
	})

	t.Run("it accepts keys at the size limit", func(t *testing.T) {
		key := strings.Repeat("k", 8)

		err := kv.Put(key, 1)
		test.AssertNoError(t, err)

		got, found, err := kv.Get(key)
		test.AssertNoError(t, err)
		test.AssertPresent(t, got, found, int64(1))
	})
}

func TestKVStore_Transactions(t *testing.T) {
	t.Run("it passes store errors through", func(t *testing.T) {
		kv := setup()

		err := kv.Put("a", 1)
		test.AssertError(t, err, txstore.NoActiveTransactionError)

		err = kv.Commit()
		test.AssertError(t, err, txstore.NoActiveTransactionError)

		err = kv.Rollback()
		test.AssertError(t, err, txstore.NoActiveTransactionError)

		_, err = kv.Begin()
		test.AssertNoError(t, err)

		_, err = kv.Begin()
		test.AssertError(t, err, txstore.TransactionConflictError)
	})

	t.Run("it commits writes", func(t *testing.T) {
		kv := setup()
		_, _ = kv.Begin()
		_ = kv.Put("a", 1)
		_ = kv.Put("b", 2)
		_, _ = kv.Delete("b")

		err := kv.Commit()
		test.AssertNoError(t, err)

		got, found, err := kv.Get("a")
		test.AssertNoError(t, err)
		test.AssertPresent(t, got, found, int64(1))
		test.AssertSliceEqual(t, kv.Keys(), []string{"a"})
	})

	t.Run("it rolls back writes", func(t *testing.T) {
		kv := setup()
		_, _ = kv.Begin()
		_ = kv.Put("a", 1)

		err := kv.Rollback()
		test.AssertNoError(t, err)

		got, found, err := kv.Get("a")
		test.AssertNoError(t, err)
		test.AssertAbsent(t, got, found)
	})
}
