package txstore

import (
	"fmt"
	"testing"

	"txkv/test"

	"golang.org/x/sync/errgroup"
)

func TestSnapshot(t *testing.T) {
	t.Run("it is not affected by later commits", func(t *testing.T) {
		s := New[int]()
		givenCommitted(t, s, map[string]int{"a": 1})
		snapshot := s.Snapshot()

		_, _ = s.Begin()
		_ = s.Put("a", 2)
		_ = s.Put("b", 3)
		_ = s.Commit()

		got, found := snapshot.Get("a")
		test.AssertPresent(t, got, found, 1)
		test.AssertSliceEqual(t, snapshot.Keys(), []string{"a"})
	})

	t.Run("it scans entries in key order", func(t *testing.T) {
		s := New[int]()
		givenCommitted(t, s, map[string]int{"c": 3, "a": 1, "b": 2})

		var keys []string
		var sum int
		s.Snapshot().Scan(func(key string, value int) bool {
			keys = append(keys, key)
			sum += value
			return true
		})

		test.AssertSliceEqual(t, keys, []string{"a", "b", "c"})
		test.AssertEqual(t, sum, 6)
	})

	t.Run("it never exposes a partially applied commit", func(t *testing.T) {
		const keys = 64
		const rounds = 50

		s := New[int]()
		var g errgroup.Group

		g.Go(func() error {
			for round := 1; round <= rounds; round++ {
				if _, err := s.Begin(); err != nil {
					return err
				}

				for i := 0; i < keys; i++ {
					if err := s.Put(fmt.Sprintf("key-%02d", i), round); err != nil {
						return err
					}
				}

				if err := s.Commit(); err != nil {
					return err
				}
			}
			return nil
		})

		for i := 0; i < 4; i++ {
			g.Go(func() error {
				for j := 0; j < rounds*4; j++ {
					snapshot := s.Snapshot()
					if n := snapshot.Len(); n != 0 && n != keys {
						return fmt.Errorf("snapshot holds %d keys", n)
					}

					want := -1
					var mismatch error
					snapshot.Scan(func(key string, value int) bool {
						if want == -1 {
							want = value
						}
						if value != want {
							mismatch = fmt.Errorf("%s holds round %d, expected %d", key, value, want)
							return false
						}
						return true
					})

					if mismatch != nil {
						return mismatch
					}
				}
				return nil
			})
		}

		test.AssertNoError(t, g.Wait())
	})
}
