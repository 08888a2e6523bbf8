package test

import (
	"errors"
	"slices"
	"testing"
)

func AssertTrue(t *testing.T, got bool) {
	t.Helper()

	if !got {
		t.Errorf("expected %v to be true", got)
	}
}

func AssertFalse(t *testing.T, got bool) {
	t.Helper()

	if got {
		t.Errorf("expected %v to be false", got)
	}
}

func AssertEqual[T comparable](t *testing.T, got, want T) {
	t.Helper()

	if got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func AssertNotEqual[T comparable](t *testing.T, got, want T) {
	t.Helper()

	if got == want {
		t.Errorf("expected %v to not equal %v", want, got)
	}
}

func AssertSliceEqual[T comparable](t *testing.T, got, want []T) {
	t.Helper()

	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

// AssertPresent fails unless a lookup found a value equal to want.
func AssertPresent[T comparable](t *testing.T, got T, found bool, want T) {
	t.Helper()

	if !found {
		t.Errorf("expected %v, got nothing", want)
		return
	}

	if got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func AssertAbsent[T any](t *testing.T, got T, found bool) {
	t.Helper()

	if found {
		t.Errorf("expected nothing, got %v", got)
	}
}

func AssertError(t *testing.T, got, want error) {
	t.Helper()

	if !errors.Is(got, want) {
		t.Errorf("expected error %v, got %v", want, got)
	}
}

func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
