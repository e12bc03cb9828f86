// internal/testutil/helpers.go
package testutil

import (
	"math"
	"testing"
)

// AssertEqual verifies that two comparable values are equal.
func AssertEqual(t *testing.T, got, want interface{}, msg string) {
	t.Helper()
	if got != want {
		t.Errorf("%s: got %v, want %v", msg, got, want)
	}
}

// AssertNotEqual verifies that two values differ.
func AssertNotEqual(t *testing.T, got, want interface{}, msg string) {
	t.Helper()
	if got == want {
		t.Errorf("%s: got %v, should not equal %v", msg, got, want)
	}
}

// AssertNil verifies that a value is nil.
func AssertNil(t *testing.T, got interface{}, msg string) {
	t.Helper()
	if got != nil {
		t.Errorf("%s: expected nil, got %v", msg, got)
	}
}

// AssertNotNil verifies that a value is not nil.
func AssertNotNil(t *testing.T, got interface{}, msg string) {
	t.Helper()
	if got == nil {
		t.Errorf("%s: expected non-nil value", msg)
	}
}

// AssertError verifies that an error is present.
func AssertError(t *testing.T, err error, msg string) {
	t.Helper()
	if err == nil {
		t.Errorf("%s: expected error, got nil", msg)
	}
}

// AssertNoError verifies that no error occurred.
func AssertNoError(t *testing.T, err error, msg string) {
	t.Helper()
	if err != nil {
		t.Errorf("%s: unexpected error: %v", msg, err)
	}
}

// AssertTrue verifies that a condition holds.
func AssertTrue(t *testing.T, cond bool, msg string) {
	t.Helper()
	if !cond {
		t.Errorf("%s: condition is false", msg)
	}
}

// AssertInDelta verifies that two floats are equal within tolerance.
// Scores compose several float multiplications, so exact comparison is
// only valid for idempotence checks, not for hand-computed expectations.
func AssertInDelta(t *testing.T, got, want, delta float64, msg string) {
	t.Helper()
	if math.Abs(got-want) > delta {
		t.Errorf("%s: got %v, want %v (±%v)", msg, got, want, delta)
	}
}

// AssertStringsEqual verifies two string slices element by element.
func AssertStringsEqual(t *testing.T, got, want []string, msg string) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("%s: got %d lines, want %d\n got: %q\nwant: %q", msg, len(got), len(want), got, want)
		return
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s: line %d = %q, want %q", msg, i, got[i], want[i])
		}
	}
}
