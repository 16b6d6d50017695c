// Package assert provides minimal assertion helpers for tests.
package assert

import (
	"errors"
	"reflect"
	"testing"
)

// Equal fails the test if the two values are not deeply equal.
func Equal[T any](t *testing.T, a T, b T) {
	t.Helper()
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("%v != %v", a, b)
	}
}

// NotEqual fails the test if the two values are deeply equal.
func NotEqual[T any](t *testing.T, a T, b T) {
	t.Helper()
	if reflect.DeepEqual(a, b) {
		t.Fatalf("%v == %v", a, b)
	}
}

// True fails the test if the condition does not hold.
func True(t *testing.T, condition bool) {
	t.Helper()
	if !condition {
		t.Fatal("condition does not hold")
	}
}

// IsNil fails the test if the value is not nil.
func IsNil(t *testing.T, value any) {
	t.Helper()
	if !isNil(value) {
		t.Fatalf("%v is not nil", value)
	}
}

// NotNil fails the test if the value is nil.
func NotNil(t *testing.T, value any) {
	t.Helper()
	if isNil(value) {
		t.Fatal("value is nil")
	}
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface,
		reflect.Map, reflect.Pointer, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}

// ErrorIs fails the test if the error does not match the target error.
func ErrorIs(t *testing.T, err error, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("%v is not %v", err, target)
	}
}
