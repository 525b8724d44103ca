package testing

import (
	"reflect"
	"slices"
	"testing"
)

// Chain is the read-only iteration surface of a linked list.
type Chain[V any] interface {
	Len() int
	Do(func(V) bool)
	DoReverse(func(V) bool)
}

// AssertSuccess that error did not occur.
func AssertSuccess(t testing.TB, err error) {
	t.Helper()

	if err != nil || !isNil(err) {
		t.Fatalf("expected success, got '%v'", err)
	}
}

// AssertEqual asserts that values are deeply equal.
func AssertEqual[T any](t testing.TB, a, b T) {
	t.Helper()

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected '%v' to be equal to '%v'", a, b)
	}
}

// AssertChain asserts that walking l in both directions visits exactly
// Len() values, and that the backward walk mirrors the forward walk.
func AssertChain[V any, L Chain[V]](t testing.TB, l L, values ...V) {
	t.Helper()

	forward := Forward[V](l)
	backward := Backward[V](l)
	slices.Reverse(backward)

	AssertEqual(t, len(forward), l.Len())
	AssertEqual(t, forward, backward)

	if values != nil {
		AssertEqual(t, forward, values)
	}
}

// Forward collects the values of l from front to back.
func Forward[V any](l Chain[V]) []V {
	values := []V{}
	l.Do(func(v V) bool {
		values = append(values, v)
		return true
	})
	return values
}

// Backward collects the values of l from back to front.
func Backward[V any](l Chain[V]) []V {
	values := []V{}
	l.DoReverse(func(v V) bool {
		values = append(values, v)
		return true
	})
	return values
}

func isNil(a interface{}) bool {
	if a == nil {
		return true
	}

	switch reflect.TypeOf(a).Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return reflect.ValueOf(a).IsNil()
	}

	return false
}
