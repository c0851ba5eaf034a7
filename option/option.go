// Package option provides a two-variant container that distinguishes
// "absent" from "present but zero/nil". Lookups that must make that
// distinction return an Option instead of a (value, ok) pair whose
// value half would be ambiguous.
package option

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrAbsent is the panic value of Get on an absent Option.
var ErrAbsent = errors.New("option: no value present")

// Option holds either a present value of type T or nothing. The zero
// Option is absent.
type Option[T any] struct {
	value   T
	present bool
}

// Some returns a present Option holding v. v may be nil; presence and
// the payload are independent.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

// None returns the absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// SomeOrNil returns Some(v), or None when v is a nil pointer,
// interface, map, slice, function, or channel. Use it at boundaries
// where nil still means "absent"; values of non-nilable types are
// always present.
func SomeOrNil[T any](v T) Option[T] {
	if isNil(v) {
		return None[T]()
	}
	return Some(v)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// IsPresent reports whether a value is present.
func (o Option[T]) IsPresent() bool { return o.present }

// Get returns the present value. It panics with ErrAbsent if the
// Option is absent; callers that cannot rule that out should use
// GetOrElse or Match.
func (o Option[T]) Get() T {
	if !o.present {
		panic(ErrAbsent)
	}
	return o.value
}

// GetOrElse returns the present value, or def if absent.
func (o Option[T]) GetOrElse(def T) T {
	if !o.present {
		return def
	}
	return o.value
}

func (o Option[T]) String() string {
	if !o.present {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// Match applies has to the present value, or calls hasNot if absent,
// and returns the result.
func Match[T, U any](o Option[T], has func(T) U, hasNot func() U) U {
	if o.present {
		return has(o.value)
	}
	return hasNot()
}

// Then applies f to the present value, or returns None if absent. Use
// it to chain lookups, failing fast at the first absence.
func Then[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if !o.present {
		return None[U]()
	}
	return f(o.value)
}

// Map applies f to the present value, or returns None if absent.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.present {
		return None[U]()
	}
	return Some(f(o.value))
}
