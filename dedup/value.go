// Package dedup holds parsed JSON documents as immutable, string-interned value
// trees.
//
// A Value is a small struct: scalars are stored inline and containers point to
// shared, never-mutated storage, so copying a Value (or calling Clone) is O(1)
// regardless of the subtree size. Trees produced by Build intern every string
// value and object key, so equal strings share one backing allocation. Objects
// keep their members sorted by key, which makes Equal and Hash independent of
// the key order of the input.
//
// Values are safe for concurrent use by any number of readers.
package dedup

import (
	"iter"
	"slices"
	"strconv"
	"strings"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}

// Number is a JSON number literal kept verbatim.
type Number string

func (n Number) String() string { return string(n) }

// Int64 parses the literal as an integer.
func (n Number) Int64() (int64, error) { return strconv.ParseInt(string(n), 10, 64) }

// Float64 parses the literal as a float.
func (n Number) Float64() (float64, error) { return strconv.ParseFloat(string(n), 64) }

// IsInteger reports whether the literal has no fraction or exponent.
func (n Number) IsInteger() bool { return !strings.ContainsAny(string(n), ".eE") }

// Member is one object entry.
type Member struct {
	Key   string
	Value Value
}

type array struct{ items []Value }

type object struct{ members []Member } // sorted by Key, keys unique

// Value is an immutable JSON value. The zero Value is null.
type Value struct {
	kind Kind
	b    bool
	s    string // number literal or string content
	arr  *array
	obj  *object
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Num returns a number value holding the literal verbatim.
func Num(n Number) Value { return Value{kind: KindNumber, s: string(n)} }

// Str returns a string value. The string is not interned.
func Str(s string) Value { return Value{kind: KindString, s: s} }

// ArrayOf returns an array holding a copy of items.
func ArrayOf(items ...Value) Value {
	return Value{kind: KindArray, arr: &array{items: slices.Clone(items)}}
}

// ObjectOf returns an object with the given members. Members are sorted by key;
// when a key repeats, the last member wins.
func ObjectOf(members ...Member) Value {
	return Value{kind: KindObject, obj: &object{members: normalizeMembers(slices.Clone(members))}}
}

func normalizeMembers(ms []Member) []Member {
	slices.SortStableFunc(ms, func(a, b Member) int { return strings.Compare(a.Key, b.Key) })
	out := ms[:0]
	for i, m := range ms {
		if i+1 < len(ms) && ms[i+1].Key == m.Key {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Kind returns the variant of v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Clone returns v. Substructure is shared, never copied.
func (v Value) Clone() Value { return v }

// Bool returns the boolean and whether v is a bool.
func (v Value) Bool() (bool, bool) { return v.b, v.kind == KindBool }

// Number returns the literal and whether v is a number.
func (v Value) Number() (Number, bool) {
	if v.kind != KindNumber {
		return "", false
	}
	return Number(v.s), true
}

// Str returns the string content and whether v is a string.
func (v Value) Str() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

// Len returns the element count of arrays, the member count of objects and 0
// otherwise.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr.items)
	case KindObject:
		return len(v.obj.members)
	default:
		return 0
	}
}

// Index returns element i of an array.
func (v Value) Index(i int) (Value, bool) {
	if v.kind != KindArray || i < 0 || i >= len(v.arr.items) {
		return Value{}, false
	}
	return v.arr.items[i], true
}

// Get returns the member value for key in an object.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}
	i, ok := slices.BinarySearchFunc(v.obj.members, key, func(m Member, k string) int {
		return strings.Compare(m.Key, k)
	})
	if !ok {
		return Value{}, false
	}
	return v.obj.members[i].Value, true
}

// Items iterates array elements in order.
func (v Value) Items() iter.Seq2[int, Value] {
	return func(yield func(int, Value) bool) {
		if v.kind != KindArray {
			return
		}
		for i, it := range v.arr.items {
			if !yield(i, it) {
				return
			}
		}
	}
}

// Members iterates object members in key order.
func (v Value) Members() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if v.kind != KindObject {
			return
		}
		for _, m := range v.obj.members {
			if !yield(m.Key, m.Value) {
				return
			}
		}
	}
}

// Keys returns the object keys in order.
func (v Value) Keys() []string {
	if v.kind != KindObject {
		return nil
	}
	keys := make([]string, len(v.obj.members))
	for i, m := range v.obj.members {
		keys[i] = m.Key
	}
	return keys
}

// SameStorage reports whether a and b are containers backed by the same
// storage, or the same scalar.
func SameStorage(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindArray:
		return a.arr == b.arr
	case KindObject:
		return a.obj == b.obj
	default:
		return a == b
	}
}

// String renders v as compact JSON.
func (v Value) String() string { return string(appendJSON(nil, v)) }
