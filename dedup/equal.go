package dedup

import (
	"encoding/binary"
	"hash"
	"hash/fnv"
)

// Equal reports structural equality. Numbers compare by literal text; object
// comparison does not depend on input key order.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindNumber, KindString:
		return a.s == b.s
	case KindArray:
		if a.arr == b.arr {
			return true
		}
		if len(a.arr.items) != len(b.arr.items) {
			return false
		}
		for i := range a.arr.items {
			if !Equal(a.arr.items[i], b.arr.items[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if a.obj == b.obj {
			return true
		}
		if len(a.obj.members) != len(b.obj.members) {
			return false
		}
		for i, m := range a.obj.members {
			n := b.obj.members[i]
			if m.Key != n.Key || !Equal(m.Value, n.Value) {
				return false
			}
		}
		return true
	}
	return false
}

// Hash returns a structural 64-bit FNV-1a hash consistent with Equal.
func Hash(v Value) uint64 {
	h := fnv.New64a()
	writeHash(h, v)
	return h.Sum64()
}

func writeHash(h hash.Hash64, v Value) {
	var buf [9]byte
	buf[0] = byte(v.kind)
	switch v.kind {
	case KindBool:
		if v.b {
			buf[1] = 1
		}
		_, _ = h.Write(buf[:2])
	case KindNumber, KindString:
		binary.LittleEndian.PutUint64(buf[1:], uint64(len(v.s)))
		_, _ = h.Write(buf[:])
		_, _ = h.Write([]byte(v.s))
	case KindArray:
		binary.LittleEndian.PutUint64(buf[1:], uint64(len(v.arr.items)))
		_, _ = h.Write(buf[:])
		for _, it := range v.arr.items {
			writeHash(h, it)
		}
	case KindObject:
		binary.LittleEndian.PutUint64(buf[1:], uint64(len(v.obj.members)))
		_, _ = h.Write(buf[:])
		for _, m := range v.obj.members {
			binary.LittleEndian.PutUint64(buf[1:], uint64(len(m.Key)))
			_, _ = h.Write(buf[1:])
			_, _ = h.Write([]byte(m.Key))
			writeHash(h, m.Value)
		}
	default:
		_, _ = h.Write(buf[:1])
	}
}
