package dedup

import (
	stdjson "encoding/json"
	"fmt"
	"math"
	"math/big"
	"strconv"
)

// FromAny converts an already-decoded tree (encoding/json, go-json or yaml.v3
// output) into an interned Value. It never fails: unsupported leaves become
// strings rendered with fmt.
func FromAny(v any) Value {
	return fromAny(v, interner{})
}

func fromAny(v any, in interner) Value {
	switch t := v.(type) {
	case nil:
		return Null()
	case Value:
		return t
	case bool:
		return Bool(t)
	case string:
		return Value{kind: KindString, s: in.intern(t)}
	case stdjson.Number: // go-json's Number is an alias of this type
		return Num(Number(t))
	case Number:
		return Num(t)
	case float64:
		return floatValue(t, 64)
	case float32:
		return floatValue(float64(t), 32)
	case int:
		return Num(Number(strconv.FormatInt(int64(t), 10)))
	case int8:
		return Num(Number(strconv.FormatInt(int64(t), 10)))
	case int16:
		return Num(Number(strconv.FormatInt(int64(t), 10)))
	case int32:
		return Num(Number(strconv.FormatInt(int64(t), 10)))
	case int64:
		return Num(Number(strconv.FormatInt(t, 10)))
	case uint:
		return Num(Number(strconv.FormatUint(uint64(t), 10)))
	case uint8:
		return Num(Number(strconv.FormatUint(uint64(t), 10)))
	case uint16:
		return Num(Number(strconv.FormatUint(uint64(t), 10)))
	case uint32:
		return Num(Number(strconv.FormatUint(uint64(t), 10)))
	case uint64:
		return Num(Number(strconv.FormatUint(t, 10)))
	case *big.Int:
		return Num(Number(t.String()))
	case []any:
		items := make([]Value, len(t))
		for i, e := range t {
			items[i] = fromAny(e, in)
		}
		return Value{kind: KindArray, arr: &array{items: items}}
	case map[string]any:
		members := make([]Member, 0, len(t))
		for k, e := range t {
			members = append(members, Member{Key: in.intern(k), Value: fromAny(e, in)})
		}
		return Value{kind: KindObject, obj: &object{members: normalizeMembers(members)}}
	case map[any]any:
		members := make([]Member, 0, len(t))
		for k, e := range t {
			members = append(members, Member{Key: in.intern(fmt.Sprint(k)), Value: fromAny(e, in)})
		}
		return Value{kind: KindObject, obj: &object{members: normalizeMembers(members)}}
	default:
		return Value{kind: KindString, s: in.intern(fmt.Sprint(t))}
	}
}

// floatValue renders finite floats with the shortest round-trip form. NaN and
// infinities have no JSON representation and become null.
func floatValue(f float64, bits int) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Null()
	}
	return Num(Number(strconv.FormatFloat(f, 'g', -1, bits)))
}

// ToAny converts v back into plain Go values (map[string]any, []any, string,
// bool, nil, json.Number).
func ToAny(v Value) any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return stdjson.Number(v.s)
	case KindString:
		return v.s
	case KindArray:
		out := make([]any, len(v.arr.items))
		for i, it := range v.arr.items {
			out[i] = ToAny(it)
		}
		return out
	case KindObject:
		out := make(map[string]any, len(v.obj.members))
		for _, m := range v.obj.members {
			out[m.Key] = ToAny(m.Value)
		}
		return out
	default:
		return nil
	}
}
