package cursor

import "github.com/bpbin/rawexplorer/schema"

// StepProperty descends into the object member called prop.
//
//   - DataRaw: prop is a prototype typename; the result is
//     dictionary[string -> <prototype name>].
//   - TypeOrProto: the effective inherited property prop, otherwise the
//     entry's custom properties when their key type is a string.
//   - Complex dictionary: the value type when the key type is a string.
//
// Everything else is Unknown.
func (c Cursor) StepProperty(prop string) Cursor {
	switch c.kind.State {
	case DataRaw:
		proto, ok := c.ix.ProtoByType(prop)
		if !ok {
			return c.unknown()
		}
		dict := schema.NewDictionary(schema.Simple("string"), schema.Simple(proto.Name))
		return c.with(CurrentType{State: Complex, Complex: dict})
	case TypeOrProto:
		if p, ok := c.ix.LookupProp(c.kind.Name, prop); ok {
			return c.descend(p.Type)
		}
		if cp, ok := c.ix.CustomProperties(c.kind.Name); ok && c.ix.ResolvesToString(cp.KeyType) {
			return c.descend(cp.ValueType)
		}
		return c.unknown()
	case Complex:
		ct := c.kind.Complex
		if ct != nil && ct.Kind == schema.ComplexDictionary && c.ix.ResolvesToString(ct.Key) {
			return c.descend(ct.Value)
		}
		return c.unknown()
	default:
		return c.unknown()
	}
}

// StepIndex descends into element idx of an array with arrayLength elements.
//
//   - TypeOrProto: a type concept with a complex declared type is stepped as
//     that expression.
//   - Complex array: the element type.
//   - Complex tuple: the element type at idx, if in range.
//   - Complex union: the single option that is an array, or a tuple of arity
//     arrayLength. Zero or several candidates give Unknown; ambiguous unions
//     are never guessed.
//
// Everything else is Unknown.
func (c Cursor) StepIndex(idx, arrayLength int) Cursor {
	switch c.kind.State {
	case TypeOrProto:
		t, ok := c.ix.TypeConcept(c.kind.Name)
		if !ok || t.Type.IsSimple() {
			return c.unknown()
		}
		return c.stepComplexIndex(t.Type.Complex, idx, arrayLength)
	case Complex:
		return c.stepComplexIndex(c.kind.Complex, idx, arrayLength)
	default:
		return c.unknown()
	}
}

func (c Cursor) stepComplexIndex(ct *schema.ComplexType, idx, arrayLength int) Cursor {
	if ct == nil {
		return c.unknown()
	}
	switch ct.Kind {
	case schema.ComplexArray:
		return c.descend(ct.Value)
	case schema.ComplexTuple:
		if idx < 0 || idx >= len(ct.Values) {
			return c.unknown()
		}
		return c.descend(ct.Values[idx])
	case schema.ComplexUnion:
		var match *schema.ComplexType
		candidates := 0
		for _, o := range ct.Options {
			if o.IsSimple() {
				continue
			}
			switch {
			case o.Complex.Kind == schema.ComplexArray,
				o.Complex.Kind == schema.ComplexTuple && len(o.Complex.Values) == arrayLength:
				match = o.Complex
				candidates++
			}
		}
		if candidates != 1 {
			return c.unknown()
		}
		return c.stepComplexIndex(match, idx, arrayLength)
	default:
		return c.unknown()
	}
}

// descend moves to a declared type: complex expressions are kept as they
// are, simple names become BuiltIn when they name a built-in type concept and
// TypeOrProto otherwise.
func (c Cursor) descend(t schema.Type) Cursor {
	if !t.IsSimple() {
		return c.with(CurrentType{State: Complex, Complex: t.Complex})
	}
	if c.ix.IsBuiltin(t.Name) {
		return c.with(CurrentType{State: BuiltIn, Name: t.Name})
	}
	return c.with(CurrentType{State: TypeOrProto, Name: t.Name})
}
