package schema

import "strings"

// String renders t the way type labels are shown: names verbatim,
// array[T], dictionary[K -> V], (A, B), union[A | B], literal text, struct.
func (t Type) String() string {
	if t.Complex == nil {
		return t.Name
	}
	return t.Complex.String()
}

func (c *ComplexType) String() string {
	var b strings.Builder
	c.write(&b)
	return b.String()
}

func (c *ComplexType) write(b *strings.Builder) {
	switch c.Kind {
	case ComplexArray:
		b.WriteString("array[")
		writeType(b, c.Value)
		b.WriteByte(']')
	case ComplexDictionary:
		b.WriteString("dictionary[")
		writeType(b, c.Key)
		b.WriteString(" -> ")
		writeType(b, c.Value)
		b.WriteByte(']')
	case ComplexTuple:
		b.WriteByte('(')
		writeList(b, c.Values, ", ")
		b.WriteByte(')')
	case ComplexUnion:
		b.WriteString("union[")
		writeList(b, c.Options, " | ")
		b.WriteByte(']')
	case ComplexTypeRef:
		writeType(b, c.Value)
	case ComplexLiteral:
		b.WriteString(c.Literal.Text)
	case ComplexStruct:
		b.WriteString("struct")
	}
}

func writeType(b *strings.Builder, t Type) {
	if t.Complex == nil {
		b.WriteString(t.Name)
		return
	}
	t.Complex.write(b)
}

func writeList(b *strings.Builder, ts []Type, sep string) {
	for i, t := range ts {
		if i > 0 {
			b.WriteString(sep)
		}
		writeType(b, t)
	}
}

// Names returns every simple type name referenced by t in print order.
func (t Type) Names() []string {
	var out []string
	collectNames(t, &out)
	return out
}

func collectNames(t Type, out *[]string) {
	if t.Complex == nil {
		if t.Name != "" {
			*out = append(*out, t.Name)
		}
		return
	}
	c := t.Complex
	switch c.Kind {
	case ComplexArray, ComplexTypeRef:
		collectNames(c.Value, out)
	case ComplexDictionary:
		collectNames(c.Key, out)
		collectNames(c.Value, out)
	case ComplexTuple:
		for _, v := range c.Values {
			collectNames(v, out)
		}
	case ComplexUnion:
		for _, o := range c.Options {
			collectNames(o, out)
		}
	}
}
