package cursor

import "github.com/bpbin/rawexplorer/schema"

// Label renders the current type for display.
func (c Cursor) Label() string { return c.kind.Label() }

// Label renders k: "?" for Unknown, "data.raw" for the root, the name for
// named types and the printed expression for complex types.
func (k CurrentType) Label() string {
	switch k.State {
	case DataRaw:
		return "data.raw"
	case TypeOrProto, BuiltIn:
		return k.Name
	case Complex:
		if k.Complex == nil {
			return "?"
		}
		return k.Complex.String()
	default:
		return "?"
	}
}

// DocLink returns the documentation URL of the named type, or "".
func (c Cursor) DocLink() string {
	switch c.kind.State {
	case TypeOrProto, BuiltIn:
		return c.ix.DocLink(c.kind.Name)
	default:
		return ""
	}
}

// Names returns the simple type names mentioned by the current type in
// print order.
func (c Cursor) Names() []string {
	switch c.kind.State {
	case TypeOrProto, BuiltIn:
		return []string{c.kind.Name}
	case Complex:
		if c.kind.Complex == nil {
			return nil
		}
		return schema.Complex(c.kind.Complex).Names()
	default:
		return nil
	}
}
