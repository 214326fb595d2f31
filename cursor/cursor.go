// Package cursor tracks the schema type of the value currently being looked
// at while a consumer walks a data.raw tree.
//
// A Cursor is an immutable value: each step returns a new Cursor and leaves
// the receiver untouched. Copying one is O(1); the index is shared by
// pointer and complex type expressions are shared with the schema. Steps
// never fail. Anything that cannot be resolved yields the Unknown state,
// and every step from Unknown stays Unknown.
package cursor

import (
	"github.com/bpbin/rawexplorer/schema"
)

// State is the variant of a CurrentType.
type State uint8

const (
	Unknown State = iota
	DataRaw
	TypeOrProto
	BuiltIn
	Complex
)

func (s State) String() string {
	switch s {
	case DataRaw:
		return "DataRaw"
	case TypeOrProto:
		return "TypeOrProto"
	case BuiltIn:
		return "BuiltIn"
	case Complex:
		return "Complex"
	default:
		return "Unknown"
	}
}

// CurrentType is the resolved schema position. Name is set for TypeOrProto
// and BuiltIn, Complex for the Complex state.
type CurrentType struct {
	State   State
	Name    string
	Complex *schema.ComplexType
}

// Cursor pairs a CurrentType with the index used to advance it.
type Cursor struct {
	ix   *schema.Index
	kind CurrentType
}

// New returns the cursor for the document root (DataRaw). A nil index is
// treated as an empty schema.
func New(ix *schema.Index) Cursor {
	if ix == nil {
		ix = schema.NewIndex(nil)
	}
	return Cursor{ix: ix, kind: CurrentType{State: DataRaw}}
}

// At returns a cursor positioned at kind.
func At(ix *schema.Index, kind CurrentType) Cursor {
	c := New(ix)
	c.kind = kind
	return c
}

func (c Cursor) with(kind CurrentType) Cursor { return Cursor{ix: c.ix, kind: kind} }

func (c Cursor) unknown() Cursor { return c.with(CurrentType{}) }

// Index returns the schema index the cursor resolves against.
func (c Cursor) Index() *schema.Index { return c.ix }

// Kind returns the current type.
func (c Cursor) Kind() CurrentType { return c.kind }

// State returns the variant of the current type.
func (c Cursor) State() State { return c.kind.State }

// Name returns the type or prototype name for TypeOrProto and BuiltIn.
func (c Cursor) Name() string { return c.kind.Name }

// Complex returns the type expression for the Complex state.
func (c Cursor) Complex() *schema.ComplexType { return c.kind.Complex }

// IsUnknown reports whether the position could not be resolved.
func (c Cursor) IsUnknown() bool { return c.kind.State == Unknown }
