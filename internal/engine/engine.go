package engine

// Kind represents token kinds from a generic source.
type Kind int

const (
	KindBeginObject Kind = iota
	KindEndObject
	KindBeginArray
	KindEndArray
	KindKey
	KindString
	KindNumber
	KindBool
	KindNull
)

func (k Kind) String() string {
	switch k {
	case KindBeginObject:
		return "begin_object"
	case KindEndObject:
		return "end_object"
	case KindBeginArray:
		return "begin_array"
	case KindEndArray:
		return "end_array"
	case KindKey:
		return "key"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindNull:
		return "null"
	default:
		return "unknown"
	}
}

// Token represents a streaming token with approximate input offset.
type Token struct {
	Kind   Kind
	String string
	Number string // verbatim literal
	Bool   bool
	Offset int64
}

// TokenSource is a minimal interface required by the engine.
type TokenSource interface {
	NextToken() (Token, error)
	Location() int64
}

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

// Framer tracks container nesting for decoders that report keys and string
// values with the same token type. Drivers call Open/Close on delimiters and
// Str for every string to learn whether it is an object key.
type Framer struct {
	stack []frame
}

type frame struct {
	kind         containerKind
	expectingKey bool
}

// OpenObject records the start of an object.
func (f *Framer) OpenObject() {
	f.stack = append(f.stack, frame{kind: kindObject, expectingKey: true})
}

// OpenArray records the start of an array.
func (f *Framer) OpenArray() { f.stack = append(f.stack, frame{kind: kindArray}) }

// Close pops the innermost container; the container itself counts as a value
// of its parent.
func (f *Framer) Close() {
	if n := len(f.stack); n > 0 {
		f.stack = f.stack[:n-1]
	}
	f.Value()
}

// Str classifies a string token as key or value.
func (f *Framer) Str() Kind {
	if n := len(f.stack); n > 0 {
		top := &f.stack[n-1]
		if top.kind == kindObject && top.expectingKey {
			top.expectingKey = false
			return KindKey
		}
	}
	f.Value()
	return KindString
}

// Value marks that a value completed inside the current container.
func (f *Framer) Value() {
	if n := len(f.stack); n > 0 {
		top := &f.stack[n-1]
		if top.kind == kindObject && !top.expectingKey {
			top.expectingKey = true
		}
	}
}

// Depth returns the current nesting depth.
func (f *Framer) Depth() int { return len(f.stack) }
