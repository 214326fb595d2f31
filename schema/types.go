package schema

// BuiltinMarker is the declared type of type concepts implemented natively by
// the game (bool, string, double, ...).
const BuiltinMarker = "builtin"

// Document is the machine-readable prototype API document.
type Document struct {
	Application        string        `json:"application,omitempty"`
	ApplicationVersion string        `json:"application_version"`
	APIVersion         int           `json:"api_version,omitempty"`
	Stage              string        `json:"stage,omitempty"`
	Prototypes         []Prototype   `json:"prototypes"`
	Types              []TypeConcept `json:"types"`
}

// Prototype describes one kind of game object.
type Prototype struct {
	Name             string            `json:"name"`
	Typename         string            `json:"typename"`
	Parent           string            `json:"parent"`
	Abstract         bool              `json:"abstract,omitempty"`
	Deprecated       bool              `json:"deprecated,omitempty"`
	Description      string            `json:"description,omitempty"`
	Properties       []Property        `json:"properties"`
	CustomProperties *CustomProperties `json:"custom_properties,omitempty"`
}

// CustomProperties declares the type of arbitrary extra keys on a prototype.
type CustomProperties struct {
	Description string `json:"description,omitempty"`
	KeyType     Type   `json:"key_type"`
	ValueType   Type   `json:"value_type"`
}

// TypeConcept describes a reusable value type.
type TypeConcept struct {
	Name        string     `json:"name"`
	Parent      string     `json:"parent"`
	Type        Type       `json:"type"`
	Inline      bool       `json:"inline"`
	Abstract    bool       `json:"abstract,omitempty"`
	Description string     `json:"description,omitempty"`
	Properties  []Property `json:"properties,omitempty"`
}

// Property is one named member of a prototype or struct type.
type Property struct {
	Name        string `json:"name"`
	Type        Type   `json:"type"`
	Optional    bool   `json:"optional,omitempty"`
	Override    bool   `json:"override,omitempty"`
	Description string `json:"description,omitempty"`
}

// Type is either a simple reference to a named type (Name set, Complex nil) or
// a structural expression (Complex set).
type Type struct {
	Name    string
	Complex *ComplexType
}

// Simple returns a reference to a named type.
func Simple(name string) Type { return Type{Name: name} }

// Complex wraps a structural type expression.
func Complex(c *ComplexType) Type { return Type{Complex: c} }

// IsSimple reports whether t is a plain name reference.
func (t Type) IsSimple() bool { return t.Complex == nil }

// IsZero reports whether t carries neither a name nor an expression.
func (t Type) IsZero() bool { return t.Name == "" && t.Complex == nil }

// ComplexKind enumerates structural type expressions.
type ComplexKind int

const (
	ComplexArray ComplexKind = iota
	ComplexDictionary
	ComplexTuple
	ComplexUnion
	ComplexTypeRef // a type with a description attached
	ComplexLiteral
	ComplexStruct
)

var complexKindNames = [...]string{
	ComplexArray:      "array",
	ComplexDictionary: "dictionary",
	ComplexTuple:      "tuple",
	ComplexUnion:      "union",
	ComplexTypeRef:    "type",
	ComplexLiteral:    "literal",
	ComplexStruct:     "struct",
}

func (k ComplexKind) String() string {
	if k >= 0 && int(k) < len(complexKindNames) {
		return complexKindNames[k]
	}
	return "unknown"
}

func parseComplexKind(s string) (ComplexKind, bool) {
	for k, name := range complexKindNames {
		if name == s {
			return ComplexKind(k), true
		}
	}
	return 0, false
}

// ComplexType is a structural type expression. Which fields are meaningful
// depends on Kind:
//
//	array:      Value
//	dictionary: Key, Value
//	tuple:      Values
//	union:      Options, FullFormat
//	type:       Value, Description
//	literal:    Literal, Description
//	struct:     -
type ComplexType struct {
	Kind        ComplexKind
	Key         Type
	Value       Type
	Values      []Type
	Options     []Type
	FullFormat  bool
	Description string
	Literal     Literal
}

// NewArray returns array[value].
func NewArray(value Type) *ComplexType { return &ComplexType{Kind: ComplexArray, Value: value} }

// NewDictionary returns dictionary[key -> value].
func NewDictionary(key, value Type) *ComplexType {
	return &ComplexType{Kind: ComplexDictionary, Key: key, Value: value}
}

// NewTuple returns a fixed-arity tuple.
func NewTuple(values ...Type) *ComplexType { return &ComplexType{Kind: ComplexTuple, Values: values} }

// NewUnion returns a union of options.
func NewUnion(options ...Type) *ComplexType { return &ComplexType{Kind: ComplexUnion, Options: options} }

// NewTypeRef returns a described wrapper around value.
func NewTypeRef(value Type, description string) *ComplexType {
	return &ComplexType{Kind: ComplexTypeRef, Value: value, Description: description}
}

// NewLiteral returns a literal type.
func NewLiteral(l Literal) *ComplexType { return &ComplexType{Kind: ComplexLiteral, Literal: l} }

// NewStruct returns the struct marker.
func NewStruct() *ComplexType { return &ComplexType{Kind: ComplexStruct} }

// LiteralKind enumerates literal value kinds.
type LiteralKind int

const (
	LiteralString LiteralKind = iota
	LiteralUInt
	LiteralInt
	LiteralFloat
	LiteralBool
)

// Literal is a constant value. Text holds the string content, the number
// literal verbatim, or "true"/"false".
type Literal struct {
	Kind LiteralKind
	Text string
}

// StringLiteral returns a string literal.
func StringLiteral(s string) Literal { return Literal{Kind: LiteralString, Text: s} }
