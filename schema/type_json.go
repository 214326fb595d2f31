package schema

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	j "github.com/goccy/go-json"
)

// ErrUnknownComplexType is returned when a complex_type value is not recognised.
var ErrUnknownComplexType = errors.New("schema: unknown complex_type")

type complexJSON struct {
	ComplexType string       `json:"complex_type"`
	Key         *Type        `json:"key,omitempty"`
	Value       j.RawMessage `json:"value,omitempty"`
	Values      []Type       `json:"values,omitempty"`
	Options     []Type       `json:"options,omitempty"`
	FullFormat  bool         `json:"full_format,omitempty"`
	Description string       `json:"description,omitempty"`
}

// UnmarshalJSON accepts either a type name or a complex type object.
func (t *Type) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := j.Unmarshal(data, &name); err != nil {
			return err
		}
		*t = Simple(name)
		return nil
	}

	var raw complexJSON
	if err := j.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("schema: type: %w", err)
	}
	kind, ok := parseComplexKind(raw.ComplexType)
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownComplexType, raw.ComplexType)
	}
	c := &ComplexType{
		Kind:        kind,
		Values:      raw.Values,
		Options:     raw.Options,
		FullFormat:  raw.FullFormat,
		Description: raw.Description,
	}
	if raw.Key != nil {
		c.Key = *raw.Key
	}
	if len(raw.Value) > 0 {
		var err error
		if kind == ComplexLiteral {
			c.Literal, err = parseLiteral(raw.Value)
		} else {
			err = j.Unmarshal(raw.Value, &c.Value)
		}
		if err != nil {
			return fmt.Errorf("schema: %s value: %w", kind, err)
		}
	}
	*t = Complex(c)
	return nil
}

// MarshalJSON writes the same shape UnmarshalJSON reads.
func (t Type) MarshalJSON() ([]byte, error) {
	if t.Complex == nil {
		return j.Marshal(t.Name)
	}
	c := t.Complex
	raw := complexJSON{
		ComplexType: c.Kind.String(),
		Values:      c.Values,
		Options:     c.Options,
		FullFormat:  c.FullFormat,
		Description: c.Description,
	}
	switch c.Kind {
	case ComplexDictionary:
		key := c.Key
		raw.Key = &key
		fallthrough
	case ComplexArray, ComplexTypeRef:
		v, err := c.Value.MarshalJSON()
		if err != nil {
			return nil, err
		}
		raw.Value = v
	case ComplexLiteral:
		raw.Value = c.Literal.json()
	}
	return j.Marshal(raw)
}

func parseLiteral(data []byte) (Literal, error) {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0:
		return Literal{}, errors.New("empty literal")
	case data[0] == '"':
		var s string
		if err := j.Unmarshal(data, &s); err != nil {
			return Literal{}, err
		}
		return StringLiteral(s), nil
	case string(data) == "true" || string(data) == "false":
		return Literal{Kind: LiteralBool, Text: string(data)}, nil
	}
	var n j.Number
	if err := j.Unmarshal(data, &n); err != nil {
		return Literal{}, err
	}
	text := n.String()
	switch {
	case strings.ContainsAny(text, ".eE"):
		return Literal{Kind: LiteralFloat, Text: text}, nil
	case strings.HasPrefix(text, "-"):
		return Literal{Kind: LiteralInt, Text: text}, nil
	default:
		return Literal{Kind: LiteralUInt, Text: text}, nil
	}
}

func (l Literal) json() j.RawMessage {
	if l.Kind == LiteralString {
		b, _ := j.Marshal(l.Text)
		return b
	}
	return j.RawMessage(l.Text)
}
