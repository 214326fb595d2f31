package dedup

import (
	"strings"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// MarshalJSON emits v as plain JSON: object keys in sorted order, numbers
// verbatim.
func (v Value) MarshalJSON() ([]byte, error) { return appendJSON(nil, v), nil }

// UnmarshalJSON builds v from JSON with a fresh interner.
func (v *Value) UnmarshalJSON(data []byte) error {
	nv, err := Parse(data)
	if err != nil {
		return err
	}
	*v = nv
	return nil
}

func appendJSON(buf []byte, v Value) []byte {
	switch v.kind {
	case KindBool:
		if v.b {
			return append(buf, "true"...)
		}
		return append(buf, "false"...)
	case KindNumber:
		return append(buf, v.s...)
	case KindString:
		return appendString(buf, v.s)
	case KindArray:
		buf = append(buf, '[')
		for i, it := range v.arr.items {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = appendJSON(buf, it)
		}
		return append(buf, ']')
	case KindObject:
		buf = append(buf, '{')
		for i, m := range v.obj.members {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = appendString(buf, m.Key)
			buf = append(buf, ':')
			buf = appendJSON(buf, m.Value)
		}
		return append(buf, '}')
	default:
		return append(buf, "null"...)
	}
}

func appendString(buf []byte, s string) []byte {
	// Marshaling a plain string cannot fail.
	q, _ := j.MarshalNoEscape(s)
	return append(buf, q...)
}

// MarshalYAML renders v as a YAML node tree with the same key order as JSON.
func (v Value) MarshalYAML() (any, error) { return yamlNode(v), nil }

func yamlNode(v Value) *yaml.Node {
	switch v.kind {
	case KindBool:
		val := "false"
		if v.b {
			val = "true"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: val}
	case KindNumber:
		tag := "!!int"
		if strings.ContainsAny(v.s, ".eE") {
			tag = "!!float"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: v.s}
	case KindString:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.s}
	case KindArray:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, it := range v.arr.items {
			n.Content = append(n.Content, yamlNode(it))
		}
		return n
	case KindObject:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, m := range v.obj.members {
			n.Content = append(n.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: m.Key},
				yamlNode(m.Value))
		}
		return n
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}
