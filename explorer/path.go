// Package explorer walks a data.raw value tree and a type cursor together
// and renders the cursor as a type annotation.
package explorer

import (
	"fmt"
	"strconv"
	"strings"
)

// Step is one reference token of a Path. Key holds the unescaped token;
// tokens that look like array indices also carry Index.
type Step struct {
	Key     string
	Index   int
	IsIndex bool
}

// Path addresses a value inside a tree, root first.
type Path []Step

// ParsePointer parses an RFC 6901 JSON Pointer. Only "" addresses the root;
// "/" addresses the member with the empty key.
func ParsePointer(s string) (Path, error) {
	if s == "" {
		return nil, nil
	}
	if s[0] != '/' {
		return nil, fmt.Errorf("json pointer %q: must start with '/'", s)
	}
	raw := strings.Split(s[1:], "/")
	p := make(Path, 0, len(raw))
	for _, tok := range raw {
		key, err := unescape(tok)
		if err != nil {
			return nil, fmt.Errorf("json pointer %q: %w", s, err)
		}
		p = append(p, keyStep(key))
	}
	return p, nil
}

func unescape(tok string) (string, error) {
	if !strings.Contains(tok, "~") {
		return tok, nil
	}
	var b strings.Builder
	for i := 0; i < len(tok); i++ {
		c := tok[i]
		if c != '~' {
			b.WriteByte(c)
			continue
		}
		if i+1 == len(tok) {
			return "", fmt.Errorf("dangling '~' in %q", tok)
		}
		switch tok[i+1] {
		case '0':
			b.WriteByte('~')
		case '1':
			b.WriteByte('/')
		default:
			return "", fmt.Errorf("invalid escape '~%c' in %q", tok[i+1], tok)
		}
		i++
	}
	return b.String(), nil
}

func keyStep(key string) Step {
	st := Step{Key: key}
	if n, ok := arrayIndex(key); ok {
		st.Index, st.IsIndex = n, true
	}
	return st
}

// arrayIndex accepts "0" and decimal numbers without leading zeros.
func arrayIndex(s string) (int, bool) {
	if s == "" || len(s) > 1 && s[0] == '0' {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Field returns a copy of p extended by an object key.
func (p Path) Field(name string) Path {
	return append(p[:len(p):len(p)], Step{Key: name})
}

// Index returns a copy of p extended by an array index.
func (p Path) Index(i int) Path {
	return append(p[:len(p):len(p)], Step{Key: strconv.Itoa(i), Index: i, IsIndex: true})
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// Pointer renders p as a JSON Pointer; the root renders as "".
func (p Path) Pointer() string {
	var b strings.Builder
	for _, st := range p {
		b.WriteByte('/')
		b.WriteString(pointerEscaper.Replace(st.Key))
	}
	return b.String()
}

// String renders p for display: the pointer, or "/" for the root.
func (p Path) String() string {
	if len(p) == 0 {
		return "/"
	}
	return p.Pointer()
}
