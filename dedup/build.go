package dedup

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	rawexplorer "github.com/bpbin/rawexplorer"
	"github.com/bpbin/rawexplorer/internal/stream"
)

// interner maps string content to its canonical copy for the lifetime of one
// build.
type interner map[string]string

func (in interner) intern(s string) string {
	if c, ok := in[s]; ok {
		return c
	}
	in[s] = s
	return s
}

// Build consumes exactly one JSON value from src and returns its interned tree.
// Enforcement from opt (depth, bytes, duplicate keys) is applied on the fly.
func Build(src rawexplorer.Source, opt rawexplorer.BuildOpt) (Value, error) {
	return build(rawexplorer.EnforceSource(src, opt, opt.IssueSink))
}

// BuildAt builds only the value addressed by path, given as unescaped
// reference tokens. Everything before it is skipped without being
// materialised and nothing after it is read. Enforcement covers the tokens
// consumed, skipped ones included. A path that does not exist yields Issues
// with code not_found.
func BuildAt(src rawexplorer.Source, path []string, opt rawexplorer.BuildOpt) (Value, error) {
	src = rawexplorer.EnforceSource(src, opt, opt.IssueSink)
	sub, err := stream.Seek(src, path)
	if err != nil {
		var nf *stream.NotFoundError
		if errors.As(err, &nf) {
			return Value{}, rawexplorer.Issues{{
				Code:    rawexplorer.CodeNotFound,
				Path:    pointer(path[:nf.Step+1]),
				Message: nf.Reason,
				Offset:  src.Location(),
			}}
		}
		return Value{}, fmt.Errorf("dedup: %w", rawexplorer.FromEngineError(err, src.Location()))
	}
	return build(sub)
}

func build(src rawexplorer.Source) (Value, error) {
	b := &builder{src: src, strs: interner{}}

	tok, err := b.next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Value{}, fmt.Errorf("dedup: empty input: %w", io.ErrUnexpectedEOF)
		}
		return Value{}, err
	}
	v, err := b.value(tok)
	if err != nil {
		return Value{}, err
	}
	if tok, err := b.src.NextToken(); err == nil {
		return Value{}, rawexplorer.Issues{{
			Code:    rawexplorer.CodeParseError,
			Path:    "/",
			Message: fmt.Sprintf("trailing %s token after document", tok.Kind),
			Offset:  tok.Offset,
		}}
	} else if !errors.Is(err, io.EOF) {
		return Value{}, fmt.Errorf("dedup: %w", rawexplorer.FromEngineError(err, b.src.Location()))
	}

	logrus.Debugf("dedup: built document with %d distinct strings", len(b.strs))
	return v, nil
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func pointer(path []string) string {
	var sb strings.Builder
	for _, tok := range path {
		sb.WriteByte('/')
		sb.WriteString(pointerEscaper.Replace(tok))
	}
	return sb.String()
}

// Parse builds a tree from JSON bytes with the current driver.
func Parse(data []byte) (Value, error) {
	return Build(rawexplorer.JSONBytes(data), rawexplorer.BuildOpt{})
}

// ParseReader builds a tree from a JSON stream with the current driver.
func ParseReader(r io.Reader) (Value, error) {
	return Build(rawexplorer.JSONReader(r), rawexplorer.BuildOpt{})
}

// MustParse is like Parse but panics on error. Intended for tests and fixtures.
func MustParse(data string) Value {
	v, err := Build(rawexplorer.JSONReader(bytes.NewReader([]byte(data))), rawexplorer.BuildOpt{})
	if err != nil {
		panic(err)
	}
	return v
}

type builder struct {
	src  rawexplorer.Source
	strs interner
}

func (b *builder) next() (rawexplorer.Token, error) {
	tok, err := b.src.NextToken()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return tok, err
		}
		return tok, fmt.Errorf("dedup: %w", rawexplorer.FromEngineError(err, b.src.Location()))
	}
	return tok, nil
}

// nextInValue is next for positions where the document cannot end yet.
func (b *builder) nextInValue() (rawexplorer.Token, error) {
	tok, err := b.next()
	if errors.Is(err, io.EOF) {
		return tok, fmt.Errorf("dedup: %w", io.ErrUnexpectedEOF)
	}
	return tok, err
}

func (b *builder) value(tok rawexplorer.Token) (Value, error) {
	switch tok.Kind {
	case rawexplorer.TokenBeginObject:
		return b.object()
	case rawexplorer.TokenBeginArray:
		return b.array()
	case rawexplorer.TokenString:
		return Value{kind: KindString, s: b.strs.intern(tok.String)}, nil
	case rawexplorer.TokenNumber:
		return Value{kind: KindNumber, s: tok.Number}, nil
	case rawexplorer.TokenBool:
		return Bool(tok.Bool), nil
	case rawexplorer.TokenNull:
		return Null(), nil
	default:
		return Value{}, b.unexpected(tok)
	}
}

func (b *builder) object() (Value, error) {
	var members []Member
	sorted := true
	for {
		tok, err := b.nextInValue()
		if err != nil {
			return Value{}, err
		}
		if tok.Kind == rawexplorer.TokenEndObject {
			break
		}
		if tok.Kind != rawexplorer.TokenKey {
			return Value{}, b.unexpected(tok)
		}
		key := b.strs.intern(tok.String)
		vt, err := b.nextInValue()
		if err != nil {
			return Value{}, err
		}
		v, err := b.value(vt)
		if err != nil {
			return Value{}, err
		}
		if n := len(members); n > 0 && members[n-1].Key >= key {
			sorted = false
		}
		members = append(members, Member{Key: key, Value: v})
	}
	if !sorted {
		members = normalizeMembers(members)
	}
	return Value{kind: KindObject, obj: &object{members: members}}, nil
}

func (b *builder) array() (Value, error) {
	var items []Value
	for {
		tok, err := b.nextInValue()
		if err != nil {
			return Value{}, err
		}
		if tok.Kind == rawexplorer.TokenEndArray {
			break
		}
		v, err := b.value(tok)
		if err != nil {
			return Value{}, err
		}
		items = append(items, v)
	}
	return Value{kind: KindArray, arr: &array{items: items}}, nil
}

func (b *builder) unexpected(tok rawexplorer.Token) error {
	return rawexplorer.Issues{{
		Code:    rawexplorer.CodeParseError,
		Path:    "/",
		Message: fmt.Sprintf("unexpected %s token", tok.Kind),
		Offset:  tok.Offset,
	}}
}
