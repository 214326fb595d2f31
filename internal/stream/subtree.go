// Package stream positions a token source on one value of a larger document
// so that only that value has to be materialised.
package stream

import (
	"errors"
	"io"

	eng "github.com/bpbin/rawexplorer/internal/engine"
)

// Subtree returns the tokens of a single value: first, then the remaining
// tokens up to the matching end delimiter. It reports io.EOF afterwards.
type Subtree struct {
	inner eng.TokenSource
	first *eng.Token
	depth int
	done  bool
}

// NewSubtree constructs a view over the value whose first token has already
// been read from inner.
func NewSubtree(inner eng.TokenSource, first eng.Token) *Subtree {
	return &Subtree{inner: inner, first: &first}
}

func (s *Subtree) NextToken() (eng.Token, error) {
	if s.done {
		return eng.Token{}, io.EOF
	}
	var tok eng.Token
	if s.first != nil {
		tok, s.first = *s.first, nil
	} else {
		var err error
		if tok, err = s.inner.NextToken(); err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return eng.Token{}, err
		}
	}
	switch tok.Kind {
	case eng.KindBeginObject, eng.KindBeginArray:
		s.depth++
	case eng.KindEndObject, eng.KindEndArray:
		s.depth--
	}
	if s.depth <= 0 {
		s.done = true
	}
	return tok, nil
}

func (s *Subtree) Location() int64 { return s.inner.Location() }

// Skip consumes the rest of the value that starts with first.
func Skip(src eng.TokenSource, first eng.Token) error {
	if first.Kind != eng.KindBeginObject && first.Kind != eng.KindBeginArray {
		return nil
	}
	for depth := 1; depth > 0; {
		tok, err := src.NextToken()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return io.ErrUnexpectedEOF
			}
			return err
		}
		switch tok.Kind {
		case eng.KindBeginObject, eng.KindBeginArray:
			depth++
		case eng.KindEndObject, eng.KindEndArray:
			depth--
		}
	}
	return nil
}
