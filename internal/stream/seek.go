package stream

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	eng "github.com/bpbin/rawexplorer/internal/engine"
)

// NotFoundError reports the first path step that did not match.
type NotFoundError struct {
	Step   int
	Reason string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("path step %d: %s", e.Step, e.Reason)
}

// Seek reads src up to the value addressed by path and returns a source
// over that value alone. Object steps match keys, array steps are decimal
// indices. Siblings are skipped token by token without being built. With
// duplicate keys the first occurrence is selected.
func Seek(src eng.TokenSource, path []string) (eng.TokenSource, error) {
	tok, err := next(src)
	if err != nil {
		return nil, err
	}
	for i, want := range path {
		switch tok.Kind {
		case eng.KindBeginObject:
			if tok, err = seekMember(src, want); err != nil {
				return nil, stepError(err, i)
			}
		case eng.KindBeginArray:
			idx, convErr := strconv.Atoi(want)
			if convErr != nil || idx < 0 {
				return nil, &NotFoundError{Step: i, Reason: fmt.Sprintf("%q is not an array index", want)}
			}
			if tok, err = seekElement(src, idx); err != nil {
				return nil, stepError(err, i)
			}
		default:
			return nil, &NotFoundError{Step: i, Reason: "cannot descend into " + tok.Kind.String()}
		}
	}
	return NewSubtree(src, tok), nil
}

func stepError(err error, step int) error {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return &NotFoundError{Step: step, Reason: nf.Reason}
	}
	return err
}

func seekMember(src eng.TokenSource, key string) (eng.Token, error) {
	for {
		tok, err := next(src)
		if err != nil {
			return eng.Token{}, err
		}
		if tok.Kind == eng.KindEndObject {
			return eng.Token{}, &NotFoundError{Reason: fmt.Sprintf("no member %q", key)}
		}
		name := tok.String
		if tok, err = next(src); err != nil {
			return eng.Token{}, err
		}
		if name == key {
			return tok, nil
		}
		if err := Skip(src, tok); err != nil {
			return eng.Token{}, err
		}
	}
}

func seekElement(src eng.TokenSource, idx int) (eng.Token, error) {
	for n := 0; ; n++ {
		tok, err := next(src)
		if err != nil {
			return eng.Token{}, err
		}
		if tok.Kind == eng.KindEndArray {
			return eng.Token{}, &NotFoundError{Reason: fmt.Sprintf("index %d out of range (length %d)", idx, n)}
		}
		if n == idx {
			return tok, nil
		}
		if err := Skip(src, tok); err != nil {
			return eng.Token{}, err
		}
	}
}

func next(src eng.TokenSource) (eng.Token, error) {
	tok, err := src.NextToken()
	if errors.Is(err, io.EOF) {
		return eng.Token{}, io.ErrUnexpectedEOF
	}
	return tok, err
}
