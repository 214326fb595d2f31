// Package gojson adapts github.com/goccy/go-json's streaming decoder to the
// engine token interface.
package gojson

import (
	"bytes"
	"io"
	"strconv"

	j "github.com/goccy/go-json"

	eng "github.com/bpbin/rawexplorer/internal/engine"
)

type source struct {
	dec    *j.Decoder
	frames eng.Framer
	offset int64
}

// NewReader wraps an io.Reader into an engine.TokenSource for JSON using go-json.
func NewReader(r io.Reader) eng.TokenSource {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	return &source{dec: dec, offset: -1}
}

// NewBytes wraps a byte slice into an engine.TokenSource for JSON using go-json.
func NewBytes(b []byte) eng.TokenSource { return NewReader(bytes.NewReader(b)) }

func (s *source) NextToken() (eng.Token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		return eng.Token{}, err
	}
	s.offset = s.dec.InputOffset()

	switch v := tok.(type) {
	case j.Delim:
		switch v {
		case '{':
			s.frames.OpenObject()
			return eng.Token{Kind: eng.KindBeginObject, Offset: s.offset}, nil
		case '}':
			s.frames.Close()
			return eng.Token{Kind: eng.KindEndObject, Offset: s.offset}, nil
		case '[':
			s.frames.OpenArray()
			return eng.Token{Kind: eng.KindBeginArray, Offset: s.offset}, nil
		default:
			s.frames.Close()
			return eng.Token{Kind: eng.KindEndArray, Offset: s.offset}, nil
		}
	case string:
		return eng.Token{Kind: s.frames.Str(), String: v, Offset: s.offset}, nil
	case bool:
		s.frames.Value()
		return eng.Token{Kind: eng.KindBool, Bool: v, Offset: s.offset}, nil
	case j.Number:
		s.frames.Value()
		return eng.Token{Kind: eng.KindNumber, Number: string(v), Offset: s.offset}, nil
	case float64:
		s.frames.Value()
		return eng.Token{Kind: eng.KindNumber, Number: strconv.FormatFloat(v, 'g', -1, 64), Offset: s.offset}, nil
	}
	s.frames.Value()
	return eng.Token{Kind: eng.KindNull, Offset: s.offset}, nil
}

func (s *source) Location() int64 { return s.offset }
