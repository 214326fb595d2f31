package stream

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	eng "github.com/bpbin/rawexplorer/internal/engine"
	gojsonsrc "github.com/bpbin/rawexplorer/source/gojson"
)

const doc = `{"skip": {"deep": [1, [2, 3], {"x": null}]}, "list": [10, {"a": "b"}, [true]], "k": "v", "k": "w"}`

func src() eng.TokenSource { return gojsonsrc.NewBytes([]byte(doc)) }

func render(t *testing.T, ts eng.TokenSource) string {
	t.Helper()
	var parts []string
	for {
		tok, err := ts.NextToken()
		if errors.Is(err, io.EOF) {
			return strings.Join(parts, " ")
		}
		require.NoError(t, err)
		switch tok.Kind {
		case eng.KindKey, eng.KindString:
			parts = append(parts, tok.String)
		case eng.KindNumber:
			parts = append(parts, tok.Number)
		default:
			parts = append(parts, tok.Kind.String())
		}
	}
}

func TestSeek(t *testing.T) {
	tests := []struct {
		path []string
		want string
	}{
		{nil, "begin_object skip begin_object deep begin_array 1 begin_array 2 3 end_array begin_object x null end_object end_array end_object list begin_array 10 begin_object a b end_object begin_array bool end_array end_array k v k w end_object"},
		{[]string{"list"}, "begin_array 10 begin_object a b end_object begin_array bool end_array end_array"},
		{[]string{"list", "1"}, "begin_object a b end_object"},
		{[]string{"list", "1", "a"}, "b"},
		{[]string{"list", "0"}, "10"},
		{[]string{"skip", "deep", "2", "x"}, "null"},
		{[]string{"k"}, "v"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.path, "/"), func(t *testing.T) {
			sub, err := Seek(src(), tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, render(t, sub))
		})
	}
}

func TestSeek_NotFound(t *testing.T) {
	tests := []struct {
		path []string
		step int
	}{
		{[]string{"nope"}, 0},
		{[]string{"list", "3"}, 1},
		{[]string{"list", "-1"}, 1},
		{[]string{"list", "a"}, 1},
		{[]string{"k", "x"}, 1},
		{[]string{"skip", "deep", "1", "5"}, 3},
	}
	for _, tt := range tests {
		_, err := Seek(src(), tt.path)
		var nf *NotFoundError
		require.True(t, errors.As(err, &nf), "%v: %v", tt.path, err)
		assert.Equal(t, tt.step, nf.Step, tt.path)
	}
}

func TestSeek_Truncated(t *testing.T) {
	_, err := Seek(gojsonsrc.NewBytes([]byte(`{"a": [1, 2`)), []string{"b"})
	assert.Error(t, err)
	_, err = Seek(gojsonsrc.NewBytes(nil), nil)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestSkip_Primitive(t *testing.T) {
	s := src()
	require.NoError(t, Skip(s, eng.Token{Kind: eng.KindNumber}))
	tok, err := s.NextToken()
	require.NoError(t, err)
	assert.Equal(t, eng.KindBeginObject, tok.Kind, "skipping a primitive consumes nothing")
}
