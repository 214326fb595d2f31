package engine

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sliceSource replays tokens; Location is the offset of the last token.
type sliceSource struct {
	toks []Token
	pos  int
}

func (s *sliceSource) NextToken() (Token, error) {
	if s.pos >= len(s.toks) {
		return Token{}, io.EOF
	}
	t := s.toks[s.pos]
	s.pos++
	return t, nil
}

func (s *sliceSource) Location() int64 {
	if s.pos == 0 {
		return 0
	}
	return s.toks[s.pos-1].Offset
}

func obj() Token         { return Token{Kind: KindBeginObject} }
func endObj() Token      { return Token{Kind: KindEndObject} }
func arr() Token         { return Token{Kind: KindBeginArray} }
func endArr() Token      { return Token{Kind: KindEndArray} }
func key(k string) Token { return Token{Kind: KindKey, String: k} }
func num(n string) Token { return Token{Kind: KindNumber, Number: n} }
func str(s string) Token { return Token{Kind: KindString, String: s} }

func at(t Token, off int64) Token {
	t.Offset = off
	return t
}

func drain(ts TokenSource) error {
	for {
		if _, err := ts.NextToken(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

func TestFramer_ClassifiesKeys(t *testing.T) {
	var f Framer
	var got []Kind
	f.OpenObject()
	got = append(got, f.Str()) // "a"
	f.OpenArray()
	got = append(got, f.Str()) // "x"
	f.Close()
	got = append(got, f.Str()) // "b"
	got = append(got, f.Str()) // "y"
	assert.Equal(t, 1, f.Depth())
	f.Close()
	assert.Equal(t, []Kind{KindKey, KindString, KindKey, KindString}, got)
	assert.Equal(t, 0, f.Depth())
}

func TestEnforce_Disabled(t *testing.T) {
	assert.False(t, EnforceOptions{}.Enabled())
	assert.True(t, EnforceOptions{MaxDepth: 1}.Enabled())
	assert.True(t, EnforceOptions{OnDuplicate: DupWarn}.Enabled())
}

func TestEnforce_DuplicateKeyError(t *testing.T) {
	src := &sliceSource{toks: []Token{
		obj(), key("a"), obj(), key("k"), num("1"), key("k"), num("2"), endObj(), endObj(),
	}}
	err := drain(WrapWithEnforcement(src, EnforceOptions{OnDuplicate: DupError}))
	var ie IssueError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, "duplicate_key", ie.Code)
	assert.Equal(t, "/a/k", ie.Path)
	assert.Equal(t, "key 'k' duplicated at /a/k", ie.Error())
}

func TestEnforce_DuplicateKeyWarn(t *testing.T) {
	src := &sliceSource{toks: []Token{
		obj(), key("a~b"), num("1"), key("a~b"), arr(), endArr(), key("c"), str("s"), endObj(),
	}}
	var got []SimpleIssue
	err := drain(WrapWithEnforcement(src, EnforceOptions{
		OnDuplicate: DupWarn,
		IssueSink:   func(si SimpleIssue) { got = append(got, si) },
	}))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "/a~0b", got[0].Path)
}

func TestEnforce_SameKeyInSiblingsIsFine(t *testing.T) {
	src := &sliceSource{toks: []Token{
		arr(), obj(), key("k"), num("1"), endObj(), obj(), key("k"), num("2"), endObj(), endArr(),
	}}
	assert.NoError(t, drain(WrapWithEnforcement(src, EnforceOptions{OnDuplicate: DupError})))
}

func TestEnforce_MaxDepth(t *testing.T) {
	toks := []Token{obj(), key("a"), arr(), num("1"), arr(), endArr(), endArr(), endObj()}

	assert.NoError(t, drain(WrapWithEnforcement(&sliceSource{toks: toks}, EnforceOptions{MaxDepth: 3})))

	err := drain(WrapWithEnforcement(&sliceSource{toks: toks}, EnforceOptions{MaxDepth: 2}))
	var ie IssueError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, "parse_error", ie.Code)
	assert.Equal(t, "/a/1", ie.Path)

	err = drain(WrapWithEnforcement(&sliceSource{toks: toks}, EnforceOptions{MaxDepth: 0}))
	assert.NoError(t, err)
}

func TestEnforce_MaxBytes(t *testing.T) {
	src := &sliceSource{toks: []Token{
		at(obj(), 1), at(key("a"), 5), at(str("xxxxxxxx"), 16), at(key("b"), 20), at(num("1"), 24), at(endObj(), 25),
	}}
	err := drain(WrapWithEnforcement(src, EnforceOptions{MaxBytes: 18}))
	var ie IssueError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, "truncated", ie.Code)
	assert.Equal(t, "/b", ie.Path)
}

func TestJoinJSONPointer(t *testing.T) {
	assert.Equal(t, "/a~1b/m~0n", joinJSONPointer(joinJSONPointer("", "a/b"), "m~n"))
	assert.Equal(t, "/", normalizeIssuePath(""))
}
