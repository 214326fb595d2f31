package dedup_test

import (
	stdjson "encoding/json"
	"strings"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	rawexplorer "github.com/bpbin/rawexplorer"
	"github.com/bpbin/rawexplorer/dedup"
)

const sampleDump = `{
	"recipe": {
		"iron-plate": {"name": "iron-plate", "type": "recipe", "energy_required": 3.2, "results": [{"type": "item", "name": "iron-plate", "amount": 1}]},
		"copper-plate": {"name": "copper-plate", "type": "recipe", "energy_required": 3.2, "enabled": true}
	},
	"recipe-category": {"smelting": {"name": "smelting", "type": "recipe-category"}},
	"utility-constants": {"default": {"big": 123456789012345678901234567890, "exp": 1.50e+10, "nothing": null}}
}`

func stringData(s string) *byte { return unsafe.StringData(s) }

func TestParse_InternsValuesAndKeys(t *testing.T) {
	root, err := dedup.Parse([]byte(sampleDump))
	require.NoError(t, err)

	recipes, ok := root.Get("recipe")
	require.True(t, ok)
	iron, _ := recipes.Get("iron-plate")
	copper, _ := recipes.Get("copper-plate")

	ironType, _ := iron.Get("type")
	copperType, _ := copper.Get("type")
	a, _ := ironType.Str()
	b, _ := copperType.Str()
	require.Equal(t, "recipe", a)
	assert.Same(t, stringData(a), stringData(b), "equal string values must share storage")

	// "recipe" also occurs as a key at the root.
	keys := root.Keys()
	require.Contains(t, keys, "recipe")
	for _, k := range keys {
		if k == "recipe" {
			assert.Same(t, stringData(a), stringData(k), "keys and values share the interner")
		}
	}

	ironKeys := iron.Keys()
	copperKeys := copper.Keys()
	require.Equal(t, "name", ironKeys[1])
	require.Equal(t, "name", copperKeys[2])
	assert.Same(t, stringData(ironKeys[1]), stringData(copperKeys[2]))
}

func TestParse_NumbersVerbatim(t *testing.T) {
	root := dedup.MustParse(sampleDump)
	c, _ := root.Get("utility-constants")
	d, _ := c.Get("default")

	big, _ := d.Get("big")
	n, ok := big.Number()
	require.True(t, ok)
	assert.Equal(t, dedup.Number("123456789012345678901234567890"), n)

	exp, _ := d.Get("exp")
	n, _ = exp.Number()
	assert.Equal(t, "1.50e+10", n.String())
	assert.False(t, n.IsInteger())

	nothing, ok := d.Get("nothing")
	require.True(t, ok)
	assert.True(t, nothing.IsNull())
}

func TestEqual_IgnoresKeyOrder(t *testing.T) {
	a := dedup.MustParse(`{"b": 1, "a": [true, null, "x"], "c": {"z": 1, "y": 2}}`)
	b := dedup.MustParse(`{"c": {"y": 2, "z": 1}, "a": [true, null, "x"], "b": 1}`)
	assert.True(t, dedup.Equal(a, b))
	assert.Equal(t, dedup.Hash(a), dedup.Hash(b))

	c := dedup.MustParse(`{"c": {"y": 2, "z": 1}, "a": [null, true, "x"], "b": 1}`)
	assert.False(t, dedup.Equal(a, c))
	assert.NotEqual(t, dedup.Hash(a), dedup.Hash(c))
}

func TestEqual_NumbersCompareByLiteral(t *testing.T) {
	assert.False(t, dedup.Equal(dedup.MustParse(`1.0`), dedup.MustParse(`1`)))
	assert.True(t, dedup.Equal(dedup.MustParse(`1.0`), dedup.Num("1.0")))
}

func TestClone_SharesStorage(t *testing.T) {
	root := dedup.MustParse(sampleDump)
	clone := root.Clone()
	assert.True(t, dedup.SameStorage(root, clone))

	r1, _ := root.Get("recipe")
	r2, _ := clone.Get("recipe")
	assert.True(t, dedup.SameStorage(r1, r2), "descendants are shared, not copied")

	iron, _ := r1.Get("iron-plate")
	results, _ := iron.Get("results")
	copied := results
	assert.True(t, dedup.SameStorage(results, copied))
}

func TestRoundTrip_JSON(t *testing.T) {
	root := dedup.MustParse(sampleDump)
	text, err := root.MarshalJSON()
	require.NoError(t, err)

	again, err := dedup.Parse(text)
	require.NoError(t, err)
	assert.True(t, dedup.Equal(root, again))

	// encoding/json sees valid JSON too.
	var plain any
	require.NoError(t, stdjson.Unmarshal(text, &plain))
}

func TestRoundTrip_FromAny(t *testing.T) {
	var plain any
	dec := stdjson.NewDecoder(strings.NewReader(sampleDump))
	dec.UseNumber()
	require.NoError(t, dec.Decode(&plain))

	fromTree := dedup.FromAny(plain)
	fromTokens := dedup.MustParse(sampleDump)
	assert.True(t, dedup.Equal(fromTree, fromTokens))
	assert.True(t, dedup.Equal(fromTokens, dedup.FromAny(dedup.ToAny(fromTokens))))
}

func TestFromAny_YAMLTree(t *testing.T) {
	var plain any
	require.NoError(t, yaml.Unmarshal([]byte("a: 1\nb: [x, x]\n3: true\n"), &plain))
	v := dedup.FromAny(plain)
	assert.Equal(t, []string{"3", "a", "b"}, v.Keys())

	b, _ := v.Get("b")
	x0, _ := b.Index(0)
	x1, _ := b.Index(1)
	s0, _ := x0.Str()
	s1, _ := x1.Str()
	assert.Same(t, stringData(s0), stringData(s1))
}

func TestMarshalYAML(t *testing.T) {
	v := dedup.MustParse(`{"b": [1, 2.5, "s"], "a": null, "c": false}`)
	out, err := yaml.Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, "a: null\nb:\n    - 1\n    - 2.5\n    - s\nc: false\n", string(out))
}

func TestObjectOf_LastDuplicateWins(t *testing.T) {
	v := dedup.ObjectOf(
		dedup.Member{Key: "k", Value: dedup.Num("1")},
		dedup.Member{Key: "a", Value: dedup.Null()},
		dedup.Member{Key: "k", Value: dedup.Num("2")},
	)
	require.Equal(t, 2, v.Len())
	k, _ := v.Get("k")
	n, _ := k.Number()
	assert.Equal(t, dedup.Number("2"), n)

	parsed := dedup.MustParse(`{"k": 1, "a": null, "k": 2}`)
	assert.True(t, dedup.Equal(v, parsed))
}

func TestBuild_DuplicateKeyError(t *testing.T) {
	_, err := dedup.Build(rawexplorer.JSONBytes([]byte(`{"a": {"k": 1, "k": 2}}`)), rawexplorer.BuildOpt{OnDuplicateKey: rawexplorer.Error})
	require.Error(t, err)
	iss, ok := rawexplorer.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, rawexplorer.CodeDuplicateKey, iss[0].Code)
	assert.Equal(t, "/a/k", iss[0].Path)
}

func TestBuild_DuplicateKeyWarn(t *testing.T) {
	var got []rawexplorer.Issue
	v, err := dedup.Build(rawexplorer.JSONBytes([]byte(`{"k": 1, "k": 2}`)), rawexplorer.BuildOpt{
		OnDuplicateKey: rawexplorer.Warn,
		IssueSink:      func(is rawexplorer.Issue) { got = append(got, is) },
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "/k", got[0].Path)
	k, _ := v.Get("k")
	assert.Equal(t, `2`, k.String())
}

func TestBuild_MaxDepth(t *testing.T) {
	_, err := dedup.Build(rawexplorer.JSONBytes([]byte(`{"a": [[1]]}`)), rawexplorer.BuildOpt{MaxDepth: 2})
	require.Error(t, err)
	iss, ok := rawexplorer.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, "/a/0", iss[0].Path)

	_, err = dedup.Build(rawexplorer.JSONBytes([]byte(`{"a": [[1]]}`)), rawexplorer.BuildOpt{MaxDepth: 3})
	require.NoError(t, err)
}

func TestBuild_Errors(t *testing.T) {
	for name, in := range map[string]string{
		"empty":     ``,
		"truncated": `{"a": [1, 2`,
		"trailing":  `{} {}`,
		"garbage":   `{"a": @}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := dedup.Parse([]byte(in))
			assert.Error(t, err)
		})
	}
}

func TestBuild_StdlibDriverMatches(t *testing.T) {
	viaGoJSON, err := dedup.Build(rawexplorer.CurrentJSONDriver().NewBytes([]byte(sampleDump)), rawexplorer.BuildOpt{})
	require.NoError(t, err)
	viaStdlib, err := dedup.Build(rawexplorer.StdlibJSONDriver().NewBytes([]byte(sampleDump)), rawexplorer.BuildOpt{})
	require.NoError(t, err)
	assert.True(t, dedup.Equal(viaGoJSON, viaStdlib))
}

func TestScalarsAndIterators(t *testing.T) {
	v := dedup.MustParse(`[true, "s", 3, {"b": 2, "a": 1}]`)
	assert.Equal(t, dedup.KindArray, v.Kind())
	assert.Equal(t, 4, v.Len())

	var kinds []dedup.Kind
	for _, it := range v.Items() {
		kinds = append(kinds, it.Kind())
	}
	assert.Equal(t, []dedup.Kind{dedup.KindBool, dedup.KindString, dedup.KindNumber, dedup.KindObject}, kinds)

	obj, _ := v.Index(3)
	var keys []string
	for k := range obj.Members() {
		keys = append(keys, k)
	}
	assert.Equal(t, []string{"a", "b"}, keys)

	_, ok := v.Index(4)
	assert.False(t, ok)
	_, ok = v.Index(-1)
	assert.False(t, ok)
	_, ok = v.Get("a")
	assert.False(t, ok)
}

func TestCollect(t *testing.T) {
	st := dedup.Collect(dedup.MustParse(`{"a": ["a", "b"], "b": {"a": 1}}`))
	assert.Equal(t, 6, st.Nodes)
	assert.Equal(t, 2, st.Objects)
	assert.Equal(t, 1, st.Arrays)
	assert.Equal(t, 5, st.Strings)
	assert.Equal(t, 2, st.Distinct)
	assert.Equal(t, 3, st.MaxDepth)
}

func TestBuildAt(t *testing.T) {
	data := []byte(`{"recipe": {"iron-plate": {"results": [{"name": "iron-plate"}], "a/b": 1}}, "tail": [1, 2]}`)
	build := func(path ...string) (dedup.Value, error) {
		return dedup.BuildAt(rawexplorer.JSONBytes(data), path, rawexplorer.BuildOpt{})
	}

	v, err := build("recipe", "iron-plate", "results", "0")
	require.NoError(t, err)
	assert.Equal(t, `{"name":"iron-plate"}`, v.String())

	v, err = build("recipe", "iron-plate", "a/b")
	require.NoError(t, err)
	assert.Equal(t, "1", v.String())

	whole, err := build()
	require.NoError(t, err)
	assert.True(t, dedup.Equal(dedup.MustParse(string(data)), whole))

	_, err = build("recipe", "copper-plate")
	iss, ok := rawexplorer.AsIssues(err)
	require.True(t, ok, "%v", err)
	assert.Equal(t, rawexplorer.CodeNotFound, iss[0].Code)
	assert.Equal(t, "/recipe/copper-plate", iss[0].Path)

	_, err = build("tail", "5")
	iss, ok = rawexplorer.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, "/tail/5", iss[0].Path)
}

func TestBuildAt_EnforcesSkippedTokens(t *testing.T) {
	data := []byte(`{"a": {"k": 1, "k": 2}, "b": true}`)
	_, err := dedup.BuildAt(rawexplorer.JSONBytes(data), []string{"b"}, rawexplorer.BuildOpt{OnDuplicateKey: rawexplorer.Error})
	iss, ok := rawexplorer.AsIssues(err)
	require.True(t, ok, "%v", err)
	assert.Equal(t, rawexplorer.CodeDuplicateKey, iss[0].Code)
	assert.Equal(t, "/a/k", iss[0].Path)
}
