package benchmarks_test

import (
	"bytes"
	stdjson "encoding/json"
	"fmt"
	"testing"

	"github.com/bpbin/rawexplorer"
	"github.com/bpbin/rawexplorer/dedup"
)

// ---- Helpers ----

// generateDataRaw returns a data.raw shaped document with numRecipes recipes.
// Names repeat heavily across recipes, like real dumps.
func generateDataRaw(numRecipes int) []byte {
	var buf bytes.Buffer
	buf.Grow(numRecipes * 256)
	buf.WriteString(`{"recipe-category":{"smelting":{"type":"recipe-category","name":"smelting"},"crafting":{"type":"recipe-category","name":"crafting"}},"recipe":{`)
	for i := 0; i < numRecipes; i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		category := "crafting"
		if i%3 == 0 {
			category = "smelting"
		}
		fmt.Fprintf(&buf, `"r%d":{"type":"recipe","name":"r%d","category":%q,"energy_required":%d.5,`, i, i, category, i%7)
		fmt.Fprintf(&buf, `"icon":"__base__/graphics/icons/item-%d.png","enabled":%t,`, i%50, i%2 == 0)
		fmt.Fprintf(&buf, `"results":[{"type":"item","name":"item-%d","amount":%d}],`, i%50, 1+i%4)
		buf.WriteString(`"crafting_tint":[1,0.5,0.25],"localised_name":["item-name.plate",["entity-name.furnace"]]}`)
	}
	buf.WriteString(`}}`)
	return buf.Bytes()
}

var drivers = []struct {
	name   string
	driver rawexplorer.JSONDriver
}{
	{"go-json", mustDriver("go-json")},
	{"encoding-json", mustDriver("encoding/json")},
}

func mustDriver(name string) rawexplorer.JSONDriver {
	d, ok := rawexplorer.DriverByName(name)
	if !ok {
		panic("unknown driver " + name)
	}
	return d
}

// ---- Build ----

func Benchmark_Build(b *testing.B) {
	for _, size := range []int{100, 5000} {
		data := generateDataRaw(size)
		for _, d := range drivers {
			b.Run(fmt.Sprintf("%s/recipes=%d", d.name, size), func(b *testing.B) {
				b.ReportAllocs()
				b.SetBytes(int64(len(data)))
				for i := 0; i < b.N; i++ {
					if _, err := dedup.Build(d.driver.NewBytes(data), rawexplorer.BuildOpt{}); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func Benchmark_Build_Enforced(b *testing.B) {
	data := generateDataRaw(5000)
	opt := rawexplorer.BuildOpt{OnDuplicateKey: rawexplorer.Error, MaxDepth: 64}
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		if _, err := dedup.Build(rawexplorer.JSONBytes(data), opt); err != nil {
			b.Fatal(err)
		}
	}
}

// Building from an already decoded tree, as callers holding map[string]any do.
func Benchmark_FromAny(b *testing.B) {
	var tree any
	if err := stdjson.Unmarshal(generateDataRaw(5000), &tree); err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = dedup.FromAny(tree)
	}
}

// ---- Subtree ----

func Benchmark_BuildAt_LastRecipe(b *testing.B) {
	const n = 5000
	data := generateDataRaw(n)
	path := []string{"recipe", fmt.Sprintf("r%d", n-1)}
	b.Run("stream", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if _, err := dedup.BuildAt(rawexplorer.JSONBytes(data), path, rawexplorer.BuildOpt{}); err != nil {
				b.Fatal(err)
			}
		}
	})
	b.Run("full", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			v, err := dedup.Parse(data)
			if err != nil {
				b.Fatal(err)
			}
			recipes, _ := v.Get(path[0])
			if _, ok := recipes.Get(path[1]); !ok {
				b.Fatal("missing recipe")
			}
		}
	})
}

// ---- Sharing ----

func Benchmark_CloneAndEqual(b *testing.B) {
	v, err := dedup.Parse(generateDataRaw(5000))
	if err != nil {
		b.Fatal(err)
	}
	b.Run("clone", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = v.Clone()
		}
	})
	b.Run("equal-shared", func(b *testing.B) {
		c := v.Clone()
		for i := 0; i < b.N; i++ {
			if !dedup.Equal(v, c) {
				b.Fatal("clone differs")
			}
		}
	})
}
