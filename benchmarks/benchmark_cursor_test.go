package benchmarks_test

import (
	"testing"

	"github.com/bpbin/rawexplorer/cursor"
	"github.com/bpbin/rawexplorer/dedup"
	"github.com/bpbin/rawexplorer/explorer"
	"github.com/bpbin/rawexplorer/schema"
)

func loadIndex(tb testing.TB) *schema.Index {
	tb.Helper()
	doc, err := schema.LoadFile("../testdata/prototype-api.json")
	if err != nil {
		tb.Fatalf("schema load failed: %v", err)
	}
	return schema.NewIndex(doc)
}

// Annotating every node of a dump is what a tree view does on "expand all".
func Benchmark_WalkAnnotate(b *testing.B) {
	ix := loadIndex(b)
	root, err := dedup.Parse(generateDataRaw(1000))
	if err != nil {
		b.Fatal(err)
	}
	for _, m := range []explorer.Mode{explorer.Normal, explorer.All} {
		b.Run(m.String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				err := explorer.Walk(root, cursor.New(ix), -1, func(n explorer.Node) error {
					_ = explorer.Annotate(n.Cursor, m)
					return nil
				})
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func Benchmark_CursorSteps(b *testing.B) {
	ix := loadIndex(b)
	root := cursor.New(ix)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		c := root.StepProperty("recipe").StepProperty("iron-plate").StepProperty("results").StepIndex(0, 1).StepProperty("amount")
		if c.State() != cursor.BuiltIn {
			b.Fatal(c.Label())
		}
	}
}
