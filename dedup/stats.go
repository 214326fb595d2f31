package dedup

// Stats summarises a tree.
type Stats struct {
	Nodes    int // every value, containers included
	Objects  int
	Arrays   int
	Strings  int // string values plus object keys
	Distinct int // distinct string contents
	MaxDepth int
}

// Collect walks v once and returns its statistics.
func Collect(v Value) Stats {
	var st Stats
	seen := map[string]struct{}{}
	collect(v, 1, &st, seen)
	st.Distinct = len(seen)
	return st
}

func collect(v Value, depth int, st *Stats, seen map[string]struct{}) {
	st.Nodes++
	st.MaxDepth = max(st.MaxDepth, depth)
	switch v.kind {
	case KindString:
		st.Strings++
		seen[v.s] = struct{}{}
	case KindArray:
		st.Arrays++
		for _, it := range v.arr.items {
			collect(it, depth+1, st, seen)
		}
	case KindObject:
		st.Objects++
		for _, m := range v.obj.members {
			st.Strings++
			seen[m.Key] = struct{}{}
			collect(m.Value, depth+1, st, seen)
		}
	}
}
