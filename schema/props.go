package schema

// OwnedProperty is a property together with the entry that declares it.
type OwnedProperty struct {
	*Property
	Owner string
	// Shadowed is set when a later entry in the inherited list declares the
	// same name.
	Shadowed bool
}

// Props returns the full inherited property list of the prototype or type
// concept called name: ancestors first (root-first), the entry's own properties
// last. Properties redeclared by a descendant appear twice; use LookupProp to
// get the effective one.
//
// The result is unresolved (false) when name, or any parent on its chain, is
// unknown. When the parent chain loops, the walk stops at the first repeated
// name and the properties collected up to that point are returned.
func (ix *Index) Props(name string) ([]*Property, bool) {
	owned, ok := ix.InheritedProps(name)
	if !ok {
		return nil, false
	}
	out := make([]*Property, len(owned))
	for i, op := range owned {
		out[i] = op.Property
	}
	return out, true
}

// InheritedProps is Props with owner and shadowing information.
func (ix *Index) InheritedProps(name string) ([]OwnedProperty, bool) {
	type level struct {
		owner string
		props []Property
	}
	var chain []level
	visited := make(map[string]struct{})
	for cur := name; cur != ""; {
		if _, seen := visited[cur]; seen {
			break
		}
		visited[cur] = struct{}{}
		props, parent, ok := ix.entry(cur)
		if !ok {
			return nil, false
		}
		chain = append(chain, level{owner: cur, props: props})
		cur = parent
	}

	var out []OwnedProperty
	for i := len(chain) - 1; i >= 0; i-- {
		for k := range chain[i].props {
			out = append(out, OwnedProperty{Property: &chain[i].props[k], Owner: chain[i].owner})
		}
	}
	last := make(map[string]int, len(out))
	for i, op := range out {
		if prev, ok := last[op.Name]; ok {
			out[prev].Shadowed = true
		}
		last[op.Name] = i
	}
	return out, true
}

// entry resolves name as a prototype first, then as a type concept.
func (ix *Index) entry(name string) (props []Property, parent string, ok bool) {
	if p, ok := ix.Proto(name); ok {
		return p.Properties, p.Parent, true
	}
	if t, ok := ix.TypeConcept(name); ok {
		return t.Properties, t.Parent, true
	}
	return nil, "", false
}

// LookupProp returns the effective property prop of name, which is the last
// match in the inherited list.
func (ix *Index) LookupProp(name, prop string) (*Property, bool) {
	props, ok := ix.Props(name)
	if !ok {
		return nil, false
	}
	for i := len(props) - 1; i >= 0; i-- {
		if props[i].Name == prop {
			return props[i], true
		}
	}
	return nil, false
}

// CustomProperties returns the custom property declaration of the entry called
// name. Only prototypes carry one; it is not inherited.
func (ix *Index) CustomProperties(name string) (*CustomProperties, bool) {
	p, ok := ix.Proto(name)
	if !ok || p.CustomProperties == nil {
		return nil, false
	}
	return p.CustomProperties, true
}
