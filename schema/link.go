package schema

// DocLink returns the documentation URL for name: prototypes link to
// <base>/prototypes/<name>.html, non-inline type concepts to
// <base>/types/<name>.html. Inline types and unknown names have no page and
// yield "".
func (ix *Index) DocLink(name string) string {
	if ix.IsProto(name) {
		return ix.docBase + "/prototypes/" + name + ".html"
	}
	if t, ok := ix.TypeConcept(name); ok && !t.Inline {
		return ix.docBase + "/types/" + name + ".html"
	}
	return ""
}

// IsBuiltin reports whether the type concept name is built in: its declared
// type is the builtin marker, or a simple name whose own concept declares the
// marker (exactly one indirection, like ResolvesToString).
func (ix *Index) IsBuiltin(name string) bool {
	t, ok := ix.TypeConcept(name)
	if !ok || !t.Type.IsSimple() {
		return false
	}
	if t.Type.Name == BuiltinMarker {
		return true
	}
	alias, ok := ix.TypeConcept(t.Type.Name)
	return ok && alias.Type.IsSimple() && alias.Type.Name == BuiltinMarker
}

// ResolvesToString reports whether t is the string type, directly or through
// one type concept whose declared type is string.
func (ix *Index) ResolvesToString(t Type) bool {
	if !t.IsSimple() {
		return false
	}
	if t.Name == "string" {
		return true
	}
	c, ok := ix.TypeConcept(t.Name)
	return ok && c.Type.IsSimple() && c.Type.Name == "string"
}
