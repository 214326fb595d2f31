package schema

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// DefaultDocHost is the documentation host used when no base URL is set.
const DefaultDocHost = "https://lua-api.factorio.com"

// Index answers name lookups over a Document in O(1). It is immutable after
// NewIndex returns and safe for concurrent use.
type Index struct {
	doc *Document

	typeToProto map[string]int
	nameToProto map[string]int
	nameToType  map[string]int

	docBase string

	// overwritten registrations, reported by Lint
	dupTypenames []string
	dupProtos    []string
	dupTypes     []string
}

// Option configures an Index.
type Option func(*Index)

// WithDocBase sets the documentation base URL. A trailing slash is trimmed.
func WithDocBase(base string) Option {
	return func(ix *Index) { ix.docBase = strings.TrimRight(base, "/") }
}

// NewIndex builds the lookup tables for doc. A nil doc yields an empty index.
// Later duplicates overwrite earlier entries.
func NewIndex(doc *Document, opts ...Option) *Index {
	if doc == nil {
		doc = &Document{}
	}
	ix := &Index{
		doc:         doc,
		typeToProto: make(map[string]int, len(doc.Prototypes)),
		nameToProto: make(map[string]int, len(doc.Prototypes)),
		nameToType:  make(map[string]int, len(doc.Types)),
	}
	for i, p := range doc.Prototypes {
		if p.Typename != "" {
			if _, dup := ix.typeToProto[p.Typename]; dup {
				ix.dupTypenames = append(ix.dupTypenames, p.Typename)
			}
			ix.typeToProto[p.Typename] = i
		}
		if _, dup := ix.nameToProto[p.Name]; dup {
			ix.dupProtos = append(ix.dupProtos, p.Name)
		}
		ix.nameToProto[p.Name] = i
	}
	for i, t := range doc.Types {
		if _, dup := ix.nameToType[t.Name]; dup {
			ix.dupTypes = append(ix.dupTypes, t.Name)
		}
		ix.nameToType[t.Name] = i
	}
	for _, o := range opts {
		o(ix)
	}
	if ix.docBase == "" {
		version := doc.ApplicationVersion
		if version == "" {
			version = "latest"
		}
		ix.docBase = DefaultDocHost + "/" + version
	}

	logrus.Debugf("schema: indexed %d prototypes (%d typenames) and %d types for version %q",
		len(ix.nameToProto), len(ix.typeToProto), len(ix.nameToType), doc.ApplicationVersion)
	return ix
}

// Document returns the indexed document. Callers must not modify it.
func (ix *Index) Document() *Document { return ix.doc }

// Version returns the application version of the document.
func (ix *Index) Version() string { return ix.doc.ApplicationVersion }

// DocBase returns the documentation base URL.
func (ix *Index) DocBase() string { return ix.docBase }

// ProtoByType returns the prototype whose typename is typename.
func (ix *Index) ProtoByType(typename string) (*Prototype, bool) {
	i, ok := ix.typeToProto[typename]
	if !ok {
		return nil, false
	}
	return &ix.doc.Prototypes[i], true
}

// Proto returns the prototype named name.
func (ix *Index) Proto(name string) (*Prototype, bool) {
	i, ok := ix.nameToProto[name]
	if !ok {
		return nil, false
	}
	return &ix.doc.Prototypes[i], true
}

// TypeConcept returns the type concept named name.
func (ix *Index) TypeConcept(name string) (*TypeConcept, bool) {
	i, ok := ix.nameToType[name]
	if !ok {
		return nil, false
	}
	return &ix.doc.Types[i], true
}

// IsProto reports whether name is a prototype name.
func (ix *Index) IsProto(name string) bool {
	_, ok := ix.nameToProto[name]
	return ok
}

// IsType reports whether name is a type concept name.
func (ix *Index) IsType(name string) bool {
	_, ok := ix.nameToType[name]
	return ok
}

// Counts reports how many prototypes, typenames and type concepts are
// indexed after duplicates collapse.
func (ix *Index) Counts() (protos, typenames, types int) {
	return len(ix.nameToProto), len(ix.typeToProto), len(ix.nameToType)
}
