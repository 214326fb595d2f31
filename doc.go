// Package rawexplorer is the core of a type-annotating explorer for large
// game-data dumps (data.raw) described by a prototype API document.
//
// The module is organised as:
//
// - dedup: an immutable, string-interned JSON value tree with O(1) copies
// - schema: the prototype API document, its lookup index and doc links
// - cursor: the immutable schema position stepped alongside a value walk
// - explorer: JSON Pointer paths, paired walks and display annotations
//
// This root package holds the token-source SPI shared by the builders
// (Source, JSONDriver, JSONBytes, JSONReader), build options and the Issues
// error model. Drivers live under source/; the default is go-json.
// dedup.BuildAt streams past everything outside one path and builds only
// that value. The rawexplorer command under cmd/ wraps all of this in a CLI.
//
// Typical usage:
//
//	root, err := dedup.Build(rawexplorer.JSONBytes(dump), rawexplorer.BuildOpt{})
//	doc, err := schema.LoadBytes(api)
//	ix := schema.NewIndex(doc)
//	v, c, err := explorer.Resolve(root, cursor.New(ix), path)
//	fmt.Println(c.Label(), c.DocLink())
package rawexplorer
