package explorer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/bpbin/rawexplorer/cursor"
	"github.com/bpbin/rawexplorer/dedup"
)

// Mode selects which type annotations are shown.
type Mode uint8

const (
	// Normal shows prototypes, named types and complex types.
	Normal Mode = iota
	// All additionally shows built-in types and unknown positions.
	All
	// Off shows only the data.raw root.
	Off
	// Debug dumps the raw cursor state.
	Debug
)

var modeNames = [...]string{Normal: "normal", All: "all", Off: "off", Debug: "debug"}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "Mode(" + strconv.Itoa(int(m)) + ")"
}

// Next cycles Normal, All, Off, Debug and back to Normal.
func (m Mode) Next() Mode {
	switch m {
	case Normal:
		return All
	case All:
		return Off
	case Off:
		return Debug
	default:
		return Normal
	}
}

// ParseMode parses a mode name case-insensitively.
func ParseMode(s string) (Mode, error) {
	for i, name := range modeNames {
		if strings.EqualFold(s, name) {
			return Mode(i), nil
		}
	}
	return Normal, fmt.Errorf("unknown display mode %q (want one of %s)", s, strings.Join(modeNames[:], ", "))
}

// Link is a documentation link for one type name.
type Link struct {
	Name string
	URL  string
}

// Annotation is the rendered type of a position.
type Annotation struct {
	Label string
	Links []Link
	Shown bool
}

func (a Annotation) String() string {
	if !a.Shown {
		return ""
	}
	return a.Label
}

var debugDump = spew.ConfigState{Indent: " ", DisableMethods: true, DisablePointerAddresses: true, SortKeys: true}

// Annotate renders c for display in mode m.
func Annotate(c cursor.Cursor, m Mode) Annotation {
	st := c.State()
	switch {
	case st == cursor.Unknown && (m == All || m == Debug):
		return Annotation{Label: "?", Shown: true}
	case m == Debug:
		return Annotation{Label: strings.TrimSpace(debugDump.Sdump(c.Kind())), Shown: true}
	case st == cursor.DataRaw:
		return Annotation{Label: c.Label(), Shown: true}
	case st == cursor.TypeOrProto && (m == Normal || m == All),
		st == cursor.BuiltIn && m == All,
		st == cursor.Complex && (m == Normal || m == All):
		return Annotation{Label: c.Label(), Links: links(c), Shown: true}
	default:
		return Annotation{}
	}
}

func links(c cursor.Cursor) []Link {
	ix := c.Index()
	var out []Link
	seen := make(map[string]struct{})
	for _, name := range c.Names() {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		if url := ix.DocLink(name); url != "" {
			out = append(out, Link{Name: name, URL: url})
		}
	}
	return out
}

// Summary renders the value part of a tree row: scalars as JSON, arrays
// with their length and objects with their member count.
func Summary(v dedup.Value) string {
	switch v.Kind() {
	case dedup.KindArray:
		return "[" + strconv.Itoa(v.Len()) + "]"
	case dedup.KindObject:
		return "{" + strconv.Itoa(v.Len()) + "}"
	default:
		return v.String()
	}
}
