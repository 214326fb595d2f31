package schema

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Lint finding codes.
const (
	LintDanglingParent    = "dangling_parent"
	LintParentCycle       = "parent_cycle"
	LintDuplicateTypename = "duplicate_typename"
	LintDuplicateName     = "duplicate_name"
)

// LintError is one structural problem in the document.
type LintError struct {
	Entry   string
	Code    string
	Message string
}

func (e *LintError) Error() string { return fmt.Sprintf("%s: %s: %s", e.Entry, e.Code, e.Message) }

// Lint reports structural problems that degrade navigation: parents that do
// not resolve, parent chains that loop, and names registered twice. It
// returns nil for a clean document, otherwise a *multierror.Error of
// *LintError.
func (ix *Index) Lint() error {
	var result *multierror.Error
	for _, name := range ix.dupTypenames {
		result = multierror.Append(result, &LintError{Entry: name, Code: LintDuplicateTypename, Message: "typename registered by more than one prototype; the last one wins"})
	}
	for _, name := range ix.dupProtos {
		result = multierror.Append(result, &LintError{Entry: name, Code: LintDuplicateName, Message: "prototype name declared twice"})
	}
	for _, name := range ix.dupTypes {
		result = multierror.Append(result, &LintError{Entry: name, Code: LintDuplicateName, Message: "type name declared twice"})
	}
	for _, p := range ix.doc.Prototypes {
		if err := ix.lintChain(p.Name, p.Parent); err != nil {
			result = multierror.Append(result, err)
		}
	}
	for _, t := range ix.doc.Types {
		if err := ix.lintChain(t.Name, t.Parent); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

func (ix *Index) lintChain(name, parent string) *LintError {
	path := []string{name}
	visited := map[string]struct{}{name: {}}
	for cur := parent; cur != ""; {
		path = append(path, cur)
		if _, seen := visited[cur]; seen {
			return &LintError{Entry: name, Code: LintParentCycle, Message: strings.Join(path, " -> ")}
		}
		visited[cur] = struct{}{}
		_, next, ok := ix.entry(cur)
		if !ok {
			return &LintError{Entry: name, Code: LintDanglingParent, Message: fmt.Sprintf("parent %q is not defined", cur)}
		}
		cur = next
	}
	return nil
}
