// Package decl is the mutable CSS object model: a stylesheet is an ordered
// tree of rules, and every rule knows how to render itself back to CSS text
// under a writer.Settings policy.
//
// The concrete rule types are StyleRule, ImportRule, FontFaceRule,
// MediaRule and SupportsRule. MediaRule and SupportsRule are containers and
// own their nested rules exclusively.
//
// Nothing in this package is safe for concurrent mutation. Build the tree
// and render it from one goroutine, or guard the document externally.
package decl

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/yacobolo/cssdom/writer"
)

// ErrInvalidArgument is returned for caller errors such as nil nodes or
// negative insertion indexes. These are never collected as parse errors.
var ErrInvalidArgument = errors.New("invalid argument")

// Rule is a node of the stylesheet tree.
type Rule interface {
	writer.VersionAware

	// Render returns the CSS text of the rule at the given nesting level.
	// An empty string means the rule contributes nothing under s.
	Render(s writer.Settings, indentLevel int) (string, error)
}

// Container is a rule holding nested rules.
type Container interface {
	Rule
	Rules() []Rule
}

// ConditionMember is one atom of an @supports condition.
type ConditionMember interface {
	Render(s writer.Settings, indentLevel int) (string, error)
}

// SourceLocation is the position of a node in its source text.
// Lines and columns are 1-based.
type SourceLocation struct {
	FirstLine   int
	FirstColumn int
	LastLine    int
	LastColumn  int
}

func (l SourceLocation) String() string {
	return fmt.Sprintf("%d:%d-%d:%d", l.FirstLine, l.FirstColumn, l.LastLine, l.LastColumn)
}

// located is embedded by every rule that can remember where it was read.
type located struct {
	loc *SourceLocation
}

// SetSourceLocation stores a copy of loc. A nil loc clears it.
func (l *located) SetSourceLocation(loc *SourceLocation) {
	if loc == nil {
		l.loc = nil
		return
	}
	c := *loc
	l.loc = &c
}

// SourceLocation returns the stored location, if any.
func (l *located) SourceLocation() (SourceLocation, bool) {
	if l.loc == nil {
		return SourceLocation{}, false
	}
	return *l.loc, true
}

type equaler[T any] interface {
	Equal(T) bool
}

// nodeEqual compares two nodes structurally. Nodes that define Equal decide
// for themselves, everything else falls back to deep equality.
func nodeEqual[T any](x, y T) bool {
	if e, ok := any(x).(equaler[T]); ok {
		return e.Equal(y)
	}
	return reflect.DeepEqual(x, y)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
