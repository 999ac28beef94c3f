package decl

import (
	"fmt"
	"strings"

	"github.com/yacobolo/cssdom/writer"
)

// StyleRule is a qualified rule: selectors followed by a declaration block.
// Selectors are stored verbatim.
type StyleRule struct {
	located
	DeclarationList
	selectors []string
}

// NewStyleRule returns a rule for the given selectors.
func NewStyleRule(selectors ...string) (*StyleRule, error) {
	r := &StyleRule{}
	for _, sel := range selectors {
		if err := r.AddSelector(sel); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// AddSelector appends a selector. Blank selectors are rejected.
func (r *StyleRule) AddSelector(selector string) error {
	selector = strings.TrimSpace(selector)
	if selector == "" {
		return fmt.Errorf("empty selector: %w", ErrInvalidArgument)
	}
	r.selectors = append(r.selectors, selector)
	return nil
}

// Selectors returns a copy of the selectors.
func (r *StyleRule) Selectors() []string {
	out := make([]string, len(r.selectors))
	copy(out, r.selectors)
	return out
}

// SelectorCount returns the number of selectors.
func (r *StyleRule) SelectorCount() int {
	return len(r.selectors)
}

// SelectorText joins the selectors the way Render does.
func (r *StyleRule) SelectorText(s writer.Settings) string {
	if s.OptimizedOutput {
		return strings.Join(r.selectors, ",")
	}
	return strings.Join(r.selectors, ", ")
}

// MinimumVersion implements Rule.
func (r *StyleRule) MinimumVersion() writer.Version {
	return writer.CSS10
}

// Render implements Rule.
func (r *StyleRule) Render(s writer.Settings, indentLevel int) (string, error) {
	if err := s.CheckVersion(r); err != nil {
		return "", err
	}
	if s.RemoveUnnecessaryCode && !r.HasDeclarations() {
		return "", nil
	}

	text := r.SelectorText(s) + r.renderBlock(s, indentLevel)
	if !s.OptimizedOutput {
		text += "\n"
	}
	return text, nil
}

// Equal compares selectors and declarations.
func (r *StyleRule) Equal(other Rule) bool {
	o, ok := other.(*StyleRule)
	if !ok || o == nil {
		return false
	}
	if len(r.selectors) != len(o.selectors) {
		return false
	}
	for i := range r.selectors {
		if r.selectors[i] != o.selectors[i] {
			return false
		}
	}
	return r.decls.equal(&o.decls)
}
