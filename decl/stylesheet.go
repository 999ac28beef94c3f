package decl

import (
	"fmt"
	"io"
	"strings"

	"github.com/yacobolo/cssdom/writer"
)

// Stylesheet is the root of the tree: an ordered list of top-level rules.
type Stylesheet struct {
	rules nodeList[Rule]
}

// NewStylesheet returns an empty stylesheet.
func NewStylesheet() *Stylesheet {
	return &Stylesheet{}
}

// AddRule appends a top-level rule.
func (ss *Stylesheet) AddRule(rule Rule) error {
	return ss.rules.add(rule)
}

// InsertRule places rule at index. An index past the end appends.
func (ss *Stylesheet) InsertRule(index int, rule Rule) error {
	return ss.rules.insert(index, rule)
}

// RemoveRule deletes the first top-level rule equal to rule.
func (ss *Stylesheet) RemoveRule(rule Rule) bool {
	if isNil(rule) {
		return false
	}
	return ss.rules.remove(rule)
}

// RemoveRuleAt deletes the rule at index and reports whether one existed.
func (ss *Stylesheet) RemoveRuleAt(index int) bool {
	return ss.rules.removeAt(index)
}

// RemoveAllRules empties the stylesheet.
func (ss *Stylesheet) RemoveAllRules() bool {
	return ss.rules.removeAll()
}

// RuleAt returns the top-level rule at index.
func (ss *Stylesheet) RuleAt(index int) (Rule, bool) {
	return ss.rules.at(index)
}

// Rules returns a copy of the top-level rules.
func (ss *Stylesheet) Rules() []Rule {
	return ss.rules.all()
}

// RuleCount counts top-level rules only.
func (ss *Stylesheet) RuleCount() int {
	return ss.rules.len()
}

func (ss *Stylesheet) HasRules() bool {
	return ss.rules.len() > 0
}

// Render returns the CSS text of the whole stylesheet. In pretty mode
// consecutive non-empty rules are separated by a blank line.
func (ss *Stylesheet) Render(s writer.Settings) (string, error) {
	var sb strings.Builder
	first := true
	for i, rule := range ss.rules.items {
		text, err := rule.Render(s, 0)
		if err != nil {
			return "", fmt.Errorf("render rule %d: %w", i, err)
		}
		if text == "" {
			continue
		}
		if !first && !s.OptimizedOutput {
			sb.WriteByte('\n')
		}
		first = false
		sb.WriteString(text)
	}
	return sb.String(), nil
}

// Write renders the stylesheet to w.
func (ss *Stylesheet) Write(w io.Writer, s writer.Settings) error {
	text, err := ss.Render(s)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, text)
	return err
}

// Walk visits every rule depth-first, parents before children. Top-level
// rules have depth 0. A non-nil error from fn stops the walk.
func (ss *Stylesheet) Walk(fn func(rule Rule, depth int) error) error {
	return walkRules(ss.rules.items, 0, fn)
}

func walkRules(rules []Rule, depth int, fn func(Rule, int) error) error {
	for _, rule := range rules {
		if err := fn(rule, depth); err != nil {
			return err
		}
		if c, ok := rule.(Container); ok {
			if err := walkRules(c.Rules(), depth+1, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// StyleRules returns the top-level style rules.
func (ss *Stylesheet) StyleRules() []*StyleRule { return rulesOf[*StyleRule](ss) }

// MediaRules returns the top-level @media rules.
func (ss *Stylesheet) MediaRules() []*MediaRule { return rulesOf[*MediaRule](ss) }

// SupportsRules returns the top-level @supports rules.
func (ss *Stylesheet) SupportsRules() []*SupportsRule { return rulesOf[*SupportsRule](ss) }

// ImportRules returns the @import rules.
func (ss *Stylesheet) ImportRules() []*ImportRule { return rulesOf[*ImportRule](ss) }

// FontFaceRules returns the top-level @font-face rules.
func (ss *Stylesheet) FontFaceRules() []*FontFaceRule { return rulesOf[*FontFaceRule](ss) }

func rulesOf[T Rule](ss *Stylesheet) []T {
	var out []T
	for _, rule := range ss.rules.items {
		if r, ok := rule.(T); ok {
			out = append(out, r)
		}
	}
	return out
}

// Equal compares the top-level rules in order.
func (ss *Stylesheet) Equal(other *Stylesheet) bool {
	if other == nil {
		return false
	}
	return ss.rules.equal(&other.rules)
}
