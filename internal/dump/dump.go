// Package dump prints a stylesheet as an indented tree for debugging.
package dump

import (
	"fmt"
	"strings"

	"github.com/xlab/treeprint"

	"github.com/yacobolo/cssdom/decl"
	"github.com/yacobolo/cssdom/writer"
)

// Options controls what the tree shows.
type Options struct {
	// Locations prefixes every rule with its source location when known.
	Locations bool
	// Declarations lists the declarations of style and font-face rules.
	Declarations bool
}

type locator interface {
	SourceLocation() (decl.SourceLocation, bool)
}

// Tree renders ss as a tree.
func Tree(ss *decl.Stylesheet, opts Options) string {
	root := treeprint.New()
	branch := root.AddBranch(fmt.Sprintf("stylesheet (%d rules)", ss.RuleCount()))
	for _, rule := range ss.Rules() {
		addRule(branch, rule, opts)
	}
	return root.String()
}

var labelSettings = writer.NewSettings(writer.CSS30, false)

func addRule(parent treeprint.Tree, rule decl.Rule, opts Options) {
	label := Label(rule)

	var node treeprint.Tree
	meta := ""
	if opts.Locations {
		if l, ok := rule.(locator); ok {
			if loc, ok := l.SourceLocation(); ok {
				meta = loc.String()
			}
		}
	}
	if meta != "" {
		node = parent.AddMetaBranch(meta, label)
	} else {
		node = parent.AddBranch(label)
	}

	switch r := rule.(type) {
	case *decl.StyleRule:
		if opts.Declarations {
			addDeclarations(node, r.Declarations())
		}
	case *decl.FontFaceRule:
		if opts.Declarations {
			addDeclarations(node, r.Declarations())
		}
	case decl.Container:
		for _, child := range r.Rules() {
			addRule(node, child, opts)
		}
	}
}

func addDeclarations(node treeprint.Tree, decls []*decl.Declaration) {
	for _, d := range decls {
		node.AddNode(d.Render(labelSettings))
	}
}

// Label returns a one-line description of rule.
func Label(rule decl.Rule) string {
	switch r := rule.(type) {
	case *decl.StyleRule:
		return "style " + r.SelectorText(labelSettings)
	case *decl.MediaRule:
		return "@media " + r.QueryText(labelSettings)
	case *decl.SupportsRule:
		cond, err := r.ConditionText(labelSettings, 0)
		if err != nil {
			return "@supports <invalid condition>"
		}
		return "@supports " + cond
	case *decl.ImportRule:
		parts := []string{"@import", r.URL()}
		if m := r.Media(); m != nil && !m.IsEmpty() {
			parts = append(parts, m.String())
		}
		return strings.Join(parts, " ")
	case *decl.FontFaceRule:
		return "@font-face"
	default:
		return fmt.Sprintf("%T", rule)
	}
}
