package decl

import (
	"fmt"
	"strings"

	"github.com/yacobolo/cssdom/writer"
)

// Declaration is a single "property: value" pair. The value is kept
// verbatim and never interpreted.
type Declaration struct {
	Property  string
	Value     string
	Important bool
}

// NewDeclaration validates and builds a declaration.
func NewDeclaration(property, value string, important bool) (*Declaration, error) {
	property = strings.TrimSpace(property)
	value = strings.TrimSpace(value)
	if property == "" {
		return nil, fmt.Errorf("declaration without property: %w", ErrInvalidArgument)
	}
	if value == "" {
		return nil, fmt.Errorf("declaration %q without value: %w", property, ErrInvalidArgument)
	}
	return &Declaration{Property: property, Value: value, Important: important}, nil
}

// Render returns the declaration without a trailing semicolon.
func (d *Declaration) Render(s writer.Settings) string {
	var sb strings.Builder
	sb.WriteString(d.Property)
	if s.OptimizedOutput {
		sb.WriteByte(':')
	} else {
		sb.WriteString(": ")
	}
	sb.WriteString(d.Value)
	if d.Important {
		if !s.OptimizedOutput {
			sb.WriteByte(' ')
		}
		sb.WriteString("!important")
	}
	return sb.String()
}

// Equal compares property, value and importance.
func (d *Declaration) Equal(other *Declaration) bool {
	if d == nil || other == nil {
		return d == other
	}
	return *d == *other
}

// DeclarationList is the ordered body of a style or @font-face rule.
type DeclarationList struct {
	decls nodeList[*Declaration]
}

// AddDeclaration appends d.
func (l *DeclarationList) AddDeclaration(d *Declaration) error {
	return l.decls.add(d)
}

// InsertDeclaration inserts d at index; an index past the end appends.
func (l *DeclarationList) InsertDeclaration(index int, d *Declaration) error {
	return l.decls.insert(index, d)
}

// RemoveDeclaration removes the first declaration equal to d.
func (l *DeclarationList) RemoveDeclaration(d *Declaration) bool {
	if d == nil {
		return false
	}
	return l.decls.remove(d)
}

// RemoveDeclarationAt removes the declaration at index.
func (l *DeclarationList) RemoveDeclarationAt(index int) bool {
	return l.decls.removeAt(index)
}

// RemoveAllDeclarations empties the list.
func (l *DeclarationList) RemoveAllDeclarations() bool {
	return l.decls.removeAll()
}

// DeclarationAt returns the declaration at index.
func (l *DeclarationList) DeclarationAt(index int) (*Declaration, bool) {
	return l.decls.at(index)
}

// DeclarationOfProperty returns the last declaration of the named property,
// matching case-insensitively as the cascade would.
func (l *DeclarationList) DeclarationOfProperty(property string) (*Declaration, bool) {
	for i := l.decls.len() - 1; i >= 0; i-- {
		d := l.decls.items[i]
		if strings.EqualFold(d.Property, property) {
			return d, true
		}
	}
	return nil, false
}

// Declarations returns a copy of the list.
func (l *DeclarationList) Declarations() []*Declaration {
	return l.decls.all()
}

// DeclarationCount returns the number of declarations.
func (l *DeclarationList) DeclarationCount() int {
	return l.decls.len()
}

// HasDeclarations reports whether the list is non-empty.
func (l *DeclarationList) HasDeclarations() bool {
	return l.decls.len() > 0
}

// renderBlock renders the braces and declarations. The caller decides about
// the trailing newline.
func (l *DeclarationList) renderBlock(s writer.Settings, level int) string {
	opt := s.OptimizedOutput
	items := l.decls.items

	switch len(items) {
	case 0:
		if opt {
			return "{}"
		}
		return " {}"
	case 1:
		if opt {
			return "{" + items[0].Render(s) + "}"
		}
		return " { " + items[0].Render(s) + "; }"
	}

	var sb strings.Builder
	if opt {
		sb.WriteByte('{')
		for i, d := range items {
			if i > 0 {
				sb.WriteByte(';')
			}
			sb.WriteString(d.Render(s))
		}
		sb.WriteByte('}')
		return sb.String()
	}

	sb.WriteString(" {\n")
	for _, d := range items {
		sb.WriteString(s.Indent(level + 1))
		sb.WriteString(d.Render(s))
		sb.WriteString(";\n")
	}
	sb.WriteString(s.Indent(level))
	sb.WriteByte('}')
	return sb.String()
}
