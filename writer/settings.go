// Package writer holds the formatting policy consulted by every render
// operation of the CSS object model.
//
// Settings is a plain value. A render receives its own copy, so the
// policy cannot change halfway through writing a document.
package writer

import "strings"

// DefaultIndentUnit is repeated once per nesting level in pretty mode.
const DefaultIndentUnit = "  "

// Settings controls how a stylesheet is turned back into CSS text.
//
// Use NewSettings to get a policy that writes every rule kind. In the zero
// value every Write* switch is off and Version is unset, which targets
// CSS30.
type Settings struct {
	Version               Version // Target CSS level, zero means CSS30; newer rules fail CheckVersion
	WriteSupportsRules    bool    // false suppresses every @supports rule
	WriteMediaRules       bool    // false suppresses every @media rule
	WriteFontFaceRules    bool    // false suppresses every @font-face rule
	WriteImportRules      bool    // false suppresses every @import rule
	RemoveUnnecessaryCode bool    // elide rules without content
	OptimizedOutput       bool    // compact output without optional whitespace
	QuoteURLs             bool    // url("x") instead of url(x)
	IndentUnit            string  // repeated per level in pretty mode
}

// NewSettings returns settings that write every rule kind, keep empty rules
// and indent with two spaces.
func NewSettings(version Version, optimized bool) Settings {
	return Settings{
		Version:            version,
		WriteSupportsRules: true,
		WriteMediaRules:    true,
		WriteFontFaceRules: true,
		WriteImportRules:   true,
		OptimizedOutput:    optimized,
		IndentUnit:         DefaultIndentUnit,
	}
}

// Indent returns the indentation for the given nesting level.
// Negative levels yield no indentation.
func (s Settings) Indent(level int) string {
	if level <= 0 || s.IndentUnit == "" {
		return ""
	}
	return strings.Repeat(s.IndentUnit, level)
}

// CheckVersion reports whether node can be written for the target version.
// It returns a *VersionError when the node needs a newer CSS level.
func (s Settings) CheckVersion(node VersionAware) error {
	target := s.TargetVersion()
	required := node.MinimumVersion()
	if required.NewerThan(target) {
		return &VersionError{Required: required, Target: target}
	}
	return nil
}

// TargetVersion returns Version, or CSS30 when Version is unset.
func (s Settings) TargetVersion() Version {
	if s.Version == 0 {
		return CSS30
	}
	return s.Version
}

// WithVersion returns a copy targeting v.
func (s Settings) WithVersion(v Version) Settings {
	s.Version = v
	return s
}

// WithOptimizedOutput returns a copy with compact output switched on or off.
func (s Settings) WithOptimizedOutput(optimized bool) Settings {
	s.OptimizedOutput = optimized
	return s
}

// WithRemoveUnnecessaryCode returns a copy with elision switched on or off.
func (s Settings) WithRemoveUnnecessaryCode(remove bool) Settings {
	s.RemoveUnnecessaryCode = remove
	return s
}

// WithWriteSupportsRules returns a copy with @supports output switched on or off.
func (s Settings) WithWriteSupportsRules(write bool) Settings {
	s.WriteSupportsRules = write
	return s
}

// WithIndentUnit returns a copy that indents with unit.
func (s Settings) WithIndentUnit(unit string) Settings {
	s.IndentUnit = unit
	return s
}
