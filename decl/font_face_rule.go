package decl

import "github.com/yacobolo/cssdom/writer"

// FontFaceRule is an @font-face block.
type FontFaceRule struct {
	located
	DeclarationList
}

// NewFontFaceRule returns an @font-face rule without descriptors.
func NewFontFaceRule() *FontFaceRule {
	return &FontFaceRule{}
}

// MinimumVersion implements Rule.
func (r *FontFaceRule) MinimumVersion() writer.Version {
	return writer.CSS30
}

// Render implements Rule.
func (r *FontFaceRule) Render(s writer.Settings, indentLevel int) (string, error) {
	if err := s.CheckVersion(r); err != nil {
		return "", err
	}
	if !s.WriteFontFaceRules {
		return "", nil
	}
	if s.RemoveUnnecessaryCode && !r.HasDeclarations() {
		return "", nil
	}

	text := "@font-face" + r.renderBlock(s, indentLevel)
	if !s.OptimizedOutput {
		text += "\n"
	}
	return text, nil
}

// Equal compares declarations.
func (r *FontFaceRule) Equal(other Rule) bool {
	o, ok := other.(*FontFaceRule)
	if !ok || o == nil {
		return false
	}
	return r.decls.equal(&o.decls)
}
