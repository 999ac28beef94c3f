package decl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/cssdom/writer"
)

func TestNewDeclaration(t *testing.T) {
	d, err := NewDeclaration("  color ", " red ", true)
	require.NoError(t, err)
	assert.Equal(t, "color", d.Property)
	assert.Equal(t, "red", d.Value)

	assert.Equal(t, "color: red !important", d.Render(pretty()))
	assert.Equal(t, "color:red!important", d.Render(optimized()))

	_, err = NewDeclaration("", "red", false)
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = NewDeclaration("color", " ", false)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestStyleRule_Render(t *testing.T) {
	multi := func(t *testing.T) *StyleRule {
		r, err := NewStyleRule("a", "b")
		require.NoError(t, err)
		d1, _ := NewDeclaration("x", "1", false)
		d2, _ := NewDeclaration("y", "2", true)
		require.NoError(t, r.AddDeclaration(d1))
		require.NoError(t, r.AddDeclaration(d2))
		return r
	}

	tests := []struct {
		name     string
		rule     func(t *testing.T) *StyleRule
		settings writer.Settings
		level    int
		want     string
	}{
		{"pretty empty", func(t *testing.T) *StyleRule { return styleRule(t, "a") }, pretty(), 0, "a {}\n"},
		{"optimized empty", func(t *testing.T) *StyleRule { return styleRule(t, "a") }, optimized(), 0, "a{}"},
		{"elided empty", func(t *testing.T) *StyleRule { return styleRule(t, "a") }, pretty().WithRemoveUnnecessaryCode(true), 0, ""},
		{"pretty one", func(t *testing.T) *StyleRule { return styleRule(t, "a", "x", "1") }, pretty(), 0, "a { x: 1; }\n"},
		{"optimized one", func(t *testing.T) *StyleRule { return styleRule(t, "a", "x", "1") }, optimized(), 0, "a{x:1}"},
		{"pretty many", multi, pretty(), 0, "a, b {\n  x: 1;\n  y: 2 !important;\n}\n"},
		{"pretty many nested", multi, pretty(), 1, "a, b {\n    x: 1;\n    y: 2 !important;\n  }\n"},
		{"optimized many", multi, optimized(), 0, "a,b{x:1;y:2!important}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.rule(t).Render(tt.settings, tt.level)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStyleRule_Selectors(t *testing.T) {
	_, err := NewStyleRule("a", "  ")
	require.ErrorIs(t, err, ErrInvalidArgument)

	r, err := NewStyleRule(" .x ", "#y")
	require.NoError(t, err)
	assert.Equal(t, []string{".x", "#y"}, r.Selectors())
	assert.Equal(t, 2, r.SelectorCount())
	assert.Equal(t, ".x,#y", r.SelectorText(optimized()))
}

func TestDeclarationList(t *testing.T) {
	r := styleRule(t, "a", "color", "red", "margin", "0", "COLOR", "blue")

	d, ok := r.DeclarationOfProperty("color")
	require.True(t, ok)
	assert.Equal(t, "blue", d.Value, "last declaration wins")

	_, ok = r.DeclarationOfProperty("padding")
	assert.False(t, ok)

	extra, _ := NewDeclaration("padding", "1px", false)
	require.NoError(t, r.InsertDeclaration(0, extra))
	first, ok := r.DeclarationAt(0)
	require.True(t, ok)
	assert.Equal(t, "padding", first.Property)

	require.ErrorIs(t, r.AddDeclaration(nil), ErrInvalidArgument)
	require.ErrorIs(t, r.InsertDeclaration(-2, extra), ErrInvalidArgument)

	margin, _ := NewDeclaration("margin", "0", false)
	assert.True(t, r.RemoveDeclaration(margin))
	assert.False(t, r.RemoveDeclaration(margin))
	assert.False(t, r.RemoveDeclaration(nil))
	assert.False(t, r.RemoveDeclarationAt(10))
	assert.Equal(t, 3, r.DeclarationCount())

	assert.True(t, r.RemoveAllDeclarations())
	assert.False(t, r.HasDeclarations())
}

func TestStyleRule_Equal(t *testing.T) {
	assert.True(t, styleRule(t, "a", "x", "1").Equal(styleRule(t, "a", "x", "1")))
	assert.False(t, styleRule(t, "a", "x", "1").Equal(styleRule(t, "b", "x", "1")))
	assert.False(t, styleRule(t, "a", "x", "1").Equal(styleRule(t, "a", "x", "2")))
	assert.False(t, styleRule(t, "a").Equal(NewFontFaceRule()))
}

func TestFontFaceRule_Render(t *testing.T) {
	r := NewFontFaceRule()
	d1, _ := NewDeclaration("font-family", "Foo", false)
	d2, _ := NewDeclaration("src", "url(foo.woff)", false)
	require.NoError(t, r.AddDeclaration(d1))
	require.NoError(t, r.AddDeclaration(d2))

	got, err := r.Render(pretty(), 0)
	require.NoError(t, err)
	assert.Equal(t, "@font-face {\n  font-family: Foo;\n  src: url(foo.woff);\n}\n", got)

	got, err = r.Render(optimized(), 0)
	require.NoError(t, err)
	assert.Equal(t, "@font-face{font-family:Foo;src:url(foo.woff)}", got)

	s := pretty()
	s.WriteFontFaceRules = false
	got, err = r.Render(s, 0)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = r.Render(writer.NewSettings(writer.CSS21, false), 0)
	require.ErrorIs(t, err, writer.ErrIncompatibleVersion)

	got, err = NewFontFaceRule().Render(pretty().WithRemoveUnnecessaryCode(true), 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}
