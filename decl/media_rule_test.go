package decl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/cssdom/media"
	"github.com/yacobolo/cssdom/writer"
)

func query(t *testing.T, modifier QueryModifier, m media.Medium, exprs ...string) *MediaQuery {
	t.Helper()
	q, err := NewMediaQuery(modifier, m, exprs...)
	require.NoError(t, err)
	return q
}

func TestMediaQuery_Render(t *testing.T) {
	tests := []struct {
		q    *MediaQuery
		want string
	}{
		{query(t, ModifierNone, media.Print), "print"},
		{query(t, ModifierOnly, media.Screen, "(min-width: 40em)"), "only screen and (min-width: 40em)"},
		{query(t, ModifierNot, media.TV), "not tv"},
		{query(t, ModifierNone, 0, "(color)", "(orientation: landscape)"), "(color) and (orientation: landscape)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.q.Render())
	}
}

func TestNewMediaQuery_Invalid(t *testing.T) {
	_, err := NewMediaQuery(ModifierNone, 0)
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = NewMediaQuery(ModifierNot, 0, "(color)")
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = NewMediaQuery(ModifierNone, media.Medium(77))
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = NewMediaQuery(ModifierNone, media.Screen, "")
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestMediaRule_Render(t *testing.T) {
	r, err := NewMediaRule(
		query(t, ModifierNone, media.Screen, "(min-width: 40em)"),
		query(t, ModifierNone, media.Print),
	)
	require.NoError(t, err)
	require.NoError(t, r.AddRule(styleRule(t, "a", "x", "1")))

	got, err := r.Render(pretty(), 0)
	require.NoError(t, err)
	assert.Equal(t, "@media screen and (min-width: 40em), print {\n  a { x: 1; }\n}\n", got)

	got, err = r.Render(optimized(), 0)
	require.NoError(t, err)
	assert.Equal(t, "@media screen and (min-width: 40em),print{a{x:1}}", got)

	s := pretty()
	s.WriteMediaRules = false
	got, err = r.Render(s, 0)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = r.Render(writer.NewSettings(writer.CSS10, false), 0)
	require.ErrorIs(t, err, writer.ErrIncompatibleVersion)

	// CSS 2.1 suffices for the rule but not for a nested @font-face.
	require.NoError(t, r.AddRule(NewFontFaceRule()))
	_, err = r.Render(writer.NewSettings(writer.CSS21, false), 0)
	require.ErrorIs(t, err, writer.ErrIncompatibleVersion)
}

func TestMediaRule_Elision(t *testing.T) {
	r, err := NewMediaRule(query(t, ModifierNone, media.Print))
	require.NoError(t, err)

	got, err := r.Render(pretty(), 0)
	require.NoError(t, err)
	assert.Equal(t, "@media print {}\n", got)

	got, err = r.Render(pretty().WithRemoveUnnecessaryCode(true), 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMediaRule_Nested(t *testing.T) {
	r, err := NewMediaRule(query(t, ModifierNone, media.Print))
	require.NoError(t, err)
	inner, _ := NewStyleRule("a")
	d1, _ := NewDeclaration("x", "1", false)
	d2, _ := NewDeclaration("y", "2", false)
	require.NoError(t, inner.AddDeclaration(d1))
	require.NoError(t, inner.AddDeclaration(d2))
	require.NoError(t, r.AddRule(inner))

	got, err := r.Render(pretty(), 0)
	require.NoError(t, err)
	assert.Equal(t, "@media print {\n  a {\n    x: 1;\n    y: 2;\n  }\n}\n", got)
}

func TestMediaRule_Media(t *testing.T) {
	r, err := NewMediaRule(
		query(t, ModifierOnly, media.Screen),
		query(t, ModifierNone, 0, "(color)"),
		query(t, ModifierNone, media.Print),
	)
	require.NoError(t, err)

	assert.Equal(t, "print, screen", r.Media().String())
	assert.True(t, r.IsForScreen())

	assert.True(t, r.RemoveMediaQueryAt(0))
	assert.False(t, r.IsForScreen())

	assert.True(t, r.RemoveMediaQuery(query(t, ModifierNone, media.Print)))
	assert.Equal(t, 1, r.MediaQueryCount())
	assert.True(t, r.IsForScreen(), "no named medium means every medium")

	require.ErrorIs(t, r.AddMediaQuery(nil), ErrInvalidArgument)
	require.NoError(t, r.InsertMediaQuery(0, query(t, ModifierNone, media.TV)))
	first, ok := r.MediaQueryAt(0)
	require.True(t, ok)
	assert.Equal(t, media.TV, first.Medium)
	assert.True(t, r.RemoveAllMediaQueries())
	assert.False(t, r.HasMediaQueries())
}

func TestMediaRule_MediaSkipsUnknownMedium(t *testing.T) {
	unknown := query(t, ModifierNone, media.Print)
	unknown.Medium = media.Medium(999)
	r, err := NewMediaRule(unknown, query(t, ModifierNone, media.Screen))
	require.NoError(t, err)

	assert.Equal(t, "screen", r.Media().String())
}

func TestImportRule_Render(t *testing.T) {
	plain, err := NewImportRule("a.css", nil)
	require.NoError(t, err)

	got, err := plain.Render(pretty(), 0)
	require.NoError(t, err)
	assert.Equal(t, "@import url(a.css);\n", got)

	set := media.NewSet()
	require.NoError(t, set.AddAll(media.Screen, media.Print))
	withMedia, err := NewImportRule("a.css", set)
	require.NoError(t, err)

	got, err = withMedia.Render(optimized(), 0)
	require.NoError(t, err)
	assert.Equal(t, "@import url(a.css) print,screen;", got)

	got, err = withMedia.Render(pretty(), 0)
	require.NoError(t, err)
	assert.Equal(t, "@import url(a.css) print, screen;\n", got)

	s := optimized()
	s.QuoteURLs = true
	quoted, _ := NewImportRule(`we"ird.css`, nil)
	got, err = quoted.Render(s, 0)
	require.NoError(t, err)
	assert.Equal(t, `@import url("we\"ird.css");`, got)

	s.WriteImportRules = false
	got, err = plain.Render(s, 0)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = NewImportRule(" ", nil)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestImportRule_CopiesMedia(t *testing.T) {
	set := media.NewSet()
	require.NoError(t, set.Add(media.Print))
	r, err := NewImportRule("a.css", set)
	require.NoError(t, err)

	require.NoError(t, set.Add(media.Screen))
	assert.Equal(t, 1, r.Media().Len())

	other, _ := NewImportRule("a.css", r.Media())
	assert.True(t, r.Equal(other))
}
