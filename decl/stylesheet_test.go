package decl

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/cssdom/media"
	"github.com/yacobolo/cssdom/writer"
)

func sampleSheet(t *testing.T) *Stylesheet {
	t.Helper()
	ss := NewStylesheet()
	imp, err := NewImportRule("base.css", nil)
	require.NoError(t, err)
	require.NoError(t, ss.AddRule(imp))
	require.NoError(t, ss.AddRule(styleRule(t, "a", "x", "1")))

	mr, err := NewMediaRule(query(t, ModifierNone, media.Print))
	require.NoError(t, err)
	require.NoError(t, mr.AddRule(styleRule(t, "b", "y", "2")))
	require.NoError(t, mr.AddRule(supportsRule(t, []ConditionMember{condition(t, "c", "d")}, styleRule(t, "c", "z", "3"))))
	require.NoError(t, ss.AddRule(mr))
	return ss
}

func TestStylesheet_Render(t *testing.T) {
	ss := sampleSheet(t)

	got, err := ss.Render(pretty())
	require.NoError(t, err)
	want := "@import url(base.css);\n" +
		"\n" +
		"a { x: 1; }\n" +
		"\n" +
		"@media print {\n" +
		"  b { y: 2; }\n" +
		"\n" +
		"  @supports (c: d) {\n" +
		"    c { z: 3; }\n" +
		"  }\n" +
		"}\n"
	assert.Equal(t, want, got)

	got, err = ss.Render(optimized())
	require.NoError(t, err)
	assert.Equal(t, "@import url(base.css);a{x:1}@media print{b{y:2}@supports (c:d){c{z:3}}}", got)
}

func TestStylesheet_RenderSkipsEmptyRules(t *testing.T) {
	ss := NewStylesheet()
	require.NoError(t, ss.AddRule(styleRule(t, "a")))
	require.NoError(t, ss.AddRule(styleRule(t, "b", "x", "1")))
	require.NoError(t, ss.AddRule(styleRule(t, "c")))

	got, err := ss.Render(pretty().WithRemoveUnnecessaryCode(true))
	require.NoError(t, err)
	assert.Equal(t, "b { x: 1; }\n", got)
}

func TestStylesheet_RenderVersionError(t *testing.T) {
	ss := sampleSheet(t)
	_, err := ss.Render(writer.NewSettings(writer.CSS21, false))
	require.ErrorIs(t, err, writer.ErrIncompatibleVersion)
}

func TestStylesheet_Write(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleSheet(t).Write(&buf, optimized()))
	assert.Contains(t, buf.String(), "@media print{")
}

func TestStylesheet_Walk(t *testing.T) {
	var visited []string
	err := sampleSheet(t).Walk(func(rule Rule, depth int) error {
		visited = append(visited, fmt.Sprintf("%d:%T", depth, rule))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"0:*decl.ImportRule",
		"0:*decl.StyleRule",
		"0:*decl.MediaRule",
		"1:*decl.StyleRule",
		"1:*decl.SupportsRule",
		"2:*decl.StyleRule",
	}, visited)

	stop := errors.New("stop")
	count := 0
	err = sampleSheet(t).Walk(func(Rule, int) error {
		count++
		if count == 2 {
			return stop
		}
		return nil
	})
	require.ErrorIs(t, err, stop)
	assert.Equal(t, 2, count)
}

func TestStylesheet_Accessors(t *testing.T) {
	ss := sampleSheet(t)
	assert.Len(t, ss.ImportRules(), 1)
	assert.Len(t, ss.StyleRules(), 1)
	assert.Len(t, ss.MediaRules(), 1)
	assert.Empty(t, ss.SupportsRules())
	assert.Empty(t, ss.FontFaceRules())
	assert.Equal(t, 3, ss.RuleCount())

	assert.True(t, ss.Equal(sampleSheet(t)))
	assert.True(t, ss.RemoveRuleAt(0))
	assert.False(t, ss.Equal(sampleSheet(t)))
}
