package writer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedVersion Version

func (f fixedVersion) MinimumVersion() Version { return Version(f) }

func TestNewSettings_Defaults(t *testing.T) {
	s := NewSettings(CSS30, false)
	assert.Equal(t, CSS30, s.Version)
	assert.True(t, s.WriteSupportsRules)
	assert.True(t, s.WriteMediaRules)
	assert.True(t, s.WriteFontFaceRules)
	assert.True(t, s.WriteImportRules)
	assert.False(t, s.RemoveUnnecessaryCode)
	assert.False(t, s.OptimizedOutput)
	assert.Equal(t, "  ", s.IndentUnit)
}

func TestIndent(t *testing.T) {
	tests := []struct {
		name  string
		unit  string
		level int
		want  string
	}{
		{name: "level zero", unit: "  ", level: 0, want: ""},
		{name: "negative level", unit: "  ", level: -1, want: ""},
		{name: "two levels", unit: "  ", level: 2, want: "    "},
		{name: "tab unit", unit: "\t", level: 3, want: "\t\t\t"},
		{name: "empty unit", unit: "", level: 4, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSettings(CSS30, false).WithIndentUnit(tt.unit)
			require.Equal(t, tt.want, s.Indent(tt.level))
		})
	}
}

func TestCheckVersion(t *testing.T) {
	s := NewSettings(CSS21, false)

	require.NoError(t, s.CheckVersion(fixedVersion(CSS10)))
	require.NoError(t, s.CheckVersion(fixedVersion(CSS21)))

	err := s.CheckVersion(fixedVersion(CSS30))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIncompatibleVersion))

	var verr *VersionError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, CSS30, verr.Required)
	assert.Equal(t, CSS21, verr.Target)
	assert.Contains(t, err.Error(), "CSS 3.0")
}

func TestCheckVersion_ZeroSettings(t *testing.T) {
	var s Settings
	assert.Equal(t, CSS30, s.TargetVersion())
	require.NoError(t, s.CheckVersion(fixedVersion(CSS10)))
	require.NoError(t, s.CheckVersion(fixedVersion(CSS30)))

	assert.Equal(t, CSS21, s.WithVersion(CSS21).TargetVersion())
}

func TestWithHelpersCopy(t *testing.T) {
	base := NewSettings(CSS30, false)
	changed := base.WithOptimizedOutput(true).
		WithRemoveUnnecessaryCode(true).
		WithWriteSupportsRules(false).
		WithVersion(CSS21)

	assert.False(t, base.OptimizedOutput)
	assert.False(t, base.RemoveUnnecessaryCode)
	assert.True(t, base.WriteSupportsRules)
	assert.Equal(t, CSS30, base.Version)

	assert.True(t, changed.OptimizedOutput)
	assert.True(t, changed.RemoveUnnecessaryCode)
	assert.False(t, changed.WriteSupportsRules)
	assert.Equal(t, CSS21, changed.Version)
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		in      string
		want    Version
		wantErr bool
	}{
		{in: "1.0", want: CSS10},
		{in: "CSS1", want: CSS10},
		{in: "2.1", want: CSS21},
		{in: "css21", want: CSS21},
		{in: " 3 ", want: CSS30},
		{in: "css 3.0", want: CSS30},
		{in: "4", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseVersion(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVersionOrdering(t *testing.T) {
	assert.True(t, CSS30.NewerThan(CSS21))
	assert.True(t, CSS21.NewerThan(CSS10))
	assert.False(t, CSS10.NewerThan(CSS10))
	assert.Equal(t, "CSS 2.1", CSS21.String())
}
