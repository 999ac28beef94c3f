package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildCaretIndicator(t *testing.T) {
	tests := []struct {
		name       string
		sourceLine string
		column     int
		want       string
	}{
		{
			name:       "spaces only",
			sourceLine: "  color red;",
			column:     3,
			want:       "  ^",
		},
		{
			name:       "tabs preserved",
			sourceLine: "\t\tcolor red;",
			column:     3,
			want:       "\t\t^",
		},
		{
			name:       "mixed tabs and spaces",
			sourceLine: "\t  color red;",
			column:     4,
			want:       "\t  ^",
		},
		{
			name:       "column 1",
			sourceLine: "a { x }",
			column:     1,
			want:       "^",
		},
		{
			name:       "column zero",
			sourceLine: "a { x }",
			column:     0,
			want:       "^",
		},
		{
			name:       "column beyond line length",
			sourceLine: "ab",
			column:     10,
			want:       "  ^",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildCaretIndicator(tt.sourceLine, tt.column))
		})
	}
}

func newTestReporter(buf *bytes.Buffer) *Reporter {
	r := NewReporter(buf, Options{PrintLines: true, PrintLinterName: true})
	r.useColors = false
	return r
}

func TestPrintIssues(t *testing.T) {
	issues := []Issue{
		{FromLinter: LinterVersion, Text: "rule requires CSS 3.0", Severity: SeverityWarning,
			Pos: IssuePos{Filename: "b.css", Line: 4, Column: 1}},
		{FromLinter: LinterParse, Text: "expected ':'", Severity: SeverityError,
			SourceLines: []string{"a { color red }"},
			Pos:         IssuePos{Filename: "a.css", Line: 1, Column: 5}},
	}

	var buf bytes.Buffer
	newTestReporter(&buf).PrintIssues(issues)

	want := "a.css:1:5: expected ':' (cssparse)\n" +
		"\ta { color red }\n" +
		"\t    ^\n" +
		"b.css:4:1: rule requires CSS 3.0 (cssversion)\n"
	assert.Equal(t, want, buf.String())
}

func TestSortIssues_NaturalFileOrder(t *testing.T) {
	issues := []Issue{
		{Pos: IssuePos{Filename: "part10.css", Line: 1}},
		{Pos: IssuePos{Filename: "part2.css", Line: 3, Column: 2}},
		{Pos: IssuePos{Filename: "part2.css", Line: 3, Column: 1}},
	}
	SortIssues(issues)

	assert.Equal(t, "part2.css", issues[0].Pos.Filename)
	assert.Equal(t, 1, issues[0].Pos.Column)
	assert.Equal(t, 2, issues[1].Pos.Column)
	assert.Equal(t, "part10.css", issues[2].Pos.Filename)
}

func TestPrintSummary(t *testing.T) {
	tests := []struct {
		name   string
		issues []Issue
		files  int
		want   string
	}{
		{
			name:  "clean",
			files: 1,
			want:  "\n0 issues in 1 file:\nAll stylesheets are clean\n",
		},
		{
			name: "errors and warnings",
			issues: []Issue{
				{FromLinter: LinterParse, Severity: SeverityError},
				{FromLinter: LinterParse, Severity: SeverityError},
				{FromLinter: LinterVersion, Severity: SeverityWarning},
			},
			files: 2,
			want:  "\n3 issues (2 errors, 1 warning) in 2 files:\n* cssparse: 2\n* cssversion: 1\n",
		},
		{
			name:   "errors only",
			issues: []Issue{{FromLinter: LinterParse, Severity: SeverityError}},
			files:  3,
			want:   "\n1 issue in 3 files:\n* cssparse: 1\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			newTestReporter(&buf).PrintSummary(tt.issues, tt.files)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestCountSeverities(t *testing.T) {
	errs, warns := CountSeverities([]Issue{
		{Severity: SeverityError},
		{Severity: SeverityWarning},
		{Severity: SeverityInfo},
	})
	assert.Equal(t, 1, errs)
	assert.Equal(t, 1, warns)
}

func TestRenderStyle_NoColors(t *testing.T) {
	assert.Equal(t, "text", RenderStyle(StyleRed, "text", false))
}
