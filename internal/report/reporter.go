package report

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/maruel/natural"
)

// Options configures a Reporter.
type Options struct {
	UseColors       bool // force colors on
	PrintLines      bool // print the offending source line with a caret
	PrintLinterName bool // append "(linter)" to every issue
}

// Reporter prints issues and summaries.
type Reporter struct {
	w               io.Writer
	useColors       bool
	printLines      bool
	printLinterName bool
}

// NewReporter writes to w.
func NewReporter(w io.Writer, opts Options) *Reporter {
	return &Reporter{
		w:               w,
		useColors:       ShouldUseColors(opts.UseColors),
		printLines:      opts.PrintLines,
		printLinterName: opts.PrintLinterName,
	}
}

// ShouldUseColors decides whether to colorize output. An explicit request
// wins, then CI hints, then TTY detection.
func ShouldUseColors(force bool) bool {
	if force {
		return true
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}
	return false
}

// UseColors returns whether colors are enabled.
func (r *Reporter) UseColors() bool {
	return r.useColors
}

// SortIssues orders issues by file (natural order), line and column.
func SortIssues(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		a, b := issues[i].Pos, issues[j].Pos
		if a.Filename != b.Filename {
			return natural.Less(a.Filename, b.Filename)
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})
}

// PrintIssues writes every issue in file:line:col form.
func (r *Reporter) PrintIssues(issues []Issue) {
	SortIssues(issues)
	for _, issue := range issues {
		r.printIssue(issue)
	}
}

func (r *Reporter) printIssue(issue Issue) {
	location := fmt.Sprintf("%s:%d:%d:", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column)

	linterSuffix := ""
	if r.printLinterName {
		linterSuffix = fmt.Sprintf(" (%s)", issue.FromLinter)
	}

	text := issue.Text
	if issue.Severity == SeverityError {
		text = RenderStyle(StyleRed, text, r.useColors)
	}
	fmt.Fprintf(r.w, "%s %s%s\n",
		RenderStyle(StyleCyan, location, r.useColors),
		text,
		RenderStyle(StyleGray, linterSuffix, r.useColors))

	if r.printLines && len(issue.SourceLines) > 0 {
		for _, line := range issue.SourceLines {
			fmt.Fprintf(r.w, "\t%s\n", line)
		}
		caret := buildCaretIndicator(issue.SourceLines[0], issue.Pos.Column)
		fmt.Fprintf(r.w, "\t%s\n", RenderStyle(StyleYellow, caret, r.useColors))
	}
}

// buildCaretIndicator builds a "^" under column, copying tabs from the
// source line so the caret lines up in any tab width.
func buildCaretIndicator(sourceLine string, column int) string {
	if column <= 0 {
		return "^"
	}

	runes := []rune(sourceLine)
	prefixLen := column - 1
	if prefixLen > len(runes) {
		prefixLen = len(runes)
	}

	var padding strings.Builder
	for _, ch := range runes[:prefixLen] {
		if ch == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteRune(' ')
		}
	}
	return padding.String() + "^"
}

// PrintSummary writes the issue counts with a per-linter breakdown.
func (r *Reporter) PrintSummary(issues []Issue, filesChecked int) {
	total := len(issues)
	errors, warnings := CountSeverities(issues)

	fmt.Fprintln(r.w, "")
	if errors > 0 && warnings > 0 {
		fmt.Fprintf(r.w, "%s (%s, %s) in %s:\n",
			pluralizeCount(total, "issue", "issues"),
			pluralizeCount(errors, "error", "errors"),
			pluralizeCount(warnings, "warning", "warnings"),
			pluralizeCount(filesChecked, "file", "files"))
	} else {
		fmt.Fprintf(r.w, "%s in %s:\n",
			pluralizeCount(total, "issue", "issues"),
			pluralizeCount(filesChecked, "file", "files"))
	}

	counts := make(map[string]int)
	for _, issue := range issues {
		counts[issue.FromLinter]++
	}
	linters := make([]string, 0, len(counts))
	for linter := range counts {
		linters = append(linters, linter)
	}
	sort.Strings(linters)
	for _, linter := range linters {
		fmt.Fprintf(r.w, "* %s: %d\n", linter, counts[linter])
	}

	if total == 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleGreen, "All stylesheets are clean", r.useColors))
	}
}

// PrintFileSummary lists the number of issues per file.
func (r *Reporter) PrintFileSummary(issues []Issue) {
	counts := make(map[string]int)
	for _, issue := range issues {
		counts[issue.Pos.Filename]++
	}
	files := make([]string, 0, len(counts))
	for f := range counts {
		files = append(files, f)
	}
	sort.Sort(natural.StringSlice(files))

	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Issues by file", r.useColors))
	fmt.Fprintln(r.w, "--------------")
	for _, f := range files {
		fmt.Fprintf(r.w, "%-40s %d\n", f, counts[f])
	}
}

func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
