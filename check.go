package cssdom

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/yacobolo/cssdom/decl"
	"github.com/yacobolo/cssdom/internal/dump"
	"github.com/yacobolo/cssdom/internal/report"
	"github.com/yacobolo/cssdom/reader"
	"github.com/yacobolo/cssdom/writer"
)

// CheckConfig holds checking configuration
type CheckConfig struct {
	Patterns []string       // Glob patterns selecting stylesheets
	Version  writer.Version // Target CSS level (default CSS 3.0)
	Logger   *zap.Logger
}

// CheckResult contains check results
type CheckResult struct {
	Issues        []Issue // Sorted by file, line and column
	Stats         ScanStats
	FilesScanned  int
	ParseErrors   int // Issues from the cssparse linter
	VersionErrors int // Issues from the cssversion linter
}

// ErrorCount returns the number of error-severity issues.
func (r *CheckResult) ErrorCount() int {
	errs, _ := report.CountSeverities(r.Issues)
	return errs
}

// Check reads every matched stylesheet and reports its parse faults and the
// rules that need a newer CSS level than the target. Files that cannot be
// read are skipped and their errors combined into the returned error.
func Check(config CheckConfig) (*CheckResult, error) {
	log := config.Logger
	if log == nil {
		log = zap.NewNop()
	}

	files, stats, err := DiscoverFiles(config.Patterns)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	result := &CheckResult{Stats: stats, FilesScanned: len(files)}

	rd := reader.New(log)
	var errs error
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		issues, err := checkText(rd, file, string(data), config.Version)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", file, err))
			continue
		}
		result.Issues = append(result.Issues, issues...)
	}

	for _, issue := range result.Issues {
		switch issue.FromLinter {
		case report.LinterParse:
			result.ParseErrors++
		case report.LinterVersion:
			result.VersionErrors++
		}
	}
	report.SortIssues(result.Issues)
	log.Debug("Check complete",
		zap.Int("files", len(files)),
		zap.Int("parse_errors", result.ParseErrors),
		zap.Int("version_errors", result.VersionErrors))

	return result, errs
}

// CheckString checks a single stylesheet held in memory. filename is only
// used to label the issues.
func CheckString(filename, text string, version writer.Version, log *zap.Logger) ([]Issue, error) {
	issues, err := checkText(reader.New(log), filename, text, version)
	if err != nil {
		return nil, err
	}
	report.SortIssues(issues)
	return issues, nil
}

func checkText(rd *reader.Reader, filename, text string, version writer.Version) ([]Issue, error) {
	if version == 0 {
		version = writer.CSS30
	}
	lines := strings.Split(text, "\n")

	c := reader.NewCollector(nil)
	ss, err := rd.ReadString(text, c)
	if err != nil {
		return nil, err
	}

	issues := make([]Issue, 0, c.Count())
	for _, pe := range c.Errors() {
		issues = append(issues, Issue{
			FromLinter:  report.LinterParse,
			Text:        pe.Description(),
			Severity:    report.SeverityError,
			SourceLines: sourceLines(lines, pe.Line(), pe.Line()),
			Pos:         IssuePos{Filename: filename, Line: pe.Line(), Column: pe.Column()},
		})
	}

	settings := writer.NewSettings(version, false)
	err = ss.Walk(func(rule decl.Rule, _ int) error {
		var verr *writer.VersionError
		if !errors.As(settings.CheckVersion(rule), &verr) {
			return nil
		}
		issue := Issue{
			FromLinter: report.LinterVersion,
			Text:       fmt.Sprintf("%s requires %s, target is %s", dump.Label(rule), verr.Required, verr.Target),
			Severity:   report.SeverityWarning,
			Pos:        IssuePos{Filename: filename},
		}
		if l, ok := rule.(interface {
			SourceLocation() (decl.SourceLocation, bool)
		}); ok {
			if loc, ok := l.SourceLocation(); ok {
				issue.Pos.Line = loc.FirstLine
				issue.Pos.Column = loc.FirstColumn
				issue.SourceLines = sourceLines(lines, loc.FirstLine, loc.FirstLine)
				if loc.LastLine > loc.FirstLine {
					issue.LineRange = &report.LineRange{From: loc.FirstLine, To: loc.LastLine}
				}
			}
		}
		issues = append(issues, issue)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return issues, nil
}

// sourceLines returns lines from..to (1-based, inclusive), trailing
// carriage returns removed.
func sourceLines(lines []string, from, to int) []string {
	if from < 1 || from > len(lines) {
		return nil
	}
	if to > len(lines) {
		to = len(lines)
	}
	out := make([]string, 0, to-from+1)
	for _, l := range lines[from-1 : to] {
		out = append(out, strings.TrimRight(l, "\r"))
	}
	return out
}
