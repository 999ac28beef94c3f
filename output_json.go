package cssdom

import (
	"encoding/json"
	"io"
	"time"

	"github.com/yacobolo/cssdom/internal/report"
)

// JSONVersion is the schema version of the JSON export.
const JSONVersion = "1"

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Issues    []JSONIssue `json:"issues"`
}

// JSONSummary contains high-level issue counts
type JSONSummary struct {
	TotalIssues   int `json:"total_issues"`
	Errors        int `json:"errors"`
	Warnings      int `json:"warnings"`
	ParseErrors   int `json:"parse_errors"`
	VersionErrors int `json:"version_errors"`
	FilesScanned  int `json:"files_scanned"`
}

// JSONIssue represents a single issue
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	EndLine  int    `json:"end_line,omitempty"`
	Severity string `json:"severity"`
	Linter   string `json:"linter"`
	Message  string `json:"message"`
}

// WriteJSON writes the check result as indented JSON.
func WriteJSON(w io.Writer, result *CheckResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildJSONOutput(result, time.Now()))
}

func buildJSONOutput(result *CheckResult, now time.Time) JSONOutput {
	errs, warns := report.CountSeverities(result.Issues)
	out := JSONOutput{
		Version:   JSONVersion,
		Timestamp: now.UTC().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:   len(result.Issues),
			Errors:        errs,
			Warnings:      warns,
			ParseErrors:   result.ParseErrors,
			VersionErrors: result.VersionErrors,
			FilesScanned:  result.FilesScanned,
		},
		Issues: make([]JSONIssue, 0, len(result.Issues)),
	}

	for _, issue := range result.Issues {
		ji := JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Linter:   issue.FromLinter,
			Message:  issue.Text,
		}
		if issue.LineRange != nil {
			ji.EndLine = issue.LineRange.To
		}
		out.Issues = append(out.Issues, ji)
	}
	return out
}
