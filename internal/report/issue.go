// Package report formats check results the way golangci-lint does.
package report

// Issue is a single finding in golangci-lint format.
type Issue struct {
	FromLinter  string     `json:"FromLinter"`  // "cssparse" or "cssversion"
	Text        string     `json:"Text"`        // "expected ':' after identifier \"color\""
	Severity    string     `json:"Severity"`    // "", "warning", "error"
	SourceLines []string   `json:"SourceLines"` // Lines of code with issue
	Pos         IssuePos   `json:"Pos"`
	LineRange   *LineRange `json:"LineRange"` // Set when the issue spans several lines
}

// IssuePos is the location of an issue.
type IssuePos struct {
	Filename string `json:"Filename"`
	Line     int    `json:"Line"`
	Column   int    `json:"Column"` // 1-based
}

// LineRange specifies a range of lines.
type LineRange struct {
	From int `json:"From"`
	To   int `json:"To"`
}

const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

// Linter names.
const (
	LinterParse   = "cssparse"
	LinterVersion = "cssversion"
)

// CountSeverities returns the number of errors and warnings in issues.
func CountSeverities(issues []Issue) (errors, warnings int) {
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}
	return errors, warnings
}
