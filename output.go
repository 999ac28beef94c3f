package cssdom

import (
	"fmt"
	"io"

	"github.com/yacobolo/cssdom/internal/report"
)

// OutputFormat selects how WriteOutput presents a CheckResult.
type OutputFormat string

const (
	OutputIssues  OutputFormat = "issues"  // golangci-lint style issues plus a summary
	OutputSummary OutputFormat = "summary" // counts only
	OutputJSON    OutputFormat = "json"    // machine readable
)

// DetermineOutputFormat maps a flag value to a format. Unknown or empty
// values fall back to issues, like golangci-lint.
func DetermineOutputFormat(formatFlag string) OutputFormat {
	switch formatFlag {
	case "summary":
		return OutputSummary
	case "json":
		return OutputJSON
	default:
		return OutputIssues
	}
}

// WriteOutput writes the check result in the specified format
func WriteOutput(w io.Writer, result *CheckResult, format OutputFormat, opts ReportOptions) error {
	switch format {
	case OutputSummary:
		reporter := report.NewReporter(w, opts)
		if len(result.Issues) > 0 {
			reporter.PrintFileSummary(result.Issues)
		}
		reporter.PrintSummary(result.Issues, result.FilesScanned)
		return nil

	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			return fmt.Errorf("writing JSON: %w", err)
		}
		return nil

	default:
		reporter := report.NewReporter(w, opts)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(result.Issues, result.FilesScanned)
		return nil
	}
}
