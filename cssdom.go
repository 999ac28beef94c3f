// Package cssdom reads, checks and rewrites CSS stylesheets through a
// mutable object model.
//
// # Object model
//
// A stylesheet is read into a tree of rules (package decl): style rules,
// @import, @font-face and the containers @media and @supports, which nest
// further rules. Every node renders itself back to CSS under a
// writer.Settings policy:
//
//	ss, _ := reader.New(nil).ReadString(`@media print { a { color: red } }`, nil)
//	out, _ := ss.Render(writer.NewSettings(writer.CSS30, true))
//	// out == "@media print{a{color:red}}"
//
// # Recoverable faults
//
// Reading never stops at malformed input unless the error handler says so.
// Faults are reported to a reader.ErrorHandler; reader.Collector keeps them
// in order and can forward each one to a second handler:
//
//	c := reader.NewCollector(reader.NewLoggingHandler(log))
//	ss, err := reader.New(log).ReadString(text, c)
//
// # Batch operations
//
// Format rewrites every stylesheet matched by a set of glob patterns and
// Check reports parse faults and rules the target CSS version cannot
// express as golangci-lint style issues.
package cssdom

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/yacobolo/cssdom/internal/report"
	"github.com/yacobolo/cssdom/reader"
	"github.com/yacobolo/cssdom/writer"
)

// Issue is a single finding of Check.
type Issue = report.Issue

// IssuePos is the location of an Issue.
type IssuePos = report.IssuePos

// ReportOptions configures the issue reporter of WriteOutput.
type ReportOptions = report.Options

// FormatString reads text and renders it again under s. Parse faults are
// returned separately and do not fail the call.
func FormatString(text string, s writer.Settings, log *zap.Logger) (string, []*reader.ParseError, error) {
	c := reader.NewCollector(nil)
	ss, err := reader.New(log).ReadString(text, c)
	if err != nil {
		return "", c.Errors(), err
	}
	out, err := ss.Render(s)
	if err != nil {
		return "", c.Errors(), fmt.Errorf("render: %w", err)
	}
	return out, c.Errors(), nil
}
