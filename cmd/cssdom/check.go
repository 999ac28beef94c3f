package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yacobolo/cssdom"
)

var checkCmd = &cobra.Command{
	Use:   "check [patterns...]",
	Short: "Report parse errors and rules newer than the target CSS version",
	Long: `Read every matched stylesheet and report recoverable parse faults (cssparse)
and rules the target CSS version cannot express (cssversion).`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runCheck,
}

func init() {
	f := checkCmd.Flags()
	f.StringSlice("paths", defaultPaths, "Glob patterns for stylesheets")
	f.String("target", "3.0", "Target CSS version: 1.0|2.1|3.0")
	f.Bool("strict", false, "Exit 1 on any issue, warnings included (CI mode)")
	f.String("output-format", "", "Output format: issues|summary|json")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (cssparse) suffix on issues")
}

func runCheck(_ *cobra.Command, args []string) error {
	log := buildLogger()
	defer func() { _ = log.Sync() }()

	config, err := buildCheckConfig(args, log)
	if err != nil {
		return err
	}

	result, err := cssdom.Check(config)
	if result == nil {
		return fmt.Errorf("check failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	if err != nil && !quiet {
		fmt.Fprintln(os.Stderr, err)
	}

	format := cssdom.DetermineOutputFormat(getStringWithFallback("output-format", "check.output-format", ""))
	if !quiet {
		if werr := cssdom.WriteOutput(os.Stdout, result, format, buildReportOptions()); werr != nil {
			return werr
		}
	}

	// Soft gate: only errors fail unless strict
	strict := getBoolWithFallback("strict", "check.strict", false)
	switch {
	case err != nil:
		return exitError(1)
	case strict && len(result.Issues) > 0:
		return exitError(1)
	case result.ErrorCount() > 0:
		return exitError(1)
	}
	return nil
}
