package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yacobolo/cssdom"
	"github.com/yacobolo/cssdom/reader"
)

var formatCmd = &cobra.Command{
	Use:     "format [patterns...]",
	Aliases: []string{"fmt"},
	Short:   "Rewrite stylesheets under a formatting policy",
	Long: `Read every matched stylesheet and write it back, pretty printed or optimized.
Output goes to stdout unless --output-dir is set, in which case the input
tree below --base-dir is mirrored there.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runFormat,
}

func init() {
	f := formatCmd.Flags()
	f.StringSlice("paths", defaultPaths, "Glob patterns for stylesheets")
	f.String("output-dir", "", "Write formatted files here instead of stdout")
	f.String("base-dir", ".", "Directory whose layout is mirrored under --output-dir")
	addWriteFlags(f)
}

func runFormat(_ *cobra.Command, args []string) error {
	log := buildLogger()
	defer func() { _ = log.Sync() }()

	config, err := buildFormatConfig(args, log)
	if err != nil {
		return err
	}
	quiet := getBoolWithFallback("quiet", "quiet", false)
	if !quiet {
		config.Handler = reader.NewLoggingHandler(log)
	}

	result, err := cssdom.Format(config)
	if result == nil {
		return fmt.Errorf("format failed: %w", err)
	}

	if !quiet && config.OutputDir != "" {
		fmt.Printf("Formatted %d of %d files into %s\n", result.FilesWritten, result.FilesScanned, config.OutputDir)
		if result.ParseErrors > 0 {
			fmt.Printf("  Recovered from %d parse errors\n", result.ParseErrors)
		}
	}
	if err != nil {
		if !quiet {
			fmt.Fprintln(os.Stderr, err)
		}
		return exitError(1)
	}
	return nil
}
