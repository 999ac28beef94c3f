package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .cssdom.yaml config file",
	Long:  `Create a .cssdom.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigPath); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigPath)
		}

		if err := os.WriteFile(defaultConfigPath, []byte(defaultConfig), 0o644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", defaultConfigPath)
		return nil
	},
}

const defaultConfig = `# cssdom configuration

verbose: false
quiet: false
color: false

# Writer policy shared by format and check
write:
  version: "3.0"                  # 1.0 | 2.1 | 3.0
  optimized: false
  remove-unnecessary-code: false
  supports-rules: true
  media-rules: true
  font-face-rules: true
  import-rules: true
  quote-urls: false
  indent: "  "

# Formatting settings
format:
  paths:
    - "**/*.css"
  base-dir: .
  output-dir: ""                  # empty writes to stdout

# Check settings
check:
  paths:
    - "**/*.css"
  strict: false
  output-format: issues           # issues | summary | json
  print-lines: true
  print-linter-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
