package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/cssdom/internal/dump"
	"github.com/yacobolo/cssdom/reader"
)

var treeCmd = &cobra.Command{
	Use:   "tree <file>",
	Short: "Print the rule tree of a stylesheet",
	Args:  cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		log := buildLogger()
		defer func() { _ = log.Sync() }()

		ss, err := reader.New(log).ReadFile(args[0], reader.NewLoggingHandler(log))
		if err != nil {
			return err
		}

		locations, _ := cmd.Flags().GetBool("locations")
		declarations, _ := cmd.Flags().GetBool("declarations")
		fmt.Fprint(cmd.OutOrStdout(), dump.Tree(ss, dump.Options{
			Locations:    locations,
			Declarations: declarations,
		}))
		return nil
	},
}

func init() {
	treeCmd.Flags().Bool("locations", false, "Show source locations")
	treeCmd.Flags().Bool("declarations", false, "List declarations")
}
