package main

import (
	"os"

	"github.com/spf13/cobra"
)

type rootCmdConfig struct {
	verbose bool
}

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ctrkey",
		Short: "ctrkey is a tool to work with canonical ctr cache keys",
		Long:  `A tool to build, inspect and compare the canonical feature-combination keys used to cache ctr statistics during gradient-boosted-tree training`,
	}
	config := &rootCmdConfig{}
	rootCmd.PersistentFlags().BoolVarP(&(config.verbose), "verbose", "v", false, "")
	rootCmd.AddCommand(versionCmd(), keysCmd(config), inspectCmd(config))
	return rootCmd
}
