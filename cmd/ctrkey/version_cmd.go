package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	// VersionMajor is the major number in ctrkey's version
	VersionMajor = 0
	// VersionMinor is the minor number in ctrkey's version
	VersionMinor = 1
	// VersionPatch is the patch number in ctrkey's version
	VersionPatch = 0
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of ctrkey",
		Long:  `All software has versions. This is ctrkey's`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("ctrkey v%d.%d.%d\n", VersionMajor, VersionMinor, VersionPatch)
		},
	}
}
