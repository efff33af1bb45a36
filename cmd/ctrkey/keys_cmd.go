package main

import (
	"fmt"
	"os"

	"github.com/grovekit/ctrkey/keyfile"
	"github.com/spf13/cobra"
)

type keysCmdConfig struct {
	*rootCmdConfig
	metadataInput string
	output        string
}

func keysCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &keysCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Build canonical ctr keys from a YAML description",
		Long:  `Build the canonical ctr cache keys described in a YAML file and print their canonical form, hash, size and complexity. Optionally write their binary records to a file.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			keys, err := keyfile.ReadKeysFromFile(config.metadataInput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			config.Logf("Read %d keys from %s", len(keys), config.metadataInput)
			for _, k := range keys {
				t := k.Tensor()
				fmt.Printf("%v\n  hash %016x size %d complexity %d simple %v\n", k, k.Hash(), t.Size(), t.Complexity(), k.IsSimple())
			}
			if config.output == "" {
				return
			}
			f, err := os.Create(config.output)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			defer f.Close()
			for _, k := range keys {
				if err := k.Encode(f); err != nil {
					fmt.Fprintf(os.Stderr, "writing key records to %s: %v\n", config.output, err)
					os.Exit(4)
				}
			}
			config.Logf("Wrote %d key records to %s", len(keys), config.output)
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file describing the splits, categorical features and ctr configurations to build keys from (required)")
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "", "path to a file to which the binary key records will be written (defaults to none)")
	return cmd
}

func (kcc *keysCmdConfig) Validate() error {
	if kcc.metadataInput == "" {
		return fmt.Errorf("required metadata flag was not set")
	}
	return nil
}
