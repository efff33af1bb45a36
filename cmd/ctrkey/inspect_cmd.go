package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/grovekit/ctrkey/ctr"
	"github.com/grovekit/ctrkey/ctrconf"
	"github.com/grovekit/ctrkey/keybin"
	"github.com/spf13/cobra"
)

type inspectCmdConfig struct {
	*rootCmdConfig
	input string
}

func inspectCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &inspectCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Decode a stream of binary ctr key records",
		Long:  `Decode a stream of binary ctr key records, as written by the keys command, and print each key with its hash and derived metrics.`,
		Run: func(cmd *cobra.Command, args []string) {
			var f *os.File
			if config.input == "" {
				config.Logf("Reading key records from STDIN...")
				f = os.Stdin
			} else {
				var err error
				f, err = os.Open(config.input)
				if err != nil {
					fmt.Fprintf(os.Stderr, "opening key records at %s: %v\n", config.input, err)
					os.Exit(1)
				}
				defer f.Close()
			}
			r := bufio.NewReader(f)
			for i := 0; ; i++ {
				if _, err := r.Peek(1); err == io.EOF {
					config.Logf("Decoded %d key records", i)
					return
				}
				k, err := ctr.Decode(r, ctrconf.Decode)
				if err != nil {
					if errors.Is(err, keybin.ErrMalformed) {
						fmt.Fprintf(os.Stderr, "key record %d is malformed: %v\n", i, err)
						os.Exit(2)
					}
					fmt.Fprintf(os.Stderr, "reading key record %d: %v\n", i, err)
					os.Exit(3)
				}
				t := k.Tensor()
				fmt.Printf("%v\n  hash %016x size %d complexity %d simple %v\n", k, k.Hash(), t.Size(), t.Complexity(), k.IsSimple())
			}
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.input), "input", "i", "", "path to a file with binary key records to decode (defaults to STDIN)")
	return cmd
}
