package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCountCmd() *cobra.Command {
	var raw map[string]int

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Print the number of distinct arrangements of the labels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			labels, err := parseLabels(raw)
			if err != nil {
				return err
			}
			ip, err := labels.Permutor(0)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), ip.NumberOfPermutations())
			return err
		},
	}
	addLabelFlag(cmd, &raw)
	return cmd
}
