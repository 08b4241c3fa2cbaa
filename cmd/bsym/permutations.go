package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newPermutationsCmd() *cobra.Command {
	var (
		raw   map[string]int
		sites int
	)

	cmd := &cobra.Command{
		Use:   "permutations",
		Short: "Print every distinct arrangement of the labels, one per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			labels, err := parseLabels(raw)
			if err != nil {
				return err
			}
			ip, err := labels.Permutor(sites)
			if err != nil {
				return err
			}

			// stream rather than AllPermutations: the space can be large
			w := cmd.OutOrStdout()
			n := 0
			for perm := range ip.Permutations() {
				if _, err := fmt.Fprintln(w, strings.Trim(fmt.Sprint(perm), "[]")); err != nil {
					return err
				}
				n++
			}
			logger.Debugf("wrote %d arrangements", n)
			return nil
		},
	}
	addLabelFlag(cmd, &raw)
	cmd.Flags().IntVarP(&sites, "sites", "n", 0, "expected `number` of sites (checked if positive)")
	return cmd
}
