package main

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/reallyasi9/bsym/internal/bsym"
	"github.com/spf13/cobra"
)

// addLabelFlag registers the repeatable --label flag, e.g. --label 0=2,1=1.
func addLabelFlag(cmd *cobra.Command, labels *map[string]int) {
	cmd.Flags().StringToIntVarP(labels, "label", "l", nil, "`label=count` pairs describing how many sites each label occupies")
	_ = cmd.MarkFlagRequired("label")
}

func parseLabels(raw map[string]int) (bsym.LabelCounts, error) {
	lc := make(bsym.LabelCounts, len(raw))
	for key, count := range raw {
		label, err := strconv.Atoi(key)
		if err != nil {
			return nil, errors.Newf("label %q is not an integer", key)
		}
		if count < 0 {
			return nil, errors.Wrapf(bsym.ErrNegativeCount, "label %d has count %d", label, count)
		}
		lc[label] = count
	}
	return lc, nil
}
