package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cockroachdb/errors"
	"github.com/reallyasi9/bsym/internal/bsym"
	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v2"
)

// uniqueResult is the YAML form of one representative configuration.
type uniqueResult struct {
	Labels []int  `yaml:"labels"`
	Count  int    `yaml:"count"`
	Number string `yaml:"number,omitempty"`
}

// writers maps each --format value to the function that prints representatives in that format.
var writers = map[string]func(io.Writer, []*bsym.Configuration) error{
	"text": writeText,
	"yaml": writeYAML,
}

func newUniqueCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "unique <problem.yaml|problem.toml>",
		Short: "Print one representative of each symmetry-inequivalent configuration",
		Long: `Reads a problem file giving the labels to place and the symmetry operations of the sites,
and prints the configuration with the lowest numeric representation from each class of
equivalent configurations, together with the number of configurations in the class.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			write, ok := writers[format]
			if !ok {
				return errors.Newf("unknown format %q", format)
			}

			problem, err := bsym.MakeProblem(args[0])
			if err != nil {
				return err
			}
			ops, err := problem.SymmetryOperations()
			if err != nil {
				return err
			}
			logger.Infof("loaded %d sites, %d labels, %d symmetry operations", problem.Sites, len(problem.Labels), len(ops))

			space := bsym.NewConfigurationSpace(ops)
			space.Logger = logger
			unique, err := space.UniqueConfigurations(problem.Labels)
			if err != nil {
				return err
			}
			logger.Infof("found %d unique configurations of %s", len(unique), bsym.Degeneracy(unique))

			return write(cmd.OutOrStdout(), unique)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output `format`: text or yaml")
	return cmd
}

func results(unique []*bsym.Configuration) []uniqueResult {
	out := make([]uniqueResult, len(unique))
	for i, c := range unique {
		out[i] = uniqueResult{Labels: c.Labels(), Count: c.Count()}
		if n, ok := c.LowestNumericRepresentation(); ok {
			out[i].Number = n.String()
		}
	}
	return out
}

func writeText(w io.Writer, unique []*bsym.Configuration) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CONFIGURATION\tCOUNT")
	for _, c := range unique {
		fmt.Fprintf(tw, "%s\t%d\n", c, c.Count())
	}
	return tw.Flush()
}

func writeYAML(w io.Writer, unique []*bsym.Configuration) error {
	b, err := yaml.Marshal(results(unique))
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}
