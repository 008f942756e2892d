package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-sweep/internal/design"
)

func newLawsCmd(_ *app) *cobra.Command {
	var example bool

	cmd := &cobra.Command{
		Use:   "laws",
		Short: "list the law kinds known to design files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()

			if example {
				data, err := yaml.Marshal(design.Default())
				if err != nil {
					return err
				}
				_, err = w.Write(data)
				return err
			}

			tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "LAW\tROLES\tPARAMETERS\tDESCRIPTION")
			for _, k := range design.Kinds {
				fmt.Fprintf(tw, "%s\t%v\t%s\t%s\n", k.Name, k.Roles, k.Params, k.Description)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&example, "example", false, "print the default design as YAML instead")

	return cmd
}
