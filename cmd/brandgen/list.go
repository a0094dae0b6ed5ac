package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/lumina-ai/brandgen"
	"github.com/spf13/cobra"
)

func (a *app) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "list [category...]",
		Short:     "List the files produced by generate",
		ValidArgs: categoryNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cats, err := parseCategories(args)
			if err != nil {
				return err
			}
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			format, err := brandgen.ParseFormat(cfg.Mission.Format)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "FILE\tCATEGORY\tSIZE\tFORMAT")
			for _, p := range brandgen.Plan(format, cats...) {
				fmt.Fprintf(w, "%s\t%s\t%dx%d\t%s\n", p.Name, p.Category, p.Width, p.Height, p.Format)
			}
			return w.Flush()
		},
	}
}
