package main

import (
	"fmt"

	"github.com/lumina-ai/brandgen"
	"github.com/lumina-ai/brandgen/utils"
	"github.com/spf13/cobra"
)

func (a *app) verifyCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:       "verify [category...]",
		Short:     "Check that the generated files exist with the expected format and size",
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
			if dir == "" {
				dir = cfg.OutputDir
			}
			format, err := brandgen.ParseFormat(cfg.Mission.Format)
			if err != nil {
				return err
			}

			plan := brandgen.Plan(format, cats...)
			if err := brandgen.Verify(dir, plan); err != nil {
				return fmt.Errorf("verification failed:\n%w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
				utils.DecorateText(utils.Plural(len(plan), "file")+" verified in "+dir, utils.DefaultMessage),
				utils.DecorateText("✔", utils.SuccessMessage),
			)
			return nil
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "directory to check (default: the configured output directory)")
	return cmd
}
