package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newScanCmd(opts *globalOptions) *cobra.Command {
	src := &sourceOptions{}

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "List the artifact identities discovered in the configured sources",
		Long: `List every artifact identity ("<container>::<entry>") found in the
configured directories and distributions, without classifying them.

Unlike verify, an empty directory result is not an error.`,
		Example: `  prodverify scan --directory target/lib
  prodverify scan --distribution target/my-app-dist.zip --file-type jar,war`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfiguration(cmd, opts, src)
			if err != nil {
				return err
			}

			ids, err := newOrchestrator(cmd.ErrOrStderr(), cfg).Discover(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, id := range ids {
				fmt.Fprintln(out, id.String())
			}
			fmt.Fprintln(out, SubtleStyle.Render(fmt.Sprintf("📦 Found %d artifact files", len(ids))))
			return nil
		},
	}

	addSourceFlags(cmd, src)
	return cmd
}
