package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ochairo/prodverify/internal/domain/entities"
)

func newCheckCmd(opts *globalOptions) *cobra.Command {
	src := &sourceOptions{}

	cmd := &cobra.Command{
		Use:   "check <identity>...",
		Short: "Classify literal artifact identities",
		Long: `Classify each argument as valid, invalid or ignored without scanning.

Arguments use the "<container>::<entry>" form; a bare file name is also
accepted. Ignore patterns come from --ignore and the config file.`,
		Example: `  prodverify check 'my-app-redhat-123.zip::lib/hibernate-core-1.2.3.jar'
  prodverify check --ignore '**/guava-*.jar' 'dist.zip::lib/guava-31.jar'`,
		Args: usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfiguration(cmd, opts, src)
			if err != nil {
				return err
			}

			decisions := newOrchestrator(cmd.ErrOrStderr(), cfg).Check(cfg, args)

			out := cmd.OutOrStdout()
			invalid := make([]entities.ArtifactIdentity, 0)
			for _, d := range decisions {
				line := fmt.Sprintf("%-8s %s", d.Classification, d.Identity)
				switch d.Classification {
				case entities.Invalid:
					invalid = append(invalid, d.Identity)
					fmt.Fprintln(out, ErrorStyle.Render(line))
				case entities.Ignored:
					fmt.Fprintln(out, SubtleStyle.Render(line+" (pattern "+d.MatchedPattern+")"))
				default:
					fmt.Fprintln(out, SuccessStyle.Render(line))
				}
			}

			if len(invalid) > 0 {
				entities.SortIdentities(invalid)
				return &entities.ValidationFailure{Invalid: invalid}
			}
			return nil
		},
	}

	addSourceFlags(cmd, src)
	return cmd
}
