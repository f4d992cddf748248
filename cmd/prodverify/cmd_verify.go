package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ochairo/prodverify/internal/external-adapters/report"
)

func newVerifyCmd(opts *globalOptions) *cobra.Command {
	src := &sourceOptions{}
	var format string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify dependency artifacts and fail on non-productized ones",
		Long: `Scan every configured directory and distribution, classify each artifact
and fail when any artifact is invalid.

Directories are scanned first and must yield at least one artifact before
distributions are opened.`,
		Example: `  prodverify verify --directory target/lib
  prodverify verify -d target/lib --distribution target/my-app-dist.zip
  prodverify verify --config prodverify.yml --ignore '**/hibernate-core-1.2.3.jar'
  prodverify verify --config prodverify.yml --format json`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			reportFormat, err := report.ParseFormat(format)
			if err != nil {
				return &usageError{Err: err, usage: cmd.UsageString()}
			}

			cfg, err := loadConfiguration(cmd, opts, src)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			orchestrator := newOrchestrator(cmd.ErrOrStderr(), cfg)
			result, verifyErr := orchestrator.Verify(cmd.Context(), cfg)
			if result == nil {
				return verifyErr
			}

			if reportFormat == report.FormatJSON {
				if err := report.Write(out, result.Report, reportFormat); err != nil {
					return err
				}
				return verifyErr
			}

			fmt.Fprintln(out, rule)
			if err := report.WriteText(out, result.Report); err != nil {
				return err
			}
			if result.Report.Passed() {
				fmt.Fprintln(out, SuccessStyle.Render(fmt.Sprintf("✅ PASS: %d artifacts verified", result.Report.Total)))
			} else {
				fmt.Fprintln(out, ErrorStyle.Render(fmt.Sprintf("❌ FAIL: %d invalid artifacts", result.Report.InvalidCount)))
			}
			fmt.Fprintln(out, rule)

			return verifyErr
		},
	}

	addSourceFlags(cmd, src)
	cmd.Flags().StringVarP(&format, "format", "f", string(report.FormatText), "report format (text or json)")

	return cmd
}
