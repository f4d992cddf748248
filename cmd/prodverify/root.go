package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ochairo/prodverify/internal/domain-adapters/gateways"
	orchestrators "github.com/ochairo/prodverify/internal/domain-orchestrators"
	"github.com/ochairo/prodverify/internal/domain/entities"
	"github.com/ochairo/prodverify/internal/domain/services"
	"github.com/ochairo/prodverify/internal/external-adapters/charmlog"
	"github.com/ochairo/prodverify/internal/external-adapters/yaml"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
)

// globalOptions holds flags shared by every subcommand
type globalOptions struct {
	configFile string
	verbose    bool
}

// sourceOptions holds the source selection flags
type sourceOptions struct {
	directories   []string
	distributions []string
	fileTypes     []string
	ignoreFiles   []string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "prodverify",
		Short: "Verify that dependency artifacts are productized",
		Long: TitleStyle.Render("prodverify") + SubtleStyle.Render(" - productized dependency verification") + `

prodverify scans directories and distribution archives (zip, jar, war,
tar, tar.gz) for dependency artifacts and fails when any artifact's file
name lacks a -redhat- or .redhat- marker.

Exit Codes:
  0  All artifacts valid or ignored
  1  Invalid artifacts found
  2  Configuration or usage error
  3  I/O or unexpected error`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return &usageError{Err: err, usage: c.UsageString()}
	})

	root.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "YAML config file (fileTypes, directories, distributions, ignoreFiles, verbose)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose diagnostic output")

	root.AddCommand(newVerifyCmd(opts))
	root.AddCommand(newScanCmd(opts))
	root.AddCommand(newCheckCmd(opts))
	root.AddCommand(newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  usageArgs(cobra.NoArgs),
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "prodverify %s (%s)\n", Version, Commit)
		},
	}
}

// usageArgs reports positional argument errors as usage errors
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return &usageError{Err: err, usage: cmd.UsageString()}
		}
		return nil
	}
}

func addSourceFlags(cmd *cobra.Command, src *sourceOptions) {
	cmd.Flags().StringArrayVarP(&src.directories, "directory", "d", nil, "directory to scan (repeatable)")
	cmd.Flags().StringArrayVar(&src.distributions, "distribution", nil, "distribution archive to scan (repeatable)")
	cmd.Flags().StringSliceVarP(&src.fileTypes, "file-type", "t", nil, "file extensions to collect (default jar)")
	cmd.Flags().StringArrayVarP(&src.ignoreFiles, "ignore", "i", nil, "glob pattern of identities to ignore (repeatable)")
}

// loadConfiguration merges the config file (if any) with command-line flags.
// Flags append to file lists; --file-type replaces the file's types.
func loadConfiguration(cmd *cobra.Command, opts *globalOptions, src *sourceOptions) (entities.Configuration, error) {
	var cfg entities.Configuration

	if opts.configFile != "" {
		repo := yaml.NewConfigRepository(yaml.NewConfigParser(gateways.NewGlobMatcher()))
		loaded, err := repo.Load(cmd.Context(), opts.configFile)
		if err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	cfg.Directories = append(cfg.Directories, src.directories...)
	cfg.Distributions = append(cfg.Distributions, src.distributions...)
	cfg.IgnoreFiles = append(cfg.IgnoreFiles, src.ignoreFiles...)
	if len(src.fileTypes) > 0 {
		cfg.FileTypes = src.fileTypes
	}
	cfg.Verbose = cfg.Verbose || opts.verbose

	matcher := gateways.NewGlobMatcher()
	for _, pattern := range cfg.IgnoreFiles {
		if err := matcher.Validate(pattern); err != nil {
			return cfg, &entities.ConfigurationError{Reason: "invalid ignore pattern", Err: err}
		}
	}

	return cfg.Normalize(), nil
}

// newOrchestrator wires the production adapters
func newOrchestrator(stderr io.Writer, cfg entities.Configuration) *orchestrators.VerificationOrchestrator {
	logger := charmlog.New(stderr, cfg.Verbose)
	scanner := gateways.NewSourceScanner(gateways.NewDirectoryLister(), gateways.NewArchiveReader(), logger)
	classifier := services.NewClassifierService(gateways.NewGlobMatcher())
	return orchestrators.NewVerificationOrchestrator(scanner, classifier, logger)
}
