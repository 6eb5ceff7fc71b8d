package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var flags globalFlags
	var opts runOptions

	ctx := newCommandContext(&flags)

	rootCmd := &cobra.Command{
		Use:           "docreorg",
		Short:         "Reorganize workshop documentation into numbered sections",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReorganize(cmd, ctx, opts)
		},
	}

	persistent := rootCmd.PersistentFlags()
	persistent.StringVarP(&flags.config, "config", "c", "", "Configuration file path")
	persistent.StringVar(&flags.source, "source", "", "Directory holding the legacy files (overrides paths.source_dir)")
	persistent.StringVar(&flags.dest, "dest", "", "Directory receiving the section folders (overrides paths.dest_dir)")
	persistent.StringVar(&flags.preset, "preset", "", "Built-in mapping preset (overrides mapping.preset)")
	persistent.StringVar(&flags.mapping, "mapping", "", "TOML mapping file (wins over --preset)")

	rootCmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Print the planned actions without changing anything")
	addReportFlags(rootCmd, &opts)

	rootCmd.AddCommand(newPlanCommand(ctx))
	rootCmd.AddCommand(newMappingCommand(ctx))
	rootCmd.AddCommand(newStatusCommand(ctx))
	rootCmd.AddCommand(newCheckCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

func addReportFlags(cmd *cobra.Command, opts *runOptions) {
	cmd.Flags().BoolVar(&opts.summary, "summary", false, "Print per-group counts after the trace")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Print the run report as JSON instead of the trace")
}
