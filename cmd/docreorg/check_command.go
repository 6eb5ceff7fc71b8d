package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"docreorg/internal/faults"
	"docreorg/internal/preflight"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the configured directories are usable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			configDetail := "defaults (no config file found)"
			if ctx.configSeen {
				configDetail = ctx.configPath
			}
			fmt.Fprintln(out, renderStatusLine("Config", statusInfo, configDetail, colorize))
			fmt.Fprintln(out, renderStatusLine("Mapping", statusInfo, mappingOrigin(ctx), colorize))

			results := preflight.RunAll(cfg)
			for _, r := range results {
				kind := statusOK
				if !r.Passed {
					kind = statusError
				}
				fmt.Fprintln(out, renderStatusLine(r.Name, kind, r.Detail, colorize))
			}
			if !preflight.AllPassed(results) {
				return faults.Wrap(faults.ErrConfiguration, "cli", "preflight", "one or more checks failed", nil)
			}
			return nil
		},
	}
}

func mappingOrigin(ctx *commandContext) string {
	m, origin, err := ctx.mapping()
	if err != nil {
		return fmt.Sprintf("unavailable: %v", err)
	}
	return fmt.Sprintf("%s (%d groups, %d rules, shared sources: %s)", origin, len(m), m.RuleCount(), yesNo(len(m.SharedSources()) > 0))
}
