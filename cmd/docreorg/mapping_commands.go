package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"docreorg/internal/config"
	"docreorg/internal/fileutil"
	"docreorg/internal/layout"
)

func newMappingCommand(ctx *commandContext) *cobra.Command {
	mappingCmd := &cobra.Command{
		Use:   "mapping",
		Short: "Inspect the layout mapping",
	}
	mappingCmd.AddCommand(newMappingShowCommand(ctx))
	mappingCmd.AddCommand(newMappingCheckCommand(ctx))
	mappingCmd.AddCommand(newMappingExportCommand(ctx))
	return mappingCmd
}

func newMappingShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "List every rule of the resolved mapping",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, origin, err := ctx.mapping()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Mapping: %s (%d groups, %d rules)\n", origin, len(m), m.RuleCount())
			fmt.Fprintln(out, renderMapping(m))
			return nil
		},
	}
}

func renderMapping(m layout.Mapping) string {
	headers := []string{"Group", "Kind", "Source", "Destination"}
	var rows [][]string
	for _, group := range m {
		for _, rule := range group.Rules {
			switch r := rule.(type) {
			case layout.Relocate:
				rows = append(rows, []string{group.Name, "move", r.Source, r.Dest})
			case layout.Synthesize:
				rows = append(rows, []string{group.Name, "placeholder", "-", r.Dest})
			}
		}
	}
	return renderTable(headers, rows, nil, nil)
}

func newMappingCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the mapping and list sources claimed by several groups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, origin, err := ctx.mapping()
			if err != nil {
				return err
			}
			if err := m.Validate(); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Mapping valid: %s\n", origin)
			shared := m.SharedSources()
			if len(shared) == 0 {
				fmt.Fprintln(out, "No shared sources")
				return nil
			}
			fmt.Fprintf(out, "Shared sources (%d); only the first group listed receives each file:\n", len(shared))
			for _, s := range shared {
				fmt.Fprintf(out, "  %s: %s\n", s.Source, strings.Join(s.Groups, ", "))
			}
			return nil
		},
	}
}

func newMappingExportCommand(ctx *commandContext) *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the resolved mapping as a TOML mapping file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, _, err := ctx.mapping()
			if err != nil {
				return err
			}
			target := strings.TrimSpace(targetPath)
			if target == "" {
				return layout.Encode(cmd.OutOrStdout(), m)
			}
			target, err = config.ExpandPath(target)
			if err != nil {
				return fmt.Errorf("resolve mapping path: %w", err)
			}
			if !overwrite {
				exists, err := fileutil.Lexists(target)
				if err != nil {
					return fmt.Errorf("check mapping path: %w", err)
				}
				if exists {
					return fmt.Errorf("mapping file already exists at %s (use --overwrite to replace it)", target)
				}
			}
			var buf strings.Builder
			if err := layout.Encode(&buf, m); err != nil {
				return err
			}
			if err := fileutil.WriteFile(target, []byte(buf.String()), 0o644); err != nil {
				return fmt.Errorf("write mapping file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote mapping to %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "output", "o", "", "Write to this file instead of stdout")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace an existing file")
	return cmd
}

