package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"docreorg/internal/reorganizer"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show which mapped pages exist, are placeholders, or are missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			m, _, err := ctx.mapping()
			if err != nil {
				return err
			}
			groups, err := reorganizer.Inspect(m, cfg.DestRoot())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, groups)
			}
			fmt.Fprintln(out, renderStatus(groups))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print status as JSON")
	return cmd
}

func renderStatus(groups []reorganizer.GroupStatus) string {
	headers := []string{"Group", "Descriptor", "Authored", "Placeholder", "Absent"}
	aligns := []columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight}
	rows := make([][]string, 0, len(groups))
	var authored, placeholder, absent int
	for _, g := range groups {
		counts := map[reorganizer.PageState]int{}
		for _, p := range g.Pages {
			counts[p.State]++
		}
		authored += counts[reorganizer.PageAuthored]
		placeholder += counts[reorganizer.PagePlaceholder]
		absent += counts[reorganizer.PageAbsent]
		rows = append(rows, []string{
			g.Name,
			descriptorLabel(g.DescriptorCurrent),
			strconv.Itoa(counts[reorganizer.PageAuthored]),
			strconv.Itoa(counts[reorganizer.PagePlaceholder]),
			strconv.Itoa(counts[reorganizer.PageAbsent]),
		})
	}
	footer := []string{"Total", "", strconv.Itoa(authored), strconv.Itoa(placeholder), strconv.Itoa(absent)}
	return renderTable(headers, rows, aligns, footer)
}

func descriptorLabel(current bool) string {
	if current {
		return "current"
	}
	return "stale"
}
