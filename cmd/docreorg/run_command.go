package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"docreorg/internal/logging"
	"docreorg/internal/reorganizer"
	"docreorg/internal/runlock"
)

type runOptions struct {
	dryRun  bool
	summary bool
	json    bool
}

func newPlanCommand(ctx *commandContext) *cobra.Command {
	var opts runOptions
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show what a run would do without changing anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.dryRun = true
			return runReorganize(cmd, ctx, opts)
		},
	}
	addReportFlags(cmd, &opts)
	return cmd
}

func runReorganize(cmd *cobra.Command, ctx *commandContext, opts runOptions) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	mapping, origin, err := ctx.mapping()
	if err != nil {
		return err
	}
	baseLogger, err := ctx.logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	runCtx := logging.WithRunID(cmd.Context(), uuid.NewString())
	logger := logging.WithContext(runCtx, baseLogger)
	logger.Info("mapping resolved", logging.String("mapping", origin), logging.Int("groups", len(mapping)))
	for _, shared := range mapping.SharedSources() {
		logger.Warn(
			"source referenced by several groups; only the first receives it",
			logging.String("source", shared.Source),
			logging.Strings("groups", shared.Groups),
		)
	}

	if !opts.dryRun {
		if err := cfg.EnsureDirectories(); err != nil {
			return err
		}
		lock, err := runlock.Acquire(cfg.LockPath())
		if err != nil {
			return err
		}
		defer func() {
			if err := lock.Release(); err != nil {
				logger.Warn("release run lock failed", logging.Error(err))
			}
		}()
	}

	stdout := cmd.OutOrStdout()
	var trace io.Writer = stdout
	if opts.json {
		trace = io.Discard
	}
	r := reorganizer.New(reorganizer.Options{Logger: baseLogger, Trace: trace, DryRun: opts.dryRun})
	report, runErr := r.Run(runCtx, mapping, cfg.Paths.SourceDir, cfg.DestRoot())
	if missing := report.Missing(); len(missing) > 0 {
		sources := make([]string, 0, len(missing))
		for _, e := range missing {
			sources = append(sources, e.Source)
		}
		logger.Warn("sources not found; destinations left untouched", logging.Int("count", len(missing)), logging.Strings("sources", sources))
	}

	// The partial report is still printed when the run aborts.
	switch {
	case opts.json:
		if err := writeJSON(stdout, report); err != nil && runErr == nil {
			return fmt.Errorf("write report: %w", err)
		}
	case opts.summary:
		fmt.Fprint(stdout, renderSummary(report))
		fmt.Fprintln(stdout)
	}
	return runErr
}

func renderSummary(report *reorganizer.Report) string {
	headers := []string{"Group", "Moved", "In place", "Created", "Skipped", "Missing"}
	aligns := []columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight}
	var rows [][]string
	var total reorganizer.GroupSummary
	for _, g := range report.Groups() {
		rows = append(rows, []string{
			g.Name,
			strconv.Itoa(g.Moved),
			strconv.Itoa(g.InPlace),
			strconv.Itoa(g.Created),
			strconv.Itoa(g.Skipped),
			strconv.Itoa(g.Missing),
		})
		total.Moved += g.Moved
		total.InPlace += g.InPlace
		total.Created += g.Created
		total.Skipped += g.Skipped
		total.Missing += g.Missing
	}
	label := "Total"
	if report.DryRun {
		label = "Total (dry run)"
	}
	footer := []string{
		label,
		strconv.Itoa(total.Moved),
		strconv.Itoa(total.InPlace),
		strconv.Itoa(total.Created),
		strconv.Itoa(total.Skipped),
		strconv.Itoa(total.Missing),
	}
	return strings.TrimRight(renderTable(headers, rows, aligns, footer), "\n")
}
