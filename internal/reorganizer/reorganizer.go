package reorganizer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"docreorg/internal/docsite"
	"docreorg/internal/faults"
	"docreorg/internal/layout"
	"docreorg/internal/logging"
)

const component = "reorganizer"

// Options configures a Reorganizer.
type Options struct {
	Logger *slog.Logger
	// Trace receives one line per action. Nil discards the trace.
	Trace io.Writer
	// DryRun plans the run without touching the filesystem.
	DryRun bool
}

// Reorganizer applies mappings to a documentation tree.
type Reorganizer struct {
	logger *slog.Logger
	trace  io.Writer
	dryRun bool
}

// New constructs a Reorganizer.
func New(opts Options) *Reorganizer {
	trace := opts.Trace
	if trace == nil {
		trace = io.Discard
	}
	return &Reorganizer{
		logger: logging.NewComponentLogger(opts.Logger, component),
		trace:  trace,
		dryRun: opts.DryRun,
	}
}

// Run applies mapping with sources resolved under sourceRoot and groups
// created under destRoot. The returned report lists every action completed,
// including when Run also returns an error.
func (r *Reorganizer) Run(ctx context.Context, mapping layout.Mapping, sourceRoot, destRoot string) (*Report, error) {
	started := time.Now()
	report := &Report{SourceRoot: sourceRoot, DestRoot: destRoot, DryRun: r.dryRun}
	if err := mapping.Validate(); err != nil {
		return report, err
	}

	var ops fsOps = diskOps{}
	if r.dryRun {
		ops = newPlanOps()
	}
	run := &runState{
		Reorganizer: r,
		ops:         ops,
		report:      report,
		logger:      logging.WithContext(ctx, r.logger),
		sourceRoot:  sourceRoot,
		destRoot:    destRoot,
	}

	run.logger.Info(
		"reorganization started",
		logging.String("source_root", sourceRoot),
		logging.String("dest_root", destRoot),
		logging.Int("groups", len(mapping)),
		logging.Int("rules", mapping.RuleCount()),
		logging.Bool("dry_run", r.dryRun),
	)

	for _, group := range mapping {
		if err := run.group(ctx, group); err != nil {
			run.logger.Error("reorganization aborted", logging.String(logging.FieldGroup, group.Name), logging.Error(err))
			return report, err
		}
	}

	run.logger.Info(
		"reorganization completed",
		logging.Int("moved", report.Count(ActionMoved)),
		logging.Int("created", report.Count(ActionCreated)),
		logging.Int("skipped", report.Count(ActionSkipped)),
		logging.Int("missing", report.Count(ActionMissing)),
		logging.Bool("dry_run", r.dryRun),
		logging.Duration("elapsed", time.Since(started)),
	)
	return report, nil
}

type runState struct {
	*Reorganizer
	ops        fsOps
	report     *Report
	logger     *slog.Logger
	sourceRoot string
	destRoot   string
}

func (s *runState) group(ctx context.Context, group layout.Group) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	groupDir := filepath.Join(s.destRoot, group.Name)
	if err := s.ops.mkdirAll(groupDir); err != nil {
		return ioFailure("create group directory", groupDir, err)
	}

	for _, rule := range group.Rules {
		if err := ctx.Err(); err != nil {
			return err
		}
		destPath := filepath.Join(groupDir, rule.Destination())
		var err error
		switch rl := rule.(type) {
		case layout.Relocate:
			err = s.relocate(group.Name, filepath.Join(s.sourceRoot, rl.Source), destPath)
		case layout.Synthesize:
			err = s.synthesize(group.Name, rl.Dest, destPath)
		default:
			err = faults.Wrap(faults.ErrValidation, component, "apply rule", fmt.Sprintf("unsupported rule type %T", rule), nil)
		}
		if err != nil {
			return err
		}
	}

	return s.descriptor(group.Name, groupDir)
}

func (s *runState) relocate(group, srcPath, destPath string) error {
	present, err := s.ops.exists(srcPath)
	if err != nil {
		return ioFailure("inspect source", srcPath, err)
	}
	switch {
	case !present:
		s.emit(Entry{Group: group, Action: ActionMissing, Source: srcPath, Dest: destPath}, "Warning: %s not found!", srcPath)
	case filepath.Clean(srcPath) == filepath.Clean(destPath):
		s.emit(Entry{Group: group, Action: ActionInPlace, Source: srcPath, Dest: destPath}, "Already in place: %s", destPath)
	default:
		if err := s.ops.move(srcPath, destPath); err != nil {
			return ioFailure("move", srcPath, err)
		}
		s.emit(Entry{Group: group, Action: ActionMoved, Source: srcPath, Dest: destPath}, "Moved: %s -> %s", srcPath, destPath)
	}
	return nil
}

func (s *runState) synthesize(group, dest, destPath string) error {
	present, err := s.ops.lexists(destPath)
	if err != nil {
		return ioFailure("inspect destination", destPath, err)
	}
	if present {
		s.emit(Entry{Group: group, Action: ActionSkipped, Dest: destPath}, "Skipped existing: %s", destPath)
		return nil
	}
	page, err := docsite.Placeholder(dest)
	if err != nil {
		return faults.Wrap(faults.ErrValidation, component, "render placeholder", dest, err)
	}
	if err := s.ops.mkdirAll(filepath.Dir(destPath)); err != nil {
		return ioFailure("create placeholder directory", filepath.Dir(destPath), err)
	}
	if err := s.ops.write(destPath, page); err != nil {
		return ioFailure("write placeholder", destPath, err)
	}
	s.emit(Entry{Group: group, Action: ActionCreated, Dest: destPath}, "Created placeholder: %s", destPath)
	return nil
}

func (s *runState) descriptor(group, groupDir string) error {
	path := filepath.Join(groupDir, docsite.CategoryFile)
	data, err := docsite.NewCategory(group).Marshal()
	if err != nil {
		return faults.Wrap(faults.ErrValidation, component, "render descriptor", group, err)
	}
	if err := s.ops.write(path, data); err != nil {
		return ioFailure("write descriptor", path, err)
	}
	s.emit(Entry{Group: group, Action: ActionDescriptor, Dest: path}, "Created category file: %s", path)
	return nil
}

func (s *runState) emit(entry Entry, format string, args ...any) {
	s.report.record(entry)
	prefix := ""
	if s.dryRun {
		prefix = "[dry-run] "
	}
	// Trace write errors are ignored.
	_, _ = fmt.Fprintf(s.trace, prefix+format+"\n", args...)
	s.logger.Debug(
		"rule applied",
		logging.String(logging.FieldGroup, entry.Group),
		logging.String(logging.FieldAction, string(entry.Action)),
		logging.String("source", entry.Source),
		logging.String("dest", entry.Dest),
	)
}

func ioFailure(operation, path string, err error) error {
	return faults.Wrap(faults.ErrIO, component, operation, path, err)
}
