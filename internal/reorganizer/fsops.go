package reorganizer

import (
	"os"
	"path/filepath"

	"docreorg/internal/fileutil"
)

// fsOps is the set of filesystem effects a run performs. The disk
// implementation applies them; the plan implementation only records them so a
// dry run sees the tree as the real run would.
type fsOps interface {
	// exists follows symlinks; lexists treats a dangling link as present.
	exists(path string) (bool, error)
	lexists(path string) (bool, error)
	mkdirAll(path string) error
	move(src, dst string) error
	write(path string, data []byte) error
}

type diskOps struct{}

func (diskOps) exists(path string) (bool, error) { return fileutil.Exists(path) }

func (diskOps) lexists(path string) (bool, error) { return fileutil.Lexists(path) }

func (diskOps) mkdirAll(path string) error { return os.MkdirAll(path, 0o755) }

func (diskOps) move(src, dst string) error { return fileutil.Move(src, dst) }

func (diskOps) write(path string, data []byte) error {
	return fileutil.WriteFile(path, data, 0o644)
}

type planOps struct {
	overlay map[string]bool
}

func newPlanOps() *planOps {
	return &planOps{overlay: map[string]bool{}}
}

func (p *planOps) exists(path string) (bool, error) {
	if present, ok := p.overlay[filepath.Clean(path)]; ok {
		return present, nil
	}
	return fileutil.Exists(path)
}

func (p *planOps) lexists(path string) (bool, error) {
	if present, ok := p.overlay[filepath.Clean(path)]; ok {
		return present, nil
	}
	return fileutil.Lexists(path)
}

func (p *planOps) mkdirAll(path string) error {
	p.overlay[filepath.Clean(path)] = true
	return nil
}

func (p *planOps) move(src, dst string) error {
	p.overlay[filepath.Clean(src)] = false
	p.overlay[filepath.Clean(dst)] = true
	return nil
}

func (p *planOps) write(path string, _ []byte) error {
	p.overlay[filepath.Clean(path)] = true
	return nil
}
