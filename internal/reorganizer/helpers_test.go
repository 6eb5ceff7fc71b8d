package reorganizer

import (
	"bytes"
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"docreorg/internal/layout"
	"docreorg/internal/logging"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func requireAbsent(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Lstat(path); !os.IsNotExist(err) {
		t.Fatalf("expected %s to be absent, stat err = %v", path, err)
	}
}

// snapshot maps every path under root to its content ("/" marks directories).
func snapshot(t *testing.T, root string) map[string]string {
	t.Helper()
	out := map[string]string{}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if d.IsDir() {
			out[rel] = "/"
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		out[rel] = string(data)
		return nil
	})
	if err != nil {
		t.Fatalf("walk %s: %v", root, err)
	}
	return out
}

func run(t *testing.T, m layout.Mapping, sourceRoot, destRoot string, dryRun bool) (*Report, string, error) {
	t.Helper()
	var trace bytes.Buffer
	r := New(Options{Logger: logging.NewNop(), Trace: &trace, DryRun: dryRun})
	report, err := r.Run(context.Background(), m, sourceRoot, destRoot)
	return report, trace.String(), err
}

// seedRestructureTree lays out the legacy files the restructure preset moves.
func seedRestructureTree(t *testing.T, root string) {
	t.Helper()
	for _, rel := range []string{
		"10-Introduction/01-introduction.md",
		"installation.md",
		"20-mongodb-atlas/3-create-cluster.mdx",
		"30-RAG-Concepts/1-rag-concepts.md",
		"30-RAG-Concepts/2-how-rag-works.mdx",
		"40-MongoDB-RAG/3-create-embeddings.mdx",
		"50-build-rag-app/1-introduction.mdx",
		"50-build-rag-app/3-perform-vector-search.mdx",
		"70-production-deployment/1-introduction.mdx",
	} {
		writeFile(t, filepath.Join(root, rel), "# "+rel+"\n")
	}
}
