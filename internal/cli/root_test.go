package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/bethropolis/ctx-clip/internal/aggregate"
)

func runCommand(t *testing.T, args ...string) error {
	t.Helper()
	cmd := NewRootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestMissingDirIsRejected(t *testing.T) {
	if err := runCommand(t, "--ext", ".go"); err == nil {
		t.Fatal("invocation without --dir must fail")
	}
}

func TestMissingFiltersAreRejectedBeforeTraversal(t *testing.T) {
	// The root deliberately does not exist: validation must fail
	// before any filesystem access would notice.
	root := filepath.Join(t.TempDir(), "never-created")
	if err := runCommand(t, "--dir", root); err == nil {
		t.Fatal("invocation without --ext and --include must fail")
	}
}

func TestMalformedExtensionIsRejected(t *testing.T) {
	if err := runCommand(t, "--dir", t.TempDir(), "--ext", "go"); err == nil {
		t.Fatal("extension without a leading dot must fail")
	}
}

func TestEndToEndSelectionAndArtifact(t *testing.T) {
	root := t.TempDir()
	files := map[string]string{
		"a.js":              "var a;",
		"b.txt":             "text",
		"node_modules/c.js": "var c;",
	}
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	out := filepath.Join(t.TempDir(), "artifact.txt")
	err := runCommand(t, "--dir", root, "--ext", ".js", "--output", out, "--quiet")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading artifact: %v", err)
	}
	want := "\n=== a.js ===\n\nvar a;\n"
	if string(got) != want {
		t.Errorf("artifact = %q; want %q", got, want)
	}
}

func TestEndToEndIncludePrompt(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "Dockerfile"), []byte("FROM scratch\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(t.TempDir(), "artifact.txt")
	err := runCommand(t, "--dir", root, "--include", "Dockerfile", "--include-prompt", "--output", out, "--quiet")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading artifact: %v", err)
	}
	want := aggregate.Prompt + "\n\n" + "\n=== Dockerfile ===\n\nFROM scratch\n\n"
	if string(got) != want {
		t.Errorf("artifact = %q; want %q", got, want)
	}
}
