package walker

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/bethropolis/ctx-clip/internal/policy"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
}

// collectWalk runs Walk and records the delivered files in order.
func collectWalk(t *testing.T, root string, pol *policy.Policy, opts ...Option) (paths []string, contents map[string]string, skipped []SkippedItem) {
	t.Helper()
	contents = map[string]string{}
	walkFn := func(relativePath string, content []byte, err error) error {
		if err != nil {
			return nil
		}
		paths = append(paths, filepath.ToSlash(relativePath))
		contents[filepath.ToSlash(relativePath)] = string(content)
		return nil
	}
	skipped, err := Walk(root, pol, walkFn, opts...)
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
	return paths, contents, skipped
}

func TestWalkSelectsByExtension(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.js", "var a;")
	writeFile(t, root, "b.txt", "text")
	writeFile(t, root, "node_modules/c.js", "var c;")

	pol := policy.New(policy.WithExtensions([]string{".js"}))
	paths, contents, _ := collectWalk(t, root, pol)

	if !reflect.DeepEqual(paths, []string{"a.js"}) {
		t.Fatalf("admitted = %v; want [a.js]", paths)
	}
	if contents["a.js"] != "var a;" {
		t.Errorf("content of a.js = %q; want %q", contents["a.js"], "var a;")
	}
}

func TestWalkPrunesExcludedDirectories(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "keep.go", "package main")
	writeFile(t, root, "node_modules/dep/index.js", "x")
	writeFile(t, root, "node_modules/dep/deep/more.go", "y")

	pol := policy.New(policy.WithExtensions([]string{".go", ".js"}))
	paths, _, skipped := collectWalk(t, root, pol)

	if !reflect.DeepEqual(paths, []string{"keep.go"}) {
		t.Fatalf("admitted = %v; want [keep.go]", paths)
	}

	// The pruned directory is tracked once; nothing beneath it is
	// ever visited or tracked.
	var sawDir bool
	for _, item := range skipped {
		rel := filepath.ToSlash(item.Path)
		if rel == "node_modules" {
			sawDir = true
			continue
		}
		if strings.HasPrefix(rel, "node_modules/") {
			t.Errorf("entry beneath pruned directory was visited: %s", rel)
		}
	}
	if !sawDir {
		t.Error("pruned node_modules directory was not tracked")
	}
}

func TestWalkSkipsNonRegularEntries(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "real.go", "package main")
	if err := os.Symlink(filepath.Join(root, "real.go"), filepath.Join(root, "link.go")); err != nil {
		t.Skipf("cannot create symlink: %v", err)
	}

	pol := policy.New(policy.WithExtensions([]string{".go"}))
	paths, _, skipped := collectWalk(t, root, pol)

	if !reflect.DeepEqual(paths, []string{"real.go"}) {
		t.Fatalf("admitted = %v; want [real.go]", paths)
	}
	var tracked bool
	for _, item := range skipped {
		if item.Path == "link.go" && item.Reason == ReasonSkippedNotRegular {
			tracked = true
		}
	}
	if !tracked {
		t.Error("symlink was not tracked as non-regular")
	}
}

func TestWalkOrderIsReproducible(t *testing.T) {
	root := t.TempDir()
	for i := 0; i < 12; i++ {
		writeFile(t, root, fmt.Sprintf("pkg%d/file%d.go", i%3, i), fmt.Sprintf("content %d", i))
	}

	pol := policy.New(policy.WithExtensions([]string{".go"}))
	first, _, _ := collectWalk(t, root, pol)
	second, _, _ := collectWalk(t, root, pol)

	if len(first) != 12 {
		t.Fatalf("admitted %d files; want 12", len(first))
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("two walks over an unchanged tree differ:\n%v\n%v", first, second)
	}
}

func TestConcurrentReadsPreserveAdmissionOrder(t *testing.T) {
	root := t.TempDir()
	for i := 0; i < 24; i++ {
		writeFile(t, root, fmt.Sprintf("f%02d.go", i), fmt.Sprintf("content %d", i))
	}

	pol := policy.New(policy.WithExtensions([]string{".go"}))
	sequential, seqContents, _ := collectWalk(t, root, pol)
	concurrent, conContents, _ := collectWalk(t, root, pol,
		WithConcurrency(true), WithMaxWorkers(4))

	if !reflect.DeepEqual(sequential, concurrent) {
		t.Errorf("concurrent delivery order differs from admission order:\n%v\n%v", sequential, concurrent)
	}
	if !reflect.DeepEqual(seqContents, conContents) {
		t.Error("concurrent reads delivered different contents")
	}
}

func TestWalkEnforcesSizeLimit(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "small.go", "ok")
	writeFile(t, root, "big.go", "this file body is past the limit")

	pol := policy.New(policy.WithExtensions([]string{".go"}))

	var delivered []string
	var failed []string
	walkFn := func(relativePath string, content []byte, err error) error {
		if err != nil {
			failed = append(failed, relativePath)
			return nil
		}
		delivered = append(delivered, relativePath)
		return nil
	}

	skipped, err := Walk(root, pol, walkFn, WithMaxFileSize(10))
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	if !reflect.DeepEqual(delivered, []string{"small.go"}) {
		t.Fatalf("delivered = %v; want [small.go]", delivered)
	}
	if !reflect.DeepEqual(failed, []string{"big.go"}) {
		t.Fatalf("failed = %v; want [big.go]", failed)
	}
	var tracked bool
	for _, item := range skipped {
		if item.Path == "big.go" && item.Reason == ReasonSkippedSizeLimit {
			tracked = true
		}
	}
	if !tracked {
		t.Error("oversized file was not tracked with the size-limit reason")
	}
}

func TestWalkMissingRootFails(t *testing.T) {
	pol := policy.New(policy.WithExtensions([]string{".go"}))
	_, err := Walk(filepath.Join(t.TempDir(), "does-not-exist"), pol, func(string, []byte, error) error { return nil })
	if err == nil {
		t.Fatal("walking a missing root must fail")
	}
}
