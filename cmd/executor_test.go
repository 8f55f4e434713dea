package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"envedit/envfile"
	"envedit/internal/paths"
)

func setupOverrides(t *testing.T) {
	t.Helper()
	tempDir := t.TempDir()
	paths.ConfigHomeOverride = tempDir
	paths.StateHomeOverride = tempDir
	t.Cleanup(func() {
		paths.ConfigHomeOverride = ""
		paths.StateHomeOverride = ""
	})
}

func TestExecuteSetAndUnset(t *testing.T) {
	setupOverrides(t)
	ctx := context.Background()

	target := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(target, []byte("# config\nA=1\nB=2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if code := Execute(ctx, []string{"--file", target, "--set", "A=9", "--unset", "B"}); code != 0 {
		t.Fatalf("Execute returned %d", code)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(data); got != "# config\nA=9\n" {
		t.Errorf("file content = %q, want %q", got, "# config\nA=9\n")
	}
}

func TestExecuteCreate(t *testing.T) {
	setupOverrides(t)
	ctx := context.Background()

	target := filepath.Join(t.TempDir(), "new.env")
	if code := Execute(ctx, []string{"--file", target, "--create", "--set", "GREETING=hello world"}); code != 0 {
		t.Fatalf("Execute returned %d", code)
	}

	f, err := envfile.Load(target)
	if err != nil {
		t.Fatal(err)
	}
	if got := f.Get("GREETING"); got != "hello world" {
		t.Errorf("GREETING = %q, want %q", got, "hello world")
	}
}

func TestExecuteMissingFile(t *testing.T) {
	setupOverrides(t)
	ctx := context.Background()

	target := filepath.Join(t.TempDir(), "absent.env")
	if code := Execute(ctx, []string{"--file", target, "--set", "A=1"}); code != 1 {
		t.Errorf("Execute returned %d, want 1 for missing file without --create", code)
	}
}

func TestExecuteHas(t *testing.T) {
	setupOverrides(t)
	ctx := context.Background()

	target := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(target, []byte("A=1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if code := Execute(ctx, []string{"--file", target, "--has", "A"}); code != 0 {
		t.Errorf("Execute --has A returned %d, want 0", code)
	}
	if code := Execute(ctx, []string{"--file", target, "--has", "MISSING"}); code != 1 {
		t.Errorf("Execute --has MISSING returned %d, want 1", code)
	}
}

func TestExecuteDiffDoesNotWrite(t *testing.T) {
	setupOverrides(t)
	ctx := context.Background()

	target := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(target, []byte("A=1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if code := Execute(ctx, []string{"--file", target, "--set", "A=2", "--diff"}); code != 0 {
		t.Fatalf("Execute returned %d", code)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(data); got != "A=1\n" {
		t.Errorf("file content = %q, want untouched %q", got, "A=1\n")
	}
}

func TestExecuteInvalidKey(t *testing.T) {
	setupOverrides(t)
	ctx := context.Background()

	target := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(target, []byte("A=1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if code := Execute(ctx, []string{"--file", target, "--set", "BAD KEY=1"}); code != 1 {
		t.Errorf("Execute returned %d, want 1 for invalid key", code)
	}
}

func TestApplySet(t *testing.T) {
	f := envfile.New()
	if err := applySet(f, "A=1", false); err != nil {
		t.Fatal(err)
	}
	if got := f.Get("A"); got != "1" {
		t.Errorf("Get(A) = %q, want %q", got, "1")
	}
	if err := applySet(f, "no-equals", false); err == nil {
		t.Error("expected error for argument without '='")
	}
	if err := applySet(f, "B=plain", true); err != nil {
		t.Fatal(err)
	}
	if got := f.Content(); got != "A=1\nB=\"plain\"\n" {
		t.Errorf("Content() = %q", got)
	}
}
