package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestReplaceFileCreates(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "links.json")

	if err := ReplaceFile(path, []byte("[]\n")); err != nil {
		t.Fatalf("ReplaceFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[]\n" {
		t.Errorf("content = %q, want %q", string(data), "[]\n")
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if perm := info.Mode().Perm(); perm != DefaultFileMode {
			t.Errorf("permissions = %o, want %o", perm, DefaultFileMode)
		}
	}
}

func TestReplaceFileOverwritesAndKeepsPermissions(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "links.json")
	if err := os.WriteFile(path, []byte("old content"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := ReplaceFile(path, []byte("new")); err != nil {
		t.Fatalf("ReplaceFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "new" {
		t.Errorf("content = %q, want %q", string(data), "new")
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if perm := info.Mode().Perm(); perm != 0600 {
			t.Errorf("permissions = %o, want %o", perm, 0600)
		}
	}
}

func TestReplaceFileLeavesNoTemporaryFiles(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "links.json")

	for i := 0; i < 3; i++ {
		if err := ReplaceFile(path, []byte("x")); err != nil {
			t.Fatalf("ReplaceFile #%d failed: %v", i, err)
		}
	}

	entries, err := os.ReadDir(tmp)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("directory entries = %v, want only links.json", names)
	}
}

func TestReplaceFileMissingDirectory(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "missing", "links.json")

	if err := ReplaceFile(path, []byte("x")); err == nil {
		t.Fatal("expected error for missing parent directory, got nil")
	}
	if _, err := os.Stat(path); err == nil {
		t.Error("file should not exist after failed replace")
	}
}

func TestReplaceFileFollowsSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks require developer mode on Windows")
	}

	tmp := t.TempDir()
	target := filepath.Join(tmp, "real.json")
	link := filepath.Join(tmp, "links.json")
	if err := os.WriteFile(target, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(target, link); err != nil {
		t.Fatal(err)
	}

	if err := ReplaceFile(link, []byte("new")); err != nil {
		t.Fatalf("ReplaceFile failed: %v", err)
	}

	info, err := os.Lstat(link)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode()&os.ModeSymlink == 0 {
		t.Error("symlink was replaced by a regular file")
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "new" {
		t.Errorf("target content = %q, want %q", string(data), "new")
	}
}

func TestChmod(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "test.txt")
	if err := os.WriteFile(path, []byte("test"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := Chmod(path, 0600); err != nil {
		t.Fatalf("Chmod failed: %v", err)
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if perm := info.Mode().Perm(); perm != 0600 {
			t.Errorf("permissions = %o, want %o", perm, 0600)
		}
	}
}
