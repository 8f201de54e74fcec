package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveRejectsTraversal(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())

	cases := []string{
		"../etc/passwd",
		"letters/../../secret.txt",
		"letters/../../../root/.ssh/id_rsa",
	}

	for _, rel := range cases {
		if _, err := Resolve(rel); err == nil {
			t.Fatalf("expected traversal rejection for %q", rel)
		}
	}
}

func TestResolveAcceptsPathsUnderRoot(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("UPLOAD_DIR", dir)

	abs, err := Resolve("letters/abc.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := filepath.Join(dir, "letters", "abc.pdf")
	if abs != want {
		t.Fatalf("expected %q, got %q", want, abs)
	}
}

func TestSaveBytesAndReadBack(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())

	rel, err := SaveBytes([]byte("%PDF-1.4 dummy"), "letters", ".pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := ReadFile(rel)
	if err != nil {
		t.Fatalf("unexpected read error: %v", err)
	}
	if string(got) != "%PDF-1.4 dummy" {
		t.Fatalf("unexpected content %q", got)
	}

	if err := DeleteFile(rel); err != nil {
		t.Fatalf("unexpected delete error: %v", err)
	}

	abs, _ := Resolve(rel)
	if _, err := os.Stat(abs); !os.IsNotExist(err) {
		t.Fatal("expected file to be deleted")
	}
}
