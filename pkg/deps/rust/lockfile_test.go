package rust

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/cargolicense/pkg/errors"
)

const sampleLock = `# This file is automatically @generated by Cargo.
# It is not intended for manual editing.
version = 3

[[package]]
name = "app"
version = "0.1.0"
dependencies = [
 "serde",
]

[[package]]
name = "serde"
version = "1.0.193"
source = "registry+https://github.com/rust-lang/crates.io-index"
checksum = "25dd9975e68d0cb5aa1120c288333fc98731bd1dd12f561e468ea4728c042b89"
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestFindLockfile(t *testing.T) {
	root := t.TempDir()
	lock := filepath.Join(root, LockfileName)
	writeFile(t, lock, sampleLock)
	writeFile(t, filepath.Join(root, "crates", "member", ManifestName), "[package]\nname = \"member\"\n")

	tests := []struct {
		name  string
		start string
	}{
		{"root dir", root},
		{"nested dir", filepath.Join(root, "crates", "member")},
		{"manifest file", filepath.Join(root, "crates", "member", ManifestName)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindLockfile(tt.start)
			if err != nil {
				t.Fatalf("FindLockfile failed: %v", err)
			}
			if got != lock {
				t.Errorf("FindLockfile() = %q, want %q", got, lock)
			}
		})
	}
}

func TestFindLockfile_NotFound(t *testing.T) {
	dir := t.TempDir()
	for d := filepath.Dir(dir); ; d = filepath.Dir(d) {
		if _, err := os.Stat(filepath.Join(d, LockfileName)); err == nil {
			t.Skip("a Cargo.lock exists above the temp dir")
		}
		if d == filepath.Dir(d) {
			break
		}
	}

	_, err := FindLockfile(dir)
	if !errors.Is(err, errors.ErrCodeLockfileNotFound) {
		t.Errorf("FindLockfile() error = %v, want %s", err, errors.ErrCodeLockfileNotFound)
	}

	_, err = FindLockfile(filepath.Join(dir, "missing"))
	if !errors.Is(err, errors.ErrCodeLockfileNotFound) {
		t.Errorf("FindLockfile(missing) error = %v, want %s", err, errors.ErrCodeLockfileNotFound)
	}
}

func TestParseLockfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), LockfileName)
	writeFile(t, path, sampleLock)

	lf, err := ParseLockfile(path)
	if err != nil {
		t.Fatalf("ParseLockfile failed: %v", err)
	}
	if lf.Version != 3 {
		t.Errorf("Version = %d, want 3", lf.Version)
	}
	if len(lf.Packages) != 2 {
		t.Fatalf("len(Packages) = %d, want 2", len(lf.Packages))
	}
	if lf.Packages[0].Name != "app" || lf.Packages[0].Source != "" {
		t.Errorf("Packages[0] = %+v", lf.Packages[0])
	}
	serde := lf.Packages[1]
	if serde.Name != "serde" || serde.Version != "1.0.193" {
		t.Errorf("Packages[1] = %+v", serde)
	}
	if serde.Source != "registry+https://github.com/rust-lang/crates.io-index" {
		t.Errorf("Source = %q", serde.Source)
	}
	if len(lf.Packages[0].Dependencies) != 1 || lf.Packages[0].Dependencies[0] != "serde" {
		t.Errorf("Dependencies = %v", lf.Packages[0].Dependencies)
	}
}

func TestParseLockfile_V1Root(t *testing.T) {
	path := filepath.Join(t.TempDir(), LockfileName)
	writeFile(t, path, `[root]
name = "legacy"
version = "0.1.0"

[[package]]
name = "libc"
version = "0.2.0"
source = "registry+https://github.com/rust-lang/crates.io-index"
`)

	lf, err := ParseLockfile(path)
	if err != nil {
		t.Fatalf("ParseLockfile failed: %v", err)
	}
	if len(lf.Packages) != 2 || lf.Packages[0].Name != "legacy" || lf.Packages[1].Name != "libc" {
		t.Errorf("Packages = %+v", lf.Packages)
	}
}

func TestParseLockfile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad toml", "[[package]\nname ="},
		{"missing name", "[[package]]\nversion = \"1.0.0\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), LockfileName)
			writeFile(t, path, tt.content)
			_, err := ParseLockfile(path)
			if !errors.Is(err, errors.ErrCodeInvalidLockfile) {
				t.Errorf("ParseLockfile() error = %v, want %s", err, errors.ErrCodeInvalidLockfile)
			}
		})
	}
}
