package rust

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/cargolicense/pkg/errors"
)

// LockfileName is the file Cargo writes next to the workspace root manifest.
const LockfileName = "Cargo.lock"

// Lockfile is the parsed content of a Cargo.lock file.
type Lockfile struct {
	Path     string
	Version  int
	Packages []LockedPackage
}

// LockedPackage is one [[package]] entry of a lockfile.
type LockedPackage struct {
	Name         string   `toml:"name"`
	Version      string   `toml:"version"`
	Source       string   `toml:"source"`
	Checksum     string   `toml:"checksum"`
	Dependencies []string `toml:"dependencies"`
}

type lockfileData struct {
	Version  int             `toml:"version"`
	Root     *LockedPackage  `toml:"root"` // lockfile format v1
	Packages []LockedPackage `toml:"package"`
}

// FindLockfile searches start and its parent directories for Cargo.lock.
// start may be a directory or a manifest file such as Cargo.toml.
func FindLockfile(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeLockfileNotFound, err, "resolve %s", start)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeLockfileNotFound, err, "no %s for %s", LockfileName, start)
	}
	dir := abs
	if !info.IsDir() {
		dir = filepath.Dir(abs)
	}

	for {
		candidate := filepath.Join(dir, LockfileName)
		if fi, err := os.Stat(candidate); err == nil && fi.Mode().IsRegular() {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New(errors.ErrCodeLockfileNotFound, "no %s in %s or any parent directory", LockfileName, abs)
		}
		dir = parent
	}
}

// ParseLockfile reads the lockfile at path. Packages keep file order.
func ParseLockfile(path string) (*Lockfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeLockfileNotFound, err, "read %s", path)
	}

	var lf lockfileData
	if err := toml.Unmarshal(data, &lf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidLockfile, err, "parse %s", path)
	}

	pkgs := lf.Packages
	if lf.Root != nil {
		pkgs = append([]LockedPackage{*lf.Root}, pkgs...)
	}
	for i, p := range pkgs {
		if p.Name == "" {
			return nil, errors.New(errors.ErrCodeInvalidLockfile, "%s: package #%d has no name", path, i+1)
		}
	}

	return &Lockfile{Path: path, Version: lf.Version, Packages: pkgs}, nil
}
