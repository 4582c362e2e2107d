package rust

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/matzehuels/cargolicense/pkg/deps"
	"github.com/matzehuels/cargolicense/pkg/observability"
)

// LockfileSource implements [deps.Source] for Cargo projects.
type LockfileSource struct{}

// NewLockfileSource returns a source that reads Cargo.lock and the crate
// sources unpacked under the Cargo home.
func NewLockfileSource() *LockfileSource { return &LockfileSource{} }

func (s *LockfileSource) Name() string { return LockfileName }

// Dependencies locates the project's Cargo.lock starting at opts.ManifestPath
// and returns one record per locked package, in lockfile order.
//
// Packages whose sources are not on disk are still returned, with empty
// license data. Configured metadata providers run afterwards to fill gaps.
func (s *LockfileSource) Dependencies(ctx context.Context, opts deps.Options) (out []deps.Dependency, err error) {
	opts = opts.WithDefaults()

	path, err := FindLockfile(opts.ManifestPath)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	observability.Resolve().OnResolveStart(ctx, path)
	defer func() {
		observability.Resolve().OnResolveComplete(ctx, path, len(out), time.Since(start), err)
	}()

	lock, err := ParseLockfile(path)
	if err != nil {
		return nil, err
	}
	opts.Logger("read %d packages from %s", len(lock.Packages), path)

	loc := newLocator(filepath.Dir(path), CargoHome(opts.CargoHome), opts.Logger)
	out = make([]deps.Dependency, 0, len(lock.Packages))
	for _, pkg := range lock.Packages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out = append(out, loc.dependency(pkg))
	}

	if len(opts.MetadataProviders) > 0 {
		if err := deps.Enrich(ctx, out, opts); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (l *locator) dependency(pkg LockedPackage) deps.Dependency {
	d := deps.Dependency{
		Name:    pkg.Name,
		Version: pkg.Version,
		Source:  pkg.Source,
	}

	loc, ok := l.find(pkg)
	if !ok {
		l.log("no sources on disk for %s %s", pkg.Name, pkg.Version)
		return d
	}
	m, _, err := readManifest(loc.dir, loc.ws)
	if err != nil {
		l.log("read manifest of %s %s: %v", pkg.Name, pkg.Version, err)
		return d
	}

	d.License = m.License
	d.Authors = m.Authors
	d.LicenseTexts = readLicenseTexts(loc.dir, m.LicenseFile, l.log)
	return d
}

// CargoHome returns dir if set, else $CARGO_HOME, else ~/.cargo.
func CargoHome(dir string) string {
	if dir != "" {
		return dir
	}
	if env := os.Getenv("CARGO_HOME"); env != "" {
		return env
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cargo"
	}
	return filepath.Join(home, ".cargo")
}
