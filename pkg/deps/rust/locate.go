package rust

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// locator maps locked packages to their unpacked source directories.
// Git checkouts and workspace members are indexed lazily on first use.
type locator struct {
	root      string // directory holding Cargo.lock
	cargoHome string
	log       func(string, ...any)

	local map[string]located // name@version
	git   map[string]located
}

// located is a crate directory and the workspace its manifest inherits from.
type located struct {
	dir string
	ws  *workspaceDefaults
}

func newLocator(root, cargoHome string, log func(string, ...any)) *locator {
	return &locator{root: root, cargoHome: cargoHome, log: log}
}

// find returns the source directory of pkg, if present on disk.
func (l *locator) find(pkg LockedPackage) (located, bool) {
	key := pkg.Name + "@" + pkg.Version
	switch {
	case strings.HasPrefix(pkg.Source, "registry+"), strings.HasPrefix(pkg.Source, "sparse+"):
		return l.findRegistry(pkg)
	case strings.HasPrefix(pkg.Source, "git+"):
		if l.git == nil {
			l.git = l.indexGit()
		}
		loc, ok := l.git[key]
		return loc, ok
	case pkg.Source == "":
		if l.local == nil {
			l.local = l.indexLocal()
		}
		loc, ok := l.local[key]
		return loc, ok
	}
	return located{}, false
}

// findRegistry looks in the unpacked registry sources. Published manifests
// are already normalized, so there is nothing to inherit.
func (l *locator) findRegistry(pkg LockedPackage) (located, bool) {
	pattern := filepath.Join(l.cargoHome, "registry", "src", "*", pkg.Name+"-"+pkg.Version)
	matches, _ := filepath.Glob(pattern)
	slices.Sort(matches)
	for _, dir := range matches {
		if isFile(filepath.Join(dir, ManifestName)) {
			return located{dir: dir}, true
		}
	}
	return located{}, false
}

// indexGit scans $CARGO_HOME/git/checkouts/<repo>/<rev>/ and up to two nested
// levels for crate manifests. Members of a workspace inside a checkout
// inherit from the nearest enclosing [workspace] manifest of that checkout.
func (l *locator) indexGit() map[string]located {
	idx := make(map[string]located)
	base := filepath.Join(l.cargoHome, "git", "checkouts")
	workspaces := make(map[string]*workspaceDefaults)
	for _, pattern := range []string{"*/*", "*/*/*", "*/*/*/*"} {
		matches, _ := filepath.Glob(filepath.Join(base, pattern, ManifestName))
		slices.Sort(matches)
		for _, path := range matches {
			dir := filepath.Dir(path)
			l.addToIndex(idx, dir, l.checkoutWorkspace(base, dir, workspaces))
		}
	}
	return idx
}

// checkoutWorkspace walks from dir up to its checkout root (<repo>/<rev>)
// and returns the first workspace found, or nil. Lookups are memoized in seen.
func (l *locator) checkoutWorkspace(base, dir string, seen map[string]*workspaceDefaults) *workspaceDefaults {
	rel, err := filepath.Rel(base, dir)
	if err != nil {
		return nil
	}
	parts := strings.Split(rel, string(filepath.Separator))
	if len(parts) < 2 {
		return nil
	}
	top := filepath.Join(base, parts[0], parts[1])

	for d := dir; ; d = filepath.Dir(d) {
		ws, ok := seen[d]
		if !ok {
			if isFile(filepath.Join(d, ManifestName)) {
				_, ws, _ = readManifest(d, nil)
			}
			seen[d] = ws
		}
		if ws != nil || d == top {
			return ws
		}
	}
}

// indexLocal indexes the workspace root and its members.
func (l *locator) indexLocal() map[string]located {
	idx := make(map[string]located)
	if !isFile(filepath.Join(l.root, ManifestName)) {
		return idx
	}
	m, ws, err := readManifest(l.root, nil)
	if err != nil {
		l.log("read workspace manifest: %v", err)
		return idx
	}
	if m.Name != "" {
		idx[m.Name+"@"+m.Version] = located{dir: l.root, ws: ws}
	}

	excluded := make(map[string]bool)
	for _, ex := range m.Excludes {
		excluded[filepath.Clean(filepath.Join(l.root, ex))] = true
	}
	for _, member := range m.Members {
		matches, err := filepath.Glob(filepath.Join(l.root, member))
		if err != nil {
			l.log("workspace member %q: %v", member, err)
			continue
		}
		slices.Sort(matches)
		for _, dir := range matches {
			if excluded[filepath.Clean(dir)] || !isFile(filepath.Join(dir, ManifestName)) {
				continue
			}
			l.addToIndex(idx, dir, ws)
		}
	}
	return idx
}

func (l *locator) addToIndex(idx map[string]located, dir string, ws *workspaceDefaults) {
	m, _, err := readManifest(dir, ws)
	if err != nil {
		l.log("skip %s: %v", dir, err)
		return
	}
	if m.Name == "" {
		return
	}
	key := m.Name + "@" + m.Version
	if _, seen := idx[key]; !seen {
		idx[key] = located{dir: dir, ws: ws}
	}
}

// isFile reports whether path is, or links to, a regular file.
func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
