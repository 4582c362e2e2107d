package rust

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ManifestName is the Cargo manifest file name.
const ManifestName = "Cargo.toml"

// crateManifest is the license-relevant part of a crate's Cargo.toml after
// workspace inheritance has been applied.
type crateManifest struct {
	Name        string
	Version     string
	License     string
	LicenseFile string // absolute path, empty if unset
	Authors     []string
	Members     []string // workspace members, root manifests only
	Excludes    []string
}

type manifestFile struct {
	Package struct {
		Name        string `toml:"name"`
		Version     any    `toml:"version"`
		License     any    `toml:"license"`
		LicenseFile any    `toml:"license-file"`
		Authors     any    `toml:"authors"`
	} `toml:"package"`
	Workspace *workspaceTable `toml:"workspace"`
}

type workspaceTable struct {
	Members []string `toml:"members"`
	Exclude []string `toml:"exclude"`
	Package struct {
		Version     string   `toml:"version"`
		License     string   `toml:"license"`
		LicenseFile string   `toml:"license-file"`
		Authors     []string `toml:"authors"`
	} `toml:"package"`
}

// workspaceDefaults holds [workspace.package] values for inheritance.
type workspaceDefaults struct {
	dir         string
	version     string
	license     string
	licenseFile string
	authors     []string
}

// readManifest parses dir/Cargo.toml. Fields declared as `{ workspace = true }`
// are taken from ws, which may be nil.
func readManifest(dir string, ws *workspaceDefaults) (*crateManifest, *workspaceDefaults, error) {
	path := filepath.Join(dir, ManifestName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	var mf manifestFile
	if err := toml.Unmarshal(data, &mf); err != nil {
		return nil, nil, fmt.Errorf("parse %s: %w", path, err)
	}

	var own *workspaceDefaults
	m := &crateManifest{Name: mf.Package.Name}
	if mf.Workspace != nil {
		own = &workspaceDefaults{
			dir:         dir,
			version:     mf.Workspace.Package.Version,
			license:     mf.Workspace.Package.License,
			licenseFile: mf.Workspace.Package.LicenseFile,
			authors:     mf.Workspace.Package.Authors,
		}
		// A root manifest inherits from its own [workspace.package].
		if ws == nil {
			ws = own
		}
		m.Members = mf.Workspace.Members
		m.Excludes = mf.Workspace.Exclude
	}

	var inherited bool
	if m.Version, inherited = stringField(mf.Package.Version); inherited && ws != nil {
		m.Version = ws.version
	}
	if m.License, inherited = stringField(mf.Package.License); inherited && ws != nil {
		m.License = ws.license
	}

	licenseFile, inherited := stringField(mf.Package.LicenseFile)
	switch {
	case inherited && ws != nil && ws.licenseFile != "":
		m.LicenseFile = filepath.Join(ws.dir, ws.licenseFile)
	case licenseFile != "":
		m.LicenseFile = filepath.Join(dir, licenseFile)
	}

	if authors, inherited := stringsField(mf.Package.Authors); inherited && ws != nil {
		m.Authors = ws.authors
	} else {
		m.Authors = authors
	}

	return m, own, nil
}

// stringField decodes a manifest value that is either a string or an
// inheritance marker table.
func stringField(v any) (value string, inherited bool) {
	switch t := v.(type) {
	case string:
		return t, false
	case map[string]any:
		return "", isInherited(t)
	}
	return "", false
}

func stringsField(v any) (values []string, inherited bool) {
	switch t := v.(type) {
	case []any:
		for _, item := range t {
			if s, ok := item.(string); ok {
				values = append(values, s)
			}
		}
		return values, false
	case map[string]any:
		return nil, isInherited(t)
	}
	return nil, false
}

func isInherited(t map[string]any) bool {
	ws, _ := t["workspace"].(bool)
	return ws
}
