package rust

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// licenseFilePrefixes are the upper-cased name prefixes of bundled license files.
var licenseFilePrefixes = []string{"LICENSE", "LICENCE", "COPYING", "UNLICENSE"}

// isLicenseFile reports whether a file name looks like a license file
// (LICENSE, LICENSE-MIT, license.txt, COPYING, ...).
func isLicenseFile(name string) bool {
	upper := strings.ToUpper(name)
	for _, p := range licenseFilePrefixes {
		if strings.HasPrefix(upper, p) {
			return true
		}
	}
	return false
}

// licenseFiles lists license files for a crate: the declared license-file
// first, then matching files in dir sorted by name. Symlinks count when they
// resolve to a regular file.
func licenseFiles(dir, declared string) []string {
	var files []string
	if declared != "" && isFile(declared) {
		files = append(files, filepath.Clean(declared))
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return files
	}
	var found []string
	for _, e := range entries {
		if !isLicenseFile(e.Name()) {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if !isFile(path) {
			continue
		}
		if !slices.Contains(files, path) {
			found = append(found, path)
		}
	}
	slices.Sort(found)
	return append(files, found...)
}

// readLicenseTexts reads the license files of a crate. It returns nil when no
// file could be read.
func readLicenseTexts(dir, declared string, log func(string, ...any)) []string {
	var texts []string
	for _, path := range licenseFiles(dir, declared) {
		data, err := os.ReadFile(path)
		if err != nil {
			log("read license file: %v", err)
			continue
		}
		texts = append(texts, string(data))
	}
	return texts
}
