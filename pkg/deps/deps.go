package deps

import (
	"context"
	"strings"
	"time"
)

const (
	DefaultCacheTTL    = 24 * time.Hour // Default HTTP cache duration
	DefaultConcurrency = 8              // Default concurrent registry lookups
)

// NotAvailable is rendered in place of missing license data.
const NotAvailable = "N/A"

// Dependency is one resolved package from a lockfile.
//
// A Dependency is read-only once returned by a [Source]; formatters never
// modify it.
type Dependency struct {
	Name         string   // Package name, never empty
	Version      string   // Resolved version, opaque text
	Source       string   // Provenance (registry URL, git URL); empty for path packages
	License      string   // License expression; empty when unknown
	LicenseTexts []string // Bundled license file contents; nil when none were found
	Authors      []string // Declared authors in manifest order; nil when unknown
}

// LicenseOrNA returns the license expression, or [NotAvailable] if unknown.
func (d Dependency) LicenseOrNA() string {
	if d.License == "" {
		return NotAvailable
	}
	return d.License
}

// FromRegistry reports whether the package was fetched from a registry index.
func (d Dependency) FromRegistry() bool {
	return strings.HasPrefix(d.Source, "registry+") || strings.HasPrefix(d.Source, "sparse+")
}

// Options configures dependency resolution behavior.
type Options struct {
	ManifestPath      string               // Cargo.toml or directory to start the lockfile search from (default: cwd)
	CargoHome         string               // Cargo home holding registry sources (default: $CARGO_HOME or ~/.cargo)
	CacheTTL          time.Duration        // HTTP cache duration (default: 24h)
	Refresh           bool                 // Bypass cache for fresh data
	Concurrency       int                  // Concurrent metadata lookups (default: 8)
	MetadataProviders []MetadataProvider   // Sources for missing license/author data
	Logger            func(string, ...any) // Progress/error callback (optional)
}

// WithDefaults returns a copy of Options with zero values replaced by defaults.
func (o Options) WithDefaults() Options {
	opts := o
	if opts.ManifestPath == "" {
		opts.ManifestPath = "."
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = DefaultCacheTTL
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}
	if opts.Logger == nil {
		opts.Logger = func(string, ...any) {}
	}
	return opts
}

// Source produces the dependency records of a project.
type Source interface {
	// Name returns the source identifier (e.g., "Cargo.lock").
	Name() string
	// Dependencies returns every package of the project in lockfile order.
	Dependencies(ctx context.Context, opts Options) ([]Dependency, error)
}

// Metadata is license data reported by a [MetadataProvider].
// Empty fields mean the provider knows nothing about them.
type Metadata struct {
	License string
	Authors []string
}

// MetadataProvider fills in license data that was not found locally.
type MetadataProvider interface {
	// Name returns the provider identifier (e.g., "crates.io").
	Name() string
	// Enrich looks up metadata for the given package version.
	Enrich(ctx context.Context, dep Dependency, refresh bool) (Metadata, error)
}
