// Package deps defines the dependency records reported by cargo-license and
// the contract of the components that produce them.
//
// # Overview
//
// A [Source] turns a project on disk into an ordered list of [Dependency]
// values. The Rust implementation lives in [rust]; it reads Cargo.lock and the
// unpacked crate sources under the Cargo home.
//
//	src := rust.NewLockfileSource()
//	all, err := src.Dependencies(ctx, deps.Options{ManifestPath: "."})
//
// # Missing Data
//
// Cargo manifests often omit fields. An empty License renders as
// [NotAvailable]; nil LicenseTexts and Authors mean nothing was found.
// [MetadataProvider] implementations (see [metadata]) may fill these gaps from
// a registry when the user opts in.
//
// [rust]: github.com/matzehuels/cargolicense/pkg/deps/rust
// [metadata]: github.com/matzehuels/cargolicense/pkg/deps/metadata
package deps
