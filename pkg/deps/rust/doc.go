// Package rust resolves license data for the packages of a Cargo project.
//
// # Overview
//
// [LockfileSource] implements [deps.Source]:
//
//  1. [FindLockfile] walks from the manifest path up to the filesystem root
//     until it finds Cargo.lock
//  2. [ParseLockfile] reads every [[package]] entry in file order
//  3. Each package is matched to its unpacked sources:
//     registry crates under $CARGO_HOME/registry/src, git crates under
//     $CARGO_HOME/git/checkouts, path crates in the workspace
//  4. The crate's Cargo.toml supplies license and authors; LICENSE*, COPYING*
//     and the declared license-file supply license texts
//
// Fields written as `license.workspace = true` are inherited from the
// [workspace.package] table of the enclosing workspace: the project root for
// path crates, the nearest workspace manifest in the checkout for git crates.
//
// Nothing here touches the network. A missing crate source yields a record
// with empty license data, not an error; only a missing or malformed
// Cargo.lock fails resolution.
//
// [deps.Source]: github.com/matzehuels/cargolicense/pkg/deps.Source
package rust
