// Package metadata provides [deps.MetadataProvider] implementations backed by
// package registries.
package metadata

import (
	"context"

	"github.com/matzehuels/cargolicense/pkg/deps"
	"github.com/matzehuels/cargolicense/pkg/integrations/crates"
)

// versionFetcher is the part of [crates.Client] the provider needs.
type versionFetcher interface {
	FetchVersion(ctx context.Context, crate, version string, refresh bool) (*crates.VersionInfo, error)
}

// Crates looks up license and authors of published crates on crates.io.
type Crates struct {
	client versionFetcher
}

// NewCrates returns a provider using client.
func NewCrates(client *crates.Client) *Crates {
	return &Crates{client: client}
}

func (p *Crates) Name() string { return "crates.io" }

// Enrich fetches metadata for the exact version locked in the project.
func (p *Crates) Enrich(ctx context.Context, dep deps.Dependency, refresh bool) (deps.Metadata, error) {
	info, err := p.client.FetchVersion(ctx, dep.Name, dep.Version, refresh)
	if err != nil {
		return deps.Metadata{}, err
	}
	return deps.Metadata{License: info.License, Authors: info.Authors}, nil
}
