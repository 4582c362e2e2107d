package deps

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/cargolicense/pkg/observability"
)

// Enrich fills missing License and Authors of registry packages in place,
// asking each of opts.MetadataProviders in order until the gaps are closed.
//
// Lookups run with at most opts.Concurrency in flight. Provider failures are
// reported through opts.Logger and otherwise ignored; only context
// cancellation is returned as an error.
func Enrich(ctx context.Context, all []Dependency, opts Options) error {
	opts = opts.WithDefaults()
	if len(opts.MetadataProviders) == 0 {
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)

	for i := range all {
		if !needsEnrichment(all[i]) {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			// Each goroutine owns all[i]; no other goroutine touches it.
			enrichOne(ctx, &all[i], opts)
			return nil
		})
	}
	return g.Wait()
}

func needsEnrichment(d Dependency) bool {
	return d.FromRegistry() && (d.License == "" || d.Authors == nil)
}

func enrichOne(ctx context.Context, d *Dependency, opts Options) {
	for _, p := range opts.MetadataProviders {
		start := time.Now()
		meta, err := p.Enrich(ctx, *d, opts.Refresh)
		observability.Resolve().OnEnrich(ctx, p.Name(), d.Name, time.Since(start), err)
		if err != nil {
			opts.Logger("%s: %s %s: %v", p.Name(), d.Name, d.Version, err)
			continue
		}
		if d.License == "" && meta.License != "" {
			d.License = meta.License
		}
		if d.Authors == nil && len(meta.Authors) > 0 {
			d.Authors = meta.Authors
		}
		if !needsEnrichment(*d) {
			return
		}
	}
}
