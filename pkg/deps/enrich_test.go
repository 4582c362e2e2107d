package deps

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

type fakeProvider struct {
	name  string
	meta  map[string]Metadata
	err   error
	calls atomic.Int32
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Enrich(_ context.Context, dep Dependency, _ bool) (Metadata, error) {
	f.calls.Add(1)
	if f.err != nil {
		return Metadata{}, f.err
	}
	return f.meta[dep.Name], nil
}

const cratesIO = "registry+https://github.com/rust-lang/crates.io-index"

func TestEnrich(t *testing.T) {
	all := []Dependency{
		{Name: "serde", Version: "1.0.0", Source: cratesIO},
		{Name: "local", Version: "0.1.0"},
		{Name: "anyhow", Version: "1.0.0", Source: cratesIO, License: "MIT", Authors: []string{"David"}},
		{Name: "rand", Version: "0.8.5", Source: cratesIO, License: "MIT OR Apache-2.0"},
	}
	p := &fakeProvider{name: "fake", meta: map[string]Metadata{
		"serde": {License: "MIT OR Apache-2.0", Authors: []string{"Erick", "David"}},
		"local": {License: "GPL-3.0"},
		"rand":  {License: "BSD", Authors: []string{"The Rand Project"}},
	}}

	if err := Enrich(context.Background(), all, Options{MetadataProviders: []MetadataProvider{p}}); err != nil {
		t.Fatalf("Enrich failed: %v", err)
	}

	if all[0].License != "MIT OR Apache-2.0" || len(all[0].Authors) != 2 {
		t.Errorf("serde not enriched: %+v", all[0])
	}
	if all[1].License != "" {
		t.Errorf("path package should not be enriched: %+v", all[1])
	}
	if all[3].License != "MIT OR Apache-2.0" {
		t.Errorf("existing license overwritten: %q", all[3].License)
	}
	if len(all[3].Authors) != 1 || all[3].Authors[0] != "The Rand Project" {
		t.Errorf("rand authors = %v", all[3].Authors)
	}
	if got := p.calls.Load(); got != 2 {
		t.Errorf("provider calls = %d, want 2", got)
	}
}

func TestEnrich_ProviderErrorIgnored(t *testing.T) {
	all := []Dependency{{Name: "serde", Version: "1.0.0", Source: cratesIO}}
	failing := &fakeProvider{name: "down", err: errors.New("boom")}
	backup := &fakeProvider{name: "backup", meta: map[string]Metadata{"serde": {License: "MIT"}}}

	var logged int
	opts := Options{
		MetadataProviders: []MetadataProvider{failing, backup},
		Logger:            func(string, ...any) { logged++ },
	}
	if err := Enrich(context.Background(), all, opts); err != nil {
		t.Fatalf("Enrich failed: %v", err)
	}
	if all[0].License != "MIT" {
		t.Errorf("License = %q, want MIT", all[0].License)
	}
	if logged != 1 {
		t.Errorf("logged %d messages, want 1", logged)
	}
}

func TestEnrich_NoProviders(t *testing.T) {
	all := []Dependency{{Name: "serde", Source: cratesIO}}
	if err := Enrich(context.Background(), all, Options{}); err != nil {
		t.Fatalf("Enrich failed: %v", err)
	}
	if all[0].License != "" {
		t.Errorf("License = %q, want empty", all[0].License)
	}
}

func TestEnrich_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	all := []Dependency{{Name: "serde", Source: cratesIO}}
	p := &fakeProvider{name: "fake"}
	err := Enrich(ctx, all, Options{MetadataProviders: []MetadataProvider{p}})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Enrich() error = %v, want context.Canceled", err)
	}
}
