package crates

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/matzehuels/cargolicense/pkg/buildinfo"
	"github.com/matzehuels/cargolicense/pkg/httputil"
	"github.com/matzehuels/cargolicense/pkg/integrations"
)

// DefaultBaseURL is the crates.io API root.
const DefaultBaseURL = "https://crates.io/api/v1"

// VersionInfo holds license metadata for one published crate version.
//
// Authors lists the names declared in the published manifest; when crates.io
// reports none, it falls back to the publishing user. Both may be empty.
type VersionInfo struct {
	Name    string   `json:"name"`
	Version string   `json:"version"`
	License string   `json:"license"`
	Authors []string `json:"authors"`
}

// Client provides access to the crates.io API.
// It is safe for concurrent use.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a crates.io client with the given response cache, which
// may be nil. crates.io requires a descriptive User-Agent; one is set here.
func NewClient(cache *httputil.Cache) *Client {
	if cache != nil {
		cache = cache.Namespace("crates:")
	}
	headers := map[string]string{
		"User-Agent": fmt.Sprintf("cargo-license/%s (https://github.com/matzehuels/cargolicense)", buildinfo.Version),
	}
	return &Client{
		Client:  integrations.NewClient(cache, headers),
		baseURL: DefaultBaseURL,
	}
}

// WithBaseURL returns a copy of c talking to another API root.
func (c *Client) WithBaseURL(base string) *Client {
	return &Client{Client: c.Client, baseURL: base}
}

// FetchVersion retrieves license metadata for crate at version.
//
// If refresh is true, the cache is bypassed. A failure of the authors
// lookup is not an error; Authors is then left empty.
//
// Returns [integrations.ErrNotFound] if the crate or version doesn't exist and
// [integrations.ErrNetwork] for HTTP failures.
func (c *Client) FetchVersion(ctx context.Context, crate, version string, refresh bool) (*VersionInfo, error) {
	var info VersionInfo
	err := c.Cached(ctx, crate+"@"+version, refresh, &info, func() error {
		return c.fetch(ctx, crate, version, &info)
	})
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *Client) fetch(ctx context.Context, crate, version string, info *VersionInfo) error {
	base := fmt.Sprintf("%s/crates/%s/%s", c.baseURL, url.PathEscape(crate), url.PathEscape(version))

	var data versionResponse
	if err := c.Get(ctx, base, &data); err != nil {
		if errors.Is(err, integrations.ErrNotFound) {
			return fmt.Errorf("%w: crate %s %s", err, crate, version)
		}
		return err
	}

	authors, _ := c.fetchAuthors(ctx, base)
	if len(authors) == 0 && data.Version.PublishedBy != nil {
		if name := data.Version.PublishedBy.Name; name != "" {
			authors = []string{name}
		} else if login := data.Version.PublishedBy.Login; login != "" {
			authors = []string{login}
		}
	}

	*info = VersionInfo{
		Name:    crate,
		Version: data.Version.Num,
		License: data.Version.License,
		Authors: authors,
	}
	return nil
}

func (c *Client) fetchAuthors(ctx context.Context, base string) ([]string, error) {
	var data authorsResponse
	if err := c.Get(ctx, base+"/authors", &data); err != nil {
		return nil, err
	}
	return data.Meta.Names, nil
}

type versionResponse struct {
	Version struct {
		Num         string `json:"num"`
		License     string `json:"license"`
		PublishedBy *struct {
			Login string `json:"login"`
			Name  string `json:"name"`
		} `json:"published_by"`
	} `json:"version"`
}

type authorsResponse struct {
	Meta struct {
		Names []string `json:"names"`
	} `json:"meta"`
}
