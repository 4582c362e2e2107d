// Package crates provides an HTTP client for the crates.io API.
//
// # Usage
//
//	cache, _ := httputil.NewCache("", 24*time.Hour)
//	client := crates.NewClient(cache)
//	info, err := client.FetchVersion(ctx, "serde", "1.0.193", false)
//	fmt.Println(info.License, info.Authors)
//
// [Client.FetchVersion] reads /crates/{name}/{version} for the license and
// /crates/{name}/{version}/authors for the declared authors. Responses are
// cached per name and version; pass refresh=true to bypass the cache.
//
// The client sends a User-Agent header as requested by crates.io policy.
package crates
