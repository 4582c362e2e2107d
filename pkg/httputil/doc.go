// Package httputil provides the caching and retry helpers used by registry
// clients.
//
//   - [Cache]: file-based response cache under the XDG cache home
//   - [Retry]: retry with exponential backoff for transient failures
//
// Usage:
//
//	cache, err := httputil.NewCache("", 24*time.Hour)
//	crates := cache.Namespace("crates:")
//	var v versionInfo
//	if ok, _ := crates.Get("serde@1.0.193", &v); !ok {
//	    err = httputil.RetryWithBackoff(ctx, func() error { return fetch(&v) })
//	    _ = crates.Set("serde@1.0.193", v)
//	}
//
// Only errors wrapped in [RetryableError] are retried; a 404 fails at once.
package httputil
