// Package integrations provides HTTP clients for package registry APIs.
//
// The only registry cargo-license talks to is crates.io ([crates]), and only
// when the user passes --online. [Client] holds the plumbing shared by
// registry clients:
//
//   - JSON GET requests with default headers
//   - response caching through [httputil.Cache]
//   - retries of transient failures through [httputil.RetryWithBackoff]
//
// Errors are classified with [ErrNotFound] (404) and [ErrNetwork]
// (connection failures and unexpected status codes).
//
// [crates]: github.com/matzehuels/cargolicense/pkg/integrations/crates
// [httputil.Cache]: github.com/matzehuels/cargolicense/pkg/httputil.Cache
// [httputil.RetryWithBackoff]: github.com/matzehuels/cargolicense/pkg/httputil.RetryWithBackoff
package integrations
