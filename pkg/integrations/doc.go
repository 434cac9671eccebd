// Package integrations provides shared HTTP plumbing for registry API
// clients.
//
// The [Client] type wraps an http.Client with response caching, retry with
// exponential backoff for transient failures, and default request headers.
// Registry-specific clients (see the packagist subpackage) embed it and add
// their endpoint knowledge on top.
//
// # Error handling
//
// HTTP status codes are mapped to sentinel errors: 404 becomes [ErrNotFound],
// 5xx and transport failures become [ErrNetwork] wrapped as retryable so the
// backoff loop re-attempts them. 4xx other than 404 fail immediately.
package integrations
