// Package remote holds what the geocoding and forecast clients share: a
// typed error taxonomy for everything that can go wrong talking to a remote
// JSON API, and a small GET-and-decode helper that produces those errors.
//
// # Error Categories
//
//   - Network: connection-level failures (refused, unreachable, DNS, timeout)
//   - HTTP: the service answered with a non-200 status (429 is RateLimited)
//   - Parse: the body was not the JSON we expected
//   - Canceled: the caller's context was canceled
//
// Callers that only need a line of text for the user call ShortMessage:
//
//	loc, err := resolver.Search(ctx, "Paris")
//	if err != nil {
//	    notice := remote.ShortMessage(err)
//	}
//
// Nothing in this package retries; a failed request is reported once.
package remote
