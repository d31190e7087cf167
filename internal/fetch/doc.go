// Package fetch provides polite HTTP fetching for stats pages.
//
// The client enforces a minimum interval between consecutive requests
// to the same host via a per-host token-bucket limiter, owned by the
// client rather than held in package state so that tests can construct
// an un-throttled client against a local server.
package fetch
