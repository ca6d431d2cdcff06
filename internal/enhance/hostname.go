// Package enhance implements the resource enhancement pipeline: it sends
// batches of resource URLs to the AI backend and normalizes whatever comes
// back into complete, uniform EnhancedResource records. The pipeline is
// total: every failure mode (network, HTTP status, payload parse, payload
// shape, per-record mapping) degrades to synthesized fallback records, one
// per requested URL.
package enhance

import "net/url"

// unknownHost is the label used when a hostname cannot be derived.
const unknownHost = "unknown"

// HostnameFromURL derives a human-readable label from a resource URL for
// fallback titles. Malformed or host-less input yields "unknown".
func HostnameFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return unknownHost
	}
	return u.Hostname()
}
