// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import "regexp"

// idPattern matches arXiv identifiers in their modern form ("2303.10130",
// optionally versioned "2303.10130v2") and their legacy category-prefixed
// form ("hep-th/0101001").
var idPattern = regexp.MustCompile(`\d{4}\.\d{4,5}(v\d+)?|[a-zA-Z.-]+/\d{7}(v\d+)?`)

// coreIDPattern re-matches inside a broad match, tolerating a leading
// alphabetic or punctuation prefix left over from a URL path.
var coreIDPattern = regexp.MustCompile(`[a-zA-Z.-]*\d{4}\.\d{4,5}(v\d+)?|[a-zA-Z.-]+/\d{7}(v\d+)?`)

// ExtractID returns the first arXiv identifier found in s, which may be a
// bare ID, an arxiv.org abstract or PDF URL, or noisy text containing one.
// Version suffixes are preserved. Returns the empty string when no
// identifier is found.
//
// This is a best-effort scan, not a grammar: malformed input may yield an
// unexpected identifier, but never an error.
func ExtractID(s string) string {
	match := idPattern.FindString(s)
	if match == "" {
		return ""
	}
	if core := coreIDPattern.FindString(match); core != "" {
		return core
	}
	// Fall back to the broad match when the stricter pass finds nothing.
	return match
}
