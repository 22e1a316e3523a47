// Package urlencoded decodes form-urlencoded data from URL query strings
// and HTTP request bodies.
//
// The package turns a raw percent-encoded string into a [QueryMap], a
// mapping from parameter name to the ordered list of values supplied for
// that name. Duplicate keys are merged into one entry, "+" decodes to a
// space, and invalid percent escapes are passed through rather than
// rejected. Decoding is a pure function with no shared state and is safe
// for concurrent use.
package urlencoded
