// Package uri implements RFC 3986 URI construction, decomposition, and
// percent-encoding, with RFC 5987 extensions for attribute values.
//
// The package centres on three collaborating pieces: a PercentCodec for
// byte-accurate percent-encoding parameterised by a per-component safe
// character set, a URIBuilder that holds both the raw-encoded and decoded
// representation of every URI component and keeps them consistent under
// incremental edits, and a small set of tokenising parsers (query, path,
// authority) that split encoded forms into structured pieces without losing
// round-trip fidelity.
//
// Reference resolution (joining a relative reference against a base),
// IRI-to-URI mapping, and IDNA/punycode host processing are out of scope;
// see the RFC 3986 Appendix B grammar this package implements.
package uri
