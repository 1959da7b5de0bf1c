package uri

import "strings"

// Optimize normalises the builder in place and returns it for chaining:
// the scheme is lowercased; if the path is rootless, normalisation stops
// there (mirroring the documented behaviour of this package's reference
// implementation, which never rewrites a rootless opaque-style path).
// Otherwise the authority, userinfo, path and fragment caches and the
// scheme-specific part are cleared to force re-encoding from the decoded
// forms (a raw authority or scheme-specific part that has no decoded
// counterpart is dropped; the query caches are left alone, since RFC 3986
// §5.2.4 normalisation does not touch the query component), the host is
// lowercased, and "." / ".." path segments are removed per RFC 3986 §5.2.4.
func (b *URIBuilder) Optimize() *URIBuilder {
	if b.scheme != nil {
		lower := strings.ToLower(*b.scheme)
		b.scheme = &lower
	}

	if b.pathRootless {
		return b
	}

	b.encodedAuthority = nil
	b.encodedUserInfo = nil
	b.encodedPath = nil
	b.encodedFragment = nil
	b.encodedSchemeSpecificPart = nil

	if b.host != nil {
		lower := strings.ToLower(*b.host)
		b.host = &lower
	}

	b.pathSegments = removeDotSegments(b.pathSegments)

	return b
}

// removeDotSegments implements the RFC 3986 §5.2.4 algorithm over an
// already-split segment list: "." segments are dropped, ".." segments pop
// the preceding output segment (if any), and a trailing empty segment
// (representing a trailing '/') is preserved. A segment list that was
// explicitly emptied (SetPathSegments with no arguments) normalises to a
// single empty segment rather than vanishing.
func removeDotSegments(segments []string) []string {
	if segments == nil {
		return nil
	}
	if len(segments) == 0 {
		return []string{""}
	}

	out := make([]string, 0, len(segments))
	for _, seg := range segments {
		switch seg {
		case "", ".":
			continue
		case "..":
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
		default:
			out = append(out, seg)
		}
	}

	if segments[len(segments)-1] == "" {
		out = append(out, "")
	}

	return out
}
