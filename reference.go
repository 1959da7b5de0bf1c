package uri

import "regexp"

// uriRE is the RFC 3986 Appendix B reference regular expression: it splits
// a URI string into scheme, authority, path, query, and fragment groups
// without validating any of them.
var uriRE = regexp.MustCompile(`^(([^:/?#]+):)?(//([^/?#]*))?([^?#]*)(\?([^#]*))?(#(.*))?`)

const (
	uriRESchemeGroup                  = 2
	uriREAuthorityWithSlashSlashGroup = 3
	uriREAuthorityGroup               = 4
	uriREPathGroup                    = 5
	uriREQueryWithMarkGroup           = 6
	uriREQueryGroup                   = 7
	uriREFragmentWithHashGroup        = 8
	uriREFragmentGroup                = 9
)

var defaultCodec = NewPercentCodec(nil)

// Reference is an immutable RFC 3986 URI value: the result of parsing a URI
// string (via Parse) or of URIBuilder.Build(). It exposes both the raw
// (percent-encoded) and decoded form of every component. Parse("")
// returns the Reference of the empty URI.
type Reference struct {
	raw string

	scheme string

	hasAuthority bool
	// encodedAuthorityRaw is set when the authority was present but could
	// not be decomposed into (userInfo, host, port) — the authority
	// parser's failure is swallowed rather than surfaced, per the "Invalid
	// authority recovery" error policy. Downstream code may then observe
	// encodedAuthorityRaw != nil && !hostSet: preserve that tri-state
	// rather than inventing a stronger invariant.
	encodedAuthorityRaw *string
	hostSet             bool
	encodedUserInfo     *string
	encodedHost         string
	port                int

	encodedPath string

	encodedQuery    *string
	encodedFragment *string
}

// Parse parses s into a Reference per the RFC 3986 Appendix B grammar. It
// returns a *SyntaxError if s does not match that grammar at all; a raw
// authority that fails host/port decomposition is tolerated (see
// Reference.EncodedAuthorityRaw).
func Parse(s string) (*Reference, error) {
	m := uriRE.FindStringSubmatch(s)
	if m == nil {
		return nil, newSyntaxError(s, "does not match the RFC 3986 URI grammar")
	}

	ref := &Reference{raw: s, port: -1}
	ref.scheme = m[uriRESchemeGroup]
	ref.hasAuthority = m[uriREAuthorityWithSlashSlashGroup] != ""

	if ref.hasAuthority {
		authority := m[uriREAuthorityGroup]
		userInfo, host, port, err := ParseAuthority(authority)
		if err != nil {
			ref.encodedAuthorityRaw = &authority
		} else {
			ref.encodedUserInfo = userInfo
			ref.encodedHost = host
			ref.port = port
			ref.hostSet = true
		}
	}

	ref.encodedPath = m[uriREPathGroup]

	if m[uriREQueryWithMarkGroup] != "" {
		q := m[uriREQueryGroup]
		ref.encodedQuery = &q
	}
	if m[uriREFragmentWithHashGroup] != "" {
		f := m[uriREFragmentGroup]
		ref.encodedFragment = &f
	}
	return ref, nil
}

// String returns the URI in its original (or, for a builder-produced
// Reference, canonically serialised) form.
func (r *Reference) String() string { return r.raw }

// Scheme returns the scheme token, or "" if absent.
func (r *Reference) Scheme() string { return r.scheme }

// HasAuthority reports whether a "//" authority marker was present.
func (r *Reference) HasAuthority() bool { return r.hasAuthority }

// EncodedAuthorityRaw returns the raw authority text when it could not be
// decomposed into (userInfo, host, port), and nil otherwise.
func (r *Reference) EncodedAuthorityRaw() *string { return r.encodedAuthorityRaw }

// HostSet reports whether the authority was successfully decomposed into a
// host (possibly empty).
func (r *Reference) HostSet() bool { return r.hostSet }

// EncodedUserInfo returns the raw userinfo, or nil if absent.
func (r *Reference) EncodedUserInfo() *string { return r.encodedUserInfo }

// UserInfo returns the decoded userinfo, or nil if absent.
func (r *Reference) UserInfo() *string { return defaultCodec.Decode(r.encodedUserInfo, false) }

// EncodedHost returns the raw host (bracket-stripped for IPv6 literals).
func (r *Reference) EncodedHost() string { return r.encodedHost }

// Host returns the decoded host.
func (r *Reference) Host() string { return defaultCodec.DecodeString(r.encodedHost, false) }

// Port returns the port, or -1 if unset.
func (r *Reference) Port() int { return r.port }

// EncodedPath returns the raw path.
func (r *Reference) EncodedPath() string { return r.encodedPath }

// Path returns the decoded path segments.
func (r *Reference) Path() []string {
	p := r.encodedPath
	return ParsePath(&p, defaultCodec)
}

// EncodedQuery returns the raw query (without '?'), or nil if absent.
func (r *Reference) EncodedQuery() *string { return r.encodedQuery }

// QueryParams decodes the query into an ordered list of NameValuePair.
func (r *Reference) QueryParams(plusAsBlank bool) []NameValuePair {
	return ParseQuery(r.encodedQuery, defaultCodec, plusAsBlank)
}

// EncodedFragment returns the raw fragment (without '#'), or nil if absent.
func (r *Reference) EncodedFragment() *string { return r.encodedFragment }

// Fragment returns the decoded fragment, or nil if absent.
func (r *Reference) Fragment() *string { return defaultCodec.Decode(r.encodedFragment, false) }
