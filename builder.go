package uri

import (
	"bytes"
	"net"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
)

// EncodingPolicy selects which safe-character-set family is used when
// percent-encoding each URI component. See the table in URIBuilder's doc
// comment.
type EncodingPolicy int

const (
	// PolicyStrict percent-encodes every character outside Unreserved in
	// userinfo, host, path segments and query parameters, and every
	// character outside Uric in a custom query and the fragment. This is
	// the default.
	PolicyStrict EncodingPolicy = iota
	// PolicyRFC3986 additionally leaves each component's RFC 3986
	// sub-delims and gen-delims unescaped where the grammar allows it
	// (userinfo, reg-name, path segment, query, fragment).
	PolicyRFC3986
)

// URIBuilder is a mutable RFC 3986 URI builder. It holds, per component, a
// decoded representation and (until invalidated by a mutation) a raw
// percent-encoded cache, so an unmodified component round-trips through
// Build byte-for-byte while a modified one is re-encoded from its decoded
// form using the component's safe character set. The host is the
// exception: once an authority has been decomposed, the host is always
// re-encoded from its decoded form, so a host holding percent-escapes or
// sub-delims may not serialise byte-for-byte. Safe sets per policy:
//
//	slot               | PolicyStrict  | PolicyRFC3986
//	userInfo           | Unreserved    | UserInfoChars
//	host (reg-name)    | Unreserved    | RegName
//	path segment       | Unreserved    | PathSegmentChars
//	query (from params)| Unreserved    | QueryChars
//	custom query       | Uric          | QueryChars
//	fragment           | Uric          | FragmentChars
//
// A URIBuilder is not safe for concurrent use: mutators touch multiple
// fields non-atomically. The Reference returned by Build is immutable and
// safe to share.
type URIBuilder struct {
	scheme *string

	encodedSchemeSpecificPart *string

	userInfo        *string
	encodedUserInfo *string

	host *string // decoded; never bracketed
	port int     // -1 = unset

	encodedAuthority *string

	pathSegments []string // nil = no path set at all (opaque)
	encodedPath  *string
	pathRootless bool

	queryParams  []NameValuePair // nil = unset
	query        *string         // custom decoded query
	encodedQuery *string

	fragment        *string
	encodedFragment *string

	charset        encoding.Encoding
	encodingPolicy EncodingPolicy
	plusAsBlank    bool
}

// NewURIBuilder returns an empty builder: every component unset, Port -1,
// EncodingPolicy PolicyStrict, PlusAsBlank false, Charset UTF-8.
func NewURIBuilder() *URIBuilder {
	return &URIBuilder{port: -1, encodingPolicy: PolicyStrict}
}

// NewURIBuilderFromString parses raw and returns a builder seeded from it.
func NewURIBuilderFromString(raw string) (*URIBuilder, error) {
	ref, err := Parse(raw)
	if err != nil {
		return nil, err
	}
	return NewURIBuilderFromReference(ref), nil
}

// NewURIBuilderFromReference seeds a builder from an already-parsed
// Reference. It keeps the raw form of the userinfo, path, query and
// fragment (and of an authority that could not be decomposed), and the
// decoded form of the host, port, userinfo, path segments and fragment;
// query parameters are decoded from the raw query when first needed.
func NewURIBuilderFromReference(ref *Reference) *URIBuilder {
	b := NewURIBuilder()

	if scheme := ref.Scheme(); scheme != "" {
		b.scheme = &scheme
	}

	if ref.HasAuthority() {
		if ref.HostSet() {
			host := ref.Host()
			b.host = &host
			b.port = ref.Port()
			if eui := ref.EncodedUserInfo(); eui != nil {
				b.encodedUserInfo = eui
				b.userInfo = ref.UserInfo()
			}
		} else if raw := ref.EncodedAuthorityRaw(); raw != nil {
			b.encodedAuthority = raw
		}
	}

	encodedPath := ref.EncodedPath()
	b.encodedPath = &encodedPath
	b.pathSegments = ref.Path()
	b.pathRootless = !ref.HasAuthority() && encodedPath != "" && encodedPath[0] != '/'

	if eq := ref.EncodedQuery(); eq != nil {
		b.encodedQuery = eq
	}

	if ef := ref.EncodedFragment(); ef != nil {
		b.encodedFragment = ef
		b.fragment = ref.Fragment()
	}

	return b
}

func (b *URIBuilder) codec() *PercentCodec {
	return NewPercentCodec(b.charset)
}

func (b *URIBuilder) safeUserInfo() *CharClass {
	if b.encodingPolicy == PolicyRFC3986 {
		return UserInfoChars
	}
	return Unreserved
}

func (b *URIBuilder) safeHost() *CharClass {
	if b.encodingPolicy == PolicyRFC3986 {
		return RegName
	}
	return Unreserved
}

func (b *URIBuilder) safePathSegment() *CharClass {
	if b.encodingPolicy == PolicyRFC3986 {
		return PathSegmentChars
	}
	return Unreserved
}

func (b *URIBuilder) safeQueryFromParams() *CharClass {
	if b.encodingPolicy == PolicyRFC3986 {
		return QueryChars
	}
	return Unreserved
}

func (b *URIBuilder) safeCustomQuery() *CharClass {
	if b.encodingPolicy == PolicyRFC3986 {
		return QueryChars
	}
	return Uric
}

func (b *URIBuilder) safeFragment() *CharClass {
	if b.encodingPolicy == PolicyRFC3986 {
		return FragmentChars
	}
	return Uric
}

// blankToNil normalises a blank (trim-equivalent) string input to nil, per
// the contract on SetScheme, SetUserInfo, SetHost, SetFragment, and
// SetCustomQuery.
func blankToNil(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

// SetScheme sets the scheme token. A blank scheme is normalised to unset.
func (b *URIBuilder) SetScheme(scheme string) *URIBuilder {
	b.scheme = blankToNil(scheme)
	return b
}

// SetUserInfo sets the decoded userinfo. A blank value is normalised to
// unset.
func (b *URIBuilder) SetUserInfo(userInfo string) *URIBuilder {
	b.userInfo = blankToNil(userInfo)
	b.encodedUserInfo = nil
	b.encodedAuthority = nil
	b.encodedSchemeSpecificPart = nil
	return b
}

// SetEncodedUserInfo sets the raw userinfo cache directly.
func (b *URIBuilder) SetEncodedUserInfo(raw *string) *URIBuilder {
	b.encodedUserInfo = raw
	b.userInfo = nil
	b.encodedAuthority = nil
	b.encodedSchemeSpecificPart = nil
	return b
}

// SetHost sets the decoded host. host must not be bracketed even for an
// IPv6 literal — pass the address text only ("::1", not "[::1]"). A blank
// host is normalised to unset.
func (b *URIBuilder) SetHost(host string) *URIBuilder {
	b.host = blankToNil(host)
	b.encodedAuthority = nil
	b.encodedSchemeSpecificPart = nil
	return b
}

// SetHostAddr sets the host from a net.IP, using its textual form.
func (b *URIBuilder) SetHostAddr(ip net.IP) *URIBuilder {
	return b.SetHost(ip.String())
}

// SetPort sets the port. A negative value is normalised to -1 (unset).
func (b *URIBuilder) SetPort(port int) *URIBuilder {
	if port < 0 {
		port = -1
	}
	b.port = port
	b.encodedAuthority = nil
	b.encodedSchemeSpecificPart = nil
	return b
}

// SetAuthority sets userInfo, host, and port from endpoint in one call.
func (b *URIBuilder) SetAuthority(endpoint *URIAuthority) *URIBuilder {
	if endpoint.UserInfo != "" {
		b.userInfo = &endpoint.UserInfo
	} else {
		b.userInfo = nil
	}
	b.encodedUserInfo = nil
	host := endpoint.Host
	b.host = &host
	b.port = endpoint.PortNum
	b.encodedAuthority = nil
	b.encodedSchemeSpecificPart = nil
	return b
}

// SetHTTPHost sets scheme (if non-empty), host, and port from host.
func (b *URIBuilder) SetHTTPHost(host *HTTPHost) *URIBuilder {
	if host.Scheme != "" {
		b.scheme = &host.Scheme
	}
	h := host.Host
	b.host = &h
	b.port = host.PortNum
	b.encodedAuthority = nil
	b.encodedSchemeSpecificPart = nil
	return b
}

// SetPath replaces the path, splitting it into segments on '/'.
func (b *URIBuilder) SetPath(path string) *URIBuilder {
	b.pathSegments = SplitPath(&path)
	b.pathRootless = path != "" && path[0] != '/'
	b.encodedPath = nil
	b.encodedSchemeSpecificPart = nil
	return b
}

// SetPathSegments replaces the path with a rooted ("/a/b") sequence of
// already-decoded segments.
func (b *URIBuilder) SetPathSegments(segments ...string) *URIBuilder {
	return b.setPathSegments(segments, false)
}

// SetPathSegmentsRootless replaces the path with a rootless ("a/b")
// sequence of already-decoded segments.
func (b *URIBuilder) SetPathSegmentsRootless(segments ...string) *URIBuilder {
	return b.setPathSegments(segments, true)
}

func (b *URIBuilder) setPathSegments(segments []string, rootless bool) *URIBuilder {
	cp := make([]string, len(segments))
	copy(cp, segments)
	b.pathSegments = cp
	b.pathRootless = rootless
	b.encodedPath = nil
	b.encodedSchemeSpecificPart = nil
	return b
}

// AppendPath splits path on '/' and appends the resulting segments to the
// existing path.
func (b *URIBuilder) AppendPath(path string) *URIBuilder {
	return b.AppendPathSegments(SplitPath(&path)...)
}

// AppendPathSegments appends already-decoded segments to the existing
// path.
func (b *URIBuilder) AppendPathSegments(segments ...string) *URIBuilder {
	if b.pathSegments == nil {
		b.pathSegments = []string{}
	}
	b.pathSegments = append(b.pathSegments, segments...)
	b.encodedPath = nil
	b.encodedSchemeSpecificPart = nil
	return b
}

// SetFragment sets the decoded fragment. A blank value is normalised to
// unset.
func (b *URIBuilder) SetFragment(fragment string) *URIBuilder {
	b.fragment = blankToNil(fragment)
	b.encodedFragment = nil
	return b
}

// SetCustomQuery sets a raw custom query string, clearing any structured
// query parameters. A blank value is normalised to unset.
func (b *URIBuilder) SetCustomQuery(query string) *URIBuilder {
	b.query = blankToNil(query)
	b.queryParams = nil
	b.encodedQuery = nil
	return b
}

// SetEncodedQuery sets the raw, already-encoded query cache directly (for
// example when re-seeding a builder from a parsed Reference), clearing any
// structured query parameters.
func (b *URIBuilder) SetEncodedQuery(raw *string) *URIBuilder {
	b.encodedQuery = raw
	b.queryParams = nil
	b.query = nil
	return b
}

// SetParameter removes every existing parameter named name, then appends a
// single new pair with that name and value, clearing any custom query.
func (b *URIBuilder) SetParameter(name string, value *string) *URIBuilder {
	b.clearQueryModes()
	b.removeParameterLocked(name)
	b.queryParams = append(b.queryParams, NewNameValuePair(name, value))
	return b
}

// AddParameter appends a single name/value pair without removing any
// existing entries for the same name, clearing any custom query.
func (b *URIBuilder) AddParameter(name string, value *string) *URIBuilder {
	b.clearQueryModes()
	b.queryParams = append(b.queryParams, NewNameValuePair(name, value))
	return b
}

// AddParameters appends every pair in pairs, clearing any custom query.
func (b *URIBuilder) AddParameters(pairs ...NameValuePair) *URIBuilder {
	b.clearQueryModes()
	b.queryParams = append(b.queryParams, pairs...)
	return b
}

func (b *URIBuilder) clearQueryModes() {
	if b.queryParams == nil {
		b.queryParams = b.QueryParams()
	}
	if b.queryParams == nil {
		b.queryParams = []NameValuePair{}
	}
	b.query = nil
	b.encodedQuery = nil
}

func (b *URIBuilder) removeParameterLocked(name string) {
	if b.queryParams == nil {
		return
	}
	kept := b.queryParams[:0:0]
	for _, p := range b.queryParams {
		if p.Name() != name {
			kept = append(kept, p)
		}
	}
	b.queryParams = kept
}

// RemoveParameter removes every parameter named name. It is a no-op if no
// such parameter exists.
func (b *URIBuilder) RemoveParameter(name string) *URIBuilder {
	params := b.QueryParams()
	for _, p := range params {
		if p.Name() == name {
			b.queryParams = params
			b.encodedQuery = nil
			b.removeParameterLocked(name)
			break
		}
	}
	return b
}

// ClearParameters removes every query parameter, leaving an explicitly
// empty (but still params-mode) query.
func (b *URIBuilder) ClearParameters() *URIBuilder {
	b.queryParams = []NameValuePair{}
	b.query = nil
	b.encodedQuery = nil
	return b
}

// RemoveQuery clears the query component entirely, regardless of which
// mode (params, custom, or raw) it was in.
func (b *URIBuilder) RemoveQuery() *URIBuilder {
	b.queryParams = nil
	b.query = nil
	b.encodedQuery = nil
	return b
}

// QueryParams returns the current structured query parameters. If the
// query is held only as a raw cache (e.g. after parsing a URI string), it
// is lazily decoded here; the decoded result is not stored back into the
// builder. A custom query (SetCustomQuery) never contributes parameters.
func (b *URIBuilder) QueryParams() []NameValuePair {
	if b.queryParams != nil {
		return b.queryParams
	}
	if b.encodedQuery != nil {
		return ParseQuery(b.encodedQuery, b.codec(), b.plusAsBlank)
	}
	return nil
}

// SetCharset sets the charset used to transcode non-ASCII payload before
// percent-encoding. Pass nil for UTF-8.
func (b *URIBuilder) SetCharset(charset encoding.Encoding) *URIBuilder {
	b.charset = charset
	return b
}

// SetPlusAsBlank sets whether a '+' in the query decodes to a blank space.
// If a raw query cache is present, it is eagerly re-parsed into structured
// parameters using the new setting; a query already held as structured
// parameters is left untouched.
func (b *URIBuilder) SetPlusAsBlank(plusAsBlank bool) *URIBuilder {
	b.plusAsBlank = plusAsBlank
	if b.encodedQuery != nil {
		b.queryParams = ParseQuery(b.encodedQuery, b.codec(), plusAsBlank)
	}
	return b
}

// SetEncodingPolicy selects the per-component safe-set family used when
// re-encoding a modified component.
func (b *URIBuilder) SetEncodingPolicy(policy EncodingPolicy) *URIBuilder {
	b.encodingPolicy = policy
	return b
}

// SetSchemeSpecificPart sets a raw scheme-specific part that shortcuts
// serialisation directly from the scheme to the fragment, bypassing
// authority/path/query — for opaque schemes like "mailto:".
func (b *URIBuilder) SetSchemeSpecificPart(raw string) *URIBuilder {
	b.encodedSchemeSpecificPart = &raw
	return b
}

// String serialises the builder's current state into a URI string,
// without validating it (unlike Build). It writes the scheme, then either
// the scheme-specific part or the authority, path and query, then the
// fragment; each component uses its raw cache when one is held and is
// otherwise encoded from its decoded form.
func (b *URIBuilder) String() string {
	var out bytes.Buffer

	if b.scheme != nil {
		out.WriteString(*b.scheme)
		out.WriteByte(':')
	}

	if b.encodedSchemeSpecificPart != nil {
		out.WriteString(*b.encodedSchemeSpecificPart)
		b.writeFragment(&out)
		return out.String()
	}

	authoritySpecified := b.writeAuthority(&out)
	b.writePath(&out, authoritySpecified)
	b.writeQuery(&out)
	b.writeFragment(&out)
	return out.String()
}

func (b *URIBuilder) writeAuthority(out *bytes.Buffer) bool {
	if b.encodedAuthority != nil {
		out.WriteString("//")
		out.WriteString(*b.encodedAuthority)
		return true
	}
	if b.host == nil {
		return false
	}
	out.WriteString("//")
	if b.encodedUserInfo != nil {
		out.WriteString(*b.encodedUserInfo)
		out.WriteByte('@')
	} else if b.userInfo != nil {
		b.writeUserInfo(out, *b.userInfo)
		out.WriteByte('@')
	}
	host := *b.host
	if isIPv6Literal(host) {
		out.WriteByte('[')
		out.WriteString(host)
		out.WriteByte(']')
	} else {
		b.codec().Encode(out, &host, b.safeHost(), false)
	}
	if b.port >= 0 {
		out.WriteByte(':')
		out.WriteString(strconv.Itoa(b.port))
	}
	return true
}

func (b *URIBuilder) writeUserInfo(out *bytes.Buffer, userInfo string) {
	if idx := strings.IndexByte(userInfo, ':'); idx >= 0 {
		user, pass := userInfo[:idx], userInfo[idx+1:]
		b.codec().Encode(out, &user, b.safeUserInfo(), false)
		out.WriteByte(':')
		b.codec().Encode(out, &pass, b.safeUserInfo(), false)
		return
	}
	b.codec().Encode(out, &userInfo, b.safeUserInfo(), false)
}

func (b *URIBuilder) writePath(out *bytes.Buffer, authoritySpecified bool) {
	if b.encodedPath != nil {
		p := *b.encodedPath
		if authoritySpecified && p != "" && !strings.HasPrefix(p, "/") {
			out.WriteByte('/')
		}
		out.WriteString(p)
		return
	}
	if b.pathSegments != nil {
		rootless := b.pathRootless && !authoritySpecified
		FormatPath(out, b.pathSegments, rootless, b.codec(), b.safePathSegment())
	}
}

func (b *URIBuilder) writeQuery(out *bytes.Buffer) {
	if b.encodedQuery != nil {
		out.WriteByte('?')
		out.WriteString(*b.encodedQuery)
		return
	}
	if len(b.queryParams) > 0 {
		out.WriteByte('?')
		FormatQuery(out, b.queryParams, b.codec(), b.safeQueryFromParams(), false)
		return
	}
	if b.query != nil {
		out.WriteByte('?')
		q := *b.query
		b.codec().Encode(out, &q, b.safeCustomQuery(), false)
	}
}

func (b *URIBuilder) writeFragment(out *bytes.Buffer) {
	if b.encodedFragment != nil {
		out.WriteByte('#')
		out.WriteString(*b.encodedFragment)
		return
	}
	if b.fragment != nil {
		out.WriteByte('#')
		f := *b.fragment
		b.codec().Encode(out, &f, b.safeFragment(), false)
	}
}

// Build serialises the builder (as String does) and re-parses the result
// into an immutable Reference, after rejecting an http/https scheme paired
// with a blank host.
func (b *URIBuilder) Build() (*Reference, error) {
	if b.scheme != nil && (*b.scheme == "http" || *b.scheme == "https") {
		if (b.host == nil || strings.TrimSpace(*b.host) == "") && b.encodedAuthority == nil {
			return nil, newSyntaxError(b.String(), "scheme %q requires a non-blank host", *b.scheme)
		}
	}
	return Parse(b.String())
}

// GetPath reconstructs "/seg1/seg2" from the current path segments, or
// returns nil if no path has ever been set.
func (b *URIBuilder) GetPath() *string {
	if b.pathSegments == nil {
		return nil
	}
	s := "/" + strings.Join(b.pathSegments, "/")
	return &s
}

// GetAuthority synthesises a decoded authority value from userInfo, host,
// and port, or returns nil if no host is set.
func (b *URIBuilder) GetAuthority() *string {
	if b.host == nil {
		return nil
	}
	var sb strings.Builder
	if b.userInfo != nil {
		sb.WriteString(*b.userInfo)
		sb.WriteByte('@')
	}
	sb.WriteString(*b.host)
	if b.port >= 0 {
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(b.port))
	}
	s := sb.String()
	return &s
}

// IsAbsolute reports whether a scheme has been set.
func (b *URIBuilder) IsAbsolute() bool { return b.scheme != nil }

// IsOpaque reports whether the path is entirely absent (neither raw nor
// segment-structured) — the state of a freshly-constructed builder that
// has never had a path set on it.
func (b *URIBuilder) IsOpaque() bool { return b.pathSegments == nil && b.encodedPath == nil }

// Host returns the decoded host, or nil if unset.
func (b *URIBuilder) Host() *string { return b.host }

// Port returns the port, or -1 if unset.
func (b *URIBuilder) Port() int { return b.port }

// Scheme returns the scheme, or nil if unset.
func (b *URIBuilder) Scheme() *string { return b.scheme }

// UserInfo returns the decoded userinfo, or nil if unset.
func (b *URIBuilder) UserInfo() *string { return b.userInfo }

// Fragment returns the decoded fragment, or nil if unset.
func (b *URIBuilder) Fragment() *string { return b.fragment }
