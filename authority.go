package uri

import "strings"

// ParseAuthority splits an encoded authority ("user:info@host:port") into
// its userinfo, host, and port parts. Host is returned without surrounding
// brackets even for an IPv6 literal; port is -1 when absent. Parse uses it
// to decompose every authority it finds; when it fails, Parse keeps the
// authority as raw text (see Reference.EncodedAuthorityRaw).
func ParseAuthority(s string) (userInfo *string, host string, port int, err error) {
	port = -1
	rest := s
	if at := strings.LastIndex(rest, "@"); at >= 0 {
		ui := rest[:at]
		userInfo = &ui
		rest = rest[at+1:]
	}

	if strings.HasPrefix(rest, "[") {
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return nil, "", -1, newSyntaxError(s, "missing ']' in IPv6 host literal")
		}
		host = rest[1:end]
		remainder := rest[end+1:]
		if remainder == "" {
			return userInfo, host, port, nil
		}
		if !strings.HasPrefix(remainder, ":") {
			return nil, "", -1, newSyntaxError(s, "unexpected %q after IPv6 literal", remainder)
		}
		p, perr := parsePort(remainder[1:])
		if perr != nil {
			return nil, "", -1, perr
		}
		return userInfo, host, p, nil
	}

	if colon := strings.LastIndexByte(rest, ':'); colon >= 0 {
		p, perr := parsePort(rest[colon+1:])
		if perr != nil {
			return nil, "", -1, perr
		}
		return userInfo, rest[:colon], p, nil
	}

	return userInfo, rest, port, nil
}

// parsePort parses a decimal port string, returning -1 for an empty string
// (an explicit but blank port, e.g. "host:").
func parsePort(s string) (int, error) {
	if s == "" {
		return -1, nil
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return -1, newSyntaxError(s, "invalid port %q", s)
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}

// isIPv6Literal reports whether host (decoded, unbracketed) should be
// re-bracketed on serialisation — i.e. it contains a ':', which cannot
// appear in a reg-name.
func isIPv6Literal(host string) bool {
	return strings.ContainsRune(host, ':')
}
