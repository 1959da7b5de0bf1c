package uri

import (
	"bytes"
	"strings"
)

// SplitPath splits an encoded path into its segments without decoding them.
// A nil s returns an empty list. At most one leading '/' is stripped before
// splitting, so "/a/b" and "a/b" both yield ["a","b"], and a trailing '/'
// produces a trailing empty segment ("a/" -> ["a", ""]).
func SplitPath(s *string) []string {
	if s == nil {
		return []string{}
	}
	str := *s
	str = strings.TrimPrefix(str, "/")
	return strings.Split(str, "/")
}

// ParsePath splits and decodes an encoded path into its segments.
func ParsePath(s *string, codec *PercentCodec) []string {
	segments := SplitPath(s)
	if codec == nil {
		codec = NewPercentCodec(nil)
	}
	decoded := make([]string, len(segments))
	for i, seg := range segments {
		decoded[i] = codec.DecodeString(seg, false)
	}
	return decoded
}

// FormatPath joins segments with '/' into out, encoding each segment with
// the given safe set. A leading '/' is emitted before every segment except
// the first when rootless is true.
func FormatPath(out *bytes.Buffer, segments []string, rootless bool, codec *PercentCodec, safe *CharClass) {
	if codec == nil {
		codec = NewPercentCodec(nil)
	}
	for i, seg := range segments {
		if !(i == 0 && rootless) {
			out.WriteByte('/')
		}
		s := seg
		codec.Encode(out, &s, safe, false)
	}
}
