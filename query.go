package uri

import "bytes"

// ParseQuery splits an encoded "k=v&k=v" query string into an ordered list
// of NameValuePair. A nil s returns nil. Pairs whose name is empty after
// decoding are dropped (e.g. the "=d" term in "a=1&b=&c&=d"); a term with no
// '=' yields a pair with a nil value. Values are decoded with plusAsBlank;
// names are always decoded with plusAsBlank as well, matching the source's
// uniform treatment of the whole query string.
func ParseQuery(s *string, codec *PercentCodec, plusAsBlank bool) []NameValuePair {
	if s == nil {
		return nil
	}
	if *s == "" {
		return []NameValuePair{}
	}
	if codec == nil {
		codec = NewPercentCodec(nil)
	}

	src := *s
	cur := &cursor{}
	var out []NameValuePair
	for !cur.atEnd(src) {
		name := parseToken(src, cur, ampEquals)
		var value *string
		if cur.skip(src, equalsOnly) {
			v := parseToken(src, cur, ampOnly)
			value = &v
		}
		cur.skip(src, ampOnly)

		if name == "" {
			continue
		}
		decodedName := codec.DecodeString(name, plusAsBlank)
		var decodedValue *string
		if value != nil {
			decodedValue = codec.Decode(value, plusAsBlank)
		}
		out = append(out, NewNameValuePair(decodedName, decodedValue))
	}
	if out == nil {
		out = []NameValuePair{}
	}
	return out
}

// FormatQuery joins params with '&' into out, encoding each name and (when
// present) value with the given safe set. A nil value yields a bare name
// with no '=' sign.
func FormatQuery(out *bytes.Buffer, params []NameValuePair, codec *PercentCodec, safe *CharClass, blankAsPlus bool) {
	if codec == nil {
		codec = NewPercentCodec(nil)
	}
	for i, p := range params {
		if i > 0 {
			out.WriteByte('&')
		}
		name := p.Name()
		codec.Encode(out, &name, safe, blankAsPlus)
		if v := p.Value(); v != nil {
			out.WriteByte('=')
			codec.Encode(out, v, safe, blankAsPlus)
		}
	}
}
