package uri

import (
	"bytes"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

const upperHex = "0123456789ABCDEF"

// PercentCodec implements RFC 3986 percent-encoding. Encoding is
// parameterised by a CharClass naming the bytes that may be emitted
// literally; every other byte is transcoded through Charset and emitted as
// "%XY" with uppercase hex digits. Decoding is forgiving: a malformed
// "%xy" escape is passed through literally rather than rejected, mirroring
// the behaviour callers of this kind of codec have always relied on.
//
// A PercentCodec never returns an error: unsupported runes for the
// configured Charset are replaced rather than rejected, and malformed
// escapes degrade to literal passthrough.
type PercentCodec struct {
	// Charset transcodes between Go's native UTF-8 strings and the byte
	// sequence that gets percent-encoded. Nil means UTF-8.
	Charset encoding.Encoding
}

// NewPercentCodec returns a PercentCodec using charset, or UTF-8 if charset
// is nil.
func NewPercentCodec(charset encoding.Encoding) *PercentCodec {
	return &PercentCodec{Charset: charset}
}

// PresetCodec pairs a PercentCodec with a fixed safe set, so callers don't
// need to repeat the safe set on every call.
type PresetCodec struct {
	codec *PercentCodec
	safe  *CharClass
}

// EncodeString percent-encodes s using the preset's fixed safe set.
func (p *PresetCodec) EncodeString(s string, blankAsPlus bool) string {
	return p.codec.EncodeString(s, p.safe, blankAsPlus)
}

// DecodeString reverses EncodeString.
func (p *PresetCodec) DecodeString(s string, plusAsBlank bool) string {
	return p.codec.DecodeString(s, plusAsBlank)
}

// Two ready-made presets, both defaulting to UTF-8 and blankAsPlus=false:
// RFC3986 uses the Unreserved safe set, RFC5987 uses the RFC 5987
// attr-char safe set (for encoding attribute values per RFC 5987 §3.2).
var (
	RFC3986 = &PresetCodec{codec: NewPercentCodec(nil), safe: Unreserved}
	RFC5987 = &PresetCodec{codec: NewPercentCodec(nil), safe: RFC5987Unreserved}
)

func (c *PercentCodec) charset() encoding.Encoding {
	if c.Charset == nil {
		return unicode.UTF8
	}
	return c.Charset
}

// Encode percent-encodes input and appends the result to out. safe names the
// bytes that are emitted as-is; every other byte is emitted as "%XY". When
// blankAsPlus is true, ASCII space (0x20) is emitted as '+' instead of
// "%20". A nil input is a no-op.
func (c *PercentCodec) Encode(out *bytes.Buffer, input *string, safe *CharClass, blankAsPlus bool) {
	if input == nil {
		return
	}
	enc := encoding.ReplaceUnsupported(c.charset())
	encoded, _ := enc.NewEncoder().String(*input)
	for i := 0; i < len(encoded); i++ {
		b := encoded[i]
		switch {
		case safe.Contains(b):
			out.WriteByte(b)
		case blankAsPlus && b == ' ':
			out.WriteByte('+')
		default:
			out.WriteByte('%')
			out.WriteByte(upperHex[b>>4])
			out.WriteByte(upperHex[b&0x0F])
		}
	}
}

// EncodeString is a convenience wrapper around Encode for plain strings.
func (c *PercentCodec) EncodeString(input string, safe *CharClass, blankAsPlus bool) string {
	var buf bytes.Buffer
	c.Encode(&buf, &input, safe, blankAsPlus)
	return buf.String()
}

func ishex(b byte) bool {
	switch {
	case '0' <= b && b <= '9':
		return true
	case 'a' <= b && b <= 'f':
		return true
	case 'A' <= b && b <= 'F':
		return true
	}
	return false
}

func unhex(b byte) byte {
	switch {
	case '0' <= b && b <= '9':
		return b - '0'
	case 'a' <= b && b <= 'f':
		return b - 'a' + 10
	case 'A' <= b && b <= 'F':
		return b - 'A' + 10
	}
	return 0
}

// decodeEscapes walks s left to right, resolving "%XY" escapes and (when
// plusAsBlank) '+' into a raw byte buffer. A malformed "%xy" escape (where
// x or y is not a hex digit) is passed through as the three literal
// characters. A trailing '%' with fewer than two following characters is
// passed through literally and terminates the scan, discarding the rest of
// the input — this is the source's documented forgiving behaviour.
func decodeEscapes(s string, plusAsBlank bool) []byte {
	buf := make([]byte, 0, len(s))
	i := 0
	for i < len(s) {
		switch c := s[i]; {
		case c == '%':
			if i+2 >= len(s) {
				buf = append(buf, '%')
				return buf
			}
			h1, h2 := s[i+1], s[i+2]
			if ishex(h1) && ishex(h2) {
				buf = append(buf, unhex(h1)<<4|unhex(h2))
			} else {
				buf = append(buf, '%', h1, h2)
			}
			i += 3
		case c == '+' && plusAsBlank:
			buf = append(buf, ' ')
			i++
		default:
			buf = append(buf, c)
			i++
		}
	}
	return buf
}

// Decode reverses Encode. A nil input returns nil.
func (c *PercentCodec) Decode(input *string, plusAsBlank bool) *string {
	if input == nil {
		return nil
	}
	raw := decodeEscapes(*input, plusAsBlank)
	dec := encoding.ReplaceUnsupported(c.charset())
	text, _ := dec.NewDecoder().Bytes(raw)
	s := string(text)
	return &s
}

// DecodeString is a convenience wrapper around Decode for plain strings.
func (c *PercentCodec) DecodeString(input string, plusAsBlank bool) string {
	return *c.Decode(&input, plusAsBlank)
}
