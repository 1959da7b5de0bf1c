package uri_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdrn-org/go-uribuilder"
)

func TestPercentCodecEncodeDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"unreserved only", "abcXYZ019-._~"},
		{"needs escaping", "a b/c?d#e"},
		{"unicode", "Gödel"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := uri.RFC3986.EncodeString(tt.input, false)
			decoded := uri.RFC3986.DecodeString(encoded, false)
			assert.Equal(t, tt.input, decoded)
		})
	}
}

func TestPercentCodecEncodeUnicode(t *testing.T) {
	assert.Equal(t, "G%C3%B6del", uri.RFC3986.EncodeString("Gödel", false))
	assert.Equal(t, "Gödel", uri.RFC3986.DecodeString("G%C3%B6del", false))
}

func TestPercentCodecHexIsUppercase(t *testing.T) {
	encoded := uri.RFC3986.EncodeString("\x01\x02\xff", false)
	for i := 0; i < len(encoded); i++ {
		c := encoded[i]
		assert.False(t, c >= 'a' && c <= 'f', "unexpected lowercase hex digit in %q", encoded)
	}
}

func TestPercentCodecMalformedEscapePassesThrough(t *testing.T) {
	assert.Equal(t, "a%ZZb", uri.RFC3986.DecodeString("a%ZZb", false))
}

func TestPercentCodecTrailingPercentTerminatesDecode(t *testing.T) {
	assert.Equal(t, "ab%", uri.RFC3986.DecodeString("ab%", false))
	assert.Equal(t, "ab%", uri.RFC3986.DecodeString("ab%2", false))
}

func TestPercentCodecBlankAsPlusDuality(t *testing.T) {
	input := "a b c"
	encoded := uri.RFC3986.EncodeString(input, true)
	assert.Equal(t, "a+b+c", encoded)
	decoded := uri.RFC3986.DecodeString(encoded, true)
	assert.Equal(t, input, decoded)
}

func TestPercentCodecNilInput(t *testing.T) {
	codec := uri.NewPercentCodec(nil)
	var buf bytes.Buffer
	codec.Encode(&buf, nil, uri.Unreserved, false)
	assert.Equal(t, "", buf.String())
	assert.Nil(t, codec.Decode(nil, false))
}

func TestPercentCodecRFC5987Preset(t *testing.T) {
	encoded := uri.RFC5987.EncodeString("my file (1).txt", false)
	require.NotContains(t, encoded, " ")
	decoded := uri.RFC5987.DecodeString(encoded, false)
	assert.Equal(t, "my file (1).txt", decoded)
}

func TestPercentCodecEncodeSafeBytesPassthrough(t *testing.T) {
	var buf bytes.Buffer
	codec := uri.NewPercentCodec(nil)
	input := "abc"
	codec.Encode(&buf, &input, uri.Unreserved, false)
	assert.Equal(t, "abc", buf.String())
}
