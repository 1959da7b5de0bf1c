package uri_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tdrn-org/go-uribuilder"
)

func TestCharClassUnreserved(t *testing.T) {
	for b := 0; b < 256; b++ {
		want := (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9') ||
			b == '-' || b == '.' || b == '_' || b == '~'
		assert.Equalf(t, want, uri.Unreserved.Contains(byte(b)), "byte %d", b)
	}
}

func TestCharClassComposition(t *testing.T) {
	assert.True(t, uri.Uric.Contains('a'))
	assert.True(t, uri.Uric.Contains('+'))
	assert.False(t, uri.Uric.Contains('['))

	assert.True(t, uri.PChar.Contains(':'))
	assert.True(t, uri.PChar.Contains('@'))
	assert.False(t, uri.PChar.Contains('/'))

	assert.True(t, uri.QueryChars.Contains('/'))
	assert.True(t, uri.QueryChars.Contains('?'))

	assert.True(t, uri.FragmentChars.Contains('/'))
	assert.True(t, uri.FragmentChars.Contains('?'))

	assert.True(t, uri.UserInfoChars.Contains(':'))
	assert.Equal(t, uri.Uric, uri.RegName)
}

func TestCharClassRFC5987Unreserved(t *testing.T) {
	for _, b := range []byte("!#$&+-.^_`|~") {
		assert.Truef(t, uri.RFC5987Unreserved.Contains(b), "byte %q", b)
	}
	assert.False(t, uri.RFC5987Unreserved.Contains(':'))
	assert.False(t, uri.RFC5987Unreserved.Contains('@'))
}

func TestCharClassUnion(t *testing.T) {
	a := uri.Unreserved
	b := uri.SubDelims
	u := a.Union(b)
	assert.True(t, u.Contains('-'))
	assert.True(t, u.Contains('+'))
	assert.False(t, u.Contains('/'))
}
