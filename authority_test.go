package uri_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdrn-org/go-uribuilder"
)

func TestParseAuthorityHostOnly(t *testing.T) {
	userInfo, host, port, err := uri.ParseAuthority("example.com")
	require.NoError(t, err)
	assert.Nil(t, userInfo)
	assert.Equal(t, "example.com", host)
	assert.Equal(t, -1, port)
}

func TestParseAuthorityFull(t *testing.T) {
	userInfo, host, port, err := uri.ParseAuthority("user:pass@example.com:8080")
	require.NoError(t, err)
	require.NotNil(t, userInfo)
	assert.Equal(t, "user:pass", *userInfo)
	assert.Equal(t, "example.com", host)
	assert.Equal(t, 8080, port)
}

func TestParseAuthorityIPv6Bracketed(t *testing.T) {
	userInfo, host, port, err := uri.ParseAuthority("[::1]:80")
	require.NoError(t, err)
	assert.Nil(t, userInfo)
	assert.Equal(t, "::1", host)
	assert.Equal(t, 80, port)
}

func TestParseAuthorityIPv6NoPort(t *testing.T) {
	_, host, port, err := uri.ParseAuthority("[::1]")
	require.NoError(t, err)
	assert.Equal(t, "::1", host)
	assert.Equal(t, -1, port)
}

func TestParseAuthorityIPv6Unterminated(t *testing.T) {
	_, _, _, err := uri.ParseAuthority("[::1")
	require.Error(t, err)
	var syntaxErr *uri.SyntaxError
	assert.ErrorAs(t, err, &syntaxErr)
}

func TestParseAuthorityBlankPort(t *testing.T) {
	_, host, port, err := uri.ParseAuthority("example.com:")
	require.NoError(t, err)
	assert.Equal(t, "example.com", host)
	assert.Equal(t, -1, port)
}

func TestParseAuthorityInvalidPort(t *testing.T) {
	_, _, _, err := uri.ParseAuthority("example.com:notaport")
	require.Error(t, err)
}
