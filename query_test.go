package uri_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdrn-org/go-uribuilder"
)

func strPtr(s string) *string { return &s }

func TestParseQueryNil(t *testing.T) {
	assert.Nil(t, uri.ParseQuery(nil, nil, false))
}

func TestParseQueryEmpty(t *testing.T) {
	s := ""
	assert.Equal(t, []uri.NameValuePair{}, uri.ParseQuery(&s, nil, false))
}

func TestParseQueryDropsEmptyNamePair(t *testing.T) {
	s := "a=1&b=&c&=d"
	pairs := uri.ParseQuery(&s, nil, false)
	require.Len(t, pairs, 3)

	assert.Equal(t, "a", pairs[0].Name())
	require.NotNil(t, pairs[0].Value())
	assert.Equal(t, "1", *pairs[0].Value())

	assert.Equal(t, "b", pairs[1].Name())
	require.NotNil(t, pairs[1].Value())
	assert.Equal(t, "", *pairs[1].Value())

	assert.Equal(t, "c", pairs[2].Name())
	assert.Nil(t, pairs[2].Value())
}

func TestParseQueryPlusAsBlank(t *testing.T) {
	s := "a+b=c+d"
	pairs := uri.ParseQuery(&s, nil, true)
	require.Len(t, pairs, 1)
	assert.Equal(t, "a b", pairs[0].Name())
	require.NotNil(t, pairs[0].Value())
	assert.Equal(t, "c d", *pairs[0].Value())
}

func TestFormatQueryRoundTripsOrder(t *testing.T) {
	pairs := []uri.NameValuePair{
		uri.NewNameValuePair("x", strPtr("1")),
		uri.NewNameValuePair("y", strPtr("2")),
		uri.NewNameValuePair("z", nil),
	}
	var buf bytes.Buffer
	uri.FormatQuery(&buf, pairs, nil, uri.Unreserved, false)
	assert.Equal(t, "x=1&y=2&z", buf.String())

	s := buf.String()
	parsed := uri.ParseQuery(&s, nil, false)
	require.Len(t, parsed, 3)
	for i, p := range parsed {
		assert.Equal(t, pairs[i].Name(), p.Name())
	}
}

func TestFormatQueryEncodesReservedBytes(t *testing.T) {
	pairs := []uri.NameValuePair{uri.NewNameValuePair("q", strPtr("hello world"))}
	var buf bytes.Buffer
	uri.FormatQuery(&buf, pairs, nil, uri.Unreserved, false)
	assert.Equal(t, "q=hello%20world", buf.String())
}
