package uri_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tdrn-org/go-uribuilder"
)

func TestHTTPHostString(t *testing.T) {
	h := uri.NewHTTPHost("https", "example.com")
	assert.Equal(t, "https://example.com", h.String())

	h.PortNum = 8443
	assert.Equal(t, "https://example.com:8443", h.String())
}

func TestHTTPHostStringNoScheme(t *testing.T) {
	h := &uri.HTTPHost{Host: "example.com", PortNum: -1}
	assert.Equal(t, "example.com", h.String())
}

func TestURIAuthorityAccessors(t *testing.T) {
	a := &uri.URIAuthority{UserInfo: "u", Host: "example.com", PortNum: 443}
	assert.Equal(t, "example.com", a.HostName())
	assert.Equal(t, 443, a.Port())
}
