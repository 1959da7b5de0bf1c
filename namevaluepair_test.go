package uri_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tdrn-org/go-uribuilder"
)

func TestNewNameValuePairNilValue(t *testing.T) {
	p := uri.NewNameValuePair("name", nil)
	assert.Equal(t, "name", p.Name())
	assert.Nil(t, p.Value())
}

func TestNewNameValuePairString(t *testing.T) {
	p := uri.NewNameValuePairString("name", "value")
	assert.Equal(t, "name", p.Name())
	if v := p.Value(); assert.NotNil(t, v) {
		assert.Equal(t, "value", *v)
	}
}
