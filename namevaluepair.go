package uri

// NameValuePair is a single decoded name/value entry of a query string, in
// the order it appeared (or will appear) in. A nil Value represents a bare
// name with no '=' separator; a non-nil pointer to an empty string
// represents an explicit empty value ("name=").
//
// This is the collaborator interface: callers may supply their own
// implementation, but every operation in this package also works with the
// concrete BasicNameValuePair below.
type NameValuePair interface {
	Name() string
	Value() *string
}

// BasicNameValuePair is the package's own NameValuePair implementation.
type BasicNameValuePair struct {
	name  string
	value *string
}

// NewNameValuePair returns a BasicNameValuePair with the given name and
// value. Pass a nil value for a bare name.
func NewNameValuePair(name string, value *string) *BasicNameValuePair {
	return &BasicNameValuePair{name: name, value: value}
}

// NewNameValuePairString is a convenience constructor for a non-null value.
func NewNameValuePairString(name, value string) *BasicNameValuePair {
	return &BasicNameValuePair{name: name, value: &value}
}

// Name returns the pair's name.
func (p *BasicNameValuePair) Name() string { return p.name }

// Value returns the pair's value, or nil if the pair has no value.
func (p *BasicNameValuePair) Value() *string { return p.value }
