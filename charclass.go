package uri

import "github.com/bits-and-blooms/bitset"

// CharClass is an immutable set of byte values in the range 0..255, used to
// decide whether a given ASCII byte belongs to one of the RFC 3986 character
// classes (unreserved, sub-delims, pchar, ...). Instances are built once at
// package init and never mutated afterwards, so concurrent readers need no
// locking.
type CharClass struct {
	bits *bitset.BitSet
}

func newCharClass() *CharClass {
	return &CharClass{bits: bitset.New(256)}
}

func (c *CharClass) add(b byte) *CharClass {
	c.bits.Set(uint(b))
	return c
}

func (c *CharClass) addRange(lo, hi byte) *CharClass {
	for b := int(lo); b <= int(hi); b++ {
		c.add(byte(b))
	}
	return c
}

func (c *CharClass) addString(s string) *CharClass {
	for i := 0; i < len(s); i++ {
		c.add(s[i])
	}
	return c
}

// Contains reports whether b belongs to the class.
func (c *CharClass) Contains(b byte) bool {
	return c.bits.Test(uint(b))
}

// Union returns a new CharClass holding every byte present in c or other.
func (c *CharClass) Union(other *CharClass) *CharClass {
	return &CharClass{bits: c.bits.Union(other.bits)}
}

// The RFC 3986 / RFC 5987 character classes, composed once at init time.
var (
	alphaChars *CharClass
	digitChars *CharClass

	// Unreserved is ALPHA / DIGIT / "-" / "." / "_" / "~" (RFC 3986 §2.3).
	Unreserved *CharClass
	// GenDelims is ":" / "/" / "?" / "#" / "[" / "]" / "@" (RFC 3986 §2.2).
	GenDelims *CharClass
	// SubDelims is "!" / "$" / "&" / "'" / "(" / ")" / "*" / "+" / "," / ";" / "=".
	SubDelims *CharClass
	// Uric is Unreserved ∪ SubDelims.
	Uric *CharClass
	// PChar is Unreserved ∪ SubDelims ∪ ":" / "@" (RFC 3986 §3.3).
	PChar *CharClass
	// UserInfoChars is the safe set for the userinfo sub-component.
	UserInfoChars *CharClass
	// RegName is the safe set for a reg-name host.
	RegName *CharClass
	// PathSegmentChars is the safe set for a single path segment.
	PathSegmentChars *CharClass
	// QueryChars is the safe set for the query component.
	QueryChars *CharClass
	// FragmentChars is the safe set for the fragment component.
	FragmentChars *CharClass
	// RFC5987Unreserved is the attr-char safe set from RFC 5987 §3.2.1.
	RFC5987Unreserved *CharClass
)

func init() {
	alphaChars = newCharClass().addRange('A', 'Z').addRange('a', 'z')
	digitChars = newCharClass().addRange('0', '9')

	Unreserved = alphaChars.Union(digitChars).Union(newCharClass().addString("-._~"))
	GenDelims = newCharClass().addString(":/?#[]@")
	SubDelims = newCharClass().addString("!$&'()*+,;=")
	Uric = Unreserved.Union(SubDelims)
	PChar = Uric.Union(newCharClass().addString(":@"))
	UserInfoChars = Uric.Union(newCharClass().addString(":"))
	RegName = Uric
	PathSegmentChars = PChar
	QueryChars = PChar.Union(newCharClass().addString("/?"))
	FragmentChars = PChar.Union(newCharClass().addString("/?"))
	RFC5987Unreserved = alphaChars.Union(digitChars).Union(newCharClass().addString("!#$&+-.^_`|~"))
}
