package uri

import "strings"

// Delimiter sets shared by the query and path tokenisers.
var (
	ampEquals  *CharClass
	ampOnly    *CharClass
	equalsOnly *CharClass
)

func init() {
	ampEquals = newCharClass().addString("&=")
	ampOnly = newCharClass().addString("&")
	equalsOnly = newCharClass().addString("=")
}

// cursor is an external scanning position into a string, shared across
// successive calls to parseToken so a caller can read a sequence of
// delimited tokens without re-slicing the source on every call.
type cursor struct {
	pos int
}

// atEnd reports whether the cursor has consumed all of src.
func (c *cursor) atEnd(src string) bool {
	return c.pos >= len(src)
}

// skip advances the cursor by one byte if the current byte is in set,
// returning whether it did so.
func (c *cursor) skip(src string, set *CharClass) bool {
	if c.pos < len(src) && set.Contains(src[c.pos]) {
		c.pos++
		return true
	}
	return false
}

// parseToken advances cur from its current position until it reaches the
// end of src or a byte in delims, then returns the spanned substring
// (trimmed of surrounding whitespace by strings.TrimSpace) without
// consuming the delimiter itself.
func parseToken(src string, cur *cursor, delims *CharClass) string {
	start := cur.pos
	for cur.pos < len(src) && !delims.Contains(src[cur.pos]) {
		cur.pos++
	}
	return strings.TrimSpace(src[start:cur.pos])
}
