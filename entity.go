package wikitext

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/dpotapov/wikitext/token"
)

// parseEntity parses a "&"-led HTML entity reference at the head of the
// input.
func (t *Tokenizer) parseEntity() {
	reset := t.cur.head
	t.push(0)
	if err := t.reallyParseEntity(); err != nil {
		t.cur.head = reset
		t.writeText(t.cur.read(0).text)
		return
	}
	t.writeAll(t.pop())
}

// reallyParseEntity does the actual recognition and validation of an HTML
// entity's shape: &name; , &#NNN; , or &#xHHH; / &#XHHH; . The segmented
// input guarantees that the digits/name portion is always a single
// contiguous segment, since it can't contain a marker character itself.
func (t *Tokenizer) reallyParseEntity() error {
	t.write(token.New(token.HTMLEntityStart))
	t.cur.head++

	first, ok := t.cur.readStrict(0)
	if !ok {
		return t.failRoute()
	}

	numeric := false
	hexadecimal := false
	name := first.text

	if first.is("#") {
		numeric = true
		t.write(token.New(token.HTMLEntityNumeric))
		t.cur.head++

		second, ok := t.cur.readStrict(0)
		if !ok {
			return t.failRoute()
		}
		name = second.text
		if name != "" && (name[0] == 'x' || name[0] == 'X') {
			hexadecimal = true
			t.write(token.NewHTMLEntityHex(name[0]))
			name = name[1:]
			if name == "" {
				return t.failRoute()
			}
		}
	}

	if !validEntityBody(name, numeric, hexadecimal) {
		return t.failRoute()
	}

	t.cur.head++
	if !t.cur.read(0).is(";") {
		return t.failRoute()
	}

	if numeric {
		base := 10
		if hexadecimal {
			base = 16
		}
		n, err := strconv.ParseInt(name, base, 64)
		if err != nil || n < 1 || n > 0x10FFFF {
			return t.failRoute()
		}
	} else if !isNamedEntity(name) {
		return t.failRoute()
	}

	t.write(token.NewText(name))
	t.write(token.New(token.HTMLEntityEnd))
	return nil
}

// validEntityBody reports whether every character of name is acceptable for
// the entity shape in play: hex digits for &#x...;, decimal digits for
// &#...;, or ASCII letters and digits for a named reference like &amp;.
func validEntityBody(name string, numeric, hexadecimal bool) bool {
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case hexadecimal:
			if !isHexDigit(c) {
				return false
			}
		case numeric:
			if !isDigit(c) {
				return false
			}
		default:
			if !isDigit(c) && !isASCIILetter(c) {
				return false
			}
		}
	}
	return true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isNamedEntity reports whether name is a recognized HTML5 named character
// reference (the key, without its leading "&" or trailing ";"). Rather than
// vendoring the ~2200-entry W3C entity table, this leans on the standard
// library's HTML entity set via golang.org/x/net/html.UnescapeString.
//
// A naive "did unescaping change anything" check is not sufficient:
// UnescapeString also recognizes the ~100 legacy entities that are valid
// without a trailing ";" (amp, lt, copy, ...), and matches the longest such
// prefix it can find even when name is longer than that prefix. "ampersand"
// would unescape its "amp" prefix and leak the unmatched "ersand;" through
// as literal text, which is a false positive, not a real entity. Reject that
// case by checking whether any suffix of name still appears, unconsumed, in
// the unescaped result; a true full-name match replaces the whole reference
// and leaves none of name's own characters behind.
func isNamedEntity(name string) bool {
	if name == "" {
		return false
	}
	wrapped := "&" + name + ";"
	out := html.UnescapeString(wrapped)
	if out == wrapped {
		return false
	}
	for i := 1; i <= len(name); i++ {
		if strings.Contains(out, name[len(name)-i:]) {
			return false
		}
	}
	return true
}
