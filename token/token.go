// Package token defines the closed set of token variants produced by the
// wikitext tokenizer.
package token

// Kind identifies which variant a Token holds.
type Kind int

const (
	Text Kind = iota
	TemplateOpen
	TemplateParamSeparator
	TemplateParamEquals
	TemplateClose
	HeadingStart
	HeadingEnd
	HTMLEntityStart
	HTMLEntityNumeric
	HTMLEntityHex
	HTMLEntityEnd
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "Text"
	case TemplateOpen:
		return "TemplateOpen"
	case TemplateParamSeparator:
		return "TemplateParamSeparator"
	case TemplateParamEquals:
		return "TemplateParamEquals"
	case TemplateClose:
		return "TemplateClose"
	case HeadingStart:
		return "HeadingStart"
	case HeadingEnd:
		return "HeadingEnd"
	case HTMLEntityStart:
		return "HTMLEntityStart"
	case HTMLEntityNumeric:
		return "HTMLEntityNumeric"
	case HTMLEntityHex:
		return "HTMLEntityHex"
	case HTMLEntityEnd:
		return "HTMLEntityEnd"
	default:
		return "Unknown"
	}
}

// Token is a single tagged element of the tokenizer's output. Payload fields
// are only meaningful for the Kind that defines them:
//
//   - Text: Text
//   - HeadingStart: Level
//   - HTMLEntityHex: Char
//
// All other variants carry no payload.
type Token struct {
	Kind  Kind
	Text  string
	Level int
	Char  byte
}

// New builds a payload-less token, e.g. New(TemplateOpen).
func New(k Kind) Token {
	return Token{Kind: k}
}

// NewText builds a Text token.
func NewText(s string) Token {
	return Token{Kind: Text, Text: s}
}

// NewHeadingStart builds a HeadingStart token for the given level (1-6).
func NewHeadingStart(level int) Token {
	return Token{Kind: HeadingStart, Level: level}
}

// NewHTMLEntityHex builds a HTMLEntityHex token; char is 'x' or 'X' as read
// from the source.
func NewHTMLEntityHex(char byte) Token {
	return Token{Kind: HTMLEntityHex, Char: char}
}
