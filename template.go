package wikitext

import (
	"strings"

	"github.com/dpotapov/wikitext/token"
)

// parseTemplate parses a template starting at the head of the input (the
// caller has already confirmed the head and next segment are both "{").
// On a bad route (unterminated template, invalid name) only one of the two
// opening braces is emitted as literal text; the main loop's own head
// advance then re-examines the second brace on the next iteration. This is
// intentional: it leaves room for a future layer to recognize {{{...}}}
// triple-brace template arguments without reworking this head math.
func (t *Tokenizer) parseTemplate() {
	reset := t.cur.head
	t.cur.head += 2

	toks, _, err := t.parse(templateName)
	if err != nil {
		t.cur.head = reset
		t.writeText(t.cur.read(0).text)
		return
	}

	t.write(token.New(token.TemplateOpen))
	t.writeAll(toks)
	t.write(token.New(token.TemplateClose))
}

// verifyTemplateName fails the route if the template name collected so far
// contains an interior newline, i.e. one that is not purely leading or
// trailing whitespace. "{{\n foo \n}}" is fine; "{{foo\nbar}}" is not.
func (t *Tokenizer) verifyTemplateName() error {
	t.flushText()
	f := t.top()

	var parts []string
	for _, tok := range f.tokens {
		if tok.Kind == token.Text {
			parts = append(parts, tok.Text)
		}
	}
	trimmed := strings.TrimSpace(joinSegments(parts))
	if trimmed != "" && strings.Contains(trimmed, "\n") {
		return t.failRoute()
	}
	return nil
}

// handleTemplateParam handles a "|" inside a template: it closes out
// whichever sub-phase was active (verifying the name first, if the template
// name just ended) and opens a new parameter key.
func (t *Tokenizer) handleTemplateParam() error {
	f := t.top()
	if f.ctx&templateName != 0 {
		if err := t.verifyTemplateName(); err != nil {
			return err
		}
		f.ctx &^= templateName
	}
	f.ctx &^= templateParamValue
	f.ctx |= templateParamKey
	t.write(token.New(token.TemplateParamSeparator))
	return nil
}

// handleTemplateParamValue handles the "=" that ends a parameter's key and
// starts its value.
func (t *Tokenizer) handleTemplateParamValue() {
	f := t.top()
	f.ctx &^= templateParamKey
	f.ctx |= templateParamValue
	t.write(token.New(token.TemplateParamEquals))
}

// handleTemplateEnd handles the "}}" that closes a template.
func (t *Tokenizer) handleTemplateEnd() ([]token.Token, error) {
	if t.top().ctx&templateName != 0 {
		if err := t.verifyTemplateName(); err != nil {
			return nil, err
		}
	}
	t.cur.head++ // consume the second "}"; the main loop's own advance is skipped because we return.
	return t.pop(), nil
}
