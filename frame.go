package wikitext

import "github.com/dpotapov/wikitext/token"

// frame is one entry on the tokenizer's frame stack: a speculative parsing
// route with its own output, context bits, and pending literal text.
type frame struct {
	tokens  []token.Token
	ctx     context
	textbuf []string
}

// top returns the active frame. Callers must only invoke it while the stack
// is non-empty (invariant I1: true for the whole body of parse).
func (t *Tokenizer) top() *frame {
	return t.stack[len(t.stack)-1]
}

// push opens a new speculative route.
func (t *Tokenizer) push(ctx context) {
	t.stack = append(t.stack, &frame{ctx: ctx})
	t.logPush(ctx)
}

// flushText turns any pending literal text in the active frame into a single
// Text token, preserving invariant I5 (no two adjacent Text tokens).
func (t *Tokenizer) flushText() {
	f := t.top()
	if len(f.textbuf) == 0 {
		return
	}
	joined := joinSegments(f.textbuf)
	f.textbuf = f.textbuf[:0]
	if joined != "" {
		f.tokens = append(f.tokens, token.NewText(joined))
	}
}

// pop retires the active frame successfully, flushing its text buffer, and
// returns its tokens to the caller.
func (t *Tokenizer) pop() []token.Token {
	t.flushText()
	f := t.top()
	depth := len(t.stack)
	t.stack = t.stack[:len(t.stack)-1]
	t.logPop(depth, len(f.tokens))
	return f.tokens
}

// failRoute discards the active frame and returns the bad-route signal. The
// caller (parseTemplate, parseHeading, parseEntity) is responsible for
// restoring head and writing fallback literal text into its own, now-active
// parent frame.
func (t *Tokenizer) failRoute() error {
	err := &badRouteError{depth: len(t.stack)}
	t.stack = t.stack[:len(t.stack)-1]
	t.logBadRoute(err)
	return err
}

// writeText appends s to the active frame's pending text buffer.
func (t *Tokenizer) writeText(s string) {
	if s == "" {
		return
	}
	f := t.top()
	f.textbuf = append(f.textbuf, s)
}

// write flushes any pending text, then appends tok.
func (t *Tokenizer) write(tok token.Token) {
	t.flushText()
	f := t.top()
	f.tokens = append(f.tokens, tok)
}

// writeAll merges a retired sub-frame's tokens into the active frame. If the
// sub-frame begins with a Text token, its string is folded into the active
// frame's pending text buffer before that buffer is flushed (rather than
// appended as a Text token of its own), so a text run started in the parent
// and continued in the child still coalesces into one Text token.
func (t *Tokenizer) writeAll(toks []token.Token) {
	if len(toks) > 0 && toks[0].Kind == token.Text {
		t.writeText(toks[0].Text)
		toks = toks[1:]
	}
	t.flushText()
	f := t.top()
	f.tokens = append(f.tokens, toks...)
}

func joinSegments(parts []string) string {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	buf := make([]byte, 0, n)
	for _, p := range parts {
		buf = append(buf, p...)
	}
	return string(buf)
}
