// Package wikitext tokenizes wikicode — the markup language of MediaWiki —
// into a flat sequence of typed tokens consumed downstream by a tree
// builder. The tokenizer is a single-pass, backtracking, context-sensitive
// scanner: templates, template parameters, section headings, and HTML
// entities are recognized; everything else passes through as literal text.
//
// Tokenize never fails on malformed input. A construct that turns out not to
// be valid wikicode (an unterminated template, a heading spanning a
// newline, a malformed HTML entity) silently falls back to literal text;
// there is no error-recovery diagnostic surface, matching the behavior of
// the tokenizer this package is modeled on.
package wikitext

import (
	"log/slog"

	"github.com/dpotapov/wikitext/token"
)

// Tokenizer holds the mutable state of a single Tokenize call: the
// segmented input, the head position, the frame stack, and the process-wide
// global bitset. A Tokenizer is not reentrant and must not be shared across
// goroutines while a call is in progress. TokenizeContext creates a fresh
// Tokenizer for every call; none is reused between calls.
type Tokenizer struct {
	cur    *cursor
	stack  []*frame
	glob   global
	logger *slog.Logger
}

// Option configures a Tokenizer before tokenization begins.
type Option func(*Tokenizer)

// WithLogger attaches a logger that receives slog.LevelDebug trace events at
// frame push/pop/bad-route boundaries. It is purely diagnostic: tokenizer
// behavior and output are identical with or without a logger attached. A nil
// logger (the default) disables tracing.
func WithLogger(l *slog.Logger) Option {
	return func(t *Tokenizer) { t.logger = l }
}

// Tokenize converts text into a flat token list using default options. It is
// equivalent to TokenizeContext(text) and never returns an error.
func Tokenize(text string) []token.Token {
	return TokenizeContext(text)
}

// TokenizeContext is Tokenize with options, e.g. WithLogger for tracing.
func TokenizeContext(text string, opts ...Option) []token.Token {
	t := &Tokenizer{cur: newCursor(text)}
	for _, opt := range opts {
		opt(t)
	}
	toks, _, err := t.parse(0)
	if err != nil {
		// The outermost parse is entered with context 0, so EOF never
		// triggers a bad route there (see parse's END case below); a bad
		// route reaching here would mean an invariant was violated.
		return nil
	}
	return toks
}

func (t *Tokenizer) logPush(ctx context) {
	if t.logger == nil {
		return
	}
	t.logger.Debug("wikitext: frame pushed", "depth", len(t.stack), "ctx", ctx, "head", t.cur.head)
}

func (t *Tokenizer) logPop(depth, numTokens int) {
	if t.logger == nil {
		return
	}
	t.logger.Debug("wikitext: frame popped", "depth", depth, "tokens", numTokens, "head", t.cur.head)
}

func (t *Tokenizer) logBadRoute(err *badRouteError) {
	if t.logger == nil {
		return
	}
	t.logger.Debug("wikitext: bad route", "depth", err.depth, "head", t.cur.head)
}

// parse is the single recursive routine that walks the cursor, dispatching
// marker segments to sub-parsers, until its frame's terminator is reached or
// input ends. ctx selects what terminates the frame (a template phase, a
// heading level, or neither at the top level).
//
// The returned level is only meaningful when the frame exits through
// handleHeadingEnd; every other caller ignores it.
func (t *Tokenizer) parse(ctx context) ([]token.Token, int, error) {
	t.push(ctx)
	for {
		this := t.cur.read(0)
		if !this.isMarker() {
			t.writeText(this.text)
			t.cur.head++
			continue
		}
		if this.isEnd() {
			if t.top().ctx&(ctxTemplate|ctxHeading) != 0 {
				return nil, 0, t.failRoute()
			}
			return t.pop(), 0, nil
		}

		prev, next := t.cur.read(-1), t.cur.read(1)
		curCtx := t.top().ctx
		switch {
		case this.is("{") && next.is("{"):
			t.parseTemplate()
		case this.is("|") && curCtx&ctxTemplate != 0:
			if err := t.handleTemplateParam(); err != nil {
				return nil, 0, err
			}
		case this.is("=") && curCtx&templateParamKey != 0:
			t.handleTemplateParamValue()
		case this.is("}") && next.is("}") && curCtx&ctxTemplate != 0:
			toks, err := t.handleTemplateEnd()
			return toks, 0, err
		case (prev.is("\n") || prev.isStart()) && this.is("=") && t.glob&glHeading == 0:
			t.parseHeading()
		case this.is("=") && curCtx&ctxHeading != 0:
			toks, level := t.handleHeadingEnd()
			return toks, level, nil
		case this.is("\n") && curCtx&ctxHeading != 0:
			return nil, 0, t.failRoute()
		case this.is("&"):
			t.parseEntity()
		default:
			t.writeText(this.text)
		}
		t.cur.head++
	}
}
