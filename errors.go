package wikitext

import "errors"

// errBadRoute is the sentinel wrapped by badRouteError, so errors.Is(err,
// errBadRoute) holds for any bad route, following the err.go convention of
// exposing a package-level sentinel alongside a structured error type. The
// sub-parsers themselves only test for a non-nil error, since a bad route is
// the only error they can receive.
var errBadRoute = errors.New("bad route")

// badRouteError is returned internally when the current speculative
// construct is not valid wikicode: an unterminated template or heading at
// end of input, a newline inside a heading, a malformed HTML entity, or a
// template name containing an interior newline. It never escapes Tokenize or
// TokenizeContext; the nearest speculative caller (parseTemplate,
// parseHeading, parseEntity) catches it, restores its saved head, and writes
// the fallback literal text instead.
type badRouteError struct {
	// depth is the frame-stack depth at which the route failed, kept only
	// for diagnostic logging (see Tokenizer.logBadRoute).
	depth int
}

func (e *badRouteError) Error() string {
	return "wikitext: bad route"
}

func (e *badRouteError) Unwrap() error {
	return errBadRoute
}

func (e *badRouteError) Is(target error) bool {
	return target == errBadRoute
}
