package wikitext

import (
	"strings"

	"github.com/dpotapov/wikitext/token"
)

// parseHeading parses a section heading starting at the head of the input
// (the caller has already confirmed this "=" is at line-start and no
// heading is currently under construction). The opening run of "=" signs
// sets the frame's context to the corresponding heading level, clamped to 6.
func (t *Tokenizer) parseHeading() {
	t.glob |= glHeading
	defer func() { t.glob &^= glHeading }()

	reset := t.cur.head
	t.cur.head++
	best := 1
	for t.cur.read(0).is("=") {
		best++
		t.cur.head++
	}
	ctx := headingContext(best)

	title, level, err := t.parse(ctx)
	if err != nil {
		t.cur.head = reset + best - 1
		t.writeText(strings.Repeat("=", best))
		return
	}

	t.write(token.NewHeadingStart(level))
	if level < best {
		t.writeText(strings.Repeat("=", best-level))
	}
	t.writeAll(title)
	t.write(token.New(token.HeadingEnd))
}

// handleHeadingEnd handles a "=" seen while inside a heading frame. It scans
// the full run of trailing "=" signs, then speculatively parses further in
// case a later run on the same line is the true terminator (e.g. "== a = b =="
// resolves to level 2 with title " a = b ", even though the first "=" run hit
// while scanning for an end has length 1). The rightmost run on the line
// wins, whatever its length; the level is the smaller of the opening level
// and that run's length (clamped to 6), and any earlier "=" runs become
// literal text inside the title.
func (t *Tokenizer) handleHeadingEnd() ([]token.Token, int) {
	reset := t.cur.head
	t.cur.head++
	best := 1
	for t.cur.read(0).is("=") {
		best++
		t.cur.head++
	}

	ctx := t.top().ctx
	current := headingLevel(ctx)
	level := current
	if best < level {
		level = best
	}
	if level > 6 {
		level = 6
	}

	after, afterLevel, err := t.parse(ctx)
	if err != nil {
		if level < best {
			t.writeText(strings.Repeat("=", best-level))
		}
		t.cur.head = reset + best - 1
		return t.pop(), level
	}

	t.writeText(strings.Repeat("=", best))
	t.writeAll(after)
	return t.pop(), afterLevel
}
