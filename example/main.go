// Command wikitext-tokenize is a small demo program that tokenizes a single
// string of wikicode and prints the resulting token list, one per line.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dpotapov/wikitext"
	"github.com/dpotapov/wikitext/token"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var input string
	if len(os.Args) > 1 {
		input = strings.Join(os.Args[1:], " ")
	} else {
		b, err := io.ReadAll(bufio.NewReader(os.Stdin))
		if err != nil {
			logger.Error("reading stdin", "err", err)
			os.Exit(1)
		}
		input = string(b)
	}

	toks := wikitext.TokenizeContext(input, wikitext.WithLogger(logger))
	for _, tok := range toks {
		printToken(tok)
	}
}

func printToken(tok token.Token) {
	switch tok.Kind {
	case token.Text:
		fmt.Printf("Text(%q)\n", tok.Text)
	case token.HeadingStart:
		fmt.Printf("HeadingStart(level=%d)\n", tok.Level)
	case token.HTMLEntityHex:
		fmt.Printf("HTMLEntityHex(char=%q)\n", tok.Char)
	default:
		fmt.Println(tok.Kind.String())
	}
}
