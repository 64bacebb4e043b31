package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/heathj/htmlstream/parser"
)

// tokenPrinter dumps every token with its source span.
type tokenPrinter struct{}

func span(l *parser.Location) string {
	if l == nil {
		return ""
	}
	return fmt.Sprintf("%d:%d-%d:%d", l.StartLine, l.StartCol, l.EndLine, l.EndCol)
}

func (tokenPrinter) OnCharacter(t *parser.Token) {
	fmt.Printf("chars      %q %s\n", t.Chars, span(t.Location))
}

func (tokenPrinter) OnNullCharacter(t *parser.Token) {
	fmt.Printf("null       %q %s\n", t.Chars, span(t.Location))
}

func (tokenPrinter) OnWhitespaceCharacter(t *parser.Token) {
	fmt.Printf("whitespace %q %s\n", t.Chars, span(t.Location))
}

func (tokenPrinter) OnComment(t *parser.Token) {
	fmt.Printf("comment    %q %s\n", t.Data, span(t.Location))
}

func (tokenPrinter) OnDoctype(t *parser.Token) {
	name := ""
	if t.Name != nil {
		name = *t.Name
	}
	fmt.Printf("doctype    %s quirks=%v %s\n", name, t.ForceQuirks, span(t.Location))
}

func (tokenPrinter) OnStartTag(t *parser.Token) {
	fmt.Printf("start tag  <%s> attrs=%d selfClosing=%v %s\n", t.TagName, len(t.Attributes), t.SelfClosing, span(t.Location))
}

func (tokenPrinter) OnEndTag(t *parser.Token) {
	fmt.Printf("end tag    </%s> %s\n", t.TagName, span(t.Location))
}

func (tokenPrinter) OnEOF(t *parser.Token) {
	fmt.Printf("eof        %s\n", span(t.Location))
}

func (tokenPrinter) OnParseError(e *parser.ParseError) {
	fmt.Printf("error      %s\n", e)
}

func main() {
	p := parser.NewStreamParser(tokenPrinter{}, nil)

	in := bufio.NewReader(os.Stdin)
	for {
		line, err := in.ReadString('\n')
		if line != "" {
			if werr := p.Write(line); werr != nil {
				fmt.Fprintln(os.Stderr, werr)
				os.Exit(1)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	if err := p.End(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
