package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tokenCollector records everything the tokenizer emits. Tokens are copied
// on receipt, per the borrowing contract.
type tokenCollector struct {
	tokens []Token
	errs   []ParseError
}

func (c *tokenCollector) add(t *Token)                  { c.tokens = append(c.tokens, *t) }
func (c *tokenCollector) OnCharacter(t *Token)          { c.add(t) }
func (c *tokenCollector) OnNullCharacter(t *Token)      { c.add(t) }
func (c *tokenCollector) OnWhitespaceCharacter(t *Token) { c.add(t) }
func (c *tokenCollector) OnComment(t *Token)            { c.add(t) }
func (c *tokenCollector) OnDoctype(t *Token)            { c.add(t) }
func (c *tokenCollector) OnStartTag(t *Token)           { c.add(t) }
func (c *tokenCollector) OnEndTag(t *Token)             { c.add(t) }
func (c *tokenCollector) OnEOF(t *Token)                { c.add(t) }
func (c *tokenCollector) OnParseError(e *ParseError)    { c.errs = append(c.errs, *e) }

func (c *tokenCollector) errCodes() []ErrorCode {
	var codes []ErrorCode
	for _, e := range c.errs {
		codes = append(codes, e.Code)
	}
	return codes
}

// charData concatenates all character payloads, the piece most tests care
// about regardless of kind splits.
func (c *tokenCollector) charData() string {
	var b strings.Builder
	for _, t := range c.tokens {
		switch t.TokenType {
		case characterToken, whitespaceCharacterToken, nullCharacterToken:
			b.WriteString(t.Chars)
		}
	}
	return b.String()
}

func tokenizeChunks(t *testing.T, chunks ...string) *tokenCollector {
	t.Helper()
	c := &tokenCollector{}
	p := NewHTMLTokenizer(c)
	for i, chunk := range chunks {
		if err := p.Write(chunk, i == len(chunks)-1, nil); err != nil {
			t.Fatal(err)
		}
	}
	return c
}

func tokenize(t *testing.T, in string) *tokenCollector {
	return tokenizeChunks(t, in)
}

type tokenSummary struct {
	tokenType tokenType
	text      string // tag name, comment/char data, or doctype name
}

func summarize(tokens []Token) []tokenSummary {
	var out []tokenSummary
	for _, tok := range tokens {
		s := tokenSummary{tokenType: tok.TokenType}
		switch tok.TokenType {
		case startTagToken, endTagToken:
			s.text = tok.TagName
		case commentToken:
			s.text = tok.Data
		case characterToken, whitespaceCharacterToken, nullCharacterToken:
			s.text = tok.Chars
		case docTypeToken:
			if tok.Name != nil {
				s.text = *tok.Name
			}
		}
		out = append(out, s)
	}
	return out
}

func TestTokenizerBasicDocument(t *testing.T) {
	c := tokenize(t, "<p>Hi</p>")

	want := []tokenSummary{
		{startTagToken, "p"},
		{characterToken, "Hi"},
		{endTagToken, "p"},
		{endOfFileToken, ""},
	}
	assert.Equal(t, want, summarize(c.tokens))
	assert.Empty(t, c.errs)

	require.Len(t, c.tokens, 4)
	p := c.tokens[0]
	assert.Equal(t, 0, p.Location.StartOffset)
	assert.Equal(t, 3, p.Location.EndOffset)
	hi := c.tokens[1]
	assert.Equal(t, 3, hi.Location.StartOffset)
	assert.Equal(t, 5, hi.Location.EndOffset)
	endP := c.tokens[2]
	assert.Equal(t, 5, endP.Location.StartOffset)
	assert.Equal(t, 9, endP.Location.EndOffset)
	assert.Equal(t, 9, c.tokens[3].Location.StartOffset)
}

func TestTokenizerComment(t *testing.T) {
	c := tokenize(t, "<!-- a -->")

	want := []tokenSummary{
		{commentToken, " a "},
		{endOfFileToken, ""},
	}
	assert.Equal(t, want, summarize(c.tokens))
	assert.Empty(t, c.errs)
	assert.Equal(t, 0, c.tokens[0].Location.StartOffset)
	assert.Equal(t, 10, c.tokens[0].Location.EndOffset)
}

func TestTokenizerCharacterReferencesInData(t *testing.T) {
	c := tokenize(t, "&amp;&lt;&#65;")

	assert.Equal(t, "&<A", c.charData())
	assert.Empty(t, c.errs)
}

func TestTokenizerNewlineNormalization(t *testing.T) {
	c := tokenize(t, "a\r\nb\rc\nd")

	assert.Equal(t, "a\nb\nc\nd", c.charData())
	assert.Equal(t, endOfFileToken, c.tokens[len(c.tokens)-1].TokenType)
	assert.Empty(t, c.errs)
}

func TestTokenizerCharacterKindCoalescing(t *testing.T) {
	c := tokenize(t, "ab  cd")

	want := []tokenSummary{
		{characterToken, "ab"},
		{whitespaceCharacterToken, "  "},
		{characterToken, "cd"},
		{endOfFileToken, ""},
	}
	assert.Equal(t, want, summarize(c.tokens))
}

func TestTokenizerNullInData(t *testing.T) {
	c := tokenize(t, "a\x00b")

	want := []tokenSummary{
		{characterToken, "a"},
		{nullCharacterToken, "\x00"},
		{characterToken, "b"},
		{endOfFileToken, ""},
	}
	assert.Equal(t, want, summarize(c.tokens))
	assert.Equal(t, []ErrorCode{ErrUnexpectedNullCharacter}, c.errCodes())
}

type attrAccuracyTestcase struct {
	inHTML string
	attrs  map[string]string
}

var attrAccuracyTests = []attrAccuracyTestcase{
	{"<head></head>", map[string]string{}},
	{"<script src='123' onload='test'></script>", map[string]string{
		"src":    "123",
		"onload": "test",
	}},
	{"<a href='https://google.com' onclick='alert(1)'>Click this</a>", map[string]string{
		"href":    "https://google.com",
		"onclick": "alert(1)",
	}},
	{"<script src='123' src='456'></script>", map[string]string{
		"src": "123",
	}},
	{"<script src=123 onload=test></script>", map[string]string{
		"src":    "123",
		"onload": "test",
	}},
	{"<script src='123' onload='test' ></script>", map[string]string{
		"src":    "123",
		"onload": "test",
	}},
	{"<script =src='123'onload='test' ></script>", map[string]string{
		"=src":   "123",
		"onload": "test",
	}},
	{"<script src></script>", map[string]string{
		"src": "",
	}},
	{"<script src test></script>", map[string]string{
		"src":  "",
		"test": "",
	}},
	{"<script 'asd></script>", map[string]string{
		"'asd": "",
	}},
	{"<script <asd></script>", map[string]string{
		"<asd": "",
	}},
	{"<script ABC=123></script>", map[string]string{
		"abc": "123",
	}},
	{"<script abc='\u0000123'></script>", map[string]string{
		"abc": "\uFFFD123",
	}},
	{"<script abc=></script>", map[string]string{
		"abc": "",
	}},
	{"<script\tabc=123></script>", map[string]string{
		"abc": "123",
	}},
	{"<a b = c>", map[string]string{
		"b": "c",
	}},
}

// TestTokenizerAttributeAccuracy makes sure we collect the right attribute
// names and values on the first start tag of each snippet.
func TestTokenizerAttributeAccuracy(t *testing.T) {
	for _, tt := range attrAccuracyTests {
		tt := tt
		t.Run(tt.inHTML, func(t *testing.T) {
			t.Parallel()
			c := tokenize(t, tt.inHTML)
			require.NotEmpty(t, c.tokens)
			first := c.tokens[0]
			require.Equal(t, startTagToken, first.TokenType)
			require.Len(t, first.Attributes, len(tt.attrs))
			for k, v := range tt.attrs {
				got, ok := first.Attr(k)
				if !ok {
					t.Errorf("expected to find attribute %q", k)
					continue
				}
				assert.Equal(t, v, got, "attribute %q", k)
			}
		})
	}
}

func TestTokenizerDuplicateAttributeError(t *testing.T) {
	c := tokenize(t, "<b class=x class=y>")
	assert.Contains(t, c.errCodes(), ErrDuplicateAttribute)
	require.Len(t, c.tokens[0].Attributes, 1)
	assert.Equal(t, "x", c.tokens[0].Attributes[0].Value)
}

func TestTokenizerSelfClosing(t *testing.T) {
	c := tokenize(t, "<br/>")
	require.Equal(t, startTagToken, c.tokens[0].TokenType)
	assert.True(t, c.tokens[0].SelfClosing)
	assert.False(t, c.tokens[0].AckSelfClosing, "acknowledgement is the consumer's")
}

func TestTokenizerEndTagWithAttributes(t *testing.T) {
	c := tokenize(t, "</p class=x>")
	require.Equal(t, endTagToken, c.tokens[0].TokenType)
	assert.Empty(t, c.tokens[0].Attributes)
	assert.Contains(t, c.errCodes(), ErrEndTagWithAttributes)
}

type doctypeTestcase struct {
	in       string
	name     *string
	publicID *string
	systemID *string
	quirks   bool
	errs     []ErrorCode
}

func strp(s string) *string { return &s }

var doctypeTests = []doctypeTestcase{
	{"<!DOCTYPE html>", strp("html"), nil, nil, false, nil},
	{"<!doctype HTML>", strp("html"), nil, nil, false, nil},
	{
		`<!DOCTYPE html PUBLIC "-//W3C//DTD HTML 4.01//EN" "http://www.w3.org/TR/html4/strict.dtd">`,
		strp("html"),
		strp("-//W3C//DTD HTML 4.01//EN"),
		strp("http://www.w3.org/TR/html4/strict.dtd"),
		false,
		nil,
	},
	{`<!DOCTYPE html SYSTEM 'about:legacy-compat'>`, strp("html"), nil, strp("about:legacy-compat"), false, nil},
	{"<!DOCTYPE>", nil, nil, nil, true, []ErrorCode{ErrMissingDoctypeName}},
	{"<!DOCTYPE html PUBLIC>", strp("html"), nil, nil, true, []ErrorCode{ErrMissingDoctypePublicIdentifier}},
	{"<!DOCTYPE html PUBLIC x>", strp("html"), nil, nil, true, []ErrorCode{ErrMissingQuoteBeforeDoctypePublicIdentifier}},
	{"<!DOCTYPE html BOGUS>", strp("html"), nil, nil, true, []ErrorCode{ErrInvalidCharacterSequenceAfterDoctypeName}},
	{"<!DOCTYPEhtml>", strp("html"), nil, nil, false, []ErrorCode{ErrMissingWhitespaceBeforeDoctypeName}},
}

func TestTokenizerDoctypes(t *testing.T) {
	for _, tt := range doctypeTests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			c := tokenize(t, tt.in)
			require.NotEmpty(t, c.tokens)
			d := c.tokens[0]
			require.Equal(t, docTypeToken, d.TokenType)
			assert.Equal(t, tt.name, d.Name)
			assert.Equal(t, tt.publicID, d.PublicIdentifier)
			assert.Equal(t, tt.systemID, d.SystemIdentifier)
			assert.Equal(t, tt.quirks, d.ForceQuirks)
			for _, code := range tt.errs {
				assert.Contains(t, c.errCodes(), code)
			}
		})
	}
}

type commentTestcase struct {
	in   string
	data string
	errs []ErrorCode
}

var commentTests = []commentTestcase{
	{"<!---->", "", nil},
	{"<!--x-->", "x", nil},
	{"<!-->", "", []ErrorCode{ErrAbruptClosingOfEmptyComment}},
	{"<!--->", "", []ErrorCode{ErrAbruptClosingOfEmptyComment}},
	{"<!--a--!>", "a", []ErrorCode{ErrIncorrectlyClosedComment}},
	{"<!--a<!--b-->", "a<!--b", []ErrorCode{ErrNestedComment}},
	{"<!--a--b-->", "a--b", nil},
	{"<?pi?>", "?pi?", []ErrorCode{ErrUnexpectedQuestionMarkInsteadOfTagName}},
	{"<!x>", "x", []ErrorCode{ErrIncorrectlyOpenedComment}},
	{"</>", "", []ErrorCode{ErrMissingEndTagName}},
}

func TestTokenizerComments(t *testing.T) {
	for _, tt := range commentTests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			c := tokenize(t, tt.in)
			var comments []string
			for _, tok := range c.tokens {
				if tok.TokenType == commentToken {
					comments = append(comments, tok.Data)
				}
			}
			if tt.in == "</>" {
				assert.Empty(t, comments)
			} else {
				require.Len(t, comments, 1)
				assert.Equal(t, tt.data, comments[0])
			}
			for _, code := range tt.errs {
				assert.Contains(t, c.errCodes(), code)
			}
		})
	}
}

type charRefTestcase struct {
	in   string
	out  string
	errs []ErrorCode
}

var charRefTests = []charRefTestcase{
	{"&amp;", "&", nil},
	{"&amp", "&", []ErrorCode{ErrMissingSemicolonAfterCharacterReference}},
	{"&ampx", "&x", []ErrorCode{ErrMissingSemicolonAfterCharacterReference}},
	{"&notin;", "∉", nil},
	{"&not;", "¬", nil},
	{"&notx", "¬x", []ErrorCode{ErrMissingSemicolonAfterCharacterReference}},
	{"&abcdef;", "&abcdef;", []ErrorCode{ErrUnknownNamedCharacterReference}},
	{"&;", "&;", nil},
	{"& x", "& x", nil},
	{"&#65;", "A", nil},
	{"&#x41;", "A", nil},
	{"&#X41;", "A", nil},
	{"&#65", "A", []ErrorCode{ErrMissingSemicolonAfterCharacterReference}},
	{"&#;", "&#;", []ErrorCode{ErrAbsenceOfDigitsInNumericCharacterReference}},
	{"&#x;", "&#x;", []ErrorCode{ErrAbsenceOfDigitsInNumericCharacterReference}},
	{"&#0;", "�", []ErrorCode{ErrNullCharacterReference}},
	{"&#x110000;", "�", []ErrorCode{ErrCharacterReferenceOutsideUnicodeRange}},
	{"&#xD800;", "�", []ErrorCode{ErrSurrogateCharacterReference}},
	{"&#xFDD0;", "﷐", []ErrorCode{ErrNoncharacterCharacterReference}},
	{"&#x80;", "€", []ErrorCode{ErrControlCharacterReference}},
	{"&#x9F;", "Ÿ", []ErrorCode{ErrControlCharacterReference}},
	{"&#x1F600;", "\U0001F600", nil},
}

func TestTokenizerCharacterReferences(t *testing.T) {
	for _, tt := range charRefTests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			c := tokenize(t, tt.in)
			assert.Equal(t, tt.out, c.charData())
			assert.Equal(t, tt.errs, c.errCodes())
		})
	}
}

type attrCharRefTestcase struct {
	in    string
	value string
	errs  []ErrorCode
}

var attrCharRefTests = []attrCharRefTestcase{
	{"<a href='?a=b&amp;c=d'>", "?a=b&c=d", nil},
	// A non-terminated reference followed by = or alphanumeric stays
	// literal inside an attribute value, with no error.
	{"<a href='?a=b&not=d'>", "?a=b&not=d", nil},
	{"<a href='?a=b&nota'>", "?a=b&nota", nil},
	{"<a href='x&not'>", "x¬", []ErrorCode{ErrMissingSemicolonAfterCharacterReference}},
	{"<a href='x&#65y'>", "xAy", []ErrorCode{ErrMissingSemicolonAfterCharacterReference}},
}

func TestTokenizerCharacterReferencesInAttributes(t *testing.T) {
	for _, tt := range attrCharRefTests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			c := tokenize(t, tt.in)
			require.NotEmpty(t, c.tokens)
			got, ok := c.tokens[0].Attr("href")
			require.True(t, ok)
			assert.Equal(t, tt.value, got)
			assert.Equal(t, tt.errs, c.errCodes())
		})
	}
}

func TestTokenizerCDATAAllowed(t *testing.T) {
	c := &tokenCollector{}
	p := NewHTMLTokenizer(c)
	p.SetAllowCDATA(true)
	require.NoError(t, p.Write("<![CDATA[x]]>", true, nil))

	assert.Equal(t, "x", c.charData())
	assert.Empty(t, c.errCodes())
}

func TestTokenizerCDATABracketRunsEmit(t *testing.T) {
	c := &tokenCollector{}
	p := NewHTMLTokenizer(c)
	p.SetAllowCDATA(true)
	require.NoError(t, p.Write("<![CDATA[a]b]]c]]]>", true, nil))

	assert.Equal(t, "a]b]]c]", c.charData())
}

func TestTokenizerCDATAInHTMLContent(t *testing.T) {
	c := tokenize(t, "<![CDATA[x]]>")

	require.Equal(t, commentToken, c.tokens[0].TokenType)
	assert.Equal(t, "[CDATA[x]]", c.tokens[0].Data)
	assert.Equal(t, []ErrorCode{ErrCDATAInHTMLContent}, c.errCodes())
}

type eofTestcase struct {
	in   string
	errs []ErrorCode
}

var eofTests = []eofTestcase{
	{"<", []ErrorCode{ErrEOFBeforeTagName}},
	{"</", []ErrorCode{ErrEOFBeforeTagName}},
	{"<p", []ErrorCode{ErrEOFInTag}},
	{"<p class", []ErrorCode{ErrEOFInTag}},
	{"<p class='x", []ErrorCode{ErrEOFInTag}},
	{"<!--", []ErrorCode{ErrEOFInComment}},
	{"<!-- x", []ErrorCode{ErrEOFInComment}},
	{"<!DOCTYPE", []ErrorCode{ErrEOFInDoctype}},
	{"<!DOCTYPE html", []ErrorCode{ErrEOFInDoctype}},
}

func TestTokenizerEOFErrors(t *testing.T) {
	for _, tt := range eofTests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			c := tokenize(t, tt.in)
			for _, code := range tt.errs {
				assert.Contains(t, c.errCodes(), code)
			}
			assert.Equal(t, endOfFileToken, c.tokens[len(c.tokens)-1].TokenType)
		})
	}
}

func TestTokenizerEOFSalvage(t *testing.T) {
	c := tokenize(t, "<!-- x")
	require.Equal(t, commentToken, c.tokens[0].TokenType)
	assert.Equal(t, " x", c.tokens[0].Data)

	c = tokenize(t, "<!DOCTYPE html")
	require.Equal(t, docTypeToken, c.tokens[0].TokenType)
	require.NotNil(t, c.tokens[0].Name)
	assert.Equal(t, "html", *c.tokens[0].Name)
	assert.True(t, c.tokens[0].ForceQuirks)
}

func TestTokenizerEOFInTagEmitsNoTag(t *testing.T) {
	c := tokenize(t, "<p class='x")
	require.Len(t, c.tokens, 1)
	assert.Equal(t, endOfFileToken, c.tokens[0].TokenType)
}

// chunkSplits returns every two-way split of s at rune boundaries.
func chunkSplits(s string) [][]string {
	var splits [][]string
	for i := range s {
		if i == 0 {
			continue
		}
		splits = append(splits, []string{s[:i], s[i:]})
	}
	return splits
}

func TestTokenizerChunkingInvariance(t *testing.T) {
	inputs := []string{
		"<p>Hi</p>",
		"<!-- a -->",
		"&amp;&lt;&#65;",
		"a\r\nb\rc\nd",
		"<!DOCTYPE html PUBLIC \"a\" 'b'>",
		"<div class='x y' id=z>text</div>",
		"<![CDATA[x]]>",
		"&notin;&notx",
	}
	for _, in := range inputs {
		in := in
		t.Run(in, func(t *testing.T) {
			t.Parallel()
			whole := tokenize(t, in)
			for _, split := range chunkSplits(in) {
				chunked := tokenizeChunks(t, split...)
				assert.Equal(t, whole.tokens, chunked.tokens, "split %q", split[0])
				assert.Equal(t, whole.errs, chunked.errs, "split %q", split[0])
			}
		})
	}
}

func TestTokenizerLocationMonotonicity(t *testing.T) {
	in := "<!DOCTYPE html>\n<p class='x'>a&amp;b</p>\n<!-- done -->"
	c := tokenize(t, in)

	prevEnd := 0
	for _, tok := range c.tokens {
		require.NotNil(t, tok.Location)
		assert.LessOrEqual(t, tok.Location.StartOffset, tok.Location.EndOffset)
		assert.GreaterOrEqual(t, tok.Location.StartOffset, prevEnd)
		prevEnd = tok.Location.EndOffset
	}
}

func TestTokenizerAttributeLocations(t *testing.T) {
	c := tokenize(t, `<a href="x">`)

	require.Len(t, c.tokens[0].Attributes, 1)
	attr := c.tokens[0].Attributes[0]
	require.NotNil(t, attr.NameLocation)
	assert.Equal(t, 3, attr.NameLocation.StartOffset)
	assert.Equal(t, 7, attr.NameLocation.EndOffset)
	require.NotNil(t, attr.ValueLocation)
	assert.Equal(t, 8, attr.ValueLocation.StartOffset)
	assert.Equal(t, 11, attr.ValueLocation.EndOffset)
}

func TestTokenizerBufferCompactionKeepsOffsets(t *testing.T) {
	c := &tokenCollector{}
	p := NewHTMLTokenizer(c)
	p.preprocessor.bufferWaterline = 64

	filler := strings.Repeat("a", 100)
	require.NoError(t, p.Write(filler, false, nil))
	require.NoError(t, p.Write("<b>", true, nil))

	var tag *Token
	for i := range c.tokens {
		if c.tokens[i].TokenType == startTagToken {
			tag = &c.tokens[i]
		}
	}
	require.NotNil(t, tag)
	assert.Equal(t, 100, tag.Location.StartOffset)
	assert.Equal(t, 103, tag.Location.EndOffset)
}

func TestTokenizerReentrantWrite(t *testing.T) {
	var p *HTMLTokenizer
	h := &reentrantHandler{}
	p = NewHTMLTokenizer(h)
	h.p = p

	require.NoError(t, p.Write("<b>", true, nil))
	assert.Equal(t, ErrReentrantWrite, h.got)
}

type reentrantHandler struct {
	tokenCollector
	p   *HTMLTokenizer
	got error
}

func (h *reentrantHandler) OnStartTag(t *Token) {
	h.got = h.p.Write("nested", false, nil)
	h.tokenCollector.OnStartTag(t)
}

func TestTokenizerWriteAfterLastChunk(t *testing.T) {
	c := &tokenCollector{}
	p := NewHTMLTokenizer(c)
	require.NoError(t, p.Write("x", true, nil))
	assert.Equal(t, ErrAfterLastChunk, p.Write("y", true, nil))
}

func TestTokenizerWriteCallback(t *testing.T) {
	c := &tokenCollector{}
	p := NewHTMLTokenizer(c)

	calls := 0
	require.NoError(t, p.Write("<p>unfinished", false, func() { calls++ }))
	assert.Equal(t, 1, calls, "callback fires when the chunk is exhausted")

	require.NoError(t, p.Write("</p>", true, func() { calls++ }))
	assert.Equal(t, 2, calls)
}

func TestTokenizerStop(t *testing.T) {
	c := &tokenCollector{}
	p := NewHTMLTokenizer(c)
	p.Stop()
	require.NoError(t, p.Write("<p>", true, nil))
	assert.Empty(t, c.tokens, "writes after stop are no-ops")
}

func TestTokenizerSilentModeEmitsSameTokens(t *testing.T) {
	loud := tokenize(t, "<p \x00>&#0;")

	silent := &tokenCollector{}
	p := newHTMLTokenizer(silent, nil)
	require.NoError(t, p.Write("<p \x00>&#0;", true, nil))

	assert.Equal(t, summarize(loud.tokens), summarize(silent.tokens))
	assert.Empty(t, silent.errs)
	assert.NotEmpty(t, loud.errs)
}
