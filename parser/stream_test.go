package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamParserScriptState(t *testing.T) {
	c := &tokenCollector{}
	d := NewStreamParser(c, nil)
	require.NoError(t, d.Write("<script>x<</script>y"))
	require.NoError(t, d.End())

	want := []tokenSummary{
		{startTagToken, "script"},
		{characterToken, "x<"},
		{endTagToken, "script"},
		{characterToken, "y"},
		{endOfFileToken, ""},
	}
	assert.Equal(t, want, summarize(c.tokens))
}

func TestStreamParserRCDataState(t *testing.T) {
	c := &tokenCollector{}
	d := NewStreamParser(c, nil)
	require.NoError(t, d.Write("<title>a<b &amp;</title>"))
	require.NoError(t, d.End())

	assert.Equal(t, "a<b &", c.charData())
	last := c.tokens[len(c.tokens)-2]
	assert.Equal(t, endTagToken, last.TokenType)
	assert.Equal(t, "title", last.TagName)
}

func TestStreamParserRawTextState(t *testing.T) {
	c := &tokenCollector{}
	d := NewStreamParser(c, nil)
	require.NoError(t, d.Write("<style>a{content:'</'}&amp;</style>"))
	require.NoError(t, d.End())

	assert.Equal(t, "a{content:'</'}&amp;", c.charData())
}

func TestStreamParserDocumentWrite(t *testing.T) {
	c := &tokenCollector{}
	var seen *ScriptElement
	d := NewStreamParser(c, func(script *ScriptElement, documentWrite func(string), resume func() error) {
		seen = script
		documentWrite("<i>")
		require.NoError(t, resume())
	})

	require.NoError(t, d.Write("<script></script><b>"))
	require.NoError(t, d.End())

	require.NotNil(t, seen)
	assert.Equal(t, "", seen.Text)

	want := []tokenSummary{
		{startTagToken, "script"},
		{endTagToken, "script"},
		{startTagToken, "i"},
		{startTagToken, "b"},
		{endOfFileToken, ""},
	}
	assert.Equal(t, want, summarize(c.tokens))
}

func TestStreamParserDocumentWriteOrdering(t *testing.T) {
	c := &tokenCollector{}
	d := NewStreamParser(c, func(script *ScriptElement, documentWrite func(string), resume func() error) {
		documentWrite("<i>")
		documentWrite("<u>")
		require.NoError(t, resume())
	})

	require.NoError(t, d.Write("<script></script><b>"))
	require.NoError(t, d.End())

	want := []tokenSummary{
		{startTagToken, "script"},
		{endTagToken, "script"},
		{startTagToken, "i"},
		{startTagToken, "u"},
		{startTagToken, "b"},
		{endOfFileToken, ""},
	}
	assert.Equal(t, want, summarize(c.tokens), "insertions appear in call order")
}

func TestStreamParserScriptPayload(t *testing.T) {
	var seen *ScriptElement
	c := &tokenCollector{}
	d := NewStreamParser(c, func(script *ScriptElement, documentWrite func(string), resume func() error) {
		seen = script
		require.NoError(t, resume())
	})

	require.NoError(t, d.Write("<script type='module'>let x = 1 < 2;</script>"))
	require.NoError(t, d.End())

	require.NotNil(t, seen)
	assert.Equal(t, "let x = 1 < 2;", seen.Text)
	require.Len(t, seen.Attributes, 1)
	assert.Equal(t, "type", seen.Attributes[0].Name)
	assert.Equal(t, "module", seen.Attributes[0].Value)
	require.NotNil(t, seen.Location)
	assert.Equal(t, 0, seen.Location.StartOffset)
	assert.Equal(t, 45, seen.Location.EndOffset)
}

func TestStreamParserResumeTwice(t *testing.T) {
	var resumeFn func() error
	c := &tokenCollector{}
	d := NewStreamParser(c, func(script *ScriptElement, documentWrite func(string), resume func() error) {
		resumeFn = resume
	})

	require.NoError(t, d.Write("<script></script>"))
	require.NotNil(t, resumeFn)
	require.NoError(t, resumeFn())
	assert.Equal(t, ErrAlreadyResumed, resumeFn())
}

func TestStreamParserAsyncResumeDrainsBufferedChunks(t *testing.T) {
	var resumeFn func() error
	c := &tokenCollector{}
	d := NewStreamParser(c, func(script *ScriptElement, documentWrite func(string), resume func() error) {
		resumeFn = resume
	})

	require.NoError(t, d.Write("<script></script>"))
	// Suspended: these buffer instead of parsing.
	require.NoError(t, d.Write("<b>"))
	require.NoError(t, d.End())
	assert.Equal(t, 2, len(summarize(c.tokens)), "only the script tokens so far")

	require.NoError(t, resumeFn())

	want := []tokenSummary{
		{startTagToken, "script"},
		{endTagToken, "script"},
		{startTagToken, "b"},
		{endOfFileToken, ""},
	}
	assert.Equal(t, want, summarize(c.tokens))
}

func TestStreamParserNoHandlerDoesNotPause(t *testing.T) {
	c := &tokenCollector{}
	d := NewStreamParser(c, nil)
	require.NoError(t, d.Write("<script></script><b>"))
	require.NoError(t, d.End())

	want := []tokenSummary{
		{startTagToken, "script"},
		{endTagToken, "script"},
		{startTagToken, "b"},
		{endOfFileToken, ""},
	}
	assert.Equal(t, want, summarize(c.tokens))
}

func TestStreamParserNoTokensWhilePaused(t *testing.T) {
	c := &tokenCollector{}
	count := -1
	d := NewStreamParser(c, func(script *ScriptElement, documentWrite func(string), resume func() error) {
		count = len(c.tokens)
	})

	require.NoError(t, d.Write("<script></script><b>ignored until resume"))
	assert.Equal(t, count, len(c.tokens), "no tokens emitted while suspended")
}

func TestStreamParserStop(t *testing.T) {
	c := &tokenCollector{}
	d := NewStreamParser(c, nil)
	require.NoError(t, d.Write("<p>"))
	d.Stop()
	require.NoError(t, d.Write("<b>"))
	require.NoError(t, d.End())

	want := []tokenSummary{
		{startTagToken, "p"},
	}
	assert.Equal(t, want, summarize(c.tokens), "nothing after stop, not even EOF")
}

func TestStreamParserDocumentWriteAfterStopIgnored(t *testing.T) {
	c := &tokenCollector{}
	var d *StreamParser
	d = NewStreamParser(c, func(script *ScriptElement, documentWrite func(string), resume func() error) {
		d.Stop()
		documentWrite("<i>")
		require.NoError(t, resume())
	})

	require.NoError(t, d.Write("<script></script><b>"))
	require.NoError(t, d.End())

	want := []tokenSummary{
		{startTagToken, "script"},
		{endTagToken, "script"},
	}
	assert.Equal(t, want, summarize(c.tokens))
}

func TestStreamParserScriptAcrossChunks(t *testing.T) {
	var seen *ScriptElement
	c := &tokenCollector{}
	d := NewStreamParser(c, func(script *ScriptElement, documentWrite func(string), resume func() error) {
		seen = script
		require.NoError(t, resume())
	})

	for _, chunk := range []string{"<scr", "ipt>va", "r x;</scri", "pt>"} {
		require.NoError(t, d.Write(chunk))
	}
	require.NoError(t, d.End())

	require.NotNil(t, seen)
	assert.Equal(t, "var x;", seen.Text)
}
