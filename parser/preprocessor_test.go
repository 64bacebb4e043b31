package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type posStep struct {
	cp     rune
	line   int
	col    int
	offset int
}

func advanceAll(p *Preprocessor) []posStep {
	var steps []posStep
	for {
		cp := p.Advance()
		if cp == eofCodePoint {
			return steps
		}
		steps = append(steps, posStep{cp, p.Line(), p.Col(), p.Offset()})
	}
}

func TestPreprocessorNewlineNormalization(t *testing.T) {
	p := NewPreprocessor(nil)
	p.Write("a\r\nb\rc\nd", true)

	steps := advanceAll(p)
	want := []posStep{
		{'a', 1, 0, 0},
		{'\n', 1, 1, 1},
		{'b', 2, 0, 3}, // the LF of the CRLF pair is a gap
		{'\n', 2, 1, 4},
		{'c', 3, 0, 5},
		{'\n', 3, 1, 6},
		{'d', 4, 0, 7},
	}
	assert.Equal(t, want, steps)
}

func TestPreprocessorRetreatRoundTrip(t *testing.T) {
	// Retreats happen within one tokenizer state, which never spans a
	// line whose start has already been accounted; newline-free inputs
	// cover the full range of operational retreats, including gaps.
	inputs := []string{
		"abc",
		"x\U0001F600y", // an astral codepoint spans two units
		"a\U0001F600\U0001F601b",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			p := NewPreprocessor(nil)
			p.Write(in, true)
			first := advanceAll(p)

			// Retreat counts characters, not code units: the EOF read
			// plus one per character puts the cursor back at the start,
			// re-crossing any surrogate gaps on the way.
			for round := 0; round < 3; round++ {
				p.Retreat(len(first) + 1)
				redo := advanceAll(p)
				assert.Equal(t, first, redo, "round %d", round)
			}
		})
	}
}

func TestPreprocessorCRLFSplitAcrossChunks(t *testing.T) {
	p := NewPreprocessor(nil)
	p.Write("a\r", false)

	assert.Equal(t, 'a', p.Advance())
	assert.Equal(t, '\n', p.Advance())
	assert.Equal(t, eofCodePoint, p.Advance())
	require.True(t, p.EndOfChunkHit())
	p.Retreat(1)

	p.Write("\nb", true)
	assert.Equal(t, 'b', p.Advance(), "the LF completing the CRLF pair is fused away")
	assert.Equal(t, 2, p.Line())
	assert.Equal(t, 0, p.Col())
}

func TestPreprocessorSurrogatePair(t *testing.T) {
	p := NewPreprocessor(nil)
	p.Write("\U0001F600b", true)

	cp := p.Advance()
	assert.Equal(t, rune(0x1F600), cp)
	assert.Equal(t, 1, p.Offset()) // cursor sits on the low half

	cp = p.Advance()
	assert.Equal(t, 'b', cp)
	assert.Equal(t, 2, p.Offset())
}

func TestPreprocessorIsolatedSurrogate(t *testing.T) {
	var errs []*ParseError
	p := NewPreprocessor(func(e *ParseError) { errs = append(errs, e) })
	// An isolated surrogate cannot arrive through a Go string; splice the
	// raw unit in as a byte-level decoder would.
	p.html = append(p.html, 0xD800, uint16('a'))
	p.lastChunkWritten = true

	cp := p.Advance()
	assert.Equal(t, rune(0xD800), cp)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrSurrogateInInputStream, errs[0].Code)

	assert.Equal(t, 'a', p.Advance())
}

func TestPreprocessorSurrogateSplitAcrossChunks(t *testing.T) {
	p := NewPreprocessor(nil)
	p.html = append(p.html, 0xD83D) // high half only, stream still open

	cp := p.Advance()
	assert.Equal(t, eofCodePoint, cp)
	assert.True(t, p.EndOfChunkHit())

	p.Retreat(1)
	p.html = append(p.html, 0xDE00)
	p.endOfChunkHit = false
	p.lastChunkWritten = true
	assert.Equal(t, rune(0x1F600), p.Advance())
}

func TestPreprocessorEndOfChunkHit(t *testing.T) {
	p := NewPreprocessor(nil)
	p.Write("ab", false)

	assert.Equal(t, 'a', p.Advance())
	assert.Equal(t, 'b', p.Advance())
	assert.Equal(t, eofCodePoint, p.Advance())
	assert.True(t, p.EndOfChunkHit())

	p.Retreat(1)
	p.Write("c", true)
	assert.False(t, p.EndOfChunkHit())
	assert.Equal(t, 'c', p.Advance())
	assert.Equal(t, eofCodePoint, p.Advance())
	assert.False(t, p.EndOfChunkHit())
}

func TestPreprocessorPeekAndStartsWith(t *testing.T) {
	p := NewPreprocessor(nil)
	p.Write("!doctype html", false)

	assert.Equal(t, '!', p.Advance())
	assert.Equal(t, 'd', p.Peek(1))

	assert.False(t, p.StartsWith("!DOCTYPE", true))
	assert.True(t, p.StartsWith("!doctype", true))
	assert.True(t, p.StartsWith("!doctype html", false))

	// Too short to decide, stream still open: report a chunk boundary.
	assert.False(t, p.StartsWith("!doctype html and more", false))
	assert.True(t, p.EndOfChunkHit())
}

func TestPreprocessorPeekNormalizesCarriageReturn(t *testing.T) {
	p := NewPreprocessor(nil)
	p.Write("a\rb", true)
	assert.Equal(t, 'a', p.Advance())
	assert.Equal(t, '\n', p.Peek(1))
}

func TestPreprocessorInsertHTMLAtCurrentPos(t *testing.T) {
	p := NewPreprocessor(nil)
	p.Write("ab", true)

	assert.Equal(t, 'a', p.Advance())
	p.InsertHTMLAtCurrentPos("XY")

	var rest []rune
	for {
		cp := p.Advance()
		if cp == eofCodePoint {
			break
		}
		rest = append(rest, cp)
	}
	assert.Equal(t, "XYb", string(rest))
}

func TestPreprocessorDropParsedChunk(t *testing.T) {
	p := NewPreprocessor(nil)
	p.bufferWaterline = 4
	p.Write("0123456789", true)

	for i := 0; i < 6; i++ {
		p.Advance()
	}
	require.Equal(t, 5, p.Offset())
	require.True(t, p.WillDropParsedChunk())

	p.DropParsedChunk()
	assert.Equal(t, 5, p.Offset(), "offset survives compaction")
	assert.Equal(t, 0, p.pos)

	assert.Equal(t, '6', p.Advance())
	assert.Equal(t, 6, p.Offset())
	assert.Equal(t, 6, p.Col())
}

func TestPreprocessorErrorDedup(t *testing.T) {
	var errs []*ParseError
	p := NewPreprocessor(func(e *ParseError) { errs = append(errs, e) })
	p.Write("\x01", true)

	p.Advance()
	require.Len(t, errs, 1)
	assert.Equal(t, ErrControlCharacterInInputStream, errs[0].Code)

	// Re-reading the same offset must not refire.
	p.Retreat(1)
	p.Advance()
	assert.Len(t, errs, 1)
}

func TestPreprocessorNoncharacterDiagnostic(t *testing.T) {
	var errs []*ParseError
	p := NewPreprocessor(func(e *ParseError) { errs = append(errs, e) })
	p.Write("\uFDD0", true)

	p.Advance()
	require.Len(t, errs, 1)
	assert.Equal(t, ErrNoncharacterInInputStream, errs[0].Code)
}

func TestPreprocessorSilentModeSkipsDiagnostics(t *testing.T) {
	p := NewPreprocessor(nil)
	p.Write("\uFDD0", true)
	p.Advance()
	p.Advance()
	// Nothing to assert beyond not crashing: no sink, no checks.
	assert.Equal(t, eofCodePoint, p.Advance())
}
