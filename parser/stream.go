package parser

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// ScriptElement is the payload of a script event: the attributes and raw
// text of a <script> element the stream just finished, assembled from the
// token stream so a host can execute it.
type ScriptElement struct {
	Attributes []Attribute
	Text       string
	Location   *Location
}

// ScriptHandler is invoked when a script element completes. documentWrite
// queues HTML to be parsed at the current position; resume continues
// parsing and fails with ErrAlreadyResumed if called more than once per
// suspension. Both stay valid until resume is called.
type ScriptHandler func(script *ScriptElement, documentWrite func(html string), resume func() error)

// textElementStates maps start tags that switch the tokenizer out of the
// data state, the way a tree stage would after constructing the element.
var textElementStates = map[string]tokenizerState{
	"title":     rcDataState,
	"textarea":  rcDataState,
	"style":     rawTextState,
	"xmp":       rawTextState,
	"iframe":    rawTextState,
	"noembed":   rawTextState,
	"noframes":  rawTextState,
	"noscript":  rawTextState,
	"script":    scriptDataState,
	"plaintext": plaintextState,
}

// StreamParser feeds incrementally delivered chunks through the tokenizer
// and coordinates suspension around <script> elements. Tokens pass through
// to the wrapped handler unchanged; script text is captured on the side.
type StreamParser struct {
	tokenizer *HTMLTokenizer
	handler   TokenHandler

	scriptHandler ScriptHandler

	pendingHTMLInsertions []string
	pendingChunks         []string
	lastChunkWritten      bool
	pausedByScript        bool

	inScript     bool
	scriptAttrs  []Attribute
	scriptText   strings.Builder
	scriptLoc    *Location
	scriptEndLoc *Location

	log *logrus.Entry
}

// NewStreamParser wraps handler in a scriptable streaming parser. The
// script handler may be nil, in which case script elements never suspend
// parsing.
func NewStreamParser(handler TokenHandler, scriptHandler ScriptHandler) *StreamParser {
	d := &StreamParser{
		handler:       handler,
		scriptHandler: scriptHandler,
		log:           logrus.WithField("component", "stream"),
	}
	// Silent mode propagates: the tokenizer only pays for diagnostics when
	// the wrapped handler asks for them.
	var onParseError func(*ParseError)
	if eh, ok := handler.(ParseErrorHandler); ok {
		onParseError = eh.OnParseError
	}
	d.tokenizer = newHTMLTokenizer(d, onParseError)
	return d
}

// Tokenizer exposes the wrapped tokenizer, for tree-stage hooks.
func (d *StreamParser) Tokenizer() *HTMLTokenizer {
	return d.tokenizer
}

// Write feeds one chunk. If the parser is suspended on a script, the chunk
// is buffered and drained on resume.
func (d *StreamParser) Write(chunk string) error {
	return d.write(chunk, false)
}

// End signals end of input, flushing pending state and emitting EOF.
func (d *StreamParser) End() error {
	return d.write("", true)
}

func (d *StreamParser) write(chunk string, isLast bool) error {
	if d.tokenizer.Stopped() {
		return nil
	}
	if isLast {
		d.lastChunkWritten = true
	}
	if d.pausedByScript {
		d.pendingChunks = append(d.pendingChunks, chunk)
		return nil
	}
	return d.tokenizer.Write(chunk, isLast && len(d.pendingChunks) == 0, nil)
}

// Stop aborts parsing: the loop exits at the next boundary and any further
// writes are no-ops.
func (d *StreamParser) Stop() {
	d.tokenizer.Stop()
}

func (d *StreamParser) documentWrite(html string) {
	if !d.tokenizer.Stopped() {
		d.pendingHTMLInsertions = append(d.pendingHTMLInsertions, html)
	}
}

func (d *StreamParser) resume() error {
	if !d.pausedByScript {
		return ErrAlreadyResumed
	}
	d.log.Debugf("resuming with %d pending insertions", len(d.pendingHTMLInsertions))

	// Insertions splice in right after the cursor, so popping in reverse
	// receipt order lines them up in call order.
	for len(d.pendingHTMLInsertions) > 0 {
		html := d.pendingHTMLInsertions[len(d.pendingHTMLInsertions)-1]
		d.pendingHTMLInsertions = d.pendingHTMLInsertions[:len(d.pendingHTMLInsertions)-1]
		d.tokenizer.InsertHTMLAtCurrentPos(html)
	}

	d.pausedByScript = false
	if err := d.tokenizer.Resume(nil); err != nil {
		return err
	}
	return d.drainPendingChunks()
}

func (d *StreamParser) drainPendingChunks() error {
	for len(d.pendingChunks) > 0 && !d.pausedByScript {
		chunk := d.pendingChunks[0]
		d.pendingChunks = d.pendingChunks[1:]
		isLast := d.lastChunkWritten && len(d.pendingChunks) == 0
		if err := d.tokenizer.Write(chunk, isLast, nil); err != nil {
			return err
		}
	}
	return nil
}

// --- TokenHandler passthrough with script coordination ---

func (d *StreamParser) OnStartTag(t *Token) {
	if state, ok := textElementStates[t.TagName]; ok && !t.SelfClosing {
		d.tokenizer.SetState(state)
		if t.TagName == "script" {
			d.inScript = true
			d.scriptAttrs = append([]Attribute(nil), t.Attributes...)
			d.scriptText.Reset()
			d.scriptLoc = t.Location
		}
	}
	d.handler.OnStartTag(t)
}

func (d *StreamParser) OnEndTag(t *Token) {
	finished := d.inScript && t.TagName == "script"
	if finished {
		d.inScript = false
		d.scriptEndLoc = t.Location
	}
	d.handler.OnEndTag(t)

	if finished {
		d.onScriptElement()
	}
}

func (d *StreamParser) onScriptElement() {
	script := &ScriptElement{
		Attributes: d.scriptAttrs,
		Text:       d.scriptText.String(),
		Location:   d.scriptSpan(),
	}
	d.scriptAttrs = nil
	d.scriptText.Reset()

	if d.scriptHandler == nil {
		return
	}

	d.log.Debugf("suspending for script at offset %d", script.Location.StartOffset)
	d.pausedByScript = true
	d.tokenizer.Pause()
	d.scriptHandler(script, d.documentWrite, d.resume)
}

func (d *StreamParser) scriptSpan() *Location {
	if d.scriptLoc == nil {
		return nil
	}
	loc := *d.scriptLoc
	if d.scriptEndLoc != nil {
		loc.EndLine = d.scriptEndLoc.EndLine
		loc.EndCol = d.scriptEndLoc.EndCol
		loc.EndOffset = d.scriptEndLoc.EndOffset
	}
	return &loc
}

func (d *StreamParser) captureScriptChars(t *Token) {
	if d.inScript {
		d.scriptText.WriteString(t.Chars)
	}
}

func (d *StreamParser) OnCharacter(t *Token) {
	d.captureScriptChars(t)
	d.handler.OnCharacter(t)
}

func (d *StreamParser) OnNullCharacter(t *Token) {
	d.captureScriptChars(t)
	d.handler.OnNullCharacter(t)
}

func (d *StreamParser) OnWhitespaceCharacter(t *Token) {
	d.captureScriptChars(t)
	d.handler.OnWhitespaceCharacter(t)
}

func (d *StreamParser) OnComment(t *Token) { d.handler.OnComment(t) }
func (d *StreamParser) OnDoctype(t *Token) { d.handler.OnDoctype(t) }
func (d *StreamParser) OnEOF(t *Token)     { d.handler.OnEOF(t) }
