package parser

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// TokenHandler receives the token stream. Tokens are borrowed for the
// duration of the callback; a receiver must copy anything it retains.
type TokenHandler interface {
	OnCharacter(*Token)
	OnNullCharacter(*Token)
	OnWhitespaceCharacter(*Token)
	OnComment(*Token)
	OnDoctype(*Token)
	OnStartTag(*Token)
	OnEndTag(*Token)
	OnEOF(*Token)
}

// ParseErrorHandler is optionally implemented by a TokenHandler. Without
// it the tokenizer runs silent: diagnostics are skipped, including the
// per-codepoint range checks on the preprocessor hot path.
type ParseErrorHandler interface {
	OnParseError(*ParseError)
}

// HTMLTokenizer drives the tokenization state machine over the
// preprocessor's cursor. It suspends losslessly whenever the preprocessor
// runs out of buffered input: everything consumed since the last state
// boundary is retreated and the same state re-runs when more input
// arrives.
type HTMLTokenizer struct {
	preprocessor *Preprocessor
	handler      TokenHandler
	onParseError func(*ParseError)

	currentState tokenizerState
	returnState  tokenizerState

	tokenBuilder *TokenBuilder

	charBuf  strings.Builder
	charKind tokenType
	charLoc  *Location
	hasChars bool

	lastEmittedStartTagName string
	allowCDATA              bool
	inForeignNode           bool

	active  bool
	paused  bool
	stopped bool
	inLoop  bool

	consumedAfterSnapshot int

	writeCallback func()

	log *logrus.Entry
}

// NewHTMLTokenizer creates a tokenizer emitting into handler. If handler
// also implements ParseErrorHandler, diagnostics are delivered there.
func NewHTMLTokenizer(handler TokenHandler) *HTMLTokenizer {
	var onParseError func(*ParseError)
	if eh, ok := handler.(ParseErrorHandler); ok {
		onParseError = eh.OnParseError
	}
	return newHTMLTokenizer(handler, onParseError)
}

func newHTMLTokenizer(handler TokenHandler, onParseError func(*ParseError)) *HTMLTokenizer {
	p := &HTMLTokenizer{
		handler:      handler,
		onParseError: onParseError,
		tokenBuilder: newTokenBuilder(),
		currentState: dataState,
		log:          logrus.WithField("component", "tokenizer"),
	}
	p.preprocessor = NewPreprocessor(onParseError)
	return p
}

// Write appends a chunk and runs the parsing loop until it needs more
// input, is paused, or is stopped. onFinishedChunk fires when the chunk
// has been consumed; if the tokenizer pauses first, it is deferred until
// the resume that drains the chunk.
func (p *HTMLTokenizer) Write(chunk string, isLast bool, onFinishedChunk func()) error {
	if p.stopped {
		return nil
	}
	if p.inLoop {
		return ErrReentrantWrite
	}
	if p.preprocessor.LastChunkWritten() {
		return ErrAfterLastChunk
	}

	p.active = true
	p.preprocessor.Write(chunk, isLast)
	p.runParsingLoop()

	if p.paused {
		p.writeCallback = onFinishedChunk
	} else if onFinishedChunk != nil {
		onFinishedChunk()
	}
	return nil
}

// InsertHTMLAtCurrentPos splices html right after the cursor, so it is
// tokenized before the remaining input. Legal only while the parsing loop
// is suspended, from a script handler.
func (p *HTMLTokenizer) InsertHTMLAtCurrentPos(html string) {
	p.active = true
	p.preprocessor.InsertHTMLAtCurrentPos(html)
}

// Pause makes the parsing loop exit at the next state boundary.
func (p *HTMLTokenizer) Pause() {
	p.paused = true
}

// Resume continues a paused tokenizer. When called from inside the loop
// (a synchronous script handler) it only clears the flag; the loop picks
// back up on return.
func (p *HTMLTokenizer) Resume(onFinished func()) error {
	if !p.paused {
		return ErrAlreadyResumed
	}
	p.paused = false
	if p.inLoop {
		return nil
	}

	p.runParsingLoop()
	if !p.paused {
		cb := p.writeCallback
		p.writeCallback = nil
		if cb != nil {
			cb()
		} else if onFinished != nil {
			onFinished()
		}
	}
	return nil
}

// Stop makes the loop exit at the next boundary and turns every further
// Write into a no-op. Used by a tree stage that aborts parsing early.
func (p *HTMLTokenizer) Stop() {
	p.stopped = true
	p.active = false
}

// Stopped reports whether Stop was called.
func (p *HTMLTokenizer) Stopped() bool { return p.stopped }

// Paused reports whether the tokenizer is paused.
func (p *HTMLTokenizer) Paused() bool { return p.paused }

// SetState switches the state machine. A tree stage uses this after start
// tags that change how the following text is tokenized.
func (p *HTMLTokenizer) SetState(state tokenizerState) {
	p.currentState = state
}

// SetLastStartTagName seeds the appropriate-end-tag check, for fragment
// parsing where no start tag was tokenized.
func (p *HTMLTokenizer) SetLastStartTagName(name string) {
	p.lastEmittedStartTagName = name
}

// SetAllowCDATA controls whether <![CDATA[ opens a real CDATA section.
func (p *HTMLTokenizer) SetAllowCDATA(allow bool) {
	p.allowCDATA = allow
}

// SetInForeignNode records that the adjusted current node is outside the
// HTML namespace, which also permits CDATA sections.
func (p *HTMLTokenizer) SetInForeignNode(foreign bool) {
	p.inForeignNode = foreign
}

// GetCurrentLocation reports the cursor position, for a tree stage that
// stamps its own constructs.
func (p *HTMLTokenizer) GetCurrentLocation() Location {
	line, col, off := p.preprocessor.Line(), p.preprocessor.Col(), p.preprocessor.Offset()
	return Location{
		StartLine: line, StartCol: col, StartOffset: off,
		EndLine: line, EndCol: col, EndOffset: off,
	}
}

// Exported states a tree stage may switch into via SetState.
const (
	StateData         = dataState
	StateRCDATA       = rcDataState
	StateRawText      = rawTextState
	StateScriptData   = scriptDataState
	StatePlaintext    = plaintextState
	StateCDATASection = cdataSectionState
)

func (p *HTMLTokenizer) runParsingLoop() {
	if p.inLoop {
		return
	}
	p.inLoop = true
	p.log.Tracef("loop enter at offset %d", p.preprocessor.Offset())
	for p.active && !p.paused {
		if p.currentState == dataState {
			p.preprocessor.DropParsedChunk()
		}
		p.consumedAfterSnapshot = 0
		cp := p.consume()
		if !p.ensureHibernation() {
			p.stateToParser(p.currentState)(cp)
		}
	}
	p.inLoop = false
	p.log.Tracef("loop yield at offset %d", p.preprocessor.Offset())
}

func (p *HTMLTokenizer) consume() codePoint {
	p.consumedAfterSnapshot++
	return p.preprocessor.Advance()
}

func (p *HTMLTokenizer) unconsume(count int) {
	p.consumedAfterSnapshot -= count
	p.preprocessor.Retreat(count)
}

// ensureHibernation suspends the loop when the preprocessor ran dry
// mid-state: everything consumed since the snapshot goes back so the state
// re-runs from the same characters once more input arrives.
func (p *HTMLTokenizer) ensureHibernation() bool {
	if p.preprocessor.EndOfChunkHit() {
		p.unconsume(p.consumedAfterSnapshot)
		p.active = false
		return true
	}
	return false
}

// reconsumeInState re-examines the current codepoint in another state.
func (p *HTMLTokenizer) reconsumeInState(state tokenizerState, cp codePoint) {
	p.currentState = state
	p.stateToParser(state)(cp)
}

func (p *HTMLTokenizer) consumeSequenceIfMatch(pattern string, caseSensitive bool) bool {
	if p.preprocessor.StartsWith(pattern, caseSensitive) {
		for i := 0; i < len(pattern)-1; i++ {
			p.consume()
		}
		return true
	}
	return false
}

// loc builds a span starting offset code units behind the current
// character. End fields are filled when the construct completes.
func (p *HTMLTokenizer) loc(offset int) *Location {
	return &Location{
		StartLine:   p.preprocessor.Line(),
		StartCol:    p.preprocessor.Col() - offset,
		StartOffset: p.preprocessor.Offset() - offset,
		EndLine:     -1,
		EndCol:      -1,
		EndOffset:   -1,
	}
}

// curPosEnd is an end position at the current character, excluding it.
func (p *HTMLTokenizer) curPosEnd() *Location {
	return &Location{
		EndLine:   p.preprocessor.Line(),
		EndCol:    p.preprocessor.Col(),
		EndOffset: p.preprocessor.Offset(),
	}
}

// pastCurEnd is an end position just past the current character.
func (p *HTMLTokenizer) pastCurEnd() *Location {
	return &Location{
		EndLine:   p.preprocessor.Line(),
		EndCol:    p.preprocessor.Col() + 1,
		EndOffset: p.preprocessor.Offset() + 1,
	}
}

func (p *HTMLTokenizer) err(code ErrorCode) {
	if p.onParseError == nil {
		return
	}
	p.onParseError(p.preprocessor.GetError(code))
}

func (p *HTMLTokenizer) isCharacterReferenceInAttribute() bool {
	return wasConsumedByAttribute(p.returnState)
}

func wasConsumedByAttribute(returnState tokenizerState) bool {
	switch returnState {
	case attributeValueDoubleQuotedState, attributeValueSingleQuotedState, attributeValueUnquotedState:
		return true
	}
	return false
}

// --- character token coalescing ---

func (p *HTMLTokenizer) appendCharToCurrentCharacterToken(kind tokenType, cp codePoint) {
	if p.hasChars && p.charKind != kind {
		p.flushCharacterToken(p.curPosEnd())
	}
	if !p.hasChars {
		p.hasChars = true
		p.charKind = kind
		p.charLoc = p.loc(0)
	}
	p.charBuf.WriteRune(cp)
}

// flushCharacterToken delivers the accumulated character run, ending it at
// end (usually the start of whatever token interrupted the run).
func (p *HTMLTokenizer) flushCharacterToken(end *Location) {
	if !p.hasChars {
		return
	}
	loc := *p.charLoc
	if end != nil {
		loc.EndLine = end.EndLine
		loc.EndCol = end.EndCol
		loc.EndOffset = end.EndOffset
	}
	tok := Token{
		TokenType: p.charKind,
		Chars:     p.charBuf.String(),
		Location:  &loc,
	}
	p.hasChars = false
	p.charBuf.Reset()
	p.charLoc = nil

	switch tok.TokenType {
	case whitespaceCharacterToken:
		p.handler.OnWhitespaceCharacter(&tok)
	case nullCharacterToken:
		p.handler.OnNullCharacter(&tok)
	default:
		p.handler.OnCharacter(&tok)
	}
}

// emitCodePoint adds one input character to the pending run, classified as
// whitespace, null, or normal.
func (p *HTMLTokenizer) emitCodePoint(cp codePoint) {
	kind := characterToken
	if isASCIIWhitespace(int(cp)) {
		kind = whitespaceCharacterToken
	} else if cp == 0 {
		kind = nullCharacterToken
	}
	p.appendCharToCurrentCharacterToken(kind, cp)
}

// emitChars re-emits buffered characters (a bailed-out "</", a temp buffer)
// as normal characters.
func (p *HTMLTokenizer) emitChars(s string) {
	for _, r := range s {
		p.appendCharToCurrentCharacterToken(characterToken, r)
	}
}

func (p *HTMLTokenizer) emitTempBufferChars() {
	for _, r := range p.tokenBuilder.TempBuffer() {
		p.appendCharToCurrentCharacterToken(characterToken, r)
	}
}

// --- token emission ---

func startOf(loc *Location) *Location {
	if loc == nil {
		return nil
	}
	return &Location{EndLine: loc.StartLine, EndCol: loc.StartCol, EndOffset: loc.StartOffset}
}

func (p *HTMLTokenizer) emitCurrentTagToken() {
	end := p.pastCurEnd()
	var tok Token
	if p.tokenBuilder.TagType() == startTag {
		tok = p.tokenBuilder.StartTagToken(end)
	} else {
		tok = p.tokenBuilder.EndTagToken(end)
	}
	p.flushCharacterToken(startOf(tok.Location))

	if tok.TokenType == endTagToken {
		if len(tok.Attributes) > 0 {
			p.err(ErrEndTagWithAttributes)
			tok.Attributes = nil
		}
		if tok.SelfClosing {
			p.err(ErrEndTagWithTrailingSolidus)
			tok.SelfClosing = false
		}
		p.handler.OnEndTag(&tok)
		return
	}

	p.lastEmittedStartTagName = tok.TagName
	p.handler.OnStartTag(&tok)
}

func (p *HTMLTokenizer) emitCurrentComment(end *Location) {
	tok := p.tokenBuilder.CommentToken(end)
	p.flushCharacterToken(startOf(tok.Location))
	p.handler.OnComment(&tok)
}

func (p *HTMLTokenizer) emitCurrentDoctype(end *Location) {
	tok := p.tokenBuilder.DocTypeToken(end)
	p.flushCharacterToken(startOf(tok.Location))
	p.handler.OnDoctype(&tok)
}

func (p *HTMLTokenizer) emitEOFToken() {
	loc := p.loc(0)
	loc.EndLine = loc.StartLine
	loc.EndCol = loc.StartCol
	loc.EndOffset = loc.StartOffset
	p.flushCharacterToken(startOf(loc))
	tok := p.tokenBuilder.EndOfFileToken(loc)
	p.handler.OnEOF(&tok)
	p.active = false
}

func (p *HTMLTokenizer) isApprEndTagToken() bool {
	return p.lastEmittedStartTagName == p.tokenBuilder.Name()
}

// flushCodePointsAsCharacterReference drains the temp buffer either into
// the attribute value being built or into the character run.
func (p *HTMLTokenizer) flushCodePointsAsCharacterReference() {
	if wasConsumedByAttribute(p.returnState) {
		for _, v := range p.tokenBuilder.TempBuffer() {
			p.tokenBuilder.WriteAttributeValue(v)
		}
		return
	}
	for _, v := range p.tokenBuilder.TempBuffer() {
		p.emitCodePoint(v)
	}
}

// --- character classes ---

func isNonCharacter(code int) bool {
	if code >= 0xFDD0 && code <= 0xFDEF {
		return true
	}

	switch code {
	case 0xFFFE, 0xFFFF, 0x1FFFE, 0x1FFFF, 0x2FFFE, 0x2FFFF, 0x3FFFE, 0x3FFFF, 0x4FFFE, 0x4FFFF, 0x5FFFE, 0x5FFFF, 0x6FFFE, 0x6FFFF, 0x7FFFE, 0x7FFFF, 0x8FFFE, 0x8FFFF, 0x9FFFE, 0x9FFFF, 0xAFFFE, 0xAFFFF, 0xBFFFE, 0xBFFFF, 0xCFFFE, 0xCFFFF, 0xDFFFE, 0xDFFFF, 0xEFFFE, 0xEFFFF, 0xFFFFE, 0xFFFFF, 0x10FFFE, 0x10FFFF:
		return true
	default:
		return false
	}
}

func isC0Control(code int) bool {
	return code >= 0x00 && code <= 0x1F
}

func isControl(code int) bool {
	return isC0Control(code) || (code >= 0x7F && code <= 0x9F)
}

func isASCIIWhitespace(code int) bool {
	switch code {
	case 0x09, 0x0A, 0x0C, 0x0D, 0x20:
		return true
	default:
		return false
	}
}

func isSurrogate(code int) bool {
	return code >= 0xD800 && code <= 0xDFFF
}

func isASCIIUpper(code int) bool {
	return code >= 'A' && code <= 'Z'
}

func isASCIILower(code int) bool {
	return code >= 'a' && code <= 'z'
}

func isASCIIAlpha(code int) bool {
	return isASCIIUpper(code) || isASCIILower(code)
}

func isASCIIDigit(code int) bool {
	return code >= '0' && code <= '9'
}

func isASCIIAlphanumeric(code int) bool {
	return isASCIIAlpha(code) || isASCIIDigit(code)
}

func isASCIIHexDigit(code int) bool {
	return isASCIIDigit(code) || (code >= 'A' && code <= 'F') || (code >= 'a' && code <= 'f')
}

func toASCIILower(cp codePoint) codePoint {
	return cp + 0x20
}

// --- state dispatch ---

// a parserStateHandler consumes one codepoint in one state; it emits,
// mutates builder state, and transitions by assigning currentState or
// reconsuming.
type parserStateHandler func(cp codePoint)

func (p *HTMLTokenizer) stateToParser(state tokenizerState) parserStateHandler {
	switch state {
	case dataState:
		return p.dataStateParser
	case rcDataState:
		return p.rcDataStateParser
	case rawTextState:
		return p.rawTextStateParser
	case scriptDataState:
		return p.scriptDataStateParser
	case plaintextState:
		return p.plaintextStateParser
	case tagOpenState:
		return p.tagOpenStateParser
	case endTagOpenState:
		return p.endTagOpenStateParser
	case tagNameState:
		return p.tagNameStateParser
	case rcDataLessThanSignState:
		return p.rcDataLessThanSignStateParser
	case rcDataEndTagOpenState:
		return p.rcDataEndTagOpenStateParser
	case rcDataEndTagNameState:
		return p.rcDataEndTagNameStateParser
	case rawTextLessThanSignState:
		return p.rawTextLessThanSignStateParser
	case rawTextEndTagOpenState:
		return p.rawTextEndTagOpenStateParser
	case rawTextEndTagNameState:
		return p.rawTextEndTagNameStateParser
	case scriptDataLessThanSignState:
		return p.scriptDataLessThanSignStateParser
	case scriptDataEndTagOpenState:
		return p.scriptDataEndTagOpenStateParser
	case scriptDataEndTagNameState:
		return p.scriptDataEndTagNameStateParser
	case scriptDataEscapeStartState:
		return p.scriptDataEscapeStartStateParser
	case scriptDataEscapeStartDashState:
		return p.scriptDataEscapeStartDashStateParser
	case scriptDataEscapedState:
		return p.scriptDataEscapedStateParser
	case scriptDataEscapedDashState:
		return p.scriptDataEscapedDashStateParser
	case scriptDataEscapedDashDashState:
		return p.scriptDataEscapedDashDashStateParser
	case scriptDataEscapedLessThanSignState:
		return p.scriptDataEscapedLessThanSignStateParser
	case scriptDataEscapedEndTagOpenState:
		return p.scriptDataEscapedEndTagOpenStateParser
	case scriptDataEscapedEndTagNameState:
		return p.scriptDataEscapedEndTagNameStateParser
	case scriptDataDoubleEscapeStartState:
		return p.scriptDataDoubleEscapeStartStateParser
	case scriptDataDoubleEscapedState:
		return p.scriptDataDoubleEscapedStateParser
	case scriptDataDoubleEscapedDashState:
		return p.scriptDataDoubleEscapedDashStateParser
	case scriptDataDoubleEscapedDashDashState:
		return p.scriptDataDoubleEscapedDashDashStateParser
	case scriptDataDoubleEscapedLessThanSignState:
		return p.scriptDataDoubleEscapedLessThanSignStateParser
	case scriptDataDoubleEscapeEndState:
		return p.scriptDataDoubleEscapeEndStateParser
	case beforeAttributeNameState:
		return p.beforeAttributeNameStateParser
	case attributeNameState:
		return p.attributeNameStateParser
	case afterAttributeNameState:
		return p.afterAttributeNameStateParser
	case beforeAttributeValueState:
		return p.beforeAttributeValueStateParser
	case attributeValueDoubleQuotedState:
		return p.attributeValueDoubleQuotedStateParser
	case attributeValueSingleQuotedState:
		return p.attributeValueSingleQuotedStateParser
	case attributeValueUnquotedState:
		return p.attributeValueUnquotedStateParser
	case afterAttributeValueQuotedState:
		return p.afterAttributeValueQuotedStateParser
	case selfClosingStartTagState:
		return p.selfClosingStartTagStateParser
	case bogusCommentState:
		return p.bogusCommentStateParser
	case markupDeclarationOpenState:
		return p.markupDeclarationOpenStateParser
	case commentStartState:
		return p.commentStartStateParser
	case commentStartDashState:
		return p.commentStartDashStateParser
	case commentState:
		return p.commentStateParser
	case commentLessThanSignState:
		return p.commentLessThanSignStateParser
	case commentLessThanSignBangState:
		return p.commentLessThanSignBangStateParser
	case commentLessThanSignBangDashState:
		return p.commentLessThanSignBangDashStateParser
	case commentLessThanSignBangDashDashState:
		return p.commentLessThanSignBangDashDashStateParser
	case commentEndDashState:
		return p.commentEndDashStateParser
	case commentEndState:
		return p.commentEndStateParser
	case commentEndBangState:
		return p.commentEndBangStateParser
	case doctypeState:
		return p.doctypeStateParser
	case beforeDoctypeNameState:
		return p.beforeDoctypeNameStateParser
	case doctypeNameState:
		return p.doctypeNameStateParser
	case afterDoctypeNameState:
		return p.afterDoctypeNameStateParser
	case afterDoctypePublicKeywordState:
		return p.afterDoctypePublicKeywordStateParser
	case beforeDoctypePublicIdentifierState:
		return p.beforeDoctypePublicIdentifierStateParser
	case doctypePublicIdentifierDoubleQuotedState:
		return p.doctypePublicIdentifierDoubleQuotedStateParser
	case doctypePublicIdentifierSingleQuotedState:
		return p.doctypePublicIdentifierSingleQuotedStateParser
	case afterDoctypePublicIdentifierState:
		return p.afterDoctypePublicIdentifierStateParser
	case betweenDoctypePublicAndSystemIdentifiersState:
		return p.betweenDoctypePublicAndSystemIdentifiersStateParser
	case afterDoctypeSystemKeywordState:
		return p.afterDoctypeSystemKeywordStateParser
	case beforeDoctypeSystemIdentifierState:
		return p.beforeDoctypeSystemIdentifierStateParser
	case doctypeSystemIdentifierDoubleQuotedState:
		return p.doctypeSystemIdentifierDoubleQuotedStateParser
	case doctypeSystemIdentifierSingleQuotedState:
		return p.doctypeSystemIdentifierSingleQuotedStateParser
	case afterDoctypeSystemIdentifierState:
		return p.afterDoctypeSystemIdentifierStateParser
	case bogusDoctypeState:
		return p.bogusDoctypeStateParser
	case cdataSectionState:
		return p.cdataSectionStateParser
	case cdataSectionBracketState:
		return p.cdataSectionBracketStateParser
	case cdataSectionEndState:
		return p.cdataSectionEndStateParser
	case characterReferenceState:
		return p.characterReferenceStateParser
	case namedCharacterReferenceState:
		return p.namedCharacterReferenceStateParser
	case ambiguousAmpersandState:
		return p.ambiguousAmpersandStateParser
	case numericCharacterReferenceState:
		return p.numericCharacterReferenceStateParser
	case hexadecimalCharacterReferenceStartState:
		return p.hexadecimalCharacterReferenceStartStateParser
	case decimalCharacterReferenceStartState:
		return p.decimalCharacterReferenceStartStateParser
	case hexadecimalCharacterReferenceState:
		return p.hexadecimalCharacterReferenceStateParser
	case decimalCharacterReferenceState:
		return p.decimalCharacterReferenceStateParser
	case numericCharacterReferenceEndState:
		return p.numericCharacterReferenceEndStateParser
	}

	return nil
}

// --- text states ---

func (p *HTMLTokenizer) dataStateParser(cp codePoint) {
	if cp == eofCodePoint {
		p.emitEOFToken()
		return
	}
	switch cp {
	case '&':
		p.returnState = dataState
		p.currentState = characterReferenceState
	case '<':
		p.currentState = tagOpenState
	case '\u0000':
		p.err(ErrUnexpectedNullCharacter)
		p.emitCodePoint(cp)
	default:
		p.emitCodePoint(cp)
	}
}

func (p *HTMLTokenizer) rcDataStateParser(cp codePoint) {
	if cp == eofCodePoint {
		p.emitEOFToken()
		return
	}
	switch cp {
	case '&':
		p.returnState = rcDataState
		p.currentState = characterReferenceState
	case '<':
		p.currentState = rcDataLessThanSignState
	case '\u0000':
		p.err(ErrUnexpectedNullCharacter)
		p.emitCodePoint('\uFFFD')
	default:
		p.emitCodePoint(cp)
	}
}

func (p *HTMLTokenizer) rawTextStateParser(cp codePoint) {
	if cp == eofCodePoint {
		p.emitEOFToken()
		return
	}
	switch cp {
	case '<':
		p.currentState = rawTextLessThanSignState
	case '\u0000':
		p.err(ErrUnexpectedNullCharacter)
		p.emitCodePoint('\uFFFD')
	default:
		p.emitCodePoint(cp)
	}
}

func (p *HTMLTokenizer) scriptDataStateParser(cp codePoint) {
	if cp == eofCodePoint {
		p.emitEOFToken()
		return
	}
	switch cp {
	case '<':
		p.currentState = scriptDataLessThanSignState
	case '\u0000':
		p.err(ErrUnexpectedNullCharacter)
		p.emitCodePoint('\uFFFD')
	default:
		p.emitCodePoint(cp)
	}
}

func (p *HTMLTokenizer) plaintextStateParser(cp codePoint) {
	if cp == eofCodePoint {
		p.emitEOFToken()
		return
	}
	switch cp {
	case '\u0000':
		p.err(ErrUnexpectedNullCharacter)
		p.emitCodePoint('\uFFFD')
	default:
		p.emitCodePoint(cp)
	}
}

// --- tag states ---

func (p *HTMLTokenizer) tagOpenStateParser(cp codePoint) {
	if cp == eofCodePoint {
		p.err(ErrEOFBeforeTagName)
		p.emitChars("<")
		p.emitEOFToken()
		return
	}
	switch {
	case cp == '!':
		p.currentState = markupDeclarationOpenState
	case cp == '/':
		p.currentState = endTagOpenState
	case isASCIIAlpha(int(cp)):
		p.tokenBuilder.Reset(p.loc(1))
		p.tokenBuilder.SetTagType(startTag)
		p.reconsumeInState(tagNameState, cp)
	case cp == '?':
		p.err(ErrUnexpectedQuestionMarkInsteadOfTagName)
		p.tokenBuilder.Reset(p.loc(1))
		p.reconsumeInState(bogusCommentState, cp)
	default:
		p.err(ErrInvalidFirstCharacterOfTagName)
		p.emitChars("<")
		p.reconsumeInState(dataState, cp)
	}
}

func (p *HTMLTokenizer) endTagOpenStateParser(cp codePoint) {
	if cp == eofCodePoint {
		p.err(ErrEOFBeforeTagName)
		p.emitChars("</")
		p.emitEOFToken()
		return
	}
	switch {
	case isASCIIAlpha(int(cp)):
		p.tokenBuilder.Reset(p.loc(2))
		p.tokenBuilder.SetTagType(endTag)
		p.reconsumeInState(tagNameState, cp)
	case cp == '>':
		p.err(ErrMissingEndTagName)
		p.currentState = dataState
	default:
		p.err(ErrInvalidFirstCharacterOfTagName)
		p.tokenBuilder.Reset(p.loc(2))
		p.reconsumeInState(bogusCommentState, cp)
	}
}

func (p *HTMLTokenizer) tagNameStateParser(cp codePoint) {
	if cp == eofCodePoint {
		p.err(ErrEOFInTag)
		p.emitEOFToken()
		return
	}
	switch {
	case cp == '\u0009' || cp == '\u000A' || cp == '\u000C' || cp == '\u0020':
		p.currentState = beforeAttributeNameState
	case cp == '/':
		p.currentState = selfClosingStartTagState
	case cp == '>':
		p.currentState = dataState
		p.emitCurrentTagToken()
	case isASCIIUpper(int(cp)):
		p.tokenBuilder.WriteName(toASCIILower(cp))
	case cp == '\u0000':
		p.err(ErrUnexpectedNullCharacter)
		p.tokenBuilder.WriteName('\uFFFD')
	default:
		p.tokenBuilder.WriteName(cp)
	}
}

// --- RCDATA / RAWTEXT / script data end tag states ---

func (p *HTMLTokenizer) rcDataLessThanSignStateParser(cp codePoint) {
	if cp == '/' {
		p.tokenBuilder.ResetTempBuffer()
		p.currentState = rcDataEndTagOpenState
		return
	}
	p.emitChars("<")
	p.reconsumeInState(rcDataState, cp)
}

func (p *HTMLTokenizer) rcDataEndTagOpenStateParser(cp codePoint) {
	if isASCIIAlpha(int(cp)) {
		p.tokenBuilder.Reset(p.loc(2))
		p.tokenBuilder.SetTagType(endTag)
		p.reconsumeInState(rcDataEndTagNameState, cp)
		return
	}
	p.emitChars("</")
	p.reconsumeInState(rcDataState, cp)
}

func (p *HTMLTokenizer) defaultRcDataEndTagNameStateCase(cp codePoint) {
	p.emitChars("</")
	p.emitTempBufferChars()
	p.reconsumeInState(rcDataState, cp)
}

func (p *HTMLTokenizer) rcDataEndTagNameStateParser(cp codePoint) {
	switch {
	case cp == '\u0009' || cp == '\u000A' || cp == '\u000C' || cp == '\u0020':
		if p.isApprEndTagToken() {
			p.currentState = beforeAttributeNameState
			return
		}
		p.defaultRcDataEndTagNameStateCase(cp)
	case cp == '/':
		if p.isApprEndTagToken() {
			p.currentState = selfClosingStartTagState
			return
		}
		p.defaultRcDataEndTagNameStateCase(cp)
	case cp == '>':
		if p.isApprEndTagToken() {
			p.currentState = dataState
			p.emitCurrentTagToken()
			return
		}
		p.defaultRcDataEndTagNameStateCase(cp)
	case isASCIIUpper(int(cp)):
		p.tokenBuilder.WriteTempBuffer(cp)
		p.tokenBuilder.WriteName(toASCIILower(cp))
	case isASCIILower(int(cp)):
		p.tokenBuilder.WriteTempBuffer(cp)
		p.tokenBuilder.WriteName(cp)
	default:
		p.defaultRcDataEndTagNameStateCase(cp)
	}
}

func (p *HTMLTokenizer) rawTextLessThanSignStateParser(cp codePoint) {
	if cp == '/' {
		p.tokenBuilder.ResetTempBuffer()
		p.currentState = rawTextEndTagOpenState
		return
	}
	p.emitChars("<")
	p.reconsumeInState(rawTextState, cp)
}

func (p *HTMLTokenizer) rawTextEndTagOpenStateParser(cp codePoint) {
	if isASCIIAlpha(int(cp)) {
		p.tokenBuilder.Reset(p.loc(2))
		p.tokenBuilder.SetTagType(endTag)
		p.reconsumeInState(rawTextEndTagNameState, cp)
		return
	}
	p.emitChars("</")
	p.reconsumeInState(rawTextState, cp)
}

func (p *HTMLTokenizer) defaultRawTextEndTagNameStateCase(cp codePoint) {
	p.emitChars("</")
	p.emitTempBufferChars()
	p.reconsumeInState(rawTextState, cp)
}

func (p *HTMLTokenizer) rawTextEndTagNameStateParser(cp codePoint) {
	switch {
	case cp == '\u0009' || cp == '\u000A' || cp == '\u000C' || cp == '\u0020':
		if p.isApprEndTagToken() {
			p.currentState = beforeAttributeNameState
			return
		}
		p.defaultRawTextEndTagNameStateCase(cp)
	case cp == '/':
		if p.isApprEndTagToken() {
			p.currentState = selfClosingStartTagState
			return
		}
		p.defaultRawTextEndTagNameStateCase(cp)
	case cp == '>':
		if p.isApprEndTagToken() {
			p.currentState = dataState
			p.emitCurrentTagToken()
			return
		}
		p.defaultRawTextEndTagNameStateCase(cp)
	case isASCIIUpper(int(cp)):
		p.tokenBuilder.WriteTempBuffer(cp)
		p.tokenBuilder.WriteName(toASCIILower(cp))
	case isASCIILower(int(cp)):
		p.tokenBuilder.WriteTempBuffer(cp)
		p.tokenBuilder.WriteName(cp)
	default:
		p.defaultRawTextEndTagNameStateCase(cp)
	}
}

func (p *HTMLTokenizer) scriptDataLessThanSignStateParser(cp codePoint) {
	switch cp {
	case '/':
		p.tokenBuilder.ResetTempBuffer()
		p.currentState = scriptDataEndTagOpenState
	case '!':
		p.emitChars("<!")
		p.currentState = scriptDataEscapeStartState
	default:
		p.emitChars("<")
		p.reconsumeInState(scriptDataState, cp)
	}
}

func (p *HTMLTokenizer) scriptDataEndTagOpenStateParser(cp codePoint) {
	if isASCIIAlpha(int(cp)) {
		p.tokenBuilder.Reset(p.loc(2))
		p.tokenBuilder.SetTagType(endTag)
		p.reconsumeInState(scriptDataEndTagNameState, cp)
		return
	}
	p.emitChars("</")
	p.reconsumeInState(scriptDataState, cp)
}

func (p *HTMLTokenizer) defaultScriptDataEndTagNameStateCase(cp codePoint) {
	p.emitChars("</")
	p.emitTempBufferChars()
	p.reconsumeInState(scriptDataState, cp)
}

func (p *HTMLTokenizer) scriptDataEndTagNameStateParser(cp codePoint) {
	switch {
	case cp == '\u0009' || cp == '\u000A' || cp == '\u000C' || cp == '\u0020':
		if p.isApprEndTagToken() {
			p.currentState = beforeAttributeNameState
			return
		}
		p.defaultScriptDataEndTagNameStateCase(cp)
	case cp == '/':
		if p.isApprEndTagToken() {
			p.currentState = selfClosingStartTagState
			return
		}
		p.defaultScriptDataEndTagNameStateCase(cp)
	case cp == '>':
		if p.isApprEndTagToken() {
			p.currentState = dataState
			p.emitCurrentTagToken()
			return
		}
		p.defaultScriptDataEndTagNameStateCase(cp)
	case isASCIIUpper(int(cp)):
		p.tokenBuilder.WriteTempBuffer(cp)
		p.tokenBuilder.WriteName(toASCIILower(cp))
	case isASCIILower(int(cp)):
		p.tokenBuilder.WriteTempBuffer(cp)
		p.tokenBuilder.WriteName(cp)
	default:
		p.defaultScriptDataEndTagNameStateCase(cp)
	}
}

// --- script data escaping states ---

func (p *HTMLTokenizer) scriptDataEscapeStartStateParser(cp codePoint) {
	if cp == '-' {
		p.emitChars("-")
		p.currentState = scriptDataEscapeStartDashState
		return
	}
	p.reconsumeInState(scriptDataState, cp)
}

func (p *HTMLTokenizer) scriptDataEscapeStartDashStateParser(cp codePoint) {
	if cp == '-' {
		p.emitChars("-")
		p.currentState = scriptDataEscapedDashDashState
		return
	}
	p.reconsumeInState(scriptDataState, cp)
}

func (p *HTMLTokenizer) scriptDataEscapedStateParser(cp codePoint) {
	if cp == eofCodePoint {
		p.err(ErrEOFInScriptHTMLCommentLikeText)
		p.emitEOFToken()
		return
	}
	switch cp {
	case '-':
		p.emitChars("-")
		p.currentState = scriptDataEscapedDashState
	case '<':
		p.currentState = scriptDataEscapedLessThanSignState
	case '\u0000':
		p.err(ErrUnexpectedNullCharacter)
		p.emitCodePoint('\uFFFD')
	default:
		p.emitCodePoint(cp)
	}
}

func (p *HTMLTokenizer) scriptDataEscapedDashStateParser(cp codePoint) {
	if cp == eofCodePoint {
		p.err(ErrEOFInScriptHTMLCommentLikeText)
		p.emitEOFToken()
		return
	}
	switch cp {
	case '-':
		p.emitChars("-")
		p.currentState = scriptDataEscapedDashDashState
	case '<':
		p.currentState = scriptDataEscapedLessThanSignState
	case '\u0000':
		p.err(ErrUnexpectedNullCharacter)
		p.emitCodePoint('\uFFFD')
		p.currentState = scriptDataEscapedState
	default:
		p.emitCodePoint(cp)
		p.currentState = scriptDataEscapedState
	}
}

func (p *HTMLTokenizer) scriptDataEscapedDashDashStateParser(cp codePoint) {
	if cp == eofCodePoint {
		p.err(ErrEOFInScriptHTMLCommentLikeText)
		p.emitEOFToken()
		return
	}
	switch cp {
	case '-':
		p.emitChars("-")
	case '<':
		p.currentState = scriptDataEscapedLessThanSignState
	case '>':
		p.emitChars(">")
		p.currentState = scriptDataState
	case '\u0000':
		p.err(ErrUnexpectedNullCharacter)
		p.emitCodePoint('\uFFFD')
		p.currentState = scriptDataEscapedState
	default:
		p.emitCodePoint(cp)
		p.currentState = scriptDataEscapedState
	}
}

func (p *HTMLTokenizer) scriptDataEscapedLessThanSignStateParser(cp codePoint) {
	switch {
	case cp == '/':
		p.tokenBuilder.ResetTempBuffer()
		p.currentState = scriptDataEscapedEndTagOpenState
	case isASCIIAlpha(int(cp)):
		p.tokenBuilder.ResetTempBuffer()
		p.emitChars("<")
		p.reconsumeInState(scriptDataDoubleEscapeStartState, cp)
	default:
		p.emitChars("<")
		p.reconsumeInState(scriptDataEscapedState, cp)
	}
}

func (p *HTMLTokenizer) scriptDataEscapedEndTagOpenStateParser(cp codePoint) {
	if isASCIIAlpha(int(cp)) {
		p.tokenBuilder.Reset(p.loc(2))
		p.tokenBuilder.SetTagType(endTag)
		p.reconsumeInState(scriptDataEscapedEndTagNameState, cp)
		return
	}
	p.emitChars("</")
	p.reconsumeInState(scriptDataEscapedState, cp)
}

func (p *HTMLTokenizer) defaultScriptDataEscapedEndTagNameStateCase(cp codePoint) {
	p.emitChars("</")
	p.emitTempBufferChars()
	p.reconsumeInState(scriptDataEscapedState, cp)
}

func (p *HTMLTokenizer) scriptDataEscapedEndTagNameStateParser(cp codePoint) {
	switch {
	case cp == '\u0009' || cp == '\u000A' || cp == '\u000C' || cp == '\u0020':
		if p.isApprEndTagToken() {
			p.currentState = beforeAttributeNameState
			return
		}
		p.defaultScriptDataEscapedEndTagNameStateCase(cp)
	case cp == '/':
		if p.isApprEndTagToken() {
			p.currentState = selfClosingStartTagState
			return
		}
		p.defaultScriptDataEscapedEndTagNameStateCase(cp)
	case cp == '>':
		if p.isApprEndTagToken() {
			p.currentState = dataState
			p.emitCurrentTagToken()
			return
		}
		p.defaultScriptDataEscapedEndTagNameStateCase(cp)
	case isASCIIUpper(int(cp)):
		p.tokenBuilder.WriteTempBuffer(cp)
		p.tokenBuilder.WriteName(toASCIILower(cp))
	case isASCIILower(int(cp)):
		p.tokenBuilder.WriteTempBuffer(cp)
		p.tokenBuilder.WriteName(cp)
	default:
		p.defaultScriptDataEscapedEndTagNameStateCase(cp)
	}
}

func (p *HTMLTokenizer) scriptDataDoubleEscapeStartStateParser(cp codePoint) {
	switch {
	case cp == '\u0009' || cp == '\u000A' || cp == '\u000C' || cp == '\u0020' || cp == '/' || cp == '>':
		if p.tokenBuilder.TempBufferString() == "script" {
			p.currentState = scriptDataDoubleEscapedState
		} else {
			p.currentState = scriptDataEscapedState
		}
		p.emitCodePoint(cp)
	case isASCIIUpper(int(cp)):
		p.tokenBuilder.WriteTempBuffer(toASCIILower(cp))
		p.emitCodePoint(cp)
	case isASCIILower(int(cp)):
		p.tokenBuilder.WriteTempBuffer(cp)
		p.emitCodePoint(cp)
	default:
		p.reconsumeInState(scriptDataEscapedState, cp)
	}
}

func (p *HTMLTokenizer) scriptDataDoubleEscapedStateParser(cp codePoint) {
	if cp == eofCodePoint {
		p.err(ErrEOFInScriptHTMLCommentLikeText)
		p.emitEOFToken()
		return
	}
	switch cp {
	case '-':
		p.emitChars("-")
		p.currentState = scriptDataDoubleEscapedDashState
	case '<':
		p.emitChars("<")
		p.currentState = scriptDataDoubleEscapedLessThanSignState
	case '\u0000':
		p.err(ErrUnexpectedNullCharacter)
		p.emitCodePoint('\uFFFD')
	default:
		p.emitCodePoint(cp)
	}
}

func (p *HTMLTokenizer) scriptDataDoubleEscapedDashStateParser(cp codePoint) {
	if cp == eofCodePoint {
		p.err(ErrEOFInScriptHTMLCommentLikeText)
		p.emitEOFToken()
		return
	}
	switch cp {
	case '-':
		p.emitChars("-")
		p.currentState = scriptDataDoubleEscapedDashDashState
	case '<':
		p.emitChars("<")
		p.currentState = scriptDataDoubleEscapedLessThanSignState
	case '\u0000':
		p.err(ErrUnexpectedNullCharacter)
		p.emitCodePoint('\uFFFD')
		p.currentState = scriptDataDoubleEscapedState
	default:
		p.emitCodePoint(cp)
		p.currentState = scriptDataDoubleEscapedState
	}
}

func (p *HTMLTokenizer) scriptDataDoubleEscapedDashDashStateParser(cp codePoint) {
	if cp == eofCodePoint {
		p.err(ErrEOFInScriptHTMLCommentLikeText)
		p.emitEOFToken()
		return
	}
	switch cp {
	case '-':
		p.emitChars("-")
	case '<':
		p.emitChars("<")
		p.currentState = scriptDataDoubleEscapedLessThanSignState
	case '>':
		p.emitChars(">")
		p.currentState = scriptDataState
	case '\u0000':
		p.err(ErrUnexpectedNullCharacter)
		p.emitCodePoint('\uFFFD')
		p.currentState = scriptDataDoubleEscapedState
	default:
		p.emitCodePoint(cp)
		p.currentState = scriptDataDoubleEscapedState
	}
}

func (p *HTMLTokenizer) scriptDataDoubleEscapedLessThanSignStateParser(cp codePoint) {
	if cp == '/' {
		p.tokenBuilder.ResetTempBuffer()
		p.emitChars("/")
		p.currentState = scriptDataDoubleEscapeEndState
		return
	}
	p.reconsumeInState(scriptDataDoubleEscapedState, cp)
}

func (p *HTMLTokenizer) scriptDataDoubleEscapeEndStateParser(cp codePoint) {
	switch {
	case cp == '\u0009' || cp == '\u000A' || cp == '\u000C' || cp == '\u0020' || cp == '/' || cp == '>':
		if p.tokenBuilder.TempBufferString() == "script" {
			p.currentState = scriptDataEscapedState
		} else {
			p.currentState = scriptDataDoubleEscapedState
		}
		p.emitCodePoint(cp)
	case isASCIIUpper(int(cp)):
		p.tokenBuilder.WriteTempBuffer(toASCIILower(cp))
		p.emitCodePoint(cp)
	case isASCIILower(int(cp)):
		p.tokenBuilder.WriteTempBuffer(cp)
		p.emitCodePoint(cp)
	default:
		p.reconsumeInState(scriptDataDoubleEscapedState, cp)
	}
}

// --- attribute states ---

func (p *HTMLTokenizer) beforeAttributeNameStateParser(cp codePoint) {
	switch {
	case cp == '\u0009' || cp == '\u000A' || cp == '\u000C' || cp == '\u0020':
	case cp == '/' || cp == '>' || cp == eofCodePoint:
		p.reconsumeInState(afterAttributeNameState, cp)
	case cp == '=':
		p.err(ErrUnexpectedEqualsSignBeforeAttributeName)
		p.tokenBuilder.StartAttribute(p.loc(0))
		p.tokenBuilder.WriteAttributeName(cp)
		p.currentState = attributeNameState
	default:
		p.tokenBuilder.StartAttribute(p.loc(0))
		p.reconsumeInState(attributeNameState, cp)
	}
}

func (p *HTMLTokenizer) attributeNameStateParser(cp codePoint) {
	switch {
	case cp == '\u0009' || cp == '\u000A' || cp == '\u000C' || cp == '\u0020' ||
		cp == '/' || cp == '>' || cp == eofCodePoint:
		if p.tokenBuilder.LeaveAttributeName(p.curPosEnd()) {
			p.err(ErrDuplicateAttribute)
		}
		p.reconsumeInState(afterAttributeNameState, cp)
	case cp == '=':
		if p.tokenBuilder.LeaveAttributeName(p.curPosEnd()) {
			p.err(ErrDuplicateAttribute)
		}
		p.currentState = beforeAttributeValueState
	case isASCIIUpper(int(cp)):
		p.tokenBuilder.WriteAttributeName(toASCIILower(cp))
	case cp == '\u0000':
		p.err(ErrUnexpectedNullCharacter)
		p.tokenBuilder.WriteAttributeName('\uFFFD')
	case cp == '"' || cp == '\'' || cp == '<':
		p.err(ErrUnexpectedCharacterInAttributeName)
		p.tokenBuilder.WriteAttributeName(cp)
	default:
		p.tokenBuilder.WriteAttributeName(cp)
	}
}

func (p *HTMLTokenizer) afterAttributeNameStateParser(cp codePoint) {
	if cp == eofCodePoint {
		p.err(ErrEOFInTag)
		p.emitEOFToken()
		return
	}
	switch cp {
	case '\u0009', '\u000A', '\u000C', '\u0020':
	case '/':
		p.tokenBuilder.CommitAttribute(nil)
		p.currentState = selfClosingStartTagState
	case '=':
		p.currentState = beforeAttributeValueState
	case '>':
		p.tokenBuilder.CommitAttribute(nil)
		p.currentState = dataState
		p.emitCurrentTagToken()
	default:
		p.tokenBuilder.CommitAttribute(nil)
		p.tokenBuilder.StartAttribute(p.loc(0))
		p.reconsumeInState(attributeNameState, cp)
	}
}

func (p *HTMLTokenizer) beforeAttributeValueStateParser(cp codePoint) {
	switch cp {
	case '\u0009', '\u000A', '\u000C', '\u0020':
	case '"':
		p.tokenBuilder.StartAttributeValue(p.loc(0))
		p.currentState = attributeValueDoubleQuotedState
	case '\'':
		p.tokenBuilder.StartAttributeValue(p.loc(0))
		p.currentState = attributeValueSingleQuotedState
	case '>':
		p.err(ErrMissingAttributeValue)
		p.tokenBuilder.CommitAttribute(nil)
		p.currentState = dataState
		p.emitCurrentTagToken()
	default:
		p.tokenBuilder.StartAttributeValue(p.loc(0))
		p.reconsumeInState(attributeValueUnquotedState, cp)
	}
}

func (p *HTMLTokenizer) attributeValueDoubleQuotedStateParser(cp codePoint) {
	if cp == eofCodePoint {
		p.err(ErrEOFInTag)
		p.emitEOFToken()
		return
	}
	switch cp {
	case '"':
		p.tokenBuilder.CommitAttribute(p.pastCurEnd())
		p.currentState = afterAttributeValueQuotedState
	case '&':
		p.returnState = attributeValueDoubleQuotedState
		p.currentState = characterReferenceState
	case '\u0000':
		p.err(ErrUnexpectedNullCharacter)
		p.tokenBuilder.WriteAttributeValue('\uFFFD')
	default:
		p.tokenBuilder.WriteAttributeValue(cp)
	}
}

func (p *HTMLTokenizer) attributeValueSingleQuotedStateParser(cp codePoint) {
	if cp == eofCodePoint {
		p.err(ErrEOFInTag)
		p.emitEOFToken()
		return
	}
	switch cp {
	case '\'':
		p.tokenBuilder.CommitAttribute(p.pastCurEnd())
		p.currentState = afterAttributeValueQuotedState
	case '&':
		p.returnState = attributeValueSingleQuotedState
		p.currentState = characterReferenceState
	case '\u0000':
		p.err(ErrUnexpectedNullCharacter)
		p.tokenBuilder.WriteAttributeValue('\uFFFD')
	default:
		p.tokenBuilder.WriteAttributeValue(cp)
	}
}

func (p *HTMLTokenizer) attributeValueUnquotedStateParser(cp codePoint) {
	if cp == eofCodePoint {
		p.err(ErrEOFInTag)
		p.emitEOFToken()
		return
	}
	switch cp {
	case '\u0009', '\u000A', '\u000C', '\u0020':
		p.tokenBuilder.CommitAttribute(p.curPosEnd())
		p.currentState = beforeAttributeNameState
	case '&':
		p.returnState = attributeValueUnquotedState
		p.currentState = characterReferenceState
	case '>':
		p.tokenBuilder.CommitAttribute(p.curPosEnd())
		p.currentState = dataState
		p.emitCurrentTagToken()
	case '\u0000':
		p.err(ErrUnexpectedNullCharacter)
		p.tokenBuilder.WriteAttributeValue('\uFFFD')
	case '"', '\'', '<', '=', '`':
		p.err(ErrUnexpectedCharacterInUnquotedAttributeValue)
		p.tokenBuilder.WriteAttributeValue(cp)
	default:
		p.tokenBuilder.WriteAttributeValue(cp)
	}
}

func (p *HTMLTokenizer) afterAttributeValueQuotedStateParser(cp codePoint) {
	if cp == eofCodePoint {
		p.err(ErrEOFInTag)
		p.emitEOFToken()
		return
	}
	switch cp {
	case '\u0009', '\u000A', '\u000C', '\u0020':
		p.currentState = beforeAttributeNameState
	case '/':
		p.currentState = selfClosingStartTagState
	case '>':
		p.currentState = dataState
		p.emitCurrentTagToken()
	default:
		p.err(ErrMissingWhitespaceBetweenAttributes)
		p.reconsumeInState(beforeAttributeNameState, cp)
	}
}

func (p *HTMLTokenizer) selfClosingStartTagStateParser(cp codePoint) {
	if cp == eofCodePoint {
		p.err(ErrEOFInTag)
		p.emitEOFToken()
		return
	}
	switch cp {
	case '>':
		p.tokenBuilder.EnableSelfClosing()
		p.currentState = dataState
		p.emitCurrentTagToken()
	default:
		p.err(ErrUnexpectedSolidusInTag)
		p.reconsumeInState(beforeAttributeNameState, cp)
	}
}

// --- comment states ---

func (p *HTMLTokenizer) bogusCommentStateParser(cp codePoint) {
	if cp == eofCodePoint {
		p.emitCurrentComment(p.curPosEnd())
		p.emitEOFToken()
		return
	}
	switch cp {
	case '>':
		p.currentState = dataState
		p.emitCurrentComment(p.pastCurEnd())
	case '\u0000':
		p.err(ErrUnexpectedNullCharacter)
		p.tokenBuilder.WriteData('\uFFFD')
	default:
		p.tokenBuilder.WriteData(cp)
	}
}

func (p *HTMLTokenizer) markupDeclarationOpenStateParser(cp codePoint) {
	if p.consumeSequenceIfMatch("--", true) {
		p.tokenBuilder.Reset(p.loc(3))
		p.currentState = commentStartState
		return
	}
	if p.consumeSequenceIfMatch("doctype", false) {
		p.tokenBuilder.Reset(p.loc(8))
		p.currentState = doctypeState
		return
	}
	if p.consumeSequenceIfMatch("[CDATA[", true) {
		if p.allowCDATA || p.inForeignNode {
			p.currentState = cdataSectionState
			return
		}
		p.err(ErrCDATAInHTMLContent)
		p.tokenBuilder.Reset(p.loc(8))
		p.tokenBuilder.WriteDataString("[CDATA[")
		p.currentState = bogusCommentState
		return
	}

	// Sequence lookups can be abrupted by the end of the chunk; the
	// partial results are discarded and the state re-runs on resume.
	if p.ensureHibernation() {
		return
	}

	p.err(ErrIncorrectlyOpenedComment)
	p.tokenBuilder.Reset(p.loc(2))
	p.reconsumeInState(bogusCommentState, cp)
}

func (p *HTMLTokenizer) commentStartStateParser(cp codePoint) {
	switch cp {
	case '-':
		p.currentState = commentStartDashState
	case '>':
		p.err(ErrAbruptClosingOfEmptyComment)
		p.currentState = dataState
		p.emitCurrentComment(p.pastCurEnd())
	default:
		p.reconsumeInState(commentState, cp)
	}
}

func (p *HTMLTokenizer) commentStartDashStateParser(cp codePoint) {
	if cp == eofCodePoint {
		p.err(ErrEOFInComment)
		p.emitCurrentComment(p.curPosEnd())
		p.emitEOFToken()
		return
	}
	switch cp {
	case '-':
		p.currentState = commentEndState
	case '>':
		p.err(ErrAbruptClosingOfEmptyComment)
		p.currentState = dataState
		p.emitCurrentComment(p.pastCurEnd())
	default:
		p.tokenBuilder.WriteData('-')
		p.reconsumeInState(commentState, cp)
	}
}

func (p *HTMLTokenizer) commentStateParser(cp codePoint) {
	if cp == eofCodePoint {
		p.err(ErrEOFInComment)
		p.emitCurrentComment(p.curPosEnd())
		p.emitEOFToken()
		return
	}
	switch cp {
	case '<':
		p.tokenBuilder.WriteData(cp)
		p.currentState = commentLessThanSignState
	case '-':
		p.currentState = commentEndDashState
	case '\u0000':
		p.err(ErrUnexpectedNullCharacter)
		p.tokenBuilder.WriteData('\uFFFD')
	default:
		p.tokenBuilder.WriteData(cp)
	}
}

func (p *HTMLTokenizer) commentLessThanSignStateParser(cp codePoint) {
	switch cp {
	case '!':
		p.tokenBuilder.WriteData(cp)
		p.currentState = commentLessThanSignBangState
	case '<':
		p.tokenBuilder.WriteData(cp)
	default:
		p.reconsumeInState(commentState, cp)
	}
}

func (p *HTMLTokenizer) commentLessThanSignBangStateParser(cp codePoint) {
	if cp == '-' {
		p.currentState = commentLessThanSignBangDashState
		return
	}
	p.reconsumeInState(commentState, cp)
}

func (p *HTMLTokenizer) commentLessThanSignBangDashStateParser(cp codePoint) {
	if cp == '-' {
		p.currentState = commentLessThanSignBangDashDashState
		return
	}
	p.reconsumeInState(commentEndDashState, cp)
}

func (p *HTMLTokenizer) commentLessThanSignBangDashDashStateParser(cp codePoint) {
	if cp == '>' || cp == eofCodePoint {
		p.reconsumeInState(commentEndState, cp)
		return
	}
	p.err(ErrNestedComment)
	p.reconsumeInState(commentEndState, cp)
}

func (p *HTMLTokenizer) commentEndDashStateParser(cp codePoint) {
	if cp == eofCodePoint {
		p.err(ErrEOFInComment)
		p.emitCurrentComment(p.curPosEnd())
		p.emitEOFToken()
		return
	}
	switch cp {
	case '-':
		p.currentState = commentEndState
	default:
		p.tokenBuilder.WriteData('-')
		p.reconsumeInState(commentState, cp)
	}
}

func (p *HTMLTokenizer) commentEndStateParser(cp codePoint) {
	if cp == eofCodePoint {
		p.err(ErrEOFInComment)
		p.emitCurrentComment(p.curPosEnd())
		p.emitEOFToken()
		return
	}
	switch cp {
	case '>':
		p.currentState = dataState
		p.emitCurrentComment(p.pastCurEnd())
	case '!':
		p.currentState = commentEndBangState
	case '-':
		p.tokenBuilder.WriteData('-')
	default:
		p.tokenBuilder.WriteData('-')
		p.tokenBuilder.WriteData('-')
		p.reconsumeInState(commentState, cp)
	}
}

func (p *HTMLTokenizer) commentEndBangStateParser(cp codePoint) {
	if cp == eofCodePoint {
		p.err(ErrEOFInComment)
		p.emitCurrentComment(p.curPosEnd())
		p.emitEOFToken()
		return
	}
	switch cp {
	case '-':
		p.tokenBuilder.WriteDataString("--!")
		p.currentState = commentEndDashState
	case '>':
		p.err(ErrIncorrectlyClosedComment)
		p.currentState = dataState
		p.emitCurrentComment(p.pastCurEnd())
	default:
		p.tokenBuilder.WriteDataString("--!")
		p.reconsumeInState(commentState, cp)
	}
}

// --- DOCTYPE states ---

func (p *HTMLTokenizer) doctypeStateParser(cp codePoint) {
	if cp == eofCodePoint {
		p.err(ErrEOFInDoctype)
		p.tokenBuilder.EnableForceQuirks()
		p.emitCurrentDoctype(p.curPosEnd())
		p.emitEOFToken()
		return
	}
	switch cp {
	case '\u0009', '\u000A', '\u000C', '\u0020':
		p.currentState = beforeDoctypeNameState
	case '>':
		p.reconsumeInState(beforeDoctypeNameState, cp)
	default:
		p.err(ErrMissingWhitespaceBeforeDoctypeName)
		p.reconsumeInState(beforeDoctypeNameState, cp)
	}
}

func (p *HTMLTokenizer) beforeDoctypeNameStateParser(cp codePoint) {
	if cp == eofCodePoint {
		p.err(ErrEOFInDoctype)
		p.tokenBuilder.EnableForceQuirks()
		p.emitCurrentDoctype(p.curPosEnd())
		p.emitEOFToken()
		return
	}
	switch {
	case cp == '\u0009' || cp == '\u000A' || cp == '\u000C' || cp == '\u0020':
	case isASCIIUpper(int(cp)):
		p.tokenBuilder.WriteName(toASCIILower(cp))
		p.currentState = doctypeNameState
	case cp == '\u0000':
		p.err(ErrUnexpectedNullCharacter)
		p.tokenBuilder.WriteName('\uFFFD')
		p.currentState = doctypeNameState
	case cp == '>':
		p.err(ErrMissingDoctypeName)
		p.tokenBuilder.EnableForceQuirks()
		p.currentState = dataState
		p.emitCurrentDoctype(p.pastCurEnd())
	default:
		p.tokenBuilder.WriteName(cp)
		p.currentState = doctypeNameState
	}
}

func (p *HTMLTokenizer) doctypeNameStateParser(cp codePoint) {
	if cp == eofCodePoint {
		p.err(ErrEOFInDoctype)
		p.tokenBuilder.EnableForceQuirks()
		p.emitCurrentDoctype(p.curPosEnd())
		p.emitEOFToken()
		return
	}
	switch {
	case cp == '\u0009' || cp == '\u000A' || cp == '\u000C' || cp == '\u0020':
		p.currentState = afterDoctypeNameState
	case cp == '>':
		p.currentState = dataState
		p.emitCurrentDoctype(p.pastCurEnd())
	case isASCIIUpper(int(cp)):
		p.tokenBuilder.WriteName(toASCIILower(cp))
	case cp == '\u0000':
		p.err(ErrUnexpectedNullCharacter)
		p.tokenBuilder.WriteName('\uFFFD')
	default:
		p.tokenBuilder.WriteName(cp)
	}
}

func (p *HTMLTokenizer) afterDoctypeNameStateParser(cp codePoint) {
	if cp == eofCodePoint {
		p.err(ErrEOFInDoctype)
		p.tokenBuilder.EnableForceQuirks()
		p.emitCurrentDoctype(p.curPosEnd())
		p.emitEOFToken()
		return
	}
	switch cp {
	case '\u0009', '\u000A', '\u000C', '\u0020':
	case '>':
		p.currentState = dataState
		p.emitCurrentDoctype(p.pastCurEnd())
	default:
		if p.consumeSequenceIfMatch("public", false) {
			p.currentState = afterDoctypePublicKeywordState
			return
		}
		if p.consumeSequenceIfMatch("system", false) {
			p.currentState = afterDoctypeSystemKeywordState
			return
		}
		if p.ensureHibernation() {
			return
		}
		p.err(ErrInvalidCharacterSequenceAfterDoctypeName)
		p.tokenBuilder.EnableForceQuirks()
		p.reconsumeInState(bogusDoctypeState, cp)
	}
}

func (p *HTMLTokenizer) afterDoctypePublicKeywordStateParser(cp codePoint) {
	if cp == eofCodePoint {
		p.err(ErrEOFInDoctype)
		p.tokenBuilder.EnableForceQuirks()
		p.emitCurrentDoctype(p.curPosEnd())
		p.emitEOFToken()
		return
	}
	switch cp {
	case '\u0009', '\u000A', '\u000C', '\u0020':
		p.currentState = beforeDoctypePublicIdentifierState
	case '"':
		p.err(ErrMissingWhitespaceAfterDoctypePublicKeyword)
		p.tokenBuilder.WritePublicIdentifierEmpty()
		p.currentState = doctypePublicIdentifierDoubleQuotedState
	case '\'':
		p.err(ErrMissingWhitespaceAfterDoctypePublicKeyword)
		p.tokenBuilder.WritePublicIdentifierEmpty()
		p.currentState = doctypePublicIdentifierSingleQuotedState
	case '>':
		p.err(ErrMissingDoctypePublicIdentifier)
		p.tokenBuilder.EnableForceQuirks()
		p.currentState = dataState
		p.emitCurrentDoctype(p.pastCurEnd())
	default:
		p.err(ErrMissingQuoteBeforeDoctypePublicIdentifier)
		p.tokenBuilder.EnableForceQuirks()
		p.reconsumeInState(bogusDoctypeState, cp)
	}
}

func (p *HTMLTokenizer) beforeDoctypePublicIdentifierStateParser(cp codePoint) {
	if cp == eofCodePoint {
		p.err(ErrEOFInDoctype)
		p.tokenBuilder.EnableForceQuirks()
		p.emitCurrentDoctype(p.curPosEnd())
		p.emitEOFToken()
		return
	}
	switch cp {
	case '\u0009', '\u000A', '\u000C', '\u0020':
	case '"':
		p.tokenBuilder.WritePublicIdentifierEmpty()
		p.currentState = doctypePublicIdentifierDoubleQuotedState
	case '\'':
		p.tokenBuilder.WritePublicIdentifierEmpty()
		p.currentState = doctypePublicIdentifierSingleQuotedState
	case '>':
		p.err(ErrMissingDoctypePublicIdentifier)
		p.tokenBuilder.EnableForceQuirks()
		p.currentState = dataState
		p.emitCurrentDoctype(p.pastCurEnd())
	default:
		p.err(ErrMissingQuoteBeforeDoctypePublicIdentifier)
		p.tokenBuilder.EnableForceQuirks()
		p.reconsumeInState(bogusDoctypeState, cp)
	}
}

func (p *HTMLTokenizer) doctypePublicIdentifierDoubleQuotedStateParser(cp codePoint) {
	if cp == eofCodePoint {
		p.err(ErrEOFInDoctype)
		p.tokenBuilder.EnableForceQuirks()
		p.emitCurrentDoctype(p.curPosEnd())
		p.emitEOFToken()
		return
	}
	switch cp {
	case '"':
		p.currentState = afterDoctypePublicIdentifierState
	case '\u0000':
		p.err(ErrUnexpectedNullCharacter)
		p.tokenBuilder.WritePublicIdentifier('\uFFFD')
	case '>':
		p.err(ErrAbruptDoctypePublicIdentifier)
		p.tokenBuilder.EnableForceQuirks()
		p.currentState = dataState
		p.emitCurrentDoctype(p.pastCurEnd())
	default:
		p.tokenBuilder.WritePublicIdentifier(cp)
	}
}

func (p *HTMLTokenizer) doctypePublicIdentifierSingleQuotedStateParser(cp codePoint) {
	if cp == eofCodePoint {
		p.err(ErrEOFInDoctype)
		p.tokenBuilder.EnableForceQuirks()
		p.emitCurrentDoctype(p.curPosEnd())
		p.emitEOFToken()
		return
	}
	switch cp {
	case '\'':
		p.currentState = afterDoctypePublicIdentifierState
	case '\u0000':
		p.err(ErrUnexpectedNullCharacter)
		p.tokenBuilder.WritePublicIdentifier('\uFFFD')
	case '>':
		p.err(ErrAbruptDoctypePublicIdentifier)
		p.tokenBuilder.EnableForceQuirks()
		p.currentState = dataState
		p.emitCurrentDoctype(p.pastCurEnd())
	default:
		p.tokenBuilder.WritePublicIdentifier(cp)
	}
}

func (p *HTMLTokenizer) afterDoctypePublicIdentifierStateParser(cp codePoint) {
	if cp == eofCodePoint {
		p.err(ErrEOFInDoctype)
		p.tokenBuilder.EnableForceQuirks()
		p.emitCurrentDoctype(p.curPosEnd())
		p.emitEOFToken()
		return
	}
	switch cp {
	case '\u0009', '\u000A', '\u000C', '\u0020':
		p.currentState = betweenDoctypePublicAndSystemIdentifiersState
	case '>':
		p.currentState = dataState
		p.emitCurrentDoctype(p.pastCurEnd())
	case '"':
		p.err(ErrMissingWhitespaceBetweenDoctypePublicAndSystemIdentifier)
		p.tokenBuilder.WriteSystemIdentifierEmpty()
		p.currentState = doctypeSystemIdentifierDoubleQuotedState
	case '\'':
		p.err(ErrMissingWhitespaceBetweenDoctypePublicAndSystemIdentifier)
		p.tokenBuilder.WriteSystemIdentifierEmpty()
		p.currentState = doctypeSystemIdentifierSingleQuotedState
	default:
		p.err(ErrMissingQuoteBeforeDoctypeSystemIdentifier)
		p.tokenBuilder.EnableForceQuirks()
		p.reconsumeInState(bogusDoctypeState, cp)
	}
}

func (p *HTMLTokenizer) betweenDoctypePublicAndSystemIdentifiersStateParser(cp codePoint) {
	if cp == eofCodePoint {
		p.err(ErrEOFInDoctype)
		p.tokenBuilder.EnableForceQuirks()
		p.emitCurrentDoctype(p.curPosEnd())
		p.emitEOFToken()
		return
	}
	switch cp {
	case '\u0009', '\u000A', '\u000C', '\u0020':
	case '>':
		p.currentState = dataState
		p.emitCurrentDoctype(p.pastCurEnd())
	case '"':
		p.tokenBuilder.WriteSystemIdentifierEmpty()
		p.currentState = doctypeSystemIdentifierDoubleQuotedState
	case '\'':
		p.tokenBuilder.WriteSystemIdentifierEmpty()
		p.currentState = doctypeSystemIdentifierSingleQuotedState
	default:
		p.err(ErrMissingQuoteBeforeDoctypeSystemIdentifier)
		p.tokenBuilder.EnableForceQuirks()
		p.reconsumeInState(bogusDoctypeState, cp)
	}
}

func (p *HTMLTokenizer) afterDoctypeSystemKeywordStateParser(cp codePoint) {
	if cp == eofCodePoint {
		p.err(ErrEOFInDoctype)
		p.tokenBuilder.EnableForceQuirks()
		p.emitCurrentDoctype(p.curPosEnd())
		p.emitEOFToken()
		return
	}
	switch cp {
	case '\u0009', '\u000A', '\u000C', '\u0020':
		p.currentState = beforeDoctypeSystemIdentifierState
	case '"':
		p.err(ErrMissingWhitespaceAfterDoctypeSystemKeyword)
		p.tokenBuilder.WriteSystemIdentifierEmpty()
		p.currentState = doctypeSystemIdentifierDoubleQuotedState
	case '\'':
		p.err(ErrMissingWhitespaceAfterDoctypeSystemKeyword)
		p.tokenBuilder.WriteSystemIdentifierEmpty()
		p.currentState = doctypeSystemIdentifierSingleQuotedState
	case '>':
		p.err(ErrMissingDoctypeSystemIdentifier)
		p.tokenBuilder.EnableForceQuirks()
		p.currentState = dataState
		p.emitCurrentDoctype(p.pastCurEnd())
	default:
		p.err(ErrMissingQuoteBeforeDoctypeSystemIdentifier)
		p.tokenBuilder.EnableForceQuirks()
		p.reconsumeInState(bogusDoctypeState, cp)
	}
}

func (p *HTMLTokenizer) beforeDoctypeSystemIdentifierStateParser(cp codePoint) {
	if cp == eofCodePoint {
		p.err(ErrEOFInDoctype)
		p.tokenBuilder.EnableForceQuirks()
		p.emitCurrentDoctype(p.curPosEnd())
		p.emitEOFToken()
		return
	}
	switch cp {
	case '\u0009', '\u000A', '\u000C', '\u0020':
	case '"':
		p.tokenBuilder.WriteSystemIdentifierEmpty()
		p.currentState = doctypeSystemIdentifierDoubleQuotedState
	case '\'':
		p.tokenBuilder.WriteSystemIdentifierEmpty()
		p.currentState = doctypeSystemIdentifierSingleQuotedState
	case '>':
		p.err(ErrMissingDoctypeSystemIdentifier)
		p.tokenBuilder.EnableForceQuirks()
		p.currentState = dataState
		p.emitCurrentDoctype(p.pastCurEnd())
	default:
		p.err(ErrMissingQuoteBeforeDoctypeSystemIdentifier)
		p.tokenBuilder.EnableForceQuirks()
		p.reconsumeInState(bogusDoctypeState, cp)
	}
}

func (p *HTMLTokenizer) doctypeSystemIdentifierDoubleQuotedStateParser(cp codePoint) {
	if cp == eofCodePoint {
		p.err(ErrEOFInDoctype)
		p.tokenBuilder.EnableForceQuirks()
		p.emitCurrentDoctype(p.curPosEnd())
		p.emitEOFToken()
		return
	}
	switch cp {
	case '"':
		p.currentState = afterDoctypeSystemIdentifierState
	case '\u0000':
		p.err(ErrUnexpectedNullCharacter)
		p.tokenBuilder.WriteSystemIdentifier('\uFFFD')
	case '>':
		p.err(ErrAbruptDoctypeSystemIdentifier)
		p.tokenBuilder.EnableForceQuirks()
		p.currentState = dataState
		p.emitCurrentDoctype(p.pastCurEnd())
	default:
		p.tokenBuilder.WriteSystemIdentifier(cp)
	}
}

func (p *HTMLTokenizer) doctypeSystemIdentifierSingleQuotedStateParser(cp codePoint) {
	if cp == eofCodePoint {
		p.err(ErrEOFInDoctype)
		p.tokenBuilder.EnableForceQuirks()
		p.emitCurrentDoctype(p.curPosEnd())
		p.emitEOFToken()
		return
	}
	switch cp {
	case '\'':
		p.currentState = afterDoctypeSystemIdentifierState
	case '\u0000':
		p.err(ErrUnexpectedNullCharacter)
		p.tokenBuilder.WriteSystemIdentifier('\uFFFD')
	case '>':
		p.err(ErrAbruptDoctypeSystemIdentifier)
		p.tokenBuilder.EnableForceQuirks()
		p.currentState = dataState
		p.emitCurrentDoctype(p.pastCurEnd())
	default:
		p.tokenBuilder.WriteSystemIdentifier(cp)
	}
}

func (p *HTMLTokenizer) afterDoctypeSystemIdentifierStateParser(cp codePoint) {
	if cp == eofCodePoint {
		p.err(ErrEOFInDoctype)
		p.tokenBuilder.EnableForceQuirks()
		p.emitCurrentDoctype(p.curPosEnd())
		p.emitEOFToken()
		return
	}
	switch cp {
	case '\u0009', '\u000A', '\u000C', '\u0020':
	case '>':
		p.currentState = dataState
		p.emitCurrentDoctype(p.pastCurEnd())
	default:
		p.err(ErrUnexpectedCharacterAfterDoctypeSystemIdentifier)
		p.reconsumeInState(bogusDoctypeState, cp)
	}
}

func (p *HTMLTokenizer) bogusDoctypeStateParser(cp codePoint) {
	if cp == eofCodePoint {
		p.emitCurrentDoctype(p.curPosEnd())
		p.emitEOFToken()
		return
	}
	switch cp {
	case '>':
		p.currentState = dataState
		p.emitCurrentDoctype(p.pastCurEnd())
	case '\u0000':
		p.err(ErrUnexpectedNullCharacter)
	default:
	}
}

// --- CDATA states ---

func (p *HTMLTokenizer) cdataSectionStateParser(cp codePoint) {
	if cp == eofCodePoint {
		p.err(ErrEOFInCDATA)
		p.emitEOFToken()
		return
	}
	switch cp {
	case ']':
		p.currentState = cdataSectionBracketState
	default:
		p.emitCodePoint(cp)
	}
}

func (p *HTMLTokenizer) cdataSectionBracketStateParser(cp codePoint) {
	if cp == ']' {
		p.currentState = cdataSectionEndState
		return
	}
	p.emitChars("]")
	p.reconsumeInState(cdataSectionState, cp)
}

func (p *HTMLTokenizer) cdataSectionEndStateParser(cp codePoint) {
	switch cp {
	case ']':
		p.emitChars("]")
	case '>':
		p.currentState = dataState
	default:
		p.emitChars("]]")
		p.reconsumeInState(cdataSectionState, cp)
	}
}

// --- character reference states ---

func (p *HTMLTokenizer) characterReferenceStateParser(cp codePoint) {
	p.tokenBuilder.ResetTempBuffer()
	p.tokenBuilder.WriteTempBuffer('&')

	switch {
	case isASCIIAlphanumeric(int(cp)):
		p.reconsumeInState(namedCharacterReferenceState, cp)
	case cp == '#':
		p.tokenBuilder.WriteTempBuffer(cp)
		p.currentState = numericCharacterReferenceState
	default:
		p.flushCodePointsAsCharacterReference()
		p.reconsumeInState(p.returnState, cp)
	}
}

func (p *HTMLTokenizer) namedCharacterReferenceStateParser(cp codePoint) {
	replacement, matched := p.matchNamedCharacterReference(cp)

	// Matching can be abrupted by the chunk boundary; the partial result
	// is discarded and the whole reference re-matches on resume.
	if p.ensureHibernation() {
		return
	}

	if matched {
		p.tokenBuilder.ResetTempBuffer()
		for _, r := range replacement {
			p.tokenBuilder.WriteTempBuffer(r)
		}
		p.flushCodePointsAsCharacterReference()
		p.currentState = p.returnState
		return
	}

	p.flushCodePointsAsCharacterReference()
	p.currentState = ambiguousAmpersandState
}

func (p *HTMLTokenizer) ambiguousAmpersandStateParser(cp codePoint) {
	switch {
	case isASCIIAlphanumeric(int(cp)):
		if wasConsumedByAttribute(p.returnState) {
			p.tokenBuilder.WriteAttributeValue(cp)
		} else {
			p.emitCodePoint(cp)
		}
	case cp == ';':
		p.err(ErrUnknownNamedCharacterReference)
		p.reconsumeInState(p.returnState, cp)
	default:
		p.reconsumeInState(p.returnState, cp)
	}
}

func (p *HTMLTokenizer) numericCharacterReferenceStateParser(cp codePoint) {
	p.tokenBuilder.SetCharRef(0)
	switch cp {
	case 'x', 'X':
		p.tokenBuilder.WriteTempBuffer(cp)
		p.currentState = hexadecimalCharacterReferenceStartState
	default:
		p.reconsumeInState(decimalCharacterReferenceStartState, cp)
	}
}

func (p *HTMLTokenizer) hexadecimalCharacterReferenceStartStateParser(cp codePoint) {
	if isASCIIHexDigit(int(cp)) {
		p.reconsumeInState(hexadecimalCharacterReferenceState, cp)
		return
	}
	p.err(ErrAbsenceOfDigitsInNumericCharacterReference)
	p.flushCodePointsAsCharacterReference()
	p.reconsumeInState(p.returnState, cp)
}

func (p *HTMLTokenizer) decimalCharacterReferenceStartStateParser(cp codePoint) {
	if isASCIIDigit(int(cp)) {
		p.reconsumeInState(decimalCharacterReferenceState, cp)
		return
	}
	p.err(ErrAbsenceOfDigitsInNumericCharacterReference)
	p.flushCodePointsAsCharacterReference()
	p.reconsumeInState(p.returnState, cp)
}

func (p *HTMLTokenizer) hexadecimalCharacterReferenceStateParser(cp codePoint) {
	switch {
	case isASCIIDigit(int(cp)):
		p.tokenBuilder.MultByCharRef(16)
		p.tokenBuilder.AddToCharRef(int(cp - 0x30))
	case cp >= 'A' && cp <= 'F':
		p.tokenBuilder.MultByCharRef(16)
		p.tokenBuilder.AddToCharRef(int(cp - 0x37))
	case cp >= 'a' && cp <= 'f':
		p.tokenBuilder.MultByCharRef(16)
		p.tokenBuilder.AddToCharRef(int(cp - 0x57))
	case cp == ';':
		p.currentState = numericCharacterReferenceEndState
	default:
		p.err(ErrMissingSemicolonAfterCharacterReference)
		p.reconsumeInState(numericCharacterReferenceEndState, cp)
	}
}

func (p *HTMLTokenizer) decimalCharacterReferenceStateParser(cp codePoint) {
	switch {
	case isASCIIDigit(int(cp)):
		p.tokenBuilder.MultByCharRef(10)
		p.tokenBuilder.AddToCharRef(int(cp - 0x30))
	case cp == ';':
		p.currentState = numericCharacterReferenceEndState
	default:
		p.err(ErrMissingSemicolonAfterCharacterReference)
		p.reconsumeInState(numericCharacterReferenceEndState, cp)
	}
}

func (p *HTMLTokenizer) numericCharacterReferenceEndStateParser(cp codePoint) {
	// The only state that does not act on an input character: whatever was
	// consumed to get here goes back first.
	p.unconsume(1)

	code := p.tokenBuilder.GetCharRef()
	switch {
	case code == 0:
		p.err(ErrNullCharacterReference)
		p.tokenBuilder.SetCharRef(0xFFFD)
	case code > 0x10FFFF:
		p.err(ErrCharacterReferenceOutsideUnicodeRange)
		p.tokenBuilder.SetCharRef(0xFFFD)
	case isSurrogate(code):
		p.err(ErrSurrogateCharacterReference)
		p.tokenBuilder.SetCharRef(0xFFFD)
	case isNonCharacter(code):
		p.err(ErrNoncharacterCharacterReference)
	case code == 0x0D || (isControl(code) && !isASCIIWhitespace(code)):
		p.err(ErrControlCharacterReference)
		if mapped, ok := numericCharacterReferenceEndStateTable[code]; ok {
			p.tokenBuilder.SetCharRef(int(mapped))
		}
	}

	p.tokenBuilder.ResetTempBuffer()
	p.tokenBuilder.WriteTempBuffer(rune(p.tokenBuilder.GetCharRef()))
	p.flushCodePointsAsCharacterReference()
	p.currentState = p.returnState
}

//go:generate stringer -type=tokenizerState
type tokenizerState uint

const (
	dataState tokenizerState = iota
	rcDataState
	rawTextState
	scriptDataState
	plaintextState
	tagOpenState
	endTagOpenState
	tagNameState
	rcDataLessThanSignState
	rcDataEndTagOpenState
	rcDataEndTagNameState
	rawTextLessThanSignState
	rawTextEndTagOpenState
	rawTextEndTagNameState
	scriptDataLessThanSignState
	scriptDataEndTagOpenState
	scriptDataEndTagNameState
	scriptDataEscapeStartState
	scriptDataEscapeStartDashState
	scriptDataEscapedState
	scriptDataEscapedDashState
	scriptDataEscapedDashDashState
	scriptDataEscapedLessThanSignState
	scriptDataEscapedEndTagOpenState
	scriptDataEscapedEndTagNameState
	scriptDataDoubleEscapeStartState
	scriptDataDoubleEscapedState
	scriptDataDoubleEscapedDashState
	scriptDataDoubleEscapedDashDashState
	scriptDataDoubleEscapedLessThanSignState
	scriptDataDoubleEscapeEndState
	beforeAttributeNameState
	attributeNameState
	afterAttributeNameState
	beforeAttributeValueState
	attributeValueDoubleQuotedState
	attributeValueSingleQuotedState
	attributeValueUnquotedState
	afterAttributeValueQuotedState
	selfClosingStartTagState
	bogusCommentState
	markupDeclarationOpenState
	commentStartState
	commentStartDashState
	commentState
	commentLessThanSignState
	commentLessThanSignBangState
	commentLessThanSignBangDashState
	commentLessThanSignBangDashDashState
	commentEndDashState
	commentEndState
	commentEndBangState
	doctypeState
	beforeDoctypeNameState
	doctypeNameState
	afterDoctypeNameState
	afterDoctypePublicKeywordState
	beforeDoctypePublicIdentifierState
	doctypePublicIdentifierDoubleQuotedState
	doctypePublicIdentifierSingleQuotedState
	afterDoctypePublicIdentifierState
	betweenDoctypePublicAndSystemIdentifiersState
	afterDoctypeSystemKeywordState
	beforeDoctypeSystemIdentifierState
	doctypeSystemIdentifierDoubleQuotedState
	doctypeSystemIdentifierSingleQuotedState
	afterDoctypeSystemIdentifierState
	bogusDoctypeState
	cdataSectionState
	cdataSectionBracketState
	cdataSectionEndState
	characterReferenceState
	namedCharacterReferenceState
	ambiguousAmpersandState
	numericCharacterReferenceState
	hexadecimalCharacterReferenceStartState
	decimalCharacterReferenceStartState
	hexadecimalCharacterReferenceState
	decimalCharacterReferenceState
	numericCharacterReferenceEndState
)
