package parser

import "strings"

type tokenType uint

const (
	characterToken tokenType = iota
	nullCharacterToken
	whitespaceCharacterToken
	startTagToken
	endTagToken
	commentToken
	docTypeToken
	endOfFileToken
)

type tagType uint

const (
	startTag tagType = iota
	endTag
)

// Location describes the source span of a token or attribute. Lines are
// 1-based; columns and offsets are 0-based UTF-16 code-unit distances. The
// end position points just past the last character of the span.
type Location struct {
	StartLine   int
	StartCol    int
	StartOffset int
	EndLine     int
	EndCol      int
	EndOffset   int
}

// Attribute is a single name/value pair on a tag token. Prefix and
// Namespace are filled by the tree stage for foreign content; the tokenizer
// leaves them empty.
type Attribute struct {
	Name          string
	Value         string
	Prefix        string
	Namespace     string
	NameLocation  *Location
	ValueLocation *Location
}

// Token is a concrete token that is ready to be emitted.
type Token struct {
	TokenType        tokenType
	TagName          string
	SelfClosing      bool
	AckSelfClosing   bool
	Attributes       []Attribute
	Data             string
	Chars            string
	Name             *string
	PublicIdentifier *string
	SystemIdentifier *string
	ForceQuirks      bool
	Location         *Location
}

// Attr returns the value of the named attribute and whether it is present.
func (t *Token) Attr(name string) (string, bool) {
	for i := range t.Attributes {
		if t.Attributes[i].Name == name {
			return t.Attributes[i].Value, true
		}
	}
	return "", false
}

// TokenBuilder accumulates the in-progress tag, comment, or doctype token
// during tokenization. Its contents are the resumption context when the
// tokenizer suspends at a chunk boundary.
type TokenBuilder struct {
	attributes     []Attribute
	seenAttrs      map[string]struct{}
	attributeKey   strings.Builder
	attributeValue strings.Builder
	attrNameLoc    *Location
	attrValueLoc   *Location
	removeNextAttr bool

	name       strings.Builder
	data       strings.Builder
	tempBuffer []rune

	publicID    strings.Builder
	systemID    strings.Builder
	hasName     bool
	hasPublicID bool
	hasSystemID bool

	selfClosing bool
	forceQuirks bool
	curTagType  tagType

	characterReferenceCode int

	location *Location
}

func newTokenBuilder() *TokenBuilder {
	return &TokenBuilder{seenAttrs: make(map[string]struct{})}
}

// Reset clears the token under construction and starts it at loc. The temp
// buffer, which has its own lifecycle across the lookahead states, the tag
// type and the character-reference code are left as they are.
func (t *TokenBuilder) Reset(loc *Location) {
	t.attributes = t.attributes[:0]
	t.seenAttrs = make(map[string]struct{})
	t.attributeKey.Reset()
	t.attributeValue.Reset()
	t.attrNameLoc = nil
	t.attrValueLoc = nil
	t.removeNextAttr = false
	t.name.Reset()
	t.data.Reset()
	t.publicID.Reset()
	t.systemID.Reset()
	t.hasName = false
	t.hasPublicID = false
	t.hasSystemID = false
	t.selfClosing = false
	t.forceQuirks = false
	t.location = loc
}

// EnableSelfClosing changes the self-closing flag to "set".
func (t *TokenBuilder) EnableSelfClosing() {
	t.selfClosing = true
}

// EnableForceQuirks changes the force-quirks flag to "set".
func (t *TokenBuilder) EnableForceQuirks() {
	t.forceQuirks = true
}

// WriteName appends a character to the current tag or doctype name.
func (t *TokenBuilder) WriteName(r rune) {
	t.hasName = true
	t.name.WriteRune(r)
}

// WriteData appends a character to the current comment data.
func (t *TokenBuilder) WriteData(r rune) {
	t.data.WriteRune(r)
}

// WriteDataString appends a string to the current comment data.
func (t *TokenBuilder) WriteDataString(s string) {
	t.data.WriteString(s)
}

// WritePublicIdentifierEmpty initializes the public identifier to the empty
// string (distinct from missing).
func (t *TokenBuilder) WritePublicIdentifierEmpty() {
	t.hasPublicID = true
	t.publicID.Reset()
}

// WritePublicIdentifier appends a character to the public identifier.
func (t *TokenBuilder) WritePublicIdentifier(r rune) {
	t.hasPublicID = true
	t.publicID.WriteRune(r)
}

// WriteSystemIdentifierEmpty initializes the system identifier to the empty
// string (distinct from missing).
func (t *TokenBuilder) WriteSystemIdentifierEmpty() {
	t.hasSystemID = true
	t.systemID.Reset()
}

// WriteSystemIdentifier appends a character to the system identifier.
func (t *TokenBuilder) WriteSystemIdentifier(r rune) {
	t.hasSystemID = true
	t.systemID.WriteRune(r)
}

// StartAttribute begins a fresh attribute whose name starts at loc.
func (t *TokenBuilder) StartAttribute(loc *Location) {
	t.attributeKey.Reset()
	t.attributeValue.Reset()
	t.attrNameLoc = loc
	t.attrValueLoc = nil
	t.removeNextAttr = false
}

// WriteAttributeName appends a character to the current attribute's name.
func (t *TokenBuilder) WriteAttributeName(r rune) {
	t.attributeKey.WriteRune(r)
}

// WriteAttributeValue appends a character to the current attribute's value.
func (t *TokenBuilder) WriteAttributeValue(r rune) {
	t.attributeValue.WriteRune(r)
}

// StartAttributeValue records where the current attribute's value begins.
func (t *TokenBuilder) StartAttributeValue(loc *Location) {
	t.attrValueLoc = loc
}

// LeaveAttributeName finishes the current attribute's name. It reports
// whether the name duplicates an earlier attribute on the same tag, in
// which case the whole attribute is discarded at commit time.
func (t *TokenBuilder) LeaveAttributeName(loc *Location) bool {
	name := t.attributeKey.String()
	if t.attrNameLoc != nil && loc != nil {
		t.attrNameLoc.EndLine = loc.EndLine
		t.attrNameLoc.EndCol = loc.EndCol
		t.attrNameLoc.EndOffset = loc.EndOffset
	}
	if _, ok := t.seenAttrs[name]; ok {
		t.removeNextAttr = true
		return true
	}
	t.seenAttrs[name] = struct{}{}
	return false
}

// CommitAttribute ends the current key/value pair, appending it to the
// token's attribute list unless it was flagged as a duplicate.
func (t *TokenBuilder) CommitAttribute(loc *Location) {
	if !t.removeNextAttr {
		k := t.attributeKey.String()
		if k != "" {
			if t.attrValueLoc != nil && loc != nil {
				t.attrValueLoc.EndLine = loc.EndLine
				t.attrValueLoc.EndCol = loc.EndCol
				t.attrValueLoc.EndOffset = loc.EndOffset
			}
			t.attributes = append(t.attributes, Attribute{
				Name:          k,
				Value:         t.attributeValue.String(),
				NameLocation:  t.attrNameLoc,
				ValueLocation: t.attrValueLoc,
			})
		}
	}
	t.attributeKey.Reset()
	t.attributeValue.Reset()
	t.attrNameLoc = nil
	t.attrValueLoc = nil
	t.removeNextAttr = false
}

// HasPendingAttribute reports whether an attribute name is being built.
func (t *TokenBuilder) HasPendingAttribute() bool {
	return t.attributeKey.Len() > 0
}

// WriteTempBuffer appends a character to the temporary buffer.
func (t *TokenBuilder) WriteTempBuffer(r rune) {
	t.tempBuffer = append(t.tempBuffer, r)
}

// ResetTempBuffer clears the temporary buffer for the next state that
// needs it.
func (t *TokenBuilder) ResetTempBuffer() {
	t.tempBuffer = t.tempBuffer[:0]
}

// TempBuffer returns the temporary buffer contents.
func (t *TokenBuilder) TempBuffer() []rune {
	return t.tempBuffer
}

// TempBufferString returns the string form of the temporary buffer.
func (t *TokenBuilder) TempBufferString() string {
	return string(t.tempBuffer)
}

// SetCharRef sets the character reference code being accumulated.
func (t *TokenBuilder) SetCharRef(i int) {
	t.characterReferenceCode = i
}

// GetCharRef returns the accumulated character reference code.
func (t *TokenBuilder) GetCharRef() int {
	return t.characterReferenceCode
}

// AddToCharRef adds to the accumulated character reference code.
func (t *TokenBuilder) AddToCharRef(i int) {
	t.characterReferenceCode += i
}

// MultByCharRef multiplies the accumulated character reference code. The
// accumulator saturates just outside the Unicode range so that arbitrarily
// long references cannot overflow it.
func (t *TokenBuilder) MultByCharRef(i int) {
	t.characterReferenceCode *= i
	if t.characterReferenceCode > 0x110000 {
		t.characterReferenceCode = 0x110000
	}
}

// Name returns the tag or doctype name built so far.
func (t *TokenBuilder) Name() string {
	return t.name.String()
}

// TagType returns whether the current tag is a start or end tag.
func (t *TokenBuilder) TagType() tagType {
	return t.curTagType
}

// SetTagType records whether the current tag is a start or end tag.
func (t *TokenBuilder) SetTagType(tt tagType) {
	t.curTagType = tt
}

func (t *TokenBuilder) finishLocation(end *Location) *Location {
	if t.location == nil {
		return nil
	}
	loc := *t.location
	if end != nil {
		loc.EndLine = end.EndLine
		loc.EndCol = end.EndCol
		loc.EndOffset = end.EndOffset
	}
	return &loc
}

// StartTagToken creates a start tag token from the builder contents.
func (t *TokenBuilder) StartTagToken(end *Location) Token {
	attrs := make([]Attribute, len(t.attributes))
	copy(attrs, t.attributes)
	return Token{
		TokenType:   startTagToken,
		TagName:     t.name.String(),
		Attributes:  attrs,
		SelfClosing: t.selfClosing,
		Location:    t.finishLocation(end),
	}
}

// EndTagToken creates an end tag token from the builder contents.
func (t *TokenBuilder) EndTagToken(end *Location) Token {
	attrs := make([]Attribute, len(t.attributes))
	copy(attrs, t.attributes)
	return Token{
		TokenType:   endTagToken,
		TagName:     t.name.String(),
		Attributes:  attrs,
		SelfClosing: t.selfClosing,
		Location:    t.finishLocation(end),
	}
}

// CommentToken creates a comment token from the builder contents.
func (t *TokenBuilder) CommentToken(end *Location) Token {
	return Token{
		TokenType: commentToken,
		Data:      t.data.String(),
		Location:  t.finishLocation(end),
	}
}

// DocTypeToken creates a doctype token from the builder contents. Name and
// identifiers that were never written stay nil.
func (t *TokenBuilder) DocTypeToken(end *Location) Token {
	tok := Token{
		TokenType:   docTypeToken,
		ForceQuirks: t.forceQuirks,
		Location:    t.finishLocation(end),
	}
	if t.hasName {
		n := t.name.String()
		tok.Name = &n
	}
	if t.hasPublicID {
		p := t.publicID.String()
		tok.PublicIdentifier = &p
	}
	if t.hasSystemID {
		s := t.systemID.String()
		tok.SystemIdentifier = &s
	}
	return tok
}

// EndOfFileToken creates an end of file token.
func (t *TokenBuilder) EndOfFileToken(loc *Location) Token {
	return Token{
		TokenType: endOfFileToken,
		Location:  loc,
	}
}
