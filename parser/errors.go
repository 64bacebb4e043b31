package parser

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorCode identifies one entry of the HTML tokenization error catalog.
type ErrorCode string

const (
	ErrControlCharacterInInputStream                            ErrorCode = "controlCharacterInInputStream"
	ErrNoncharacterInInputStream                                ErrorCode = "noncharacterInInputStream"
	ErrSurrogateInInputStream                                   ErrorCode = "surrogateInInputStream"
	ErrUnexpectedNullCharacter                                  ErrorCode = "unexpectedNullCharacter"
	ErrUnexpectedQuestionMarkInsteadOfTagName                   ErrorCode = "unexpectedQuestionMarkInsteadOfTagName"
	ErrInvalidFirstCharacterOfTagName                           ErrorCode = "invalidFirstCharacterOfTagName"
	ErrMissingEndTagName                                        ErrorCode = "missingEndTagName"
	ErrEOFBeforeTagName                                         ErrorCode = "eofBeforeTagName"
	ErrEOFInTag                                                 ErrorCode = "eofInTag"
	ErrMissingWhitespaceBetweenAttributes                       ErrorCode = "missingWhitespaceBetweenAttributes"
	ErrUnexpectedCharacterInAttributeName                       ErrorCode = "unexpectedCharacterInAttributeName"
	ErrUnexpectedEqualsSignBeforeAttributeName                  ErrorCode = "unexpectedEqualsSignBeforeAttributeName"
	ErrMissingAttributeValue                                    ErrorCode = "missingAttributeValue"
	ErrUnexpectedCharacterInUnquotedAttributeValue              ErrorCode = "unexpectedCharacterInUnquotedAttributeValue"
	ErrDuplicateAttribute                                       ErrorCode = "duplicateAttribute"
	ErrUnexpectedSolidusInTag                                   ErrorCode = "unexpectedSolidusInTag"
	ErrEndTagWithAttributes                                     ErrorCode = "endTagWithAttributes"
	ErrEndTagWithTrailingSolidus                                ErrorCode = "endTagWithTrailingSolidus"
	ErrAbruptClosingOfEmptyComment                              ErrorCode = "abruptClosingOfEmptyComment"
	ErrEOFInComment                                             ErrorCode = "eofInComment"
	ErrNestedComment                                            ErrorCode = "nestedComment"
	ErrIncorrectlyOpenedComment                                 ErrorCode = "incorrectlyOpenedComment"
	ErrIncorrectlyClosedComment                                 ErrorCode = "incorrectlyClosedComment"
	ErrEOFInScriptHTMLCommentLikeText                           ErrorCode = "eofInScriptHtmlCommentLikeText"
	ErrEOFInDoctype                                             ErrorCode = "eofInDoctype"
	ErrMissingWhitespaceBeforeDoctypeName                       ErrorCode = "missingWhitespaceBeforeDoctypeName"
	ErrMissingDoctypeName                                       ErrorCode = "missingDoctypeName"
	ErrInvalidCharacterSequenceAfterDoctypeName                 ErrorCode = "invalidCharacterSequenceAfterDoctypeName"
	ErrMissingWhitespaceAfterDoctypePublicKeyword               ErrorCode = "missingWhitespaceAfterDoctypePublicKeyword"
	ErrMissingDoctypePublicIdentifier                           ErrorCode = "missingDoctypePublicIdentifier"
	ErrMissingQuoteBeforeDoctypePublicIdentifier                ErrorCode = "missingQuoteBeforeDoctypePublicIdentifier"
	ErrAbruptDoctypePublicIdentifier                            ErrorCode = "abruptDoctypePublicIdentifier"
	ErrMissingWhitespaceBetweenDoctypePublicAndSystemIdentifier ErrorCode = "missingWhitespaceBetweenDoctypePublicAndSystemIdentifiers"
	ErrMissingWhitespaceAfterDoctypeSystemKeyword               ErrorCode = "missingWhitespaceAfterDoctypeSystemKeyword"
	ErrMissingDoctypeSystemIdentifier                           ErrorCode = "missingDoctypeSystemIdentifier"
	ErrMissingQuoteBeforeDoctypeSystemIdentifier                ErrorCode = "missingQuoteBeforeDoctypeSystemIdentifier"
	ErrAbruptDoctypeSystemIdentifier                            ErrorCode = "abruptDoctypeSystemIdentifier"
	ErrUnexpectedCharacterAfterDoctypeSystemIdentifier          ErrorCode = "unexpectedCharacterAfterDoctypeSystemIdentifier"
	ErrCDATAInHTMLContent                                       ErrorCode = "cdataInHtmlContent"
	ErrEOFInCDATA                                               ErrorCode = "eofInCdata"
	ErrMissingSemicolonAfterCharacterReference                  ErrorCode = "missingSemicolonAfterCharacterReference"
	ErrUnknownNamedCharacterReference                           ErrorCode = "unknownNamedCharacterReference"
	ErrAbsenceOfDigitsInNumericCharacterReference               ErrorCode = "absenceOfDigitsInNumericCharacterReference"
	ErrNullCharacterReference                                   ErrorCode = "nullCharacterReference"
	ErrCharacterReferenceOutsideUnicodeRange                    ErrorCode = "characterReferenceOutsideUnicodeRange"
	ErrSurrogateCharacterReference                              ErrorCode = "surrogateCharacterReference"
	ErrNoncharacterCharacterReference                           ErrorCode = "noncharacterCharacterReference"
	ErrControlCharacterReference                                ErrorCode = "controlCharacterReference"
)

// ParseError is a recoverable diagnostic describing a well-formedness
// violation in the input. It never aborts tokenization.
type ParseError struct {
	Code        ErrorCode
	StartLine   int
	StartCol    int
	StartOffset int
	EndLine     int
	EndCol      int
	EndOffset   int
}

func (e *ParseError) String() string {
	return fmt.Sprintf("%s at %d:%d (offset %d)", e.Code, e.StartLine, e.StartCol, e.StartOffset)
}

// Contract violations. These are programmer mistakes, not input problems,
// and fail fast instead of flowing through the parse-error sink.
var (
	// ErrAlreadyResumed is returned by a script resume callback that is
	// invoked while the parser is not suspended.
	ErrAlreadyResumed = errors.New("parser was already resumed")
	// ErrReentrantWrite is returned when Write is called while the parsing
	// loop is already on the stack.
	ErrReentrantWrite = errors.New("write called while the parsing loop is running")
	// ErrAfterLastChunk is returned when Write is called after the last
	// chunk was written.
	ErrAfterLastChunk = errors.New("write called after the last chunk")
)
