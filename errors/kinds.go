package errors

// Kind identifies one parse error condition from the WHATWG tokenization
// algorithm, plus the input stream's decoding error. The set is closed;
// new kinds only appear when the upstream algorithm adds them.
type Kind int

const (
	AbruptClosingOfEmptyComment Kind = iota
	AbruptDoctypePublicIdentifier
	AbruptDoctypeSystemIdentifier
	AbsenceOfDigitsInNumericCharacterReference
	CdataInHTMLContent
	CharacterReferenceOutsideUnicodeRange
	ControlCharacterReference
	DuplicateAttribute
	EOFBeforeTagName
	EOFInCdata
	EOFInComment
	EOFInDoctype
	EOFInScriptHTMLCommentLikeText
	EOFInTag
	IncorrectlyClosedComment
	IncorrectlyOpenedComment
	InvalidCharacterSequenceAfterDoctypeName
	InvalidFirstCharacterOfTagName
	MissingAttributeValue
	MissingDoctypeName
	MissingDoctypePublicIdentifier
	MissingDoctypeSystemIdentifier
	MissingEndTagName
	MissingQuoteBeforeDoctypePublicIdentifier
	MissingQuoteBeforeDoctypeSystemIdentifier
	MissingSemicolonAfterCharacterReference
	MissingWhitespaceAfterDoctypePublicKeyword
	MissingWhitespaceAfterDoctypeSystemKeyword
	MissingWhitespaceBeforeDoctypeName
	MissingWhitespaceBetweenAttributes
	MissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers
	NestedComment
	NoncharacterCharacterReference
	NullCharacterReference
	SurrogateCharacterReference
	UnexpectedCharacterAfterDoctypeSystemIdentifier
	UnexpectedCharacterInAttributeName
	UnexpectedCharacterInUnquotedAttributeValue
	UnexpectedEqualsSignBeforeAttributeName
	UnexpectedNullCharacter
	UnexpectedQuestionMarkInsteadOfTagName
	UnexpectedSolidusInTag
	UnknownNamedCharacterReference
	InvalidUTF8

	kindCount
)

// codes holds the stable identifier for each kind, matching the names the
// WHATWG specification uses for its parse errors.
var codes = [kindCount]string{
	AbruptClosingOfEmptyComment:                               "abrupt-closing-of-empty-comment",
	AbruptDoctypePublicIdentifier:                             "abrupt-doctype-public-identifier",
	AbruptDoctypeSystemIdentifier:                             "abrupt-doctype-system-identifier",
	AbsenceOfDigitsInNumericCharacterReference:                "absence-of-digits-in-numeric-character-reference",
	CdataInHTMLContent:                                        "cdata-in-html-content",
	CharacterReferenceOutsideUnicodeRange:                     "character-reference-outside-unicode-range",
	ControlCharacterReference:                                 "control-character-reference",
	DuplicateAttribute:                                        "duplicate-attribute",
	EOFBeforeTagName:                                          "eof-before-tag-name",
	EOFInCdata:                                                "eof-in-cdata",
	EOFInComment:                                              "eof-in-comment",
	EOFInDoctype:                                              "eof-in-doctype",
	EOFInScriptHTMLCommentLikeText:                            "eof-in-script-html-comment-like-text",
	EOFInTag:                                                  "eof-in-tag",
	IncorrectlyClosedComment:                                  "incorrectly-closed-comment",
	IncorrectlyOpenedComment:                                  "incorrectly-opened-comment",
	InvalidCharacterSequenceAfterDoctypeName:                  "invalid-character-sequence-after-doctype-name",
	InvalidFirstCharacterOfTagName:                            "invalid-first-character-of-tag-name",
	MissingAttributeValue:                                     "missing-attribute-value",
	MissingDoctypeName:                                        "missing-doctype-name",
	MissingDoctypePublicIdentifier:                            "missing-doctype-public-identifier",
	MissingDoctypeSystemIdentifier:                            "missing-doctype-system-identifier",
	MissingEndTagName:                                         "missing-end-tag-name",
	MissingQuoteBeforeDoctypePublicIdentifier:                 "missing-quote-before-doctype-public-identifier",
	MissingQuoteBeforeDoctypeSystemIdentifier:                 "missing-quote-before-doctype-system-identifier",
	MissingSemicolonAfterCharacterReference:                   "missing-semicolon-after-character-reference",
	MissingWhitespaceAfterDoctypePublicKeyword:                "missing-whitespace-after-doctype-public-keyword",
	MissingWhitespaceAfterDoctypeSystemKeyword:                "missing-whitespace-after-doctype-system-keyword",
	MissingWhitespaceBeforeDoctypeName:                        "missing-whitespace-before-doctype-name",
	MissingWhitespaceBetweenAttributes:                        "missing-whitespace-between-attributes",
	MissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers: "missing-whitespace-between-doctype-public-and-system-identifiers",
	NestedComment:                                             "nested-comment",
	NoncharacterCharacterReference:                            "noncharacter-character-reference",
	NullCharacterReference:                                    "null-character-reference",
	SurrogateCharacterReference:                               "surrogate-character-reference",
	UnexpectedCharacterAfterDoctypeSystemIdentifier:           "unexpected-character-after-doctype-system-identifier",
	UnexpectedCharacterInAttributeName:                        "unexpected-character-in-attribute-name",
	UnexpectedCharacterInUnquotedAttributeValue:               "unexpected-character-in-unquoted-attribute-value",
	UnexpectedEqualsSignBeforeAttributeName:                   "unexpected-equals-sign-before-attribute-name",
	UnexpectedNullCharacter:                                   "unexpected-null-character",
	UnexpectedQuestionMarkInsteadOfTagName:                    "unexpected-question-mark-instead-of-tag-name",
	UnexpectedSolidusInTag:                                    "unexpected-solidus-in-tag",
	UnknownNamedCharacterReference:                            "unknown-named-character-reference",
	InvalidUTF8:                                               "invalid-utf8",
}

// messages maps kinds to their default human-readable descriptions.
var messages = [kindCount]string{
	AbruptClosingOfEmptyComment:                               "empty comment abruptly closed by '>'",
	AbruptDoctypePublicIdentifier:                             "'>' inside a DOCTYPE public identifier",
	AbruptDoctypeSystemIdentifier:                             "'>' inside a DOCTYPE system identifier",
	AbsenceOfDigitsInNumericCharacterReference:                "numeric character reference without digits",
	CdataInHTMLContent:                                        "CDATA section outside of foreign content",
	CharacterReferenceOutsideUnicodeRange:                     "character reference above U+10FFFF",
	ControlCharacterReference:                                 "character reference to a control character",
	DuplicateAttribute:                                        "attribute repeats an earlier attribute's name",
	EOFBeforeTagName:                                          "end of file where a tag name was expected",
	EOFInCdata:                                                "end of file inside a CDATA section",
	EOFInComment:                                              "end of file inside a comment",
	EOFInDoctype:                                              "end of file inside a DOCTYPE",
	EOFInScriptHTMLCommentLikeText:                            "end of file inside script comment-like text",
	EOFInTag:                                                  "end of file inside a tag",
	IncorrectlyClosedComment:                                  "comment closed by '--!>'",
	IncorrectlyOpenedComment:                                  "markup declaration that is not a comment, DOCTYPE, or CDATA section",
	InvalidCharacterSequenceAfterDoctypeName:                  "character sequence after DOCTYPE name is not PUBLIC or SYSTEM",
	InvalidFirstCharacterOfTagName:                            "invalid first character of a tag name",
	MissingAttributeValue:                                     "attribute value missing before '>'",
	MissingDoctypeName:                                        "DOCTYPE without a name",
	MissingDoctypePublicIdentifier:                            "DOCTYPE public identifier missing",
	MissingDoctypeSystemIdentifier:                            "DOCTYPE system identifier missing",
	MissingEndTagName:                                         "'</>' without an end tag name",
	MissingQuoteBeforeDoctypePublicIdentifier:                 "DOCTYPE public identifier not quoted",
	MissingQuoteBeforeDoctypeSystemIdentifier:                 "DOCTYPE system identifier not quoted",
	MissingSemicolonAfterCharacterReference:                   "character reference not terminated by ';'",
	MissingWhitespaceAfterDoctypePublicKeyword:                "missing whitespace after the PUBLIC keyword",
	MissingWhitespaceAfterDoctypeSystemKeyword:                "missing whitespace after the SYSTEM keyword",
	MissingWhitespaceBeforeDoctypeName:                        "missing whitespace before the DOCTYPE name",
	MissingWhitespaceBetweenAttributes:                        "missing whitespace between attributes",
	MissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers: "missing whitespace between DOCTYPE public and system identifiers",
	NestedComment:                                             "'<!--' inside a comment",
	NoncharacterCharacterReference:                            "character reference to a noncharacter",
	NullCharacterReference:                                    "character reference to U+0000",
	SurrogateCharacterReference:                               "character reference to a surrogate",
	UnexpectedCharacterAfterDoctypeSystemIdentifier:           "unexpected character after the DOCTYPE system identifier",
	UnexpectedCharacterInAttributeName:                        "quote or '<' in an attribute name",
	UnexpectedCharacterInUnquotedAttributeValue:               "unexpected character in an unquoted attribute value",
	UnexpectedEqualsSignBeforeAttributeName:                   "'=' before an attribute name",
	UnexpectedNullCharacter:                                   "unexpected U+0000 in input",
	UnexpectedQuestionMarkInsteadOfTagName:                    "'?' where a tag name was expected",
	UnexpectedSolidusInTag:                                    "'/' not followed by '>' in a tag",
	UnknownNamedCharacterReference:                            "named character reference not in the reference table",
	InvalidUTF8:                                               "byte sequence is not valid UTF-8",
}

// Code returns the stable kebab-case identifier for the kind.
func (k Kind) Code() string {
	if k < 0 || k >= kindCount {
		return "unknown"
	}
	return codes[k]
}

// Message returns the default human-readable message for the kind.
func (k Kind) Message() string {
	if k < 0 || k >= kindCount {
		return "unknown parse error"
	}
	return messages[k]
}

// String returns the kind's code.
func (k Kind) String() string {
	return k.Code()
}
