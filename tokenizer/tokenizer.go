// Package tokenizer implements the WHATWG HTML tokenization algorithm: a
// pull-driven state machine that turns a byte stream into DOCTYPE, tag,
// comment, character, and end-of-file tokens, reporting parse errors to a
// side channel as it goes.
package tokenizer

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/htmlscan/htmlscan/entities"
	"github.com/htmlscan/htmlscan/errors"
	"github.com/htmlscan/htmlscan/internal/util/ascii"
	"github.com/htmlscan/htmlscan/stream"
)

// TokenSink receives emitted tokens in order. A returned error halts the
// tokenizer and propagates out of Run or Step.
type TokenSink interface {
	Accept(Token) error
}

// ErrorSink receives parse errors in detection order. Parse errors are
// never fatal.
type ErrorSink interface {
	AcceptError(errors.ParseError)
}

// Option configures a Tokenizer.
type Option func(*Tokenizer)

// WithErrorSink routes parse errors to sink instead of the default
// collector.
func WithErrorSink(sink ErrorSink) Option {
	return func(t *Tokenizer) { t.errs = sink }
}

// WithInitialState starts tokenization in a state other than data. Tree
// builders use this for fragment parsing inside RCDATA, RAWTEXT, script,
// and plaintext elements.
func WithInitialState(s State) Option {
	return func(t *Tokenizer) { t.state = s }
}

// WithLastStartTag seeds the appropriate-end-tag predicate, as if a start
// tag with the given name had just been emitted. Used together with
// WithInitialState for fragment parsing.
func WithLastStartTag(name string) Option {
	return func(t *Tokenizer) { t.lastStartTag = []rune(name) }
}

// WithForeignContent sets the adjusted-current-node flag supplied by the
// tree builder. When set, "<![CDATA[" opens a CDATA section; otherwise it
// is a bogus comment.
func WithForeignContent(foreign bool) Option {
	return func(t *Tokenizer) { t.foreign = foreign }
}

// WithLogger installs a trace logger. Emission and parse errors are
// logged at debug level. The default is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(t *Tokenizer) { t.log = log }
}

// Tokenizer is one tokenization run over one byte source. Instances are
// not safe for concurrent use and are not reusable across sources.
type Tokenizer struct {
	in   *stream.Reader
	sink TokenSink
	errs ErrorSink
	log  *zap.Logger

	// defaultErrs is the collector New installs; errs differs from it once
	// WithErrorSink has run.
	defaultErrs *errors.Collector

	state       State
	returnState State

	// queue holds pushed-back input items. Reconsume loops re-dispatch the
	// in-flight item directly; the queue is for replay scenarios where
	// several already-consumed items must pass through the machine again.
	queue []stream.Item

	// tok is the token being built, if any. Ownership moves to the sink
	// on emission.
	tok *Token

	// pendingAttr is the attribute being built. Once its name is final it
	// is placed in tok.Attributes at attrIndex, or dropped as a duplicate.
	pendingAttr Attribute
	attrIndex   int
	attrDropped bool
	attrStarted bool

	// tempBuf backs character references and the script double-escape
	// recognizer.
	tempBuf []rune

	// refItems holds the input items consumed by the named character
	// reference state, so unmatched trailing items can be replayed.
	// refNode is the trie position reached so far; refMatch and
	// refMatchLen track the longest terminal seen and its length within
	// tempBuf.
	refItems    []stream.Item
	refNode     entities.Node
	refMatch    *entities.Entity
	refMatchLen int

	// markupBuf and markupItems accumulate the characters after "<!"
	// while deciding between comment, DOCTYPE, and CDATA.
	markupBuf   []rune
	markupItems []stream.Item

	// doctypeKeywordBuf and doctypeKeywordItems accumulate the characters
	// after the DOCTYPE name while recognizing PUBLIC or SYSTEM.
	doctypeKeywordBuf   []rune
	doctypeKeywordItems []stream.Item

	charRefCode  uint64
	lastStartTag []rune
	foreign      bool

	// offset is the offset of the item currently being handled, used when
	// reporting parse errors.
	offset uint64

	done  bool
	fatal error
}

// New builds a tokenizer over src that delivers tokens to sink.
func New(src io.Reader, sink TokenSink, opts ...Option) *Tokenizer {
	def := &errors.Collector{}
	t := &Tokenizer{
		in:          stream.New(src),
		sink:        sink,
		errs:        def,
		defaultErrs: def,
		log:         zap.NewNop(),
		state:       DataState,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.in.SetInvalidUTF8Func(func(offset uint64) {
		t.errs.AcceptError(errors.New(errors.InvalidUTF8, offset))
	})
	return t
}

// Errors returns the default error collector, or nil when WithErrorSink
// replaced it.
func (t *Tokenizer) Errors() *errors.Collector {
	if c, ok := t.errs.(*errors.Collector); ok && c == t.defaultErrs {
		return c
	}
	return nil
}

// Run drives the tokenizer until the end-of-file token has been emitted
// or a fatal error occurs.
func (t *Tokenizer) Run() error {
	for {
		more, err := t.Step()
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

// Step consumes one input item, producing zero or more tokens. It returns
// false when tokenization has finished.
func (t *Tokenizer) Step() (bool, error) {
	if t.done || t.fatal != nil {
		return false, t.fatal
	}

	it := t.nextItem()
	if it.EOF {
		if err := t.in.Err(); err != nil {
			t.fatal = fmt.Errorf("reading byte source: %w", err)
			return false, t.fatal
		}
	}

	t.offset = it.Offset
	for t.handle(it) {
		if t.fatal != nil {
			return false, t.fatal
		}
	}
	if t.fatal != nil {
		return false, t.fatal
	}
	return !t.done, nil
}

// nextItem pops the replay queue or pulls from the input stream.
func (t *Tokenizer) nextItem() stream.Item {
	if len(t.queue) > 0 {
		it := t.queue[0]
		t.queue = t.queue[1:]
		return it
	}
	return t.in.Next()
}

// replay schedules items to pass through the machine again, ahead of any
// fresh input.
func (t *Tokenizer) replay(items ...stream.Item) {
	t.queue = append(items, t.queue...)
}

// handle dispatches one item to the current state's handler. A true
// return means the same item must be re-dispatched (reconsume).
func (t *Tokenizer) handle(it stream.Item) bool {
	switch t.state {
	case DataState:
		return t.dataState(it)
	case RCDATAState:
		return t.rcdataState(it)
	case RAWTEXTState:
		return t.rawtextState(it)
	case ScriptDataState:
		return t.scriptDataState(it)
	case PLAINTEXTState:
		return t.plaintextState(it)
	case TagOpenState:
		return t.tagOpenState(it)
	case EndTagOpenState:
		return t.endTagOpenState(it)
	case TagNameState:
		return t.tagNameState(it)
	case RCDATALessThanSignState:
		return t.lessThanSignState(it, RCDATAEndTagOpenState, RCDATAState)
	case RCDATAEndTagOpenState:
		return t.endTagOpenInTextState(it, RCDATAEndTagNameState, RCDATAState)
	case RCDATAEndTagNameState:
		return t.endTagNameInTextState(it, RCDATAState)
	case RAWTEXTLessThanSignState:
		return t.lessThanSignState(it, RAWTEXTEndTagOpenState, RAWTEXTState)
	case RAWTEXTEndTagOpenState:
		return t.endTagOpenInTextState(it, RAWTEXTEndTagNameState, RAWTEXTState)
	case RAWTEXTEndTagNameState:
		return t.endTagNameInTextState(it, RAWTEXTState)
	case ScriptDataLessThanSignState:
		return t.scriptDataLessThanSignState(it)
	case ScriptDataEndTagOpenState:
		return t.endTagOpenInTextState(it, ScriptDataEndTagNameState, ScriptDataState)
	case ScriptDataEndTagNameState:
		return t.endTagNameInTextState(it, ScriptDataState)
	case ScriptDataEscapeStartState:
		return t.scriptDataEscapeStartState(it)
	case ScriptDataEscapeStartDashState:
		return t.scriptDataEscapeStartDashState(it)
	case ScriptDataEscapedState:
		return t.scriptDataEscapedState(it)
	case ScriptDataEscapedDashState:
		return t.scriptDataEscapedDashState(it)
	case ScriptDataEscapedDashDashState:
		return t.scriptDataEscapedDashDashState(it)
	case ScriptDataEscapedLessThanSignState:
		return t.scriptDataEscapedLessThanSignState(it)
	case ScriptDataEscapedEndTagOpenState:
		return t.endTagOpenInTextState(it, ScriptDataEscapedEndTagNameState, ScriptDataEscapedState)
	case ScriptDataEscapedEndTagNameState:
		return t.endTagNameInTextState(it, ScriptDataEscapedState)
	case ScriptDataDoubleEscapeStartState:
		return t.scriptDataDoubleEscapeTransitionState(it, ScriptDataDoubleEscapedState, ScriptDataEscapedState)
	case ScriptDataDoubleEscapedState:
		return t.scriptDataDoubleEscapedState(it)
	case ScriptDataDoubleEscapedDashState:
		return t.scriptDataDoubleEscapedDashState(it)
	case ScriptDataDoubleEscapedDashDashState:
		return t.scriptDataDoubleEscapedDashDashState(it)
	case ScriptDataDoubleEscapedLessThanSignState:
		return t.scriptDataDoubleEscapedLessThanSignState(it)
	case ScriptDataDoubleEscapeEndState:
		return t.scriptDataDoubleEscapeTransitionState(it, ScriptDataEscapedState, ScriptDataDoubleEscapedState)
	case BeforeAttributeNameState:
		return t.beforeAttributeNameState(it)
	case AttributeNameState:
		return t.attributeNameState(it)
	case AfterAttributeNameState:
		return t.afterAttributeNameState(it)
	case BeforeAttributeValueState:
		return t.beforeAttributeValueState(it)
	case AttributeValueDoubleQuotedState:
		return t.attributeValueQuotedState(it, '"')
	case AttributeValueSingleQuotedState:
		return t.attributeValueQuotedState(it, '\'')
	case AttributeValueUnquotedState:
		return t.attributeValueUnquotedState(it)
	case AfterAttributeValueQuotedState:
		return t.afterAttributeValueQuotedState(it)
	case SelfClosingStartTagState:
		return t.selfClosingStartTagState(it)
	case BogusCommentState:
		return t.bogusCommentState(it)
	case MarkupDeclarationOpenState:
		return t.markupDeclarationOpenState(it)
	case CommentStartState:
		return t.commentStartState(it)
	case CommentStartDashState:
		return t.commentStartDashState(it)
	case CommentState:
		return t.commentState(it)
	case CommentLessThanSignState:
		return t.commentLessThanSignState(it)
	case CommentLessThanSignBangState:
		return t.commentLessThanSignBangState(it)
	case CommentLessThanSignBangDashState:
		return t.commentLessThanSignBangDashState(it)
	case CommentLessThanSignBangDashDashState:
		return t.commentLessThanSignBangDashDashState(it)
	case CommentEndDashState:
		return t.commentEndDashState(it)
	case CommentEndState:
		return t.commentEndState(it)
	case CommentEndBangState:
		return t.commentEndBangState(it)
	case DOCTYPEState:
		return t.doctypeState(it)
	case BeforeDOCTYPENameState:
		return t.beforeDoctypeNameState(it)
	case DOCTYPENameState:
		return t.doctypeNameState(it)
	case AfterDOCTYPENameState:
		return t.afterDoctypeNameState(it)
	case AfterDOCTYPEPublicKeywordState:
		return t.afterDoctypePublicKeywordState(it)
	case BeforeDOCTYPEPublicIdentifierState:
		return t.beforeDoctypePublicIdentifierState(it)
	case DOCTYPEPublicIdentifierDoubleQuotedState:
		return t.doctypePublicIdentifierQuotedState(it, '"')
	case DOCTYPEPublicIdentifierSingleQuotedState:
		return t.doctypePublicIdentifierQuotedState(it, '\'')
	case AfterDOCTYPEPublicIdentifierState:
		return t.afterDoctypePublicIdentifierState(it)
	case BetweenDOCTYPEPublicAndSystemIdentifiersState:
		return t.betweenDoctypePublicAndSystemIdentifiersState(it)
	case AfterDOCTYPESystemKeywordState:
		return t.afterDoctypeSystemKeywordState(it)
	case BeforeDOCTYPESystemIdentifierState:
		return t.beforeDoctypeSystemIdentifierState(it)
	case DOCTYPESystemIdentifierDoubleQuotedState:
		return t.doctypeSystemIdentifierQuotedState(it, '"')
	case DOCTYPESystemIdentifierSingleQuotedState:
		return t.doctypeSystemIdentifierQuotedState(it, '\'')
	case AfterDOCTYPESystemIdentifierState:
		return t.afterDoctypeSystemIdentifierState(it)
	case BogusDOCTYPEState:
		return t.bogusDoctypeState(it)
	case CDATASectionState:
		return t.cdataSectionState(it)
	case CDATASectionBracketState:
		return t.cdataSectionBracketState(it)
	case CDATASectionEndState:
		return t.cdataSectionEndState(it)
	case CharacterReferenceState:
		return t.characterReferenceState(it)
	case NamedCharacterReferenceState:
		return t.namedCharacterReferenceState(it)
	case AmbiguousAmpersandState:
		return t.ambiguousAmpersandState(it)
	case NumericCharacterReferenceState:
		return t.numericCharacterReferenceState(it)
	case HexadecimalCharacterReferenceStartState:
		return t.characterReferenceStartState(it, true)
	case DecimalCharacterReferenceStartState:
		return t.characterReferenceStartState(it, false)
	case HexadecimalCharacterReferenceState:
		return t.hexadecimalCharacterReferenceState(it)
	case DecimalCharacterReferenceState:
		return t.decimalCharacterReferenceState(it)
	case NumericCharacterReferenceEndState:
		return t.numericCharacterReferenceEndState(it)
	default:
		panic(fmt.Sprintf("tokenizer: unhandled state %v", t.state))
	}
}

// reportError sends a parse error for the item currently being handled.
func (t *Tokenizer) reportError(kind errors.Kind) {
	e := errors.New(kind, t.offset)
	t.log.Debug("parse error", zap.String("code", kind.Code()), zap.Uint64("offset", t.offset))
	t.errs.AcceptError(e)
}

// emit hands tok to the sink. A sink error is fatal.
func (t *Tokenizer) emit(tok Token) {
	t.log.Debug("emit", zap.String("token", tok.String()))
	if err := t.sink.Accept(tok); err != nil {
		t.fatal = fmt.Errorf("token sink rejected %s: %w", tok.Type, err)
	}
}

// emitChar emits one character token.
func (t *Tokenizer) emitChar(r rune) {
	t.emit(Token{Type: CharacterToken, Char: r})
}

// emitEOF emits the end-of-file token and halts the tokenizer.
func (t *Tokenizer) emitEOF(it stream.Item) {
	t.emit(Token{Type: EndOfFileToken, Offset: it.Offset})
	t.done = true
}

// emitCurrent finishes and emits the token under construction.
func (t *Tokenizer) emitCurrent() {
	tok := t.tok
	t.tok = nil
	if tok == nil {
		return
	}
	if tok.Type == StartTagToken || tok.Type == EndTagToken {
		t.finishAttribute()
	}
	if tok.Type == StartTagToken && !tok.SelfClosing {
		t.lastStartTag = append(t.lastStartTag[:0], tok.Name...)
	}
	t.emit(*tok)
}

// followStates maps element names whose content is not parsed as markup
// to the state their start tag switches into. The tree builder owns this
// decision in a full parser; carrying it here keeps the tokenizer usable
// standalone.
var followStates = map[string]State{
	"title":     RCDATAState,
	"textarea":  RCDATAState,
	"style":     RAWTEXTState,
	"xmp":       RAWTEXTState,
	"iframe":    RAWTEXTState,
	"noembed":   RAWTEXTState,
	"noframes":  RAWTEXTState,
	"script":    ScriptDataState,
	"plaintext": PLAINTEXTState,
}

// emitCurrentToData emits the token under construction and returns to the
// data state, or to the raw-content state the emitted start tag calls for.
func (t *Tokenizer) emitCurrentToData() {
	tok := t.tok
	t.emitCurrent()
	t.state = DataState
	if tok != nil && tok.Type == StartTagToken && !tok.SelfClosing {
		if next, ok := followStates[string(tok.Name)]; ok {
			t.state = next
		}
	}
}

// createTag starts a new start- or end-tag token.
func (t *Tokenizer) createTag(typ TokenType) {
	t.tok = &Token{Type: typ}
	t.attrStarted = false
}

// createComment starts a new comment token with the given initial data.
func (t *Tokenizer) createComment(data []rune) {
	t.tok = &Token{Type: CommentToken, Data: data}
}

// createDoctype starts a new DOCTYPE token.
func (t *Tokenizer) createDoctype() {
	t.tok = &Token{Type: DoctypeToken}
}

// startAttribute finishes any pending attribute and begins a new one with
// the given initial name runes.
func (t *Tokenizer) startAttribute(name ...rune) {
	t.finishAttribute()
	t.pendingAttr = Attribute{Name: append([]rune(nil), name...)}
	t.attrStarted = true
	t.attrIndex = -1
	t.attrDropped = false
}

// placeAttribute moves the pending attribute into the token's attribute
// list once its name is final, dropping it when the name duplicates an
// earlier attribute.
func (t *Tokenizer) placeAttribute() {
	if !t.attrStarted || t.attrIndex >= 0 || t.attrDropped {
		return
	}
	for i := range t.tok.Attributes {
		if string(t.tok.Attributes[i].Name) == string(t.pendingAttr.Name) {
			t.reportError(errors.DuplicateAttribute)
			t.attrDropped = true
			return
		}
	}
	t.tok.Attributes = append(t.tok.Attributes, t.pendingAttr)
	t.attrIndex = len(t.tok.Attributes) - 1
}

// finishAttribute closes out the pending attribute, if any.
func (t *Tokenizer) finishAttribute() {
	if !t.attrStarted {
		return
	}
	t.placeAttribute()
	t.attrStarted = false
	t.attrIndex = -1
	t.attrDropped = false
	t.pendingAttr = Attribute{}
}

// appendAttrName extends the pending attribute's name.
func (t *Tokenizer) appendAttrName(r rune) {
	t.pendingAttr.Name = append(t.pendingAttr.Name, r)
}

// appendAttrValue extends the current attribute's value. Appends to a
// dropped duplicate go nowhere.
func (t *Tokenizer) appendAttrValue(r rune) {
	if t.attrIndex >= 0 {
		a := &t.tok.Attributes[t.attrIndex]
		a.Value = append(a.Value, r)
		return
	}
	if !t.attrDropped {
		t.pendingAttr.Value = append(t.pendingAttr.Value, r)
	}
}

// appendName extends the current token's name.
func (t *Tokenizer) appendName(r rune) {
	t.tok.Name = append(t.tok.Name, r)
}

// appendData extends the current comment's data.
func (t *Tokenizer) appendData(r rune) {
	t.tok.Data = append(t.tok.Data, r)
}

// isAppropriateEndTag reports whether the end tag under construction
// matches the most recent not-self-closing start tag.
func (t *Tokenizer) isAppropriateEndTag() bool {
	if len(t.lastStartTag) == 0 || t.tok == nil {
		return false
	}
	return string(t.tok.Name) == string(t.lastStartTag)
}

// flushCharRef delivers the temporary buffer to the return state's
// output: the current attribute value inside attribute value states,
// character tokens everywhere else.
func (t *Tokenizer) flushCharRef() {
	if t.returnState.isAttributeValue() {
		for _, r := range t.tempBuf {
			t.appendAttrValue(r)
		}
		return
	}
	for _, r := range t.tempBuf {
		t.emitChar(r)
	}
}

// lowercased returns r folded to ASCII lower case.
func lowercased(r rune) rune {
	return ascii.ToLower(r)
}
