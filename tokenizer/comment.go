package tokenizer

import (
	"strings"

	"github.com/htmlscan/htmlscan/errors"
	"github.com/htmlscan/htmlscan/stream"
)

func (t *Tokenizer) bogusCommentState(it stream.Item) bool {
	switch {
	case it.EOF:
		t.emitCurrent()
		t.emitEOF(it)
	case it.R == '>':
		t.emitCurrent()
		t.state = DataState
	case it.R == 0:
		t.reportError(errors.UnexpectedNullCharacter)
		t.appendData(stream.ReplacementChar)
	default:
		t.appendData(it.R)
	}
	return false
}

// markupDeclarationOpenState decides between "--" (comment), a
// case-insensitive "DOCTYPE", and "[CDATA[" by accumulating up to seven
// characters. The consumed items are kept so a mismatch can replay them
// through the bogus comment state, which reproduces the lookahead
// behavior of the specification without lookahead.
func (t *Tokenizer) markupDeclarationOpenState(it stream.Item) bool {
	if it.EOF {
		t.openBogusFromMarkup(it)
		return false
	}

	t.markupBuf = append(t.markupBuf, it.R)
	t.markupItems = append(t.markupItems, it)

	switch t.markupBuf[0] {
	case '-':
		if len(t.markupBuf) == 2 {
			if t.markupBuf[1] == '-' {
				t.createComment(nil)
				t.state = CommentStartState
				return false
			}
			t.openBogusFromMarkup(stream.Item{})
			return false
		}
	case 'd', 'D':
		const keyword = "doctype"
		prefix := strings.ToLower(string(t.markupBuf))
		if !strings.HasPrefix(keyword, prefix) {
			t.openBogusFromMarkup(stream.Item{})
			return false
		}
		if len(t.markupBuf) == len(keyword) {
			t.state = DOCTYPEState
		}
	case '[':
		const keyword = "[CDATA["
		prefix := string(t.markupBuf)
		if !strings.HasPrefix(keyword, prefix) {
			t.openBogusFromMarkup(stream.Item{})
			return false
		}
		if len(t.markupBuf) == len(keyword) {
			if t.foreign {
				t.state = CDATASectionState
			} else {
				t.reportError(errors.CdataInHTMLContent)
				t.createComment([]rune(keyword))
				t.state = BogusCommentState
			}
		}
	default:
		t.openBogusFromMarkup(stream.Item{})
	}
	return false
}

// openBogusFromMarkup handles the markup-declaration-open mismatch path:
// report the error, open an empty comment, and replay whatever was
// consumed through the bogus comment state. A non-zero eof item is
// appended to the replay so the bogus comment state sees it too.
func (t *Tokenizer) openBogusFromMarkup(eof stream.Item) {
	t.reportError(errors.IncorrectlyOpenedComment)
	t.createComment(nil)
	t.state = BogusCommentState
	if eof.EOF {
		t.replay(append(append([]stream.Item(nil), t.markupItems...), eof)...)
	} else {
		t.replay(append([]stream.Item(nil), t.markupItems...)...)
	}
	t.markupBuf = t.markupBuf[:0]
	t.markupItems = t.markupItems[:0]
}

func (t *Tokenizer) commentStartState(it stream.Item) bool {
	if !it.EOF {
		switch it.R {
		case '-':
			t.state = CommentStartDashState
			return false
		case '>':
			t.reportError(errors.AbruptClosingOfEmptyComment)
			t.emitCurrent()
			t.state = DataState
			return false
		}
	}
	t.state = CommentState
	return true
}

func (t *Tokenizer) commentStartDashState(it stream.Item) bool {
	if it.EOF {
		t.reportError(errors.EOFInComment)
		t.emitCurrent()
		t.emitEOF(it)
		return false
	}

	switch it.R {
	case '-':
		t.state = CommentEndState
	case '>':
		t.reportError(errors.AbruptClosingOfEmptyComment)
		t.emitCurrent()
		t.state = DataState
	default:
		t.appendData('-')
		t.state = CommentState
		return true
	}
	return false
}

func (t *Tokenizer) commentState(it stream.Item) bool {
	switch {
	case it.EOF:
		t.reportError(errors.EOFInComment)
		t.emitCurrent()
		t.emitEOF(it)
	case it.R == '<':
		t.appendData(it.R)
		t.state = CommentLessThanSignState
	case it.R == '-':
		t.state = CommentEndDashState
	case it.R == 0:
		t.reportError(errors.UnexpectedNullCharacter)
		t.appendData(stream.ReplacementChar)
	default:
		t.appendData(it.R)
	}
	return false
}

func (t *Tokenizer) commentLessThanSignState(it stream.Item) bool {
	if !it.EOF {
		switch it.R {
		case '!':
			t.appendData(it.R)
			t.state = CommentLessThanSignBangState
			return false
		case '<':
			t.appendData(it.R)
			return false
		}
	}
	t.state = CommentState
	return true
}

func (t *Tokenizer) commentLessThanSignBangState(it stream.Item) bool {
	if !it.EOF && it.R == '-' {
		t.state = CommentLessThanSignBangDashState
		return false
	}
	t.state = CommentState
	return true
}

func (t *Tokenizer) commentLessThanSignBangDashState(it stream.Item) bool {
	if !it.EOF && it.R == '-' {
		t.state = CommentLessThanSignBangDashDashState
		return false
	}
	t.state = CommentEndDashState
	return true
}

func (t *Tokenizer) commentLessThanSignBangDashDashState(it stream.Item) bool {
	if !it.EOF && it.R != '>' {
		t.reportError(errors.NestedComment)
	}
	t.state = CommentEndState
	return true
}

func (t *Tokenizer) commentEndDashState(it stream.Item) bool {
	if it.EOF {
		t.reportError(errors.EOFInComment)
		t.emitCurrent()
		t.emitEOF(it)
		return false
	}

	if it.R == '-' {
		t.state = CommentEndState
		return false
	}
	t.appendData('-')
	t.state = CommentState
	return true
}

func (t *Tokenizer) commentEndState(it stream.Item) bool {
	if it.EOF {
		t.reportError(errors.EOFInComment)
		t.emitCurrent()
		t.emitEOF(it)
		return false
	}

	switch it.R {
	case '>':
		t.emitCurrent()
		t.state = DataState
	case '!':
		t.state = CommentEndBangState
	case '-':
		t.appendData('-')
	default:
		t.appendData('-')
		t.appendData('-')
		t.state = CommentState
		return true
	}
	return false
}

func (t *Tokenizer) commentEndBangState(it stream.Item) bool {
	if it.EOF {
		t.reportError(errors.EOFInComment)
		t.emitCurrent()
		t.emitEOF(it)
		return false
	}

	switch it.R {
	case '-':
		t.appendData('-')
		t.appendData('-')
		t.appendData('!')
		t.state = CommentEndDashState
	case '>':
		t.reportError(errors.IncorrectlyClosedComment)
		t.emitCurrent()
		t.state = DataState
	default:
		t.appendData('-')
		t.appendData('-')
		t.appendData('!')
		t.state = CommentState
		return true
	}
	return false
}
