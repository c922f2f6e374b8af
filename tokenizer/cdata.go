package tokenizer

import (
	"github.com/htmlscan/htmlscan/errors"
	"github.com/htmlscan/htmlscan/stream"
)

func (t *Tokenizer) cdataSectionState(it stream.Item) bool {
	switch {
	case it.EOF:
		t.reportError(errors.EOFInCdata)
		t.emitEOF(it)
	case it.R == ']':
		t.state = CDATASectionBracketState
	default:
		// NUL passes through here; the tree builder filters it.
		t.emitChar(it.R)
	}
	return false
}

func (t *Tokenizer) cdataSectionBracketState(it stream.Item) bool {
	if !it.EOF && it.R == ']' {
		t.state = CDATASectionEndState
		return false
	}
	t.emitChar(']')
	t.state = CDATASectionState
	return true
}

func (t *Tokenizer) cdataSectionEndState(it stream.Item) bool {
	if !it.EOF {
		switch it.R {
		case ']':
			t.emitChar(']')
			return false
		case '>':
			t.state = DataState
			return false
		}
	}
	t.emitChar(']')
	t.emitChar(']')
	t.state = CDATASectionState
	return true
}
