package tokenizer

import (
	"fmt"
	"strings"
)

// TokenType represents the type of an emitted token.
type TokenType int

const (
	DoctypeToken TokenType = iota
	StartTagToken
	EndTagToken
	CommentToken
	CharacterToken
	EndOfFileToken
)

// String returns a string representation of the token type.
func (t TokenType) String() string {
	switch t {
	case DoctypeToken:
		return "DOCTYPE"
	case StartTagToken:
		return "StartTag"
	case EndTagToken:
		return "EndTag"
	case CommentToken:
		return "Comment"
	case CharacterToken:
		return "Character"
	case EndOfFileToken:
		return "EOF"
	default:
		return "Unknown"
	}
}

// Attribute is one name/value pair on a tag token. Names are lowercased as
// they are built; values hold the decoded code points, character
// references included.
type Attribute struct {
	Name  []rune
	Value []rune
}

// Token is one unit of tokenizer output. The Type discriminates which
// fields are meaningful:
//
//	DoctypeToken:   Name, PublicID/HasPublicID, SystemID/HasSystemID, ForceQuirks
//	StartTagToken:  Name, Attributes, SelfClosing
//	EndTagToken:    Name, Attributes, SelfClosing
//	CommentToken:   Data
//	CharacterToken: Char
//	EndOfFileToken: Offset
//
// Buffers grow one code point at a time while the token is being built;
// ownership passes to the sink on emission.
type Token struct {
	Type TokenType

	// Name is the tag name or DOCTYPE name.
	Name []rune

	// Data is the comment data.
	Data []rune

	// Char is the payload of a character token, a single code point.
	Char rune

	// PublicID and SystemID are the DOCTYPE identifiers. The Has flags
	// distinguish a missing identifier from a present-but-empty one.
	PublicID    []rune
	SystemID    []rune
	HasPublicID bool
	HasSystemID bool

	// ForceQuirks is the DOCTYPE force-quirks flag.
	ForceQuirks bool

	// SelfClosing is set on tags closed with "/>".
	SelfClosing bool

	// Attributes holds the tag's attributes in completion order. Names
	// are pairwise distinct; duplicates are dropped during tokenization.
	Attributes []Attribute

	// Offset is the total source length in bytes, set on EndOfFileToken.
	Offset uint64
}

// Attr returns the value of the named attribute and whether it is present.
func (t *Token) Attr(name string) (string, bool) {
	for i := range t.Attributes {
		if string(t.Attributes[i].Name) == name {
			return string(t.Attributes[i].Value), true
		}
	}
	return "", false
}

// String returns a compact, readable form of the token, used by debug
// logging and the corpus test expectations.
func (t Token) String() string {
	switch t.Type {
	case DoctypeToken:
		var sb strings.Builder
		fmt.Fprintf(&sb, "DOCTYPE(%s", string(t.Name))
		if t.HasPublicID {
			fmt.Fprintf(&sb, " public=%q", string(t.PublicID))
		}
		if t.HasSystemID {
			fmt.Fprintf(&sb, " system=%q", string(t.SystemID))
		}
		if t.ForceQuirks {
			sb.WriteString(" quirks")
		}
		sb.WriteString(")")
		return sb.String()
	case StartTagToken, EndTagToken:
		var sb strings.Builder
		if t.Type == StartTagToken {
			fmt.Fprintf(&sb, "StartTag(%s", string(t.Name))
		} else {
			fmt.Fprintf(&sb, "EndTag(%s", string(t.Name))
		}
		for _, a := range t.Attributes {
			fmt.Fprintf(&sb, " %s=%q", string(a.Name), string(a.Value))
		}
		if t.SelfClosing {
			sb.WriteString(" self-closing")
		}
		sb.WriteString(")")
		return sb.String()
	case CommentToken:
		return fmt.Sprintf("Comment(%q)", string(t.Data))
	case CharacterToken:
		return fmt.Sprintf("Character(%q)", string(t.Char))
	case EndOfFileToken:
		return fmt.Sprintf("EOF(%d)", t.Offset)
	default:
		return "Unknown"
	}
}
