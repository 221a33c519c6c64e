package tagsoup

import (
	"fmt"
	"sort"
	"strings"
)

// TokenKind identifies the variant of a Token
type TokenKind int

const (
	TextToken TokenKind = iota + 1
	CommentToken
	DoctypeToken
	StartTagToken
	EndTagToken
	SelfClosingTagToken
)

func (k TokenKind) String() string {
	switch k {
	case TextToken:
		return "text"
	case CommentToken:
		return "comment"
	case DoctypeToken:
		return "doctype"
	case StartTagToken:
		return "open-tag"
	case EndTagToken:
		return "close-tag"
	case SelfClosingTagToken:
		return "self-close-tag"
	default:
		return "unknown"
	}
}

// Token is one lexical unit of markup. Only the fields relevant to
// Kind are populated: Data holds the text, comment or declaration
// value for those kinds, and the lowercased tag name for tag kinds.
// Attrs is only set for StartTagToken and SelfClosingTagToken.
type Token struct {
	Kind  TokenKind
	Data  string
	Attrs map[string]string
}

func (t Token) String() string {
	switch t.Kind {
	case StartTagToken, SelfClosingTagToken:
		var sb strings.Builder
		sb.WriteString(t.Kind.String())
		sb.WriteByte('(')
		sb.WriteString(t.Data)
		names := make([]string, 0, len(t.Attrs))
		for name := range t.Attrs {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(&sb, " %s=%q", name, t.Attrs[name])
		}
		sb.WriteByte(')')
		return sb.String()
	case EndTagToken:
		return t.Kind.String() + "(" + t.Data + ")"
	default:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Data)
	}
}
