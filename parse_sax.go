package tagsoup

import (
	"context"
	"sort"

	"github.com/lestrrat-go/tagsoup/sax"
	"github.com/pkg/errors"
)

type parsedElement struct {
	name        string
	attrs       []sax.ParsedAttribute
	selfClosing bool
}

func (e *parsedElement) Name() string { return e.name }
func (e *parsedElement) Attributes() []sax.ParsedAttribute { return e.attrs }
func (e *parsedElement) SelfClosing() bool { return e.selfClosing }

type parsedAttribute struct {
	name  string
	value string
}

func (a parsedAttribute) Name() string  { return a.name }
func (a parsedAttribute) Value() string { return a.value }

func newParsedElement(tok *Token) *parsedElement {
	names := make([]string, 0, len(tok.Attrs))
	for name := range tok.Attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	attrs := make([]sax.ParsedAttribute, len(names))
	for i, name := range names {
		attrs[i] = parsedAttribute{name: name, value: tok.Attrs[name]}
	}
	return &parsedElement{
		name:        tok.Data,
		attrs:       attrs,
		selfClosing: tok.Kind == SelfClosingTagToken,
	}
}

// ParseSAX tokenizes src and reports every token to h, in order,
// without building a tree. Self-closing tags are reported as a start
// event immediately followed by an end event. Attributes are reported
// sorted by name. The first error returned by h stops the parse.
func ParseSAX(ctx context.Context, src string, h sax.Handler) error {
	if h == nil {
		return ErrNilHandler
	}

	if err := h.StartDocument(ctx); err != nil {
		return errors.Wrap(err, `StartDocument failed`)
	}

	for _, tok := range Tokenize(src) {
		if err := dispatch(ctx, h, &tok); err != nil {
			return errors.Wrapf(err, `handler failed on %s`, tok.Kind)
		}
	}

	if err := h.EndDocument(ctx); err != nil {
		return errors.Wrap(err, `EndDocument failed`)
	}
	return nil
}

func dispatch(ctx context.Context, h sax.Handler, tok *Token) error {
	switch tok.Kind {
	case TextToken:
		return h.Characters(ctx, []byte(tok.Data))
	case CommentToken:
		return h.Comment(ctx, []byte(tok.Data))
	case DoctypeToken:
		return h.Doctype(ctx, tok.Data)
	case StartTagToken:
		return h.StartElement(ctx, newParsedElement(tok))
	case SelfClosingTagToken:
		if err := h.StartElement(ctx, newParsedElement(tok)); err != nil {
			return err
		}
		return h.EndElement(ctx, tok.Data)
	case EndTagToken:
		return h.EndElement(ctx, tok.Data)
	}
	return nil
}
