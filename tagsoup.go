// Package tagsoup turns loosely written HTML-like markup into a tree.
//
// Parsing never fails on the markup itself: unterminated constructs end
// up as text, unmatched close tags are dropped, and the html, head and
// body elements are synthesized when missing. The tree is returned as a
// *node.Element with the reserved name node.RootTagName; use the query
// functions in package node to search it.
package tagsoup

import (
	"bytes"
	"context"
	"io"

	"github.com/lestrrat-go/tagsoup/encoding"
	"github.com/lestrrat-go/tagsoup/node"
	"github.com/pkg/errors"
	"golang.org/x/text/transform"
)

// Parser holds a set of options for repeated parsing. A Parser keeps no
// state between calls, so it may be shared by goroutines.
type Parser struct {
	options []ParseOption
}

func NewParser(options ...ParseOption) *Parser {
	return &Parser{options: options}
}

// Parse tokenizes src and builds its tree
func Parse(ctx context.Context, src string, options ...ParseOption) *node.Element {
	return NewParser(options...).Parse(ctx, src)
}

// ParseBytes decodes b using the encoding given by WithEncoding (utf-8
// by default), then parses the result.
func ParseBytes(ctx context.Context, b []byte, options ...ParseOption) (*node.Element, error) {
	return NewParser(options...).ParseBytes(ctx, b)
}

// ParseReader is like ParseBytes, but reads the input from r
func ParseReader(ctx context.Context, r io.Reader, options ...ParseOption) (*node.Element, error) {
	return NewParser(options...).ParseReader(ctx, r)
}

func (p *Parser) Parse(ctx context.Context, src string) *node.Element {
	cfg := newParseConfig(p.options)
	return build(ctx, Tokenize(src), cfg)
}

func (p *Parser) ParseBytes(ctx context.Context, b []byte) (*node.Element, error) {
	return p.ParseReader(ctx, bytes.NewReader(b))
}

// ParseReader decodes r as it is tokenized, so the undecoded input is
// never held in memory as a whole.
func (p *Parser) ParseReader(ctx context.Context, r io.Reader) (*node.Element, error) {
	cfg := newParseConfig(p.options)
	enc := encoding.Load(cfg.encoding)
	if enc == nil {
		return nil, errors.Wrapf(ErrUnsupportedEncoding, `encoding '%s'`, cfg.encoding)
	}

	tokens, err := TokenizeReader(transform.NewReader(r, enc.NewDecoder()))
	if err != nil {
		return nil, errors.Wrapf(err, `failed to read input as '%s'`, cfg.encoding)
	}
	return build(ctx, tokens, cfg), nil
}
