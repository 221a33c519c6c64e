package sax

import (
	"context"
	"errors"
)

var ErrHandlerUnspecified = errors.New("handler unspecified")

// ParsedElement describes a start tag
type ParsedElement interface {
	Name() string
	Attributes() []ParsedAttribute
	SelfClosing() bool
}

type ParsedAttribute interface {
	Name() string
	Value() string
}

// Handler receives the token stream of a document. The context is the
// one given to the parser.
type Handler interface {
	StartDocument(context.Context) error
	EndDocument(context.Context) error
	StartElement(context.Context, ParsedElement) error
	EndElement(context.Context, string) error
	Characters(context.Context, []byte) error
	Comment(context.Context, []byte) error
	Doctype(context.Context, string) error
}

// StartDocumentFunc defines the function type for SAX.StartDocumentHandler
type StartDocumentFunc func(ctx context.Context) error

// EndDocumentFunc defines the function type for SAX.EndDocumentHandler
type EndDocumentFunc func(ctx context.Context) error

// StartElementFunc defines the function type for SAX.StartElementHandler
type StartElementFunc func(ctx context.Context, elem ParsedElement) error

// EndElementFunc defines the function type for SAX.EndElementHandler
type EndElementFunc func(ctx context.Context, name string) error

// CharactersFunc defines the function type for SAX.CharactersHandler
type CharactersFunc func(ctx context.Context, content []byte) error

// CommentFunc defines the function type for SAX.CommentHandler
type CommentFunc func(ctx context.Context, content []byte) error

// DoctypeFunc defines the function type for SAX.DoctypeHandler
type DoctypeFunc func(ctx context.Context, value string) error

// SAX implements Handler by delegating to its function fields. Unset
// fields are no-ops.
type SAX struct {
	StartDocumentHandler StartDocumentFunc
	EndDocumentHandler   EndDocumentFunc
	StartElementHandler  StartElementFunc
	EndElementHandler    EndElementFunc
	CharactersHandler    CharactersFunc
	CommentHandler       CommentFunc
	DoctypeHandler       DoctypeFunc
}

var _ Handler = (*SAX)(nil)
