package sax

import "context"

func New() *SAX {
	return &SAX{}
}

func (s *SAX) StartDocument(ctx context.Context) error {
	if h := s.StartDocumentHandler; h != nil {
		return h(ctx)
	}
	return nil
}

func (s *SAX) EndDocument(ctx context.Context) error {
	if h := s.EndDocumentHandler; h != nil {
		return h(ctx)
	}
	return nil
}

func (s *SAX) StartElement(ctx context.Context, elem ParsedElement) error {
	if h := s.StartElementHandler; h != nil {
		return h(ctx, elem)
	}
	return nil
}

func (s *SAX) EndElement(ctx context.Context, name string) error {
	if h := s.EndElementHandler; h != nil {
		return h(ctx, name)
	}
	return nil
}

func (s *SAX) Characters(ctx context.Context, data []byte) error {
	if h := s.CharactersHandler; h != nil {
		return h(ctx, data)
	}
	return nil
}

func (s *SAX) Comment(ctx context.Context, data []byte) error {
	if h := s.CommentHandler; h != nil {
		return h(ctx, data)
	}
	return nil
}

func (s *SAX) Doctype(ctx context.Context, value string) error {
	if h := s.DoctypeHandler; h != nil {
		return h(ctx, value)
	}
	return nil
}
