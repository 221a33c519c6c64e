package tagsoup

import "errors"

var (
	ErrUnsupportedEncoding = errors.New("unsupported encoding")
	ErrNilHandler          = errors.New("nil sax handler")
)
