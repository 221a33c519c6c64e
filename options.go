package tagsoup

import "github.com/lestrrat-go/option"

type Option = option.Interface

type identEncoding struct{}
type identMaxDepth struct{}

// ParseOption configures Parse, ParseBytes, ParseReader, Build and NewParser
type ParseOption interface {
	Option
	parseOption()
}

type parseOption struct{ Option }

func (*parseOption) parseOption() {}

// WithEncoding specifies the character encoding of byte input given to
// ParseBytes or ParseReader. The default is utf-8. It has no effect on
// Parse, which already receives text.
func WithEncoding(v string) ParseOption {
	return &parseOption{option.New(identEncoding{}, v)}
}

// WithMaxDepth caps the number of elements that may be open at once.
// Start tags found beyond the cap are attached to the innermost open
// element without being opened themselves, so their content becomes
// their following siblings. Zero (the default) means no cap.
func WithMaxDepth(v int) ParseOption {
	return &parseOption{option.New(identMaxDepth{}, v)}
}

type parseConfig struct {
	encoding string
	maxDepth int
}

func newParseConfig(options []ParseOption) parseConfig {
	cfg := parseConfig{encoding: "utf-8"}
	for _, o := range options {
		switch o.Ident() {
		case identEncoding{}:
			cfg.encoding = o.Value().(string)
		case identMaxDepth{}:
			cfg.maxDepth = o.Value().(int)
		}
	}
	return cfg
}
