package tagsoup

import (
	"context"
	"log/slog"
	"maps"
	"slices"

	"github.com/lestrrat-go/pdebug/v3"
	"github.com/lestrrat-go/tagsoup/node"
)

// treeBuilder turns a token sequence into a tree. All of its state is
// local to one Build call.
type treeBuilder struct {
	ctx      context.Context
	tlog     *slog.Logger
	mode     insertionMode
	root     *node.Element
	html     *node.Element
	head     *node.Element
	body     *node.Element
	open     elementStack
	maxDepth int
}

// Build constructs a tree from tokens, synthesizing the html, head and
// body elements when the markup omits them. The result is the synthetic
// root element; it is never nil.
func Build(ctx context.Context, tokens []Token, options ...ParseOption) *node.Element {
	cfg := newParseConfig(options)
	return build(ctx, tokens, cfg)
}

func build(ctx context.Context, tokens []Token, cfg parseConfig) *node.Element {
	if pdebug.Enabled {
		g := pdebug.Marker("Build (%d tokens)", len(tokens))
		defer g.End()
	}

	ctx, span := StartSpan(ctx, "tagsoup.Build")
	defer span.End()

	b := &treeBuilder{
		ctx:      ctx,
		tlog:     getTraceLogFromContext(ctx),
		mode:     initialMode,
		root:     node.NewRoot(),
		maxDepth: cfg.maxDepth,
	}

	for i := range tokens {
		b.process(&tokens[i])
	}
	b.finish()
	return b.root
}

// process runs tok through the handler of the current insertion mode,
// again and again for as long as the handler asks for the token to be
// reprocessed under a new mode.
func (b *treeBuilder) process(tok *Token) {
	for {
		var reprocess bool
		switch b.mode {
		case initialMode:
			reprocess = b.initial(tok)
		case beforeHTMLMode:
			reprocess = b.beforeHTML(tok)
		case beforeHeadMode:
			reprocess = b.beforeHead(tok)
		case inHeadMode:
			reprocess = b.inHead(tok)
		case afterHeadMode:
			reprocess = b.afterHead(tok)
		case inBodyMode:
			reprocess = b.inBody(tok)
		case afterBodyMode:
			reprocess = b.afterBody(tok)
		}
		if !reprocess {
			return
		}
	}
}

func (b *treeBuilder) switchMode(m insertionMode) {
	if pdebug.Enabled {
		pdebug.Printf("insertion mode %s -> %s", b.mode, m)
	}
	b.tlog.LogAttrs(b.ctx, slog.LevelDebug, "switch insertion mode",
		slog.String("from", b.mode.String()),
		slog.String("to", m.String()),
	)
	b.mode = m
}

// currentNode is the element new content is appended to
func (b *treeBuilder) currentNode() *node.Element {
	if e := b.open.PeekOne(); e != nil {
		return e
	}
	return b.root
}

// newElementFromToken creates an element for a tag token. Attributes
// are set in name order, as the token does not keep source order.
func newElementFromToken(tok *Token) *node.Element {
	e := node.NewElement(tok.Data)
	e.SetSelfClosing(tok.Kind == SelfClosingTagToken)
	for _, name := range slices.Sorted(maps.Keys(tok.Attrs)) {
		e.SetAttribute(name, tok.Attrs[name])
	}
	return e
}

// insert attaches e to the current node. When push is true e also
// becomes the current node. The depth cap only applies to content
// elements, never to html, head or body.
func (b *treeBuilder) insert(e *node.Element, push bool) {
	if err := b.currentNode().AddChild(e); err != nil {
		// only possible if e already has a parent, which a freshly
		// created element never does
		b.tlog.LogAttrs(b.ctx, slog.LevelDebug, "failed to attach element",
			slog.String("tag", e.LocalName()),
			slog.String("error", err.Error()),
		)
		return
	}
	if !push {
		return
	}
	if b.mode == inBodyMode && b.maxDepth > 0 && b.open.Len() >= b.maxDepth {
		b.tlog.LogAttrs(b.ctx, slog.LevelDebug, "maximum depth reached, element not opened",
			slog.String("tag", e.LocalName()),
			slog.Int("depth", b.open.Len()),
		)
		return
	}
	b.open.Push(e)
}

// synthesize creates and opens an element the markup left out
func (b *treeBuilder) synthesize(name string) *node.Element {
	b.tlog.LogAttrs(b.ctx, slog.LevelDebug, "synthesized element",
		slog.String("tag", name),
		slog.String("mode", b.mode.String()),
	)
	e := node.NewElement(name)
	if err := b.currentNode().AddChild(e); err == nil {
		b.open.Push(e)
	}
	return e
}

func (b *treeBuilder) insertText(tok *Token) {
	if err := b.currentNode().AddContent([]byte(tok.Data)); err != nil {
		b.tlog.LogAttrs(b.ctx, slog.LevelDebug, "failed to append text",
			slog.String("error", err.Error()),
		)
	}
}

// ignorable reports whether tok never contributes to the tree,
// whatever the insertion mode: comments, declarations, and text that
// is nothing but whitespace.
func ignorable(tok *Token) bool {
	switch tok.Kind {
	case CommentToken, DoctypeToken:
		return true
	case TextToken:
		return !hasVisible(tok.Data)
	}
	return false
}

func (b *treeBuilder) initial(tok *Token) bool {
	if ignorable(tok) {
		return false
	}
	b.switchMode(beforeHTMLMode)
	return true
}

func (b *treeBuilder) beforeHTML(tok *Token) bool {
	if ignorable(tok) {
		return false
	}
	if tok.Kind == StartTagToken && tok.Data == "html" {
		b.html = newElementFromToken(tok)
		if err := b.root.AddChild(b.html); err == nil {
			b.open.Push(b.html)
		}
		b.switchMode(beforeHeadMode)
		return false
	}

	b.html = b.synthesize("html")
	b.switchMode(beforeHeadMode)
	return true
}

func (b *treeBuilder) beforeHead(tok *Token) bool {
	if ignorable(tok) {
		return false
	}
	if tok.Kind == StartTagToken && tok.Data == "head" {
		b.head = newElementFromToken(tok)
		b.insert(b.head, true)
		b.switchMode(inHeadMode)
		return false
	}

	b.head = b.synthesize("head")
	b.switchMode(inHeadMode)
	return true
}

func (b *treeBuilder) inHead(tok *Token) bool {
	if ignorable(tok) {
		return false
	}

	switch tok.Kind {
	case TextToken:
		// content of title, style or script
		if cur := b.open.PeekOne(); cur != nil && node.IsLiteralTextElement(cur.LocalName()) {
			b.insertText(tok)
			return false
		}
	case SelfClosingTagToken:
		switch tok.Data {
		case "meta", "link", "base":
			b.insert(newElementFromToken(tok), false)
			return false
		}
	case StartTagToken:
		switch tok.Data {
		case "title", "style", "script":
			b.insert(newElementFromToken(tok), true)
			return false
		}
	case EndTagToken:
		if tok.Data == "head" {
			b.open.PopUntil("head")
			b.switchMode(afterHeadMode)
			return false
		}
		if cur := b.open.PeekOne(); cur != nil && cur != b.head && cur.LocalName() == tok.Data {
			b.open.PopTo(b.open.Len() - 1)
			return false
		}
	}

	// anything else ends the head
	if b.head != nil && b.open.Contains(b.head) {
		b.open.PopUntil("head")
	}
	b.switchMode(afterHeadMode)
	return true
}

func (b *treeBuilder) afterHead(tok *Token) bool {
	if ignorable(tok) {
		return false
	}
	if tok.Kind == StartTagToken {
		switch tok.Data {
		case "body":
			b.body = newElementFromToken(tok)
			b.insert(b.body, true)
			b.switchMode(inBodyMode)
			return false
		case "html":
			return false
		}
	}

	if b.body == nil {
		b.body = b.synthesize("body")
	}
	b.switchMode(inBodyMode)
	return true
}

func (b *treeBuilder) inBody(tok *Token) bool {
	switch tok.Kind {
	case CommentToken, DoctypeToken:
		return false
	case TextToken:
		if hasVisible(tok.Data) {
			b.insertText(tok)
		}
		return false
	case SelfClosingTagToken:
		b.insert(newElementFromToken(tok), false)
		return false
	case StartTagToken:
		b.insert(newElementFromToken(tok), true)
		return false
	case EndTagToken:
		if tok.Data == "body" {
			b.open.PopUntil("body")
			b.switchMode(afterBodyMode)
			return false
		}

		i := b.open.Lookup(tok.Data)
		if i < 0 {
			b.tlog.LogAttrs(b.ctx, slog.LevelDebug, "discarded unmatched close tag",
				slog.String("tag", tok.Data),
			)
			return false
		}
		b.open.PopTo(i)
		return false
	}
	return false
}

// afterBody hands trailing content back to in_body. The body is no
// longer open, so that content lands in whatever is: usually html.
func (b *treeBuilder) afterBody(tok *Token) bool {
	if ignorable(tok) {
		return false
	}
	b.switchMode(inBodyMode)
	return true
}

// finish runs once all tokens have been consumed
func (b *treeBuilder) finish() {
	if b.html == nil {
		// empty or blank input still produces a document element
		b.html = b.synthesize("html")
	}

	if b.body == nil {
		return
	}

	for _, e := range b.open.PopTo(0) {
		if e == b.html || e == b.body {
			continue
		}
		b.tlog.LogAttrs(b.ctx, slog.LevelDebug, "implicitly closed element at end of input",
			slog.String("tag", e.LocalName()),
		)
	}
}
