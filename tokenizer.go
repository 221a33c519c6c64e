package tagsoup

import (
	"bytes"
	"io"
	"strings"

	"github.com/lestrrat-go/pdebug/v3"
	"github.com/lestrrat-go/strcursor"
	"github.com/lestrrat-go/tagsoup/node"
)

const blanks = " \t\n\r\f"

// size of the read-ahead buffer of the byte cursor
const scanBufferSize = 4096

const maxEmptyReads = 100

var commentEnd = []byte("-->")

func isBlankCh(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func trimBlanks(s string) string {
	return strings.Trim(s, blanks)
}

func hasVisible(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isBlankCh(s[i]) {
			return true
		}
	}
	return false
}

// readRecorder keeps the first read error other than io.EOF. The cursor
// treats any read error as the end of the input, so this is the only
// place the error survives.
type readRecorder struct {
	rdr io.Reader
	err error
}

// A read of zero bytes without an error would also end the cursor, so
// those are retried, up to maxEmptyReads times in a row.
func (r *readRecorder) Read(p []byte) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	for range maxEmptyReads {
		n, err := r.rdr.Read(p)
		if n == 0 && err == nil {
			continue
		}
		if err != nil && err != io.EOF {
			r.err = err
		}
		return n, err
	}
	r.err = io.ErrNoProgress
	return 0, r.err
}

// tokenizer holds the state of a single tokenize call. The cursor is
// only ever asked for one byte at a time: a longer lookahead that runs
// into the end of the input would discard the bytes still buffered.
type tokenizer struct {
	cur    *strcursor.ByteCursor
	tokens []Token
}

func newTokenizer(r io.Reader) *tokenizer {
	return &tokenizer{cur: strcursor.NewByteCursor(r, scanBufferSize)}
}

// Tokenize splits src into tokens in a single left-to-right pass.
// Malformed constructs never fail: they are demoted to text, or end
// tokenizing when they run into the end of the input.
func Tokenize(src string) []Token {
	tokens, _ := tokenize(strings.NewReader(src))
	return tokens
}

// TokenizeReader is like Tokenize, but reads the markup from r as it
// goes. If reading fails, the tokens found so far are returned along
// with the error.
func TokenizeReader(r io.Reader) ([]Token, error) {
	return tokenize(r)
}

func tokenize(r io.Reader) ([]Token, error) {
	if pdebug.Enabled {
		g := pdebug.Marker("tokenize")
		defer g.End()
	}

	rr := &readRecorder{rdr: r}
	t := newTokenizer(rr)
	t.run()
	return t.tokens, rr.err
}

func (t *tokenizer) run() {
	for !t.cur.Done() {
		if t.peek() == '<' {
			t.advance()
			t.parseMarkup()
			continue
		}
		t.parseText()
	}
}

// peek returns the byte under the cursor. Only call it when the cursor
// is not done.
func (t *tokenizer) peek() byte {
	return byte(t.cur.Peek())
}

func (t *tokenizer) advance() {
	_ = t.cur.Advance(1)
}

// next consumes and returns the byte under the cursor
func (t *tokenizer) next() (byte, bool) {
	if t.cur.Done() {
		return 0, false
	}
	c := t.peek()
	t.advance()
	return c, true
}

// scanUntil appends bytes to buf up to the first delim, consuming the
// delimiter but leaving it out of buf. It reports false if the input
// ran out first.
func (t *tokenizer) scanUntil(buf []byte, delim byte) ([]byte, bool) {
	for {
		c, ok := t.next()
		if !ok {
			return buf, false
		}
		if c == delim {
			return buf, true
		}
		buf = append(buf, c)
	}
}

func (t *tokenizer) emit(tok Token) {
	if pdebug.Enabled {
		pdebug.Printf("emit %s (line %d)", tok, t.cur.LineNumber())
	}
	t.tokens = append(t.tokens, tok)
}

func (t *tokenizer) emitText(s string) {
	if !hasVisible(s) {
		return
	}
	t.emit(Token{Kind: TextToken, Data: s})
}

func (t *tokenizer) parseText() {
	var buf []byte
	for !t.cur.Done() {
		c := t.peek()
		if c == '<' {
			break
		}
		buf = append(buf, c)
		t.advance()
	}
	t.emitText(string(buf))
}

// parseMarkup is called with the cursor just past a '<'
func (t *tokenizer) parseMarkup() {
	if t.cur.Done() {
		t.emitText("<")
		return
	}

	switch t.peek() {
	case '!':
		t.advance()
		t.parseBang()
	case '/':
		t.advance()
		t.parseEndTag()
	default:
		t.parseStartTag()
	}
}

// parseBang is called with the cursor just past "<!"
func (t *tokenizer) parseBang() {
	var dashes []byte
	for len(dashes) < 2 && !t.cur.Done() && t.peek() == '-' {
		dashes = append(dashes, '-')
		t.advance()
	}
	if len(dashes) == 2 {
		t.parseComment()
		return
	}
	t.parseDeclaration(dashes)
}

// parseComment reads up to the first "-->". An unterminated comment
// takes the rest of the input as its value.
func (t *tokenizer) parseComment() {
	var buf []byte
	for {
		c, ok := t.next()
		if !ok {
			t.emit(Token{Kind: CommentToken, Data: string(buf)})
			return
		}
		buf = append(buf, c)
		if bytes.HasSuffix(buf, commentEnd) {
			t.emit(Token{Kind: CommentToken, Data: string(buf[:len(buf)-len(commentEnd)])})
			return
		}
	}
}

func (t *tokenizer) parseDeclaration(prefix []byte) {
	buf, ok := t.scanUntil(prefix, '>')
	if !ok {
		t.emitText("<!" + string(buf))
		return
	}
	t.emit(Token{Kind: DoctypeToken, Data: trimBlanks(string(buf))})
}

func (t *tokenizer) parseEndTag() {
	buf, ok := t.scanUntil(nil, '>')
	if !ok {
		t.emitText("</" + string(buf))
		return
	}
	name := strings.ToLower(trimBlanks(string(buf)))
	t.emit(Token{Kind: EndTagToken, Data: name})
}

func (t *tokenizer) parseStartTag() {
	body, ok := t.scanUntil(nil, '>')
	if !ok {
		t.emitText("<" + string(body))
		return
	}

	inner := trimBlanks(string(body))
	selfClosing := strings.HasSuffix(inner, "/")
	if selfClosing {
		inner = trimBlanks(inner[:len(inner)-1])
	}

	cursor := 0
	for cursor < len(inner) && !isBlankCh(inner[cursor]) {
		cursor++
	}
	name := strings.ToLower(inner[:cursor])
	if name == "" {
		// nothing that looks like a name: keep the raw markup as text
		t.emitText("<" + string(body) + ">")
		return
	}

	attrs := parseAttributes(inner[cursor:])
	if selfClosing || node.IsVoidElement(name) {
		t.emit(Token{Kind: SelfClosingTagToken, Data: name, Attrs: attrs})
		return
	}
	t.emit(Token{Kind: StartTagToken, Data: name, Attrs: attrs})

	if node.IsLiteralTextElement(name) {
		t.captureLiteralText(name)
	}
}

// captureLiteralText consumes the content of a raw text element up to
// its closing tag, matched case-insensitively. When the closing tag is
// missing, everything read past the start tag is scanned again as
// ordinary markup.
func (t *tokenizer) captureLiteralText(name string) {
	closing := "</" + name + ">"
	var buf []byte
	for {
		c, ok := t.next()
		if !ok {
			break
		}
		buf = append(buf, c)
		if hasSuffixFoldASCII(buf, closing) {
			t.emitText(string(buf[:len(buf)-len(closing)]))
			t.emit(Token{Kind: EndTagToken, Data: name})
			return
		}
	}

	if pdebug.Enabled {
		pdebug.Printf("no %s found, falling back to markup scanning", closing)
	}
	// the input is exhausted, so the cursor can be swapped for one over
	// the bytes just read
	t.cur = strcursor.NewByteCursor(bytes.NewReader(buf), scanBufferSize)
}

// hasSuffixFoldASCII reports whether b ends with sub, folding ASCII
// case only. sub must be lowercase ASCII.
func hasSuffixFoldASCII(b []byte, sub string) bool {
	if len(b) < len(sub) {
		return false
	}
	tail := b[len(b)-len(sub):]
	for i := range len(sub) {
		c := tail[i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != sub[i] {
			return false
		}
	}
	return true
}

// parseAttributes parses the attribute list of a tag, the part after
// the tag name. Names are lowercased, and a repeated name keeps the
// last value.
func parseAttributes(s string) map[string]string {
	attrs := make(map[string]string)
	cursor := 0
	skipBlanks := func() {
		for cursor < len(s) && isBlankCh(s[cursor]) {
			cursor++
		}
	}

	for cursor < len(s) {
		skipBlanks()
		if cursor >= len(s) {
			break
		}

		start := cursor
		for cursor < len(s) && !isBlankCh(s[cursor]) && s[cursor] != '=' {
			cursor++
		}
		name := strings.ToLower(s[start:cursor])
		if name == "" {
			break
		}

		skipBlanks()

		var value string
		if cursor < len(s) && s[cursor] == '=' {
			cursor++
			skipBlanks()

			if cursor < len(s) && (s[cursor] == '"' || s[cursor] == '\'') {
				quote := s[cursor]
				cursor++
				start := cursor
				for cursor < len(s) && s[cursor] != quote {
					cursor++
				}
				value = s[start:cursor]
				cursor++ // closing quote
			} else {
				start := cursor
				for cursor < len(s) && !isBlankCh(s[cursor]) && s[cursor] != '>' {
					cursor++
				}
				value = s[start:cursor]
			}
		}

		attrs[name] = value
	}
	return attrs
}
