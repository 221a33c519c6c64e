package tagsoup_test

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/lestrrat-go/tagsoup"
	"github.com/stretchr/testify/require"
)

func tokenStrings(tokens []tagsoup.Token) []string {
	list := make([]string, len(tokens))
	for i, tok := range tokens {
		list[i] = tok.String()
	}
	return list
}

func TestTokenize(t *testing.T) {
	testcases := []struct {
		Name     string
		Input    string
		Expected []string
	}{
		{
			Name:     "simple element",
			Input:    `<p>hi</p>`,
			Expected: []string{`open-tag(p)`, `text("hi")`, `close-tag(p)`},
		},
		{
			Name:     "comment and declaration",
			Input:    `<!DOCTYPE html><!-- note -->`,
			Expected: []string{`doctype("DOCTYPE html")`, `comment(" note ")`},
		},
		{
			Name:     "unterminated comment",
			Input:    `a<!-- never closed <p>`,
			Expected: []string{`text("a")`, `comment(" never closed <p>")`},
		},
		{
			Name:     "unterminated declaration",
			Input:    `<!DOCTYPE html`,
			Expected: []string{`text("<!DOCTYPE html")`},
		},
		{
			Name:     "unterminated close tag",
			Input:    `a</div`,
			Expected: []string{`text("a")`, `text("</div")`},
		},
		{
			Name:     "unterminated open tag",
			Input:    `x <a href="y"`,
			Expected: []string{`text("x ")`, `text("<a href=\"y\"")`},
		},
		{
			Name:     "tag names are lowercased",
			Input:    `<DIV></Div >`,
			Expected: []string{`open-tag(div)`, `close-tag(div)`},
		},
		{
			Name:  "attributes",
			Input: `<div class="a b" id='x' hidden data-v=1 CLASS="c">`,
			Expected: []string{
				`open-tag(div class="c" data-v="1" hidden="" id="x")`,
			},
		},
		{
			Name:     "unterminated attribute quote",
			Input:    `<div title="open>x`,
			Expected: []string{`open-tag(div title="open")`, `text("x")`},
		},
		{
			Name:  "void and self-closing tags",
			Input: `<br><img src=a.png/><x-widget />`,
			Expected: []string{
				`self-close-tag(br)`,
				`self-close-tag(img src="a.png")`,
				`self-close-tag(x-widget)`,
			},
		},
		{
			Name:     "nameless tag becomes text",
			Input:    `< >text`,
			Expected: []string{`text("< >")`, `text("text")`},
		},
		{
			Name:     "script content is captured verbatim",
			Input:    `<script>if (a < b) {}</script>`,
			Expected: []string{`open-tag(script)`, `text("if (a < b) {}")`, `close-tag(script)`},
		},
		{
			Name:     "closing tag found regardless of case",
			Input:    `<style>p > b {}</STYLE>`,
			Expected: []string{`open-tag(style)`, `text("p > b {}")`, `close-tag(style)`},
		},
		{
			Name:     "title keeps markup-looking text",
			Input:    `<title>a <b> c</title>`,
			Expected: []string{`open-tag(title)`, `text("a <b> c")`, `close-tag(title)`},
		},
		{
			Name:     "raw text without closing tag falls back to markup scanning",
			Input:    `<script>var x = 1;<p>`,
			Expected: []string{`open-tag(script)`, `text("var x = 1;")`, `open-tag(p)`},
		},
		{
			Name:     "whitespace-only raw text is dropped",
			Input:    "<script> \n </script>",
			Expected: []string{`open-tag(script)`, `close-tag(script)`},
		},
		{
			Name:     "empty comment",
			Input:    `a<!---->b`,
			Expected: []string{`text("a")`, `comment("")`, `text("b")`},
		},
		{
			Name:     "dashes without a comment opener",
			Input:    `<!-x><!-`,
			Expected: []string{`doctype("-x")`, `text("<!-")`},
		},
		{
			Name:     "lone angle bracket at end of input",
			Input:    `a <`,
			Expected: []string{`text("a ")`, `text("<")`},
		},
		{
			Name:     "nested fallback",
			Input:    `<script>a<title>b`,
			Expected: []string{`open-tag(script)`, `text("a")`, `open-tag(title)`, `text("b")`},
		},
		{
			Name:     "whitespace-only text is dropped",
			Input:    "<ul>\n  <li>a</li>\n</ul>",
			Expected: []string{`open-tag(ul)`, `open-tag(li)`, `text("a")`, `close-tag(li)`, `close-tag(ul)`},
		},
	}

	for _, tc := range testcases {
		t.Run(tc.Name, func(t *testing.T) {
			require.Equal(t, tc.Expected, tokenStrings(tagsoup.Tokenize(tc.Input)))
		})
	}
}

func TestTokenizeEmpty(t *testing.T) {
	require.Empty(t, tagsoup.Tokenize(""))
	require.Empty(t, tagsoup.Tokenize(" \t\r\n\f "))
}

func TestTokenAttributes(t *testing.T) {
	tokens := tagsoup.Tokenize(`<a href="1" HREF='2' target=_blank>`)
	require.Len(t, tokens, 1)

	tok := tokens[0]
	require.Equal(t, tagsoup.StartTagToken, tok.Kind)
	require.Equal(t, "a", tok.Data)
	require.Equal(t, map[string]string{"href": "2", "target": "_blank"}, tok.Attrs)
}

func TestTokenKindString(t *testing.T) {
	require.Equal(t, "text", tagsoup.TextToken.String())
	require.Equal(t, "comment", tagsoup.CommentToken.String())
	require.Equal(t, "doctype", tagsoup.DoctypeToken.String())
	require.Equal(t, "open-tag", tagsoup.StartTagToken.String())
	require.Equal(t, "close-tag", tagsoup.EndTagToken.String())
	require.Equal(t, "self-close-tag", tagsoup.SelfClosingTagToken.String())
	require.Equal(t, "unknown", tagsoup.TokenKind(0).String())
}

func TestTokenString(t *testing.T) {
	require.Equal(t, `close-tag(li)`, tagsoup.Token{Kind: tagsoup.EndTagToken, Data: "li"}.String())
	require.Equal(t, `open-tag(a href="x")`, tagsoup.Token{Kind: tagsoup.StartTagToken, Data: "a", Attrs: map[string]string{"href": "x"}}.String())
	require.Equal(t, `text("a b")`, tagsoup.Token{Kind: tagsoup.TextToken, Data: "a b"}.String())
}

func TestTokenizeReader(t *testing.T) {
	const src = `<!DOCTYPE html><!-- c --><p class=x>one</p><script>if (a < b) {}</SCRIPT><br/>tail`
	expected := tokenStrings(tagsoup.Tokenize(src))

	t.Run("one byte at a time", func(t *testing.T) {
		tokens, err := tagsoup.TokenizeReader(iotest.OneByteReader(strings.NewReader(src)))
		require.NoError(t, err, `TokenizeReader should succeed`)
		require.Equal(t, expected, tokenStrings(tokens))
	})
	t.Run("half reads", func(t *testing.T) {
		tokens, err := tagsoup.TokenizeReader(iotest.HalfReader(strings.NewReader(src)))
		require.NoError(t, err, `TokenizeReader should succeed`)
		require.Equal(t, expected, tokenStrings(tokens))
	})
	t.Run("input larger than the read buffer", func(t *testing.T) {
		long := strings.Repeat(src, 500)
		tokens, err := tagsoup.TokenizeReader(strings.NewReader(long))
		require.NoError(t, err, `TokenizeReader should succeed`)
		require.Equal(t, tokenStrings(tagsoup.Tokenize(long)), tokenStrings(tokens))
		require.Len(t, tokens, len(expected)*500)
	})
	t.Run("read error", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := tagsoup.TokenizeReader(iotest.ErrReader(boom))
		require.ErrorIs(t, err, boom)
	})
}
