package tagsoup_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/lestrrat-go/tagsoup"
	"github.com/lestrrat-go/tagsoup/sax"
	"github.com/stretchr/testify/require"
)

func newEventEmitter(out io.Writer) *sax.SAX {
	s := sax.New()
	s.StartDocumentHandler = func(_ context.Context) error {
		fmt.Fprintf(out, "SAX.StartDocument()\n")
		return nil
	}
	s.EndDocumentHandler = func(_ context.Context) error {
		fmt.Fprintf(out, "SAX.EndDocument()\n")
		return nil
	}
	s.DoctypeHandler = func(_ context.Context, value string) error {
		fmt.Fprintf(out, "SAX.Doctype(%s)\n", value)
		return nil
	}
	s.CommentHandler = func(_ context.Context, data []byte) error {
		fmt.Fprintf(out, "SAX.Comment(%s)\n", data)
		return nil
	}
	s.CharactersHandler = func(_ context.Context, data []byte) error {
		output := data
		if len(data) > 30 {
			output = data[:30]
		}
		fmt.Fprintf(out, "SAX.Characters(%s, %d)\n", output, len(data))
		return nil
	}
	s.StartElementHandler = func(_ context.Context, elem sax.ParsedElement) error {
		var attrs bytes.Buffer
		for _, attr := range elem.Attributes() {
			fmt.Fprintf(&attrs, ", %s='%s'", attr.Name(), attr.Value())
		}
		fmt.Fprintf(out, "SAX.StartElement(%s%s)\n", elem.Name(), attrs.String())
		return nil
	}
	s.EndElementHandler = func(_ context.Context, name string) error {
		fmt.Fprintf(out, "SAX.EndElement(%s)\n", name)
		return nil
	}
	return s
}

func TestParseSAX(t *testing.T) {
	const src = `<!DOCTYPE html><p id="a" class="b">hi<br></p><!--c--></div>`
	const expected = `SAX.StartDocument()
SAX.Doctype(DOCTYPE html)
SAX.StartElement(p, class='b', id='a')
SAX.Characters(hi, 2)
SAX.StartElement(br)
SAX.EndElement(br)
SAX.EndElement(p)
SAX.Comment(c)
SAX.EndElement(div)
SAX.EndDocument()
`

	var buf bytes.Buffer
	err := tagsoup.ParseSAX(context.Background(), src, newEventEmitter(&buf))
	require.NoError(t, err, `ParseSAX should succeed`)
	require.Equal(t, expected, buf.String())
}

func TestParseSAXLongText(t *testing.T) {
	const src = `abcdefghijklmnopqrstuvwxyz0123456789`

	var buf bytes.Buffer
	err := tagsoup.ParseSAX(context.Background(), src, newEventEmitter(&buf))
	require.NoError(t, err, `ParseSAX should succeed`)
	require.Contains(t, buf.String(), "SAX.Characters(abcdefghijklmnopqrstuvwxyz0123, 36)\n")
}

func TestParseSAXHandlerError(t *testing.T) {
	boom := errors.New("boom")

	var buf bytes.Buffer
	s := newEventEmitter(&buf)
	s.StartElementHandler = func(_ context.Context, elem sax.ParsedElement) error {
		if elem.Name() == "b" {
			return boom
		}
		return nil
	}

	err := tagsoup.ParseSAX(context.Background(), `<a>x</a><b>y</b><c>`, s)
	require.Error(t, err, `ParseSAX should fail`)
	require.ErrorIs(t, err, boom)
	require.NotContains(t, buf.String(), "SAX.Characters(y", `no events after the failing one`)
	require.NotContains(t, buf.String(), "SAX.EndDocument()")
}

func TestParseSAXNilHandler(t *testing.T) {
	err := tagsoup.ParseSAX(context.Background(), `<p>`, nil)
	require.ErrorIs(t, err, tagsoup.ErrNilHandler)
}
