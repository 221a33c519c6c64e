package s11n

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lestrrat-go/tagsoup/node"
)

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", `"`, "&quot;")
)

// Dumper writes trees out. The zero value is ready to use. The style
// hooks are only consulted by DumpOutline; nil hooks leave text as is.
type Dumper struct {
	Indent    string
	TagStyle  func(string) string
	AttrStyle func(string) string
	TextStyle func(string) string
}

func style(f func(string) string, s string) string {
	if f == nil {
		return s
	}
	return f(s)
}

// DumpMarkup serializes n back to markup. The synthetic root element
// contributes only its children. Void elements get no close tag, and
// the content of script, style, title and textarea is written verbatim.
func (d *Dumper) DumpMarkup(out io.Writer, n node.Node) error {
	var sb strings.Builder
	writeMarkup(&sb, n, false)
	_, err := io.WriteString(out, sb.String())
	return err
}

func writeMarkup(sb *strings.Builder, n node.Node, raw bool) {
	switch n := n.(type) {
	case *node.Text:
		if raw {
			sb.WriteString(n.Value())
		} else {
			sb.WriteString(textEscaper.Replace(n.Value()))
		}
	case *node.Element:
		if n.IsRoot() {
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				writeMarkup(sb, c, false)
			}
			return
		}

		name := n.LocalName()
		sb.WriteByte('<')
		sb.WriteString(name)
		for _, attr := range n.Attributes() {
			sb.WriteByte(' ')
			sb.WriteString(attr.Name)
			sb.WriteString(`="`)
			sb.WriteString(attrEscaper.Replace(attr.Value))
			sb.WriteByte('"')
		}
		sb.WriteByte('>')

		if node.IsVoidElement(name) {
			return
		}

		childRaw := node.IsLiteralTextElement(name)
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			writeMarkup(sb, c, childRaw)
		}
		sb.WriteString("</")
		sb.WriteString(name)
		sb.WriteByte('>')
	}
}

// DumpOutline writes one line per node, indented by depth.
func (d *Dumper) DumpOutline(out io.Writer, n node.Node) error {
	indent := d.Indent
	if indent == "" {
		indent = "  "
	}

	var sb strings.Builder
	d.writeOutline(&sb, n, indent, 0)
	_, err := io.WriteString(out, sb.String())
	return err
}

func (d *Dumper) writeOutline(sb *strings.Builder, n node.Node, indent string, depth int) {
	sb.WriteString(strings.Repeat(indent, depth))
	switch n := n.(type) {
	case *node.Text:
		sb.WriteString(style(d.TextStyle, `"`+n.Value()+`"`))
		sb.WriteByte('\n')
	case *node.Element:
		sb.WriteString(style(d.TagStyle, n.LocalName()))
		for _, attr := range n.Attributes() {
			sb.WriteByte(' ')
			sb.WriteString(style(d.AttrStyle, attr.Name+`="`+attr.Value+`"`))
		}
		sb.WriteByte('\n')
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			d.writeOutline(sb, c, indent, depth+1)
		}
	}
}

type jsonElement struct {
	Type       string            `json:"type"`
	TagName    string            `json:"tagName"`
	Attributes map[string]string `json:"attributes"`
	Children   []any             `json:"children"`
}

type jsonText struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

func toJSONNode(n node.Node) any {
	switch n := n.(type) {
	case *node.Text:
		return jsonText{Type: "text", Value: n.Value()}
	case *node.Element:
		jn := jsonElement{
			Type:       "element",
			TagName:    n.LocalName(),
			Attributes: map[string]string{},
			Children:   []any{},
		}
		for _, attr := range n.Attributes() {
			jn.Attributes[attr.Name] = attr.Value
		}
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			jn.Children = append(jn.Children, toJSONNode(c))
		}
		return jn
	}
	return nil
}

// DumpJSON writes n as JSON objects of the form
// {"type":"element","tagName":...,"attributes":{...},"children":[...]}
// and {"type":"text","value":...}.
func (d *Dumper) DumpJSON(out io.Writer, n node.Node) error {
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	if d.Indent != "" {
		enc.SetIndent("", d.Indent)
	}
	return enc.Encode(toJSONNode(n))
}
