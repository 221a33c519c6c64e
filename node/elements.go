package node

var voidElements = map[string]struct{}{
	"area":   {},
	"base":   {},
	"br":     {},
	"col":    {},
	"embed":  {},
	"hr":     {},
	"img":    {},
	"input":  {},
	"keygen": {},
	"link":   {},
	"meta":   {},
	"param":  {},
	"source": {},
	"track":  {},
	"wbr":    {},
}

var rawTextElements = map[string]struct{}{
	"script": {},
	"style":  {},
}

var escapableRawTextElements = map[string]struct{}{
	"textarea": {},
	"title":    {},
}

// IsVoidElement reports whether elements named name can never have
// children or a closing tag.
func IsVoidElement(name string) bool {
	_, ok := voidElements[name]
	return ok
}

// IsRawTextElement reports whether the content of elements named name
// is captured verbatim (script, style).
func IsRawTextElement(name string) bool {
	_, ok := rawTextElements[name]
	return ok
}

// IsEscapableRawTextElement reports whether name is title or textarea.
// Character references are not decoded, so these behave like raw text.
func IsEscapableRawTextElement(name string) bool {
	_, ok := escapableRawTextElements[name]
	return ok
}

// IsLiteralTextElement is IsRawTextElement || IsEscapableRawTextElement
func IsLiteralTextElement(name string) bool {
	return IsRawTextElement(name) || IsEscapableRawTextElement(name)
}
