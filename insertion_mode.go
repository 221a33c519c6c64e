package tagsoup

// insertionMode is the state of the tree builder
type insertionMode int

const (
	initialMode insertionMode = iota
	beforeHTMLMode
	beforeHeadMode
	inHeadMode
	afterHeadMode
	inBodyMode
	afterBodyMode
)

func (m insertionMode) String() string {
	switch m {
	case initialMode:
		return "initial"
	case beforeHTMLMode:
		return "before_html"
	case beforeHeadMode:
		return "before_head"
	case inHeadMode:
		return "in_head"
	case afterHeadMode:
		return "after_head"
	case inBodyMode:
		return "in_body"
	case afterBodyMode:
		return "after_body"
	default:
		return "unknown"
	}
}
