package box

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const defaultElement = "div"

var attrAliases = map[string]string{
	"className": "class",
	"htmlFor":   "for",
}

// HTMLRenderer renders boxes as a single HTML element with inline style.
type HTMLRenderer struct{}

// NewHTMLRenderer returns an HTML renderer.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

// Render implements Renderer.
func (h *HTMLRenderer) Render(props Props) (string, error) {
	node := h.Node(props)

	var out strings.Builder
	if err := html.Render(&out, node); err != nil {
		return "", fmt.Errorf("render <%s>: %w", node.Data, err)
	}
	return out.String(), nil
}

// Node builds the element tree for props.
func (h *HTMLRenderer) Node(props Props) *html.Node {
	tag := strings.ToLower(strings.TrimSpace(props.As))
	if tag == "" {
		tag = defaultElement
	}

	node := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}

	keys := make([]string, 0, len(props.Attrs))
	for key := range props.Attrs {
		if key == ChildrenAttr {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value, ok := attrValue(props.Attrs[key])
		if !ok {
			continue
		}
		name := key
		if alias, exists := attrAliases[key]; exists {
			name = alias
		}
		node.Attr = append(node.Attr, html.Attribute{Key: name, Val: value})
	}

	if css := props.Style.CSS(); css != "" {
		node.Attr = append(node.Attr, html.Attribute{Key: "style", Val: css})
	}

	if content := props.Children(); content != "" {
		node.AppendChild(&html.Node{Type: html.TextNode, Data: content})
	}

	return node
}

// attrValue reports whether an attribute can be written as markup. Only
// scalars are; false booleans are omitted entirely.
func attrValue(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case bool:
		return "", v
	case string, int, int64, float64, float32, fmt.Stringer:
		return FormatValue(v), true
	default:
		return "", false
	}
}
