// Package htmltree converts tolerant HTML5 parse trees into DOM trees
// suitable for traversal. Unlike xmltree it accepts fragmentary and
// malformed markup; the underlying parser repairs the document.
package htmltree

import (
	"fmt"
	"io"

	"golang.org/x/net/html"

	"github.com/jacoelho/dom"
)

// Parse reads HTML from r and returns the repaired document tree.
func Parse(r io.Reader) (*dom.Node, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("htmltree: parse: %w", err)
	}
	return convert(root), nil
}

type work struct {
	src    *html.Node
	parent *dom.Node
}

// convert maps the parsed tree onto the DOM node model without
// recursing. Siblings are queued before children, so each child list
// is filled in document order.
func convert(root *html.Node) *dom.Node {
	doc := dom.NewDocument()

	stack := []work{{src: root.FirstChild, parent: doc}}
	for len(stack) > 0 {
		w := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if w.src == nil {
			continue
		}

		n := newNode(w.src)
		if n != nil {
			w.parent.AppendChild(n)
		}

		if w.src.NextSibling != nil {
			stack = append(stack, work{src: w.src.NextSibling, parent: w.parent})
		}
		if n != nil && w.src.FirstChild != nil {
			stack = append(stack, work{src: w.src.FirstChild, parent: n})
		}
	}

	return doc
}

func newNode(src *html.Node) *dom.Node {
	switch src.Type {
	case html.ElementNode:
		el := dom.NewElement(src.Data)
		for _, a := range src.Attr {
			el.AppendAttribute(dom.NewAttribute(a.Key, a.Val))
		}
		return el
	case html.TextNode:
		return dom.NewText(src.Data)
	case html.CommentNode:
		return dom.NewComment(src.Data)
	case html.DoctypeNode:
		return dom.NewDocumentType(src.Data)
	default:
		// Raw and error nodes have no DOM counterpart.
		return nil
	}
}
