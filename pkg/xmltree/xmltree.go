// Package xmltree builds DOM trees from XML documents. The builder is
// a consumer of the traversal stack: it tracks its open-element
// context by pushing and popping frames as tokens arrive, which keeps
// nesting depth bounded by the stack's limit instead of the input.
package xmltree

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/jacoelho/dom"
)

// Options configures document building.
type Options struct {
	// MaxDepth caps element nesting. Zero means dom.DefaultMaxDepth.
	MaxDepth int
}

// Parse reads a well-formed XML document from r and returns its DOM
// tree rooted at a document node.
func Parse(r io.Reader) (*dom.Node, error) {
	return ParseWithOptions(r, Options{})
}

// ParseWithOptions reads a document with explicit configuration.
func ParseWithOptions(r io.Reader, opts Options) (*dom.Node, error) {
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = dom.DefaultMaxDepth
	}

	doc := dom.NewDocument()
	s := dom.NewStackWithOptions(nil, nil, dom.Options{MaxDepth: maxDepth})
	defer s.Done()

	if _, ok := s.Push(doc); !ok {
		return nil, fmt.Errorf("xmltree: cannot open document frame")
	}

	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("xmltree: decode: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := dom.NewElement(t.Name.Local)
			for _, a := range t.Attr {
				el.AppendAttribute(dom.NewAttribute(a.Name.Local, a.Value))
			}
			parent := s.Top().Node()
			if _, ok := s.Push(el); !ok {
				// The stack destroyed the element on rejection; nothing
				// was attached to the tree yet.
				return nil, fmt.Errorf("xmltree: element nesting exceeds depth limit %d", maxDepth)
			}
			parent.AppendChild(el)

		case xml.EndElement:
			s.Pop()

		case xml.CharData:
			// The decoder reuses the token buffer; copy before keeping.
			s.Top().Node().AppendChild(dom.NewText(string(t)))

		case xml.Comment:
			s.Top().Node().AppendChild(dom.NewComment(string(t)))

		case xml.ProcInst:
			s.Top().Node().AppendChild(dom.NewProcessingInstruction(t.Target, string(t.Inst)))

		case xml.Directive:
			if name, ok := doctypeName(t); ok {
				s.Top().Node().AppendChild(dom.NewDocumentType(name))
			}
		}
	}

	return doc, nil
}

func doctypeName(d xml.Directive) (string, bool) {
	fields := bytes.Fields(bytes.TrimSpace(d))
	if len(fields) < 2 || !bytes.EqualFold(fields[0], []byte("DOCTYPE")) {
		return "", false
	}
	return string(fields[1]), true
}
