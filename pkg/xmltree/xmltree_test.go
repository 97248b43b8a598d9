package xmltree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacoelho/dom"
)

func TestParseBuildsDocumentTree(t *testing.T) {
	const input = `<?xml version="1.0"?><root id="r"><child>hi</child><!--note--></root>`

	doc, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, dom.DocumentNode, doc.Type)

	var pi, root *dom.Node
	for i := 0; i < doc.Children.Len(); i++ {
		c := doc.Children.Entry(i)
		switch c.Type {
		case dom.ProcessingInstructionNode:
			pi = c
		case dom.ElementNode:
			root = c
		}
	}

	require.NotNil(t, pi, "xml declaration not kept as a processing instruction")
	assert.Equal(t, "xml", pi.Name)

	require.NotNil(t, root, "root element missing")
	assert.Equal(t, "root", root.Name)
	require.Equal(t, 1, root.Attrs.Len())
	assert.Equal(t, "id", root.Attrs.Entry(0).Name)
	assert.Equal(t, "r", root.Attrs.Entry(0).Value)

	require.Equal(t, 2, root.Children.Len())
	child := root.Children.Entry(0)
	assert.Equal(t, dom.ElementNode, child.Type)
	assert.Equal(t, "child", child.Name)
	require.Equal(t, 1, child.Children.Len())
	assert.Equal(t, dom.TextNode, child.Children.Entry(0).Type)
	assert.Equal(t, "hi", child.Children.Entry(0).Value)
	assert.Equal(t, dom.CommentNode, root.Children.Entry(1).Type)
}

func TestParseDoctype(t *testing.T) {
	const input = `<!DOCTYPE html><html/>`

	doc, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	require.GreaterOrEqual(t, doc.Children.Len(), 2)
	doctype := doc.Children.Entry(0)
	assert.Equal(t, dom.DocumentTypeNode, doctype.Type)
	assert.Equal(t, "html", doctype.Name)
}

func TestParseWalkOrder(t *testing.T) {
	const input = `<div id="main"><span>x</span></div>`

	doc, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	var events []string
	var table dom.CallbackTable
	enter := func(s *dom.Stack, n *dom.Node, payload []byte) *dom.Node {
		switch n.Type {
		case dom.ElementNode:
			events = append(events, "element "+n.Name)
		case dom.AttributeNode:
			events = append(events, "attribute "+n.Name)
		case dom.TextNode:
			events = append(events, "text "+n.Value)
		case dom.DocumentNode:
			events = append(events, "document")
		}
		return n
	}
	for i := dom.ElementNode; i <= dom.NotationNode; i++ {
		table[i] = enter
	}

	s := dom.NewStack(nil, &table)
	defer s.Done()
	s.Walk(doc)

	assert.Equal(t, []string{
		"document",
		"element div",
		"attribute id",
		"element span",
		"text x",
	}, events)
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "unclosed element", input: `<a><b></a>`},
		{name: "stray end tag", input: `<a/></b>`},
		{name: "truncated", input: `<a`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestParseDepthLimit(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 10; i++ {
		b.WriteString("<a>")
	}
	for i := 0; i < 10; i++ {
		b.WriteString("</a>")
	}

	_, err := ParseWithOptions(strings.NewReader(b.String()), Options{MaxDepth: 4})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "depth limit")

	_, err = ParseWithOptions(strings.NewReader(b.String()), Options{MaxDepth: 16})
	assert.NoError(t, err)
}
