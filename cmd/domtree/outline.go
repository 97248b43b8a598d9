package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/jacoelho/dom"
)

// Each frame's payload slot holds the running node count of its
// subtree; exit callbacks fold the finished count into the parent
// frame's slot, so the root pop yields the document total.
const payloadSize = 8

// printer renders one outline line per visited node, indented by
// stack depth. Enter callbacks install the exit callback on the frame
// they just opened.
type printer struct {
	w     io.Writer
	log   *zap.Logger
	total uint64
	err   error
}

func (p *printer) table() *dom.CallbackTable {
	var table dom.CallbackTable
	for i := dom.ElementNode; i <= dom.NotationNode; i++ {
		table[i] = p.enter
	}
	return &table
}

func (p *printer) enter(s *dom.Stack, n *dom.Node, payload []byte) *dom.Node {
	if label := nodeLabel(n); label != "" {
		p.printf("%s%s\n", strings.Repeat("  ", s.Depth()-1), label)
	}
	p.log.Debug("enter",
		zap.Stringer("type", n.Type),
		zap.String("name", n.Name),
		zap.Int("depth", s.Depth()),
	)
	s.Top().SetExitCallback(p.exit)
	return n
}

func (p *printer) exit(s *dom.Stack, parent *dom.Node, payload []byte) {
	count := binary.LittleEndian.Uint64(payload) + 1
	if pf := s.Parent(); pf != nil {
		slot := pf.Payload()
		binary.LittleEndian.PutUint64(slot, binary.LittleEndian.Uint64(slot)+count)
	} else {
		p.total += count
	}
	returningTo := "none"
	if parent != nil {
		returningTo = nodeLabel(parent)
	}
	p.log.Debug("exit",
		zap.Stringer("type", s.Top().Node().Type),
		zap.Uint64("subtree", count),
		zap.String("to", returningTo),
	)
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	if _, err := fmt.Fprintf(p.w, format, args...); err != nil {
		p.err = err
	}
}

func nodeLabel(n *dom.Node) string {
	switch n.Type {
	case dom.DocumentNode:
		return "#document"
	case dom.ElementNode:
		return "<" + n.Name + ">"
	case dom.AttributeNode:
		return fmt.Sprintf("@%s=%q", n.Name, n.Value)
	case dom.TextNode:
		text := strings.TrimSpace(n.Value)
		if text == "" {
			return ""
		}
		return fmt.Sprintf("%q", text)
	case dom.CDATASectionNode:
		return fmt.Sprintf("#cdata %q", n.Value)
	case dom.CommentNode:
		return fmt.Sprintf("#comment %q", n.Value)
	case dom.ProcessingInstructionNode:
		return "<?" + n.Name + "?>"
	case dom.DocumentTypeNode:
		return "<!DOCTYPE " + n.Name + ">"
	default:
		return strings.TrimSpace(n.Type.String() + " " + n.Name)
	}
}
