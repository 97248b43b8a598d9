// Package dom provides a non-recursive depth-first traversal engine for
// trees of heterogeneously-typed document nodes.
//
// Traversal state lives in an explicit, growable stack of frames rather
// than in native call frames, so traversal depth is bounded by a
// configurable limit instead of the goroutine stack, and enter/exit
// hooks can observe and veto whole subtrees. Document builders and
// parsers drive the same stack through Push, Pop and PopUntil to track
// their open-element context while constructing a tree.
package dom

// NodeType identifies the kind of a document node, using the W3C DOM
// numbering.
type NodeType int

const (
	ElementNode NodeType = iota + 1
	AttributeNode
	TextNode
	CDATASectionNode
	EntityReferenceNode
	EntityNode
	ProcessingInstructionNode
	CommentNode
	DocumentNode
	DocumentTypeNode
	DocumentFragmentNode
	NotationNode
)

// NodeTypes is the size of a table indexed by NodeType. Index 0 is
// unused so that NodeType values can index such tables directly.
const NodeTypes = int(NotationNode) + 1

func (t NodeType) valid() bool {
	return t >= ElementNode && t <= NotationNode
}

// String returns the DOM name of the node type.
func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "element"
	case AttributeNode:
		return "attribute"
	case TextNode:
		return "text"
	case CDATASectionNode:
		return "cdata-section"
	case EntityReferenceNode:
		return "entity-reference"
	case EntityNode:
		return "entity"
	case ProcessingInstructionNode:
		return "processing-instruction"
	case CommentNode:
		return "comment"
	case DocumentNode:
		return "document"
	case DocumentTypeNode:
		return "document-type"
	case DocumentFragmentNode:
		return "document-fragment"
	case NotationNode:
		return "notation"
	default:
		return "invalid"
	}
}

// EnterCallback is invoked when a node's frame has been pushed. The
// frame is already on the stack, so the callback sees it through Top.
// Returning a node (usually n itself) accepts the push; returning nil
// rejects it, retracting the frame as if the push never happened. A
// callback that rejects takes over responsibility for releasing the
// node.
type EnterCallback func(s *Stack, n *Node, payload []byte) *Node

// ExitCallback is invoked when a frame is popped. It receives the node
// of the frame beneath the one being popped (nil when the root frame
// itself is popped), together with the popped frame's payload.
type ExitCallback func(s *Stack, parent *Node, payload []byte)

// CallbackTable maps each node type to its enter callback. Entries may
// be nil; a nil entry accepts pushes of that type without dispatch.
type CallbackTable [NodeTypes]EnterCallback
