package dom

// Node is one document node. Name and Value carry the type-specific
// identifying string and content (element tag, attribute name/value,
// text data, processing-instruction target/data, and so on). The list
// fields are populated per type: Children for documents, elements and
// fragments; Attrs for element attribute maps and processing-
// instruction pseudo-attributes; Entities and Notations for document
// types. Unused lists stay nil.
type Node struct {
	Type  NodeType
	Name  string
	Value string

	Children  *NodeList
	Attrs     *NodeList
	Entities  *NodeList
	Notations *NodeList
}

// NodeList is an ordered list of nodes. A nil *NodeList behaves as an
// empty list for all read operations.
type NodeList struct {
	entries []*Node
}

// Len returns the number of entries in the list.
func (l *NodeList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.entries)
}

// HasMember reports whether index i refers to a valid entry.
func (l *NodeList) HasMember(i int) bool {
	return l != nil && i >= 0 && i < len(l.entries)
}

// Entry returns the entry at index i, or nil if out of range.
func (l *NodeList) Entry(i int) *Node {
	if !l.HasMember(i) {
		return nil
	}
	return l.entries[i]
}

// Append adds a node to the end of the list.
func (l *NodeList) Append(n *Node) {
	l.entries = append(l.entries, n)
}

// NewDocument returns a document node.
func NewDocument() *Node {
	return &Node{Type: DocumentNode}
}

// NewElement returns an element node with the given tag name.
func NewElement(name string) *Node {
	return &Node{Type: ElementNode, Name: name}
}

// NewAttribute returns an attribute node.
func NewAttribute(name, value string) *Node {
	return &Node{Type: AttributeNode, Name: name, Value: value}
}

// NewText returns a text node.
func NewText(data string) *Node {
	return &Node{Type: TextNode, Value: data}
}

// NewCDATASection returns a CDATA section node.
func NewCDATASection(data string) *Node {
	return &Node{Type: CDATASectionNode, Value: data}
}

// NewComment returns a comment node.
func NewComment(data string) *Node {
	return &Node{Type: CommentNode, Value: data}
}

// NewProcessingInstruction returns a processing-instruction node with
// the given target and data.
func NewProcessingInstruction(target, data string) *Node {
	return &Node{Type: ProcessingInstructionNode, Name: target, Value: data}
}

// NewDocumentType returns a document-type node.
func NewDocumentType(name string) *Node {
	return &Node{Type: DocumentTypeNode, Name: name}
}

// NewDocumentFragment returns a document-fragment node.
func NewDocumentFragment() *Node {
	return &Node{Type: DocumentFragmentNode}
}

// NewEntity returns an entity node.
func NewEntity(name, value string) *Node {
	return &Node{Type: EntityNode, Name: name, Value: value}
}

// NewEntityReference returns an entity-reference node.
func NewEntityReference(name string) *Node {
	return &Node{Type: EntityReferenceNode, Name: name}
}

// NewNotation returns a notation node.
func NewNotation(name string) *Node {
	return &Node{Type: NotationNode, Name: name}
}

// AppendChild appends child to n's child list and returns child.
func (n *Node) AppendChild(child *Node) *Node {
	if n.Children == nil {
		n.Children = &NodeList{}
	}
	n.Children.Append(child)
	return child
}

// AppendAttribute appends attr to n's attribute map and returns attr.
func (n *Node) AppendAttribute(attr *Node) *Node {
	if n.Attrs == nil {
		n.Attrs = &NodeList{}
	}
	n.Attrs.Append(attr)
	return attr
}

// AppendEntity appends entity to a document type's entity list and
// returns it.
func (n *Node) AppendEntity(entity *Node) *Node {
	if n.Entities == nil {
		n.Entities = &NodeList{}
	}
	n.Entities.Append(entity)
	return entity
}

// AppendNotation appends notation to a document type's notation list
// and returns it.
func (n *Node) AppendNotation(notation *Node) *Node {
	if n.Notations == nil {
		n.Notations = &NodeList{}
	}
	n.Notations.Append(notation)
	return notation
}

// Done releases the node and its entire subtree. It is the default
// destructor used by the stack on push-failure paths. The node is
// zeroed so stale references cannot resurrect the subtree.
func (n *Node) Done() {
	if n == nil {
		return
	}
	for _, l := range []*NodeList{n.Children, n.Attrs, n.Entities, n.Notations} {
		if l == nil {
			continue
		}
		for _, c := range l.entries {
			c.Done()
		}
		l.entries = nil
	}
	*n = Node{}
}
