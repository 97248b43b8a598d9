package dom

// Walk performs an iterative depth-first traversal of the tree rooted
// at root, pushing every visited node through the normal push/pop
// protocol: enter callbacks fire on arrival, per-frame exit callbacks
// on departure. For elements the attribute map is iterated before the
// child list; for document types, entities before notations. Other
// node types have no child lists and are left immediately.
//
// A rejected push ends iteration of the current frame's list: the
// frame is popped without visiting the remaining siblings of the
// rejected node. If the root itself is rejected, the walk visits
// nothing further.
//
// All positional state lives in the stack, so a driver holding the
// stack between calls can compose its own incremental traversal from
// Push, Pop and the frame accessors instead.
func (s *Stack) Walk(root *Node) {
	if root == nil {
		return
	}
	if _, ok := s.Push(root); !ok {
		return
	}

	for s.depth > 0 {
		f := s.frames[s.depth-1]
		node := f.node
		list := f.list

		switch node.Type {
		case DocumentNode:
			if list == nil {
				list = node.Children
			}

		case ElementNode:
			if list == nil {
				list = node.Attrs
			}
			// Switch from the attribute map to the child list once the
			// map is exhausted; never switch away from the child list.
			switch {
			case list == node.Children:
			case list.HasMember(f.index) && list == node.Attrs:
			default:
				list = node.Children
			}

		case ProcessingInstructionNode:
			if list == nil {
				list = node.Attrs
			}

		case DocumentTypeNode:
			if list == nil {
				list = node.Entities
			}
			switch {
			case list == node.Notations:
			case list.HasMember(f.index) && list == node.Entities:
			default:
				list = node.Notations
			}
		}

		// Reset the cursor when a new list became active.
		if list != f.list {
			f.list = list
			f.index = 0
		}

		if list.HasMember(f.index) {
			child := list.Entry(f.index)
			f.index++

			if _, ok := s.Push(child); ok {
				continue
			}
		}

		s.Pop()
	}
}
