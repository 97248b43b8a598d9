package dom

// Push opens a frame for node and dispatches the enter callback for
// its type. The caller relinquishes ownership of node regardless of
// outcome: an accepted node is referenced by the new frame, a node
// rejected by the depth cap is destroyed here, and a node rejected by
// the enter callback has its fate resolved by that callback.
//
// On acceptance Push returns the node the enter callback returned
// (which may be a substitute) and true. On rejection it returns nil
// and false, with depth and storage unchanged from before the call.
func (s *Stack) Push(node *Node) (*Node, bool) {
	if node == nil {
		return nil, false
	}
	if !node.Type.valid() || s.depth >= s.maxDepth {
		s.destroy(node)
		return nil, false
	}

	s.growTo(s.depth + 1)

	f := s.frames[s.depth]
	f.node = node
	f.list = nil
	f.index = 0
	f.exit = nil

	// Open the frame before dispatch so the callback observes it
	// through Top.
	s.depth++

	if cb := s.callbacks[node.Type]; cb != nil {
		node = cb(s, node, f.payload)
		if node == nil {
			f.reset()
			s.depth--
			return nil, false
		}
	}

	return node, true
}

// popOne pops the top frame, running its exit callback with the node
// of the frame beneath it (nil when the root frame is popped). It
// reports whether the popped frame was target.
func (s *Stack) popOne(target *Frame) bool {
	if s.depth == 0 {
		return false
	}

	f := s.frames[s.depth-1]
	if f.exit != nil {
		var parent *Node
		if s.depth >= 2 {
			parent = s.frames[s.depth-2].node
		}
		f.exit(s, parent, f.payload)
	}

	s.depth--
	f.reset()

	return f == target
}

// Pop pops the top frame. It is a no-op on an empty stack.
func (s *Stack) Pop() {
	s.popOne(nil)
}

// PopUntil pops frames from the top until the nearest ancestor frame
// whose node matches the given type and name has itself been popped.
// Each pop runs its exit callback. If no ancestor matches, the stack
// is unchanged.
func (s *Stack) PopUntil(t NodeType, name string) {
	target, ok := s.Search(t, name)
	if !ok {
		return
	}
	for s.depth > 0 {
		if s.popOne(target) {
			break
		}
	}
}

func (s *Stack) destroy(node *Node) {
	if s.destructor != nil {
		s.destructor(node)
		return
	}
	node.Done()
}
