package dom

// Search scans open frames from the top (nearest enclosing) towards
// the root and returns the first frame whose node has the given type
// and whose name matches exactly. It returns false if no frame matches
// or no frame is open.
func (s *Stack) Search(t NodeType, name string) (*Frame, bool) {
	for i := s.depth - 1; i >= 0; i-- {
		f := s.frames[i]
		if f.node != nil && f.node.Type == t && f.node.Name == name {
			return f, true
		}
	}
	return nil, false
}
