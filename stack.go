package dom

// DefaultMaxDepth bounds traversal depth when Options.MaxDepth is not
// set. It exists to keep frame storage finite when walking
// adversarially deep inputs.
const DefaultMaxDepth = 4096

// Frame storage grows in blocks of this many frames so repeated pushes
// do not reallocate one slot at a time.
const frameGranularity = 8

// Frame records one currently-open node during traversal: the node
// itself, which of its child lists is being iterated and the next
// index to visit, an optional exit callback, and the frame's payload
// slot.
type Frame struct {
	node    *Node
	payload []byte
	list    *NodeList
	index   int
	exit    ExitCallback
}

// Node returns the node the frame is open on.
func (f *Frame) Node() *Node {
	if f == nil {
		return nil
	}
	return f.node
}

// Payload returns the frame's payload slot, or nil if the stack was
// created with a zero payload size. The slot is zeroed when the frame
// is established and again when it is released; it is only valid while
// the frame is open.
func (f *Frame) Payload() []byte {
	if f == nil {
		return nil
	}
	return f.payload
}

// SetExitCallback installs the callback run when this frame is popped.
// The push protocol never sets it; consumers install it after a
// successful push, typically from inside the enter callback.
func (f *Frame) SetExitCallback(fn ExitCallback) {
	if f != nil {
		f.exit = fn
	}
}

func (f *Frame) reset() {
	f.node = nil
	f.list = nil
	f.index = 0
	f.exit = nil
	clear(f.payload)
}

// Options configures a Stack beyond its callback table.
type Options struct {
	// PayloadSize is the size in bytes of the opaque per-frame payload
	// slot. Zero disables payloads.
	PayloadSize int
	// MaxDepth caps the number of open frames. Zero means
	// DefaultMaxDepth.
	MaxDepth int
	// Destructor releases a node on push-failure paths. Nil means
	// (*Node).Done.
	Destructor func(*Node)
}

// Stack is the traversal engine: a growable stack of frames, an
// enter-callback table indexed by node type, and an opaque data value
// forwarded to every callback. A Stack is owned by one traversal
// context at a time and is not safe for concurrent use.
type Stack struct {
	frames      []*Frame
	depth       int
	callbacks   CallbackTable
	data        any
	payloadSize int
	maxDepth    int
	destructor  func(*Node)
}

// NewStack returns a stack with default options. The callback table
// may be nil, in which case every push is accepted without dispatch.
func NewStack(data any, callbacks *CallbackTable) *Stack {
	return NewStackWithOptions(data, callbacks, Options{})
}

// NewStackWithOptions returns a stack with explicit configuration.
func NewStackWithOptions(data any, callbacks *CallbackTable, opts Options) *Stack {
	s := &Stack{
		data:        data,
		payloadSize: opts.PayloadSize,
		maxDepth:    opts.MaxDepth,
		destructor:  opts.Destructor,
	}
	if callbacks != nil {
		s.callbacks = *callbacks
	}
	if s.maxDepth <= 0 {
		s.maxDepth = DefaultMaxDepth
	}
	if s.destructor == nil {
		s.destructor = (*Node).Done
	}
	return s
}

// Done releases all frame storage. The stack holds no frames
// afterwards and must not be used again.
func (s *Stack) Done() {
	*s = Stack{}
}

// Depth returns the number of currently open frames.
func (s *Stack) Depth() int {
	return s.depth
}

// HasOpenFrames reports whether any frame is open.
func (s *Stack) HasOpenFrames() bool {
	return s.depth > 0
}

// Data returns the opaque value bound at construction.
func (s *Stack) Data() any {
	return s.data
}

// Top returns the most recently opened frame, or nil if none is open.
func (s *Stack) Top() *Frame {
	if s.depth == 0 {
		return nil
	}
	return s.frames[s.depth-1]
}

// Parent returns the frame beneath the top, or nil if fewer than two
// frames are open.
func (s *Stack) Parent() *Frame {
	if s.depth < 2 {
		return nil
	}
	return s.frames[s.depth-2]
}

// growTo ensures storage for at least n frames. Frames are allocated
// once, in granularity-sized blocks, and reused (zeroed) across
// pushes, so *Frame references held by callbacks stay valid as the
// stack grows.
func (s *Stack) growTo(n int) {
	if n <= len(s.frames) {
		return
	}
	want := (n + frameGranularity - 1) &^ (frameGranularity - 1)
	for len(s.frames) < want {
		f := &Frame{}
		if s.payloadSize > 0 {
			f.payload = make([]byte, s.payloadSize)
		}
		s.frames = append(s.frames, f)
	}
}
