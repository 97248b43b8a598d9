package dom

import "testing"

func TestNewStackDefaults(t *testing.T) {
	s := NewStack("opaque", nil)

	if s.Depth() != 0 {
		t.Fatalf("Depth() = %d, want 0", s.Depth())
	}
	if s.HasOpenFrames() {
		t.Fatal("HasOpenFrames() = true, want false")
	}
	if s.Top() != nil {
		t.Fatal("Top() != nil on empty stack")
	}
	if s.Parent() != nil {
		t.Fatal("Parent() != nil on empty stack")
	}
	if got := s.Data(); got != "opaque" {
		t.Fatalf("Data() = %v, want %q", got, "opaque")
	}
	if s.maxDepth != DefaultMaxDepth {
		t.Fatalf("maxDepth = %d, want %d", s.maxDepth, DefaultMaxDepth)
	}
	if s.destructor == nil {
		t.Fatal("destructor not defaulted")
	}
}

func TestStackGrowthGranularity(t *testing.T) {
	s := NewStack(nil, nil)
	defer s.Done()

	if _, ok := s.Push(NewElement("a")); !ok {
		t.Fatal("push rejected")
	}
	if got := len(s.frames); got != frameGranularity {
		t.Fatalf("len(frames) after first push = %d, want %d", got, frameGranularity)
	}

	for i := 1; i < frameGranularity+1; i++ {
		if _, ok := s.Push(NewElement("a")); !ok {
			t.Fatalf("push %d rejected", i)
		}
	}
	if got := len(s.frames); got != 2*frameGranularity {
		t.Fatalf("len(frames) after %d pushes = %d, want %d", frameGranularity+1, got, 2*frameGranularity)
	}
}

func TestTopAndParentAccessors(t *testing.T) {
	s := NewStack(nil, nil)
	defer s.Done()

	outer := NewElement("outer")
	inner := NewElement("inner")

	s.Push(outer)
	if s.Parent() != nil {
		t.Fatal("Parent() != nil at depth 1")
	}
	if got := s.Top().Node(); got != outer {
		t.Fatalf("Top().Node() = %v, want outer", got)
	}

	s.Push(inner)
	if got := s.Top().Node(); got != inner {
		t.Fatalf("Top().Node() = %v, want inner", got)
	}
	if got := s.Parent().Node(); got != outer {
		t.Fatalf("Parent().Node() = %v, want outer", got)
	}
}

func TestFramePayloadSize(t *testing.T) {
	tests := []struct {
		name string
		size int
		want int
	}{
		{name: "disabled", size: 0, want: 0},
		{name: "small", size: 4, want: 4},
		{name: "word", size: 8, want: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStackWithOptions(nil, nil, Options{PayloadSize: tt.size})
			defer s.Done()

			s.Push(NewElement("a"))
			got := len(s.Top().Payload())
			if got != tt.want {
				t.Fatalf("len(Payload()) = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStackDoneReleasesStorage(t *testing.T) {
	s := NewStackWithOptions(nil, nil, Options{PayloadSize: 8})
	s.Push(NewElement("a"))
	s.Push(NewElement("b"))

	s.Done()

	if s.Depth() != 0 {
		t.Fatalf("Depth() after Done = %d, want 0", s.Depth())
	}
	if s.frames != nil {
		t.Fatal("frames not released by Done")
	}
	if s.HasOpenFrames() {
		t.Fatal("HasOpenFrames() = true after Done")
	}
}

func TestFrameNilAccessors(t *testing.T) {
	var f *Frame
	if f.Node() != nil {
		t.Fatal("(*Frame)(nil).Node() != nil")
	}
	if f.Payload() != nil {
		t.Fatal("(*Frame)(nil).Payload() != nil")
	}
	f.SetExitCallback(nil) // must not panic
}
