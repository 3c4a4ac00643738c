package alloc

// Scope layers destructor tracking on top of a LinearAllocator. AllocPod
// bumps raw scratch bytes with no cleanup obligation. AllocObj registers a
// finalizer that runs when the scope closes, in LIFO order (most recently
// registered first), mirroring the original allocator's intrusive finalizer
// list without needing unsafe pointer arithmetic: Go's closures already give
// us a typed destructor record for free.
type Scope struct {
	alloc    *LinearAllocator
	rewindTo int
	end      int // allocator cursor after this scope's latest allocation
	fin      []func()
	closed   bool
}

// NewScope opens a scope over alloc, capturing its current cursor as the
// rewind point.
func NewScope(alloc *LinearAllocator) *Scope {
	return &Scope{alloc: alloc, rewindTo: alloc.Cursor(), end: alloc.Cursor()}
}

// AllocPod reserves size bytes of scratch memory with no destructor. The
// returned slice is invalidated once the scope closes.
func (s *Scope) AllocPod(size int) ([]byte, error) {
	b, err := s.alloc.Allocate(size)
	if err == nil {
		s.end = s.alloc.Cursor()
	}
	return b, err
}

// AllocObj reserves size bytes and registers fin to run when the scope
// closes. Finalizers run in reverse registration order, then the underlying
// allocator is rewound to the scope's entry point.
func (s *Scope) AllocObj(size int, fin func()) ([]byte, error) {
	b, err := s.alloc.Allocate(size)
	if err != nil {
		return nil, err
	}
	s.end = s.alloc.Cursor()
	if fin != nil {
		s.fin = append(s.fin, fin)
	}
	return b, nil
}

// AllocObjArray reserves size*count bytes in one scratch block and registers
// a single finalizer covering the whole array (the caller's fin is expected
// to tear down all count elements).
func (s *Scope) AllocObjArray(size, count int, fin func()) ([]byte, error) {
	return s.AllocObj(size*count, fin)
}

// Close runs registered finalizers in reverse order then rewinds the
// underlying allocator to the scope's entry point. Close is idempotent; a
// scope closed twice only rewinds once. Nested scopes must be closed in
// LIFO order: Close panics when the allocator's cursor is not where this
// scope's own latest allocation left it, which is the case when an inner
// scope opened after it still holds allocations.
func (s *Scope) Close() {
	if s.closed {
		return
	}
	if s.alloc.Cursor() != s.end {
		panic("alloc: scope closed while a later allocation is still live")
	}
	s.closed = true
	for i := len(s.fin) - 1; i >= 0; i-- {
		s.fin[i]()
	}
	s.alloc.Rewind(s.rewindTo)
}
