package status

import (
	"sync/atomic"
)

// MaxStringLen caps stored strings; long payload labels are cut for the HUD
const MaxStringLen = 32

// AtomicString holds a short string behind an atomic pointer
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store sets the value, truncating to MaxStringLen bytes
func (s *AtomicString) Store(val string) {
	if len(val) > MaxStringLen {
		val = val[:MaxStringLen]
	}
	s.ptr.Store(&val)
}

func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
