package application

import "sync"

// firstMatch is a single-assignment cell. Only the first offered value is kept;
// later offers are ignored.
type firstMatch struct {
	mu    sync.Mutex
	value string
	set   bool
}

func (f *firstMatch) offer(v string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.set {
		return false
	}
	f.value = v
	f.set = true
	return true
}

func (f *firstMatch) get() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value, f.set
}
