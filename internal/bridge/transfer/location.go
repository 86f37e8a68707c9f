package transfer

import (
	"net/url"
	"sync"
)

// Location is the current address of the receiving application.
// Replace rewrites it in place, without navigation or a new history entry.
type Location interface {
	URL() *url.URL
	Replace(u *url.URL)
}

// MemoryLocation is a Location held in memory.
type MemoryLocation struct {
	mu       sync.Mutex
	u        *url.URL
	replaced int
}

// NewMemoryLocation parses raw into a MemoryLocation.
func NewMemoryLocation(raw string) (*MemoryLocation, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &MemoryLocation{u: u}, nil
}

// URL returns a copy of the current address.
func (l *MemoryLocation) URL() *url.URL {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.u == nil {
		return nil
	}
	cp := *l.u
	return &cp
}

func (l *MemoryLocation) Replace(u *url.URL) {
	l.mu.Lock()
	defer l.mu.Unlock()
	cp := *u
	l.u = &cp
	l.replaced++
}

// String returns the current address.
func (l *MemoryLocation) String() string {
	if u := l.URL(); u != nil {
		return u.String()
	}
	return ""
}

// Replacements counts Replace calls.
func (l *MemoryLocation) Replacements() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.replaced
}
