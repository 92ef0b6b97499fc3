package router

// History is the navigation history the router reads and writes.
type History interface {
	Push(path string)
	Back() bool
	Forward() bool
	Current() string
	Len() int
}

// MemoryHistory is an in-process History with browser semantics: pushing
// discards any forward entries.
type MemoryHistory struct {
	entries []string
	index   int
}

// NewMemoryHistory creates a history whose single entry is initial.
func NewMemoryHistory(initial string) *MemoryHistory {
	return &MemoryHistory{
		entries: []string{Normalize(initial)},
	}
}

// Push appends path after the current entry.
func (h *MemoryHistory) Push(path string) {
	h.entries = append(h.entries[:h.index+1], Normalize(path))
	h.index = len(h.entries) - 1
}

// Back moves one entry back. Returns false at the start of history.
func (h *MemoryHistory) Back() bool {
	if h.index == 0 {
		return false
	}
	h.index--
	return true
}

// Forward moves one entry forward. Returns false at the end of history.
func (h *MemoryHistory) Forward() bool {
	if h.index >= len(h.entries)-1 {
		return false
	}
	h.index++
	return true
}

// Current returns the current entry.
func (h *MemoryHistory) Current() string {
	return h.entries[h.index]
}

// Len returns the number of entries.
func (h *MemoryHistory) Len() int {
	return len(h.entries)
}
