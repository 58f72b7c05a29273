package ranking

import "sync"

// Selection holds the sort mode currently chosen by the user. It is shared by
// request handlers; Rank itself always takes the mode as an argument.
type Selection struct {
	mu   sync.RWMutex
	mode SortMode
}

// NewSelection creates a selection starting at mode.
func NewSelection(mode SortMode) *Selection {
	return &Selection{mode: mode}
}

func (s *Selection) Mode() SortMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

func (s *Selection) SetMode(mode SortMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = mode
}
