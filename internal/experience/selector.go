// Package experience implements the selectable work-history section.
package experience

import (
	"sync"

	"github.com/davidfer1112/portfolio/internal/content"
	"github.com/davidfer1112/portfolio/internal/locale"
)

// Selector holds the entries of the experience section and the index of
// the one shown in the detail panel.
type Selector struct {
	mu       sync.RWMutex
	entries  []content.Entry
	selected int
}

// New returns a selector over entries with the first entry selected.
func New(entries []content.Entry) *Selector {
	return &Selector{entries: entries}
}

// Select shows entry i. Indexes outside [0, len) are ignored and the
// previous selection is kept; the result reports whether i was applied.
func (s *Selector) Select(i int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.entries) {
		return false
	}
	s.selected = i
	return true
}

// Selected returns the index of the selected entry.
func (s *Selector) Selected() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

// Current returns the selected entry, or the zero Entry when the list is
// empty.
func (s *Selector) Current() content.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.entries) == 0 {
		return content.Entry{}
	}
	return s.entries[s.selected]
}

// Entries returns the list in display order.
func (s *Selector) Entries() []content.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries
}

// Reload swaps in a new list, keeping the selected index rather than the
// selected record. The index is clamped if the new list is shorter.
func (s *Selector) Reload(entries []content.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = entries
	switch {
	case len(entries) == 0:
		s.selected = 0
	case s.selected >= len(entries):
		s.selected = len(entries) - 1
	}
}

// Bind keeps the selector in step with store: every language change
// reloads the entries from table. The returned function detaches it.
func (s *Selector) Bind(store *locale.Store, table *content.Table) (unbind func()) {
	s.Reload(table.For(store.Get()).Experience.Entries)
	return store.Subscribe(func(lang locale.Language) {
		s.Reload(table.For(lang).Experience.Entries)
	})
}
