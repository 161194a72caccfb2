// Package view is the composition root of the portfolio page: it wires a
// language store, the experience selector and the navigator into one page
// session and builds the view model the templates render.
package view

import (
	"sync"
	"time"

	"github.com/davidfer1112/portfolio/internal/content"
	"github.com/davidfer1112/portfolio/internal/experience"
	"github.com/davidfer1112/portfolio/internal/locale"
	"github.com/davidfer1112/portfolio/internal/nav"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// Session is the view state of one page load. A reload starts a new one.
type Session struct {
	ID        string
	Store     *locale.Store
	Selector  *experience.Selector
	Navigator *nav.Navigator

	mu        sync.Mutex
	table     *content.Table
	unmount   func()
	closeOnce sync.Once
}

// NewSession mounts a page in lang: the selector starts following the
// store until Close.
func NewSession(table *content.Table, lang locale.Language) *Session {
	s := &Session{
		ID:        uuid.NewString(),
		Store:     locale.NewStore(lang),
		Selector:  experience.New(nil),
		Navigator: nav.NewNavigator(nav.Sections...),
		table:     table,
	}
	s.unmount = s.Selector.Bind(s.Store, table)
	return s
}

// SetLanguage switches the page language. Concurrent requests for the same
// session are applied one at a time.
func (s *Session) SetLanguage(lang locale.Language) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Store.Set(lang)
}

// Select changes the experience shown in the detail panel.
func (s *Session) Select(i int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Selector.Select(i)
}

// Content returns the table for the active language.
func (s *Session) Content() *content.Content {
	return s.table.For(s.Store.Get())
}

// Snapshot is the session state read in one critical section, so a page
// never mixes two languages.
type Snapshot struct {
	Lang     locale.Language
	Text     *content.Content
	Entries  []content.Entry
	Selected int
	Current  content.Entry
}

// Snapshot returns the current language, its content and the selection.
// It waits for any language switch or selection in progress to finish.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	lang := s.Store.Get()
	return Snapshot{
		Lang:     lang,
		Text:     s.table.For(lang),
		Entries:  s.Selector.Entries(),
		Selected: s.Selector.Selected(),
		Current:  s.Selector.Current(),
	}
}

// Close releases the store subscription. Only the first call has effect.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		if s.unmount != nil {
			s.unmount()
		}
	})
}

// Sessions keeps live page sessions in memory. Nothing is written to disk,
// and idle sessions expire after the configured TTL.
type Sessions struct {
	table *content.Table
	cache *cache.Cache
}

// NewSessions returns a session registry. Sessions untouched for ttl are
// evicted and closed.
func NewSessions(table *content.Table, ttl time.Duration) *Sessions {
	c := cache.New(ttl, ttl/2)
	c.OnEvicted(func(_ string, v interface{}) {
		if s, ok := v.(*Session); ok {
			s.Close()
		}
	})
	return &Sessions{table: table, cache: c}
}

// Start creates and registers a session in lang.
func (r *Sessions) Start(lang locale.Language) *Session {
	s := NewSession(r.table, lang)
	r.cache.SetDefault(s.ID, s)
	return s
}

// Get looks up a session and refreshes its expiry.
func (r *Sessions) Get(id string) (*Session, bool) {
	v, ok := r.cache.Get(id)
	if !ok {
		return nil, false
	}
	s := v.(*Session)
	r.cache.SetDefault(id, s)
	return s, true
}

// End removes and closes a session.
func (r *Sessions) End(id string) {
	r.cache.Delete(id)
}

// Len returns the number of live sessions.
func (r *Sessions) Len() int {
	return r.cache.ItemCount()
}

// Table returns the content table sessions are built from.
func (r *Sessions) Table() *content.Table {
	return r.table
}
