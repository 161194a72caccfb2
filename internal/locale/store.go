package locale

import (
	"fmt"
	"sync"
)

// Store is the observable active language of one page session.
// The zero value is not usable; call NewStore.
type Store struct {
	mu     sync.RWMutex
	lang   Language
	nextID int
	subs   []subscription
}

type subscription struct {
	id int
	fn func(Language)
}

// NewStore returns a store holding lang.
func NewStore(lang Language) *Store {
	if !lang.Valid() {
		panic(fmt.Sprintf("locale: invalid language %d", uint8(lang)))
	}
	return &Store{lang: lang}
}

// Get returns the active language.
func (s *Store) Get() Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lang
}

// Set replaces the active language and notifies subscribers in
// subscription order before returning. Passing a value outside the enum
// is a programming error and panics.
func (s *Store) Set(lang Language) {
	if !lang.Valid() {
		panic(fmt.Sprintf("locale: invalid language %d", uint8(lang)))
	}

	s.mu.Lock()
	s.lang = lang
	subs := make([]subscription, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(lang)
	}
}

// Subscribe registers fn to run after every Set. The returned function
// removes the subscription; calling it more than once is harmless.
func (s *Store) Subscribe(fn func(Language)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, sub := range s.subs {
				if sub.id == id {
					s.subs = append(s.subs[:i], s.subs[i+1:]...)
					return
				}
			}
		})
	}
}

// Subscribers returns the number of live subscriptions.
func (s *Store) Subscribers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subs)
}
