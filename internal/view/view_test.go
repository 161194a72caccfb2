package view

import (
	"sync"
	"testing"
	"time"

	"github.com/davidfer1112/portfolio/internal/content"
	"github.com/davidfer1112/portfolio/internal/decor"
	"github.com/davidfer1112/portfolio/internal/locale"
	"github.com/davidfer1112/portfolio/internal/nav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTable(t *testing.T) *content.Table {
	t.Helper()
	table, err := content.Load()
	require.NoError(t, err)
	return table
}

func TestSessionStartsInDefaultState(t *testing.T) {
	table := loadTable(t)
	s := NewSession(table, locale.Default)
	defer s.Close()

	assert.Equal(t, locale.ES, s.Store.Get())
	assert.Equal(t, 0, s.Selector.Selected())
	assert.Equal(t, table.For(locale.ES).Experience.Entries[0], s.Selector.Current())
	assert.NotEmpty(t, s.ID)
}

func TestSessionLanguageSwitchKeepsSelection(t *testing.T) {
	table := loadTable(t)
	s := NewSession(table, locale.ES)
	defer s.Close()

	require.True(t, s.Select(1))
	s.SetLanguage(locale.EN)

	c := &Composer{}
	p := c.Page(s)
	assert.Equal(t, "en", p.Lang)
	assert.Equal(t, 1, p.Experience.Selected)
	assert.Equal(t, table.For(locale.EN).Experience.Entries[1].Title, p.Experience.Detail.Title)
	assert.True(t, p.Experience.Items[1].Selected)
	assert.False(t, p.Experience.Items[0].Selected)
}

func TestPageNeverMixesLanguages(t *testing.T) {
	table := loadTable(t)
	s := NewSession(table, locale.ES)
	defer s.Close()
	require.True(t, s.Select(1))

	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		lang := locale.EN
		for {
			select {
			case <-stop:
				return
			default:
			}
			s.SetLanguage(lang)
			if lang == locale.EN {
				lang = locale.ES
			} else {
				lang = locale.EN
			}
		}
	}()

	c := &Composer{}
	mixed := 0
	for i := 0; i < 5000; i++ {
		p := c.Page(s)
		lang, err := locale.Parse(p.Lang)
		require.NoError(t, err)
		want := table.For(lang)
		if p.Experience.Detail.Period != want.Experience.Entries[1].Period ||
			p.Experience.Text.Title != want.Experience.Title ||
			p.Text != want {
			mixed++
		}
	}
	close(stop)
	wg.Wait()

	assert.Zero(t, mixed)
}

func TestSessionCloseReleasesSubscriptionOnce(t *testing.T) {
	s := NewSession(loadTable(t), locale.ES)
	require.Equal(t, 1, s.Store.Subscribers())

	s.Close()
	s.Close()
	assert.Equal(t, 0, s.Store.Subscribers())
}

func TestPageComposition(t *testing.T) {
	s := NewSession(loadTable(t), locale.EN)
	defer s.Close()

	c := &Composer{
		Links: Links{GitHub: "https://github.com/example"},
		Decor: decor.NewLayer(1),
	}
	p := c.Page(s)

	require.Len(t, p.Nav, len(nav.Sections))
	assert.Equal(t, "Home", p.Nav[0].Label)
	require.Len(t, p.Languages, locale.Count)
	assert.False(t, p.Languages[0].Active)
	assert.True(t, p.Languages[1].Active)
	assert.Equal(t, "https://github.com/example", p.Links.GitHub)
	assert.NotEmpty(t, p.Decor.Particles)
	assert.NotEmpty(t, p.Skills)
}

func TestSessionsRegistry(t *testing.T) {
	r := NewSessions(loadTable(t), time.Hour)

	s := r.Start(locale.EN)
	got, ok := r.Get(s.ID)
	require.True(t, ok)
	assert.Same(t, s, got)
	assert.Equal(t, 1, r.Len())

	r.End(s.ID)
	_, ok = r.Get(s.ID)
	assert.False(t, ok)
	assert.Equal(t, 0, s.Store.Subscribers())
}

func TestSessionsExpire(t *testing.T) {
	r := NewSessions(loadTable(t), 20*time.Millisecond)
	s := r.Start(locale.ES)

	assert.Eventually(t, func() bool {
		return s.Store.Subscribers() == 0
	}, time.Second, 5*time.Millisecond)
	_, ok := r.Get(s.ID)
	assert.False(t, ok)
}
