package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetThenGetReturnsLanguage(t *testing.T) {
	s := NewStore(Default)
	for _, l := range All() {
		s.Set(l)
		assert.Equal(t, l, s.Get())
	}
}

func TestNewStoreStartsWithGivenLanguage(t *testing.T) {
	assert.Equal(t, ES, NewStore(ES).Get())
	assert.Equal(t, EN, NewStore(EN).Get())
}

func TestSetNotifiesSubscribersInOrder(t *testing.T) {
	s := NewStore(ES)
	var got []string
	s.Subscribe(func(l Language) { got = append(got, "a:"+l.String()) })
	s.Subscribe(func(l Language) { got = append(got, "b:"+l.String()) })

	s.Set(EN)
	s.Set(EN)

	assert.Equal(t, []string{"a:en", "b:en", "a:en", "b:en"}, got)
}

func TestUnsubscribeIsIdempotent(t *testing.T) {
	s := NewStore(ES)
	calls := 0
	unsubscribe := s.Subscribe(func(Language) { calls++ })
	other := s.Subscribe(func(Language) {})
	require.Equal(t, 2, s.Subscribers())

	unsubscribe()
	unsubscribe()
	assert.Equal(t, 1, s.Subscribers())

	s.Set(EN)
	assert.Equal(t, 0, calls)

	other()
	assert.Equal(t, 0, s.Subscribers())
}

func TestSubscriberMayReadStore(t *testing.T) {
	s := NewStore(ES)
	var seen Language
	s.Subscribe(func(Language) { seen = s.Get() })
	s.Set(EN)
	assert.Equal(t, EN, seen)
}

func TestSetInvalidLanguagePanics(t *testing.T) {
	s := NewStore(ES)
	assert.Panics(t, func() { s.Set(Language(42)) })
	assert.Equal(t, ES, s.Get())
	assert.Panics(t, func() { NewStore(numLanguages) })
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Language
	}{
		{"es", ES},
		{"en", EN},
		{"EN", EN},
		{"en-US", EN},
		{"es-CO", ES},
		{" es ", ES},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRejectsUnsupported(t *testing.T) {
	for _, in := range []string{"", "fr", "pt-BR", "not a tag"} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, ErrUnsupported, in)
	}
}

func TestMatchAcceptLanguage(t *testing.T) {
	assert.Equal(t, EN, Match("en-GB,en;q=0.9"))
	assert.Equal(t, ES, Match("es-MX,es;q=0.8,en;q=0.5"))
	assert.Equal(t, Default, Match(""))
	assert.Equal(t, Default, Match("ja"))
}

func TestLanguageStrings(t *testing.T) {
	assert.Equal(t, "es", ES.String())
	assert.Equal(t, "EN", EN.Label())
	assert.False(t, numLanguages.Valid())
	assert.Equal(t, "Language(9)", Language(9).String())
}
