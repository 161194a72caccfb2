// Package locale holds the active language of a page session.
package locale

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// ErrUnsupported is returned when a value does not name a supported language.
var ErrUnsupported = errors.New("unsupported language")

// Language is one of the languages the portfolio is written in.
type Language uint8

const (
	ES Language = iota
	EN

	numLanguages
)

// Default is the language every page session starts with.
const Default = ES

// Count is the number of supported languages.
const Count = int(numLanguages)

var (
	tags = [numLanguages]language.Tag{
		ES: language.Spanish,
		EN: language.English,
	}
	codes = [numLanguages]string{
		ES: "es",
		EN: "en",
	}
	labels = [numLanguages]string{
		ES: "ES",
		EN: "EN",
	}
	matcher = language.NewMatcher(tags[:])
)

// All returns every supported language in display order.
func All() []Language {
	all := make([]Language, 0, numLanguages)
	for l := Language(0); l < numLanguages; l++ {
		all = append(all, l)
	}
	return all
}

// Valid reports whether l is a member of the enum.
func (l Language) Valid() bool {
	return l < numLanguages
}

// String returns the short code, e.g. "es".
func (l Language) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Language(%d)", uint8(l))
	}
	return codes[l]
}

// Label is the text shown on the language switch.
func (l Language) Label() string {
	if !l.Valid() {
		return l.String()
	}
	return labels[l]
}

// Tag returns the BCP 47 tag for l.
func (l Language) Tag() language.Tag {
	if !l.Valid() {
		return language.Und
	}
	return tags[l]
}

// Parse resolves a code or BCP 47 tag ("en", "en-US", "es-CO") to a Language.
func Parse(value string) (Language, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("parse language %q: %w", value, ErrUnsupported)
	}
	tag, err := language.Parse(value)
	if err != nil {
		return 0, fmt.Errorf("parse language %q: %w", value, ErrUnsupported)
	}
	base, _ := tag.Base()
	for l, t := range tags {
		if b, _ := t.Base(); b == base {
			return Language(l), nil
		}
	}
	return 0, fmt.Errorf("parse language %q: %w", value, ErrUnsupported)
}

// Match picks the best supported language for an Accept-Language header,
// falling back to Default.
func Match(acceptLanguage string) Language {
	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(prefs) == 0 {
		return Default
	}
	_, idx, conf := matcher.Match(prefs...)
	if conf == language.No {
		return Default
	}
	return Language(idx)
}
