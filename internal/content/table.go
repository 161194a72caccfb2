package content

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"reflect"
	"strings"

	"github.com/davidfer1112/portfolio/internal/locale"
	"gopkg.in/yaml.v3"
)

// ErrAsymmetric is returned when the languages of a table disagree on
// which fields are filled in or on the length of a list.
var ErrAsymmetric = errors.New("content table is not symmetric")

//go:embed locales/*.yaml
var embeddedFS embed.FS

// Table maps every supported language to its Content.
type Table struct {
	langs [locale.Count]Content
}

// For returns the content for lang.
func (t *Table) For(lang locale.Language) *Content {
	if !lang.Valid() {
		panic(fmt.Sprintf("content: invalid language %d", uint8(lang)))
	}
	return &t.langs[lang]
}

// Load decodes the embedded locale files and validates the result.
func Load() (*Table, error) {
	return LoadFS(embeddedFS)
}

// LoadFS decodes locales/<code>.yaml for every supported language from
// fsys. Unknown YAML keys are rejected so a typo cannot silently leave a
// field blank.
func LoadFS(fsys fs.FS) (*Table, error) {
	t := &Table{}
	for _, lang := range locale.All() {
		name := path.Join("locales", lang.String()+".yaml")
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&t.langs[lang]); err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks the symmetry of the table. The returned error wraps
// ErrAsymmetric and lists every offending field path.
func (t *Table) Validate() error {
	values := make([]reflect.Value, 0, locale.Count)
	for i := range t.langs {
		values = append(values, reflect.ValueOf(t.langs[i]))
	}
	var problems []string
	compare(values, "", &problems)
	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrAsymmetric, strings.Join(problems, "; "))
}

func compare(vals []reflect.Value, field string, problems *[]string) {
	switch vals[0].Kind() {
	case reflect.Struct:
		typ := vals[0].Type()
		for i := 0; i < typ.NumField(); i++ {
			sub := make([]reflect.Value, len(vals))
			for j, v := range vals {
				sub[j] = v.Field(i)
			}
			compare(sub, join(field, yamlName(typ.Field(i))), problems)
		}
	case reflect.Slice:
		n := vals[0].Len()
		for j, v := range vals[1:] {
			if v.Len() != n {
				*problems = append(*problems, fmt.Sprintf("%s: %s has %d items, %s has %d",
					field, locale.Language(0), n, locale.Language(j+1), v.Len()))
				return
			}
		}
		for i := 0; i < n; i++ {
			sub := make([]reflect.Value, len(vals))
			for j, v := range vals {
				sub[j] = v.Index(i)
			}
			compare(sub, fmt.Sprintf("%s[%d]", field, i), problems)
		}
	case reflect.String:
		var filled, blank []string
		for j, v := range vals {
			if strings.TrimSpace(v.String()) == "" {
				blank = append(blank, locale.Language(j).String())
			} else {
				filled = append(filled, locale.Language(j).String())
			}
		}
		if len(filled) > 0 && len(blank) > 0 {
			*problems = append(*problems, fmt.Sprintf("%s: missing for %s", field, strings.Join(blank, ",")))
		}
	}
}

func yamlName(f reflect.StructField) string {
	if tag, _, _ := strings.Cut(f.Tag.Get("yaml"), ","); tag != "" {
		return tag
	}
	return f.Name
}

func join(parent, child string) string {
	if parent == "" {
		return child
	}
	return parent + "." + child
}
