// Package locale holds the display language of a session and resolves
// translation keys against the built-in language tables.
package locale

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-faster/errors"
)

// Language is a supported display language code.
type Language string

const (
	English Language = "en"
	Hindi   Language = "hi"
)

// Default is the language of a session that never chose one.
const Default = English

// ErrUnsupportedLanguage is returned for a language code outside Supported.
var ErrUnsupportedLanguage = errors.New("unsupported language")

var tables = map[Language]map[Key]string{
	English: english,
	Hindi:   hindi,
}

// Supported returns the supported languages, default first.
func Supported() []Language {
	return []Language{English, Hindi}
}

// ParseLanguage validates a language code.
func ParseLanguage(code string) (Language, error) {
	lang := Language(strings.TrimSpace(code))
	if _, ok := tables[lang]; !ok {
		return "", errors.Wrapf(ErrUnsupportedLanguage, "%q", code)
	}
	return lang, nil
}

// Translate returns the string for key in lang. A key the table does not
// define is returned unchanged.
func Translate(lang Language, key string) string {
	if v, ok := tables[lang][Key(key)]; ok {
		return v
	}
	return key
}

// T is Translate for a declared Key.
func T(lang Language, key Key) string {
	return Translate(lang, string(key))
}

// Table returns a copy of every key and string defined for lang.
func Table(lang Language) map[string]string {
	src := tables[lang]
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[string(k)] = v
	}
	return out
}

// Verify checks that every supported language defines exactly the declared
// keys, each with a non-empty string.
func Verify() error {
	declared := make(map[Key]struct{}, len(Keys))
	for _, k := range Keys {
		if _, dup := declared[k]; dup {
			return errors.Errorf("key %q declared twice", k)
		}
		declared[k] = struct{}{}
	}

	var problems []string
	for _, lang := range Supported() {
		table := tables[lang]
		for _, k := range Keys {
			if strings.TrimSpace(table[k]) == "" {
				problems = append(problems, fmt.Sprintf("%s: missing %q", lang, k))
			}
		}
		for k := range table {
			if _, ok := declared[k]; !ok {
				problems = append(problems, fmt.Sprintf("%s: unknown %q", lang, k))
			}
		}
	}
	if len(problems) > 0 {
		sort.Strings(problems)
		return errors.Errorf("translation tables: %s", strings.Join(problems, "; "))
	}
	return nil
}
