// Package i18n holds the static localized message tables. The tables are
// read-only; the active language is always passed explicitly by the caller,
// there is no package-level current-language state.
package i18n

import (
	"fmt"
	"sort"
)

type Lang string

const (
	English Lang = "en"
	French  Lang = "fr"
	Spanish Lang = "es"
)

// DefaultLang is the fallback for unknown languages and missing translations.
const DefaultLang = English

func Supported(lang Lang) bool {
	_, ok := messages[lang]
	return ok
}

func Languages() []Lang {
	langs := make([]Lang, 0, len(messages))
	for lang := range messages {
		langs = append(langs, lang)
	}
	sort.Slice(langs, func(i, j int) bool { return langs[i] < langs[j] })
	return langs
}

// aliases maps legacy message ids onto their current key.
var aliases = map[string]string{
	"limit_updated": "budget_limit_updated",
	"over_limit":    "budget_exceeded",
	"within_limit":  "budget_ok",
}

// T resolves a message key for a language. Missing translations fall back to
// English; a key unknown even in English comes back verbatim, which keeps
// output readable instead of blank when a key is mistyped.
func T(lang Lang, key string) string {
	if alias, ok := aliases[key]; ok {
		key = alias
	}

	if table, ok := messages[lang]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}

	if msg, ok := messages[DefaultLang][key]; ok {
		return msg
	}

	return key
}

// Tf is T plus Sprintf formatting.
func Tf(lang Lang, key string, args ...interface{}) string {
	return fmt.Sprintf(T(lang, key), args...)
}

// Keys returns every message id defined for the given language, sorted.
func Keys(lang Lang) []string {
	table := messages[lang]
	keys := make([]string, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
