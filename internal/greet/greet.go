// Package greet builds localized greetings for the greet subcommand.
package greet

import (
	"fmt"
	"sort"
	"strings"
)

const defaultLanguage = "en"

var salutations = map[string]string{
	"en": "Hello",
	"es": "Hola",
	"fr": "Bonjour",
}

// Build returns a friendly greeting for a given name and language code.
// A blank name falls back to "world"; an unknown or blank language code
// falls back to English.
func Build(name, language string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "world"
	}
	language = strings.ToLower(strings.TrimSpace(language))
	if language == "" {
		language = defaultLanguage
	}

	salutation, ok := salutations[language]
	if !ok {
		salutation = salutations[defaultLanguage]
	}
	return fmt.Sprintf("%s, %s!", salutation, name)
}

// Languages returns the supported language codes in sorted order.
func Languages() []string {
	codes := make([]string, 0, len(salutations))
	for code := range salutations {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
