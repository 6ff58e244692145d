package model

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// SourceLanguage is the language of the canonical postings under jobs/.
const SourceLanguage = "en"

// TargetLanguages are the translated mirrors, in publishing order.
var TargetLanguages = []string{"zh", "ko", "es", "pt", "de", "ja"}

// promptNames are the language names the translation instruction uses.
// Portuguese is pinned to the Brazilian variant and Chinese to Simplified.
var promptNames = map[string]string{
	"zh": "Simplified Chinese",
	"ko": "Korean",
	"es": "Spanish",
	"pt": "Brazilian Portuguese",
	"de": "German",
	"ja": "Japanese",
}

// IsTargetLanguage reports whether code is one of the translated mirrors.
func IsTargetLanguage(code string) bool {
	_, ok := promptNames[code]
	return ok
}

// ParseTargetLanguage validates a language code and returns it in the
// canonical two-letter form used for directory names.
func ParseTargetLanguage(code string) (string, error) {
	tag, err := language.Parse(code)
	if err != nil {
		return "", fmt.Errorf("parse language %q: %w", code, err)
	}
	base, _ := tag.Base()
	short := base.String()
	if !IsTargetLanguage(short) {
		return "", fmt.Errorf("language %q is not a target language (want one of %v)", code, TargetLanguages)
	}
	return short, nil
}

// PromptName returns the name used when instructing the model.
func PromptName(code string) string {
	if name, ok := promptNames[code]; ok {
		return name
	}
	return LanguageName(code)
}

// LanguageName returns the English display name for a language code.
func LanguageName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	return display.English.Languages().Name(tag)
}
