package translate

import (
	_ "embed"
	"text/template"
)

//go:embed prompts/translate.md
var systemPromptRaw string

// SystemTemplate is the parsed translation instruction. It is rendered with
// the target language name once per call.
var SystemTemplate = template.Must(template.New("translate").Parse(systemPromptRaw))
