package ui

import (
	"embed"
	"log"

	"fyne.io/fyne/v2/lang"
)

//go:embed translations
var translations embed.FS

func init() {
	if err := lang.AddTranslationsFS(translations, "translations"); err != nil {
		// Untranslated keys fall back to themselves.
		log.Printf("[ui] translations unavailable: %v", err)
	}
}
