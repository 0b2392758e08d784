package game

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys. They double as the English fallback text.
const (
	msgWins        = "%s wins!\n"
	msgDraw        = "It's a draw!\n"
	msgFinalScores = "Final scores:\n"
	msgScores      = "Scores:\n"
	msgScoreLine   = "%s: %d points\n"
	msgNotOver     = "Game not over"
)

var messages = mustBuildCatalog()

func mustBuildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	err := b.Set(language.English, msgScoreLine, plural.Selectf(2, "%d",
		"one", "%[1]s: %[2]d point\n",
		"other", "%[1]s: %[2]d points\n",
	))
	if err != nil {
		panic(err)
	}
	return b
}

func newPrinter() *message.Printer {
	return message.NewPrinter(language.English, message.Catalog(messages))
}
