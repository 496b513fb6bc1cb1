// Package translate formats user-visible text for the user's locale.
//
// Messages are looked up in the bitsim catalog; a key with no entry is
// formatted as-is. Locales without a catalog entry fall back to en-US, so
// console output does not depend on the host's number conventions.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// FALLBACK is the language used when no user locale matches the catalog.
var FALLBACK = language.AmericanEnglish

// Console strings, keyed by their en-US Sprintf() format.
var consoleMessages = map[string]string{
	"Program ended successfully.": "Program ended successfully.",
	"Enter a value: ":             "Enter a value: ",
	"Enter value for index %d: ":  "Enter value for index %d: ",
}

var (
	messages = newCatalog()
	printer  *message.Printer
	tag      language.Tag
)

func newCatalog() *catalog.Builder {
	cat := catalog.NewBuilder(catalog.Fallback(FALLBACK))
	for key, msg := range consoleMessages {
		err := cat.SetString(FALLBACK, key, msg)
		if err != nil {
			log.Printf("bitsim: catalog: %v: %v", key, err)
		}
	}
	return cat
}

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("bitsim: locale: %v", err)
	}

	printer, tag = NewPrinter(locales...)
}

// NewPrinter returns a printer for the best catalog match of locales, and
// the matched language.
func NewPrinter(locales ...string) (*message.Printer, language.Tag) {
	supported := messages.Languages()
	_, index := language.MatchStrings(messages.Matcher(), locales...)

	matched := FALLBACK
	if index >= 0 && index < len(supported) {
		matched = supported[index]
	}

	return message.NewPrinter(matched, message.Catalog(messages)), matched
}

// Language returns the language of the package printer.
func Language() language.Tag {
	return tag
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
