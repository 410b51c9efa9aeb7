// Package i18n formats currency amounts and notification texts for the
// two locales the app ships: English (USD) and Brazilian Portuguese (BRL).
package i18n

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	LocaleEN   = "en"
	LocalePtBR = "pt-BR"
)

var locales = map[string]struct {
	tag  language.Tag
	unit currency.Unit
}{
	LocaleEN:   {language.AmericanEnglish, currency.USD},
	LocalePtBR: {language.BrazilianPortuguese, currency.BRL},
}

// Normalize returns a supported locale, falling back to English for
// anything unknown.
func Normalize(locale string) string {
	if _, ok := locales[locale]; ok {
		return locale
	}
	return LocaleEN
}

// FormatAmount renders a monetary amount in the locale's currency, e.g.
// "$1,234.50" for en and "R$ 1.234,50" for pt-BR.
func FormatAmount(locale string, amount float64) string {
	l := locales[Normalize(locale)]
	p := message.NewPrinter(l.tag)
	return p.Sprint(currency.NarrowSymbol(l.unit.Amount(amount)))
}

// InvoiceDueTitle is the push notification title for an upcoming card
// invoice.
func InvoiceDueTitle(locale string) string {
	if Normalize(locale) == LocalePtBR {
		return "Fatura chegando"
	}
	return "Invoice due soon"
}

// InvoiceDueBody is the push notification body for an upcoming card
// invoice.
func InvoiceDueBody(locale, cardName string, total float64, dueDate string) string {
	amount := FormatAmount(locale, total)
	if Normalize(locale) == LocalePtBR {
		return fmt.Sprintf("A fatura do cartão %s (%s) vence em %s.", cardName, amount, dueDate)
	}
	return fmt.Sprintf("Your %s invoice (%s) is due on %s.", cardName, amount, dueDate)
}
