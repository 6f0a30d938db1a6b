package utils

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var brPrinter = message.NewPrinter(language.BrazilianPortuguese)

// FormatCurrencyBRL formata um valor como "R$ 1.234,56"
func FormatCurrencyBRL(value float64) string {
	return brPrinter.Sprintf("R$ %.2f", value)
}

// FormatDateBR formata a data como dd/mm/aaaa
func FormatDateBR(date time.Time) string {
	if date.IsZero() {
		return ""
	}
	return date.Format("02/01/2006")
}
