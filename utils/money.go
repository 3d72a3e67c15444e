package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var idPrinter = message.NewPrinter(language.Indonesian)

// FormatRupiah renders a whole-rupiah amount with the id-ID thousands
// separator and currency prefix, e.g. "Rp 3.000.000".
func FormatRupiah(amount float64) string {
	return idPrinter.Sprintf("Rp %.0f", amount)
}
