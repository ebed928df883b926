package format

import (
	"strings"
	"sync"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencyLabel prefixes every rendered price.
const CurrencyLabel = "Rp"

var (
	printerOnce sync.Once
	idPrinter   *message.Printer
)

// Number renders an integer with Indonesian digit grouping: 1250000 => "1.250.000".
// Prices are always grouped per the primary locale, whatever the page language.
func Number(n int64) string {
	printerOnce.Do(func() {
		idPrinter = message.NewPrinter(language.Indonesian)
	})
	return idPrinter.Sprintf("%d", n)
}

// Rupiah formats a whole-rupiah amount. Example: Rupiah(99000) => "Rp 99.000".
func Rupiah(amount int64) string {
	return CurrencyLabel + " " + Number(amount)
}

var idMonths = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// Date formats t in a locale-friendly long form.
func Date(t time.Time, lang string) string {
	switch strings.ToLower(lang) {
	case "id":
		return t.Format("2") + " " + idMonths[t.Month()-1] + " " + t.Format("2006")
	default:
		return t.Format("January 2, 2006")
	}
}
