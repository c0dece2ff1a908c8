package locale

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FoldAccents removes combining marks, so "Disponível" becomes "Disponivel".
func FoldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// IsAvailableStatus is the tolerant bike status check: any status containing
// "dispon" once case and accents are ignored counts as available.
func IsAvailableStatus(status string) bool {
	return strings.Contains(strings.ToLower(FoldAccents(status)), "dispon")
}
