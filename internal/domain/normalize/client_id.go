package normalize

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// GenerateClientID builds the client id: zero-padded day and month of date
// followed by name and neighborhood with every whitespace rune removed.
//
//	GenerateClientID("Ana Silva", "West End", 2025-03-05) == "0503AnaSilvaWestEnd"
func GenerateClientID(name, neighborhood string, date time.Time) string {
	return fmt.Sprintf("%02d%02d%s%s", date.Day(), int(date.Month()), stripSpaces(name), stripSpaces(neighborhood))
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
