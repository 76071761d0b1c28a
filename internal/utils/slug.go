package utils

import (
	"strings"
	"unicode"
)

// Slugify приводит строку к URL-безопасному виду: нижний регистр,
// латиница без диакритики, дефисы вместо прочих символов.
func Slugify(parts ...string) string {
	var b strings.Builder
	lastHyphen := true

	for _, part := range parts {
		for _, r := range strings.ToLower(part) {
			r = stripAccent(r)
			switch {
			case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
				b.WriteRune(r)
				lastHyphen = false
			default:
				if !lastHyphen {
					b.WriteByte('-')
					lastHyphen = true
				}
			}
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	return strings.Trim(b.String(), "-")
}

// stripAccent убирает диакритику с испанских букв.
func stripAccent(r rune) rune {
	switch r {
	case 'á', 'à', 'ä', 'â':
		return 'a'
	case 'é', 'è', 'ë', 'ê':
		return 'e'
	case 'í', 'ì', 'ï', 'î':
		return 'i'
	case 'ó', 'ò', 'ö', 'ô':
		return 'o'
	case 'ú', 'ù', 'ü', 'û':
		return 'u'
	case 'ñ':
		return 'n'
	}
	if r > unicode.MaxASCII {
		// Прочие не-ASCII символы выбрасываются.
		return ' '
	}
	return r
}
