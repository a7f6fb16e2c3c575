// Package slug derives URL-safe identifiers from note titles.
package slug

import "strings"

// MaxLen bounds derived slugs; user-supplied slugs are validated against it too.
const MaxLen = 100

// translit maps lowercase Cyrillic to Latin. Soft and hard signs have no
// Latin counterpart and are dropped.
var translit = map[rune]string{
	'а': "a",
	'б': "b",
	'в': "v",
	'г': "g",
	'д': "d",
	'е': "e",
	'ё': "yo",
	'ж': "zh",
	'з': "z",
	'и': "i",
	'й': "j",
	'к': "k",
	'л': "l",
	'м': "m",
	'н': "n",
	'о': "o",
	'п': "p",
	'р': "r",
	'с': "s",
	'т': "t",
	'у': "u",
	'ф': "f",
	'х': "h",
	'ц': "c",
	'ч': "ch",
	'ш': "sh",
	'щ': "sch",
	'ъ': "",
	'ы': "yi",
	'ь': "",
	'э': "e",
	'ю': "yu",
	'я': "ya",
}

// Slugify transliterates title to ASCII, lowercases it, replaces runs of
// spaces and hyphens with a single hyphen and drops everything else.
// The result never starts or ends with a hyphen.
func Slugify(title string) string {
	var translated strings.Builder
	for _, r := range strings.ToLower(title) {
		if repl, ok := translit[r]; ok {
			translated.WriteString(repl)
			continue
		}
		translated.WriteRune(r)
	}

	var b strings.Builder
	pendingHyphen := false
	for _, r := range translated.String() {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		case r == ' ' || r == '-':
			pendingHyphen = true
		}
	}

	s := b.String()
	if len(s) > MaxLen {
		s = strings.TrimRight(s[:MaxLen], "-")
	}
	return s
}
