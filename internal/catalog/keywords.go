package catalog

import "strings"

// words splits folded text on everything but ASCII letters and digits.
func words(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9')
	})
}

// containsAny reports whether folded text holds one of the keywords.
// Keywords match as substrings, except those starting with "=" which must
// equal a whole word.
func containsAny(text string, keywords []string) bool {
	var ws []string
	for _, k := range keywords {
		exact, whole := strings.CutPrefix(k, "=")
		if !whole {
			if strings.Contains(text, k) {
				return true
			}
			continue
		}
		if ws == nil {
			ws = words(text)
		}
		for _, w := range ws {
			if w == exact {
				return true
			}
		}
	}
	return false
}
