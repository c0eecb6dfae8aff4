package main

import (
	"strings"
	"unicode"

	"golang.org/x/text/language"
)

// localeFileName turns a locale code into a file base name. Valid BCP 47
// codes are canonicalized ("zh_cn" becomes "zh-CN"); anything else keeps its
// letters, digits, '-' and '_' only.
func localeFileName(code string) string {
	if tag, err := language.Parse(code); err == nil {
		return tag.String()
	}
	name := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			return r
		}
		return '_'
	}, code)
	name = strings.Trim(name, "_")
	if name == "" {
		return "locale"
	}
	return name
}
